package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/campuslib/library-service/pkg/kafka"
	"github.com/campuslib/library-service/pkg/logger"
	"github.com/campuslib/library-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

// Policy holds the circulation rules. The numbers live in the environment,
// never in the state machine.
type Policy struct {
	LoanPeriodDays int             `envconfig:"LOAN_PERIOD_DAYS" default:"14"`
	LoanLimit      int             `envconfig:"LOAN_LIMIT" default:"5"`
	FineDailyRate  decimal.Decimal `envconfig:"FINE_DAILY_RATE" default:"5"`
	FineDamage     decimal.Decimal `envconfig:"FINE_DAMAGE_AMOUNT" default:"100"`
	FineLostBook   decimal.Decimal `envconfig:"FINE_LOST_BOOK_AMOUNT" default:"500"`
	DueSoonDays    int             `envconfig:"DUE_SOON_DAYS" default:"3"`
	CardValidYears int             `envconfig:"CARD_VALID_YEARS" default:"4"`
}

// LoanPeriod as a duration from issuance to due date.
func (p Policy) LoanPeriod() time.Duration {
	return time.Duration(p.LoanPeriodDays) * 24 * time.Hour
}

// OverdueDays is the whole number of days asOf is past due, never negative.
func (p Policy) OverdueDays(due, asOf time.Time) int {
	if !asOf.After(due) {
		return 0
	}
	return int(asOf.Sub(due) / (24 * time.Hour))
}

// OverdueFine prices days of lateness at the configured daily rate.
func (p Policy) OverdueFine(days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	return p.FineDailyRate.Mul(decimal.NewFromInt(int64(days)))
}

// FlatFine returns the staff-attached amount for damage or loss incidents.
func (p Policy) FlatFine(lost bool) decimal.Decimal {
	if lost {
		return p.FineLostBook
	}
	return p.FineDamage
}

type Config struct {
	Server   HTTPServer
	Database postgres.Config
	Kafka    kafka.Config
	Policy   Policy
	Log      logger.Log
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}
