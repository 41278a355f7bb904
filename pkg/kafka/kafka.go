package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	LoanTopic         = "loan-events"
	ReportingConsumer = "reporting-group"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

// EventType of a circulation event.
type EventType string

const (
	EventIssue  EventType = "ISSUE"
	EventReturn EventType = "RETURN"
	EventLost   EventType = "LOST"
)

// LoanEvent is published after a circulation transaction commits and is
// materialized on the reporting side.
type LoanEvent struct {
	LoanUid    string    `json:"loanUid"`
	EventType  EventType `json:"eventType"`
	StudentID  int       `json:"studentId"`
	BookID     int       `json:"bookId"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until ctx is cancelled.
func Consume(ctx context.Context, cg sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string, log *zap.Logger) {
	for {
		if err := cg.Consume(ctx, []string{topic}, handler); err != nil {
			log.Error("consumer group", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
