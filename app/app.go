package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuslib/library-service/config"
	"github.com/campuslib/library-service/internal/handler"
	"github.com/campuslib/library-service/internal/repository"
	"github.com/campuslib/library-service/internal/server"
	"github.com/campuslib/library-service/internal/service"
	"github.com/campuslib/library-service/migrations"
	"github.com/campuslib/library-service/pkg/kafka"
	"github.com/campuslib/library-service/pkg/logger"
	"github.com/campuslib/library-service/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, cfg.Policy, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Warn("kafka.NewProducer, running without events", zap.Error(err))
		producer = nil
	}
	svc := service.NewService(repo, cfg.Policy, producer, log)

	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()
	if consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.ReportingConsumer); err != nil {
		log.Warn("kafka.NewConsumer, trend reports will lag", zap.Error(err))
	} else {
		go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.RecordLoanEvent, log), kafka.LoanTopic, log)
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	consumeCancel()
	db.Close()
	log.Info("Graceful shutdown finished")
}
