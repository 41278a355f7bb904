package handler

import (
	"context"
	"encoding/json"

	"github.com/campuslib/library-service/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type recordLoanEvent func(ctx context.Context, ev kafka.LoanEvent) error

// Consumer materializes published circulation events into the reporting read
// model.
type Consumer struct {
	recordHandler recordLoanEvent
	log           *zap.Logger
}

func NewConsumer(record recordLoanEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		recordHandler: record,
		log:           log.Named("consumer"),
	}
}

// Setup runs at the start of every session; the group handler is reused
// across rebalances, so it must hold no per-session state.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var ev kafka.LoanEvent
			if err := json.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("unmarshal loan event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordHandler(context.Background(), ev); err != nil {
				consumer.log.Error("record loan event", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
