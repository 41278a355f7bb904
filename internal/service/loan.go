package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

func (s *Service) Issue(ctx context.Context, studentID, copyID int, by string) (model.IssueReceipt, error) {
	receipt, err := s.repo.Issue(ctx, studentID, copyID, by)
	if err != nil {
		return model.IssueReceipt{}, err
	}
	s.publish(kafka.LoanEvent{
		LoanUid:    receipt.LoanUid,
		EventType:  kafka.EventIssue,
		StudentID:  receipt.StudentID,
		BookID:     receipt.BookID,
		Actor:      by,
		OccurredAt: time.Now().UTC(),
	})
	return receipt, nil
}

func (s *Service) Return(ctx context.Context, copyID int, by, notes string) (model.ReturnReceipt, error) {
	receipt, err := s.repo.Return(ctx, copyID, by, notes)
	if err != nil {
		return model.ReturnReceipt{}, err
	}
	s.publish(kafka.LoanEvent{
		LoanUid:    receipt.LoanUid,
		EventType:  kafka.EventReturn,
		StudentID:  receipt.StudentID,
		BookID:     receipt.BookID,
		Actor:      by,
		OccurredAt: receipt.ReturnedDate,
	})
	return receipt, nil
}

func (s *Service) MarkLoanLost(ctx context.Context, copyID int, by string) (model.ReturnReceipt, error) {
	receipt, err := s.repo.MarkLoanLost(ctx, copyID, by)
	if err != nil {
		return model.ReturnReceipt{}, err
	}
	s.publish(kafka.LoanEvent{
		LoanUid:    receipt.LoanUid,
		EventType:  kafka.EventLost,
		StudentID:  receipt.StudentID,
		BookID:     receipt.BookID,
		Actor:      by,
		OccurredAt: receipt.ReturnedDate,
	})
	return receipt, nil
}

func (s *Service) ListLoans(ctx context.Context, studentID int, status model.LoanStatus) ([]model.Loan, error) {
	return s.repo.ListLoans(ctx, studentID, status)
}

// publish sends a circulation event after the transaction committed. The
// authoritative audit row is already in the store; a dead broker costs a
// trend data point, not a circulation.
func (s *Service) publish(ev kafka.LoanEvent) {
	if s.producer == nil {
		return
	}
	if err := s.cb.Call(func() error {
		value, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
			Topic: kafka.LoanTopic,
			Key:   sarama.StringEncoder(ev.LoanUid),
			Value: sarama.ByteEncoder(value),
		})
		return err
	}); err != nil {
		s.log.Warn("publish loan event", zap.String("loanUid", ev.LoanUid), zap.Error(err))
	}
}

// RecordLoanEvent is used by the kafka consumer.
func (s *Service) RecordLoanEvent(ctx context.Context, ev kafka.LoanEvent) error {
	return s.repo.RecordLoanEvent(ctx, ev)
}
