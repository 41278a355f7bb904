package service

import (
	"time"

	"github.com/campuslib/library-service/config"
	"github.com/campuslib/library-service/internal/repository"
	"github.com/campuslib/library-service/pkg/breaker"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	policy   config.Policy
	producer sarama.SyncProducer
	cb       breaker.Breaker
}

// NewService wires the circulation service. producer may be nil, in which
// case events are not published and reports fall back to stored data only.
func NewService(repo repository.Repository, policy config.Policy, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		policy:   policy,
		producer: producer,
		cb:       breaker.New(20, 30*time.Second, 0.5, 5),
	}
}
