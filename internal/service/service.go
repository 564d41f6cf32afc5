package service

import (
	"context"
	"fmt"

	"github.com/bez-dna/bzd-messages/internal/config"
	"github.com/bez-dna/bzd-messages/internal/model"
	"github.com/bez-dna/bzd-messages/internal/pkg/apperr"
	"github.com/bez-dna/bzd-messages/internal/pkg/logger"
	"github.com/bez-dna/bzd-messages/internal/pkg/metrics"
)

type Service struct {
	repository DBRepo
	publisher  EventPublisher
	cache      MessageCache
	validator  Validator
	metrics    *metrics.Metrics

	messages config.Messages
	kafka    config.Kafka
	outbox   bool
}

// New accepts a nil cache and nil metrics.
func New(
	repo DBRepo,
	publisher EventPublisher,
	cache MessageCache,
	validator Validator,
	m *metrics.Metrics,
	cfg *config.Config,
) *Service {
	return &Service{
		repository: repo,
		publisher:  publisher,
		cache:      cache,
		validator:  validator,
		metrics:    m,
		messages:   cfg.Messages,
		kafka:      cfg.Kafka,
		outbox:     cfg.Outbox.Enabled,
	}
}

// emit records the event in the outbox when it is enabled. Must run inside the mutating tx.
func (s *Service) emit(ctx context.Context, event model.Event) error {
	if !s.outbox {
		return nil
	}

	if err := s.repository.CreateOutboxEvent(ctx, model.NewOutboxEvent(event)); err != nil {
		return apperr.Infra(err, "failed to save outbox event")
	}

	return nil
}

// publish sends the event straight to the bus unless the outbox already holds it.
func (s *Service) publish(ctx context.Context, event model.Event) error {
	if s.outbox {
		return nil
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx, config.KeyLogger).Error(fmt.Sprintf("failed to publish %s: %v", event.Type, err))
		return apperr.Infra(err, "failed to publish event")
	}

	return nil
}

// logFailure reports infrastructure and invariant failures. Domain outcomes are left to the transport.
func logFailure(log logger.LoggerInterface, msg string, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindInfra, apperr.KindInvariant:
		log.Error(fmt.Sprintf("%s: %v", msg, err))
	}
}
