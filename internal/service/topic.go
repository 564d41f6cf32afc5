package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/config"
	"github.com/bez-dna/bzd-messages/internal/model"
	"github.com/bez-dna/bzd-messages/internal/pkg/apperr"
	"github.com/bez-dna/bzd-messages/internal/pkg/logger"
)

func (s *Service) CreateTopic(ctx context.Context, caller *model.CurrentUser, title string) (*model.Topic, error) {
	logger := logger.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("CreateTopic")

	if err := s.validator.ValidateCreateTopic(&model.CreateTopicInput{Title: title}); err != nil {
		return nil, err
	}

	if caller == nil {
		return nil, apperr.Forbidden("authentication required")
	}

	topic := model.NewTopic(caller.UserID, title)
	if err := s.repository.CreateTopic(ctx, topic); err != nil {
		logFailure(logger, "failed to create topic", err)
		return nil, apperr.Infra(err, "failed to create topic")
	}

	return &topic, nil
}

func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*model.Topic, error) {
	topic, err := s.repository.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, apperr.Infra(err, "failed to get topic")
	}
	if topic == nil {
		return nil, apperr.NotFound("topic not found")
	}

	return topic, nil
}

func (s *Service) GetTopics(ctx context.Context, topicIDs []uuid.UUID) ([]model.Topic, error) {
	if len(topicIDs) == 0 {
		return []model.Topic{}, nil
	}

	topics, err := s.repository.GetTopicsByIDs(ctx, dedupe(topicIDs))
	if err != nil {
		return nil, apperr.Infra(err, "failed to get topics")
	}

	return topics, nil
}

// GetUserTopics lists the topics the user owns.
func (s *Service) GetUserTopics(ctx context.Context, userID uuid.UUID) ([]model.Topic, error) {
	topics, err := s.repository.GetTopicsByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Infra(err, "failed to get user topics")
	}

	return topics, nil
}
