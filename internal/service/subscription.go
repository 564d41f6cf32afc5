package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/config"
	"github.com/bez-dna/bzd-messages/internal/model"
	"github.com/bez-dna/bzd-messages/internal/pkg/apperr"
	"github.com/bez-dna/bzd-messages/internal/pkg/logger"
	"github.com/bez-dna/bzd-messages/internal/pkg/tx"
)

// GetTopicSubscriptions returns the caller's subscriptions among topicIDs. Anonymous callers have none.
func (s *Service) GetTopicSubscriptions(ctx context.Context, topicIDs []uuid.UUID, caller *model.CurrentUser) ([]model.TopicUser, error) {
	if caller == nil || len(topicIDs) == 0 {
		return []model.TopicUser{}, nil
	}

	topicUsers, err := s.repository.GetTopicUsersByTopicIDsAndUserID(ctx, dedupe(topicIDs), caller.UserID)
	if err != nil {
		return nil, apperr.Infra(err, "failed to get topic users")
	}

	return topicUsers, nil
}

// CreateSubscription is idempotent: a repeated call returns the stored subscription.
func (s *Service) CreateSubscription(ctx context.Context, caller *model.CurrentUser, topicID uuid.UUID) (*model.TopicUser, error) {
	logger := logger.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("CreateSubscription")

	if caller == nil {
		return nil, apperr.Forbidden("authentication required")
	}

	var (
		topicUser *model.TopicUser
		event     model.Event
	)
	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		topic, err := s.repository.GetTopicByID(ctx, topicID)
		if err != nil {
			return apperr.Infra(err, "failed to get topic")
		}
		if topic == nil {
			return apperr.NotFound("topic not found")
		}

		topicUser, err = s.repository.UpsertTopicUser(ctx, model.NewTopicUser(caller.UserID, topic.TopicID))
		if err != nil {
			return apperr.Infra(err, "failed to upsert topic user")
		}
		if topicUser == nil {
			return apperr.Invariant("topic user is missing after upsert")
		}

		event, err = s.topicUserEvent(model.TopicUserCreated, *topicUser)
		if err != nil {
			return err
		}

		return s.emit(ctx, event)
	})
	if err != nil {
		logFailure(logger, "failed to create topic user", err)
		return nil, apperr.Infra(err, "failed to create topic user")
	}

	if err := s.publish(ctx, event); err != nil {
		return nil, err
	}

	return topicUser, nil
}

// DeleteSubscription removes a subscription owned by the caller.
func (s *Service) DeleteSubscription(ctx context.Context, caller *model.CurrentUser, topicUserID uuid.UUID) error {
	logger := logger.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("DeleteSubscription")

	if caller == nil {
		return apperr.Forbidden("authentication required")
	}

	var event model.Event
	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		topicUser, err := s.repository.GetTopicUserByID(ctx, topicUserID)
		if err != nil {
			return apperr.Infra(err, "failed to get topic user")
		}
		if topicUser == nil {
			return apperr.NotFound("topic user not found")
		}

		if err := caller.HasAccess(topicUser.UserID); err != nil {
			return err
		}

		if err := s.repository.DeleteTopicUser(ctx, topicUser.TopicUserID); err != nil {
			return apperr.Infra(err, "failed to delete topic user")
		}

		event, err = s.topicUserEvent(model.TopicUserDeleted, *topicUser)
		if err != nil {
			return err
		}

		return s.emit(ctx, event)
	})
	if err != nil {
		logFailure(logger, "failed to delete topic user", err)
		return apperr.Infra(err, "failed to delete topic user")
	}

	return s.publish(ctx, event)
}
