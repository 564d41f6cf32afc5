//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/model"
)

type MessageService interface {
	CreateMessage(ctx context.Context, caller *model.CurrentUser, in model.CreateMessageInput) (*model.Message, error)
	GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error)
	GetMessages(ctx context.Context, messageIDs []uuid.UUID) (model.MessageList, error)
	GetThreadMessages(ctx context.Context, messageID uuid.UUID, cursor *uuid.UUID, limit int) (model.MessagePage, error)
	GetUserMessages(ctx context.Context, userID uuid.UUID, cursor *uuid.UUID) (model.MessagePage, error)
}

type TopicService interface {
	CreateTopic(ctx context.Context, caller *model.CurrentUser, title string) (*model.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*model.Topic, error)
	GetTopics(ctx context.Context, topicIDs []uuid.UUID) ([]model.Topic, error)
	GetUserTopics(ctx context.Context, userID uuid.UUID) ([]model.Topic, error)
	GetTopicSubscriptions(ctx context.Context, topicIDs []uuid.UUID, caller *model.CurrentUser) ([]model.TopicUser, error)
	CreateSubscription(ctx context.Context, caller *model.CurrentUser, topicID uuid.UUID) (*model.TopicUser, error)
	DeleteSubscription(ctx context.Context, caller *model.CurrentUser, topicUserID uuid.UUID) error
}
