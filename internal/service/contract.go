//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/model"
)

type DBRepo interface {
	CreateMessage(ctx context.Context, message model.Message) error
	GetMessageByID(ctx context.Context, messageID uuid.UUID) (*model.Message, error)
	GetMessagesByIDs(ctx context.Context, messageIDs []uuid.UUID) (model.MessageList, error)
	GetStreamMessages(ctx context.Context, streamID uuid.UUID, cursor *uuid.UUID, limit uint64) (model.MessageList, error)
	GetUserFeedMessages(ctx context.Context, userID uuid.UUID, cursor *uuid.UUID, limit uint64) (model.MessageList, error)
	CreateMessageTopic(ctx context.Context, messageTopic model.MessageTopic) error

	UpsertStream(ctx context.Context, stream model.Stream) (*model.Stream, bool, error)
	GetStreamByMessageID(ctx context.Context, messageID uuid.UUID) (*model.Stream, error)
	GetStreamByReplyID(ctx context.Context, messageID uuid.UUID) (*model.Stream, error)
	CreateMessageStream(ctx context.Context, messageStream model.MessageStream) error
	CreateStreamUser(ctx context.Context, streamUser model.StreamUser) error
	IncrementStreamMessagesCount(ctx context.Context, streamID uuid.UUID) error

	CreateTopic(ctx context.Context, topic model.Topic) error
	GetTopicByID(ctx context.Context, topicID uuid.UUID) (*model.Topic, error)
	GetTopicsByIDs(ctx context.Context, topicIDs []uuid.UUID) ([]model.Topic, error)
	GetTopicsByUserID(ctx context.Context, userID uuid.UUID) ([]model.Topic, error)
	GetTopicsByIDsAndUserID(ctx context.Context, topicIDs []uuid.UUID, userID uuid.UUID) ([]model.Topic, error)

	UpsertTopicUser(ctx context.Context, topicUser model.TopicUser) (*model.TopicUser, error)
	GetTopicUserByID(ctx context.Context, topicUserID uuid.UUID) (*model.TopicUser, error)
	GetTopicUsersByTopicIDsAndUserID(ctx context.Context, topicIDs []uuid.UUID, userID uuid.UUID) ([]model.TopicUser, error)
	DeleteTopicUser(ctx context.Context, topicUserID uuid.UUID) error

	CreateOutboxEvent(ctx context.Context, event model.OutboxEvent) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event model.Event) error
}

type MessageCache interface {
	GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error)
	SetMessage(ctx context.Context, message model.Message) error
}

type Validator interface {
	ValidateCreateMessage(in *model.CreateMessageInput) error
	ValidateCreateTopic(in *model.CreateTopicInput) error
}
