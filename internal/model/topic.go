package model

import (
	"time"

	"github.com/google/uuid"
)

type Topic struct {
	TopicID   uuid.UUID `db:"topic_id" json:"topic_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func NewTopic(userID uuid.UUID, title string) Topic {
	now := time.Now().UTC()

	return Topic{
		TopicID:   newID(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type CreateTopicInput struct {
	Title string `validate:"min=2"`
}

type MessageTopic struct {
	MessageTopicID uuid.UUID `db:"message_topic_id"`
	MessageID      uuid.UUID `db:"message_id"`
	TopicID        uuid.UUID `db:"topic_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func NewMessageTopic(messageID, topicID uuid.UUID) MessageTopic {
	now := time.Now().UTC()

	return MessageTopic{
		MessageTopicID: newID(),
		MessageID:      messageID,
		TopicID:        topicID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
