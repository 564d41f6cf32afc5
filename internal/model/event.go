package model

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	MessageCreated EventType = "app.bezdna.message.created"
	MessageUpdated EventType = "app.bezdna.message.updated"
	MessageDeleted EventType = "app.bezdna.message.deleted"

	TopicUserCreated EventType = "app.bezdna.topic-user.created"
	TopicUserUpdated EventType = "app.bezdna.topic-user.updated"
	TopicUserDeleted EventType = "app.bezdna.topic-user.deleted"
)

// CeTypeHeader carries EventType next to the payload.
const CeTypeHeader = "ce_type"

// Event is a bus record: Subject is the kafka topic, Key the partitioning entity id.
type Event struct {
	Subject string
	Type    EventType
	Key     string
	Payload []byte
}

type MessageEvent struct {
	MessageID uuid.UUID   `json:"message_id"`
	UserID    uuid.UUID   `json:"user_id"`
	Text      string      `json:"text"`
	Code      string      `json:"code"`
	TopicIDs  []uuid.UUID `json:"topic_ids"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type TopicUserEvent struct {
	TopicUserID uuid.UUID `json:"topic_user_id"`
	UserID      uuid.UUID `json:"user_id"`
	TopicID     uuid.UUID `json:"topic_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
