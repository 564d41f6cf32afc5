package model

import (
	"time"

	"github.com/google/uuid"
)

// InitialStreamMessagesCount counts the root and its first reply.
const InitialStreamMessagesCount = 2

type Stream struct {
	StreamID      uuid.UUID `db:"stream_id"`
	MessageID     uuid.UUID `db:"message_id"`
	Text          string    `db:"text"`
	MessagesCount int64     `db:"messages_count"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func NewStream(rootMessageID uuid.UUID, text string) Stream {
	now := time.Now().UTC()

	return Stream{
		StreamID:      newID(),
		MessageID:     rootMessageID,
		Text:          text,
		MessagesCount: InitialStreamMessagesCount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type MessageStream struct {
	MessageStreamID uuid.UUID `db:"message_stream_id"`
	MessageID       uuid.UUID `db:"message_id"`
	StreamID        uuid.UUID `db:"stream_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func NewMessageStream(messageID, streamID uuid.UUID) MessageStream {
	now := time.Now().UTC()

	return MessageStream{
		MessageStreamID: newID(),
		MessageID:       messageID,
		StreamID:        streamID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

type StreamUser struct {
	StreamUserID uuid.UUID `db:"stream_user_id"`
	StreamID     uuid.UUID `db:"stream_id"`
	UserID       uuid.UUID `db:"user_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func NewStreamUser(streamID, userID uuid.UUID) StreamUser {
	now := time.Now().UTC()

	return StreamUser{
		StreamUserID: newID(),
		StreamID:     streamID,
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
