package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageList []Message

type Message struct {
	MessageID uuid.UUID `db:"message_id" json:"message_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Text      string    `db:"text" json:"text"`
	Code      string    `db:"code" json:"code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func NewMessage(userID uuid.UUID, text, code string) Message {
	now := time.Now().UTC()

	return Message{
		MessageID: newID(),
		UserID:    userID,
		Text:      text,
		Code:      code,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateMessageInput targets either a set of topics or a parent message, never both.
type CreateMessageInput struct {
	Text     string      `validate:"min=2"`
	Code     string      `validate:"min=2"`
	TopicIDs []uuid.UUID
	ReplyTo  *uuid.UUID
}

type MessagePage struct {
	Messages MessageList
	Cursor   *Message
}

func (l MessageList) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(l))
	for _, m := range l {
		ids = append(ids, m.MessageID)
	}

	return ids
}

// newID panics when the time-ordered generator fails; cursors depend on id order.
func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
