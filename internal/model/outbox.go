package model

import (
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	OutboxPending    OutboxStatus = "pending"
	OutboxProcessing OutboxStatus = "processing"
	OutboxDone       OutboxStatus = "done"
)

type OutboxEvent struct {
	OutboxEventID uuid.UUID    `db:"outbox_event_id"`
	Subject       string       `db:"subject"`
	Type          EventType    `db:"type"`
	Key           string       `db:"event_key"`
	Payload       []byte       `db:"payload"`
	Status        OutboxStatus `db:"status"`
	CreatedAt     time.Time    `db:"created_at"`
	ClaimedAt     *time.Time   `db:"claimed_at"`
	ProcessedAt   *time.Time   `db:"processed_at"`
}

func NewOutboxEvent(event Event) OutboxEvent {
	return OutboxEvent{
		OutboxEventID: newID(),
		Subject:       event.Subject,
		Type:          event.Type,
		Key:           event.Key,
		Payload:       event.Payload,
		Status:        OutboxPending,
		CreatedAt:     time.Now().UTC(),
	}
}

func (e OutboxEvent) Event() Event {
	return Event{
		Subject: e.Subject,
		Type:    e.Type,
		Key:     e.Key,
		Payload: e.Payload,
	}
}
