package model

import (
	"time"

	"github.com/google/uuid"
)

// Rate is how often a subscriber gets topic digests.
type Rate string

const (
	RateQ  Rate = "q"
	RateQd Rate = "qd"
	RateQw Rate = "qw"
)

// Timing is which days a subscriber gets deliveries on.
type Timing string

const (
	TimingInstant  Timing = "instant"
	TimingWeekdays Timing = "weekdays"
	TimingWeekends Timing = "weekends"
)

type TopicUser struct {
	TopicUserID uuid.UUID `db:"topic_user_id" json:"topic_user_id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	TopicID     uuid.UUID `db:"topic_id" json:"topic_id"`
	Rate        Rate      `db:"rate" json:"rate"`
	Timing      Timing    `db:"timing" json:"timing"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

func NewTopicUser(userID, topicID uuid.UUID) TopicUser {
	now := time.Now().UTC()

	return TopicUser{
		TopicUserID: newID(),
		UserID:      userID,
		TopicID:     topicID,
		Rate:        RateQ,
		Timing:      TimingInstant,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
