package model

import (
	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/pkg/apperr"
)

type CurrentUser struct {
	UserID uuid.UUID
}

// NewCurrentUser returns nil for an anonymous caller.
func NewCurrentUser(raw string) (*CurrentUser, error) {
	if raw == "" {
		return nil, nil
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperr.Validation("invalid current user id")
	}

	return &CurrentUser{UserID: userID}, nil
}

func (u *CurrentUser) HasAccess(ownerID uuid.UUID) error {
	if u == nil || u.UserID != ownerID {
		return apperr.Forbidden("access denied")
	}

	return nil
}
