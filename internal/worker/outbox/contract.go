//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package outbox

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/model"
)

type DBRepo interface {
	ClaimOutboxEvents(ctx context.Context, limit uint64, staleBefore time.Time) ([]model.OutboxEvent, error)
	SetOutboxEventsStatus(ctx context.Context, ids []uuid.UUID, status model.OutboxStatus) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event model.Event) error
}
