package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/model"
)

var outboxColumns = []string{
	"outbox_event_id",
	"subject",
	"type",
	"event_key",
	"payload",
	"status",
	"created_at",
	"claimed_at",
	"processed_at",
}

func (r *Repository) CreateOutboxEvent(ctx context.Context, event model.OutboxEvent) error {
	query, args, err := sq.Insert("outbox_events").
		Columns(outboxColumns...).
		Values(event.OutboxEventID, event.Subject, event.Type, event.Key, event.Payload, event.Status, event.CreatedAt, event.ClaimedAt, event.ProcessedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save outbox event: %v", err)
	}

	return nil
}

// ClaimOutboxEvents locks pending events, plus processing ones claimed before staleBefore, skipping
// rows held by other dispatchers, and marks them processing. Must run inside WithTx.
func (r *Repository) ClaimOutboxEvents(ctx context.Context, limit uint64, staleBefore time.Time) ([]model.OutboxEvent, error) {
	query, args, err := sq.Select(outboxColumns...).
		From("outbox_events").
		Where(sq.Or{
			sq.Eq{"status": model.OutboxPending},
			sq.And{
				sq.Eq{"status": model.OutboxProcessing},
				sq.Lt{"claimed_at": staleBefore},
			},
		}).
		OrderBy("outbox_event_id").
		Limit(limit).
		Suffix("FOR UPDATE SKIP LOCKED").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var events []model.OutboxEvent
	err = r.Chk(ctx).SelectContext(ctx, &events, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to claim outbox events: %v", err)
	}

	if len(events) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.OutboxEventID)
	}

	if err := r.SetOutboxEventsStatus(ctx, ids, model.OutboxProcessing); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *Repository) SetOutboxEventsStatus(ctx context.Context, ids []uuid.UUID, status model.OutboxStatus) error {
	if len(ids) == 0 {
		return nil
	}

	queryBuilder := sq.Update("outbox_events").
		Set("status", status).
		Where(sq.Eq{"outbox_event_id": ids})

	switch status {
	case model.OutboxProcessing:
		queryBuilder = queryBuilder.Set("claimed_at", sq.Expr("NOW()"))
	case model.OutboxDone:
		queryBuilder = queryBuilder.Set("processed_at", sq.Expr("NOW()"))
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update outbox events: %v", err)
	}

	return nil
}
