package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/bez-dna/bzd-messages/internal/config"
	"github.com/bez-dna/bzd-messages/internal/model"
	"github.com/bez-dna/bzd-messages/internal/pkg/logger"
	"github.com/bez-dna/bzd-messages/internal/pkg/metrics"
)

const statusTimeout = 5 * time.Second

// Dispatcher moves outbox events to the bus. Claims use SKIP LOCKED, so any number of
// dispatchers can poll the same table. A claim older than the lease is taken over by the next poll.
type Dispatcher struct {
	repository DBRepo
	publisher  EventPublisher
	batchSize  uint64
	interval   time.Duration
	lease      time.Duration
}

func New(repo DBRepo, publisher EventPublisher, cfg config.Outbox) *Dispatcher {
	return &Dispatcher{
		repository: repo,
		publisher:  publisher,
		batchSize:  uint64(cfg.BatchSize),
		interval:   cfg.PollInterval,
		lease:      cfg.Lease,
	}
}

// Run polls until ctx is cancelled. A full batch is followed by an immediate next poll.
func (d *Dispatcher) Run(ctx context.Context) error {
	logger := logger.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Run")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		n, err := d.Dispatch(ctx)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to dispatch outbox events: %v", err))
		}

		if err == nil && uint64(n) == d.batchSize {
			timer.Reset(0)
		} else {
			timer.Reset(d.interval)
		}
	}
}

// Dispatch claims one batch, publishes it and records the outcome per event. It returns the
// number of claimed events.
func (d *Dispatcher) Dispatch(ctx context.Context) (int, error) {
	logger := logger.FromContext(ctx, config.KeyLogger)
	m, _ := ctx.Value(config.KeyMetrics).(*metrics.Metrics)

	var events []model.OutboxEvent
	err := d.repository.WithTx(ctx, func(ctx context.Context) error {
		var err error
		events, err = d.repository.ClaimOutboxEvents(ctx, d.batchSize, time.Now().Add(-d.lease))
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to claim outbox events: %v", err)
	}

	if len(events) == 0 {
		return 0, nil
	}

	done := make([]uuid.UUID, 0, len(events))
	var failed []uuid.UUID
	for _, event := range events {
		if err := d.publisher.Publish(ctx, event.Event()); err != nil {
			logger.Warn(fmt.Sprintf("failed to publish outbox event %s: %v", event.OutboxEventID, err))
			failed = append(failed, event.OutboxEventID)
			continue
		}
		done = append(done, event.OutboxEventID)
	}

	if m != nil {
		m.OutboxDispatched.WithLabelValues("ok").Add(float64(len(done)))
		m.OutboxDispatched.WithLabelValues("error").Add(float64(len(failed)))
	}

	// Outcomes are recorded even when ctx is cancelled mid-batch.
	statusCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), statusTimeout)
	defer cancel()

	var errs error
	if err := d.repository.SetOutboxEventsStatus(statusCtx, done, model.OutboxDone); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("failed to mark outbox events done: %v", err))
	}

	if err := d.repository.SetOutboxEventsStatus(statusCtx, failed, model.OutboxPending); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("failed to return outbox events to pending: %v", err))
	}

	return len(events), errs
}
