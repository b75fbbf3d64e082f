// Package event records the notifications the ledger emits on every
// committed mutation and fans them out to optional feed and stream sinks.
package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Sink receives committed events best-effort. A failing sink must not fail
// the ledger operation; the store append is the authoritative record.
type Sink interface {
	Publish(ctx context.Context, e Event) error
}

// Publisher appends events to the store and forwards them to sinks.
type Publisher struct {
	store  Store
	sinks  []Sink
	logger *slog.Logger
}

func NewPublisher(store Store, logger *slog.Logger, sinks ...Sink) *Publisher {
	return &Publisher{store: store, sinks: sinks, logger: logger}
}

// Emit assigns the event an id and timestamp if unset, appends it to the
// store, and fans out to the sinks. Only the store append can fail the emit.
func (p *Publisher) Emit(ctx context.Context, e Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	if err := p.store.Append(ctx, e); err != nil {
		return err
	}
	for _, sink := range p.sinks {
		if err := sink.Publish(ctx, e); err != nil {
			p.logger.WarnContext(ctx, "event sink publish failed",
				"type", string(e.Type),
				"event_id", e.ID.String(),
				"error", err,
			)
		}
	}
	return nil
}

// Recent returns the newest events from the store, newest first.
func (p *Publisher) Recent(ctx context.Context, limit int) ([]Event, error) {
	return p.store.Recent(ctx, limit)
}
