package event

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	published []Event
	err       error
}

func (s *recordingSink) Publish(_ context.Context, e Event) error {
	if s.err != nil {
		return s.err
	}
	s.published = append(s.published, e)
	return nil
}

func TestPublisher(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Emit assigns id and timestamp", func(t *testing.T) {
		store := NewInMemoryStore()
		pub := NewPublisher(store, logger)

		require.NoError(t, pub.Emit(ctx, Event{Type: TypePolicyPurchased, Actor: "alice"}))

		events, err := pub.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.NotEqual(t, uuid.Nil, events[0].ID)
		assert.False(t, events[0].Timestamp.IsZero())
	})

	t.Run("Emit fans out to sinks", func(t *testing.T) {
		store := NewInMemoryStore()
		sink := &recordingSink{}
		pub := NewPublisher(store, logger, sink)

		require.NoError(t, pub.Emit(ctx, Event{Type: TypeClaimSubmitted, Actor: "alice"}))
		require.Len(t, sink.published, 1)
		assert.Equal(t, TypeClaimSubmitted, sink.published[0].Type)
	})

	t.Run("sink failure does not fail the emit", func(t *testing.T) {
		store := NewInMemoryStore()
		failing := &recordingSink{err: errors.New("broker down")}
		healthy := &recordingSink{}
		pub := NewPublisher(store, logger, failing, healthy)

		require.NoError(t, pub.Emit(ctx, Event{Type: TypeClaimProcessed, Actor: "admin"}))

		// The store append stays authoritative and later sinks still run.
		events, err := pub.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Len(t, healthy.published, 1)
	})
}

func TestInMemoryStoreRecent(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	for _, typ := range []Type{TypePolicyPurchased, TypeClaimSubmitted, TypeClaimProcessed} {
		require.NoError(t, store.Append(ctx, Event{ID: uuid.New(), Type: typ}))
	}

	t.Run("newest first", func(t *testing.T) {
		events, err := store.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, TypeClaimProcessed, events[0].Type)
		assert.Equal(t, TypePolicyPurchased, events[2].Type)
	})

	t.Run("limit truncates", func(t *testing.T) {
		events, err := store.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, TypeClaimProcessed, events[0].Type)
		assert.Equal(t, TypeClaimSubmitted, events[1].Type)
	})
}
