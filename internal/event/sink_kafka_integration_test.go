//go:build integration

package event_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"healthledger/internal/event"
	"healthledger/pkg/testutil/containers"
)

func TestKafkaSinkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rp := containers.NewRedpandaContainer(t)
	const topic = "healthledger.events.test"

	sink, err := event.NewKafkaSink(ctx, []string{rp.Broker}, topic)
	require.NoError(t, err)

	want := event.Event{
		ID:        uuid.New(),
		Type:      event.TypeClaimProcessed,
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
		Actor:     "admin",
		ClaimID:   3,
		Status:    "approved",
	}
	require.NoError(t, sink.Publish(ctx, want))
	require.NoError(t, sink.Close(ctx))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(fetchCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "admin", string(records[0].Key))

	var got event.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Type, got.Type)
	assert.Equal(t, want.Status, got.Status)
}
