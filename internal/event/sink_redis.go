package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisFeed keeps a capped list of recent events in Redis for the client
// dashboard. It is a best-effort sink; the event store stays authoritative.
type RedisFeed struct {
	client *redis.Client
	key    string
	cap    int64
}

func NewRedisFeed(client *redis.Client, key string, capacity int64) *RedisFeed {
	if key == "" {
		key = "healthledger:events"
	}
	if capacity <= 0 {
		capacity = 100
	}
	return &RedisFeed{client: client, key: key, cap: capacity}
}

func (f *RedisFeed) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	pipe := f.client.TxPipeline()
	pipe.LPush(ctx, f.key, payload)
	pipe.LTrim(ctx, f.key, 0, f.cap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push event to feed: %w", err)
	}
	return nil
}

// Recent returns up to limit events from the feed, newest first.
func (f *RedisFeed) Recent(ctx context.Context, limit int64) ([]Event, error) {
	if limit <= 0 || limit > f.cap {
		limit = f.cap
	}
	raw, err := f.client.LRange(ctx, f.key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read event feed: %w", err)
	}
	out := make([]Event, 0, len(raw))
	for _, item := range raw {
		var e Event
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("unmarshal feed event: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}
