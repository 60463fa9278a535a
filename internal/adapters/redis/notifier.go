// Package redisnotify delivers escalation alerts through Redis. Each hospital
// has a capped inbox list and every alert is also published on a channel for
// live consumers.
package redisnotify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/zoobzio/clockz"

	"bloodlink/internal/ports"
)

const (
	inboxSize = 100
	channel   = "bloodlink:alerts"
)

type Notifier struct {
	rdb   *redis.Client
	clock clockz.Clock
}

// Connect parses a redis:// URL, or a bare host:port, and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func New(rdb *redis.Client, clock clockz.Clock) *Notifier {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &Notifier{rdb: rdb, clock: clock}
}

func inboxKey(hospitalID string) string { return "bloodlink:inbox:" + hospitalID }

// Notify writes one inbox entry per hospital and publishes each entry, all in
// a single pipeline.
func (n *Notifier) Notify(ctx context.Context, hospitalIDs []string, summary ports.RequestSummary, tier ports.Tier) error {
	now := n.clock.Now()
	pipe := n.rdb.Pipeline()
	for _, id := range hospitalIDs {
		data, err := json.Marshal(ports.Notification{HospitalID: id, Summary: summary, Tier: tier, At: now})
		if err != nil {
			return err
		}
		key := inboxKey(id)
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, inboxSize-1)
		pipe.Publish(ctx, channel, data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis notify: %w", err)
	}
	return nil
}

// Recent returns up to limit notifications, newest first.
func (n *Notifier) Recent(ctx context.Context, hospitalID string, limit int) ([]ports.Notification, error) {
	if limit <= 0 || limit > inboxSize {
		limit = inboxSize
	}
	raw, err := n.rdb.LRange(ctx, inboxKey(hospitalID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]ports.Notification, 0, len(raw))
	for _, s := range raw {
		var note ports.Notification
		if err := json.Unmarshal([]byte(s), &note); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		out = append(out, note)
	}
	return out, nil
}
