// Package notification keeps a small rolling feed of platform events in
// redis. The feed is decorative: only the ten most recent entries are
// retained and feed failures never fail the mutation that produced them.
package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	feedKey = "loanledger:notifications"
	maxKept = 10
)

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher is what the usecases see; a nil-safe no-op is fine in tests.
type Publisher interface {
	Publish(ctx context.Context, title, message, kind string)
}

type Feed struct {
	rdb *redis.Client
	log *zap.SugaredLogger
}

func NewFeed(rdb *redis.Client, log *zap.SugaredLogger) *Feed {
	return &Feed{rdb: rdb, log: log}
}

// Publish prepends a note and trims the feed to the newest ten.
func (f *Feed) Publish(ctx context.Context, title, message, kind string) {
	n := Note{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      kind,
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(n)
	if err != nil {
		f.log.Errorw("notification marshal failed", "error", err)
		return
	}

	pipe := f.rdb.TxPipeline()
	pipe.LPush(ctx, feedKey, payload)
	pipe.LTrim(ctx, feedKey, 0, maxKept-1)
	if _, err := pipe.Exec(ctx); err != nil {
		f.log.Errorw("notification publish failed", "error", err, "title", title)
	}
}

// List returns the feed newest-first.
func (f *Feed) List(ctx context.Context) ([]Note, error) {
	raw, err := f.rdb.LRange(ctx, feedKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Note, 0, len(raw))
	for _, item := range raw {
		var n Note
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			// skip garbage entries rather than break the feed
			f.log.Warnw("dropping unreadable notification", "error", err)
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

// Remove deletes the note with the given id, if still present.
func (f *Feed) Remove(ctx context.Context, id string) error {
	raw, err := f.rdb.LRange(ctx, feedKey, 0, -1).Result()
	if err != nil {
		return err
	}
	for _, item := range raw {
		var n Note
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		if n.ID == id {
			return f.rdb.LRem(ctx, feedKey, 1, item).Err()
		}
	}
	return nil
}
