package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// FollowupQueue is a FIFO list of pending employee-side comments.
// Producers LPUSH, consumers RPOP. Payloads that cannot be decoded are moved
// to the dead-letter list under key + ":dead".
type FollowupQueue struct {
	rdb     redis.Cmdable
	key     string
	deadKey string
}

// NewFollowupQueue creates a queue stored under key.
func NewFollowupQueue(rdb redis.Cmdable, key string) *FollowupQueue {
	return &FollowupQueue{rdb: rdb, key: key, deadKey: key + ":dead"}
}

func (q *FollowupQueue) Push(ctx context.Context, f domain.Followup) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal followup %s: %w", f.ID, err)
	}
	if err := q.rdb.LPush(ctx, q.key, data).Err(); err != nil {
		return fmt.Errorf("push followup %s: %w", f.ID, err)
	}
	return nil
}

// Pop removes the oldest followup. ok is false when the queue is empty. A
// payload that does not decode is dead-lettered and reported as
// domain.ErrMalformedFollowup; the next Pop continues with the following item.
func (q *FollowupQueue) Pop(ctx context.Context) (f domain.Followup, ok bool, err error) {
	data, err := q.rdb.RPop(ctx, q.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Followup{}, false, nil
	}
	if err != nil {
		return domain.Followup{}, false, fmt.Errorf("pop followup: %w", err)
	}
	if err := json.Unmarshal(data, &f); err != nil {
		if dlErr := q.rdb.LPush(ctx, q.deadKey, data).Err(); dlErr != nil {
			return domain.Followup{}, false, fmt.Errorf("dead-letter followup: %w", dlErr)
		}
		return domain.Followup{}, false, fmt.Errorf("%w: %v", domain.ErrMalformedFollowup, err)
	}
	return f, true, nil
}

// DeadLen returns the number of dead-lettered payloads.
func (q *FollowupQueue) DeadLen(ctx context.Context) (int64, error) {
	n, err := q.rdb.LLen(ctx, q.deadKey).Result()
	if err != nil {
		return 0, fmt.Errorf("followup dead-letter length: %w", err)
	}
	return n, nil
}

func (q *FollowupQueue) Len(ctx context.Context) (int64, error) {
	n, err := q.rdb.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("followup queue length: %w", err)
	}
	return n, nil
}
