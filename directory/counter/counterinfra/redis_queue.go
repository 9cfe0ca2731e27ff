package counterinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/job360/directory/directory/counter"
	"github.com/redis/go-redis/v9"
)

// RedisQueue implements counter.ReconciliationQueue using a Redis list.
type RedisQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisQueue creates a new Redis-backed reconciliation queue.
func NewRedisQueue(client *redis.Client, queueName string) *RedisQueue {
	return &RedisQueue{
		client:    client,
		queueName: queueName,
	}
}

var _ counter.ReconciliationQueue = (*RedisQueue)(nil)

// Enqueue adds an adjustment to the queue.
func (q *RedisQueue) Enqueue(ctx context.Context, adj counter.Adjustment) error {
	data, err := json.Marshal(adj)
	if err != nil {
		return fmt.Errorf("marshal adjustment for %s %s: %w", adj.Entity, adj.ID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue adjustment for %s %s: %w", adj.Entity, adj.ID, err)
	}

	return nil
}

// Dequeue gets the next adjustment (blocking with timeout).
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*counter.Adjustment, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when the timeout elapses with no entries
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue adjustment: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	var adj counter.Adjustment
	if err := json.Unmarshal([]byte(result[1]), &adj); err != nil {
		return nil, fmt.Errorf("unmarshal adjustment: %w", err)
	}

	return &adj, nil
}

// Size returns the number of pending adjustments.
func (q *RedisQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}

// Clear removes all pending adjustments.
func (q *RedisQueue) Clear(ctx context.Context) error {
	if err := q.client.Del(ctx, q.queueName).Err(); err != nil {
		return fmt.Errorf("clear queue: %w", err)
	}
	return nil
}

// Ping checks if the Redis connection is alive.
func (q *RedisQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}
