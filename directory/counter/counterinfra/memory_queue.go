package counterinfra

import (
	"context"
	"sync"
	"time"

	"github.com/job360/directory/directory/counter"
)

// Compile-time check that MemoryQueue implements ReconciliationQueue.
var _ counter.ReconciliationQueue = (*MemoryQueue)(nil)

// MemoryQueue is an in-memory reconciliation queue for tests and local runs.
type MemoryQueue struct {
	mu      sync.Mutex
	pending []counter.Adjustment
}

// NewMemoryQueue creates a new in-memory reconciliation queue.
func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{}
}

// Enqueue adds an adjustment to the queue.
func (q *MemoryQueue) Enqueue(_ context.Context, adj counter.Adjustment) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, adj)
	return nil
}

// Dequeue pops the oldest adjustment without blocking; (nil, nil) when empty.
func (q *MemoryQueue) Dequeue(_ context.Context, _ time.Duration) (*counter.Adjustment, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, nil
	}
	adj := q.pending[0]
	q.pending = q.pending[1:]
	return &adj, nil
}

// Size returns the number of pending adjustments.
func (q *MemoryQueue) Size(_ context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.pending)), nil
}

// Clear removes all pending adjustments.
func (q *MemoryQueue) Clear(_ context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = nil
	return nil
}
