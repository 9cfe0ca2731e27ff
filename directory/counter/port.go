package counter

import (
	"context"
	"time"

	"github.com/job360/directory/pkg/kernel"
)

// EntityType names the collection a counter adjustment targets.
type EntityType string

const (
	EntityCategory EntityType = "category"
	EntityCountry  EntityType = "country"
)

// Adjustment is a counter change that could not be applied and must be
// reconciled against the live jobs collection.
type Adjustment struct {
	Entity EntityType `json:"entity"`
	ID     string     `json:"id"`
	Delta  int        `json:"delta"`
	Reason string     `json:"reason"`
	At     time.Time  `json:"at"`
}

// ReconciliationQueue buffers failed adjustments for the reconciler.
type ReconciliationQueue interface {
	// Enqueue adds an adjustment to the queue
	Enqueue(ctx context.Context, adj Adjustment) error

	// Dequeue gets the next adjustment, blocking up to timeout.
	// Returns (nil, nil) when the queue stays empty.
	Dequeue(ctx context.Context, timeout time.Duration) (*Adjustment, error)

	// Size returns the number of pending adjustments
	Size(ctx context.Context) (int64, error)

	// Clear removes all pending adjustments (testing/maintenance)
	Clear(ctx context.Context) error
}

// CategoryCounters is the slice of the category repository the maintainer needs.
type CategoryCounters interface {
	IncrementJobCount(ctx context.Context, id kernel.CategoryID, delta int) error
}

// CountryCounters is the slice of the country repository the maintainer needs.
type CountryCounters interface {
	IncrementJobCount(ctx context.Context, id kernel.CountryID, delta int) error
}
