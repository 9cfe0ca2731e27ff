package country

import (
	"context"

	"github.com/job360/directory/pkg/kernel"
)

type Repository interface {
	// Create creates a new country
	Create(ctx context.Context, country *Country) error

	// Update updates an existing country
	Update(ctx context.Context, id kernel.CountryID, country *Country) error

	// GetByID retrieves a country by ID
	GetByID(ctx context.Context, id kernel.CountryID) (*Country, error)

	// Delete deletes a country by ID
	Delete(ctx context.Context, id kernel.CountryID) error

	// List retrieves countries matching the filter, sorted by name ascending
	List(ctx context.Context, filter ListFilter) ([]Country, error)

	// ListWithJobCounts retrieves countries with their exact job counts
	// recomputed from the live jobs collection
	ListWithJobCounts(ctx context.Context, filter ListFilter) ([]WithJobCount, error)

	// CountActive counts active countries
	CountActive(ctx context.Context) (int64, error)

	// IncrementJobCount atomically adds delta to the denormalized job counter
	// of a single country document
	IncrementJobCount(ctx context.Context, id kernel.CountryID, delta int) error

	// RecountJobCount recomputes and stores the job counter from the live
	// jobs collection, returning the corrected value
	RecountJobCount(ctx context.Context, id kernel.CountryID) (int, error)

	// RecountAll recomputes every country's job counter from source
	RecountAll(ctx context.Context) error
}
