package category

import (
	"context"

	"github.com/job360/directory/pkg/kernel"
)

type Repository interface {
	// Create creates a new category
	Create(ctx context.Context, category *Category) error

	// Update updates an existing category
	Update(ctx context.Context, id kernel.CategoryID, category *Category) error

	// GetByID retrieves a category by ID
	GetByID(ctx context.Context, id kernel.CategoryID) (*Category, error)

	// Delete deletes a category by ID
	Delete(ctx context.Context, id kernel.CategoryID) error

	// List retrieves categories matching the filter, sorted by name ascending
	List(ctx context.Context, filter ListFilter) ([]Category, error)

	// ListWithJobCounts retrieves categories with their exact job counts
	// recomputed from the live jobs collection
	ListWithJobCounts(ctx context.Context, filter ListFilter) ([]WithJobCount, error)

	// CountActive counts active categories
	CountActive(ctx context.Context) (int64, error)

	// IncrementJobCount atomically adds delta to the denormalized job counter
	// of a single category document
	IncrementJobCount(ctx context.Context, id kernel.CategoryID, delta int) error

	// RecountJobCount recomputes and stores the job counter from the live
	// jobs collection, returning the corrected value
	RecountJobCount(ctx context.Context, id kernel.CategoryID) (int, error)

	// RecountAll recomputes every category's job counter from source
	RecountAll(ctx context.Context) error
}
