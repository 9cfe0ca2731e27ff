package job

import (
	"context"

	"github.com/job360/directory/pkg/kernel"
)

type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// Update updates an existing job
	Update(ctx context.Context, id kernel.JobID, job *Job) error

	// GetByID retrieves a job by ID without populated references
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// GetByIDPopulated retrieves a job by ID with the wide category/country
	// projection (name, slug, color, icon / name, code, flag, currency)
	GetByIDPopulated(ctx context.Context, id kernel.JobID) (*Job, error)

	// Delete deletes a job by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// List retrieves one page of jobs matching the filter, with the narrow
	// category/country projection. The page and the total count are computed
	// under the identical predicate.
	List(ctx context.Context, filter ListFilter, sort Sort, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// ListAll retrieves every job with the narrow projection, unpaginated
	ListAll(ctx context.Context) ([]Job, error)

	// Count counts jobs matching the filter
	Count(ctx context.Context, filter ListFilter) (int64, error)

	// CountByCategory counts jobs referencing a category (live count, used by
	// the deletion guard rather than the denormalized counter)
	CountByCategory(ctx context.Context, id kernel.CategoryID) (int64, error)

	// CountByCountry counts jobs referencing a country
	CountByCountry(ctx context.Context, id kernel.CountryID) (int64, error)

	// IncrementViews atomically adds one to a job's view counter
	IncrementViews(ctx context.Context, id kernel.JobID) error
}
