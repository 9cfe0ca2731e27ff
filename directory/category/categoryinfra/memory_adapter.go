package categoryinfra

import (
	"context"
	"sort"
	"sync"

	"github.com/job360/directory/directory/category"
	"github.com/job360/directory/pkg/kernel"
)

// JobCounts is the slice of the job repository the memory adapter needs for
// recounting from source.
type JobCounts interface {
	CountByCategory(ctx context.Context, id kernel.CategoryID) (int64, error)
}

// MemoryCategoryRepository is an in-memory category.Repository used by tests
// and local runs.
type MemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[kernel.CategoryID]*category.Category
	jobs       JobCounts
}

// NewMemoryCategoryRepository creates an in-memory category repository.
func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{
		categories: make(map[kernel.CategoryID]*category.Category),
	}
}

var _ category.Repository = (*MemoryCategoryRepository)(nil)

// BindJobCounts wires the job count source. Needed because the job repository
// is constructed after this one.
func (r *MemoryCategoryRepository) BindJobCounts(jobs JobCounts) {
	r.jobs = jobs
}

func (r *MemoryCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return category.ErrAlreadyExists()
		}
	}
	r.categories[c.ID] = c.Clone()
	return nil
}

func (r *MemoryCategoryRepository) Update(ctx context.Context, id kernel.CategoryID, c *category.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.categories[id]
	if !ok {
		return category.ErrCategoryNotFound()
	}
	for otherID, other := range r.categories {
		if otherID != id && other.Name == c.Name {
			return category.ErrAlreadyExists()
		}
	}
	clone := c.Clone()
	clone.ID = id
	clone.JobCount = existing.JobCount
	r.categories[id] = clone
	return nil
}

func (r *MemoryCategoryRepository) GetByID(ctx context.Context, id kernel.CategoryID) (*category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, category.ErrCategoryNotFound()
	}
	return c.Clone(), nil
}

func (r *MemoryCategoryRepository) Delete(ctx context.Context, id kernel.CategoryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return category.ErrCategoryNotFound()
	}
	delete(r.categories, id)
	return nil
}

func (r *MemoryCategoryRepository) List(ctx context.Context, filter category.ListFilter) ([]category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]category.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		matched = append(matched, *c.Clone())
	}
	sort.Slice(matched, func(a, b int) bool { return matched[a].Name < matched[b].Name })
	return matched, nil
}

func (r *MemoryCategoryRepository) ListWithJobCounts(ctx context.Context, filter category.ListFilter) ([]category.WithJobCount, error) {
	listed, err := r.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]category.WithJobCount, 0, len(listed))
	for i := range listed {
		actual := 0
		if r.jobs != nil {
			count, err := r.jobs.CountByCategory(ctx, listed[i].ID)
			if err != nil {
				return nil, err
			}
			actual = int(count)
		}
		results = append(results, category.WithJobCount{
			Category:       listed[i],
			ActualJobCount: actual,
		})
	}
	return results, nil
}

func (r *MemoryCategoryRepository) CountActive(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, c := range r.categories {
		if c.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *MemoryCategoryRepository) IncrementJobCount(ctx context.Context, id kernel.CategoryID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.categories[id]
	if !ok {
		return category.ErrCategoryNotFound()
	}
	c.JobCount += delta
	return nil
}

func (r *MemoryCategoryRepository) RecountJobCount(ctx context.Context, id kernel.CategoryID) (int, error) {
	count := 0
	if r.jobs != nil {
		actual, err := r.jobs.CountByCategory(ctx, id)
		if err != nil {
			return 0, err
		}
		count = int(actual)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.categories[id]
	if !ok {
		return 0, category.ErrCategoryNotFound()
	}
	c.JobCount = count
	return count, nil
}

func (r *MemoryCategoryRepository) RecountAll(ctx context.Context) error {
	r.mu.RLock()
	ids := make([]kernel.CategoryID, 0, len(r.categories))
	for id := range r.categories {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	for _, id := range ids {
		if _, err := r.RecountJobCount(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
