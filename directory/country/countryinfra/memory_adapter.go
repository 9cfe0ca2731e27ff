package countryinfra

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/job360/directory/directory/country"
	"github.com/job360/directory/pkg/kernel"
)

// JobCounts is the slice of the job repository the memory adapter needs for
// recounting from source.
type JobCounts interface {
	CountByCountry(ctx context.Context, id kernel.CountryID) (int64, error)
}

// MemoryCountryRepository is an in-memory country.Repository used by tests
// and local runs.
type MemoryCountryRepository struct {
	mu        sync.RWMutex
	countries map[kernel.CountryID]*country.Country
	jobs      JobCounts
}

// NewMemoryCountryRepository creates an in-memory country repository.
func NewMemoryCountryRepository() *MemoryCountryRepository {
	return &MemoryCountryRepository{
		countries: make(map[kernel.CountryID]*country.Country),
	}
}

var _ country.Repository = (*MemoryCountryRepository)(nil)

// BindJobCounts wires the job count source. Needed because the job repository
// is constructed after this one.
func (r *MemoryCountryRepository) BindJobCounts(jobs JobCounts) {
	r.jobs = jobs
}

func (r *MemoryCountryRepository) Create(ctx context.Context, c *country.Country) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.countries {
		if existing.Name == c.Name || strings.EqualFold(existing.Code, c.Code) {
			return country.ErrAlreadyExists()
		}
	}
	r.countries[c.ID] = c.Clone()
	return nil
}

func (r *MemoryCountryRepository) Update(ctx context.Context, id kernel.CountryID, c *country.Country) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.countries[id]
	if !ok {
		return country.ErrCountryNotFound()
	}
	for otherID, other := range r.countries {
		if otherID != id && (other.Name == c.Name || strings.EqualFold(other.Code, c.Code)) {
			return country.ErrAlreadyExists()
		}
	}
	clone := c.Clone()
	clone.ID = id
	clone.JobCount = existing.JobCount
	r.countries[id] = clone
	return nil
}

func (r *MemoryCountryRepository) GetByID(ctx context.Context, id kernel.CountryID) (*country.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.countries[id]
	if !ok {
		return nil, country.ErrCountryNotFound()
	}
	return c.Clone(), nil
}

func (r *MemoryCountryRepository) Delete(ctx context.Context, id kernel.CountryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.countries[id]; !ok {
		return country.ErrCountryNotFound()
	}
	delete(r.countries, id)
	return nil
}

func (r *MemoryCountryRepository) List(ctx context.Context, filter country.ListFilter) ([]country.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]country.Country, 0, len(r.countries))
	for _, c := range r.countries {
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		matched = append(matched, *c.Clone())
	}
	sort.Slice(matched, func(a, b int) bool { return matched[a].Name < matched[b].Name })
	return matched, nil
}

func (r *MemoryCountryRepository) ListWithJobCounts(ctx context.Context, filter country.ListFilter) ([]country.WithJobCount, error) {
	listed, err := r.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]country.WithJobCount, 0, len(listed))
	for i := range listed {
		actual := 0
		if r.jobs != nil {
			count, err := r.jobs.CountByCountry(ctx, listed[i].ID)
			if err != nil {
				return nil, err
			}
			actual = int(count)
		}
		results = append(results, country.WithJobCount{
			Country:        listed[i],
			ActualJobCount: actual,
		})
	}
	return results, nil
}

func (r *MemoryCountryRepository) CountActive(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, c := range r.countries {
		if c.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *MemoryCountryRepository) IncrementJobCount(ctx context.Context, id kernel.CountryID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.countries[id]
	if !ok {
		return country.ErrCountryNotFound()
	}
	c.JobCount += delta
	return nil
}

func (r *MemoryCountryRepository) RecountJobCount(ctx context.Context, id kernel.CountryID) (int, error) {
	count := 0
	if r.jobs != nil {
		actual, err := r.jobs.CountByCountry(ctx, id)
		if err != nil {
			return 0, err
		}
		count = int(actual)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.countries[id]
	if !ok {
		return 0, country.ErrCountryNotFound()
	}
	c.JobCount = count
	return count, nil
}

func (r *MemoryCountryRepository) RecountAll(ctx context.Context) error {
	r.mu.RLock()
	ids := make([]kernel.CountryID, 0, len(r.countries))
	for id := range r.countries {
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
