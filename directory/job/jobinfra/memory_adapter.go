package jobinfra

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/job360/directory/directory/category"
	"github.com/job360/directory/directory/country"
	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/pkg/kernel"
)

// MemoryJobRepository is an in-memory job.Repository used by tests and local
// runs. When category/country repositories are supplied, reads attach the
// same populated projections the SQL adapter produces.
type MemoryJobRepository struct {
	mu         sync.RWMutex
	jobs       map[kernel.JobID]*job.Job
	categories category.Repository
	countries  country.Repository
}

// NewMemoryJobRepository creates an in-memory job repository. categories and
// countries may be nil, in which case reads skip population.
func NewMemoryJobRepository(categories category.Repository, countries country.Repository) *MemoryJobRepository {
	return &MemoryJobRepository{
		jobs:       make(map[kernel.JobID]*job.Job),
		categories: categories,
		countries:  countries,
	}
}

var _ job.Repository = (*MemoryJobRepository)(nil)

func (r *MemoryJobRepository) Create(ctx context.Context, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[j.ID]; ok {
		return job.ErrAlreadyExists(nil)
	}
	r.jobs[j.ID] = j.Clone()
	return nil
}

func (r *MemoryJobRepository) Update(ctx context.Context, id kernel.JobID, j *job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	clone := j.Clone()
	clone.ID = id
	r.jobs[id] = clone
	return nil
}

func (r *MemoryJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	return j.Clone(), nil
}

func (r *MemoryJobRepository) GetByIDPopulated(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	r.mu.RLock()
	j, ok := r.jobs[id]
	if !ok {
		r.mu.RUnlock()
		return nil, job.ErrJobNotFound()
	}
	clone := j.Clone()
	r.mu.RUnlock()

	r.populate(ctx, clone, true)
	return clone, nil
}

func (r *MemoryJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	delete(r.jobs, id)
	return nil
}

func (r *MemoryJobRepository) List(ctx context.Context, filter job.ListFilter, sortBy job.Sort, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	matched := r.match(filter)
	sortJobs(matched, sortBy)

	total := len(matched)
	start := pagination.Offset()
	if start > total {
		start = total
	}
	end := start + pagination.PageSize
	if end > total {
		end = total
	}

	page := make([]job.Job, 0, end-start)
	for _, j := range matched[start:end] {
		clone := j.Clone()
		r.populate(ctx, clone, false)
		page = append(page, *clone)
	}

	return &kernel.Paginated[job.Job]{
		Items: page,
		Page:  kernel.NewPage(pagination, total),
		Empty: len(page) == 0,
	}, nil
}

func (r *MemoryJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	matched := r.match(job.ListFilter{})
	sortJobs(matched, job.DefaultSort())

	all := make([]job.Job, 0, len(matched))
	for _, j := range matched {
		clone := j.Clone()
		r.populate(ctx, clone, false)
		all = append(all, *clone)
	}
	return all, nil
}

func (r *MemoryJobRepository) Count(ctx context.Context, filter job.ListFilter) (int64, error) {
	return int64(len(r.match(filter))), nil
}

func (r *MemoryJobRepository) CountByCategory(ctx context.Context, id kernel.CategoryID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, j := range r.jobs {
		if j.CategoryID == id {
			count++
		}
	}
	return count, nil
}

func (r *MemoryJobRepository) CountByCountry(ctx context.Context, id kernel.CountryID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, j := range r.jobs {
		if j.CountryID == id {
			count++
		}
	}
	return count, nil
}

func (r *MemoryJobRepository) IncrementViews(ctx context.Context, id kernel.JobID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[id]
	if !ok {
		return job.ErrJobNotFound()
	}
	j.Views++
	return nil
}

// match returns the stored jobs satisfying the filter. Callers clone
// before handing results across the store boundary.
func (r *MemoryJobRepository) match(filter job.ListFilter) []*job.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*job.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if filter.IsActive != nil && j.IsActive != *filter.IsActive {
			continue
		}
		if !filter.Category.IsEmpty() && j.CategoryID != filter.Category {
			continue
		}
		if !filter.Country.IsEmpty() && j.CountryID != filter.Country {
			continue
		}
		if filter.JobType != "" && j.JobType != filter.JobType {
			continue
		}
		if filter.ExperienceLevel != "" && j.ExperienceLevel != filter.ExperienceLevel {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(j.Title), needle) &&
				!strings.Contains(strings.ToLower(j.Company), needle) &&
				!strings.Contains(strings.ToLower(j.Description), needle) {
				continue
			}
		}
		matched = append(matched, j)
	}
	return matched
}

func sortJobs(jobs []*job.Job, by job.Sort) {
	sort.SliceStable(jobs, func(a, b int) bool {
		less := false
		switch by.Field {
		case "title":
			less = jobs[a].Title < jobs[b].Title
		case "company":
			less = jobs[a].Company < jobs[b].Company
		case "views":
			less = jobs[a].Views < jobs[b].Views
		case "updatedAt":
			less = jobs[a].UpdatedAt.Before(jobs[b].UpdatedAt)
		default:
			less = jobs[a].CreatedAt.Before(jobs[b].CreatedAt)
		}
		if by.Desc {
			return !less
		}
		return less
	})
}

// populate attaches the category/country projections when the lookup
// repositories are wired. A missing referent leaves the projection nil,
// matching the left-join behaviour of the SQL adapter.
func (r *MemoryJobRepository) populate(ctx context.Context, j *job.Job, wide bool) {
	if r.categories != nil {
		if cat, err := r.categories.GetByID(ctx, j.CategoryID); err == nil {
			summary := &job.CategorySummary{
				Name:  cat.Name,
				Slug:  cat.Slug,
				Color: cat.Color,
			}
			if wide {
				summary.Icon = cat.Icon
			}
			j.Category = summary
		}
	}
	if r.countries != nil {
		if cty, err := r.countries.GetByID(ctx, j.CountryID); err == nil {
			summary := &job.CountrySummary{
				Name: cty.Name,
				Code: cty.Code,
				Flag: cty.Flag,
			}
			if wide && (cty.Currency.Code != "" || cty.Currency.Symbol != "") {
				summary.Currency = &job.Currency{
					Code:   cty.Currency.Code,
					Symbol: cty.Currency.Symbol,
				}
			}
			j.Country = summary
		}
	}
}
