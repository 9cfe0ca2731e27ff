package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/job360/directory/directory/category"
	"github.com/job360/directory/directory/category/categoryinfra"
	"github.com/job360/directory/directory/counter"
	"github.com/job360/directory/directory/counter/counterinfra"
	"github.com/job360/directory/directory/country"
	"github.com/job360/directory/directory/country/countryinfra"
	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/directory/job/jobinfra"
	"github.com/job360/directory/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	reconciler *Reconciler
	queue      *counterinfra.MemoryQueue
	categories *categoryinfra.MemoryCategoryRepository
	countries  *countryinfra.MemoryCountryRepository
	jobs       *jobinfra.MemoryJobRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	categories := categoryinfra.NewMemoryCategoryRepository()
	countries := countryinfra.NewMemoryCountryRepository()
	jobs := jobinfra.NewMemoryJobRepository(categories, countries)
	categories.BindJobCounts(jobs)
	countries.BindJobCounts(jobs)
	queue := counterinfra.NewMemoryQueue()

	return &fixture{
		reconciler: NewReconciler(queue, categories, countries, 1, time.Second),
		queue:      queue,
		categories: categories,
		countries:  countries,
		jobs:       jobs,
	}
}

func (f *fixture) seedCategory(t *testing.T, staleCount int) kernel.CategoryID {
	t.Helper()
	id := kernel.NewCategoryID(uuid.NewString())
	now := time.Now()
	require.NoError(t, f.categories.Create(context.Background(), &category.Category{
		ID: id, Name: "Technology " + id.String(), Slug: "technology",
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.categories.IncrementJobCount(context.Background(), id, staleCount))
	return id
}

func (f *fixture) seedJob(t *testing.T, categoryID kernel.CategoryID, countryID kernel.CountryID) {
	t.Helper()
	now := time.Now()
	require.NoError(t, f.jobs.Create(context.Background(), &job.Job{
		ID:         kernel.NewJobID(uuid.NewString()),
		Title:      "Backend Engineer",
		Company:    "Acme Corp",
		CategoryID: categoryID,
		CountryID:  countryID,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}))
}

func TestProcessRecountsFromSourceNotDelta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Counter is stale at 9; two jobs actually reference the category. The
	// queued delta of +1 must not be replayed on top of either value.
	id := f.seedCategory(t, 9)
	f.seedJob(t, id, kernel.NewCountryID(uuid.NewString()))
	f.seedJob(t, id, kernel.NewCountryID(uuid.NewString()))

	f.reconciler.Process(ctx, counter.Adjustment{
		Entity: counter.EntityCategory,
		ID:     id.String(),
		Delta:  1,
		At:     time.Now(),
	})

	c, err := f.categories.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, c.JobCount)
}

func TestProcessDropsEventForDeletedEntity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.reconciler.Process(ctx, counter.Adjustment{
		Entity: counter.EntityCategory,
		ID:     uuid.NewString(),
		Delta:  -1,
		At:     time.Now(),
	})

	size, err := f.queue.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestProcessDropsUnknownEntity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.reconciler.Process(ctx, counter.Adjustment{
		Entity: "warehouse",
		ID:     uuid.NewString(),
		Delta:  1,
		At:     time.Now(),
	})

	size, err := f.queue.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}

// countingQueue is a non-blocking queue that records Dequeue calls.
type countingQueue struct {
	mu    sync.Mutex
	calls int
}

func (q *countingQueue) Enqueue(context.Context, counter.Adjustment) error { return nil }

func (q *countingQueue) Dequeue(context.Context, time.Duration) (*counter.Adjustment, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.calls++
	return nil, nil
}

func (q *countingQueue) Size(context.Context) (int64, error) { return 0, nil }
func (q *countingQueue) Clear(context.Context) error         { return nil }

func (q *countingQueue) dequeues() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.calls
}

func TestDrainBacksOffOnEmptyQueue(t *testing.T) {
	queue := &countingQueue{}
	r := NewReconciler(queue, nil, nil, 1, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	time.Sleep(100 * time.Millisecond)
	cancel()

	// An immediately-returning queue must not be polled in a hot loop; with
	// a 20ms pause the worker gets at most a handful of polls in 100ms.
	calls := queue.dequeues()
	assert.Greater(t, calls, 0)
	assert.LessOrEqual(t, calls, 10)
}

func TestReconcileAllCorrectsEveryCounter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	catID := f.seedCategory(t, 40)
	ctyID := kernel.NewCountryID(uuid.NewString())
	now := time.Now()
	require.NoError(t, f.countries.Create(ctx, &country.Country{
		ID: ctyID, Name: "United States", Code: "US",
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.countries.IncrementJobCount(ctx, ctyID, -3))

	f.seedJob(t, catID, ctyID)

	require.NoError(t, f.reconciler.ReconcileAll(ctx))

	c, err := f.categories.GetByID(ctx, catID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.JobCount)

	cty, err := f.countries.GetByID(ctx, ctyID)
	require.NoError(t, err)
	assert.Equal(t, 1, cty.JobCount)
}
