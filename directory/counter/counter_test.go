package counter

import (
	"context"
	"testing"
	"time"

	"github.com/job360/directory/pkg/errx"
	"github.com/job360/directory/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryCounterStub struct {
	deltas map[kernel.CategoryID]int
	err    error
}

func (s *categoryCounterStub) IncrementJobCount(ctx context.Context, id kernel.CategoryID, delta int) error {
	if s.err != nil {
		return s.err
	}
	if s.deltas == nil {
		s.deltas = make(map[kernel.CategoryID]int)
	}
	s.deltas[id] += delta
	return nil
}

type countryCounterStub struct {
	deltas map[kernel.CountryID]int
	err    error
}

func (s *countryCounterStub) IncrementJobCount(ctx context.Context, id kernel.CountryID, delta int) error {
	if s.err != nil {
		return s.err
	}
	if s.deltas == nil {
		s.deltas = make(map[kernel.CountryID]int)
	}
	s.deltas[id] += delta
	return nil
}

type queueStub struct {
	adjustments []Adjustment
}

func (q *queueStub) Enqueue(ctx context.Context, adj Adjustment) error {
	q.adjustments = append(q.adjustments, adj)
	return nil
}

func (q *queueStub) Dequeue(ctx context.Context, timeout time.Duration) (*Adjustment, error) {
	if len(q.adjustments) == 0 {
		return nil, nil
	}
	adj := q.adjustments[0]
	q.adjustments = q.adjustments[1:]
	return &adj, nil
}

func (q *queueStub) Size(ctx context.Context) (int64, error) {
	return int64(len(q.adjustments)), nil
}

func (q *queueStub) Clear(ctx context.Context) error {
	q.adjustments = nil
	return nil
}

var testRegistry = errx.NewRegistry("COUNTERTEST")

var (
	codeNotFound    = testRegistry.Register("NOT_FOUND", errx.TypeNotFound, 404, "not found")
	codeUnavailable = testRegistry.Register("UNAVAILABLE", errx.TypeUnavailable, 503, "store down")
)

func TestOnJobCreatedIncrementsBoth(t *testing.T) {
	categories := &categoryCounterStub{}
	countries := &countryCounterStub{}
	m := NewMaintainer(categories, countries, nil)

	catID := kernel.NewCategoryID("cat-1")
	ctyID := kernel.NewCountryID("cty-1")
	m.OnJobCreated(context.Background(), catID, ctyID)

	assert.Equal(t, 1, categories.deltas[catID])
	assert.Equal(t, 1, countries.deltas[ctyID])
}

func TestOnJobDeletedDecrementsBoth(t *testing.T) {
	categories := &categoryCounterStub{}
	countries := &countryCounterStub{}
	m := NewMaintainer(categories, countries, nil)

	catID := kernel.NewCategoryID("cat-1")
	ctyID := kernel.NewCountryID("cty-1")
	m.OnJobDeleted(context.Background(), catID, ctyID)

	assert.Equal(t, -1, categories.deltas[catID])
	assert.Equal(t, -1, countries.deltas[ctyID])
}

func TestOnJobReassignedMovesOnlyChangedDimension(t *testing.T) {
	categories := &categoryCounterStub{}
	countries := &countryCounterStub{}
	m := NewMaintainer(categories, countries, nil)

	oldCat := kernel.NewCategoryID("cat-old")
	newCat := kernel.NewCategoryID("cat-new")
	cty := kernel.NewCountryID("cty-1")

	m.OnJobReassigned(context.Background(), oldCat, newCat, cty, cty)

	assert.Equal(t, -1, categories.deltas[oldCat])
	assert.Equal(t, 1, categories.deltas[newCat])
	assert.Empty(t, countries.deltas)
}

func TestOnJobReassignedUnchangedIsNoOp(t *testing.T) {
	categories := &categoryCounterStub{}
	countries := &countryCounterStub{}
	m := NewMaintainer(categories, countries, nil)

	cat := kernel.NewCategoryID("cat-1")
	cty := kernel.NewCountryID("cty-1")
	m.OnJobReassigned(context.Background(), cat, cat, cty, cty)

	assert.Empty(t, categories.deltas)
	assert.Empty(t, countries.deltas)
}

func TestMissingReferentIsSkippedNotQueued(t *testing.T) {
	categories := &categoryCounterStub{err: testRegistry.New(codeNotFound)}
	countries := &countryCounterStub{}
	queue := &queueStub{}
	m := NewMaintainer(categories, countries, queue)

	m.OnJobCreated(context.Background(), kernel.NewCategoryID("gone"), kernel.NewCountryID("cty-1"))

	assert.Empty(t, queue.adjustments)
	// The healthy dimension is still adjusted
	assert.Equal(t, 1, countries.deltas[kernel.NewCountryID("cty-1")])
}

func TestFailedAdjustmentIsQueued(t *testing.T) {
	categories := &categoryCounterStub{err: testRegistry.New(codeUnavailable)}
	countries := &countryCounterStub{}
	queue := &queueStub{}
	m := NewMaintainer(categories, countries, queue)

	catID := kernel.NewCategoryID("cat-1")
	m.OnJobCreated(context.Background(), catID, kernel.NewCountryID("cty-1"))

	require.Len(t, queue.adjustments, 1)
	adj := queue.adjustments[0]
	assert.Equal(t, EntityCategory, adj.Entity)
	assert.Equal(t, catID.String(), adj.ID)
	assert.Equal(t, 1, adj.Delta)
	assert.NotEmpty(t, adj.Reason)
	assert.False(t, adj.At.IsZero())
}

func TestNilQueueOnlyLogs(t *testing.T) {
	categories := &categoryCounterStub{err: testRegistry.New(codeUnavailable)}
	countries := &countryCounterStub{}
	m := NewMaintainer(categories, countries, nil)

	// Must not panic without a queue
	m.OnJobDeleted(context.Background(), kernel.NewCategoryID("cat-1"), kernel.NewCountryID("cty-1"))
	assert.Equal(t, -1, countries.deltas[kernel.NewCountryID("cty-1")])
}
