// Package counter keeps the denormalized job counters on categories and
// countries synchronized with actual job membership. Adjustments are atomic
// per-document increments; a failed adjustment after a committed job mutation
// is reported and queued for reconciliation, never silently dropped.
package counter

import (
	"context"
	"time"

	"github.com/job360/directory/pkg/errx"
	"github.com/job360/directory/pkg/kernel"
	"github.com/job360/directory/pkg/logx"
)

// Maintainer adjusts the category and country job counters on job lifecycle
// events. The caller must invoke exactly one entry point per state transition.
type Maintainer struct {
	categories CategoryCounters
	countries  CountryCounters
	queue      ReconciliationQueue
}

// NewMaintainer creates a counter maintainer. The queue may be nil, in which
// case failed adjustments are only logged.
func NewMaintainer(categories CategoryCounters, countries CountryCounters, queue ReconciliationQueue) *Maintainer {
	return &Maintainer{
		categories: categories,
		countries:  countries,
		queue:      queue,
	}
}

// OnJobCreated increments both counters by one.
func (m *Maintainer) OnJobCreated(ctx context.Context, categoryID kernel.CategoryID, countryID kernel.CountryID) {
	m.adjustCategory(ctx, categoryID, 1)
	m.adjustCountry(ctx, countryID, 1)
}

// OnJobDeleted decrements both counters by one. The caller must capture the
// job's references before deleting it; the document is gone afterward.
func (m *Maintainer) OnJobDeleted(ctx context.Context, categoryID kernel.CategoryID, countryID kernel.CountryID) {
	m.adjustCategory(ctx, categoryID, -1)
	m.adjustCountry(ctx, countryID, -1)
}

// OnJobReassigned moves one unit of count from the old referents to the new
// ones. An unchanged dimension is left untouched rather than decremented and
// re-incremented.
func (m *Maintainer) OnJobReassigned(ctx context.Context, oldCategory, newCategory kernel.CategoryID, oldCountry, newCountry kernel.CountryID) {
	if oldCategory != newCategory {
		m.adjustCategory(ctx, oldCategory, -1)
		m.adjustCategory(ctx, newCategory, 1)
	}
	if oldCountry != newCountry {
		m.adjustCountry(ctx, oldCountry, -1)
		m.adjustCountry(ctx, newCountry, 1)
	}
}

func (m *Maintainer) adjustCategory(ctx context.Context, id kernel.CategoryID, delta int) {
	err := m.categories.IncrementJobCount(ctx, id, delta)
	switch {
	case err == nil:
	case errx.IsType(err, errx.TypeNotFound):
		// The referent was removed out from under the job; nothing to adjust.
		logx.Warnf("category %s missing, skipping counter adjustment (%+d)", id, delta)
	default:
		m.report(ctx, Adjustment{
			Entity: EntityCategory,
			ID:     id.String(),
			Delta:  delta,
			Reason: err.Error(),
			At:     time.Now(),
		})
	}
}

func (m *Maintainer) adjustCountry(ctx context.Context, id kernel.CountryID, delta int) {
	err := m.countries.IncrementJobCount(ctx, id, delta)
	switch {
	case err == nil:
	case errx.IsType(err, errx.TypeNotFound):
		logx.Warnf("country %s missing, skipping counter adjustment (%+d)", id, delta)
	default:
		m.report(ctx, Adjustment{
			Entity: EntityCountry,
			ID:     id.String(),
			Delta:  delta,
			Reason: err.Error(),
			At:     time.Now(),
		})
	}
}

// report surfaces a failed adjustment. The job mutation has already committed,
// so the stale counter is logged and handed to the reconciliation queue.
func (m *Maintainer) report(ctx context.Context, adj Adjustment) {
	logx.Errorf("counter adjustment failed, counter is stale: entity=%s id=%s delta=%+d reason=%s",
		adj.Entity, adj.ID, adj.Delta, adj.Reason)

	if m.queue == nil {
		return
	}
	if err := m.queue.Enqueue(ctx, adj); err != nil {
		logx.Errorf("failed to enqueue reconciliation event for %s %s: %v", adj.Entity, adj.ID, err)
	}
}
