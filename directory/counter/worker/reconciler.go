package worker

import (
	"context"
	"time"

	"github.com/job360/directory/directory/counter"
	"github.com/job360/directory/pkg/errx"
	"github.com/job360/directory/pkg/kernel"
	"github.com/job360/directory/pkg/logx"
)

// CategoryRecounter is the slice of the category repository the reconciler needs.
type CategoryRecounter interface {
	RecountJobCount(ctx context.Context, id kernel.CategoryID) (int, error)
	RecountAll(ctx context.Context) error
}

// CountryRecounter is the slice of the country repository the reconciler needs.
type CountryRecounter interface {
	RecountJobCount(ctx context.Context, id kernel.CountryID) (int, error)
	RecountAll(ctx context.Context) error
}

// Reconciler drains the reconciliation queue and corrects stale counters by
// recomputing them from the live jobs collection. Safe to run concurrently
// with ongoing writes; a recount reflects whatever state exists at query time.
type Reconciler struct {
	queue      counter.ReconciliationQueue
	categories CategoryRecounter
	countries  CountryRecounter
	workers    int
	pollEvery  time.Duration
}

func NewReconciler(queue counter.ReconciliationQueue, categories CategoryRecounter, countries CountryRecounter, workers int, pollEvery time.Duration) *Reconciler {
	if workers < 1 {
		workers = 1
	}
	if pollEvery <= 0 {
		pollEvery = 5 * time.Second
	}
	return &Reconciler{
		queue:      queue,
		categories: categories,
		countries:  countries,
		workers:    workers,
		pollEvery:  pollEvery,
	}
}

// Start launches the worker goroutines. They stop when ctx is cancelled.
func (r *Reconciler) Start(ctx context.Context) {
	logx.Infof("Starting %d counter reconciliation workers", r.workers)

	for i := 0; i < r.workers; i++ {
		go r.drain(ctx, i)
	}
}

func (r *Reconciler) drain(ctx context.Context, workerID int) {
	for {
		select {
		case <-ctx.Done():
			logx.Infof("Reconciliation worker %d stopping", workerID)
			return
		default:
			adj, err := r.queue.Dequeue(ctx, r.pollEvery)
			if err != nil {
				logx.Errorf("Reconciliation worker %d dequeue error: %v", workerID, err)
				r.sleep(ctx)
				continue
			}
			if adj == nil {
				// A non-blocking queue returns immediately when empty;
				// pause so the loop cannot spin hot.
				r.sleep(ctx)
				continue
			}
			r.Process(ctx, *adj)
		}
	}
}

func (r *Reconciler) sleep(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(r.pollEvery):
	}
}

// Process recounts the entity named by an adjustment event. The queued delta
// is deliberately not replayed: the recount derives the true value from
// source, so replaying could double-apply.
func (r *Reconciler) Process(ctx context.Context, adj counter.Adjustment) {
	var (
		count int
		err   error
	)
	switch adj.Entity {
	case counter.EntityCategory:
		count, err = r.categories.RecountJobCount(ctx, kernel.CategoryID(adj.ID))
	case counter.EntityCountry:
		count, err = r.countries.RecountJobCount(ctx, kernel.CountryID(adj.ID))
	default:
		logx.Warnf("unknown reconciliation entity %q, dropping event", adj.Entity)
		return
	}

	switch {
	case err == nil:
		logx.Infof("reconciled %s %s: jobCount=%d", adj.Entity, adj.ID, count)
	case errx.IsType(err, errx.TypeNotFound):
		// Entity deleted since the adjustment failed; nothing left to correct.
		logx.Warnf("%s %s no longer exists, dropping reconciliation event", adj.Entity, adj.ID)
	default:
		logx.Errorf("recount of %s %s failed, re-queueing: %v", adj.Entity, adj.ID, err)
		if qerr := r.queue.Enqueue(ctx, adj); qerr != nil {
			logx.Errorf("failed to re-queue reconciliation event for %s %s: %v", adj.Entity, adj.ID, qerr)
		}
	}
}

// ReconcileAll recomputes every category and country counter from source.
// Exposed for on-demand recovery (admin endpoint).
func (r *Reconciler) ReconcileAll(ctx context.Context) error {
	if err := r.categories.RecountAll(ctx); err != nil {
		return err
	}
	return r.countries.RecountAll(ctx)
}
