package contactinfra

import (
	"context"
	"sort"
	"sync"

	"github.com/job360/directory/directory/contact"
	"github.com/job360/directory/pkg/logx"
)

// MemoryContactRepository is an in-memory contact.Repository used by tests
// and local runs.
type MemoryContactRepository struct {
	mu          sync.RWMutex
	submissions []*contact.Submission
}

// NewMemoryContactRepository creates an in-memory contact repository.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

var _ contact.Repository = (*MemoryContactRepository)(nil)

func (r *MemoryContactRepository) Create(ctx context.Context, s *contact.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.submissions = append(r.submissions, s.Clone())
	return nil
}

func (r *MemoryContactRepository) List(ctx context.Context) ([]contact.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listed := make([]contact.Submission, 0, len(r.submissions))
	for _, s := range r.submissions {
		listed = append(listed, *s.Clone())
	}
	sort.SliceStable(listed, func(a, b int) bool {
		return listed[a].CreatedAt.After(listed[b].CreatedAt)
	})
	return listed, nil
}

// ConsoleNotifier logs submissions instead of delivering them anywhere.
type ConsoleNotifier struct{}

// NewConsoleNotifier creates a notifier that writes to the application log.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

var _ contact.Notifier = (*ConsoleNotifier)(nil)

func (n *ConsoleNotifier) Notify(ctx context.Context, s *contact.Submission) error {
	logx.Infof("contact submission from %s (%s) about %q", s.FullName, s.PhoneNumber, s.JobTitle)
	return nil
}
