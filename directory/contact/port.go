package contact

import "context"

type Repository interface {
	// Create persists a contact submission
	Create(ctx context.Context, submission *Submission) error

	// List retrieves submissions newest-first
	List(ctx context.Context) ([]Submission, error)
}

// Notifier forwards a persisted submission to whoever handles inquiries.
// Delivery failures must not fail the submission itself.
type Notifier interface {
	Notify(ctx context.Context, submission *Submission) error
}
