package contactsrv

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/job360/directory/directory/contact"
	"github.com/job360/directory/pkg/kernel"
	"github.com/job360/directory/pkg/logx"
)

// ContactService persists contact submissions and hands them to the notifier.
type ContactService struct {
	repo     contact.Repository
	notifier contact.Notifier
	validate *validator.Validate
}

// NewContactService creates a new instance of the contact service
func NewContactService(repo contact.Repository, notifier contact.Notifier) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		validate: validator.New(),
	}
}

// SubmitContact validates and persists a submission, then notifies. A failed
// notification is logged but never fails the submission.
func (s *ContactService) SubmitContact(ctx context.Context, req contact.CreateSubmissionRequest) (*contact.Submission, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, contact.ErrInvalidPayload().WithDetail("validation", err.Error())
	}

	submission := &contact.Submission{
		ID:          kernel.NewContactID(uuid.NewString()),
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		JobTitle:    req.JobTitle,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, submission); err != nil {
			logx.Warnf("failed to notify contact submission %s: %v", submission.ID, err)
		}
	}

	return submission, nil
}

// ListSubmissions retrieves submissions newest-first
func (s *ContactService) ListSubmissions(ctx context.Context) ([]contact.Submission, error) {
	return s.repo.List(ctx)
}
