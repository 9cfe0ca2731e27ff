package contactsrv

import (
	"context"
	"testing"

	"github.com/job360/directory/directory/contact"
	"github.com/job360/directory/directory/contact/contactinfra"
	"github.com/job360/directory/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifierSpy struct {
	received []*contact.Submission
	err      error
}

func (n *notifierSpy) Notify(ctx context.Context, s *contact.Submission) error {
	if n.err != nil {
		return n.err
	}
	n.received = append(n.received, s)
	return nil
}

func TestSubmitContactPersistsAndNotifies(t *testing.T) {
	repo := contactinfra.NewMemoryContactRepository()
	spy := &notifierSpy{}
	svc := NewContactService(repo, spy)

	submission, err := svc.SubmitContact(context.Background(), contact.CreateSubmissionRequest{
		FullName:    "Jordan Reyes",
		PhoneNumber: "+1 512 555 0101",
		JobTitle:    "Backend Engineer",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, submission.ID)
	assert.False(t, submission.CreatedAt.IsZero())

	require.Len(t, spy.received, 1)
	assert.Equal(t, submission.ID, spy.received[0].ID)

	listed, err := svc.ListSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Jordan Reyes", listed[0].FullName)
}

func TestSubmitContactRejectsMissingFields(t *testing.T) {
	svc := NewContactService(contactinfra.NewMemoryContactRepository(), nil)

	_, err := svc.SubmitContact(context.Background(), contact.CreateSubmissionRequest{
		FullName: "No Phone",
	})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
}

func TestSubmitContactSurvivesNotifierFailure(t *testing.T) {
	repo := contactinfra.NewMemoryContactRepository()
	spy := &notifierSpy{err: assert.AnError}
	svc := NewContactService(repo, spy)

	_, err := svc.SubmitContact(context.Background(), contact.CreateSubmissionRequest{
		FullName:    "Jordan Reyes",
		PhoneNumber: "+1 512 555 0101",
	})
	require.NoError(t, err)

	listed, err := svc.ListSubmissions(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
