package contact

import (
	"time"

	"github.com/job360/directory/pkg/kernel"
)

// Submission is a contact form entry left by a visitor.
type Submission struct {
	ID          kernel.ContactID `json:"id"`
	FullName    string           `json:"full_name"`
	PhoneNumber string           `json:"phone_number"`
	Email       string           `json:"email,omitempty"`
	JobTitle    string           `json:"job_title,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// Clone returns a copy safe to hand across store boundaries.
func (s *Submission) Clone() *Submission {
	clone := *s
	return &clone
}
