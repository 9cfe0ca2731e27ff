package contact

// CreateSubmissionRequest - DTO for submitting the contact form
type CreateSubmissionRequest struct {
	FullName    string `json:"full_name" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,max=30"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	JobTitle    string `json:"job_title,omitempty" validate:"omitempty,max=100"`
}
