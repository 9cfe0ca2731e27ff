package contactinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/job360/directory/directory/contact"
	"github.com/job360/directory/pkg/kernel"
)

// PostgresContactRepository implements contact.Repository using PostgreSQL.
type PostgresContactRepository struct {
	db *sqlx.DB
}

// NewPostgresContactRepository creates a new PostgreSQL contact repository
func NewPostgresContactRepository(db *sqlx.DB) *PostgresContactRepository {
	return &PostgresContactRepository{
		db: db,
	}
}

var _ contact.Repository = (*PostgresContactRepository)(nil)

type contactModel struct {
	ID          string    `db:"id"`
	FullName    string    `db:"full_name"`
	PhoneNumber string    `db:"phone_number"`
	Email       string    `db:"email"`
	JobTitle    string    `db:"job_title"`
	CreatedAt   time.Time `db:"created_at"`
}

func (m *contactModel) toEntity() *contact.Submission {
	return &contact.Submission{
		ID:          kernel.ContactID(m.ID),
		FullName:    m.FullName,
		PhoneNumber: m.PhoneNumber,
		Email:       m.Email,
		JobTitle:    m.JobTitle,
		CreatedAt:   m.CreatedAt,
	}
}

// Create persists a contact submission
func (r *PostgresContactRepository) Create(ctx context.Context, s *contact.Submission) error {
	query := `
		INSERT INTO contact_submissions (
			id, full_name, phone_number, email, job_title, created_at
		) VALUES (
			:id, :full_name, :phone_number, :email, :job_title, :created_at
		)
	`

	model := &contactModel{
		ID:          string(s.ID),
		FullName:    s.FullName,
		PhoneNumber: s.PhoneNumber,
		Email:       s.Email,
		JobTitle:    s.JobTitle,
		CreatedAt:   s.CreatedAt,
	}

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return contact.ErrStoreUnavailable(fmt.Errorf("failed to create contact submission: %w", err))
	}
	return nil
}

// List retrieves submissions newest-first
func (r *PostgresContactRepository) List(ctx context.Context) ([]contact.Submission, error) {
	query := `SELECT * FROM contact_submissions ORDER BY created_at DESC`

	var models []contactModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, contact.ErrStoreUnavailable(fmt.Errorf("failed to list contact submissions: %w", err))
	}

	submissions := make([]contact.Submission, 0, len(models))
	for i := range models {
		submissions = append(submissions, *models[i].toEntity())
	}
	return submissions, nil
}
