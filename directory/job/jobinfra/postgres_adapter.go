package jobinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL.
// Nested documents (location, salary, experience range, string lists) are
// stored as JSONB columns; counters are adjusted with atomic single-row adds.
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

var _ job.Repository = (*PostgresJobRepository)(nil)

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID                  string          `db:"id"`
	Title               string          `db:"title"`
	Company             string          `db:"company"`
	Description         string          `db:"description"`
	Requirements        string          `db:"requirements"`
	CategoryID          string          `db:"category_id"`
	CountryID           string          `db:"country_id"`
	Location            json.RawMessage `db:"location"`
	JobType             string          `db:"job_type"`
	ExperienceLevel     string          `db:"experience_level"`
	ExperienceRange     json.RawMessage `db:"experience_range"`
	Salary              json.RawMessage `db:"salary"`
	Vacancies           int             `db:"vacancies"`
	Qualifications      json.RawMessage `db:"qualifications"`
	Skills              json.RawMessage `db:"skills"`
	Benefits            json.RawMessage `db:"benefits"`
	ApplicationDeadline *time.Time      `db:"application_deadline"`
	ContactEmail        string          `db:"contact_email"`
	ContactPhone        string          `db:"contact_phone"`
	IsActive            bool            `db:"is_active"`
	IsFeatured          bool            `db:"is_featured"`
	Views               int             `db:"views"`
	Applications        int             `db:"applications"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

// jobRow extends the model with the populated projection columns of the
// category/country joins. The wide-only columns stay NULL on narrow reads.
type jobRow struct {
	jobModel
	CategoryName    sql.NullString  `db:"category_name"`
	CategorySlug    sql.NullString  `db:"category_slug"`
	CategoryColor   sql.NullString  `db:"category_color"`
	CategoryIcon    sql.NullString  `db:"category_icon"`
	CountryName     sql.NullString  `db:"country_name"`
	CountryCode     sql.NullString  `db:"country_code"`
	CountryFlag     sql.NullString  `db:"country_flag"`
	CountryCurrency json.RawMessage `db:"country_currency"`
}

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() (*job.Job, error) {
	entity := &job.Job{
		ID:                  kernel.JobID(m.ID),
		Title:               m.Title,
		Company:             m.Company,
		Description:         m.Description,
		Requirements:        m.Requirements,
		CategoryID:          kernel.CategoryID(m.CategoryID),
		CountryID:           kernel.CountryID(m.CountryID),
		JobType:             job.JobType(m.JobType),
		ExperienceLevel:     job.ExperienceLevel(m.ExperienceLevel),
		Vacancies:           m.Vacancies,
		ApplicationDeadline: m.ApplicationDeadline,
		ContactEmail:        m.ContactEmail,
		ContactPhone:        m.ContactPhone,
		IsActive:            m.IsActive,
		IsFeatured:          m.IsFeatured,
		Views:               m.Views,
		Applications:        m.Applications,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}

	for _, doc := range []struct {
		raw  json.RawMessage
		into any
		name string
	}{
		{m.Location, &entity.Location, "location"},
		{m.ExperienceRange, &entity.ExperienceRange, "experience range"},
		{m.Salary, &entity.Salary, "salary"},
		{m.Qualifications, &entity.Qualifications, "qualifications"},
		{m.Skills, &entity.Skills, "skills"},
		{m.Benefits, &entity.Benefits, "benefits"},
	} {
		if len(doc.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(doc.raw, doc.into); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", doc.name, err)
		}
	}

	return entity, nil
}

// toEntityPopulated converts a joined row, attaching the projection summaries.
func (r *jobRow) toEntityPopulated() (*job.Job, error) {
	entity, err := r.jobModel.toEntity()
	if err != nil {
		return nil, err
	}

	if r.CategoryName.Valid {
		entity.Category = &job.CategorySummary{
			Name:  r.CategoryName.String,
			Slug:  r.CategorySlug.String,
			Color: r.CategoryColor.String,
			Icon:  r.CategoryIcon.String,
		}
	}
	if r.CountryName.Valid {
		summary := &job.CountrySummary{
			Name: r.CountryName.String,
			Code: r.CountryCode.String,
			Flag: r.CountryFlag.String,
		}
		if len(r.CountryCurrency) > 0 {
			var cur job.Currency
			if err := json.Unmarshal(r.CountryCurrency, &cur); err != nil {
				return nil, fmt.Errorf("failed to unmarshal country currency: %w", err)
			}
			if cur.Code != "" || cur.Symbol != "" {
				summary.Currency = &cur
			}
		}
		entity.Country = summary
	}

	return entity, nil
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) (*jobModel, error) {
	model := &jobModel{
		ID:                  string(j.ID),
		Title:               j.Title,
		Company:             j.Company,
		Description:         j.Description,
		Requirements:        j.Requirements,
		CategoryID:          string(j.CategoryID),
		CountryID:           string(j.CountryID),
		JobType:             string(j.JobType),
		ExperienceLevel:     string(j.ExperienceLevel),
		Vacancies:           j.Vacancies,
		ApplicationDeadline: j.ApplicationDeadline,
		ContactEmail:        j.ContactEmail,
		ContactPhone:        j.ContactPhone,
		IsActive:            j.IsActive,
		IsFeatured:          j.IsFeatured,
		Views:               j.Views,
		Applications:        j.Applications,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}

	for _, doc := range []struct {
		value any
		into  *json.RawMessage
		name  string
	}{
		{j.Location, &model.Location, "location"},
		{j.ExperienceRange, &model.ExperienceRange, "experience range"},
		{j.Salary, &model.Salary, "salary"},
		{j.Qualifications, &model.Qualifications, "qualifications"},
		{j.Skills, &model.Skills, "skills"},
		{j.Benefits, &model.Benefits, "benefits"},
	} {
		raw, err := json.Marshal(doc.value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", doc.name, err)
		}
		*doc.into = raw
	}

	return model, nil
}

// ============================================================================
// Predicate Building
// ============================================================================

// buildPredicate translates a ListFilter into a WHERE clause over the aliased
// jobs table. The same clause backs both the COUNT and the page query so the
// two can never disagree.
func buildPredicate(filter job.ListFilter) (string, []interface{}) {
	whereConditions := []string{}
	args := []interface{}{}
	argCount := 1

	if filter.IsActive != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("j.is_active = $%d", argCount))
		args = append(args, *filter.IsActive)
		argCount++
	}

	if !filter.Category.IsEmpty() {
		whereConditions = append(whereConditions, fmt.Sprintf("j.category_id = $%d", argCount))
		args = append(args, filter.Category.String())
		argCount++
	}

	if !filter.Country.IsEmpty() {
		whereConditions = append(whereConditions, fmt.Sprintf("j.country_id = $%d", argCount))
		args = append(args, filter.Country.String())
		argCount++
	}

	if filter.JobType != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("j.job_type = $%d", argCount))
		args = append(args, string(filter.JobType))
		argCount++
	}

	if filter.ExperienceLevel != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("j.experience_level = $%d", argCount))
		args = append(args, string(filter.ExperienceLevel))
		argCount++
	}

	if filter.Search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf(
			"(j.title ILIKE $%d OR j.company ILIKE $%d OR j.description ILIKE $%d)",
			argCount, argCount, argCount))
		args = append(args, "%"+filter.Search+"%")
		argCount++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = "WHERE " + strings.Join(whereConditions, " AND ")
	}

	return whereClause, args
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// orderClause maps a wire-format sort onto a SQL ORDER BY. camelCase field
// names become snake_case columns; anything that is not a bare identifier is
// replaced by the default ordering.
func orderClause(sort job.Sort) string {
	column := camelToSnake(sort.Field)
	if column == "" || !identifierPattern.MatchString(column) {
		column = "created_at"
	}
	direction := "ASC"
	if sort.Desc {
		direction = "DESC"
	}
	return fmt.Sprintf("ORDER BY j.%s %s", column, direction)
}

func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const narrowProjection = `
	c.name AS category_name, c.slug AS category_slug, c.color AS category_color,
	NULL AS category_icon,
	co.name AS country_name, co.code AS country_code, co.flag AS country_flag,
	NULL AS country_currency
`

const wideProjection = `
	c.name AS category_name, c.slug AS category_slug, c.color AS category_color,
	c.icon AS category_icon,
	co.name AS country_name, co.code AS country_code, co.flag AS country_flag,
	co.currency AS country_currency
`

const joinClause = `
	FROM jobs j
	LEFT JOIN categories c ON c.id = j.category_id
	LEFT JOIN countries co ON co.id = j.country_id
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new job
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobs (
			id, title, company, description, requirements,
			category_id, country_id, location, job_type, experience_level,
			experience_range, salary, vacancies, qualifications, skills,
			benefits, application_deadline, contact_email, contact_phone,
			is_active, is_featured, views, applications, created_at, updated_at
		) VALUES (
			:id, :title, :company, :description, :requirements,
			:category_id, :country_id, :location, :job_type, :experience_level,
			:experience_range, :salary, :vacancies, :qualifications, :skills,
			:benefits, :application_deadline, :contact_email, :contact_phone,
			:is_active, :is_featured, :views, :applications, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return job.ErrAlreadyExists(fmt.Errorf("duplicate job id: %w", err))
		}
		return job.ErrStoreUnavailable(fmt.Errorf("failed to create job: %w", err))
	}

	return nil
}

// Update updates an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE jobs SET
			title = :title,
			company = :company,
			description = :description,
			requirements = :requirements,
			category_id = :category_id,
			country_id = :country_id,
			location = :location,
			job_type = :job_type,
			experience_level = :experience_level,
			experience_range = :experience_range,
			salary = :salary,
			vacancies = :vacancies,
			qualifications = :qualifications,
			skills = :skills,
			benefits = :benefits,
			application_deadline = :application_deadline,
			contact_email = :contact_email,
			contact_phone = :contact_phone,
			is_active = :is_active,
			is_featured = :is_featured,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return job.ErrStoreUnavailable(fmt.Errorf("failed to update job: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return job.ErrStoreUnavailable(fmt.Errorf("failed to get rows affected: %w", err))
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// GetByID retrieves a job by ID without populated references
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `SELECT * FROM jobs WHERE id = $1`

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, job.ErrStoreUnavailable(fmt.Errorf("failed to get job by id: %w", err))
	}

	return model.toEntity()
}

// GetByIDPopulated retrieves a job by ID with the wide projection.
func (r *PostgresJobRepository) GetByIDPopulated(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := fmt.Sprintf("SELECT j.*, %s %s WHERE j.id = $1", wideProjection, joinClause)

	var row jobRow
	err := r.db.GetContext(ctx, &row, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, job.ErrStoreUnavailable(fmt.Errorf("failed to get job by id: %w", err))
	}

	return row.toEntityPopulated()
}

// Delete deletes a job by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return job.ErrStoreUnavailable(fmt.Errorf("failed to delete job: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return job.ErrStoreUnavailable(fmt.Errorf("failed to get rows affected: %w", err))
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// List retrieves one page of jobs matching the filter with the narrow projection
func (r *PostgresJobRepository) List(ctx context.Context, filter job.ListFilter, sort job.Sort, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	whereClause, args := buildPredicate(filter)

	// Count total under the identical predicate
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) %s %s", joinClause, whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, job.ErrStoreUnavailable(fmt.Errorf("failed to count jobs: %w", err))
	}

	// Get paginated results
	query := fmt.Sprintf(
		"SELECT j.*, %s %s %s %s LIMIT $%d OFFSET $%d",
		narrowProjection, joinClause, whereClause, orderClause(sort),
		len(args)+1, len(args)+2,
	)
	args = append(args, pagination.PageSize, pagination.Offset())

	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, job.ErrStoreUnavailable(fmt.Errorf("failed to list jobs: %w", err))
	}

	entities := make([]job.Job, 0, len(rows))
	for i := range rows {
		entity, err := rows[i].toEntityPopulated()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return &kernel.Paginated[job.Job]{
		Items: entities,
		Page:  kernel.NewPage(pagination, total),
		Empty: len(entities) == 0,
	}, nil
}

// ListAll retrieves every job with the narrow projection, unpaginated
func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	query := fmt.Sprintf("SELECT j.*, %s %s", narrowProjection, joinClause)

	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, job.ErrStoreUnavailable(fmt.Errorf("failed to list all jobs: %w", err))
	}

	entities := make([]job.Job, 0, len(rows))
	for i := range rows {
		entity, err := rows[i].toEntityPopulated()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return entities, nil
}

// Count counts jobs matching the filter
func (r *PostgresJobRepository) Count(ctx context.Context, filter job.ListFilter) (int64, error) {
	whereClause, args := buildPredicate(filter)

	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) %s %s", joinClause, whereClause)
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, job.ErrStoreUnavailable(fmt.Errorf("failed to count jobs: %w", err))
	}

	return count, nil
}

// CountByCategory counts jobs referencing a category
func (r *PostgresJobRepository) CountByCategory(ctx context.Context, id kernel.CategoryID) (int64, error) {
	query := `SELECT COUNT(*) FROM jobs WHERE category_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, string(id)); err != nil {
		return 0, job.ErrStoreUnavailable(fmt.Errorf("failed to count jobs by category: %w", err))
	}

	return count, nil
}

// CountByCountry counts jobs referencing a country
func (r *PostgresJobRepository) CountByCountry(ctx context.Context, id kernel.CountryID) (int64, error) {
	query := `SELECT COUNT(*) FROM jobs WHERE country_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, string(id)); err != nil {
		return 0, job.ErrStoreUnavailable(fmt.Errorf("failed to count jobs by country: %w", err))
	}

	return count, nil
}

// IncrementViews atomically adds one to a job's view counter. A lost
// increment under concurrent reads of the same job is accepted.
func (r *PostgresJobRepository) IncrementViews(ctx context.Context, id kernel.JobID) error {
	query := `UPDATE jobs SET views = views + 1 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return job.ErrStoreUnavailable(fmt.Errorf("failed to increment views: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return job.ErrStoreUnavailable(fmt.Errorf("failed to get rows affected: %w", err))
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}
