package countryinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/job360/directory/directory/country"
	"github.com/job360/directory/pkg/kernel"
	"github.com/lib/pq"
)

// PostgresCountryRepository implements country.Repository using PostgreSQL.
// The currency sub-document is stored as a JSONB column.
type PostgresCountryRepository struct {
	db *sqlx.DB
}

// NewPostgresCountryRepository creates a new PostgreSQL country repository
func NewPostgresCountryRepository(db *sqlx.DB) *PostgresCountryRepository {
	return &PostgresCountryRepository{
		db: db,
	}
}

var _ country.Repository = (*PostgresCountryRepository)(nil)

type countryModel struct {
	ID        string          `db:"id"`
	Name      string          `db:"name"`
	Code      string          `db:"code"`
	Flag      string          `db:"flag"`
	Currency  json.RawMessage `db:"currency"`
	Timezone  string          `db:"timezone"`
	IsActive  bool            `db:"is_active"`
	JobCount  int             `db:"job_count"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type countryCountRow struct {
	countryModel
	ActualJobCount int `db:"actual_job_count"`
}

func (m *countryModel) toEntity() (*country.Country, error) {
	entity := &country.Country{
		ID:        kernel.CountryID(m.ID),
		Name:      m.Name,
		Code:      m.Code,
		Flag:      m.Flag,
		Timezone:  m.Timezone,
		IsActive:  m.IsActive,
		JobCount:  m.JobCount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if len(m.Currency) > 0 {
		if err := json.Unmarshal(m.Currency, &entity.Currency); err != nil {
			return nil, fmt.Errorf("failed to unmarshal currency: %w", err)
		}
	}

	return entity, nil
}

func fromEntity(c *country.Country) (*countryModel, error) {
	currency, err := json.Marshal(c.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal currency: %w", err)
	}

	return &countryModel{
		ID:        string(c.ID),
		Name:      c.Name,
		Code:      c.Code,
		Flag:      c.Flag,
		Currency:  currency,
		Timezone:  c.Timezone,
		IsActive:  c.IsActive,
		JobCount:  c.JobCount,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

// Create creates a new country
func (r *PostgresCountryRepository) Create(ctx context.Context, c *country.Country) error {
	model, err := fromEntity(c)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO countries (
			id, name, code, flag, currency, timezone,
			is_active, job_count, created_at, updated_at
		) VALUES (
			:id, :name, :code, :flag, :currency, :timezone,
			:is_active, :job_count, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return country.ErrAlreadyExists()
		}
		return country.ErrStoreUnavailable(fmt.Errorf("failed to create country: %w", err))
	}

	return nil
}

// Update updates an existing country
func (r *PostgresCountryRepository) Update(ctx context.Context, id kernel.CountryID, c *country.Country) error {
	model, err := fromEntity(c)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE countries SET
			name = :name,
			code = :code,
			flag = :flag,
			currency = :currency,
			timezone = :timezone,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return country.ErrAlreadyExists()
		}
		return country.ErrStoreUnavailable(fmt.Errorf("failed to update country: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return country.ErrStoreUnavailable(fmt.Errorf("failed to get rows affected: %w", err))
	}

	if rows == 0 {
		return country.ErrCountryNotFound()
	}

	return nil
}

// GetByID retrieves a country by ID
func (r *PostgresCountryRepository) GetByID(ctx context.Context, id kernel.CountryID) (*country.Country, error) {
	query := `SELECT * FROM countries WHERE id = $1`

	var model countryModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, country.ErrCountryNotFound()
		}
		return nil, country.ErrStoreUnavailable(fmt.Errorf("failed to get country by id: %w", err))
	}

	return model.toEntity()
}

// Delete deletes a country by ID
func (r *PostgresCountryRepository) Delete(ctx context.Context, id kernel.CountryID) error {
	query := `DELETE FROM countries WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return country.ErrStoreUnavailable(fmt.Errorf("failed to delete country: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return country.ErrStoreUnavailable(fmt.Errorf("failed to get rows affected: %w", err))
	}

	if rows == 0 {
		return country.ErrCountryNotFound()
	}

	return nil
}

// List retrieves countries matching the filter, sorted by name ascending
func (r *PostgresCountryRepository) List(ctx context.Context, filter country.ListFilter) ([]country.Country, error) {
	query := `SELECT * FROM countries`
	args := []interface{}{}
	if filter.IsActive != nil {
		query += ` WHERE is_active = $1`
		args = append(args, *filter.IsActive)
	}
	query += ` ORDER BY name ASC`

	var models []countryModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, country.ErrStoreUnavailable(fmt.Errorf("failed to list countries: %w", err))
	}

	countries := make([]country.Country, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		countries = append(countries, *entity)
	}
	return countries, nil
}

// ListWithJobCounts retrieves countries with their exact job counts computed
// from the live jobs table, bypassing the denormalized counter.
func (r *PostgresCountryRepository) ListWithJobCounts(ctx context.Context, filter country.ListFilter) ([]country.WithJobCount, error) {
	query := `
		SELECT c.*,
			(SELECT COUNT(*) FROM jobs j WHERE j.country_id = c.id) AS actual_job_count
		FROM countries c
	`
	args := []interface{}{}
	if filter.IsActive != nil {
		query += ` WHERE c.is_active = $1`
		args = append(args, *filter.IsActive)
	}
	query += ` ORDER BY c.name ASC`

	var rows []countryCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, country.ErrStoreUnavailable(fmt.Errorf("failed to list countries with job counts: %w", err))
	}

	results := make([]country.WithJobCount, 0, len(rows))
	for i := range rows {
		entity, err := rows[i].countryModel.toEntity()
		if err != nil {
			return nil, err
		}
		results = append(results, country.WithJobCount{
			Country:        *entity,
			ActualJobCount: rows[i].ActualJobCount,
		})
	}
	return results, nil
}

// CountActive counts active countries
func (r *PostgresCountryRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM countries WHERE is_active = true`); err != nil {
		return 0, country.ErrStoreUnavailable(fmt.Errorf("failed to count countries: %w", err))
	}
	return count, nil
}

// IncrementJobCount atomically adds delta to a single country's counter
func (r *PostgresCountryRepository) IncrementJobCount(ctx context.Context, id kernel.CountryID, delta int) error {
	query := `UPDATE countries SET job_count = job_count + $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, delta, string(id))
	if err != nil {
		return country.ErrStoreUnavailable(fmt.Errorf("failed to increment job count: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return country.ErrStoreUnavailable(fmt.Errorf("failed to get rows affected: %w", err))
	}

	if rows == 0 {
		return country.ErrCountryNotFound()
	}

	return nil
}

// RecountJobCount recomputes the counter from the live jobs table
func (r *PostgresCountryRepository) RecountJobCount(ctx context.Context, id kernel.CountryID) (int, error) {
	query := `
		UPDATE countries
		SET job_count = (SELECT COUNT(*) FROM jobs j WHERE j.country_id = countries.id)
		WHERE id = $1
		RETURNING job_count
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, country.ErrCountryNotFound()
		}
		return 0, country.ErrStoreUnavailable(fmt.Errorf("failed to recount job count: %w", err))
	}

	return count, nil
}

// RecountAll recomputes every country's counter from the live jobs table
func (r *PostgresCountryRepository) RecountAll(ctx context.Context) error {
	query := `
		UPDATE countries
		SET job_count = (SELECT COUNT(*) FROM jobs j WHERE j.country_id = countries.id)
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return country.ErrStoreUnavailable(fmt.Errorf("failed to recount job counts: %w", err))
	}
	return nil
}
