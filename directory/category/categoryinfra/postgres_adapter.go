package categoryinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/job360/directory/directory/category"
	"github.com/job360/directory/pkg/kernel"
	"github.com/lib/pq"
)

// PostgresCategoryRepository implements category.Repository using PostgreSQL.
type PostgresCategoryRepository struct {
	db *sqlx.DB
}

// NewPostgresCategoryRepository creates a new PostgreSQL category repository
func NewPostgresCategoryRepository(db *sqlx.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{
		db: db,
	}
}

var _ category.Repository = (*PostgresCategoryRepository)(nil)

type categoryModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	Icon        string    `db:"icon"`
	Color       string    `db:"color"`
	IsActive    bool      `db:"is_active"`
	JobCount    int       `db:"job_count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type categoryCountRow struct {
	categoryModel
	ActualJobCount int `db:"actual_job_count"`
}

func (m *categoryModel) toEntity() *category.Category {
	return &category.Category{
		ID:          kernel.CategoryID(m.ID),
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Icon:        m.Icon,
		Color:       m.Color,
		IsActive:    m.IsActive,
		JobCount:    m.JobCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromEntity(c *category.Category) *categoryModel {
	return &categoryModel{
		ID:          string(c.ID),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		IsActive:    c.IsActive,
		JobCount:    c.JobCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// Create creates a new category
func (r *PostgresCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (
			id, name, slug, description, icon, color,
			is_active, job_count, created_at, updated_at
		) VALUES (
			:id, :name, :slug, :description, :icon, :color,
			:is_active, :job_count, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, fromEntity(c))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return category.ErrAlreadyExists()
		}
		return category.ErrStoreUnavailable(fmt.Errorf("failed to create category: %w", err))
	}

	return nil
}

// Update updates an existing category
func (r *PostgresCategoryRepository) Update(ctx context.Context, id kernel.CategoryID, c *category.Category) error {
	model := fromEntity(c)
	model.ID = string(id)

	query := `
		UPDATE categories SET
			name = :name,
			slug = :slug,
			description = :description,
			icon = :icon,
			color = :color,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return category.ErrAlreadyExists()
		}
		return category.ErrStoreUnavailable(fmt.Errorf("failed to update category: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return category.ErrStoreUnavailable(fmt.Errorf("failed to get rows affected: %w", err))
	}

	if rows == 0 {
		return category.ErrCategoryNotFound()
	}

	return nil
}

// GetByID retrieves a category by ID
func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id kernel.CategoryID) (*category.Category, error) {
	query := `SELECT * FROM categories WHERE id = $1`

	var model categoryModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrCategoryNotFound()
		}
		return nil, category.ErrStoreUnavailable(fmt.Errorf("failed to get category by id: %w", err))
	}

	return model.toEntity(), nil
}

// Delete deletes a category by ID
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id kernel.CategoryID) error {
	query := `DELETE FROM categories WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return category.ErrStoreUnavailable(fmt.Errorf("failed to delete category: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return category.ErrStoreUnavailable(fmt.Errorf("failed to get rows affected: %w", err))
	}

	if rows == 0 {
		return category.ErrCategoryNotFound()
	}

	return nil
}

// List retrieves categories matching the filter, sorted by name ascending
func (r *PostgresCategoryRepository) List(ctx context.Context, filter category.ListFilter) ([]category.Category, error) {
	query := `SELECT * FROM categories`
	args := []interface{}{}
	if filter.IsActive != nil {
		query += ` WHERE is_active = $1`
		args = append(args, *filter.IsActive)
	}
	query += ` ORDER BY name ASC`

	var models []categoryModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, category.ErrStoreUnavailable(fmt.Errorf("failed to list categories: %w", err))
	}

	categories := make([]category.Category, 0, len(models))
	for i := range models {
		categories = append(categories, *models[i].toEntity())
	}
	return categories, nil
}

// ListWithJobCounts retrieves categories with their exact job counts computed
// from the live jobs table, bypassing the denormalized counter.
func (r *PostgresCategoryRepository) ListWithJobCounts(ctx context.Context, filter category.ListFilter) ([]category.WithJobCount, error) {
	query := `
		SELECT c.*,
			(SELECT COUNT(*) FROM jobs j WHERE j.category_id = c.id) AS actual_job_count
		FROM categories c
	`
	args := []interface{}{}
	if filter.IsActive != nil {
		query += ` WHERE c.is_active = $1`
		args = append(args, *filter.IsActive)
	}
	query += ` ORDER BY c.name ASC`

	var rows []categoryCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, category.ErrStoreUnavailable(fmt.Errorf("failed to list categories with job counts: %w", err))
	}

	results := make([]category.WithJobCount, 0, len(rows))
	for i := range rows {
		results = append(results, category.WithJobCount{
			Category:       *rows[i].categoryModel.toEntity(),
			ActualJobCount: rows[i].ActualJobCount,
		})
	}
	return results, nil
}

// CountActive counts active categories
func (r *PostgresCategoryRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM categories WHERE is_active = true`); err != nil {
		return 0, category.ErrStoreUnavailable(fmt.Errorf("failed to count categories: %w", err))
	}
	return count, nil
}

// IncrementJobCount atomically adds delta to a single category's counter
func (r *PostgresCategoryRepository) IncrementJobCount(ctx context.Context, id kernel.CategoryID, delta int) error {
	query := `UPDATE categories SET job_count = job_count + $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, delta, string(id))
	if err != nil {
		return category.ErrStoreUnavailable(fmt.Errorf("failed to increment job count: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return category.ErrStoreUnavailable(fmt.Errorf("failed to get rows affected: %w", err))
	}

	if rows == 0 {
		return category.ErrCategoryNotFound()
	}

	return nil
}

// RecountJobCount recomputes the counter from the live jobs table
func (r *PostgresCategoryRepository) RecountJobCount(ctx context.Context, id kernel.CategoryID) (int, error) {
	query := `
		UPDATE categories
		SET job_count = (SELECT COUNT(*) FROM jobs j WHERE j.category_id = categories.id)
		WHERE id = $1
		RETURNING job_count
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, category.ErrCategoryNotFound()
		}
		return 0, category.ErrStoreUnavailable(fmt.Errorf("failed to recount job count: %w", err))
	}

	return count, nil
}

// RecountAll recomputes every category's counter from the live jobs table
func (r *PostgresCategoryRepository) RecountAll(ctx context.Context) error {
	query := `
		UPDATE categories
		SET job_count = (SELECT COUNT(*) FROM jobs j WHERE j.category_id = categories.id)
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return category.ErrStoreUnavailable(fmt.Errorf("failed to recount job counts: %w", err))
	}
	return nil
}
