package categorysrv

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/job360/directory/directory/category"
	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/pkg/errx"
	"github.com/job360/directory/pkg/kernel"
)

// CategoryService provides business operations for categories
type CategoryService struct {
	categoryRepo category.Repository
	jobRepo      job.Repository
	validate     *validator.Validate
}

// NewCategoryService creates a new instance of the category service
func NewCategoryService(categoryRepo category.Repository, jobRepo job.Repository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		jobRepo:      jobRepo,
		validate:     validator.New(),
	}
}

// CreateCategory creates a new category. The slug is derived from the name
// and the counter starts at zero.
func (s *CategoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (*category.Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, category.ErrInvalidPayload().WithDetail("validation", err.Error())
	}

	now := time.Now()
	newCategory := &category.Category{
		ID:          kernel.NewCategoryID(uuid.NewString()),
		Name:        req.Name,
		Slug:        category.Slugify(req.Name),
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		IsActive:    true,
		JobCount:    0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if newCategory.Color == "" {
		newCategory.Color = category.DefaultColor
	}
	if req.IsActive != nil {
		newCategory.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Create(ctx, newCategory); err != nil {
		return nil, err
	}

	return newCategory, nil
}

// UpdateCategory applies a partial update. A name change recomputes the slug;
// the job counter is never client-writable.
func (s *CategoryService) UpdateCategory(ctx context.Context, id kernel.CategoryID, req category.UpdateCategoryRequest) (*category.Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, category.ErrInvalidPayload().WithDetail("validation", err.Error())
	}

	existing, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != existing.Name {
		existing.Rename(*req.Name)
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Icon != nil {
		existing.Icon = *req.Icon
	}
	if req.Color != nil {
		existing.Color = *req.Color
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteCategory removes a category unless any job still references it. The
// guard counts from the live jobs collection, never from the denormalized
// counter.
func (s *CategoryService) DeleteCategory(ctx context.Context, id kernel.CategoryID) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.jobRepo.CountByCategory(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to count referencing jobs", errx.TypeInternal)
	}
	if count > 0 {
		return category.ErrHasJobs(count)
	}

	return s.categoryRepo.Delete(ctx, id)
}

// GetCategoryByID retrieves a category by ID
func (s *CategoryService) GetCategoryByID(ctx context.Context, id kernel.CategoryID) (*category.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// ListCategories retrieves categories sorted by name
func (s *CategoryService) ListCategories(ctx context.Context, filter category.ListFilter) ([]category.Category, error) {
	return s.categoryRepo.List(ctx, filter)
}

// ListCategoriesWithJobCounts retrieves categories with exact counts from the
// live jobs collection
func (s *CategoryService) ListCategoriesWithJobCounts(ctx context.Context, filter category.ListFilter) ([]category.WithJobCount, error) {
	return s.categoryRepo.ListWithJobCounts(ctx, filter)
}
