package categoryapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/job360/directory/directory/category"
	"github.com/job360/directory/directory/category/categorysrv"
	"github.com/job360/directory/pkg/kernel"
)

// Handlers provides HTTP handlers for category operations
type Handlers struct {
	service *categorysrv.CategoryService
}

// NewHandlers creates a new category handlers instance
func NewHandlers(service *categorysrv.CategoryService) *Handlers {
	return &Handlers{
		service: service,
	}
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// parseListFilter reads isActive. The default lists only active categories;
// the literal "all" lifts the filter.
func parseListFilter(c *fiber.Ctx) (category.ListFilter, error) {
	filter := category.ListFilter{}
	switch c.Query("isActive") {
	case "", "true":
		active := true
		filter.IsActive = &active
	case "false":
		inactive := false
		filter.IsActive = &inactive
	case "all":
	default:
		return filter, category.ErrInvalidQuery().
			WithDetail("isActive", "must be true, false or all")
	}
	return filter, nil
}

// ListCategories retrieves categories sorted by name. With
// includeJobCount=true each category carries an exact count recomputed from
// the live jobs collection.
// GET /api/categories
func (h *Handlers) ListCategories(c *fiber.Ctx) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}

	if c.Query("includeJobCount") == "true" {
		listed, err := h.service.ListCategoriesWithJobCounts(c.Context(), filter)
		if err != nil {
			return err
		}
		return c.JSON(dataResponse{Success: true, Data: listed})
	}

	listed, err := h.service.ListCategories(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dataResponse{Success: true, Data: listed})
}

// GetCategoryByID retrieves a category by ID
// GET /api/categories/:id
func (h *Handlers) GetCategoryByID(c *fiber.Ctx) error {
	id := kernel.CategoryID(c.Params("id"))
	if id.IsEmpty() {
		return category.ErrCategoryNotFound().WithDetail("id", "missing or empty")
	}

	found, err := h.service.GetCategoryByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(dataResponse{Success: true, Data: found})
}

// CreateCategory creates a new category
// POST /api/categories
func (h *Handlers) CreateCategory(c *fiber.Ctx) error {
	var req category.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return category.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.CreateCategory(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dataResponse{Success: true, Data: created})
}

// UpdateCategory applies a partial update to a category
// PUT /api/categories/:id
func (h *Handlers) UpdateCategory(c *fiber.Ctx) error {
	id := kernel.CategoryID(c.Params("id"))
	if id.IsEmpty() {
		return category.ErrCategoryNotFound().WithDetail("id", "missing or empty")
	}

	var req category.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return category.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateCategory(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(dataResponse{Success: true, Data: updated})
}

// DeleteCategory deletes a category unless jobs still reference it
// DELETE /api/categories/:id
func (h *Handlers) DeleteCategory(c *fiber.Ctx) error {
	id := kernel.CategoryID(c.Params("id"))
	if id.IsEmpty() {
		return category.ErrCategoryNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteCategory(c.Context(), id); err != nil {
		return err
	}

	return c.JSON(messageResponse{Success: true, Message: "Category deleted successfully"})
}

// RegisterRoutes registers all category routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/categories")

	api.Get("/", handlers.ListCategories)
	api.Get("/:id", handlers.GetCategoryByID)
	api.Post("/", handlers.CreateCategory)
	api.Put("/:id", handlers.UpdateCategory)
	api.Delete("/:id", handlers.DeleteCategory)
}
