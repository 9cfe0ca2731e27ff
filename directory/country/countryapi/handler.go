package countryapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/job360/directory/directory/country"
	"github.com/job360/directory/directory/country/countrysrv"
	"github.com/job360/directory/pkg/kernel"
)

// Handlers provides HTTP handlers for country operations
type Handlers struct {
	service *countrysrv.CountryService
}

// NewHandlers creates a new country handlers instance
func NewHandlers(service *countrysrv.CountryService) *Handlers {
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

func parseListFilter(c *fiber.Ctx) (country.ListFilter, error) {
	filter := country.ListFilter{}
	switch c.Query("isActive") {
	case "", "true":
		active := true
		filter.IsActive = &active
	case "false":
		inactive := false
		filter.IsActive = &inactive
	case "all":
	default:
		return filter, country.ErrInvalidQuery().
			WithDetail("isActive", "must be true, false or all")
	}
	return filter, nil
}

// ListCountries retrieves countries sorted by name. With
// includeJobCount=true each country carries an exact count recomputed from
// the live jobs collection.
// GET /api/countries
func (h *Handlers) ListCountries(c *fiber.Ctx) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}

	if c.Query("includeJobCount") == "true" {
		listed, err := h.service.ListCountriesWithJobCounts(c.Context(), filter)
		if err != nil {
			return err
		}
		return c.JSON(dataResponse{Success: true, Data: listed})
	}

	listed, err := h.service.ListCountries(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dataResponse{Success: true, Data: listed})
}

// GetCountryByID retrieves a country by ID
// GET /api/countries/:id
func (h *Handlers) GetCountryByID(c *fiber.Ctx) error {
	id := kernel.CountryID(c.Params("id"))
	if id.IsEmpty() {
		return country.ErrCountryNotFound().WithDetail("id", "missing or empty")
	}

	found, err := h.service.GetCountryByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(dataResponse{Success: true, Data: found})
}

// CreateCountry creates a new country
// POST /api/countries
func (h *Handlers) CreateCountry(c *fiber.Ctx) error {
	var req country.CreateCountryRequest
	if err := c.BodyParser(&req); err != nil {
		return country.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.CreateCountry(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dataResponse{Success: true, Data: created})
}

// UpdateCountry applies a partial update to a country
// PUT /api/countries/:id
func (h *Handlers) UpdateCountry(c *fiber.Ctx) error {
	id := kernel.CountryID(c.Params("id"))
	if id.IsEmpty() {
		return country.ErrCountryNotFound().WithDetail("id", "missing or empty")
	}

	var req country.UpdateCountryRequest
	if err := c.BodyParser(&req); err != nil {
		return country.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateCountry(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(dataResponse{Success: true, Data: updated})
}

// DeleteCountry deletes a country unless jobs still reference it
// DELETE /api/countries/:id
func (h *Handlers) DeleteCountry(c *fiber.Ctx) error {
	id := kernel.CountryID(c.Params("id"))
	if id.IsEmpty() {
		return country.ErrCountryNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteCountry(c.Context(), id); err != nil {
		return err
	}

	return c.JSON(messageResponse{Success: true, Message: "Country deleted successfully"})
}

// RegisterRoutes registers all country routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/countries")

	api.Get("/", handlers.ListCountries)
	api.Get("/:id", handlers.GetCountryByID)
	api.Post("/", handlers.CreateCountry)
	api.Put("/:id", handlers.UpdateCountry)
	api.Delete("/:id", handlers.DeleteCountry)
}
