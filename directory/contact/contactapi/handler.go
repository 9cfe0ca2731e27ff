package contactapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/job360/directory/directory/contact"
	"github.com/job360/directory/directory/contact/contactsrv"
)

// Handlers provides HTTP handlers for contact operations
type Handlers struct {
	service *contactsrv.ContactService
}

// NewHandlers creates a new contact handlers instance
func NewHandlers(service *contactsrv.ContactService) *Handlers {
	return &Handlers{
		service: service,
	}
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// SubmitContact accepts a contact form submission
// POST /api/contact
func (h *Handlers) SubmitContact(c *fiber.Ctx) error {
	var req contact.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return contact.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	submission, err := h.service.SubmitContact(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dataResponse{Success: true, Data: submission})
}

// ListSubmissions retrieves submissions newest-first
// GET /api/contact
func (h *Handlers) ListSubmissions(c *fiber.Ctx) error {
	submissions, err := h.service.ListSubmissions(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(dataResponse{Success: true, Data: submissions})
}

// RegisterRoutes registers all contact routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/contact")

	api.Post("/", handlers.SubmitContact)
	api.Get("/", handlers.ListSubmissions)
}
