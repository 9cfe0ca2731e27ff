package jobapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/directory/job/jobsrv"
	"github.com/job360/directory/pkg/kernel"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
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

type paginationMeta struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalJobs   int  `json:"totalJobs"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	Limit       int  `json:"limit"`
}

type listJobsResponse struct {
	Success    bool              `json:"success"`
	Data       []job.JobResponse `json:"data"`
	Pagination paginationMeta    `json:"pagination"`
}

// ListJobs retrieves one page of jobs with filtering, search and sorting
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}
	sort, err := parseSort(c)
	if err != nil {
		return err
	}
	pagination, err := parsePagination(c)
	if err != nil {
		return err
	}

	page, err := h.service.ListJobs(c.Context(), filter, sort, pagination)
	if err != nil {
		return err
	}

	return c.JSON(listJobsResponse{
		Success: true,
		Data:    page.Items,
		Pagination: paginationMeta{
			CurrentPage: page.Page.Number,
			TotalPages:  page.Page.Pages,
			TotalJobs:   page.Page.Total,
			HasNextPage: page.Page.HasNext,
			HasPrevPage: page.Page.HasPrev,
			Limit:       page.Page.Size,
		},
	})
}

// ListAllJobs retrieves every job unpaginated
// GET /api/jobs/all
func (h *Handlers) ListAllJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListAllJobs(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(dataResponse{Success: true, Data: jobs})
}

// GetStatsOverview returns aggregate counts for dashboards
// GET /api/jobs/stats/overview
func (h *Handlers) GetStatsOverview(c *fiber.Ctx) error {
	stats, err := h.service.GetStatsOverview(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(dataResponse{Success: true, Data: stats})
}

// GetJobByID retrieves a single job and counts the view
// GET /api/jobs/:id
func (h *Handlers) GetJobByID(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	jobResp, err := h.service.GetJobByID(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(dataResponse{Success: true, Data: jobResp})
}

// CreateJob creates a new job posting
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	newJob, err := h.service.CreateJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dataResponse{Success: true, Data: newJob})
}

// UpdateJob applies a partial update to a job
// PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateJob(c.Context(), jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(dataResponse{Success: true, Data: updated})
}

// DeleteJob deletes a job
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteJob(c.Context(), jobID); err != nil {
		return err
	}

	return c.JSON(messageResponse{Success: true, Message: "Job deleted successfully"})
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/jobs")

	api.Get("/", handlers.ListJobs)
	api.Get("/all", handlers.ListAllJobs)
	api.Get("/stats/overview", handlers.GetStatsOverview)
	api.Get("/:id", handlers.GetJobByID)
	api.Post("/", handlers.CreateJob)
	api.Put("/:id", handlers.UpdateJob)
	api.Delete("/:id", handlers.DeleteJob)
}
