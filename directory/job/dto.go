package job

import (
	"time"

	"github.com/job360/directory/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest struct {
	Title               string            `json:"title" validate:"required,max=200"`
	Company             string            `json:"company" validate:"required,max=100"`
	Description         string            `json:"description" validate:"required"`
	Requirements        string            `json:"requirements,omitempty"`
	Category            kernel.CategoryID `json:"category" validate:"required"`
	Country             kernel.CountryID  `json:"country" validate:"required"`
	Location            Location          `json:"location" validate:"required"`
	JobType             JobType           `json:"jobType,omitempty" validate:"omitempty,oneof=full-time part-time contract freelance internship"`
	ExperienceLevel     ExperienceLevel   `json:"experienceLevel,omitempty" validate:"omitempty,oneof=entry mid senior executive"`
	ExperienceRange     *ExperienceRange  `json:"experienceRange,omitempty"`
	Salary              *Salary           `json:"salary,omitempty"`
	Vacancies           int               `json:"vacancies" validate:"required,min=1"`
	Qualifications      []string          `json:"qualifications,omitempty"`
	Skills              []string          `json:"skills,omitempty"`
	Benefits            []string          `json:"benefits,omitempty"`
	ApplicationDeadline *time.Time        `json:"applicationDeadline,omitempty"`
	ContactEmail        string            `json:"contactEmail,omitempty" validate:"omitempty,email"`
	ContactPhone        string            `json:"contactPhone,omitempty"`
	IsActive            *bool             `json:"isActive,omitempty"`
	IsFeatured          *bool             `json:"isFeatured,omitempty"`
}

// UpdateJobRequest - DTO for updating an existing job; nil fields are left untouched.
type UpdateJobRequest struct {
	Title               *string            `json:"title,omitempty" validate:"omitempty,max=200"`
	Company             *string            `json:"company,omitempty" validate:"omitempty,max=100"`
	Description         *string            `json:"description,omitempty"`
	Requirements        *string            `json:"requirements,omitempty"`
	Category            *kernel.CategoryID `json:"category,omitempty"`
	Country             *kernel.CountryID  `json:"country,omitempty"`
	Location            *Location          `json:"location,omitempty"`
	JobType             *JobType           `json:"jobType,omitempty" validate:"omitempty,oneof=full-time part-time contract freelance internship"`
	ExperienceLevel     *ExperienceLevel   `json:"experienceLevel,omitempty" validate:"omitempty,oneof=entry mid senior executive"`
	ExperienceRange     *ExperienceRange   `json:"experienceRange,omitempty"`
	Salary              *Salary            `json:"salary,omitempty"`
	Vacancies           *int               `json:"vacancies,omitempty" validate:"omitempty,min=1"`
	Qualifications      *[]string          `json:"qualifications,omitempty"`
	Skills              *[]string          `json:"skills,omitempty"`
	Benefits            *[]string          `json:"benefits,omitempty"`
	ApplicationDeadline *time.Time         `json:"applicationDeadline,omitempty"`
	ContactEmail        *string            `json:"contactEmail,omitempty" validate:"omitempty,email"`
	ContactPhone        *string            `json:"contactPhone,omitempty"`
	IsActive            *bool              `json:"isActive,omitempty"`
	IsFeatured          *bool              `json:"isFeatured,omitempty"`
}

// ListFilter holds the equality and search predicates of a list query.
// A nil IsActive bypasses the active filter; empty fields are omitted from
// the predicate entirely.
type ListFilter struct {
	IsActive        *bool
	Category        kernel.CategoryID
	Country         kernel.CountryID
	JobType         JobType
	ExperienceLevel ExperienceLevel
	Search          string
}

// Sort is a single-field sort order. Field uses the wire (camelCase) names.
type Sort struct {
	Field string
	Desc  bool
}

// DefaultSort returns the newest-first default ordering.
func DefaultSort() Sort {
	return Sort{Field: "createdAt", Desc: true}
}

// JobResponse - DTO for returning job data, including the derived display fields.
type JobResponse struct {
	Job
	ExperienceDisplay string `json:"experienceDisplay"`
	SalaryDisplay     string `json:"salaryDisplay"`
}

// NewJobResponse builds the response DTO, computing the derived fields.
func NewJobResponse(j *Job) JobResponse {
	return JobResponse{
		Job:               *j,
		ExperienceDisplay: j.ExperienceDisplay(),
		SalaryDisplay:     j.SalaryDisplay(),
	}
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// StatsOverviewResponse - aggregate counts computed from the live collections.
type StatsOverviewResponse struct {
	TotalJobs       int64 `json:"totalJobs"`
	ActiveJobs      int64 `json:"activeJobs"`
	InactiveJobs    int64 `json:"inactiveJobs"`
	TotalCategories int64 `json:"totalCategories"`
	TotalCountries  int64 `json:"totalCountries"`
}
