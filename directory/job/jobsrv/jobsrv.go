package jobsrv

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/job360/directory/directory/category"
	"github.com/job360/directory/directory/country"
	"github.com/job360/directory/directory/counter"
	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/pkg/errx"
	"github.com/job360/directory/pkg/kernel"
	"github.com/job360/directory/pkg/logx"
)

// JobService provides business operations for jobs
type JobService struct {
	jobRepo      job.Repository
	categoryRepo category.Repository
	countryRepo  country.Repository
	counters     *counter.Maintainer
	validate     *validator.Validate
}

// NewJobService creates a new instance of the job service
func NewJobService(
	jobRepo job.Repository,
	categoryRepo category.Repository,
	countryRepo country.Repository,
	counters *counter.Maintainer,
) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		categoryRepo: categoryRepo,
		countryRepo:  countryRepo,
		counters:     counters,
		validate:     validator.New(),
	}
}

// CreateJob creates a new job posting and adjusts the referenced counters.
// Reference validation happens before the write; a counter failure after the
// write never rolls the job back.
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.JobResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, job.ErrInvalidPayload().WithDetail("validation", err.Error())
	}

	if err := s.validateReferences(ctx, req.Category, req.Country); err != nil {
		return nil, err
	}

	now := time.Now()
	newJob := &job.Job{
		ID:                  kernel.NewJobID(uuid.NewString()),
		Title:               req.Title,
		Company:             req.Company,
		Description:         req.Description,
		Requirements:        req.Requirements,
		CategoryID:          req.Category,
		CountryID:           req.Country,
		Location:            req.Location,
		JobType:             req.JobType,
		ExperienceLevel:     req.ExperienceLevel,
		Vacancies:           req.Vacancies,
		Qualifications:      req.Qualifications,
		Skills:              req.Skills,
		Benefits:            req.Benefits,
		ApplicationDeadline: req.ApplicationDeadline,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if newJob.JobType == "" {
		newJob.JobType = job.JobTypeFullTime
	}
	if newJob.ExperienceLevel == "" {
		newJob.ExperienceLevel = job.ExperienceEntry
	}
	if req.ExperienceRange != nil {
		newJob.ExperienceRange = *req.ExperienceRange
	} else {
		newJob.ExperienceRange = job.ExperienceRange{Max: 10, Unit: job.ExperienceUnitYears}
	}
	if req.Salary != nil {
		newJob.Salary = *req.Salary
	} else {
		newJob.Salary = job.Salary{Currency: "USD", Period: job.SalaryPeriodYearly}
	}
	if req.IsActive != nil {
		newJob.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		newJob.IsFeatured = *req.IsFeatured
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	s.counters.OnJobCreated(ctx, newJob.CategoryID, newJob.CountryID)

	resp := job.NewJobResponse(newJob)
	return &resp, nil
}

// UpdateJob applies a partial update. A change of category or country is
// validated against the live referents and then moves the counters.
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, req job.UpdateJobRequest) (*job.JobResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, job.ErrInvalidPayload().WithDetail("validation", err.Error())
	}

	existing, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	oldCategory := existing.CategoryID
	oldCountry := existing.CountryID

	newCategory := oldCategory
	if req.Category != nil {
		newCategory = *req.Category
	}
	newCountry := oldCountry
	if req.Country != nil {
		newCountry = *req.Country
	}
	if newCategory != oldCategory {
		if err := s.validateCategory(ctx, newCategory); err != nil {
			return nil, err
		}
	}
	if newCountry != oldCountry {
		if err := s.validateCountry(ctx, newCountry); err != nil {
			return nil, err
		}
	}

	applyUpdate(existing, req)
	existing.CategoryID = newCategory
	existing.CountryID = newCountry
	existing.UpdatedAt = time.Now()

	if err := s.jobRepo.Update(ctx, jobID, existing); err != nil {
		return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}

	s.counters.OnJobReassigned(ctx, oldCategory, newCategory, oldCountry, newCountry)

	resp := job.NewJobResponse(existing)
	return &resp, nil
}

// DeleteJob removes a job and decrements the referenced counters. The job's
// references are captured before the delete; the document is gone afterward.
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID) error {
	existing, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	s.counters.OnJobDeleted(ctx, existing.CategoryID, existing.CountryID)
	return nil
}

// GetJobByID retrieves a single job with the wide populated projection and
// counts the view. A failed view increment does not fail the read.
func (s *JobService) GetJobByID(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByIDPopulated(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.IncrementViews(ctx, jobID); err != nil {
		logx.Warnf("failed to increment views for job %s: %v", jobID, err)
	} else {
		jobEntity.Views++
	}

	resp := job.NewJobResponse(jobEntity)
	return &resp, nil
}

// ListJobs retrieves one page of jobs matching the filter
func (s *JobService) ListJobs(ctx context.Context, filter job.ListFilter, sort job.Sort, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	page, err := s.jobRepo.List(ctx, filter, sort, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, job.NewJobResponse(&page.Items[i]))
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  page.Page,
		Empty: page.Empty,
	}, nil
}

// ListAllJobs retrieves every job unpaginated, newest first
func (s *JobService) ListAllJobs(ctx context.Context) ([]job.JobResponse, error) {
	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list all jobs", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, job.NewJobResponse(&jobs[i]))
	}
	return responses, nil
}

// GetStatsOverview computes the aggregate counts from the live collections,
// never from the denormalized counters.
func (s *JobService) GetStatsOverview(ctx context.Context) (*job.StatsOverviewResponse, error) {
	total, err := s.jobRepo.Count(ctx, job.ListFilter{})
	if err != nil {
		return nil, errx.Wrap(err, "failed to count jobs", errx.TypeInternal)
	}

	active := true
	activeCount, err := s.jobRepo.Count(ctx, job.ListFilter{IsActive: &active})
	if err != nil {
		return nil, errx.Wrap(err, "failed to count active jobs", errx.TypeInternal)
	}

	categories, err := s.categoryRepo.CountActive(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count categories", errx.TypeInternal)
	}

	countries, err := s.countryRepo.CountActive(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count countries", errx.TypeInternal)
	}

	return &job.StatsOverviewResponse{
		TotalJobs:       total,
		ActiveJobs:      activeCount,
		InactiveJobs:    total - activeCount,
		TotalCategories: categories,
		TotalCountries:  countries,
	}, nil
}

// validateReferences checks that both referents exist before a job create.
// Updates validate each dimension independently, only when it changed.
func (s *JobService) validateReferences(ctx context.Context, categoryID kernel.CategoryID, countryID kernel.CountryID) error {
	if err := s.validateCategory(ctx, categoryID); err != nil {
		return err
	}
	return s.validateCountry(ctx, countryID)
}

func (s *JobService) validateCategory(ctx context.Context, categoryID kernel.CategoryID) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return job.ErrInvalidReference("category")
		}
		return errx.Wrap(err, "failed to validate category reference", errx.TypeInternal)
	}
	return nil
}

func (s *JobService) validateCountry(ctx context.Context, countryID kernel.CountryID) error {
	if _, err := s.countryRepo.GetByID(ctx, countryID); err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return job.ErrInvalidReference("country")
		}
		return errx.Wrap(err, "failed to validate country reference", errx.TypeInternal)
	}
	return nil
}

func applyUpdate(j *job.Job, req job.UpdateJobRequest) {
	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Company != nil {
		j.Company = *req.Company
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Requirements != nil {
		j.Requirements = *req.Requirements
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.JobType != nil {
		j.JobType = *req.JobType
	}
	if req.ExperienceLevel != nil {
		j.ExperienceLevel = *req.ExperienceLevel
	}
	if req.ExperienceRange != nil {
		j.ExperienceRange = *req.ExperienceRange
	}
	if req.Salary != nil {
		j.Salary = *req.Salary
	}
	if req.Vacancies != nil {
		j.Vacancies = *req.Vacancies
	}
	if req.Qualifications != nil {
		j.Qualifications = *req.Qualifications
	}
	if req.Skills != nil {
		j.Skills = *req.Skills
	}
	if req.Benefits != nil {
		j.Benefits = *req.Benefits
	}
	if req.ApplicationDeadline != nil {
		j.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.ContactEmail != nil {
		j.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		j.ContactPhone = *req.ContactPhone
	}
	if req.IsActive != nil {
		j.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		j.IsFeatured = *req.IsFeatured
	}
}
