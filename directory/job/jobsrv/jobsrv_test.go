package jobsrv

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/job360/directory/directory/category"
	"github.com/job360/directory/directory/category/categoryinfra"
	"github.com/job360/directory/directory/country"
	"github.com/job360/directory/directory/country/countryinfra"
	"github.com/job360/directory/directory/counter"
	"github.com/job360/directory/directory/counter/counterinfra"
	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/directory/job/jobinfra"
	"github.com/job360/directory/pkg/errx"
	"github.com/job360/directory/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service    *JobService
	jobs       *jobinfra.MemoryJobRepository
	categories *categoryinfra.MemoryCategoryRepository
	countries  *countryinfra.MemoryCountryRepository
	queue      *counterinfra.MemoryQueue
	tech       kernel.CategoryID
	finance    kernel.CategoryID
	us         kernel.CountryID
	uk         kernel.CountryID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	categories := categoryinfra.NewMemoryCategoryRepository()
	countries := countryinfra.NewMemoryCountryRepository()
	jobs := jobinfra.NewMemoryJobRepository(categories, countries)
	categories.BindJobCounts(jobs)
	countries.BindJobCounts(jobs)

	queue := counterinfra.NewMemoryQueue()
	maintainer := counter.NewMaintainer(categories, countries, queue)

	f := &fixture{
		service:    NewJobService(jobs, categories, countries, maintainer),
		jobs:       jobs,
		categories: categories,
		countries:  countries,
		queue:      queue,
		tech:       kernel.NewCategoryID(uuid.NewString()),
		finance:    kernel.NewCategoryID(uuid.NewString()),
		us:         kernel.NewCountryID(uuid.NewString()),
		uk:         kernel.NewCountryID(uuid.NewString()),
	}

	now := time.Now()
	require.NoError(t, categories.Create(ctx, &category.Category{
		ID: f.tech, Name: "Technology", Slug: "technology",
		Color: category.DefaultColor, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, categories.Create(ctx, &category.Category{
		ID: f.finance, Name: "Finance", Slug: "finance",
		Color: category.DefaultColor, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, countries.Create(ctx, &country.Country{
		ID: f.us, Name: "United States", Code: "US", Flag: "\U0001F1FA\U0001F1F8",
		Currency: country.Currency{Code: "USD", Symbol: "$"},
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, countries.Create(ctx, &country.Country{
		ID: f.uk, Name: "United Kingdom", Code: "GB", Flag: "\U0001F1EC\U0001F1E7",
		Currency: country.Currency{Code: "GBP", Symbol: "£"},
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))

	return f
}

func (f *fixture) createRequest() job.CreateJobRequest {
	return job.CreateJobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme Corp",
		Description: "Build and maintain backend services.",
		Category:    f.tech,
		Country:     f.us,
		Location:    job.Location{City: "Austin"},
		JobType:     job.JobTypeFullTime,
		Vacancies:   2,
	}
}

func (f *fixture) categoryCount(t *testing.T, id kernel.CategoryID) int {
	t.Helper()
	c, err := f.categories.GetByID(context.Background(), id)
	require.NoError(t, err)
	return c.JobCount
}

func (f *fixture) countryCount(t *testing.T, id kernel.CountryID) int {
	t.Helper()
	c, err := f.countries.GetByID(context.Background(), id)
	require.NoError(t, err)
	return c.JobCount
}

func TestCreateJobAdjustsCounters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateJob(ctx, f.createRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	assert.Equal(t, 1, f.categoryCount(t, f.tech))
	assert.Equal(t, 1, f.countryCount(t, f.us))
	assert.Equal(t, 0, f.categoryCount(t, f.finance))
	assert.Equal(t, 0, f.countryCount(t, f.uk))
}

func TestCreateJobRejectsMissingReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := f.createRequest()
	req.Category = kernel.NewCategoryID(uuid.NewString())

	_, err := f.service.CreateJob(ctx, req)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid category ID", appErr.Message)

	// Nothing was written, nothing was counted
	total, err := f.jobs.Count(ctx, job.ListFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Equal(t, 0, f.countryCount(t, f.us))
}

func TestCreateJobAppliesDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Request carries no experience range and no salary
	created, err := f.service.CreateJob(ctx, f.createRequest())
	require.NoError(t, err)

	assert.Equal(t, job.ExperienceRange{Min: 0, Max: 10, Unit: job.ExperienceUnitYears}, created.ExperienceRange)
	assert.Equal(t, "0-10 years", created.ExperienceDisplay)
	assert.Equal(t, "USD", created.Salary.Currency)
	assert.Equal(t, job.SalaryPeriodYearly, created.Salary.Period)
	assert.Equal(t, job.ExperienceEntry, created.ExperienceLevel)
}

func TestDeleteJobAdjustsCounters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateJob(ctx, f.createRequest())
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteJob(ctx, created.ID))

	assert.Equal(t, 0, f.categoryCount(t, f.tech))
	assert.Equal(t, 0, f.countryCount(t, f.us))

	_, err = f.service.GetJobByID(ctx, created.ID)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
}

func TestUpdateJobReassignsCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateJob(ctx, f.createRequest())
	require.NoError(t, err)

	updated, err := f.service.UpdateJob(ctx, created.ID, job.UpdateJobRequest{
		Category: &f.finance,
	})
	require.NoError(t, err)
	assert.Equal(t, f.finance, updated.CategoryID)

	assert.Equal(t, 0, f.categoryCount(t, f.tech))
	assert.Equal(t, 1, f.categoryCount(t, f.finance))
	// Country was untouched, so its counter must not move
	assert.Equal(t, 1, f.countryCount(t, f.us))
}

func TestUpdateJobWithoutReassignmentLeavesCounters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateJob(ctx, f.createRequest())
	require.NoError(t, err)

	title := "Senior Backend Engineer"
	updated, err := f.service.UpdateJob(ctx, created.ID, job.UpdateJobRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	assert.Equal(t, 1, f.categoryCount(t, f.tech))
	assert.Equal(t, 1, f.countryCount(t, f.us))
}

func TestUpdateJobValidatesOnlyChangedReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateJob(ctx, f.createRequest())
	require.NoError(t, err)

	// The unchanged country referent vanishing must not block a
	// category-only reassignment
	require.NoError(t, f.countries.Delete(ctx, f.us))

	updated, err := f.service.UpdateJob(ctx, created.ID, job.UpdateJobRequest{
		Category: &f.finance,
	})
	require.NoError(t, err)
	assert.Equal(t, f.finance, updated.CategoryID)
	assert.Equal(t, f.us, updated.CountryID)

	assert.Equal(t, 0, f.categoryCount(t, f.tech))
	assert.Equal(t, 1, f.categoryCount(t, f.finance))
}

func TestUpdateJobRejectsMissingNewReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateJob(ctx, f.createRequest())
	require.NoError(t, err)

	missing := kernel.NewCountryID(uuid.NewString())
	_, err = f.service.UpdateJob(ctx, created.ID, job.UpdateJobRequest{Country: &missing})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	// The job keeps its original reference and the counters stay put
	current, err := f.jobs.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, f.us, current.CountryID)
	assert.Equal(t, 1, f.countryCount(t, f.us))
}

func TestGetJobByIDCountsViews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateJob(ctx, f.createRequest())
	require.NoError(t, err)

	first, err := f.service.GetJobByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Views)

	second, err := f.service.GetJobByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Views)
}

func TestGetJobByIDPopulatesWideProjection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateJob(ctx, f.createRequest())
	require.NoError(t, err)

	got, err := f.service.GetJobByID(ctx, created.ID)
	require.NoError(t, err)

	require.NotNil(t, got.Category)
	assert.Equal(t, "Technology", got.Category.Name)
	assert.Equal(t, "technology", got.Category.Slug)

	require.NotNil(t, got.Country)
	assert.Equal(t, "US", got.Country.Code)
	require.NotNil(t, got.Country.Currency)
	assert.Equal(t, "USD", got.Country.Currency.Code)
}

func TestListJobsFiltersByCategoryAndCountry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	techUS := f.createRequest()
	financeUS := f.createRequest()
	financeUS.Title = "Accountant"
	financeUS.Category = f.finance
	techUK := f.createRequest()
	techUK.Title = "Platform Engineer"
	techUK.Country = f.uk

	for _, req := range []job.CreateJobRequest{techUS, financeUS, techUK} {
		_, err := f.service.CreateJob(ctx, req)
		require.NoError(t, err)
	}

	page, err := f.service.ListJobs(ctx, job.ListFilter{
		Category: f.tech,
		Country:  f.us,
	}, job.DefaultSort(), kernel.DefaultPagination())
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Backend Engineer", page.Items[0].Title)
	assert.Equal(t, 1, page.Page.Total)
}

func TestListJobsSearchMatchesTitleCompanyDescription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	byTitle := f.createRequest()
	byTitle.Title = "Kubernetes Operator"
	byCompany := f.createRequest()
	byCompany.Title = "Site Reliability Engineer"
	byCompany.Company = "Kubernetes Shop"
	byNeither := f.createRequest()
	byNeither.Title = "Accountant"
	byNeither.Company = "Ledger Ltd"
	byNeither.Description = "Monthly bookkeeping."

	for _, req := range []job.CreateJobRequest{byTitle, byCompany, byNeither} {
		_, err := f.service.CreateJob(ctx, req)
		require.NoError(t, err)
	}

	page, err := f.service.ListJobs(ctx, job.ListFilter{Search: "kubernetes"},
		job.DefaultSort(), kernel.DefaultPagination())
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}

func TestListJobsPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		req := f.createRequest()
		req.Title = fmt.Sprintf("Engineer %02d", i)
		_, err := f.service.CreateJob(ctx, req)
		require.NoError(t, err)
	}

	first, err := f.service.ListJobs(ctx, job.ListFilter{}, job.DefaultSort(),
		kernel.PaginationOptions{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, first.Items, 20)
	assert.Equal(t, 25, first.Page.Total)
	assert.Equal(t, 2, first.Page.Pages)
	assert.True(t, first.Page.HasNext)
	assert.False(t, first.Page.HasPrev)

	second, err := f.service.ListJobs(ctx, job.ListFilter{}, job.DefaultSort(),
		kernel.PaginationOptions{Page: 2, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, second.Items, 5)
	assert.False(t, second.Page.HasNext)
	assert.True(t, second.Page.HasPrev)

	third, err := f.service.ListJobs(ctx, job.ListFilter{}, job.DefaultSort(),
		kernel.PaginationOptions{Page: 3, PageSize: 20})
	require.NoError(t, err)
	assert.Empty(t, third.Items)
	assert.True(t, third.Empty)
	assert.Equal(t, 25, third.Page.Total)
}

func TestGetStatsOverview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inactive := false
	active := f.createRequest()
	dormant := f.createRequest()
	dormant.Title = "Archived Role"
	dormant.IsActive = &inactive

	_, err := f.service.CreateJob(ctx, active)
	require.NoError(t, err)
	_, err = f.service.CreateJob(ctx, dormant)
	require.NoError(t, err)

	stats, err := f.service.GetStatsOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalJobs)
	assert.Equal(t, int64(1), stats.ActiveJobs)
	assert.Equal(t, int64(1), stats.InactiveJobs)
	assert.Equal(t, int64(2), stats.TotalCategories)
	assert.Equal(t, int64(2), stats.TotalCountries)
}

func TestCreateJobSkipsCounterWhenReferentVanishes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// The category disappears between reference validation and the counter
	// adjustment. The job write must still succeed and nothing is queued.
	created, err := f.service.CreateJob(ctx, f.createRequest())
	require.NoError(t, err)

	require.NoError(t, f.categories.Delete(ctx, f.tech))
	require.NoError(t, f.service.DeleteJob(ctx, created.ID))

	size, err := f.queue.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
	assert.Equal(t, 0, f.countryCount(t, f.us))
}
