package countrysrv

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/job360/directory/directory/country"
	"github.com/job360/directory/directory/job"
	"github.com/job360/directory/pkg/errx"
	"github.com/job360/directory/pkg/kernel"
)

// CountryService provides business operations for countries
type CountryService struct {
	countryRepo country.Repository
	jobRepo     job.Repository
	validate    *validator.Validate
}

// NewCountryService creates a new instance of the country service
func NewCountryService(countryRepo country.Repository, jobRepo job.Repository) *CountryService {
	return &CountryService{
		countryRepo: countryRepo,
		jobRepo:     jobRepo,
		validate:    validator.New(),
	}
}

// CreateCountry creates a new country. The code is stored uppercased and the
// counter starts at zero.
func (s *CountryService) CreateCountry(ctx context.Context, req country.CreateCountryRequest) (*country.Country, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, country.ErrInvalidPayload().WithDetail("validation", err.Error())
	}

	now := time.Now()
	newCountry := &country.Country{
		ID:        kernel.NewCountryID(uuid.NewString()),
		Name:      req.Name,
		Code:      strings.ToUpper(req.Code),
		Flag:      req.Flag,
		Currency:  req.Currency,
		Timezone:  req.Timezone,
		IsActive:  true,
		JobCount:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.IsActive != nil {
		newCountry.IsActive = *req.IsActive
	}

	if err := s.countryRepo.Create(ctx, newCountry); err != nil {
		return nil, err
	}

	return newCountry, nil
}

// UpdateCountry applies a partial update. The job counter is never
// client-writable.
func (s *CountryService) UpdateCountry(ctx context.Context, id kernel.CountryID, req country.UpdateCountryRequest) (*country.Country, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, country.ErrInvalidPayload().WithDetail("validation", err.Error())
	}

	existing, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Code != nil {
		existing.Code = strings.ToUpper(*req.Code)
	}
	if req.Flag != nil {
		existing.Flag = *req.Flag
	}
	if req.Currency != nil {
		existing.Currency = *req.Currency
	}
	if req.Timezone != nil {
		existing.Timezone = *req.Timezone
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedAt = time.Now()

	if err := s.countryRepo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteCountry removes a country unless any job still references it. The
// guard counts from the live jobs collection, never from the denormalized
// counter.
func (s *CountryService) DeleteCountry(ctx context.Context, id kernel.CountryID) error {
	if _, err := s.countryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.jobRepo.CountByCountry(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to count referencing jobs", errx.TypeInternal)
	}
	if count > 0 {
		return country.ErrHasJobs(count)
	}

	return s.countryRepo.Delete(ctx, id)
}

// GetCountryByID retrieves a country by ID
func (s *CountryService) GetCountryByID(ctx context.Context, id kernel.CountryID) (*country.Country, error) {
	return s.countryRepo.GetByID(ctx, id)
}

// ListCountries retrieves countries sorted by name
func (s *CountryService) ListCountries(ctx context.Context, filter country.ListFilter) ([]country.Country, error) {
	return s.countryRepo.List(ctx, filter)
}

// ListCountriesWithJobCounts retrieves countries with exact counts from the
// live jobs collection
func (s *CountryService) ListCountriesWithJobCounts(ctx context.Context, filter country.ListFilter) ([]country.WithJobCount, error) {
	return s.countryRepo.ListWithJobCounts(ctx, filter)
}
