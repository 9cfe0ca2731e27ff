package country

import (
	"fmt"
	"net/http"

	"github.com/job360/directory/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("COUNTRY")

// Error codes
var (
	CodeCountryNotFound  = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Country not found")
	CodeAlreadyExists    = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusBadRequest, "Country name or code already exists")
	CodeHasJobs          = ErrRegistry.Register("HAS_JOBS", errx.TypeBusiness, http.StatusBadRequest, "Cannot delete country with associated jobs")
	CodeInvalidPayload   = ErrRegistry.Register("INVALID_PAYLOAD", errx.TypeValidation, http.StatusBadRequest, "Invalid country payload")
	CodeInvalidQuery     = ErrRegistry.Register("INVALID_QUERY", errx.TypeValidation, http.StatusBadRequest, "Invalid query parameter")
	CodeStoreUnavailable = ErrRegistry.Register("STORE_UNAVAILABLE", errx.TypeUnavailable, http.StatusServiceUnavailable, "Country store unavailable")
)

// Helper functions
func ErrCountryNotFound() *errx.Error {
	return ErrRegistry.New(CodeCountryNotFound)
}

func ErrAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeAlreadyExists)
}

// ErrHasJobs reports a blocked delete, carrying the live count of referencing jobs.
func ErrHasJobs(count int64) *errx.Error {
	return ErrRegistry.New(CodeHasJobs).
		WithMessage(fmt.Sprintf("Cannot delete country. It has %d associated jobs.", count)).
		WithDetail("job_count", count)
}

func ErrInvalidPayload() *errx.Error {
	return ErrRegistry.New(CodeInvalidPayload)
}

func ErrInvalidQuery() *errx.Error {
	return ErrRegistry.New(CodeInvalidQuery)
}

func ErrStoreUnavailable(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStoreUnavailable, cause)
}
