package category

import (
	"fmt"
	"net/http"

	"github.com/job360/directory/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CATEGORY")

// Error codes
var (
	CodeCategoryNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Category not found")
	CodeAlreadyExists    = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusBadRequest, "Category name already exists")
	CodeHasJobs          = ErrRegistry.Register("HAS_JOBS", errx.TypeBusiness, http.StatusBadRequest, "Cannot delete category with associated jobs")
	CodeInvalidPayload   = ErrRegistry.Register("INVALID_PAYLOAD", errx.TypeValidation, http.StatusBadRequest, "Invalid category payload")
	CodeInvalidQuery     = ErrRegistry.Register("INVALID_QUERY", errx.TypeValidation, http.StatusBadRequest, "Invalid query parameter")
	CodeStoreUnavailable = ErrRegistry.Register("STORE_UNAVAILABLE", errx.TypeUnavailable, http.StatusServiceUnavailable, "Category store unavailable")
)

// Helper functions
func ErrCategoryNotFound() *errx.Error {
	return ErrRegistry.New(CodeCategoryNotFound)
}

func ErrAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeAlreadyExists)
}

// ErrHasJobs reports a blocked delete, carrying the live count of referencing jobs.
func ErrHasJobs(count int64) *errx.Error {
	return ErrRegistry.New(CodeHasJobs).
		WithMessage(fmt.Sprintf("Cannot delete category. It has %d associated jobs.", count)).
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
