package job

import (
	"net/http"

	"github.com/job360/directory/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeAlreadyExists    = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Job already exists")
	CodeInvalidReference = ErrRegistry.Register("INVALID_REFERENCE", errx.TypeValidation, http.StatusBadRequest, "Invalid reference")
	CodeInvalidPayload   = ErrRegistry.Register("INVALID_PAYLOAD", errx.TypeValidation, http.StatusBadRequest, "Invalid job payload")
	CodeInvalidQuery     = ErrRegistry.Register("INVALID_QUERY", errx.TypeValidation, http.StatusBadRequest, "Invalid query parameter")
	CodeStoreUnavailable = ErrRegistry.Register("STORE_UNAVAILABLE", errx.TypeUnavailable, http.StatusServiceUnavailable, "Job store unavailable")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

// ErrInvalidReference reports a missing category or country referent; field
// names which reference failed ("category" or "country").
func ErrInvalidReference(field string) *errx.Error {
	return ErrRegistry.New(CodeInvalidReference).
		WithMessage("Invalid " + field + " ID").
		WithDetail("field", field)
}

func ErrAlreadyExists(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeAlreadyExists, cause)
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
