package contact

import (
	"net/http"

	"github.com/job360/directory/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CONTACT")

// Error codes
var (
	CodeInvalidPayload   = ErrRegistry.Register("INVALID_PAYLOAD", errx.TypeValidation, http.StatusBadRequest, "Invalid contact payload")
	CodeStoreUnavailable = ErrRegistry.Register("STORE_UNAVAILABLE", errx.TypeUnavailable, http.StatusServiceUnavailable, "Contact store unavailable")
)

// Helper functions
func ErrInvalidPayload() *errx.Error {
	return ErrRegistry.New(CodeInvalidPayload)
}

func ErrStoreUnavailable(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStoreUnavailable, cause)
}
