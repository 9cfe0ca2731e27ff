package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Widget not found")

	err := reg.New(code)

	assert.Equal(t, "WIDGET_NOT_FOUND", err.Code)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "WIDGET_NOT_FOUND: Widget not found", err.Error())
}

func TestWithDetailChaining(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("HAS_PARTS", TypeBusiness, http.StatusBadRequest, "Widget has parts")

	err := reg.New(code).
		WithDetail("widget_id", "w-1").
		WithDetail("part_count", 3)

	require.NotNil(t, err.Details)
	assert.Equal(t, "w-1", err.Details["widget_id"])
	assert.Equal(t, 3, err.Details["part_count"])

	resp := err.ToHTTPResponse()
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "WIDGET_HAS_PARTS", resp["code"])
	assert.NotNil(t, resp["details"])
}

func TestWrapPassesThroughTypedErrors(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Widget not found")
	original := reg.New(code)

	wrapped := Wrap(fmt.Errorf("outer: %w", original), "lookup failed", TypeInternal)

	assert.Same(t, original, wrapped)
}

func TestWrapUntypedError(t *testing.T) {
	cause := errors.New("connection refused")

	err := Wrap(cause, "store unreachable", TypeUnavailable)

	assert.Equal(t, TypeUnavailable, err.Type)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing", TypeInternal))
}

func TestIsType(t *testing.T) {
	reg := NewRegistry("WIDGET")
	notFound := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Widget not found")

	err := reg.NewWithCause(notFound, errors.New("no rows"))

	assert.True(t, IsType(err, TypeNotFound))
	assert.False(t, IsType(err, TypeConflict))
	assert.False(t, IsType(errors.New("plain"), TypeNotFound))
}
