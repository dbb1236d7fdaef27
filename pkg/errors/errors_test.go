package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	err := NotFound("campground")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "No campground found", err.Message)
	// Lookup misses are 400 by contract, not 404.
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRouteNotFound(t *testing.T) {
	err := RouteNotFound()

	assert.Equal(t, "Page not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed("title is required, price must be at least 0")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "title is required, price must be at least 0", err.Message)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, DefaultMessage, err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", NotFound("campground"), http.StatusBadRequest},
		{"wrapped app error", fmt.Errorf("get: %w", NotFound("campground")), http.StatusBadRequest},
		{"sentinel not found", ErrNotFound, http.StatusBadRequest},
		{"sentinel invalid input", ErrInvalidInput, http.StatusBadRequest},
		{"sentinel route not found", ErrRouteNotFound, http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "No campground found", Message(NotFound("campground")))
	assert.Equal(t, "No campground found", Message(fmt.Errorf("get: %w", NotFound("campground"))))
	assert.Equal(t, DefaultMessage, Message(errors.New("pq: relation does not exist")))
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, "delete campground")

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "delete campground: boom", err.Error())
}
