// Package server provides the HTTP REST API for the profiler.
package server

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrInvalidJSON indicates the request body could not be decoded
type ErrInvalidJSON struct {
	Reason string
}

func (e *ErrInvalidJSON) Error() string {
	return fmt.Sprintf("invalid JSON body: %s", e.Reason)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if _, ok := err.(validator.ValidationErrors); ok {
		return http.StatusBadRequest
	}
	switch err.(type) {
	case *ErrValidation, *ErrInvalidJSON:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
