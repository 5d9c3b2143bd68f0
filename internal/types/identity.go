// Package types provides type definitions for structured data used throughout the profiling system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Identity names the subject of a profiling request. All three fields are
// required and immutable for the lifetime of the request.
type Identity struct {
	FirstName string `json:"first_name" validate:"required,min=1"`
	LastName  string `json:"last_name" validate:"required,min=1"`
	Company   string `json:"company" validate:"required,min=1"`
}

// FullName returns "<first> <last>".
func (i Identity) FullName() string {
	return i.FirstName + " " + i.LastName
}

// Validate validates the Identity using the validator.
func (i *Identity) Validate() error {
	validate := validator.New()
	return validate.Struct(i)
}
