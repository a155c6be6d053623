package models

import (
	"errors"
	"fmt"
)

// ErrNoActiveProblem is returned when an answer is checked before any
// problem has been generated.
var ErrNoActiveProblem = errors.New("no active problem; generate a new problem first")

// ShapeNotFoundError reports a shape name absent from the catalog.
type ShapeNotFoundError struct {
	Name string
}

func (e *ShapeNotFoundError) Error() string {
	return fmt.Sprintf("shape %q not found in catalog", e.Name)
}

// NewShapeNotFoundError creates a ShapeNotFoundError for the given name.
func NewShapeNotFoundError(name string) *ShapeNotFoundError {
	return &ShapeNotFoundError{Name: name}
}

// NoParameterSpecError reports a shape that is present in the catalog
// but has no parameter spec, so no problem can be generated for it.
type NoParameterSpecError struct {
	Name string
}

func (e *NoParameterSpecError) Error() string {
	return fmt.Sprintf("shape %q has no parameter spec; problems cannot be generated for it", e.Name)
}

// NewNoParameterSpecError creates a NoParameterSpecError for the given name.
func NewNoParameterSpecError(name string) *NoParameterSpecError {
	return &NoParameterSpecError{Name: name}
}
