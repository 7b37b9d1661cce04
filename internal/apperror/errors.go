// Package apperror defines the error taxonomy shared by the repository,
// service and HTTP layers.
package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Sentinel errors for the error classes the HTTP layer distinguishes.
var (
	// ErrValidation indicates a caller-supplied parameter failed a format or allow-list check.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates a referenced entity key does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraint indicates the database rejected a statement.
	ErrConstraint = errors.New("constraint violation")
)

// MsgBadRequest is reported for malformed ids, bodies and constraint violations.
const MsgBadRequest = "Bad request"

// ValidationError reports the first invalid parameter of a request.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns ErrValidation for use with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError with an explicit message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidQuery is the error for a query-string parameter, e.g. "Invalid sort_by query".
func InvalidQuery(param string) *ValidationError {
	return &ValidationError{Field: param, Message: fmt.Sprintf("Invalid %s query", param)}
}

// BadRequest is the error for a malformed path id or request body.
func BadRequest(field string) *ValidationError {
	return &ValidationError{Field: field, Message: MsgBadRequest}
}

// NotFoundError reports a missing entity.
type NotFoundError struct {
	Entity string
	Key    string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", capitalize(e.Entity))
}

// Unwrap returns ErrNotFound for use with errors.Is.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// ConstraintError wraps a driver error that maps to a client fault.
type ConstraintError struct {
	Code       string
	Constraint string
	Cause      error
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("constraint %s violated (%s): %v", e.Constraint, e.Code, e.Cause)
	}
	return fmt.Sprintf("database rejected input (%s): %v", e.Code, e.Cause)
}

// Unwrap exposes both ErrConstraint and the driver error.
func (e *ConstraintError) Unwrap() []error {
	return []error{ErrConstraint, e.Cause}
}

// clientFaultCodes are SQLSTATE codes outside class 23 that still mean bad input.
var clientFaultCodes = map[pq.ErrorCode]bool{
	"22P02": true, // invalid_text_representation
	"22003": true, // numeric_value_out_of_range
	"22001": true, // string_data_right_truncation
}

// FromDB classifies a driver error. Integrity violations and malformed input
// become *ConstraintError; everything else is returned unchanged.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	if pqErr.Code.Class() == "23" || clientFaultCodes[pqErr.Code] {
		return &ConstraintError{
			Code:       string(pqErr.Code),
			Constraint: pqErr.Constraint,
			Cause:      err,
		}
	}
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
