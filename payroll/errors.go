/*
errors.go - Error types for the payroll package

ERROR CATEGORIES:
  1. Invalid argument - a constructor or mutator input broke a bound.
     This is the only error the employee models themselves return.
  2. Record errors - a stored record names an unknown employee kind.
  3. Store errors - missing or duplicate employees.

USAGE:
  if errors.Is(err, payroll.ErrInvalidArgument) {
      // reject the request, nothing was changed
  }

  var iae *payroll.InvalidArgumentError
  if errors.As(err, &iae) {
      log.Printf("bad %s: %s", iae.Field, iae.Reason)
  }
*/
package payroll

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidArgument is returned when an input violates a documented bound.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownKind is returned when a record names neither hourly nor salaried.
	ErrUnknownKind = errors.New("unknown employee kind")

	// ErrEmployeeNotFound is returned by stores for a missing employee id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDuplicateEmployee is returned by stores when the id is already taken.
	ErrDuplicateEmployee = errors.New("employee already exists")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// InvalidArgumentError names the offending field and value.
type InvalidArgumentError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// invalid builds an InvalidArgumentError. Decimals too large or too precise
// to format cheaply are left out of the message.
func invalid(field string, value any, reason string) error {
	if d, ok := value.(decimal.Decimal); ok && (tooLarge(d) || tooPrecise(d)) {
		value = nil
	}
	return &InvalidArgumentError{Field: field, Value: value, Reason: reason}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrUnknownKind)
}

// IsNotFound returns true if the error indicates a missing employee.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound)
}

// IsConflict returns true if the error indicates an id collision.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateEmployee)
}
