/*
Package payroll models employee pay records and computes periodic pay.

PURPOSE:
  Two compensation schemes share one contract:
  - HourlyEmployee: paid weekly by the hour, with overtime and an optional
    one-shot special-hours override.
  - SalariedEmployee: paid monthly, one twelfth of a yearly salary.

KEY CONCEPTS IN THIS FILE (employee.go):
  - Employee: the capability contract (pay, base salary, raise, identity)
  - identity: name and id, immutable after construction
  - Kind: which variant a value is, used by records and the API

DESIGN PRINCIPLES:
  1. Precision: every amount is a decimal.Decimal rounded to two places
     (see rounding.go) at the point it is stored or returned.
  2. One rule table: all limits come from DefaultBounds() (bounds.go).
  3. Sealed: only the two variants in this package implement Employee.
  4. No locking: an instance has one owner. Hosts that share instances
     across goroutines synchronize outside (see service.go).

USAGE:
  snoopy, err := payroll.NewHourlyEmployee("Snoopy", "111-CHLY-BRWN",
      decimal.RequireFromString("17.50"), decimal.NewFromInt(20))
  if err != nil {
      return err
  }
  pay := snoopy.PayForThisPeriod() // 350.00

SEE ALSO:
  - hourly.go: hourly pay, overtime, special hours
  - salaried.go: monthly pay, capped raises
  - record.go: flat snapshots for storage
  - service.go: store-backed operations
*/
package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// EMPLOYEE CONTRACT
// =============================================================================

// Employee is the behavior every compensation scheme provides.
type Employee interface {
	// PayForThisPeriod returns this period's pay. Hourly employees consume
	// any pending special-hours override.
	PayForThisPeriod() decimal.Decimal

	// BaseSalary is the hourly rate or the yearly salary.
	BaseSalary() decimal.Decimal

	// GiveRaiseByPercent raises base compensation. Returns an error wrapping
	// ErrInvalidArgument when percent is outside the variant's range.
	GiveRaiseByPercent(percent decimal.Decimal) error

	ID() string
	Name() string
	Kind() Kind

	// String renders "Name: X\nID: Y\nBase Salary: $Z.ZZ".
	String() string

	// snapshot seals the interface to this package.
	snapshot() Record
}

// Kind identifies the compensation scheme.
type Kind string

const (
	KindHourly   Kind = "hourly"
	KindSalaried Kind = "salaried"
)

// ParseKind accepts "hourly" or "salaried", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindHourly:
		return KindHourly, nil
	case KindSalaried:
		return KindSalaried, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// =============================================================================
// IDENTITY
// =============================================================================

type identity struct {
	name string
	id   string
}

func newIdentity(name, id string) (identity, error) {
	if name == "" {
		return identity{}, invalid("name", nil, "must not be empty")
	}
	if id == "" {
		return identity{}, invalid("id", nil, "must not be empty")
	}
	return identity{name: name, id: id}, nil
}

func (i identity) ID() string   { return i.id }
func (i identity) Name() string { return i.name }

func describe(e Employee) string {
	return fmt.Sprintf("Name: %s\nID: %s\nBase Salary: $%s",
		e.Name(), e.ID(), FormatMoney(e.BaseSalary()))
}
