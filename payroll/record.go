/*
record.go - Flat snapshots of employees for persistence

PURPOSE:
  Stores cannot hold an Employee directly (its fields are unexported so the
  bounds stay enforced). A Record is the flat form that goes in and out of
  storage. Restore rebuilds an Employee through the regular constructors,
  so a corrupt row is reported as ErrInvalidArgument instead of producing
  an out-of-bounds instance.

FIELDS BY KIND:
  hourly:   HourlyRate, NormalHours, SpecialHours, SpecialHoursArmed
  salaried: YearlySalary
*/
package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Record is a storable snapshot of one employee.
type Record struct {
	Kind Kind
	ID   string
	Name string

	HourlyRate        decimal.Decimal
	NormalHours       decimal.Decimal
	SpecialHours      decimal.Decimal
	SpecialHoursArmed bool

	YearlySalary decimal.Decimal
}

// Snapshot captures the full state of e, including a pending override.
func Snapshot(e Employee) Record {
	return e.snapshot()
}

// Restore rebuilds an Employee from a record.
func Restore(r Record) (Employee, error) {
	switch r.Kind {
	case KindHourly:
		e, err := NewHourlyEmployee(r.Name, r.ID, r.HourlyRate, r.NormalHours)
		if err != nil {
			return nil, fmt.Errorf("restore %s: %w", r.ID, err)
		}
		if r.SpecialHoursArmed {
			if err := e.SetSpecialHours(r.SpecialHours); err != nil {
				return nil, fmt.Errorf("restore %s: %w", r.ID, err)
			}
		}
		return e, nil
	case KindSalaried:
		e, err := NewSalariedEmployee(r.Name, r.ID, r.YearlySalary)
		if err != nil {
			return nil, fmt.Errorf("restore %s: %w", r.ID, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("restore %s: %w: %q", r.ID, ErrUnknownKind, r.Kind)
	}
}

// Clone returns an independent copy of any employee.
func Clone(e Employee) Employee {
	switch v := e.(type) {
	case *HourlyEmployee:
		return v.Clone()
	case *SalariedEmployee:
		return v.Clone()
	}
	panic(fmt.Sprintf("payroll: unexpected employee type %T", e))
}
