/*
Package factory provides JSON to Go employee conversion.

PURPOSE:
  Converts JSON employee definitions into payroll.Employee values and back.
  Every employee still goes through the validating constructors.

JSON SCHEMA:
  {
    "kind": "hourly",
    "id": "111-CHLY-BRWN",
    "name": "Snoopy",
    "hourly_rate": 17.50,
    "normal_hours": 20
  }

  {
    "kind": "salaried",
    "id": "222-22-2222",
    "name": "Lucy",
    "yearly_salary": "70000.00"
  }

  Numbers may be given as JSON numbers or strings; both are parsed as exact
  decimals. Fields that do not apply to the kind are ignored on input and
  omitted on output.

USAGE:
  f := factory.NewEmployeeFactory()
  emp, err := f.ParseEmployee(jsonString)

SEE ALSO:
  - payroll/service.go: HireInput, New
  - api/handlers.go: CreateEmployee
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// EmployeeJSON is the JSON representation of an employee.
type EmployeeJSON struct {
	Kind         string           `json:"kind"`
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	NormalHours  *decimal.Decimal `json:"normal_hours,omitempty"`
	SpecialHours *decimal.Decimal `json:"pending_special_hours,omitempty"`
	YearlySalary *decimal.Decimal `json:"yearly_salary,omitempty"`
}

// =============================================================================
// EMPLOYEE FACTORY
// =============================================================================

// EmployeeFactory converts JSON employees to payroll values.
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new employee factory.
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// ParseEmployee parses a JSON string into an Employee.
func (f *EmployeeFactory) ParseEmployee(jsonStr string) (payroll.Employee, error) {
	var ej EmployeeJSON
	if err := json.Unmarshal([]byte(jsonStr), &ej); err != nil {
		return nil, fmt.Errorf("failed to parse employee JSON: %w", err)
	}
	return f.FromJSON(ej)
}

// HireInput converts EmployeeJSON into constructor arguments. Missing
// required numbers are reported as invalid arguments.
func (f *EmployeeFactory) HireInput(ej EmployeeJSON) (payroll.HireInput, error) {
	kind, err := payroll.ParseKind(ej.Kind)
	if err != nil {
		return payroll.HireInput{}, err
	}

	in := payroll.HireInput{Kind: kind, ID: ej.ID, Name: ej.Name}
	switch kind {
	case payroll.KindHourly:
		if in.HourlyRate, err = required("hourly_rate", ej.HourlyRate); err != nil {
			return payroll.HireInput{}, err
		}
		if in.NormalHours, err = required("normal_hours", ej.NormalHours); err != nil {
			return payroll.HireInput{}, err
		}
	case payroll.KindSalaried:
		if in.YearlySalary, err = required("yearly_salary", ej.YearlySalary); err != nil {
			return payroll.HireInput{}, err
		}
	}
	return in, nil
}

// FromJSON converts EmployeeJSON to a payroll.Employee. A pending special
// hours value re-arms the override on hourly employees.
func (f *EmployeeFactory) FromJSON(ej EmployeeJSON) (payroll.Employee, error) {
	in, err := f.HireInput(ej)
	if err != nil {
		return nil, err
	}
	emp, err := payroll.New(in)
	if err != nil {
		return nil, err
	}
	if h, ok := emp.(*payroll.HourlyEmployee); ok && ej.SpecialHours != nil {
		if err := h.SetSpecialHours(*ej.SpecialHours); err != nil {
			return nil, err
		}
	}
	return emp, nil
}

// ToJSON converts an Employee to EmployeeJSON.
func (f *EmployeeFactory) ToJSON(emp payroll.Employee) EmployeeJSON {
	ej := EmployeeJSON{
		Kind: string(emp.Kind()),
		ID:   emp.ID(),
		Name: emp.Name(),
	}
	switch e := emp.(type) {
	case *payroll.HourlyEmployee:
		ej.HourlyRate = decPtr(e.BaseSalary())
		ej.NormalHours = decPtr(e.NormalHours())
		if h, ok := e.PendingSpecialHours(); ok {
			ej.SpecialHours = decPtr(h)
		}
	case *payroll.SalariedEmployee:
		ej.YearlySalary = decPtr(e.BaseSalary())
	}
	return ej
}

func required(field string, v *decimal.Decimal) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, &payroll.InvalidArgumentError{Field: field, Reason: "is required"}
	}
	return *v, nil
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
