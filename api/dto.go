/*
dto.go - Data Transfer Objects for API requests and responses

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY:
  Amounts go out as two-decimal strings ("5833.33") so clients never see
  float artifacts. Incoming amounts are decimal.Decimal and accept JSON
  numbers or strings.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/employee.go: EmployeeJSON (create request body)
*/
package api

import (
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Kind                string  `json:"kind"`
	BaseSalary          string  `json:"base_salary"`
	HourlyRate          string  `json:"hourly_rate,omitempty"`
	NormalHours         string  `json:"normal_hours,omitempty"`
	PendingSpecialHours *string `json:"pending_special_hours,omitempty"`
	YearlySalary        string  `json:"yearly_salary,omitempty"`
	PayForThisPeriod    string  `json:"pay_period_estimate"`
}

// PayDTO is the result of running pay for one period.
type PayDTO struct {
	EmployeeID       string `json:"employee_id"`
	Kind             string `json:"kind"`
	Pay              string `json:"pay"`
	Hours            string `json:"hours,omitempty"`
	UsedSpecialHours bool   `json:"used_special_hours,omitempty"`
}

// SpecialHoursRequest arms a one-shot hours override.
type SpecialHoursRequest struct {
	Hours *decimal.Decimal `json:"hours"`
}

// RaiseRequest gives a raise by percent.
type RaiseRequest struct {
	Percent *decimal.Decimal `json:"percent"`
}

// RaisePreviewDTO compares an employee before and after a raise.
type RaisePreviewDTO struct {
	Current EmployeeDTO `json:"current"`
	Raised  EmployeeDTO `json:"raised"`
}

// BoundsDTO reports the compensation limits.
type BoundsDTO struct {
	MinHourlyRate      string `json:"min_hourly_rate"`
	MaxHourlyRate      string `json:"max_hourly_rate"`
	OvertimeMultiplier string `json:"overtime_multiplier"`
	OvertimeThreshold  string `json:"overtime_threshold"`
	MinWeeklyHours     string `json:"min_weekly_hours"`
	MaxWeeklyHours     string `json:"max_weekly_hours"`
	MinYearlySalary    string `json:"min_yearly_salary"`
	MaxYearlySalary    string `json:"max_yearly_salary"`
	MaxRaisePercent    string `json:"max_raise_percent"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toEmployeeDTO(e payroll.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:         e.ID(),
		Name:       e.Name(),
		Kind:       string(e.Kind()),
		BaseSalary: payroll.FormatMoney(e.BaseSalary()),
	}
	switch v := e.(type) {
	case *payroll.HourlyEmployee:
		dto.HourlyRate = payroll.FormatMoney(v.BaseSalary())
		dto.NormalHours = payroll.FormatMoney(v.NormalHours())
		if h, ok := v.PendingSpecialHours(); ok {
			s := payroll.FormatMoney(h)
			dto.PendingSpecialHours = &s
		}
		// Estimating must not consume the override.
		dto.PayForThisPeriod = payroll.FormatMoney(v.Clone().PayForThisPeriod())
	case *payroll.SalariedEmployee:
		dto.YearlySalary = payroll.FormatMoney(v.BaseSalary())
		dto.PayForThisPeriod = payroll.FormatMoney(v.PayForThisPeriod())
	}
	return dto
}

func toPayDTO(r payroll.PayResult) PayDTO {
	dto := PayDTO{
		EmployeeID: r.EmployeeID,
		Kind:       string(r.Kind),
		Pay:        payroll.FormatMoney(r.Pay),
	}
	if r.Kind == payroll.KindHourly {
		dto.Hours = payroll.FormatMoney(r.Hours)
		dto.UsedSpecialHours = r.UsedSpecialHours
	}
	return dto
}

func toBoundsDTO(b payroll.Bounds) BoundsDTO {
	return BoundsDTO{
		MinHourlyRate:      payroll.FormatMoney(b.MinHourlyRate),
		MaxHourlyRate:      payroll.FormatMoney(b.MaxHourlyRate),
		OvertimeMultiplier: payroll.FormatMoney(b.OvertimeMultiplier),
		OvertimeThreshold:  payroll.FormatMoney(b.OvertimeThreshold),
		MinWeeklyHours:     payroll.FormatMoney(b.MinWeeklyHours),
		MaxWeeklyHours:     payroll.FormatMoney(b.MaxWeeklyHours),
		MinYearlySalary:    payroll.FormatMoney(b.MinYearlySalary),
		MaxYearlySalary:    payroll.FormatMoney(b.MaxYearlySalary),
		MaxRaisePercent:    b.MaxRaisePercent.String(),
	}
}
