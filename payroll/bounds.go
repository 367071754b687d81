/*
bounds.go - Compensation limits shared by every employee variant

PURPOSE:
  One read-only table of limits that both the hourly and the salaried
  models validate against.

LIMITS:
  MinHourlyRate       0.00      lowest accepted hourly rate
  MaxHourlyRate       50.00     highest hourly rate, also the raise ceiling
  OvertimeMultiplier  1.50      applied to hours above OvertimeThreshold
  OvertimeThreshold   40.00     regular hours per week before overtime
  MinWeeklyHours      0.00      lowest normal/special hours per week
  MaxWeeklyHours      80.00     highest normal/special hours per week
  MaxYearlySalary     1000000   highest yearly salary, also the raise cap
  MaxRaisePercent     10        largest raise accepted (hourly) or applied (salaried)

  Inputs with more than 18 integer digits or 32 fractional digits are
  rejected before any comparison.

USAGE:
  b := payroll.DefaultBounds()
  if rate.GreaterThan(b.MaxHourlyRate) { ... }

SEE ALSO:
  - hourly.go: rate and hours validation, overtime
  - salaried.go: salary validation and raise cap
*/
package payroll

import "github.com/shopspring/decimal"

// Bounds is the set of limits enforced by the employee models.
type Bounds struct {
	MinHourlyRate      decimal.Decimal `json:"min_hourly_rate"`
	MaxHourlyRate      decimal.Decimal `json:"max_hourly_rate"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
	OvertimeThreshold  decimal.Decimal `json:"overtime_threshold"`
	MinWeeklyHours     decimal.Decimal `json:"min_weekly_hours"`
	MaxWeeklyHours     decimal.Decimal `json:"max_weekly_hours"`
	MinYearlySalary    decimal.Decimal `json:"min_yearly_salary"`
	MaxYearlySalary    decimal.Decimal `json:"max_yearly_salary"`
	MaxRaisePercent    decimal.Decimal `json:"max_raise_percent"`
}

var defaultBounds = Bounds{
	MinHourlyRate:      decimal.Zero,
	MaxHourlyRate:      decimal.RequireFromString("50.00"),
	OvertimeMultiplier: decimal.RequireFromString("1.50"),
	OvertimeThreshold:  decimal.RequireFromString("40.00"),
	MinWeeklyHours:     decimal.Zero,
	MaxWeeklyHours:     decimal.RequireFromString("80.00"),
	MinYearlySalary:    decimal.Zero,
	MaxYearlySalary:    decimal.RequireFromString("1000000.00"),
	MaxRaisePercent:    decimal.NewFromInt(10),
}

// DefaultBounds returns the process-wide limits. The returned value is a
// copy; changing it has no effect on validation.
func DefaultBounds() Bounds {
	return defaultBounds
}

const (
	maxIntegerDigits  = 18
	maxFractionDigits = 32
)

// within reports whether lo <= v <= hi and returns v with zero in canonical
// form. Values with too many digits are rejected without comparing.
func within(v, lo, hi decimal.Decimal) (decimal.Decimal, bool) {
	if v.IsZero() {
		return decimal.Zero, !decimal.Zero.LessThan(lo) && !decimal.Zero.GreaterThan(hi)
	}
	if tooLarge(v) || tooPrecise(v) {
		return v, false
	}
	return v, !v.LessThan(lo) && !v.GreaterThan(hi)
}

// tooLarge reports whether v has more than maxIntegerDigits integer digits.
func tooLarge(v decimal.Decimal) bool {
	if v.IsZero() {
		return false
	}
	return int64(v.NumDigits())+int64(v.Exponent()) > maxIntegerDigits
}

// tooPrecise reports whether v has more than maxFractionDigits fractional
// digits.
func tooPrecise(v decimal.Decimal) bool {
	if v.IsZero() {
		return false
	}
	return int64(v.Exponent()) < -maxFractionDigits
}
