/*
hourly.go - Employees paid by the hour, weekly

PAY RULE:
  hours    = special hours if an override is armed, else normal hours
  regular  = min(hours, 40)
  overtime = max(0, hours - 40)
  pay      = regular*rate + overtime*rate*1.5   (rounded to cents)

SPECIAL HOURS:
  SetSpecialHours arms a one-shot override. The next PayForThisPeriod uses
  it and disarms it, whatever the value was. The override never changes
  normal hours.

RAISES:
  0 <= percent <= 10, otherwise ErrInvalidArgument. A raise that would
  take the rate above MaxHourlyRate is dropped without error and the rate
  stays as it was. Salaried raises clamp instead; the difference is
  intentional and kept until product decides otherwise.
*/
package payroll

import "github.com/shopspring/decimal"

// HourlyEmployee is paid weekly for hours worked.
type HourlyEmployee struct {
	identity
	hourlyRate      decimal.Decimal
	normalHours     decimal.Decimal
	specialHours    decimal.Decimal
	useSpecialHours bool
}

// NewHourlyEmployee validates its inputs against DefaultBounds and rounds
// rate and hours to two decimals.
func NewHourlyEmployee(name, id string, hourlyRate, normalHours decimal.Decimal) (*HourlyEmployee, error) {
	ident, err := newIdentity(name, id)
	if err != nil {
		return nil, err
	}
	b := DefaultBounds()
	rate, ok := within(hourlyRate, b.MinHourlyRate, b.MaxHourlyRate)
	if !ok {
		return nil, invalid("hourly rate", hourlyRate, "must be between "+
			FormatMoney(b.MinHourlyRate)+" and "+FormatMoney(b.MaxHourlyRate))
	}
	hours, err := checkWeeklyHours("normal hours", normalHours)
	if err != nil {
		return nil, err
	}
	return &HourlyEmployee{
		identity:    ident,
		hourlyRate:  RoundToTwoDecimals(rate),
		normalHours: RoundToTwoDecimals(hours),
	}, nil
}

// Clone returns an independent copy, including a pending override.
func (e *HourlyEmployee) Clone() *HourlyEmployee {
	c := *e
	return &c
}

func (e *HourlyEmployee) Kind() Kind { return KindHourly }

// BaseSalary returns the hourly rate.
func (e *HourlyEmployee) BaseSalary() decimal.Decimal {
	return e.hourlyRate
}

// NormalHours returns the contracted weekly hours.
func (e *HourlyEmployee) NormalHours() decimal.Decimal {
	return e.normalHours
}

// PendingSpecialHours returns the armed override, if any.
func (e *HourlyEmployee) PendingSpecialHours() (decimal.Decimal, bool) {
	if !e.useSpecialHours {
		return decimal.Zero, false
	}
	return e.specialHours, true
}

// SetSpecialHours arms a one-shot override of normal hours for the next
// pay computation. Out-of-range hours leave the current state unchanged.
func (e *HourlyEmployee) SetSpecialHours(hours decimal.Decimal) error {
	hours, err := checkWeeklyHours("special hours", hours)
	if err != nil {
		return err
	}
	e.specialHours = RoundToTwoDecimals(hours)
	e.useSpecialHours = true
	return nil
}

// PayForThisPeriod computes the week's pay and disarms any override.
func (e *HourlyEmployee) PayForThisPeriod() decimal.Decimal {
	hours := e.normalHours
	if e.useSpecialHours {
		hours = e.specialHours
	}
	e.useSpecialHours = false

	b := DefaultBounds()
	regular := decimal.Min(hours, b.OvertimeThreshold)
	overtime := decimal.Max(decimal.Zero, hours.Sub(b.OvertimeThreshold))

	regularPay := regular.Mul(e.hourlyRate)
	overtimePay := overtime.Mul(e.hourlyRate).Mul(b.OvertimeMultiplier)
	return RoundToTwoDecimals(regularPay.Add(overtimePay))
}

// GiveRaiseByPercent raises the hourly rate by percent (0 to 10). A result
// above MaxHourlyRate is discarded and the rate is left unchanged.
func (e *HourlyEmployee) GiveRaiseByPercent(percent decimal.Decimal) error {
	b := DefaultBounds()
	percent, ok := within(percent, decimal.Zero, b.MaxRaisePercent)
	if !ok {
		return invalid("raise percent", percent, "must be between 0 and "+b.MaxRaisePercent.String())
	}
	raised := RoundToTwoDecimals(e.hourlyRate.Mul(percentFactor(percent)))
	if raised.LessThanOrEqual(b.MaxHourlyRate) {
		e.hourlyRate = raised
	}
	return nil
}

func (e *HourlyEmployee) String() string { return describe(e) }

func (e *HourlyEmployee) snapshot() Record {
	return Record{
		Kind:              KindHourly,
		ID:                e.id,
		Name:              e.name,
		HourlyRate:        e.hourlyRate,
		NormalHours:       e.normalHours,
		SpecialHours:      e.specialHours,
		SpecialHoursArmed: e.useSpecialHours,
	}
}

func checkWeeklyHours(field string, hours decimal.Decimal) (decimal.Decimal, error) {
	b := DefaultBounds()
	h, ok := within(hours, b.MinWeeklyHours, b.MaxWeeklyHours)
	if !ok {
		return decimal.Zero, invalid(field, hours, "must be between "+
			FormatMoney(b.MinWeeklyHours)+" and "+FormatMoney(b.MaxWeeklyHours))
	}
	return h, nil
}
