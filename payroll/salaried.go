package payroll

import "github.com/shopspring/decimal"

var monthsPerYear = decimal.NewFromInt(12)

// SalariedEmployee is paid one twelfth of a yearly salary each month.
type SalariedEmployee struct {
	identity
	yearlySalary decimal.Decimal
}

// NewSalariedEmployee validates the salary against [0, MaxYearlySalary] and
// rounds it to two decimals.
func NewSalariedEmployee(name, id string, yearlySalary decimal.Decimal) (*SalariedEmployee, error) {
	ident, err := newIdentity(name, id)
	if err != nil {
		return nil, err
	}
	b := DefaultBounds()
	salary, ok := within(yearlySalary, b.MinYearlySalary, b.MaxYearlySalary)
	if !ok {
		return nil, invalid("yearly salary", yearlySalary, "must be between "+
			FormatMoney(b.MinYearlySalary)+" and "+FormatMoney(b.MaxYearlySalary))
	}
	return &SalariedEmployee{
		identity:     ident,
		yearlySalary: RoundToTwoDecimals(salary),
	}, nil
}

// Clone returns an independent copy.
func (e *SalariedEmployee) Clone() *SalariedEmployee {
	c := *e
	return &c
}

func (e *SalariedEmployee) Kind() Kind { return KindSalaried }

// BaseSalary returns the yearly salary.
func (e *SalariedEmployee) BaseSalary() decimal.Decimal {
	return e.yearlySalary
}

// PayForThisPeriod returns the monthly pay.
func (e *SalariedEmployee) PayForThisPeriod() decimal.Decimal {
	return RoundToTwoDecimals(e.yearlySalary.Div(monthsPerYear))
}

// GiveRaiseByPercent raises the salary. Percentages above MaxRaisePercent
// are treated as MaxRaisePercent and the result is capped at
// MaxYearlySalary. A negative percent, or one with more fractional digits
// than can be represented, is an error.
func (e *SalariedEmployee) GiveRaiseByPercent(percent decimal.Decimal) error {
	if percent.IsNegative() {
		return invalid("raise percent", percent, "must not be negative")
	}
	if tooPrecise(percent) {
		return invalid("raise percent", percent, "has too many fractional digits")
	}
	b := DefaultBounds()
	effective := b.MaxRaisePercent
	if p, ok := within(percent, decimal.Zero, b.MaxRaisePercent); ok {
		effective = p
	}
	raised := RoundToTwoDecimals(e.yearlySalary.Mul(percentFactor(effective)))
	e.yearlySalary = decimal.Min(raised, b.MaxYearlySalary)
	return nil
}

func (e *SalariedEmployee) String() string { return describe(e) }

func (e *SalariedEmployee) snapshot() Record {
	return Record{
		Kind:         KindSalaried,
		ID:           e.id,
		Name:         e.name,
		YearlySalary: e.yearlySalary,
	}
}
