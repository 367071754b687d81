package payroll

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of fractional digits kept for money and hours.
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// RoundToTwoDecimals rounds v to two fractional digits, half away from zero.
// 18.375 becomes 18.38 and -0.005 becomes -0.01. Values are exact decimals,
// so there is no binary-float drift to round around.
func RoundToTwoDecimals(v decimal.Decimal) decimal.Decimal {
	return v.Round(MoneyPlaces)
}

// FormatMoney renders v with exactly two fractional digits, e.g. "5833.33".
func FormatMoney(v decimal.Decimal) string {
	return v.StringFixed(MoneyPlaces)
}

// percentFactor converts a percentage into a multiplier: 5 -> 1.05.
func percentFactor(percent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(percent.Div(hundred))
}
