package loanservice

import (
	"github.com/go-petr/pet-loans/internal/capacity"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// InterestRate returns the yearly rate in percent for a loan of the given duration.
func InterestRate(durationMonths int32) decimal.Decimal {
	switch {
	case durationMonths <= 3:
		return decimal.NewFromInt(15)
	case durationMonths <= 6:
		return decimal.NewFromInt(12)
	case durationMonths <= 12:
		return decimal.NewFromInt(10)
	default:
		return decimal.NewFromInt(8)
	}
}

// Terms returns the total amount owed, principal * (1 + rate/100 * months/12),
// and the monthly installment. Both are rounded to cents.
func Terms(principal, ratePercent decimal.Decimal, durationMonths int32) (total, monthly decimal.Decimal) {
	months := decimal.NewFromInt(int64(durationMonths))
	interest := ratePercent.Div(hundred).Mul(months).Div(twelve)

	total = capacity.Round(principal.Mul(decimal.NewFromInt(1).Add(interest)))
	monthly = capacity.Round(total.Div(months))

	return total, monthly
}
