package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places money is kept with.
const MoneyScale = 2

// ValidateAmount checks that amount is positive and has at most MoneyScale decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.Round(MoneyScale).Equal(amount) {
		return ErrInvalidAmount
	}

	return nil
}

// ValidateReference checks that a correlation reference is present.
func ValidateReference(reference string) error {
	if reference == "" {
		return ErrInvalidReference
	}

	return nil
}
