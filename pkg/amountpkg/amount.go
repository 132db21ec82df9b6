// Package amountpkg validates money amounts received over the wire.
package amountpkg

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places money amounts may carry.
const Scale = 2

// IsValid reports whether d is positive with at most Scale decimal places.
func IsValid(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Truncate(Scale))
}

// ValidAmount validates a decimal.Decimal field.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return IsValid(v)
	case string:
		d, err := decimal.NewFromString(v)
		return err == nil && IsValid(d)
	}

	return false
}

// Register installs the "amount" tag on v. Decimal fields are validated through
// their string form since the validator does not run tags on struct types.
func Register(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}

		return nil
	}, decimal.Decimal{})

	return v.RegisterValidation("amount", ValidAmount)
}
