// Package capacity derives loan capacity from savings history and tracks how much
// of it loans consume and repayments give back.
//
// All functions are pure. Results are rounded to Scale decimal places.
package capacity

import "github.com/shopspring/decimal"

// Scale is the number of decimal places kept for money.
const Scale = 2

// DefaultRatio is the share of net savings that may be borrowed.
var DefaultRatio = decimal.New(5, -1)

// Round rounds d to money scale.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Compute returns max(0, (totalDeposits - totalWithdrawals) * ratio).
//
// It must be given lifetime totals, never per-entry deltas.
func Compute(totalDeposits, totalWithdrawals, ratio decimal.Decimal) decimal.Decimal {
	c := totalDeposits.Sub(totalWithdrawals).Mul(ratio)
	if c.IsNegative() {
		return decimal.Zero
	}

	return Round(c)
}

// Recompute returns the capacity left once committed principal is taken out of Compute.
func Recompute(totalDeposits, totalWithdrawals, ratio, committed decimal.Decimal) decimal.Decimal {
	return Available(Compute(totalDeposits, totalWithdrawals, ratio), committed)
}

// Available returns max(0, capacity - outstanding).
func Available(capacity, outstanding decimal.Decimal) decimal.Decimal {
	a := capacity.Sub(outstanding)
	if a.IsNegative() {
		return decimal.Zero
	}

	return a
}

// Consume returns the capacity left after a principal is drawn, clamped at zero.
func Consume(capacity, principal decimal.Decimal) decimal.Decimal {
	return Available(capacity, principal)
}

// Restored returns the principal share of paid, paid * principal / totalAmount.
// A fully paid loan restores exactly its principal.
func Restored(principal, totalAmount, paid decimal.Decimal) decimal.Decimal {
	if !totalAmount.IsPositive() || paid.GreaterThanOrEqual(totalAmount) {
		return principal
	}

	if !paid.IsPositive() {
		return decimal.Zero
	}

	return Round(paid.Mul(principal).Div(totalAmount))
}

// Committed returns the principal of a loan that repayments have not restored yet.
func Committed(principal, totalAmount, paid decimal.Decimal) decimal.Decimal {
	return principal.Sub(Restored(principal, totalAmount, paid))
}

// Restore returns the capacity a payment gives back when the paid amount moves from
// paidBefore to paidAfter. Rounding is cumulative, so the restorations of a fully
// repaid loan add up to its principal.
func Restore(principal, totalAmount, paidBefore, paidAfter decimal.Decimal) decimal.Decimal {
	return Restored(principal, totalAmount, paidAfter).Sub(Restored(principal, totalAmount, paidBefore))
}
