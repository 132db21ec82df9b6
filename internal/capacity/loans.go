package capacity

import (
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/shopspring/decimal"
)

// CommittedPrincipal sums the unrestored principal of loans that hold capacity.
// Only ACTIVE and DEFAULTED loans count.
func CommittedPrincipal(loans []domain.Loan) decimal.Decimal {
	sum := decimal.Zero

	for i := range loans {
		switch loans[i].Status {
		case domain.LoanActive, domain.LoanDefaulted:
			sum = sum.Add(Committed(loans[i].Principal, loans[i].TotalAmount, loans[i].AmountPaid))
		}
	}

	return sum
}

// PendingPrincipal sums the principal reserved by PENDING loans.
func PendingPrincipal(loans []domain.Loan) decimal.Decimal {
	sum := decimal.Zero

	for i := range loans {
		if loans[i].Status == domain.LoanPending {
			sum = sum.Add(loans[i].Principal)
		}
	}

	return sum
}
