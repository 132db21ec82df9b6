// Package paymentservice manages business logic layer of loan repayments.
package paymentservice

import (
	"context"
	"fmt"
	"time"

	"github.com/go-petr/pet-loans/internal/capacity"
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PaymentInterval is the time granted until the next installment after a partial payment.
const PaymentInterval = 30 * 24 * time.Hour

// Service facilitates payment service layer logic.
type Service struct {
	store store.Store
	now   func() time.Time
}

// New returns payment service struct to manage repayment bussines logic.
// A nil clock defaults to time.Now.
func New(st store.Store, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}

	return &Service{
		store: st,
		now:   clock,
	}
}

// Pay applies a repayment to an ACTIVE loan and gives back the principal share
// of the payment to the account capacity in the same transaction.
func (s *Service) Pay(ctx context.Context, arg domain.PayParams) (domain.PaymentResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.PaymentResult

	if err := domain.ValidateAmount(arg.Amount); err != nil {
		return result, err
	}

	if err := domain.ValidateReference(arg.Reference); err != nil {
		return result, err
	}

	err := s.store.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
		loan, err := q.GetLoan(ctx, arg.LoanID)
		if err != nil {
			return err
		}

		if loan.AccountID != arg.AccountID {
			return domain.ErrLoanOwnerMismatch
		}

		account, err := q.LockAccount(ctx, loan.AccountID)
		if err != nil {
			return err
		}

		if loan, err = q.LockLoan(ctx, arg.LoanID); err != nil {
			return err
		}

		prev, found, err := q.GetPaymentByReference(ctx, arg.Reference)
		if err != nil {
			return err
		}

		if found {
			if prev.LoanID != arg.LoanID || !prev.Amount.Equal(arg.Amount) {
				l.Info().Str("reference", arg.Reference).Msg("reference reused with different content")
				return domain.ErrDuplicateReference
			}

			result = domain.PaymentResult{
				Payment:  prev,
				Loan:     loan,
				Account:  account,
				Restored: decimal.Zero,
				Replayed: true,
				Message:  message(loan),
			}

			return nil
		}

		if loan.Status != domain.LoanActive {
			return domain.ErrInvalidLoanState
		}

		if arg.Amount.GreaterThan(loan.RemainingBalance) {
			return domain.ErrAmountExceedsBalance
		}

		payment, err := q.CreatePayment(ctx, domain.CreatePaymentParams{
			LoanID:    loan.ID,
			AccountID: account.ID,
			Amount:    arg.Amount,
			Status:    domain.PaymentCompleted,
			Reference: arg.Reference,
		})
		if err != nil {
			return err
		}

		paidBefore := loan.AmountPaid
		loan.AmountPaid = loan.AmountPaid.Add(arg.Amount)
		loan.RemainingBalance = capacity.Available(loan.RemainingBalance, arg.Amount)

		if loan.RemainingBalance.IsZero() {
			loan.Status = domain.LoanCompleted
			loan.NextPaymentDate = nil
		} else {
			next := s.now().Add(PaymentInterval)
			loan.NextPaymentDate = &next
		}

		if loan, err = q.UpdateLoan(ctx, loan); err != nil {
			return err
		}

		restored := capacity.Restore(loan.Principal, loan.TotalAmount, paidBefore, loan.AmountPaid)

		if account, err = q.SetAccountCapacity(ctx, account.ID, account.LoanCapacity.Add(restored)); err != nil {
			return err
		}

		result = domain.PaymentResult{
			Payment:  payment,
			Loan:     loan,
			Account:  account,
			Restored: restored,
			Message:  message(loan),
		}

		return nil
	})

	if err != nil {
		l.Info().Err(err).Int64("loan_id", arg.LoanID).Msg("payment refused")
		return domain.PaymentResult{}, err
	}

	l.Info().
		Int64("loan_id", result.Loan.ID).
		Str("amount", arg.Amount.StringFixed(domain.MoneyScale)).
		Str("restored", result.Restored.StringFixed(domain.MoneyScale)).
		Str("status", string(result.Loan.Status)).
		Bool("replayed", result.Replayed).
		Msg("payment applied")

	return result, nil
}

func message(loan domain.Loan) string {
	if loan.Status == domain.LoanCompleted {
		return "Loan fully repaid! Congratulations! Your loan capacity has been restored."
	}

	return fmt.Sprintf("Payment successful! Remaining balance: %s", loan.RemainingBalance.StringFixed(domain.MoneyScale))
}

// Get returns the payment with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Payment, error) {
	return s.store.GetPayment(ctx, id)
}

// ListByLoan returns the loan payments, newest first.
func (s *Service) ListByLoan(ctx context.Context, loanID int64, pageSize, pageID int32) ([]domain.Payment, error) {
	if _, err := s.store.GetLoan(ctx, loanID); err != nil {
		return nil, err
	}

	return s.store.ListLoanPayments(ctx, loanID, pageSize, (pageID-1)*pageSize)
}

// ListByAccount returns payments made by the account on any of its loans, newest first.
func (s *Service) ListByAccount(ctx context.Context, accountID int64, pageSize, pageID int32) ([]domain.Payment, error) {
	if accountID == 0 {
		return nil, domain.ErrAccountNotFound
	}

	return s.store.ListPayments(ctx, domain.ListPaymentsParams{
		AccountID: accountID,
		Limit:     pageSize,
		Offset:    (pageID - 1) * pageSize,
	})
}

// List returns payments of every account, newest first.
func (s *Service) List(ctx context.Context, pageSize, pageID int32) ([]domain.Payment, error) {
	return s.store.ListPayments(ctx, domain.ListPaymentsParams{
		Limit:  pageSize,
		Offset: (pageID - 1) * pageSize,
	})
}
