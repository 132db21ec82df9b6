// Package loanservice manages business logic layer of the loan lifecycle.
package loanservice

import (
	"context"
	"time"

	"github.com/go-petr/pet-loans/internal/capacity"
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultGracePeriod is how long a missed payment may stay unpaid before the loan defaults.
const DefaultGracePeriod = 30 * 24 * time.Hour

// Policy holds the lending rules applied on application and default.
type Policy struct {
	// MinPrincipal is the smallest principal that may be applied for.
	MinPrincipal decimal.Decimal
	// MinBalance is the savings balance required to borrow. Zero disables the check.
	MinBalance decimal.Decimal
	// GracePeriod is how long past its next payment date an ACTIVE loan may stay unpaid.
	GracePeriod time.Duration
}

// Service facilitates loan service layer logic.
type Service struct {
	store  store.Store
	policy Policy
	now    func() time.Time
}

// New returns loan service struct to manage loan bussines logic.
// A nil clock defaults to time.Now.
func New(st store.Store, policy Policy, clock func() time.Time) *Service {
	if policy.GracePeriod <= 0 {
		policy.GracePeriod = DefaultGracePeriod
	}

	if clock == nil {
		clock = time.Now
	}

	return &Service{
		store:  st,
		policy: policy,
		now:    clock,
	}
}

// Apply creates a PENDING loan if the account has enough unreserved capacity.
func (s *Service) Apply(ctx context.Context, arg domain.ApplyLoanParams) (domain.ApplicationResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.ApplicationResult

	if err := domain.ValidateAmount(arg.Principal); err != nil {
		return result, err
	}

	if arg.DurationMonths < 1 {
		return result, domain.ErrInvalidDuration
	}

	if err := domain.ValidateReference(arg.Reference); err != nil {
		return result, err
	}

	err := s.store.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
		account, err := q.LockAccount(ctx, arg.AccountID)
		if err != nil {
			return err
		}

		prev, found, err := q.GetLoanByReference(ctx, arg.Reference)
		if err != nil {
			return err
		}

		if found {
			if prev.AccountID != arg.AccountID || !prev.Principal.Equal(arg.Principal) ||
				prev.DurationMonths != arg.DurationMonths {
				l.Info().Str("reference", arg.Reference).Msg("reference reused with different content")
				return domain.ErrDuplicateReference
			}

			result = domain.ApplicationResult{Loan: prev, Replayed: true}

			return nil
		}

		if !account.Active {
			return domain.ErrAccountInactive
		}

		pending, err := q.ListAccountLoans(ctx, account.ID, domain.LoanPending)
		if err != nil {
			return err
		}

		available := capacity.Available(account.LoanCapacity, capacity.PendingPrincipal(pending))
		if available.IsZero() || arg.Principal.GreaterThan(available) {
			l.Info().
				Str("principal", arg.Principal.String()).
				Str("available", available.String()).
				Msg("loan capacity exceeded")

			return domain.ErrCapacityExceeded
		}

		if arg.Principal.LessThan(s.policy.MinPrincipal) {
			return domain.ErrBelowMinimum
		}

		if s.policy.MinBalance.IsPositive() && account.Balance.LessThan(s.policy.MinBalance) {
			return domain.ErrBalanceBelowMinimum
		}

		rate := InterestRate(arg.DurationMonths)
		total, monthly := Terms(arg.Principal, rate, arg.DurationMonths)

		loan, err := q.CreateLoan(ctx, domain.CreateLoanParams{
			AccountID:      account.ID,
			Reference:      arg.Reference,
			Principal:      arg.Principal,
			InterestRate:   rate,
			DurationMonths: arg.DurationMonths,
			MonthlyPayment: monthly,
			TotalAmount:    total,
			Purpose:        arg.Purpose,
		})
		if err != nil {
			return err
		}

		result = domain.ApplicationResult{Loan: loan}

		return nil
	})

	if err != nil {
		l.Info().Err(err).Int64("account_id", arg.AccountID).Msg("loan application refused")
		return domain.ApplicationResult{}, err
	}

	l.Info().Int64("loan_id", result.Loan.ID).Bool("replayed", result.Replayed).Msg("loan application recorded")

	return result, nil
}

// Approve activates a PENDING loan and consumes its principal from the account
// capacity in the same transaction.
func (s *Service) Approve(ctx context.Context, arg domain.ApproveLoanParams) (domain.ApprovalResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.ApprovalResult

	if arg.InterestRate != nil && !arg.InterestRate.IsPositive() {
		return result, domain.ErrInvalidRate
	}

	err := s.store.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
		loan, err := q.GetLoan(ctx, arg.LoanID)
		if err != nil {
			return err
		}

		account, err := q.LockAccount(ctx, loan.AccountID)
		if err != nil {
			return err
		}

		loan, err = q.LockLoan(ctx, arg.LoanID)
		if err != nil {
			return err
		}

		if loan.Status != domain.LoanPending {
			return domain.ErrInvalidLoanState
		}

		if !account.Active {
			return domain.ErrAccountInactive
		}

		if arg.InterestRate != nil && !arg.InterestRate.Equal(loan.InterestRate) {
			loan.InterestRate = *arg.InterestRate
			loan.TotalAmount, loan.MonthlyPayment = Terms(loan.Principal, loan.InterestRate, loan.DurationMonths)
			loan.RemainingBalance = loan.TotalAmount.Sub(loan.AmountPaid)
		}

		now := s.now()
		due := now.AddDate(0, int(loan.DurationMonths), 0)
		next := now.AddDate(0, 1, 0)

		loan.Status = domain.LoanActive
		loan.ApprovalDate = &now
		loan.DisbursementDate = &now
		loan.DueDate = &due
		loan.NextPaymentDate = &next

		if result.Loan, err = q.UpdateLoan(ctx, loan); err != nil {
			return err
		}

		result.Account, err = q.SetAccountCapacity(ctx, account.ID, capacity.Consume(account.LoanCapacity, loan.Principal))

		return err
	})

	if err != nil {
		l.Info().Err(err).Int64("loan_id", arg.LoanID).Msg("loan approval refused")
		return domain.ApprovalResult{}, err
	}

	l.Info().
		Int64("loan_id", result.Loan.ID).
		Str("loan_capacity", result.Account.LoanCapacity.String()).
		Msg("loan approved")

	return result, nil
}

// Reject closes a PENDING loan with the given reason.
func (s *Service) Reject(ctx context.Context, loanID int64, reason string) (domain.Loan, error) {
	var loan domain.Loan

	err := s.store.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
		var err error

		loan, err = q.LockLoan(ctx, loanID)
		if err != nil {
			return err
		}

		if loan.Status != domain.LoanPending {
			return domain.ErrInvalidLoanState
		}

		loan.Status = domain.LoanRejected
		loan.RejectionReason = reason

		loan, err = q.UpdateLoan(ctx, loan)

		return err
	})

	if err != nil {
		return domain.Loan{}, err
	}

	zerolog.Ctx(ctx).Info().Int64("loan_id", loanID).Str("reason", reason).Msg("loan rejected")

	return loan, nil
}

// MarkDefaulted moves an ACTIVE loan whose next payment is overdue by more than
// the grace period to DEFAULTED. Capacity stays consumed.
func (s *Service) MarkDefaulted(ctx context.Context, loanID int64) (domain.Loan, error) {
	var loan domain.Loan

	err := s.store.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
		var err error

		loan, err = q.LockLoan(ctx, loanID)
		if err != nil {
			return err
		}

		if loan.Status != domain.LoanActive {
			return domain.ErrInvalidLoanState
		}

		if !s.PastGrace(loan) {
			return domain.ErrNotOverdue
		}

		loan.Status = domain.LoanDefaulted

		loan, err = q.UpdateLoan(ctx, loan)

		return err
	})

	if err != nil {
		return domain.Loan{}, err
	}

	zerolog.Ctx(ctx).Warn().Int64("loan_id", loanID).Int64("account_id", loan.AccountID).Msg("loan defaulted")

	return loan, nil
}

// PastGrace reports whether the next payment of loan is overdue by more than the grace period.
func (s *Service) PastGrace(loan domain.Loan) bool {
	if loan.NextPaymentDate == nil {
		return false
	}

	return s.now().Sub(*loan.NextPaymentDate) > s.policy.GracePeriod
}

// ListOverdue returns up to limit ACTIVE loans with ids after afterID whose next
// payment date has passed, whether or not they are past the grace period.
func (s *Service) ListOverdue(ctx context.Context, afterID int64, limit int32) ([]domain.Loan, error) {
	return s.store.ListOverdueLoans(ctx, domain.OverdueLoansParams{
		Before:  s.now(),
		AfterID: afterID,
		Limit:   limit,
	})
}

// GracePeriod returns the configured grace period.
func (s *Service) GracePeriod() time.Duration {
	return s.policy.GracePeriod
}

// Eligibility reports how much the account may borrow right now without mutating anything.
func (s *Service) Eligibility(ctx context.Context, accountID int64) (domain.Eligibility, error) {
	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return domain.Eligibility{}, err
	}

	pending, err := s.store.ListAccountLoans(ctx, accountID, domain.LoanPending)
	if err != nil {
		return domain.Eligibility{}, err
	}

	outstanding := capacity.PendingPrincipal(pending)

	e := domain.Eligibility{
		Capacity:             account.LoanCapacity,
		OutstandingPrincipal: outstanding,
		Available:            capacity.Available(account.LoanCapacity, outstanding),
		CurrentBalance:       account.Balance,
		TotalDeposits:        account.TotalDeposits,
		TotalWithdrawals:     account.TotalWithdrawals,
		MinBalanceRequired:   s.policy.MinBalance,
	}

	switch {
	case !account.Active:
		e.Reason = "Account is inactive."
	case !e.Capacity.IsPositive():
		e.Reason = "No loan capacity. Make deposits to build capacity."
	case !e.Available.IsPositive():
		e.Reason = "Loan capacity is fully reserved by pending applications."
	case s.policy.MinBalance.IsPositive() && account.Balance.LessThan(s.policy.MinBalance):
		e.Reason = "Balance is below the minimum required for a loan."
	default:
		e.Eligible = true
	}

	return e, nil
}

// Get returns the loan with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Loan, error) {
	return s.store.GetLoan(ctx, id)
}

// ListByAccount returns the account loans, newest first.
func (s *Service) ListByAccount(ctx context.Context, accountID int64, pageSize, pageID int32) ([]domain.Loan, error) {
	if accountID == 0 {
		return nil, domain.ErrAccountNotFound
	}

	return s.store.ListLoans(ctx, domain.ListLoansParams{
		AccountID: accountID,
		Limit:     pageSize,
		Offset:    (pageID - 1) * pageSize,
	})
}

// List returns loans of every account, optionally in one status, newest first.
func (s *Service) List(ctx context.Context, status domain.LoanStatus, pageSize, pageID int32) ([]domain.Loan, error) {
	if status != "" && !status.Valid() {
		return nil, domain.ErrInvalidLoanStatus
	}

	return s.store.ListLoans(ctx, domain.ListLoansParams{
		Status: status,
		Limit:  pageSize,
		Offset: (pageID - 1) * pageSize,
	})
}

// Stats summarizes the account borrowing history.
func (s *Service) Stats(ctx context.Context, accountID int64) (domain.LoanStats, error) {
	if _, err := s.store.GetAccount(ctx, accountID); err != nil {
		return domain.LoanStats{}, err
	}

	return s.store.LoanStats(ctx, accountID)
}
