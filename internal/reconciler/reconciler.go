// Package reconciler runs the periodic jobs that correct capacity drift and
// default loans left unpaid past their grace period.
package reconciler

import (
	"context"
	"errors"
	"time"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/rs/zerolog"
)

// DefaultBatchSize is the page size used when none is configured.
const DefaultBatchSize = 100

// AccountService provides the account operations used by reconciliation.
type AccountService interface {
	ListActive(ctx context.Context, afterID int64, limit int32) ([]domain.Account, error)
	RecomputeCapacity(ctx context.Context, id int64) (domain.CapacityChange, error)
}

// LoanService provides the loan operations used by reconciliation.
type LoanService interface {
	ListOverdue(ctx context.Context, afterID int64, limit int32) ([]domain.Loan, error)
	MarkDefaulted(ctx context.Context, loanID int64) (domain.Loan, error)
	PastGrace(loan domain.Loan) bool
	GracePeriod() time.Duration
}

// Summary is the tally of a single reconciliation pass.
type Summary struct {
	Processed   int `json:"processed"`
	Updated     int `json:"updated"`
	Failed      int `json:"failed"`
	WithinGrace int `json:"within_grace,omitempty"`
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Int("processed", s.Processed).
		Int("updated", s.Updated).
		Int("failed", s.Failed).
		Int("within_grace", s.WithinGrace)
}

// Reconciler walks accounts and loans in pages, one transaction per item.
// It goes through the same services as request handlers.
type Reconciler struct {
	accounts  AccountService
	loans     LoanService
	batchSize int32
}

// New returns a Reconciler. A non-positive batchSize falls back to DefaultBatchSize.
func New(as AccountService, ls LoanService, batchSize int32) *Reconciler {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &Reconciler{
		accounts:  as,
		loans:     ls,
		batchSize: batchSize,
	}
}

// RecomputeCapacity rebuilds the capacity of every active account from its
// lifetime savings totals. An account that fails is counted and skipped.
// The returned error is set only when a page could not be listed.
func (r *Reconciler) RecomputeCapacity(ctx context.Context) (Summary, error) {
	l := zerolog.Ctx(ctx)

	var (
		summary Summary
		afterID int64
	)

	for {
		accounts, err := r.accounts.ListActive(ctx, afterID, r.batchSize)
		if err != nil {
			l.Error().Err(err).Int64("after_id", afterID).EmbedObject(summary).Msg("capacity recompute aborted")
			return summary, err
		}

		for _, a := range accounts {
			afterID = a.ID
			summary.Processed++

			change, err := r.accounts.RecomputeCapacity(ctx, a.ID)
			if err != nil {
				summary.Failed++
				l.Error().Err(err).Int64("account_id", a.ID).Msg("cannot recompute capacity")

				continue
			}

			if change.Clamped {
				l.Warn().
					Int64("account_id", a.ID).
					Str("capacity", change.Account.LoanCapacity.StringFixed(2)).
					Msg("committed principal exceeds savings capacity")
			}

			if change.Changed() {
				summary.Updated++
				l.Info().
					Int64("account_id", a.ID).
					Str("previous", change.Previous.StringFixed(2)).
					Str("capacity", change.Account.LoanCapacity.StringFixed(2)).
					Msg("capacity corrected")
			}
		}

		if len(accounts) < int(r.batchSize) {
			break
		}
	}

	l.Info().EmbedObject(summary).Msg("capacity recompute finished")

	return summary, nil
}

// SweepOverdue defaults every ACTIVE loan whose next payment is overdue by more
// than the grace period. Overdue loans still within grace are only counted.
// A loan that fails is counted and skipped.
func (r *Reconciler) SweepOverdue(ctx context.Context) (Summary, error) {
	l := zerolog.Ctx(ctx)

	var (
		summary Summary
		afterID int64
	)

	for {
		loans, err := r.loans.ListOverdue(ctx, afterID, r.batchSize)
		if err != nil {
			l.Error().Err(err).Int64("after_id", afterID).EmbedObject(summary).Msg("overdue sweep aborted")
			return summary, err
		}

		for _, loan := range loans {
			afterID = loan.ID
			summary.Processed++

			if !r.loans.PastGrace(loan) {
				summary.WithinGrace++
				l.Info().
					Int64("loan_id", loan.ID).
					Int64("account_id", loan.AccountID).
					Time("next_payment_date", *loan.NextPaymentDate).
					Msg("loan overdue within grace period")

				continue
			}

			_, err := r.loans.MarkDefaulted(ctx, loan.ID)

			switch {
			case err == nil:
				summary.Updated++
			case errors.Is(err, domain.ErrNotOverdue), errors.Is(err, domain.ErrInvalidLoanState):
				// Paid or settled between listing and locking.
				l.Info().Err(err).Int64("loan_id", loan.ID).Msg("loan skipped")
			default:
				summary.Failed++
				l.Error().Err(err).Int64("loan_id", loan.ID).Msg("cannot mark loan defaulted")
			}
		}

		if len(loans) < int(r.batchSize) {
			break
		}
	}

	l.Info().EmbedObject(summary).Dur("grace_period", r.loans.GracePeriod()).Msg("overdue sweep finished")

	return summary, nil
}
