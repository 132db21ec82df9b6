// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/go-petr/pet-loans/internal/capacity"
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service facilitates account service layer logic.
type Service struct {
	store store.Store
	ratio decimal.Decimal
}

// New returns account service struct to manage account bussines logic.
func New(st store.Store, ratio decimal.Decimal) *Service {
	return &Service{
		store: st,
		ratio: ratio,
	}
}

// Create registers an empty account for the given owner.
func (s *Service) Create(ctx context.Context, owner string) (domain.Account, error) {
	return s.store.CreateAccount(ctx, owner)
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id int64) (domain.Account, error) {
	return s.store.GetAccount(ctx, id)
}

// GetByOwner returns the account of the given owner.
func (s *Service) GetByOwner(ctx context.Context, owner string) (domain.Account, error) {
	return s.store.GetAccountByOwner(ctx, owner)
}

// GetOwned returns the account if it belongs to owner.
func (s *Service) GetOwned(ctx context.Context, id int64, owner string) (domain.Account, error) {
	account, err := s.store.GetAccount(ctx, id)
	if err != nil {
		return account, err
	}

	if account.Owner != owner {
		zerolog.Ctx(ctx).Info().Int64("account_id", id).Str("owner", owner).Msg("account owner mismatch")
		return domain.Account{}, domain.ErrAccountOwnerMismatch
	}

	return account, nil
}

// SetActive opens or closes the account.
func (s *Service) SetActive(ctx context.Context, id int64, active bool) (domain.Account, error) {
	var account domain.Account

	err := s.store.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
		if _, err := q.LockAccount(ctx, id); err != nil {
			return err
		}

		var err error
		account, err = q.SetAccountActive(ctx, id, active)

		return err
	})

	return account, err
}

// ListActive returns up to limit active accounts with ids after afterID.
func (s *Service) ListActive(ctx context.Context, afterID int64, limit int32) ([]domain.Account, error) {
	return s.store.ListActiveAccounts(ctx, domain.ListAccountsParams{AfterID: afterID, Limit: limit})
}

// RecomputeCapacity rebuilds the account capacity from its lifetime savings totals
// and the principal still committed to its loans, overwriting the stored value
// when it differs.
func (s *Service) RecomputeCapacity(ctx context.Context, id int64) (domain.CapacityChange, error) {
	var change domain.CapacityChange

	err := s.store.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
		account, err := q.LockAccount(ctx, id)
		if err != nil {
			return err
		}

		loans, err := q.ListAccountLoans(ctx, id, domain.LoanActive, domain.LoanDefaulted)
		if err != nil {
			return err
		}

		base := capacity.Compute(account.TotalDeposits, account.TotalWithdrawals, s.ratio)
		committed := capacity.CommittedPrincipal(loans)

		change.Previous = account.LoanCapacity
		change.Clamped = committed.GreaterThan(base)
		change.Account = account

		next := capacity.Available(base, committed)
		if next.Equal(account.LoanCapacity) {
			return nil
		}

		change.Account, err = q.SetAccountCapacity(ctx, id, next)

		return err
	})

	return change, err
}
