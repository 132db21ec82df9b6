// Package savingsservice manages business logic layer of member savings.
package savingsservice

import (
	"context"
	"fmt"

	"github.com/go-petr/pet-loans/internal/capacity"
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service facilitates savings service layer logic.
type Service struct {
	store store.Store
	ratio decimal.Decimal
}

// New returns savings service struct to manage savings bussines logic.
func New(st store.Store, ratio decimal.Decimal) *Service {
	return &Service{
		store: st,
		ratio: ratio,
	}
}

// Deposit credits the account and recomputes its loan capacity in one transaction.
func (s *Service) Deposit(ctx context.Context, arg domain.SavingsParams) (domain.SavingsResult, error) {
	return s.record(ctx, domain.SavingsDeposit, arg)
}

// Withdraw debits the account and recomputes its loan capacity in one transaction.
// It fails with domain.ErrInsufficientBalance when amount exceeds the balance.
func (s *Service) Withdraw(ctx context.Context, arg domain.SavingsParams) (domain.SavingsResult, error) {
	return s.record(ctx, domain.SavingsWithdraw, arg)
}

func (s *Service) record(ctx context.Context, kind domain.SavingsKind, arg domain.SavingsParams) (domain.SavingsResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.SavingsResult

	if err := domain.ValidateAmount(arg.Amount); err != nil {
		return result, err
	}

	if err := domain.ValidateReference(arg.Reference); err != nil {
		return result, err
	}

	err := s.store.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
		account, err := q.LockAccount(ctx, arg.AccountID)
		if err != nil {
			return err
		}

		prev, found, err := q.GetSavingsEntryByReference(ctx, arg.Reference)
		if err != nil {
			return err
		}

		if found {
			if prev.AccountID != arg.AccountID || prev.Kind != kind || !prev.Amount.Equal(arg.Amount) {
				l.Info().Str("reference", arg.Reference).Msg("reference reused with different content")
				return domain.ErrDuplicateReference
			}

			result = domain.SavingsResult{
				Entry:    prev,
				Account:  account,
				Replayed: true,
				Message:  message(kind, account.LoanCapacity),
			}

			return nil
		}

		if !account.Active {
			return domain.ErrAccountInactive
		}

		funds := domain.UpdateAccountFundsParams{
			ID:               account.ID,
			Balance:          account.Balance,
			TotalDeposits:    account.TotalDeposits,
			TotalWithdrawals: account.TotalWithdrawals,
		}

		switch kind {
		case domain.SavingsDeposit:
			funds.Balance = funds.Balance.Add(arg.Amount)
			funds.TotalDeposits = funds.TotalDeposits.Add(arg.Amount)
		case domain.SavingsWithdraw:
			if arg.Amount.GreaterThan(account.Balance) {
				return domain.ErrInsufficientBalance
			}

			funds.Balance = funds.Balance.Sub(arg.Amount)
			funds.TotalWithdrawals = funds.TotalWithdrawals.Add(arg.Amount)
		}

		entry, err := q.CreateSavingsEntry(ctx, domain.CreateSavingsEntryParams{
			AccountID: account.ID,
			Amount:    arg.Amount,
			Kind:      kind,
			Reference: arg.Reference,
		})
		if err != nil {
			return err
		}

		loans, err := q.ListAccountLoans(ctx, account.ID, domain.LoanActive, domain.LoanDefaulted)
		if err != nil {
			return err
		}

		funds.LoanCapacity = capacity.Recompute(funds.TotalDeposits, funds.TotalWithdrawals, s.ratio,
			capacity.CommittedPrincipal(loans))

		account, err = q.UpdateAccountFunds(ctx, funds)
		if err != nil {
			return err
		}

		result = domain.SavingsResult{
			Entry:   entry,
			Account: account,
			Message: message(kind, account.LoanCapacity),
		}

		return nil
	})

	if err != nil {
		l.Info().Err(err).Int64("account_id", arg.AccountID).Str("kind", string(kind)).Send()
		return domain.SavingsResult{}, err
	}

	l.Info().
		Int64("account_id", arg.AccountID).
		Str("kind", string(kind)).
		Str("amount", arg.Amount.StringFixed(domain.MoneyScale)).
		Bool("replayed", result.Replayed).
		Msg("savings entry recorded")

	return result, nil
}

func message(kind domain.SavingsKind, loanCapacity decimal.Decimal) string {
	action := "Deposit"
	if kind == domain.SavingsWithdraw {
		action = "Withdrawal"
	}

	return fmt.Sprintf("%s successful! Your loan capacity is now %s", action, loanCapacity.StringFixed(domain.MoneyScale))
}

// List returns the account savings entries, newest first.
func (s *Service) List(ctx context.Context, accountID int64, pageSize, pageID int32) ([]domain.SavingsEntry, error) {
	if accountID == 0 {
		return nil, domain.ErrAccountNotFound
	}

	return s.store.ListSavingsEntries(ctx, domain.ListSavingsParams{
		AccountID: accountID,
		Limit:     pageSize,
		Offset:    (pageID - 1) * pageSize,
	})
}

// ListAll returns savings entries of every account, newest first.
func (s *Service) ListAll(ctx context.Context, pageSize, pageID int32) ([]domain.SavingsEntry, error) {
	return s.store.ListSavingsEntries(ctx, domain.ListSavingsParams{
		Limit:  pageSize,
		Offset: (pageID - 1) * pageSize,
	})
}

// Stats returns the account savings counts and sums per kind.
func (s *Service) Stats(ctx context.Context, accountID int64) (domain.SavingsStats, error) {
	if _, err := s.store.GetAccount(ctx, accountID); err != nil {
		return domain.SavingsStats{}, err
	}

	return s.store.SavingsStats(ctx, accountID)
}
