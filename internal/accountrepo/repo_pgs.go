// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/pkg/dbpkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row scanner) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Owner,
		&a.Balance,
		&a.TotalDeposits,
		&a.TotalWithdrawals,
		&a.LoanCapacity,
		&a.Active,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}

// mapError converts account query errors into domain or store errors.
func mapError(ctx context.Context, err error) error {
	l := zerolog.Ctx(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		l.Info().Err(err).Send()
		return domain.ErrAccountNotFound
	}

	l.Error().Err(err).Send()

	switch {
	case dbpkg.IsUniqueViolation(err, "accounts_owner_key"):
		return domain.ErrOwnerAlreadyExists
	case dbpkg.IsCheckViolation(err, "accounts_balance_check"):
		return domain.ErrInsufficientBalance
	}

	return dbpkg.MapError(err)
}

const createQuery = `
INSERT INTO 
    accounts (owner)
VALUES
    ($1)
RETURNING id, owner, balance, total_deposits, total_withdrawals, loan_capacity, active, created_at, updated_at
`

// CreateAccount registers an empty account for the given owner and then returns it.
func (r *RepoPGS) CreateAccount(ctx context.Context, owner string) (domain.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, createQuery, owner))
	if err != nil {
		return a, mapError(ctx, err)
	}

	return a, nil
}

const getQuery = `
SELECT 
	id, owner, balance, total_deposits, total_withdrawals, loan_capacity, active, created_at, updated_at
FROM accounts
WHERE id = $1
`

// GetAccount returns the account with the given id.
func (r *RepoPGS) GetAccount(ctx context.Context, id int64) (domain.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		return a, mapError(ctx, err)
	}

	return a, nil
}

const getByOwnerQuery = `
SELECT 
	id, owner, balance, total_deposits, total_withdrawals, loan_capacity, active, created_at, updated_at
FROM accounts
WHERE owner = $1
`

// GetAccountByOwner returns the account of the given owner.
func (r *RepoPGS) GetAccountByOwner(ctx context.Context, owner string) (domain.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, getByOwnerQuery, owner))
	if err != nil {
		return a, mapError(ctx, err)
	}

	return a, nil
}

const lockQuery = `
SELECT 
	id, owner, balance, total_deposits, total_withdrawals, loan_capacity, active, created_at, updated_at
FROM accounts
WHERE id = $1
FOR UPDATE
`

// LockAccount returns the account with the given id and holds its row lock
// until the surrounding transaction ends.
func (r *RepoPGS) LockAccount(ctx context.Context, id int64) (domain.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, lockQuery, id))
	if err != nil {
		return a, mapError(ctx, err)
	}

	return a, nil
}

const updateFundsQuery = `
UPDATE accounts
SET 
	balance = $2,
	total_deposits = $3,
	total_withdrawals = $4,
	loan_capacity = $5,
	updated_at = now()
WHERE id = $1
RETURNING id, owner, balance, total_deposits, total_withdrawals, loan_capacity, active, created_at, updated_at
`

// UpdateAccountFunds overwrites the savings aggregates and capacity of the account.
func (r *RepoPGS) UpdateAccountFunds(ctx context.Context, arg domain.UpdateAccountFundsParams) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, updateFundsQuery,
		arg.ID,
		arg.Balance,
		arg.TotalDeposits,
		arg.TotalWithdrawals,
		arg.LoanCapacity,
	)

	a, err := scanAccount(row)
	if err != nil {
		return a, mapError(ctx, err)
	}

	return a, nil
}

const setCapacityQuery = `
UPDATE accounts
SET loan_capacity = $2, updated_at = now()
WHERE id = $1
RETURNING id, owner, balance, total_deposits, total_withdrawals, loan_capacity, active, created_at, updated_at
`

// SetAccountCapacity overwrites the loan capacity of the account.
func (r *RepoPGS) SetAccountCapacity(ctx context.Context, id int64, capacity decimal.Decimal) (domain.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, setCapacityQuery, id, capacity))
	if err != nil {
		return a, mapError(ctx, err)
	}

	return a, nil
}

const setActiveQuery = `
UPDATE accounts
SET active = $2, updated_at = now()
WHERE id = $1
RETURNING id, owner, balance, total_deposits, total_withdrawals, loan_capacity, active, created_at, updated_at
`

// SetAccountActive opens or closes the account gate.
func (r *RepoPGS) SetAccountActive(ctx context.Context, id int64, active bool) (domain.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, setActiveQuery, id, active))
	if err != nil {
		return a, mapError(ctx, err)
	}

	return a, nil
}

const listActiveQuery = `
SELECT 
	id, owner, balance, total_deposits, total_withdrawals, loan_capacity, active, created_at, updated_at
FROM accounts
WHERE active AND id > $1
ORDER BY id
LIMIT $2
`

// ListActiveAccounts returns up to arg.Limit active accounts with ids after arg.AfterID.
func (r *RepoPGS) ListActiveAccounts(ctx context.Context, arg domain.ListAccountsParams) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listActiveQuery, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, mapError(ctx, err)
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, mapError(ctx, err)
		}

		items = append(items, a)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, dbpkg.MapError(err)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, dbpkg.MapError(err)
	}

	return items, nil
}
