// Package savingsrepo manages repository layer of savings entries.
package savingsrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/pkg/dbpkg"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates savings entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns savings RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    savings_entries (account_id, amount, kind, reference)
VALUES
    ($1, $2, $3, $4)
RETURNING id, account_id, amount, kind, reference, created_at
`

// CreateSavingsEntry appends the entry to the account ledger and then returns it.
func (r *RepoPGS) CreateSavingsEntry(ctx context.Context, arg domain.CreateSavingsEntryParams) (domain.SavingsEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.AccountID, arg.Amount, arg.Kind, arg.Reference)

	var e domain.SavingsEntry

	err := row.Scan(
		&e.ID,
		&e.AccountID,
		&e.Amount,
		&e.Kind,
		&e.Reference,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		switch {
		case dbpkg.IsUniqueViolation(err, "savings_entries_reference_key"):
			return e, domain.ErrDuplicateReference
		case dbpkg.IsCheckViolation(err, "savings_entries_amount_check"):
			return e, domain.ErrInvalidAmount
		}

		if pqErr, ok := dbpkg.PQError(err); ok && pqErr.Code == dbpkg.CodeForeignKeyViolation {
			return e, domain.ErrAccountNotFound
		}

		return e, dbpkg.MapError(err)
	}

	return e, nil
}

const getByReferenceQuery = `
SELECT id, account_id, amount, kind, reference, created_at FROM savings_entries
WHERE reference = $1 LIMIT 1
`

// GetSavingsEntryByReference returns the entry recorded under the given reference.
// The boolean result is false when no such entry exists.
func (r *RepoPGS) GetSavingsEntryByReference(ctx context.Context, reference string) (domain.SavingsEntry, bool, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByReferenceQuery, reference)

	var e domain.SavingsEntry

	err := row.Scan(
		&e.ID,
		&e.AccountID,
		&e.Amount,
		&e.Kind,
		&e.Reference,
		&e.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return e, false, nil
	}

	if err != nil {
		l.Error().Err(err).Send()
		return e, false, dbpkg.MapError(err)
	}

	return e, true, nil
}

const listQuery = `
SELECT id, account_id, amount, kind, reference, created_at FROM savings_entries
WHERE ($1::bigint = 0 OR account_id = $1)
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3
`

// ListSavingsEntries returns entries of one account, or of every account, newest first.
func (r *RepoPGS) ListSavingsEntries(ctx context.Context, arg domain.ListSavingsParams) ([]domain.SavingsEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, arg.AccountID, arg.Limit, arg.Offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, dbpkg.MapError(err)
	}
	defer rows.Close()

	items := []domain.SavingsEntry{}

	for rows.Next() {
		var e domain.SavingsEntry
		if err := rows.Scan(
			&e.ID,
			&e.AccountID,
			&e.Amount,
			&e.Kind,
			&e.Reference,
			&e.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, dbpkg.MapError(err)
		}

		items = append(items, e)
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

const statsQuery = `
SELECT
	count(*) FILTER (WHERE kind = 'DEPOSIT'),
	coalesce(sum(amount) FILTER (WHERE kind = 'DEPOSIT'), 0),
	count(*) FILTER (WHERE kind = 'WITHDRAW'),
	coalesce(sum(amount) FILTER (WHERE kind = 'WITHDRAW'), 0)
FROM savings_entries
WHERE account_id = $1
`

// SavingsStats aggregates the account entries per kind.
func (r *RepoPGS) SavingsStats(ctx context.Context, accountID int64) (domain.SavingsStats, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, statsQuery, accountID)

	var s domain.SavingsStats

	err := row.Scan(
		&s.DepositCount,
		&s.TotalDeposits,
		&s.WithdrawalCount,
		&s.TotalWithdrawals,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return s, dbpkg.MapError(err)
	}

	return s, nil
}
