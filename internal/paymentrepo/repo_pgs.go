// Package paymentrepo manages repository layer of loan payments.
package paymentrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/pkg/dbpkg"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates payment repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns payment RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    payments (loan_id, account_id, amount, status, reference)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING id, loan_id, account_id, amount, status, reference, created_at
`

// CreatePayment records the payment and then returns it.
func (r *RepoPGS) CreatePayment(ctx context.Context, arg domain.CreatePaymentParams) (domain.Payment, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.LoanID,
		arg.AccountID,
		arg.Amount,
		arg.Status,
		arg.Reference,
	)

	var p domain.Payment

	err := row.Scan(
		&p.ID,
		&p.LoanID,
		&p.AccountID,
		&p.Amount,
		&p.Status,
		&p.Reference,
		&p.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		switch {
		case dbpkg.IsUniqueViolation(err, "payments_reference_key"):
			return p, domain.ErrDuplicateReference
		case dbpkg.IsCheckViolation(err, "payments_amount_check"):
			return p, domain.ErrInvalidAmount
		}

		if pqErr, ok := dbpkg.PQError(err); ok && pqErr.Code == dbpkg.CodeForeignKeyViolation {
			if pqErr.Constraint == "payments_account_id_fkey" {
				return p, domain.ErrAccountNotFound
			}

			return p, domain.ErrLoanNotFound
		}

		return p, dbpkg.MapError(err)
	}

	return p, nil
}

const getQuery = `
SELECT id, loan_id, account_id, amount, status, reference, created_at FROM payments
WHERE id = $1 LIMIT 1
`

// GetPayment returns the payment with the given id.
func (r *RepoPGS) GetPayment(ctx context.Context, id int64) (domain.Payment, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var p domain.Payment

	err := row.Scan(
		&p.ID,
		&p.LoanID,
		&p.AccountID,
		&p.Amount,
		&p.Status,
		&p.Reference,
		&p.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return p, domain.ErrPaymentNotFound
	}

	if err != nil {
		l.Error().Err(err).Send()
		return p, dbpkg.MapError(err)
	}

	return p, nil
}

const getByReferenceQuery = `
SELECT id, loan_id, account_id, amount, status, reference, created_at FROM payments
WHERE reference = $1 LIMIT 1
`

// GetPaymentByReference returns the payment recorded under the given reference.
// The boolean result is false when no such payment exists.
func (r *RepoPGS) GetPaymentByReference(ctx context.Context, reference string) (domain.Payment, bool, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByReferenceQuery, reference)

	var p domain.Payment

	err := row.Scan(
		&p.ID,
		&p.LoanID,
		&p.AccountID,
		&p.Amount,
		&p.Status,
		&p.Reference,
		&p.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return p, false, nil
	}

	if err != nil {
		l.Error().Err(err).Send()
		return p, false, dbpkg.MapError(err)
	}

	return p, true, nil
}

const listLoanQuery = `
SELECT id, loan_id, account_id, amount, status, reference, created_at FROM payments
WHERE loan_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3
`

// ListLoanPayments returns the loan payments, newest first.
func (r *RepoPGS) ListLoanPayments(ctx context.Context, loanID int64, limit, offset int32) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, listLoanQuery, loanID, limit, offset)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return nil, dbpkg.MapError(err)
	}

	return scanPayments(ctx, rows)
}

const listQuery = `
SELECT id, loan_id, account_id, amount, status, reference, created_at FROM payments
WHERE ($1::bigint = 0 OR account_id = $1)
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3
`

// ListPayments returns payments of one account, or of every account, newest first.
func (r *RepoPGS) ListPayments(ctx context.Context, arg domain.ListPaymentsParams) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, listQuery, arg.AccountID, arg.Limit, arg.Offset)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return nil, dbpkg.MapError(err)
	}

	return scanPayments(ctx, rows)
}

func scanPayments(ctx context.Context, rows *sql.Rows) ([]domain.Payment, error) {
	l := zerolog.Ctx(ctx)

	defer rows.Close()

	items := []domain.Payment{}

	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(
			&p.ID,
			&p.LoanID,
			&p.AccountID,
			&p.Amount,
			&p.Status,
			&p.Reference,
			&p.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, dbpkg.MapError(err)
		}

		items = append(items, p)
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
