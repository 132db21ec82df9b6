package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/store"
	"github.com/shopspring/decimal"
)

// MemStore is an in-memory store.Store. Units of work are serialized and
// rolled back on error, which is enough to exercise service flows end to end.
type MemStore struct {
	mu   sync.Mutex
	data *memData
	// FailLoan makes every write to the loan with this id fail with FailErr.
	FailLoan int64
	FailErr  error
}

type memData struct {
	seq      int64
	accounts map[int64]domain.Account
	entries  map[int64]domain.SavingsEntry
	loans    map[int64]domain.Loan
	payments map[int64]domain.Payment
}

func (d *memData) clone() *memData {
	c := &memData{
		seq:      d.seq,
		accounts: make(map[int64]domain.Account, len(d.accounts)),
		entries:  make(map[int64]domain.SavingsEntry, len(d.entries)),
		loans:    make(map[int64]domain.Loan, len(d.loans)),
		payments: make(map[int64]domain.Payment, len(d.payments)),
	}

	for k, v := range d.accounts {
		c.accounts[k] = v
	}

	for k, v := range d.entries {
		c.entries[k] = v
	}

	for k, v := range d.loans {
		c.loans[k] = v
	}

	for k, v := range d.payments {
		c.payments[k] = v
	}

	return c
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{data: (&memData{}).clone()}
}

var _ store.Store = (*MemStore)(nil)

// ExecTx runs fn against a copy of the data and keeps the copy only if fn succeeds.
func (m *MemStore) ExecTx(ctx context.Context, fn func(ctx context.Context, q store.Querier) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := m.data
	m.data = saved.clone()

	if err := fn(ctx, &memQuerier{m}); err != nil {
		m.data = saved
		return err
	}

	return nil
}

func (m *MemStore) q() *memQuerier {
	return &memQuerier{m}
}

// PutLoan stores loan as is, bypassing every rule.
func (m *MemStore) PutLoan(loan domain.Loan) domain.Loan {
	m.mu.Lock()
	defer m.mu.Unlock()

	if loan.ID == 0 {
		m.data.seq++
		loan.ID = m.data.seq
	}

	m.data.loans[loan.ID] = loan

	return loan
}

// PutAccount stores account as is, bypassing every rule.
func (m *MemStore) PutAccount(account domain.Account) domain.Account {
	m.mu.Lock()
	defer m.mu.Unlock()

	if account.ID == 0 {
		m.data.seq++
		account.ID = m.data.seq
	}

	m.data.accounts[account.ID] = account

	return account
}

// Reads outside ExecTx take the lock themselves.

// CreateAccount implements store.Querier.
func (m *MemStore) CreateAccount(ctx context.Context, owner string) (domain.Account, error) {
	var a domain.Account

	err := m.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
		var err error
		a, err = q.CreateAccount(ctx, owner)
		return err
	})

	return a, err
}

func (m *MemStore) locked(fn func(q *memQuerier)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fn(m.q())
}

// GetAccount implements store.Querier.
func (m *MemStore) GetAccount(ctx context.Context, id int64) (a domain.Account, err error) {
	m.locked(func(q *memQuerier) { a, err = q.GetAccount(ctx, id) })
	return a, err
}

// GetAccountByOwner implements store.Querier.
func (m *MemStore) GetAccountByOwner(ctx context.Context, owner string) (a domain.Account, err error) {
	m.locked(func(q *memQuerier) { a, err = q.GetAccountByOwner(ctx, owner) })
	return a, err
}

// LockAccount implements store.Querier.
func (m *MemStore) LockAccount(ctx context.Context, id int64) (a domain.Account, err error) {
	return m.GetAccount(ctx, id)
}

// UpdateAccountFunds implements store.Querier.
func (m *MemStore) UpdateAccountFunds(ctx context.Context, arg domain.UpdateAccountFundsParams) (a domain.Account, err error) {
	m.locked(func(q *memQuerier) { a, err = q.UpdateAccountFunds(ctx, arg) })
	return a, err
}

// SetAccountCapacity implements store.Querier.
func (m *MemStore) SetAccountCapacity(ctx context.Context, id int64, c decimal.Decimal) (a domain.Account, err error) {
	m.locked(func(q *memQuerier) { a, err = q.SetAccountCapacity(ctx, id, c) })
	return a, err
}

// SetAccountActive implements store.Querier.
func (m *MemStore) SetAccountActive(ctx context.Context, id int64, active bool) (a domain.Account, err error) {
	m.locked(func(q *memQuerier) { a, err = q.SetAccountActive(ctx, id, active) })
	return a, err
}

// ListActiveAccounts implements store.Querier.
func (m *MemStore) ListActiveAccounts(ctx context.Context, arg domain.ListAccountsParams) (a []domain.Account, err error) {
	m.locked(func(q *memQuerier) { a, err = q.ListActiveAccounts(ctx, arg) })
	return a, err
}

// CreateSavingsEntry implements store.Querier.
func (m *MemStore) CreateSavingsEntry(ctx context.Context, arg domain.CreateSavingsEntryParams) (e domain.SavingsEntry, err error) {
	m.locked(func(q *memQuerier) { e, err = q.CreateSavingsEntry(ctx, arg) })
	return e, err
}

// GetSavingsEntryByReference implements store.Querier.
func (m *MemStore) GetSavingsEntryByReference(ctx context.Context, ref string) (e domain.SavingsEntry, ok bool, err error) {
	m.locked(func(q *memQuerier) { e, ok, err = q.GetSavingsEntryByReference(ctx, ref) })
	return e, ok, err
}

// ListSavingsEntries implements store.Querier.
func (m *MemStore) ListSavingsEntries(ctx context.Context, arg domain.ListSavingsParams) (e []domain.SavingsEntry, err error) {
	m.locked(func(q *memQuerier) { e, err = q.ListSavingsEntries(ctx, arg) })
	return e, err
}

// SavingsStats implements store.Querier.
func (m *MemStore) SavingsStats(ctx context.Context, accountID int64) (s domain.SavingsStats, err error) {
	m.locked(func(q *memQuerier) { s, err = q.SavingsStats(ctx, accountID) })
	return s, err
}

// CreateLoan implements store.Querier.
func (m *MemStore) CreateLoan(ctx context.Context, arg domain.CreateLoanParams) (l domain.Loan, err error) {
	m.locked(func(q *memQuerier) { l, err = q.CreateLoan(ctx, arg) })
	return l, err
}

// GetLoan implements store.Querier.
func (m *MemStore) GetLoan(ctx context.Context, id int64) (l domain.Loan, err error) {
	m.locked(func(q *memQuerier) { l, err = q.GetLoan(ctx, id) })
	return l, err
}

// LockLoan implements store.Querier.
func (m *MemStore) LockLoan(ctx context.Context, id int64) (l domain.Loan, err error) {
	return m.GetLoan(ctx, id)
}

// GetLoanByReference implements store.Querier.
func (m *MemStore) GetLoanByReference(ctx context.Context, ref string) (l domain.Loan, ok bool, err error) {
	m.locked(func(q *memQuerier) { l, ok, err = q.GetLoanByReference(ctx, ref) })
	return l, ok, err
}

// UpdateLoan implements store.Querier.
func (m *MemStore) UpdateLoan(ctx context.Context, loan domain.Loan) (l domain.Loan, err error) {
	m.locked(func(q *memQuerier) { l, err = q.UpdateLoan(ctx, loan) })
	return l, err
}

// ListLoans implements store.Querier.
func (m *MemStore) ListLoans(ctx context.Context, arg domain.ListLoansParams) (l []domain.Loan, err error) {
	m.locked(func(q *memQuerier) { l, err = q.ListLoans(ctx, arg) })
	return l, err
}

// ListAccountLoans implements store.Querier.
func (m *MemStore) ListAccountLoans(ctx context.Context, accountID int64, statuses ...domain.LoanStatus) (l []domain.Loan, err error) {
	m.locked(func(q *memQuerier) { l, err = q.ListAccountLoans(ctx, accountID, statuses...) })
	return l, err
}

// ListOverdueLoans implements store.Querier.
func (m *MemStore) ListOverdueLoans(ctx context.Context, arg domain.OverdueLoansParams) (l []domain.Loan, err error) {
	m.locked(func(q *memQuerier) { l, err = q.ListOverdueLoans(ctx, arg) })
	return l, err
}

// LoanStats implements store.Querier.
func (m *MemStore) LoanStats(ctx context.Context, accountID int64) (s domain.LoanStats, err error) {
	m.locked(func(q *memQuerier) { s, err = q.LoanStats(ctx, accountID) })
	return s, err
}

// CreatePayment implements store.Querier.
func (m *MemStore) CreatePayment(ctx context.Context, arg domain.CreatePaymentParams) (p domain.Payment, err error) {
	m.locked(func(q *memQuerier) { p, err = q.CreatePayment(ctx, arg) })
	return p, err
}

// GetPayment implements store.Querier.
func (m *MemStore) GetPayment(ctx context.Context, id int64) (p domain.Payment, err error) {
	m.locked(func(q *memQuerier) { p, err = q.GetPayment(ctx, id) })
	return p, err
}

// GetPaymentByReference implements store.Querier.
func (m *MemStore) GetPaymentByReference(ctx context.Context, ref string) (p domain.Payment, ok bool, err error) {
	m.locked(func(q *memQuerier) { p, ok, err = q.GetPaymentByReference(ctx, ref) })
	return p, ok, err
}

// ListLoanPayments implements store.Querier.
func (m *MemStore) ListLoanPayments(ctx context.Context, loanID int64, limit, offset int32) (p []domain.Payment, err error) {
	m.locked(func(q *memQuerier) { p, err = q.ListLoanPayments(ctx, loanID, limit, offset) })
	return p, err
}

// ListPayments implements store.Querier.
func (m *MemStore) ListPayments(ctx context.Context, arg domain.ListPaymentsParams) (p []domain.Payment, err error) {
	m.locked(func(q *memQuerier) { p, err = q.ListPayments(ctx, arg) })
	return p, err
}

// memQuerier works on the data of its store and expects the caller to hold the lock.
type memQuerier struct {
	m *MemStore
}

func (q *memQuerier) d() *memData {
	return q.m.data
}

func (q *memQuerier) next() int64 {
	q.d().seq++
	return q.d().seq
}

func (q *memQuerier) CreateAccount(_ context.Context, owner string) (domain.Account, error) {
	for _, a := range q.d().accounts {
		if a.Owner == owner {
			return domain.Account{}, domain.ErrOwnerAlreadyExists
		}
	}

	now := time.Now().UTC()
	a := domain.Account{
		ID:               q.next(),
		Owner:            owner,
		Balance:          decimal.Zero,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		LoanCapacity:     decimal.Zero,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	q.d().accounts[a.ID] = a

	return a, nil
}

func (q *memQuerier) GetAccount(_ context.Context, id int64) (domain.Account, error) {
	a, ok := q.d().accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return a, nil
}

func (q *memQuerier) GetAccountByOwner(_ context.Context, owner string) (domain.Account, error) {
	for _, a := range q.d().accounts {
		if a.Owner == owner {
			return a, nil
		}
	}

	return domain.Account{}, domain.ErrAccountNotFound
}

func (q *memQuerier) LockAccount(ctx context.Context, id int64) (domain.Account, error) {
	return q.GetAccount(ctx, id)
}

func (q *memQuerier) UpdateAccountFunds(ctx context.Context, arg domain.UpdateAccountFundsParams) (domain.Account, error) {
	a, err := q.GetAccount(ctx, arg.ID)
	if err != nil {
		return a, err
	}

	if arg.Balance.IsNegative() {
		return domain.Account{}, domain.ErrInsufficientBalance
	}

	a.Balance = arg.Balance
	a.TotalDeposits = arg.TotalDeposits
	a.TotalWithdrawals = arg.TotalWithdrawals
	a.LoanCapacity = arg.LoanCapacity
	a.UpdatedAt = time.Now().UTC()
	q.d().accounts[a.ID] = a

	return a, nil
}

func (q *memQuerier) SetAccountCapacity(ctx context.Context, id int64, c decimal.Decimal) (domain.Account, error) {
	a, err := q.GetAccount(ctx, id)
	if err != nil {
		return a, err
	}

	a.LoanCapacity = c
	q.d().accounts[id] = a

	return a, nil
}

func (q *memQuerier) SetAccountActive(ctx context.Context, id int64, active bool) (domain.Account, error) {
	a, err := q.GetAccount(ctx, id)
	if err != nil {
		return a, err
	}

	a.Active = active
	q.d().accounts[id] = a

	return a, nil
}

func (q *memQuerier) ListActiveAccounts(_ context.Context, arg domain.ListAccountsParams) ([]domain.Account, error) {
	items := []domain.Account{}

	for _, a := range q.d().accounts {
		if a.Active && a.ID > arg.AfterID {
			items = append(items, a)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	if len(items) > int(arg.Limit) {
		items = items[:arg.Limit]
	}

	return items, nil
}

func (q *memQuerier) CreateSavingsEntry(_ context.Context, arg domain.CreateSavingsEntryParams) (domain.SavingsEntry, error) {
	if _, ok := q.d().accounts[arg.AccountID]; !ok {
		return domain.SavingsEntry{}, domain.ErrAccountNotFound
	}

	for _, e := range q.d().entries {
		if e.Reference == arg.Reference {
			return domain.SavingsEntry{}, domain.ErrDuplicateReference
		}
	}

	e := domain.SavingsEntry{
		ID:        q.next(),
		AccountID: arg.AccountID,
		Amount:    arg.Amount,
		Kind:      arg.Kind,
		Reference: arg.Reference,
		CreatedAt: time.Now().UTC(),
	}
	q.d().entries[e.ID] = e

	return e, nil
}

func (q *memQuerier) GetSavingsEntryByReference(_ context.Context, ref string) (domain.SavingsEntry, bool, error) {
	for _, e := range q.d().entries {
		if e.Reference == ref {
			return e, true, nil
		}
	}

	return domain.SavingsEntry{}, false, nil
}

func (q *memQuerier) ListSavingsEntries(_ context.Context, arg domain.ListSavingsParams) ([]domain.SavingsEntry, error) {
	items := []domain.SavingsEntry{}

	for _, e := range q.d().entries {
		if arg.AccountID == 0 || e.AccountID == arg.AccountID {
			items = append(items, e)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })

	return page(items, arg.Limit, arg.Offset), nil
}

func (q *memQuerier) SavingsStats(_ context.Context, accountID int64) (domain.SavingsStats, error) {
	s := domain.SavingsStats{TotalDeposits: decimal.Zero, TotalWithdrawals: decimal.Zero}

	for _, e := range q.d().entries {
		if e.AccountID != accountID {
			continue
		}

		if e.Kind == domain.SavingsDeposit {
			s.DepositCount++
			s.TotalDeposits = s.TotalDeposits.Add(e.Amount)
		} else {
			s.WithdrawalCount++
			s.TotalWithdrawals = s.TotalWithdrawals.Add(e.Amount)
		}
	}

	return s, nil
}

func (q *memQuerier) CreateLoan(_ context.Context, arg domain.CreateLoanParams) (domain.Loan, error) {
	if _, ok := q.d().accounts[arg.AccountID]; !ok {
		return domain.Loan{}, domain.ErrAccountNotFound
	}

	for _, l := range q.d().loans {
		if l.Reference == arg.Reference {
			return domain.Loan{}, domain.ErrDuplicateReference
		}
	}

	now := time.Now().UTC()
	l := domain.Loan{
		ID:               q.next(),
		AccountID:        arg.AccountID,
		Reference:        arg.Reference,
		Principal:        arg.Principal,
		InterestRate:     arg.InterestRate,
		DurationMonths:   arg.DurationMonths,
		MonthlyPayment:   arg.MonthlyPayment,
		TotalAmount:      arg.TotalAmount,
		RemainingBalance: arg.TotalAmount,
		AmountPaid:       decimal.Zero,
		Purpose:          arg.Purpose,
		Status:           domain.LoanPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	q.d().loans[l.ID] = l

	return l, nil
}

func (q *memQuerier) GetLoan(_ context.Context, id int64) (domain.Loan, error) {
	l, ok := q.d().loans[id]
	if !ok {
		return domain.Loan{}, domain.ErrLoanNotFound
	}

	return l, nil
}

func (q *memQuerier) LockLoan(ctx context.Context, id int64) (domain.Loan, error) {
	return q.GetLoan(ctx, id)
}

func (q *memQuerier) GetLoanByReference(_ context.Context, ref string) (domain.Loan, bool, error) {
	for _, l := range q.d().loans {
		if l.Reference == ref {
			return l, true, nil
		}
	}

	return domain.Loan{}, false, nil
}

func (q *memQuerier) UpdateLoan(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	if q.m.FailLoan != 0 && loan.ID == q.m.FailLoan {
		return domain.Loan{}, q.m.FailErr
	}

	if _, err := q.GetLoan(ctx, loan.ID); err != nil {
		return domain.Loan{}, err
	}

	loan.UpdatedAt = time.Now().UTC()
	q.d().loans[loan.ID] = loan

	return loan, nil
}

func (q *memQuerier) ListLoans(_ context.Context, arg domain.ListLoansParams) ([]domain.Loan, error) {
	items := []domain.Loan{}

	for _, l := range q.d().loans {
		if (arg.AccountID == 0 || l.AccountID == arg.AccountID) && (arg.Status == "" || l.Status == arg.Status) {
			items = append(items, l)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })

	return page(items, arg.Limit, arg.Offset), nil
}

func (q *memQuerier) ListAccountLoans(_ context.Context, accountID int64, statuses ...domain.LoanStatus) ([]domain.Loan, error) {
	items := []domain.Loan{}

	for _, l := range q.d().loans {
		if l.AccountID != accountID {
			continue
		}

		for _, s := range statuses {
			if l.Status == s {
				items = append(items, l)
				break
			}
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

func (q *memQuerier) ListOverdueLoans(_ context.Context, arg domain.OverdueLoansParams) ([]domain.Loan, error) {
	items := []domain.Loan{}

	for _, l := range q.d().loans {
		if l.Status == domain.LoanActive && l.NextPaymentDate != nil &&
			l.NextPaymentDate.Before(arg.Before) && l.ID > arg.AfterID {
			items = append(items, l)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	if len(items) > int(arg.Limit) {
		items = items[:arg.Limit]
	}

	return items, nil
}

func (q *memQuerier) LoanStats(_ context.Context, accountID int64) (domain.LoanStats, error) {
	s := domain.LoanStats{TotalBorrowed: decimal.Zero, TotalPaid: decimal.Zero}

	for _, l := range q.d().loans {
		if l.AccountID != accountID {
			continue
		}

		switch l.Status {
		case domain.LoanActive:
			s.ActiveLoans++
		case domain.LoanCompleted:
			s.CompletedLoans++
		}

		if l.Status == domain.LoanActive || l.Status == domain.LoanCompleted || l.Status == domain.LoanDefaulted {
			s.TotalBorrowed = s.TotalBorrowed.Add(l.Principal)
		}

		s.TotalPaid = s.TotalPaid.Add(l.AmountPaid)
	}

	return s, nil
}

func (q *memQuerier) CreatePayment(_ context.Context, arg domain.CreatePaymentParams) (domain.Payment, error) {
	if _, ok := q.d().loans[arg.LoanID]; !ok {
		return domain.Payment{}, domain.ErrLoanNotFound
	}

	for _, p := range q.d().payments {
		if p.Reference == arg.Reference {
			return domain.Payment{}, domain.ErrDuplicateReference
		}
	}

	p := domain.Payment{
		ID:        q.next(),
		LoanID:    arg.LoanID,
		AccountID: arg.AccountID,
		Amount:    arg.Amount,
		Status:    arg.Status,
		Reference: arg.Reference,
		CreatedAt: time.Now().UTC(),
	}
	q.d().payments[p.ID] = p

	return p, nil
}

func (q *memQuerier) GetPayment(_ context.Context, id int64) (domain.Payment, error) {
	p, ok := q.d().payments[id]
	if !ok {
		return domain.Payment{}, domain.ErrPaymentNotFound
	}

	return p, nil
}

func (q *memQuerier) GetPaymentByReference(_ context.Context, ref string) (domain.Payment, bool, error) {
	for _, p := range q.d().payments {
		if p.Reference == ref {
			return p, true, nil
		}
	}

	return domain.Payment{}, false, nil
}

func (q *memQuerier) ListLoanPayments(_ context.Context, loanID int64, limit, offset int32) ([]domain.Payment, error) {
	items := []domain.Payment{}

	for _, p := range q.d().payments {
		if p.LoanID == loanID {
			items = append(items, p)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })

	return page(items, limit, offset), nil
}

func (q *memQuerier) ListPayments(_ context.Context, arg domain.ListPaymentsParams) ([]domain.Payment, error) {
	items := []domain.Payment{}

	for _, p := range q.d().payments {
		if arg.AccountID == 0 || p.AccountID == arg.AccountID {
			items = append(items, p)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })

	return page(items, arg.Limit, arg.Offset), nil
}

func page[T any](items []T, limit, offset int32) []T {
	if int(offset) >= len(items) {
		return items[:0]
	}

	items = items[offset:]
	if len(items) > int(limit) {
		items = items[:limit]
	}

	return items
}
