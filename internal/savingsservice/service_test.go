package savingsservice

import (
	"context"
	"testing"

	"github.com/go-petr/pet-loans/internal/capacity"
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/store"
	"github.com/go-petr/pet-loans/internal/test"
	"github.com/go-petr/pet-loans/pkg/randompkg"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var d = decimal.RequireFromString

// expectUpdate makes q echo the written funds back as the stored account.
func expectUpdate(q *store.MockQuerier, account domain.Account) {
	q.EXPECT().UpdateAccountFunds(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, arg domain.UpdateAccountFundsParams) (domain.Account, error) {
			updated := account
			updated.Balance = arg.Balance
			updated.TotalDeposits = arg.TotalDeposits
			updated.TotalWithdrawals = arg.TotalWithdrawals
			updated.LoanCapacity = arg.LoanCapacity
			return updated, nil
		})
}

func TestDeposit(t *testing.T) {
	empty := test.RandomAccount(decimal.Zero)
	reference := randompkg.Reference()

	testCases := []struct {
		name        string
		arg         domain.SavingsParams
		account     domain.Account
		txs         int
		buildStubs  func(q *store.MockQuerier, account domain.Account)
		checkResult func(t *testing.T, res domain.SavingsResult, err error)
	}{
		{
			name:    "OK",
			arg:     domain.SavingsParams{AccountID: empty.ID, Amount: d("5000"), Reference: reference},
			account: empty,
			txs:     1,
			buildStubs: func(q *store.MockQuerier, account domain.Account) {
				q.EXPECT().LockAccount(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
				q.EXPECT().GetSavingsEntryByReference(gomock.Any(), gomock.Eq(reference)).
					Times(1).Return(domain.SavingsEntry{}, false, nil)
				q.EXPECT().CreateSavingsEntry(gomock.Any(), gomock.Eq(domain.CreateSavingsEntryParams{
					AccountID: account.ID,
					Amount:    d("5000"),
					Kind:      domain.SavingsDeposit,
					Reference: reference,
				})).Times(1).Return(domain.SavingsEntry{ID: 1, AccountID: account.ID, Amount: d("5000"),
					Kind: domain.SavingsDeposit, Reference: reference}, nil)
				q.EXPECT().ListAccountLoans(gomock.Any(), gomock.Eq(account.ID), domain.LoanActive, domain.LoanDefaulted).
					Times(1).Return([]domain.Loan{}, nil)
				expectUpdate(q, account)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.NoError(t, err)
				require.False(t, res.Replayed)
				require.True(t, res.Account.Balance.Equal(d("5000")))
				require.True(t, res.Account.TotalDeposits.Equal(d("5000")))
				require.True(t, res.Account.LoanCapacity.Equal(d("2500")))
				require.Equal(t, "Deposit successful! Your loan capacity is now 2500.00", res.Message)
			},
		},
		{
			name:    "Replay",
			arg:     domain.SavingsParams{AccountID: empty.ID, Amount: d("5000"), Reference: reference},
			account: empty,
			txs:     1,
			buildStubs: func(q *store.MockQuerier, account domain.Account) {
				q.EXPECT().LockAccount(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
				q.EXPECT().GetSavingsEntryByReference(gomock.Any(), gomock.Eq(reference)).
					Times(1).Return(domain.SavingsEntry{ID: 7, AccountID: account.ID, Amount: d("5000.00"),
					Kind: domain.SavingsDeposit, Reference: reference}, true, nil)
				q.EXPECT().CreateSavingsEntry(gomock.Any(), gomock.Any()).Times(0)
				q.EXPECT().UpdateAccountFunds(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.NoError(t, err)
				require.True(t, res.Replayed)
				require.Equal(t, int64(7), res.Entry.ID)
			},
		},
		{
			name:    "ErrDuplicateReference",
			arg:     domain.SavingsParams{AccountID: empty.ID, Amount: d("10"), Reference: reference},
			account: empty,
			txs:     1,
			buildStubs: func(q *store.MockQuerier, account domain.Account) {
				q.EXPECT().LockAccount(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
				q.EXPECT().GetSavingsEntryByReference(gomock.Any(), gomock.Eq(reference)).
					Times(1).Return(domain.SavingsEntry{ID: 7, AccountID: account.ID, Amount: d("5000"),
					Kind: domain.SavingsDeposit, Reference: reference}, true, nil)
				q.EXPECT().CreateSavingsEntry(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.ErrorIs(t, err, domain.ErrDuplicateReference)
				require.Equal(t, domain.KindConflict, domain.KindOf(err))
				require.False(t, domain.IsRetryable(err))
				require.Empty(t, res)
			},
		},
		{
			name:    "ErrInvalidAmount",
			arg:     domain.SavingsParams{AccountID: empty.ID, Amount: d("-1"), Reference: reference},
			account: empty,
			buildStubs: func(q *store.MockQuerier, account domain.Account) {
				q.EXPECT().LockAccount(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
			},
		},
		{
			name:    "ErrInvalidAmountFractionOfCent",
			arg:     domain.SavingsParams{AccountID: empty.ID, Amount: d("1.001"), Reference: reference},
			account: empty,
			buildStubs: func(q *store.MockQuerier, account domain.Account) {
				q.EXPECT().LockAccount(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
			},
		},
		{
			name:    "ErrInvalidReference",
			arg:     domain.SavingsParams{AccountID: empty.ID, Amount: d("10")},
			account: empty,
			buildStubs: func(q *store.MockQuerier, account domain.Account) {
				q.EXPECT().LockAccount(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidReference)
			},
		},
		{
			name:    "ErrAccountNotFound",
			arg:     domain.SavingsParams{AccountID: 404, Amount: d("10"), Reference: reference},
			account: empty,
			txs:     1,
			buildStubs: func(q *store.MockQuerier, account domain.Account) {
				q.EXPECT().LockAccount(gomock.Any(), gomock.Eq(int64(404))).
					Times(1).Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.ErrorIs(t, err, domain.ErrAccountNotFound)
			},
		},
		{
			name: "ErrAccountInactive",
			arg:  domain.SavingsParams{AccountID: empty.ID, Amount: d("10"), Reference: reference},
			account: func() domain.Account {
				a := empty
				a.Active = false
				return a
			}(),
			txs: 1,
			buildStubs: func(q *store.MockQuerier, account domain.Account) {
				q.EXPECT().LockAccount(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
				q.EXPECT().GetSavingsEntryByReference(gomock.Any(), gomock.Eq(reference)).
					Times(1).Return(domain.SavingsEntry{}, false, nil)
				q.EXPECT().CreateSavingsEntry(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.ErrorIs(t, err, domain.ErrAccountInactive)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			st := store.NewMockStore(ctrl)
			q := store.NewMockQuerier(ctrl)
			test.ExpectTx(st, q, tc.txs)
			tc.buildStubs(q, tc.account)

			res, err := New(st, capacity.DefaultRatio).Deposit(context.Background(), tc.arg)
			tc.checkResult(t, res, err)
		})
	}
}

func TestWithdraw(t *testing.T) {
	account := test.RandomAccount(d("5000"))
	reference := randompkg.Reference()

	testCases := []struct {
		name        string
		amount      decimal.Decimal
		buildStubs  func(q *store.MockQuerier)
		checkResult func(t *testing.T, res domain.SavingsResult, err error)
	}{
		{
			name:   "OK",
			amount: d("1000"),
			buildStubs: func(q *store.MockQuerier) {
				q.EXPECT().CreateSavingsEntry(gomock.Any(), gomock.Any()).Times(1).
					Return(domain.SavingsEntry{AccountID: account.ID, Amount: d("1000"), Kind: domain.SavingsWithdraw}, nil)
				q.EXPECT().ListAccountLoans(gomock.Any(), gomock.Eq(account.ID), domain.LoanActive, domain.LoanDefaulted).
					Times(1).Return(nil, nil)
				expectUpdate(q, account)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.NoError(t, err)
				require.True(t, res.Account.Balance.Equal(d("4000")))
				require.True(t, res.Account.TotalWithdrawals.Equal(d("1000")))
				require.True(t, res.Account.TotalDeposits.Equal(d("5000")))
				require.True(t, res.Account.LoanCapacity.Equal(d("2000")))
				require.Equal(t, "Withdrawal successful! Your loan capacity is now 2000.00", res.Message)
			},
		},
		{
			name:   "CommittedPrincipalStaysConsumed",
			amount: d("1000"),
			buildStubs: func(q *store.MockQuerier) {
				q.EXPECT().CreateSavingsEntry(gomock.Any(), gomock.Any()).Times(1).
					Return(domain.SavingsEntry{AccountID: account.ID, Amount: d("1000"), Kind: domain.SavingsWithdraw}, nil)
				q.EXPECT().ListAccountLoans(gomock.Any(), gomock.Eq(account.ID), domain.LoanActive, domain.LoanDefaulted).
					Times(1).Return([]domain.Loan{
					{Status: domain.LoanActive, Principal: d("2000"), TotalAmount: d("2120"), AmountPaid: d("1060")},
				}, nil)
				expectUpdate(q, account)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.NoError(t, err)
				require.True(t, res.Account.LoanCapacity.Equal(d("1000")), res.Account.LoanCapacity.String())
			},
		},
		{
			name:   "WithdrawEverything",
			amount: d("5000"),
			buildStubs: func(q *store.MockQuerier) {
				q.EXPECT().CreateSavingsEntry(gomock.Any(), gomock.Any()).Times(1).Return(domain.SavingsEntry{}, nil)
				q.EXPECT().ListAccountLoans(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil, nil)
				expectUpdate(q, account)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.NoError(t, err)
				require.True(t, res.Account.Balance.IsZero())
				require.True(t, res.Account.LoanCapacity.IsZero())
			},
		},
		{
			name:   "ErrInsufficientBalance",
			amount: d("5000.01"),
			buildStubs: func(q *store.MockQuerier) {
				q.EXPECT().CreateSavingsEntry(gomock.Any(), gomock.Any()).Times(0)
				q.EXPECT().UpdateAccountFunds(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResult: func(t *testing.T, res domain.SavingsResult, err error) {
				require.ErrorIs(t, err, domain.ErrInsufficientBalance)
				require.Equal(t, domain.KindInsufficientFunds, domain.KindOf(err))
				require.Empty(t, res)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			st := store.NewMockStore(ctrl)
			q := store.NewMockQuerier(ctrl)
			test.ExpectTx(st, q, 1)

			q.EXPECT().LockAccount(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
			q.EXPECT().GetSavingsEntryByReference(gomock.Any(), gomock.Eq(reference)).
				Times(1).Return(domain.SavingsEntry{}, false, nil)
			tc.buildStubs(q)

			arg := domain.SavingsParams{AccountID: account.ID, Amount: tc.amount, Reference: reference}
			res, err := New(st, capacity.DefaultRatio).Withdraw(context.Background(), arg)
			tc.checkResult(t, res, err)
		})
	}
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := store.NewMockStore(ctrl)
	want := []domain.SavingsEntry{{ID: 2}, {ID: 1}}

	st.EXPECT().ListSavingsEntries(gomock.Any(), gomock.Eq(domain.ListSavingsParams{
		AccountID: 3,
		Limit:     5,
		Offset:    10,
	})).Times(1).Return(want, nil)

	got, err := New(st, capacity.DefaultRatio).List(context.Background(), 3, 5, 3)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestListRequiresAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := store.NewMockStore(ctrl)
	st.EXPECT().ListSavingsEntries(gomock.Any(), gomock.Any()).Times(0)

	_, err := New(st, capacity.DefaultRatio).List(context.Background(), 0, 5, 1)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := store.NewMockStore(ctrl)
	want := []domain.SavingsEntry{{ID: 9, AccountID: 4}, {ID: 8, AccountID: 2}}

	st.EXPECT().ListSavingsEntries(gomock.Any(), gomock.Eq(domain.ListSavingsParams{
		Limit:  20,
		Offset: 20,
	})).Times(1).Return(want, nil)

	got, err := New(st, capacity.DefaultRatio).ListAll(context.Background(), 20, 2)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
