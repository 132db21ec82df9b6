//go:build integration

package store_test

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/integrationtest"
	"github.com/go-petr/pet-loans/internal/middleware"
	"github.com/go-petr/pet-loans/internal/store"
	"github.com/go-petr/pet-loans/internal/test"
	"github.com/go-petr/pet-loans/pkg/configpkg"
	"github.com/go-petr/pet-loans/pkg/errorspkg"
	"github.com/go-petr/pet-loans/pkg/randompkg"
)

var (
	dbDriver string
	dbSource string
	ctx      context.Context
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	logger := middleware.CreateLogger(config)
	ctx = logger.WithContext(context.Background())

	os.Exit(m.Run())
}

func TestExecTxRollsBack(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)
	st := store.New(db, time.Second)
	account := test.SeedAccount(t, db)

	errBoom := errors.New("boom")
	reference := randompkg.Reference()

	err := st.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
		if _, err := q.CreateSavingsEntry(ctx, domain.CreateSavingsEntryParams{
			AccountID: account.ID,
			Amount:    decimal.NewFromInt(10),
			Kind:      domain.SavingsDeposit,
			Reference: reference,
		}); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, found, err := st.GetSavingsEntryByReference(ctx, reference)
	require.NoError(t, err)
	require.False(t, found)
}

func TestExecTxTimeout(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)
	st := store.New(db, 50*time.Millisecond)

	err := st.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
		_, err := q.ListActiveAccounts(ctx, domain.ListAccountsParams{Limit: 1})
		if err != nil {
			return err
		}

		time.Sleep(100 * time.Millisecond)

		return errors.New("late")
	})
	require.ErrorIs(t, err, errorspkg.ErrUnavailable)
}

func TestExecTxTimeoutWhileWaitingOnLock(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)
	holder := store.New(db, 5*time.Second)
	waiter := store.New(db, 200*time.Millisecond)
	account := test.SeedAccount(t, db)

	locked := make(chan struct{})
	release := make(chan struct{})
	held := make(chan error, 1)

	go func() {
		held <- holder.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
			if _, err := q.LockAccount(ctx, account.ID); err != nil {
				close(locked)
				return err
			}

			close(locked)
			<-release

			return nil
		})
	}()

	<-locked

	start := time.Now()

	err := waiter.ExecTx(context.Background(), func(ctx context.Context, q store.Querier) error {
		_, err := q.LockAccount(ctx, account.ID)
		return err
	})
	elapsed := time.Since(start)

	close(release)
	require.NoError(t, <-held)

	require.ErrorIs(t, err, errorspkg.ErrUnavailable)
	require.Less(t, elapsed, 2*time.Second)
}

func TestLockAccountSerializesUpdates(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)
	st := store.New(db, 5*time.Second)
	account := test.SeedAccount(t, db)

	const n = 10

	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := st.ExecTx(ctx, func(ctx context.Context, q store.Querier) error {
				a, err := q.LockAccount(ctx, account.ID)
				if err != nil {
					return err
				}

				_, err = q.UpdateAccountFunds(ctx, domain.UpdateAccountFundsParams{
					ID:               a.ID,
					Balance:          a.Balance.Add(decimal.NewFromInt(10)),
					TotalDeposits:    a.TotalDeposits.Add(decimal.NewFromInt(10)),
					TotalWithdrawals: a.TotalWithdrawals,
					LoanCapacity:     a.LoanCapacity,
				})

				return err
			})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	got, err := st.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.NewFromInt(10*n)))
	require.True(t, got.TotalDeposits.Equal(decimal.NewFromInt(10*n)))
}
