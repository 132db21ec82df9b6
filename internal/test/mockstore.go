package test

import (
	"context"

	"github.com/go-petr/pet-loans/internal/store"
	"github.com/golang/mock/gomock"
)

// ExpectTx makes st run every unit of work against q, times times.
func ExpectTx(st *store.MockStore, q *store.MockQuerier, times int) {
	st.EXPECT().ExecTx(gomock.Any(), gomock.Any()).
		Times(times).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, store.Querier) error) error {
			return fn(ctx, q)
		})
}
