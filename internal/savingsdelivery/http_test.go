package savingsdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/middleware"
	"github.com/go-petr/pet-loans/internal/test"
	"github.com/go-petr/pet-loans/pkg/amountpkg"
	"github.com/go-petr/pet-loans/pkg/errorspkg"
	"github.com/go-petr/pet-loans/pkg/randompkg"
	"github.com/go-petr/pet-loans/pkg/tokenpkg"
	"github.com/go-petr/pet-loans/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := amountpkg.Register(v); err != nil {
			panic(err)
		}
	}

	os.Exit(m.Run())
}

func newServer(tokenMaker tokenpkg.Maker, h *Handler) *gin.Engine {
	server := gin.New()

	auth := server.Group("/", middleware.AuthMiddleware(tokenMaker))
	auth.POST("/savings/deposit", h.Deposit)
	auth.POST("/savings/withdraw", h.Withdraw)
	auth.GET("/savings", h.List)
	auth.GET("/savings/stats", h.Stats)

	admin := auth.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/savings", h.ListAll)

	return server
}

func TestDepositWithdraw(t *testing.T) {
	account := test.RandomAccount(decimal.NewFromInt(5000))
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	reference := randompkg.Reference()
	amount := decimal.RequireFromString("1000.50")

	entry := domain.SavingsEntry{
		ID:        randompkg.IntBetween(1, 1000),
		AccountID: account.ID,
		Amount:    amount,
		Kind:      domain.SavingsDeposit,
		Reference: reference,
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}

	arg := domain.SavingsParams{AccountID: account.ID, Amount: amount, Reference: reference}
	result := domain.SavingsResult{
		Entry:   entry,
		Account: account,
		Message: "Deposit successful! Your loan capacity is now 2500.00",
	}

	type requestBody struct {
		Amount    string `json:"amount"`
		Reference string `json:"reference"`
	}

	testCases := []struct {
		name           string
		path           string
		requestBody    requestBody
		buildStubs     func(service *MockService, accounts *MockAccountResolver)
		wantStatusCode int
		wantError      string
		wantResult     domain.SavingsResult
	}{
		{
			name:        "Deposit",
			path:        "/savings/deposit",
			requestBody: requestBody{Amount: "1000.50", Reference: reference},
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(account.Owner)).Times(1).Return(account, nil)
				service.EXPECT().Deposit(gomock.Any(), gomock.Eq(arg)).Times(1).Return(result, nil)
			},
			wantStatusCode: http.StatusCreated,
			wantResult:     result,
		},
		{
			name:        "ReplayedDeposit",
			path:        "/savings/deposit",
			requestBody: requestBody{Amount: "1000.50", Reference: reference},
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				replayed := result
				replayed.Replayed = true

				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(account.Owner)).Times(1).Return(account, nil)
				service.EXPECT().Deposit(gomock.Any(), gomock.Eq(arg)).Times(1).Return(replayed, nil)
			},
			wantStatusCode: http.StatusOK,
			wantResult: func() domain.SavingsResult {
				replayed := result
				replayed.Replayed = true

				return replayed
			}(),
		},
		{
			name:        "Withdraw",
			path:        "/savings/withdraw",
			requestBody: requestBody{Amount: "1000.50", Reference: reference},
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(account.Owner)).Times(1).Return(account, nil)
				service.EXPECT().Withdraw(gomock.Any(), gomock.Eq(arg)).Times(1).Return(result, nil)
			},
			wantStatusCode: http.StatusCreated,
			wantResult:     result,
		},
		{
			name:        "ErrInsufficientBalance",
			path:        "/savings/withdraw",
			requestBody: requestBody{Amount: "1000.50", Reference: reference},
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(account.Owner)).Times(1).Return(account, nil)
				service.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Times(1).Return(domain.SavingsResult{}, domain.ErrInsufficientBalance)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      domain.ErrInsufficientBalance.Error(),
		},
		{
			name:        "NegativeAmount",
			path:        "/savings/deposit",
			requestBody: requestBody{Amount: "-5", Reference: reference},
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Any()).Times(0)
				service.EXPECT().Deposit(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount must be a positive amount with at most 2 decimal places",
		},
		{
			name:        "FractionOfCent",
			path:        "/savings/deposit",
			requestBody: requestBody{Amount: "10.001", Reference: reference},
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount must be a positive amount with at most 2 decimal places",
		},
		{
			name:        "MissingReference",
			path:        "/savings/deposit",
			requestBody: requestBody{Amount: "10"},
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Reference field is required",
		},
		{
			name:        "NoAccount",
			path:        "/savings/deposit",
			requestBody: requestBody{Amount: "10", Reference: reference},
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(account.Owner)).Times(1).Return(domain.Account{}, domain.ErrAccountNotFound)
				service.EXPECT().Deposit(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name:        "StoreUnavailable",
			path:        "/savings/deposit",
			requestBody: requestBody{Amount: "10", Reference: reference},
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(account.Owner)).Times(1).Return(account, nil)
				service.EXPECT().Deposit(gomock.Any(), gomock.Any()).Times(1).Return(domain.SavingsResult{}, errorspkg.ErrUnavailable)
			},
			wantStatusCode: http.StatusServiceUnavailable,
			wantError:      errorspkg.ErrUnavailable.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			accounts := NewMockAccountResolver(ctrl)
			server := newServer(tokenMaker, NewHandler(service, accounts))

			tc.buildStubs(service, accounts)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, tc.path, bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			err = middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, account.Owner, domain.RoleMember, time.Minute)
			if err != nil {
				t.Fatalf("middleware.AddAuthorization returned error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &domain.SavingsResult{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantError != "" {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got, ok := res.Data.(*domain.SavingsResult)
			if !ok {
				t.Fatalf(`res.Data=%v, failed type conversion`, res.Data)
			}

			if diff := cmp.Diff(tc.wantResult, *got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestList(t *testing.T) {
	account := test.RandomAccount(decimal.NewFromInt(5000))
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	entries := []domain.SavingsEntry{
		{ID: 2, AccountID: account.ID, Amount: decimal.NewFromInt(100), Kind: domain.SavingsWithdraw, Reference: randompkg.Reference()},
		{ID: 1, AccountID: account.ID, Amount: decimal.NewFromInt(5000), Kind: domain.SavingsDeposit, Reference: randompkg.Reference()},
	}

	testCases := []struct {
		name           string
		query          string
		buildStubs     func(service *MockService, accounts *MockAccountResolver)
		wantStatusCode int
		wantError      string
	}{
		{
			name:  "OK",
			query: "?page_id=1&page_size=5",
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(account.Owner)).Times(1).Return(account, nil)
				service.EXPECT().
					List(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(int32(5)), gomock.Eq(int32(1))).
					Times(1).
					Return(entries, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "PageSizeTooLarge",
			query: "?page_id=1&page_size=500",
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "PageSize must be at most 100",
		},
		{
			name:  "MissingPageID",
			query: "?page_size=5",
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "PageID field is required",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			accounts := NewMockAccountResolver(ctrl)
			server := newServer(tokenMaker, NewHandler(service, accounts))

			tc.buildStubs(service, accounts)

			req, err := http.NewRequest(http.MethodGet, "/savings"+tc.query, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			err = middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, account.Owner, domain.RoleMember, time.Minute)
			if err != nil {
				t.Fatalf("middleware.AddAuthorization returned error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &entriesData{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantError != "" {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got := res.Data.(*entriesData)
			if diff := cmp.Diff(entries, got.Entries); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListAll(t *testing.T) {
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	entries := []domain.SavingsEntry{
		{ID: 2, AccountID: 7, Amount: decimal.NewFromInt(100), Kind: domain.SavingsDeposit, Reference: randompkg.Reference()},
		{ID: 1, AccountID: 3, Amount: decimal.NewFromInt(250), Kind: domain.SavingsDeposit, Reference: randompkg.Reference()},
	}

	testCases := []struct {
		name           string
		role           string
		query          string
		buildStubs     func(service *MockService, accounts *MockAccountResolver)
		wantStatusCode int
		wantError      string
	}{
		{
			name:  "OK",
			role:  domain.RoleAdmin,
			query: "?page_id=3&page_size=20",
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Any()).Times(0)
				service.EXPECT().
					ListAll(gomock.Any(), gomock.Eq(int32(20)), gomock.Eq(int32(3))).
					Times(1).
					Return(entries, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "Member",
			role:  domain.RoleMember,
			query: "?page_id=1&page_size=20",
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().ListAll(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusForbidden,
			wantError:      middleware.ErrRoleNotAllowed.Error(),
		},
		{
			name:  "ErrUnavailable",
			role:  domain.RoleAdmin,
			query: "?page_id=1&page_size=20",
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().ListAll(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil, errorspkg.ErrUnavailable)
			},
			wantStatusCode: http.StatusServiceUnavailable,
			wantError:      errorspkg.ErrUnavailable.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			accounts := NewMockAccountResolver(ctrl)
			server := newServer(tokenMaker, NewHandler(service, accounts))

			tc.buildStubs(service, accounts)

			req, err := http.NewRequest(http.MethodGet, "/admin/savings"+tc.query, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			err = middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, "staff", tc.role, time.Minute)
			if err != nil {
				t.Fatalf("middleware.AddAuthorization returned error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &entriesData{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantError != "" {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(entries, res.Data.(*entriesData).Entries); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStats(t *testing.T) {
	account := test.RandomAccount(decimal.NewFromInt(5000))
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	stats := domain.SavingsStats{
		DepositCount:     2,
		TotalDeposits:    decimal.NewFromInt(5000),
		WithdrawalCount:  0,
		TotalWithdrawals: decimal.Zero,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := NewMockService(ctrl)
	accounts := NewMockAccountResolver(ctrl)
	server := newServer(tokenMaker, NewHandler(service, accounts))

	accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(account.Owner)).Times(1).Return(account, nil)
	service.EXPECT().Stats(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(stats, nil)

	req, err := http.NewRequest(http.MethodGet, "/savings/stats", nil)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	err = middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, account.Owner, domain.RoleMember, time.Minute)
	if err != nil {
		t.Fatalf("middleware.AddAuthorization returned error: %v", err)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	res := web.Response{Data: &statsData{}}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	if diff := cmp.Diff(stats, res.Data.(*statsData).Stats); diff != "" {
		t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
	}
}
