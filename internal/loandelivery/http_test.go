package loandelivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
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

var d = decimal.RequireFromString

func newServer(tokenMaker tokenpkg.Maker, h *Handler) *gin.Engine {
	server := gin.New()

	auth := server.Group("/", middleware.AuthMiddleware(tokenMaker))
	auth.GET("/loans/eligibility", h.Eligibility)
	auth.POST("/loans", h.Apply)
	auth.GET("/loans", h.ListOwn)
	auth.GET("/loans/stats", h.Stats)
	auth.GET("/loans/:id", h.Get)

	admin := auth.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/loans", h.List)
	admin.POST("/loans/:id/approve", h.Approve)
	admin.POST("/loans/:id/reject", h.Reject)
	admin.POST("/loans/:id/default", h.MarkDefaulted)

	return server
}

type fixture struct {
	tokenMaker tokenpkg.Maker
	account    domain.Account
	loan       domain.Loan
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	account := test.RandomAccount(d("5000"))
	loan := test.ActiveLoan(account.ID, d("2000"), d("12"), 6, time.Now().Truncate(time.Second).UTC())

	return fixture{tokenMaker: tokenMaker, account: account, loan: loan}
}

func (f fixture) do(t *testing.T, h *Handler, method, path, body, username, role string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	if err := middleware.AddAuthorization(req, f.tokenMaker, middleware.AuthTypeBearer, username, role, time.Minute); err != nil {
		t.Fatalf("middleware.AddAuthorization returned error: %v", err)
	}

	recorder := httptest.NewRecorder()
	newServer(f.tokenMaker, h).ServeHTTP(recorder, req)

	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, data any) web.Response {
	t.Helper()

	res := web.Response{Data: data}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return res
}

func TestApply(t *testing.T) {
	f := newFixture(t)
	pending := f.loan
	pending.Status = domain.LoanPending
	pending.ApprovalDate, pending.DisbursementDate, pending.DueDate, pending.NextPaymentDate = nil, nil, nil, nil

	validBody := fmt.Sprintf(`{"principal": "2000", "duration_months": 6, "purpose": "Home renovation", "reference": %q}`, pending.Reference)

	testCases := []struct {
		name           string
		body           string
		buildStubs     func(service *MockService, accounts *MockAccountResolver)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			body: validBody,
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(f.account.Owner)).Times(1).Return(f.account, nil)
				service.EXPECT().
					Apply(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg domain.ApplyLoanParams) (domain.ApplicationResult, error) {
						if arg.AccountID != f.account.ID || !arg.Principal.Equal(d("2000")) ||
							arg.DurationMonths != 6 || arg.Purpose != "Home renovation" || arg.Reference != pending.Reference {
							t.Errorf("unexpected apply params: %+v", arg)
						}

						return domain.ApplicationResult{Loan: pending}, nil
					})
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "Replayed",
			body: validBody,
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Any()).Times(1).Return(f.account, nil)
				service.EXPECT().Apply(gomock.Any(), gomock.Any()).Times(1).
					Return(domain.ApplicationResult{Loan: pending, Replayed: true}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "ErrCapacityExceeded",
			body: validBody,
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Any()).Times(1).Return(f.account, nil)
				service.EXPECT().Apply(gomock.Any(), gomock.Any()).Times(1).
					Return(domain.ApplicationResult{}, domain.ErrCapacityExceeded)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      domain.ErrCapacityExceeded.Error(),
		},
		{
			name: "DurationTooLong",
			body: `{"principal": "2000", "duration_months": 25, "purpose": "Home renovation", "reference": "ref-1"}`,
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().Apply(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "DurationMonths must be at most 24",
		},
		{
			name: "PurposeTooShort",
			body: `{"principal": "2000", "duration_months": 6, "purpose": "car", "reference": "ref-1"}`,
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().Apply(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Purpose must be at least 5",
		},
		{
			name: "ZeroPrincipal",
			body: `{"principal": "0", "duration_months": 6, "purpose": "Home renovation", "reference": "ref-1"}`,
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().Apply(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Principal must be a positive amount with at most 2 decimal places",
		},
		{
			name: "MalformedBody",
			body: `{"principal": `,
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().Apply(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "malformed request",
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

			tc.buildStubs(service, accounts)

			recorder := f.do(t, NewHandler(service, accounts), http.MethodPost, "/loans", tc.body, f.account.Owner, domain.RoleMember)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := decode(t, recorder, &domain.ApplicationResult{})

			if tc.wantError != "" {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got := res.Data.(*domain.ApplicationResult)
			if diff := cmp.Diff(pending, got.Loan, cmpopts.EquateApproxTime(time.Second)); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	path := fmt.Sprintf("/loans/%d", f.loan.ID)

	other := f.account
	other.ID = f.account.ID + 1

	testCases := []struct {
		name           string
		role           string
		buildStubs     func(service *MockService, accounts *MockAccountResolver)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OwnLoan",
			role: domain.RoleMember,
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(f.loan.ID)).Times(1).Return(f.loan, nil)
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(f.account.Owner)).Times(1).Return(f.account, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "ErrLoanOwnerMismatch",
			role: domain.RoleMember,
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(f.loan.ID)).Times(1).Return(f.loan, nil)
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(f.account.Owner)).Times(1).Return(other, nil)
			},
			wantStatusCode: http.StatusForbidden,
			wantError:      domain.ErrLoanOwnerMismatch.Error(),
		},
		{
			name: "Admin",
			role: domain.RoleAdmin,
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(f.loan.ID)).Times(1).Return(f.loan, nil)
				accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "ErrLoanNotFound",
			role: domain.RoleMember,
			buildStubs: func(service *MockService, accounts *MockAccountResolver) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(f.loan.ID)).Times(1).Return(domain.Loan{}, domain.ErrLoanNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrLoanNotFound.Error(),
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

			tc.buildStubs(service, accounts)

			recorder := f.do(t, NewHandler(service, accounts), http.MethodGet, path, "", f.account.Owner, tc.role)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := decode(t, recorder, &loanData{})

			if tc.wantError != "" {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(f.loan, res.Data.(*loanData).Loan, cmpopts.EquateApproxTime(time.Second)); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	f := newFixture(t)
	path := fmt.Sprintf("/admin/loans/%d/approve", f.loan.ID)
	approved := domain.ApprovalResult{Loan: f.loan, Account: f.account}

	testCases := []struct {
		name           string
		role           string
		body           string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			role: domain.RoleAdmin,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Approve(gomock.Any(), gomock.Eq(domain.ApproveLoanParams{LoanID: f.loan.ID})).
					Times(1).
					Return(approved, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "OverrideRate",
			role: domain.RoleAdmin,
			body: `{"interest_rate": "10"}`,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Approve(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg domain.ApproveLoanParams) (domain.ApprovalResult, error) {
						if arg.LoanID != f.loan.ID || arg.InterestRate == nil || !arg.InterestRate.Equal(d("10")) {
							t.Errorf("unexpected approve params: %+v", arg)
						}

						return approved, nil
					})
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "ZeroRate",
			role: domain.RoleAdmin,
			body: `{"interest_rate": "0"}`,
			buildStubs: func(service *MockService) {
				service.EXPECT().Approve(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "InterestRate must be a positive amount with at most 2 decimal places",
		},
		{
			name: "MemberForbidden",
			role: domain.RoleMember,
			buildStubs: func(service *MockService) {
				service.EXPECT().Approve(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusForbidden,
			wantError:      middleware.ErrRoleNotAllowed.Error(),
		},
		{
			name: "ErrInvalidLoanState",
			role: domain.RoleAdmin,
			buildStubs: func(service *MockService) {
				service.EXPECT().Approve(gomock.Any(), gomock.Any()).Times(1).
					Return(domain.ApprovalResult{}, domain.ErrInvalidLoanState)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrInvalidLoanState.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)

			tc.buildStubs(service)

			recorder := f.do(t, NewHandler(service, NewMockAccountResolver(ctrl)), http.MethodPost, path, tc.body, "staff", tc.role)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := decode(t, recorder, &domain.ApprovalResult{})

			if tc.wantError != "" {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(approved, *res.Data.(*domain.ApprovalResult), cmpopts.EquateApproxTime(time.Second)); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReject(t *testing.T) {
	f := newFixture(t)
	path := fmt.Sprintf("/admin/loans/%d/reject", f.loan.ID)

	rejected := f.loan
	rejected.Status = domain.LoanRejected
	rejected.RejectionReason = "insufficient history"

	testCases := []struct {
		name           string
		body           string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			body: `{"reason": "insufficient history"}`,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Reject(gomock.Any(), gomock.Eq(f.loan.ID), gomock.Eq("insufficient history")).
					Times(1).
					Return(rejected, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MissingReason",
			body: `{}`,
			buildStubs: func(service *MockService) {
				service.EXPECT().Reject(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Reason field is required",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)

			tc.buildStubs(service)

			recorder := f.do(t, NewHandler(service, NewMockAccountResolver(ctrl)), http.MethodPost, path, tc.body, "staff", domain.RoleAdmin)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := decode(t, recorder, &loanData{})

			if tc.wantError != "" {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(rejected, res.Data.(*loanData).Loan, cmpopts.EquateApproxTime(time.Second)); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarkDefaulted(t *testing.T) {
	f := newFixture(t)
	path := fmt.Sprintf("/admin/loans/%d/default", f.loan.ID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := NewMockService(ctrl)

	service.EXPECT().MarkDefaulted(gomock.Any(), gomock.Eq(f.loan.ID)).Times(1).Return(domain.Loan{}, domain.ErrNotOverdue)

	recorder := f.do(t, NewHandler(service, NewMockAccountResolver(ctrl)), http.MethodPost, path, "", "staff", domain.RoleAdmin)

	if recorder.Code != http.StatusConflict {
		t.Errorf("Status code: got %v, want %v", recorder.Code, http.StatusConflict)
	}

	if res := decode(t, recorder, nil); res.Error != domain.ErrNotOverdue.Error() {
		t.Errorf(`resp.Error=%q, want %q`, res.Error, domain.ErrNotOverdue.Error())
	}
}

func TestList(t *testing.T) {
	f := newFixture(t)
	loans := []domain.Loan{f.loan}

	testCases := []struct {
		name           string
		query          string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:  "ByStatus",
			query: "?page_id=2&page_size=10&status=ACTIVE",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), gomock.Eq(domain.LoanActive), gomock.Eq(int32(10)), gomock.Eq(int32(2))).
					Times(1).
					Return(loans, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "AllStatuses",
			query: "?page_id=1&page_size=10",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), gomock.Eq(domain.LoanStatus("")), gomock.Eq(int32(10)), gomock.Eq(int32(1))).
					Times(1).
					Return(loans, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "ErrInvalidLoanStatus",
			query: "?page_id=1&page_size=10&status=LOST",
			buildStubs: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return(nil, domain.ErrInvalidLoanStatus)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidLoanStatus.Error(),
		},
		{
			name:  "MissingPage",
			query: "",
			buildStubs: func(service *MockService) {
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

			tc.buildStubs(service)

			recorder := f.do(t, NewHandler(service, NewMockAccountResolver(ctrl)), http.MethodGet, "/admin/loans"+tc.query, "", "staff", domain.RoleAdmin)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := decode(t, recorder, &loansData{})

			if tc.wantError != "" {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			if diff := cmp.Diff(loans, res.Data.(*loansData).Loans, cmpopts.EquateApproxTime(time.Second)); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEligibility(t *testing.T) {
	f := newFixture(t)

	e := domain.Eligibility{
		Eligible:             true,
		Capacity:             d("2500"),
		OutstandingPrincipal: decimal.Zero,
		Available:            d("2500"),
		CurrentBalance:       d("5000"),
		TotalDeposits:        d("5000"),
		TotalWithdrawals:     decimal.Zero,
		MinBalanceRequired:   decimal.Zero,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := NewMockService(ctrl)
	accounts := NewMockAccountResolver(ctrl)

	accounts.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(f.account.Owner)).Times(1).Return(f.account, nil)
	service.EXPECT().Eligibility(gomock.Any(), gomock.Eq(f.account.ID)).Times(1).Return(e, nil)

	recorder := f.do(t, NewHandler(service, accounts), http.MethodGet, "/loans/eligibility", "", f.account.Owner, domain.RoleMember)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	res := decode(t, recorder, &domain.Eligibility{})
	if diff := cmp.Diff(e, *res.Data.(*domain.Eligibility)); diff != "" {
		t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
	}
}
