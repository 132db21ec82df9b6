// Package paymentdelivery manages delivery layer of loan repayments.
package paymentdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/httperr"
	"github.com/go-petr/pet-loans/internal/middleware"
	"github.com/go-petr/pet-loans/pkg/web"
)

// Service provides service layer interface needed by payment delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package paymentdelivery
type Service interface {
	Pay(ctx context.Context, arg domain.PayParams) (domain.PaymentResult, error)
	Get(ctx context.Context, id int64) (domain.Payment, error)
	ListByLoan(ctx context.Context, loanID int64, pageSize, pageID int32) ([]domain.Payment, error)
	ListByAccount(ctx context.Context, accountID int64, pageSize, pageID int32) ([]domain.Payment, error)
	List(ctx context.Context, pageSize, pageID int32) ([]domain.Payment, error)
}

// AccountResolver finds the account of the authenticated user.
type AccountResolver interface {
	GetByOwner(ctx context.Context, owner string) (domain.Account, error)
}

// LoanGetter looks up the loan a payment listing belongs to.
type LoanGetter interface {
	Get(ctx context.Context, id int64) (domain.Loan, error)
}

// Handler facilitates payment delivery layer logic.
type Handler struct {
	service  Service
	accounts AccountResolver
	loans    LoanGetter
}

// NewHandler returns payment handler.
func NewHandler(ps Service, ar AccountResolver, lg LoanGetter) *Handler {
	return &Handler{
		service:  ps,
		accounts: ar,
		loans:    lg,
	}
}

type paymentData struct {
	Payment domain.Payment `json:"payment"`
}

type paymentsData struct {
	Payments []domain.Payment `json:"payments"`
}

func badRequest(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})
}

type payRequest struct {
	LoanID    int64           `json:"loan_id" binding:"required,min=1"`
	Amount    decimal.Decimal `json:"amount" binding:"required,amount"`
	Reference string          `json:"reference" binding:"required,max=64"`
}

// Pay handles http request to repay a loan of the authenticated user.
func (h *Handler) Pay(gctx *gin.Context) {
	var req payRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	account, ok := h.ownAccount(gctx)
	if !ok {
		return
	}

	result, err := h.service.Pay(gctx.Request.Context(), domain.PayParams{
		LoanID:    req.LoanID,
		AccountID: account.ID,
		Amount:    req.Amount,
		Reference: req.Reference,
	})
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	code := http.StatusCreated
	if result.Replayed {
		code = http.StatusOK
	}

	gctx.JSON(code, web.Response{Data: result})
}

type idURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a payment. Members may only see their own payments.
func (h *Handler) Get(gctx *gin.Context) {
	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	payment, err := h.service.Get(gctx.Request.Context(), uri.ID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	if !h.owns(gctx, payment.AccountID) {
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: paymentData{payment}})
}

type listRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

// ListByLoan handles http request to list payments of a loan, newest first.
func (h *Handler) ListByLoan(gctx *gin.Context) {
	var uri idURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	ctx := gctx.Request.Context()

	loan, err := h.loans.Get(ctx, uri.ID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	if !h.owns(gctx, loan.AccountID) {
		return
	}

	payments, err := h.service.ListByLoan(ctx, uri.ID, req.PageSize, req.PageID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: paymentsData{payments}})
}

// ListOwn handles http request to list payments of the authenticated user, newest first.
func (h *Handler) ListOwn(gctx *gin.Context) {
	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	account, ok := h.ownAccount(gctx)
	if !ok {
		return
	}

	payments, err := h.service.ListByAccount(gctx.Request.Context(), account.ID, req.PageSize, req.PageID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: paymentsData{payments}})
}

// List handles http request to list payments of every account, newest first.
func (h *Handler) List(gctx *gin.Context) {
	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	payments, err := h.service.List(gctx.Request.Context(), req.PageSize, req.PageID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: paymentsData{payments}})
}

// owns writes an error response unless the caller is an admin or owns accountID.
func (h *Handler) owns(gctx *gin.Context, accountID int64) bool {
	if middleware.Payload(gctx).Role == domain.RoleAdmin {
		return true
	}

	account, ok := h.ownAccount(gctx)
	if !ok {
		return false
	}

	if account.ID != accountID {
		httperr.Write(gctx, domain.ErrLoanOwnerMismatch)
		return false
	}

	return true
}

func (h *Handler) ownAccount(gctx *gin.Context) (domain.Account, bool) {
	payload := middleware.Payload(gctx)

	account, err := h.accounts.GetByOwner(gctx.Request.Context(), payload.Username)
	if err != nil {
		httperr.Write(gctx, err)
		return domain.Account{}, false
	}

	return account, true
}
