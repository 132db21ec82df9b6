// Package loandelivery manages delivery layer of the loan lifecycle.
package loandelivery

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/httperr"
	"github.com/go-petr/pet-loans/internal/middleware"
	"github.com/go-petr/pet-loans/pkg/web"
)

// Service provides service layer interface needed by loan delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package loandelivery
type Service interface {
	Apply(ctx context.Context, arg domain.ApplyLoanParams) (domain.ApplicationResult, error)
	Approve(ctx context.Context, arg domain.ApproveLoanParams) (domain.ApprovalResult, error)
	Reject(ctx context.Context, loanID int64, reason string) (domain.Loan, error)
	MarkDefaulted(ctx context.Context, loanID int64) (domain.Loan, error)
	Eligibility(ctx context.Context, accountID int64) (domain.Eligibility, error)
	Get(ctx context.Context, id int64) (domain.Loan, error)
	ListByAccount(ctx context.Context, accountID int64, pageSize, pageID int32) ([]domain.Loan, error)
	List(ctx context.Context, status domain.LoanStatus, pageSize, pageID int32) ([]domain.Loan, error)
	Stats(ctx context.Context, accountID int64) (domain.LoanStats, error)
}

// AccountResolver finds the account of the authenticated user.
type AccountResolver interface {
	GetByOwner(ctx context.Context, owner string) (domain.Account, error)
}

// Handler facilitates loan delivery layer logic.
type Handler struct {
	service  Service
	accounts AccountResolver
}

// NewHandler returns loan handler.
func NewHandler(ls Service, ar AccountResolver) *Handler {
	return &Handler{
		service:  ls,
		accounts: ar,
	}
}

type loanData struct {
	Loan domain.Loan `json:"loan"`
}

type loansData struct {
	Loans []domain.Loan `json:"loans"`
}

func badRequest(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})
}

// Eligibility handles http request to check how much the authenticated user may borrow.
func (h *Handler) Eligibility(gctx *gin.Context) {
	account, ok := h.ownAccount(gctx)
	if !ok {
		return
	}

	e, err := h.service.Eligibility(gctx.Request.Context(), account.ID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: e})
}

type applyRequest struct {
	Principal      decimal.Decimal `json:"principal" binding:"required,amount"`
	DurationMonths int32           `json:"duration_months" binding:"required,min=1,max=24"`
	Purpose        string          `json:"purpose" binding:"required,min=5,max=255"`
	Reference      string          `json:"reference" binding:"required,max=64"`
}

// Apply handles http request to apply for a loan.
func (h *Handler) Apply(gctx *gin.Context) {
	var req applyRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	account, ok := h.ownAccount(gctx)
	if !ok {
		return
	}

	result, err := h.service.Apply(gctx.Request.Context(), domain.ApplyLoanParams{
		AccountID:      account.ID,
		Principal:      req.Principal,
		DurationMonths: req.DurationMonths,
		Purpose:        req.Purpose,
		Reference:      req.Reference,
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

type listRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

// ListOwn handles http request to list loans of the authenticated user.
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

	loans, err := h.service.ListByAccount(gctx.Request.Context(), account.ID, req.PageSize, req.PageID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: loansData{loans}})
}

type statsData struct {
	Stats domain.LoanStats `json:"stats"`
}

// Stats handles http request to summarize loans of the authenticated user.
func (h *Handler) Stats(gctx *gin.Context) {
	account, ok := h.ownAccount(gctx)
	if !ok {
		return
	}

	stats, err := h.service.Stats(gctx.Request.Context(), account.ID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: statsData{stats}})
}

type loanURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a loan. Members may only see their own loans.
func (h *Handler) Get(gctx *gin.Context) {
	var uri loanURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	loan, err := h.service.Get(gctx.Request.Context(), uri.ID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	if middleware.Payload(gctx).Role != domain.RoleAdmin {
		account, ok := h.ownAccount(gctx)
		if !ok {
			return
		}

		if loan.AccountID != account.ID {
			httperr.Write(gctx, domain.ErrLoanOwnerMismatch)
			return
		}
	}

	gctx.JSON(http.StatusOK, web.Response{Data: loanData{loan}})
}

type listAllRequest struct {
	listRequest
	Status string `form:"status"`
}

// List handles http request to list loans of every account.
func (h *Handler) List(gctx *gin.Context) {
	var req listAllRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	loans, err := h.service.List(gctx.Request.Context(), domain.LoanStatus(req.Status), req.PageSize, req.PageID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: loansData{loans}})
}

type approveRequest struct {
	InterestRate *decimal.Decimal `json:"interest_rate" binding:"omitempty,amount"`
}

// Approve handles http request to approve a pending loan.
// The body is optional and may override the interest rate.
func (h *Handler) Approve(gctx *gin.Context) {
	var uri loanURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	var req approveRequest
	if err := gctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(gctx, err)
		return
	}

	result, err := h.service.Approve(gctx.Request.Context(), domain.ApproveLoanParams{
		LoanID:       uri.ID,
		InterestRate: req.InterestRate,
	})
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: result})
}

type rejectRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// Reject handles http request to reject a pending loan.
func (h *Handler) Reject(gctx *gin.Context) {
	var uri loanURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	var req rejectRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, err)
		return
	}

	loan, err := h.service.Reject(gctx.Request.Context(), uri.ID, req.Reason)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: loanData{loan}})
}

// MarkDefaulted handles http request to default an overdue loan.
func (h *Handler) MarkDefaulted(gctx *gin.Context) {
	var uri loanURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, err)
		return
	}

	loan, err := h.service.MarkDefaulted(gctx.Request.Context(), uri.ID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: loanData{loan}})
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
