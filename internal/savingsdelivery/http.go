// Package savingsdelivery manages delivery layer of deposits and withdrawals.
package savingsdelivery

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

// Service provides service layer interface needed by savings delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package savingsdelivery
type Service interface {
	Deposit(ctx context.Context, arg domain.SavingsParams) (domain.SavingsResult, error)
	Withdraw(ctx context.Context, arg domain.SavingsParams) (domain.SavingsResult, error)
	List(ctx context.Context, accountID int64, pageSize, pageID int32) ([]domain.SavingsEntry, error)
	ListAll(ctx context.Context, pageSize, pageID int32) ([]domain.SavingsEntry, error)
	Stats(ctx context.Context, accountID int64) (domain.SavingsStats, error)
}

// AccountResolver finds the account of the authenticated user.
type AccountResolver interface {
	GetByOwner(ctx context.Context, owner string) (domain.Account, error)
}

// Handler facilitates savings delivery layer logic.
type Handler struct {
	service  Service
	accounts AccountResolver
}

// NewHandler returns savings handler.
func NewHandler(ss Service, ar AccountResolver) *Handler {
	return &Handler{
		service:  ss,
		accounts: ar,
	}
}

type savingsRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required,amount"`
	Reference string          `json:"reference" binding:"required,max=64"`
}

// Deposit handles http request to deposit into the savings of the authenticated user.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.record(gctx, h.service.Deposit)
}

// Withdraw handles http request to withdraw from the savings of the authenticated user.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.record(gctx, h.service.Withdraw)
}

func (h *Handler) record(gctx *gin.Context, op func(context.Context, domain.SavingsParams) (domain.SavingsResult, error)) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req savingsRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	account, ok := h.ownAccount(gctx)
	if !ok {
		return
	}

	result, err := op(ctx, domain.SavingsParams{
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

type listRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type entriesData struct {
	Entries []domain.SavingsEntry `json:"entries"`
}

// List handles http request to list savings entries of the authenticated user.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	account, ok := h.ownAccount(gctx)
	if !ok {
		return
	}

	entries, err := h.service.List(ctx, account.ID, req.PageSize, req.PageID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: entriesData{entries}})
}

// ListAll handles http request to list savings entries of every account.
func (h *Handler) ListAll(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	entries, err := h.service.ListAll(ctx, req.PageSize, req.PageID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: entriesData{entries}})
}

type statsData struct {
	Stats domain.SavingsStats `json:"stats"`
}

// Stats handles http request to aggregate savings of the authenticated user.
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

func (h *Handler) ownAccount(gctx *gin.Context) (domain.Account, bool) {
	payload := middleware.Payload(gctx)

	account, err := h.accounts.GetByOwner(gctx.Request.Context(), payload.Username)
	if err != nil {
		httperr.Write(gctx, err)
		return domain.Account{}, false
	}

	return account, true
}
