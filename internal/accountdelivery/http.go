// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/httperr"
	"github.com/go-petr/pet-loans/internal/middleware"
	"github.com/go-petr/pet-loans/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, owner string) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	GetByOwner(ctx context.Context, owner string) (domain.Account, error)
	GetOwned(ctx context.Context, id int64, owner string) (domain.Account, error)
	SetActive(ctx context.Context, id int64, active bool) (domain.Account, error)
	RecomputeCapacity(ctx context.Context, id int64) (domain.CapacityChange, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}

// Create handles http request to open an account for the authenticated user.
func (h *Handler) Create(gctx *gin.Context) {
	payload := middleware.Payload(gctx)

	account, err := h.service.Create(gctx.Request.Context(), payload.Username)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: data{account}})
}

// Me handles http request to get the account of the authenticated user.
func (h *Handler) Me(gctx *gin.Context) {
	payload := middleware.Payload(gctx)

	account, err := h.service.GetByOwner(gctx.Request.Context(), payload.Username)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{account}})
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get account. Members may only see their own account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	payload := middleware.Payload(gctx)

	var (
		account domain.Account
		err     error
	)

	if payload.Role == domain.RoleAdmin {
		account, err = h.service.Get(ctx, req.ID)
	} else {
		account, err = h.service.GetOwned(ctx, req.ID, payload.Username)
	}

	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{account}})
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive handles http request to activate or deactivate an account.
func (h *Handler) SetActive(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri getRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	var req setActiveRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	account, err := h.service.SetActive(ctx, uri.ID, *req.Active)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{account}})
}

type recomputeData struct {
	Account  domain.Account `json:"account"`
	Previous string         `json:"previous_capacity"`
	Changed  bool           `json:"changed"`
	Clamped  bool           `json:"clamped"`
}

// RecomputeCapacity handles http request to rebuild the capacity of one account.
func (h *Handler) RecomputeCapacity(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	change, err := h.service.RecomputeCapacity(ctx, req.ID)
	if err != nil {
		httperr.Write(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: recomputeData{
		Account:  change.Account,
		Previous: change.Previous.StringFixed(2),
		Changed:  change.Changed(),
		Clamped:  change.Clamped,
	}})
}
