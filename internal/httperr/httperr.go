// Package httperr maps engine errors to HTTP responses.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/pkg/errorspkg"
	"github.com/go-petr/pet-loans/pkg/web"
	"github.com/rs/zerolog"
)

var statuses = map[domain.Kind]int{
	domain.KindInvalid:              http.StatusBadRequest,
	domain.KindNotFound:             http.StatusNotFound,
	domain.KindInvalidState:         http.StatusConflict,
	domain.KindInsufficientFunds:    http.StatusUnprocessableEntity,
	domain.KindAmountExceedsBalance: http.StatusUnprocessableEntity,
	domain.KindCapacityExceeded:     http.StatusUnprocessableEntity,
	domain.KindBelowMinimum:         http.StatusUnprocessableEntity,
	domain.KindForbidden:            http.StatusForbidden,
	domain.KindUnavailable:          http.StatusServiceUnavailable,
	domain.KindConflict:             http.StatusConflict,
}

// Status returns the HTTP status code for err.
func Status(err error) int {
	if code, ok := statuses[domain.KindOf(err)]; ok {
		return code
	}

	return http.StatusInternalServerError
}

// Write responds with the status and message for err.
// Internal errors are logged and hidden from the client.
func Write(gctx *gin.Context, err error) {
	code := Status(err)

	if code == http.StatusInternalServerError {
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
		gctx.JSON(code, web.Error(errorspkg.ErrInternal))

		return
	}

	if domain.IsRetryable(err) {
		gctx.Header("Retry-After", "1")
	}

	gctx.JSON(code, web.Error(err))
}
