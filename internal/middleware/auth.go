// Package middleware provides gin middleware shared by the HTTP handlers.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-loans/pkg/tokenpkg"
	"github.com/go-petr/pet-loans/pkg/web"
)

// Authorization header parts and the context key of the verified payload.
const (
	AuthHeaderKey  = "authorization"
	AuthTypeBearer = "bearer"
	AuthPayloadKey = "authorization_payload"
)

// Authorization errors.
var (
	ErrAuthHeaderNotFound  = errors.New("authorization header is not provided")
	ErrBadAuthHeaderFormat = errors.New("invalid authorization header format")
	ErrUnsupportedAuthType = errors.New("unsupported authorization type")
	ErrRoleNotAllowed      = errors.New("role is not allowed to perform this operation")
)

// AddAuthorization creates a token for username and role and sets it on request.
func AddAuthorization(request *http.Request, tokenMaker tokenpkg.Maker, authType, username, role string, duration time.Duration) error {
	token, _, err := tokenMaker.CreateToken(username, role, duration)
	if err != nil {
		return err
	}

	request.Header.Set(AuthHeaderKey, fmt.Sprintf("%s %s", authType, token))

	return nil
}

// AuthMiddleware verifies the bearer token and stores its payload under AuthPayloadKey.
func AuthMiddleware(tokenMaker tokenpkg.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader(AuthHeaderKey)
		if len(authHeader) == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrAuthHeaderNotFound))
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrBadAuthHeaderFormat))
			return
		}

		authType := strings.ToLower(fields[0])
		if authType != AuthTypeBearer {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrUnsupportedAuthType))
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		ctx.Set(AuthPayloadKey, payload)
		ctx.Next()
	}
}

// RequireRole lets through only requests whose token carries one of roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload := Payload(ctx)

		for _, r := range roles {
			if payload.Role == r {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, web.Error(ErrRoleNotAllowed))
	}
}

// Payload returns the verified token payload of the request.
func Payload(ctx *gin.Context) *tokenpkg.Payload {
	return ctx.MustGet(AuthPayloadKey).(*tokenpkg.Payload)
}
