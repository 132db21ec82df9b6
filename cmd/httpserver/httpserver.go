// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-loans/internal/accountdelivery"
	"github.com/go-petr/pet-loans/internal/accountservice"
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/loandelivery"
	"github.com/go-petr/pet-loans/internal/loanservice"
	"github.com/go-petr/pet-loans/internal/middleware"
	"github.com/go-petr/pet-loans/internal/paymentdelivery"
	"github.com/go-petr/pet-loans/internal/paymentservice"
	"github.com/go-petr/pet-loans/internal/reconciler"
	"github.com/go-petr/pet-loans/internal/savingsdelivery"
	"github.com/go-petr/pet-loans/internal/savingsservice"
	"github.com/go-petr/pet-loans/internal/store"
	"github.com/go-petr/pet-loans/pkg/amountpkg"
	"github.com/go-petr/pet-loans/pkg/configpkg"
	"github.com/go-petr/pet-loans/pkg/tokenpkg"
)

// Services holds the engine services sharing one store.
type Services struct {
	Accounts   *accountservice.Service
	Savings    *savingsservice.Service
	Loans      *loanservice.Service
	Payments   *paymentservice.Service
	Reconciler *reconciler.Reconciler
}

// NewServices wires the engine services on top of conn.
func NewServices(conn *sql.DB, config configpkg.Config) (Services, error) {
	lending, err := config.Lending()
	if err != nil {
		return Services{}, fmt.Errorf("cannot parse lending policy: %w", err)
	}

	st := store.New(conn, config.StoreTimeout)

	accounts := accountservice.New(st, lending.Ratio)
	loans := loanservice.New(st, loanservice.Policy{
		MinPrincipal: lending.MinPrincipal,
		MinBalance:   lending.MinBalance,
		GracePeriod:  config.DefaultGracePeriod,
	}, nil)

	return Services{
		Accounts:   accounts,
		Savings:    savingsservice.New(st, lending.Ratio),
		Loans:      loans,
		Payments:   paymentservice.New(st, nil),
		Reconciler: reconciler.New(accounts, loans, config.ReconcileBatchSize),
	}, nil
}

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB       *sql.DB
	Engine   *gin.Engine
	Config   configpkg.Config
	Services Services
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	services, err := NewServices(conn, config)
	if err != nil {
		return nil, err
	}

	tokenMaker, err := tokenpkg.New(config.TokenType, config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := amountpkg.Register(v); err != nil {
			return nil, fmt.Errorf("cannot register amount validator: %w", err)
		}
	}

	accountHandler := accountdelivery.NewHandler(services.Accounts)
	savingsHandler := savingsdelivery.NewHandler(services.Savings, services.Accounts)
	loanHandler := loandelivery.NewHandler(services.Loans, services.Accounts)
	paymentHandler := paymentdelivery.NewHandler(services.Payments, services.Accounts, services.Loans)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	authRoutes := engine.Group("/", middleware.AuthMiddleware(tokenMaker))

	authRoutes.POST("/accounts", accountHandler.Create)
	authRoutes.GET("/accounts/me", accountHandler.Me)
	authRoutes.GET("/accounts/:id", accountHandler.Get)

	authRoutes.POST("/savings/deposit", savingsHandler.Deposit)
	authRoutes.POST("/savings/withdraw", savingsHandler.Withdraw)
	authRoutes.GET("/savings", savingsHandler.List)
	authRoutes.GET("/savings/stats", savingsHandler.Stats)

	authRoutes.GET("/loans/eligibility", loanHandler.Eligibility)
	authRoutes.POST("/loans", loanHandler.Apply)
	authRoutes.GET("/loans", loanHandler.ListOwn)
	authRoutes.GET("/loans/stats", loanHandler.Stats)
	authRoutes.GET("/loans/:id", loanHandler.Get)
	authRoutes.GET("/loans/:id/payments", paymentHandler.ListByLoan)

	authRoutes.POST("/payments", paymentHandler.Pay)
	authRoutes.GET("/payments", paymentHandler.ListOwn)
	authRoutes.GET("/payments/:id", paymentHandler.Get)

	adminRoutes := authRoutes.Group("/admin", middleware.RequireRole(domain.RoleAdmin))

	adminRoutes.PATCH("/accounts/:id/active", accountHandler.SetActive)
	adminRoutes.POST("/accounts/:id/recompute", accountHandler.RecomputeCapacity)

	adminRoutes.GET("/savings", savingsHandler.ListAll)
	adminRoutes.GET("/payments", paymentHandler.List)

	adminRoutes.GET("/loans", loanHandler.List)
	adminRoutes.POST("/loans/:id/approve", loanHandler.Approve)
	adminRoutes.POST("/loans/:id/reject", loanHandler.Reject)
	adminRoutes.POST("/loans/:id/default", loanHandler.MarkDefaulted)

	server := &Server{
		DB:       conn,
		Engine:   engine,
		Config:   config,
		Services: services,
	}

	return server, nil
}
