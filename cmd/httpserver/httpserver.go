// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-savings/internal/accountdelivery"
	"github.com/go-petr/pet-savings/internal/admindelivery"
	"github.com/go-petr/pet-savings/internal/app"
	"github.com/go-petr/pet-savings/internal/metrics"
	"github.com/go-petr/pet-savings/internal/middleware"
	"github.com/go-petr/pet-savings/internal/pooldelivery"
	"github.com/go-petr/pet-savings/internal/userdelivery"
	"github.com/go-petr/pet-savings/pkg/configpkg"
)

// Server holds the wired application, handlers router and configuration.
type Server struct {
	App    *app.App
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with routes over the wired application.
func New(a *app.App, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	if err := accountdelivery.RegisterValidators(); err != nil {
		return nil, errors.New("cannot register account validators")
	}

	userHandler := userdelivery.NewHandler(a.Users)
	accountHandler := accountdelivery.NewHandler(a.Ledger)

	var slippage admindelivery.Slippage
	if a.Pool != nil {
		slippage = a.Pool
	}

	adminHandler := admindelivery.NewHandler(a.Admin, slippage, a.Ledger)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())
	engine.Use(metrics.Middleware())

	engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	engine.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	limiter := middleware.NewRateLimiter(config.APIRatePerSecond, config.APIRateBurst)

	public := engine.Group("/", limiter.Handler())
	public.POST("/users", userHandler.Create)
	public.POST("/users/login", userHandler.Login)
	public.GET("/ledger/tvl", accountHandler.TotalValueLocked)

	// The limiter runs after authentication so it keys by identity.
	auth := engine.Group("/", middleware.AuthMiddleware(a.TokenMaker), limiter.Handler())

	auth.POST("/account", accountHandler.Create)
	auth.GET("/account", accountHandler.GetOwn)
	auth.POST("/account/deposit", accountHandler.Deposit)
	auth.POST("/account/withdraw", accountHandler.Withdraw)
	auth.PUT("/account/goal", accountHandler.UpdateGoal)
	auth.PUT("/account/trust-mode", accountHandler.UpdateTrustMode)
	auth.PUT("/account/safety-buffer", accountHandler.UpdateSafetyBuffer)
	auth.POST("/account/deactivate", accountHandler.Deactivate)
	auth.POST("/account/withdraw-pooled", accountHandler.WithdrawPooled)
	auth.GET("/account/history", accountHandler.History)

	auth.GET("/accounts/:owner", accountHandler.Get)
	auth.GET("/accounts/:owner/can-auto-save", accountHandler.CanAutoSave)
	auth.POST("/accounts/:owner/auto-save", accountHandler.AutoSave)

	if a.Pool != nil {
		poolHandler := pooldelivery.NewHandler(a.Pool)

		auth.GET("/pool/position", poolHandler.Position)
		auth.GET("/pool/value", poolHandler.Value)
		auth.GET("/pool/yield", poolHandler.Yield)
	}

	auth.GET("/admin/status", adminHandler.Status)
	auth.POST("/admin/pause", adminHandler.Pause)
	auth.POST("/admin/unpause", adminHandler.Unpause)
	auth.PUT("/admin/executor", adminHandler.SetExecutor)
	auth.PUT("/admin/slippage", adminHandler.SetSlippage)
	auth.PUT("/admin/pool-routing", adminHandler.SetPoolRouting)

	server := &Server{
		App:    a,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
