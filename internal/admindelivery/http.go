// Package admindelivery manages delivery layer of administrative controls.
package admindelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/internal/httperr"
	"github.com/go-petr/pet-savings/internal/middleware"
	"github.com/go-petr/pet-savings/pkg/web"
)

// Controls provides the pause switch and executor management.
//
//go:generate mockgen -source http.go -destination http_mock.go -package admindelivery
type Controls interface {
	Paused() bool
	Executor() string
	Pause(ctx context.Context, caller string) error
	Unpause(ctx context.Context, caller string) error
	SetExecutor(ctx context.Context, caller, executor string) error
}

// Slippage provides the pool slippage tolerance setting.
type Slippage interface {
	SlippageTolerance() int64
	SetSlippageTolerance(ctx context.Context, caller string, bps int64) error
}

// Routing provides the ledger pool routing switch.
type Routing interface {
	PoolRouting() bool
	SetPoolRouting(ctx context.Context, caller string, enabled bool) error
}

// Handler facilitates admin delivery layer logic.
type Handler struct {
	controls Controls
	slippage Slippage
	routing  Routing
}

// NewHandler returns admin handler. A nil slippage means no pool is configured.
func NewHandler(controls Controls, slippage Slippage, routing Routing) Handler {
	return Handler{
		controls: controls,
		slippage: slippage,
		routing:  routing,
	}
}

type status struct {
	Paused               bool   `json:"paused"`
	Executor             string `json:"executor"`
	PoolRouting          bool   `json:"pool_routing"`
	SlippageToleranceBps *int64 `json:"slippage_tolerance_bps,omitempty"`
}

// Status handles http request to read the administrative settings.
func (h *Handler) Status(gctx *gin.Context) {
	s := status{
		Paused:      h.controls.Paused(),
		Executor:    h.controls.Executor(),
		PoolRouting: h.routing.PoolRouting(),
	}

	if h.slippage != nil {
		bps := h.slippage.SlippageTolerance()
		s.SlippageToleranceBps = &bps
	}

	gctx.JSON(http.StatusOK, web.Response{Data: s})
}

func (h *Handler) done(gctx *gin.Context, err error) {
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	h.Status(gctx)
}

// Pause handles http request to pause mutating operations.
func (h *Handler) Pause(gctx *gin.Context) {
	h.done(gctx, h.controls.Pause(gctx.Request.Context(), middleware.Identity(gctx)))
}

// Unpause handles http request to resume mutating operations.
func (h *Handler) Unpause(gctx *gin.Context) {
	h.done(gctx, h.controls.Unpause(gctx.Request.Context(), middleware.Identity(gctx)))
}

type executorRequest struct {
	Executor string `json:"executor" binding:"required"`
}

// SetExecutor handles http request to replace the executor identity.
func (h *Handler) SetExecutor(gctx *gin.Context) {
	var req executorRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	h.done(gctx, h.controls.SetExecutor(gctx.Request.Context(), middleware.Identity(gctx), req.Executor))
}

type slippageRequest struct {
	Bps *int64 `json:"bps" binding:"required"`
}

// SetSlippage handles http request to change the pool slippage tolerance.
func (h *Handler) SetSlippage(gctx *gin.Context) {
	var req slippageRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	if h.slippage == nil {
		httperr.Respond(gctx, domain.ErrPoolNotConfigured)
		return
	}

	h.done(gctx, h.slippage.SetSlippageTolerance(gctx.Request.Context(), middleware.Identity(gctx), *req.Bps))
}

type routingRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetPoolRouting handles http request to toggle routing of automated saves into the pool.
func (h *Handler) SetPoolRouting(gctx *gin.Context) {
	var req routingRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	h.done(gctx, h.routing.SetPoolRouting(gctx.Request.Context(), middleware.Identity(gctx), *req.Enabled))
}
