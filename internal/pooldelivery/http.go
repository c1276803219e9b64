// Package pooldelivery manages delivery layer of the pool strategy.
package pooldelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/internal/httperr"
	"github.com/go-petr/pet-savings/internal/middleware"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
	"github.com/go-petr/pet-savings/pkg/web"
)

// Service provides service layer interface needed by pool delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package pooldelivery
type Service interface {
	Position(ctx context.Context, owner string) (domain.PoolPosition, error)
	TotalShares(ctx context.Context) (domain.Shares, error)
	UserValue(ctx context.Context, owner string) (moneypkg.Amount, error)
	CalculateYield(ctx context.Context, owner string, initialDeposit moneypkg.Amount) (moneypkg.Amount, error)
}

// Handler facilitates pool delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns pool handler.
func NewHandler(ps Service) Handler {
	return Handler{service: ps}
}

type positionData struct {
	Position    domain.PoolPosition `json:"position"`
	TotalShares domain.Shares       `json:"total_shares"`
}

// Position handles http request to read the caller's share units.
func (h *Handler) Position(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	pos, err := h.service.Position(ctx, middleware.Identity(gctx))
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	total, err := h.service.TotalShares(ctx)
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: positionData{Position: pos, TotalShares: total}})
}

// Value handles http request to value the caller's position at current reserves.
func (h *Handler) Value(gctx *gin.Context) {
	value, err := h.service.UserValue(gctx.Request.Context(), middleware.Identity(gctx))
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: struct {
		Value moneypkg.Amount `json:"value"`
	}{value}})
}

type yieldRequest struct {
	InitialDeposit string `form:"initial_deposit" binding:"required,nonnegamount"`
}

// Yield handles http request to compute the caller's gain over an initial deposit.
func (h *Handler) Yield(gctx *gin.Context) {
	var req yieldRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	yield, err := h.service.CalculateYield(gctx.Request.Context(), middleware.Identity(gctx), moneypkg.MustParse(req.InitialDeposit))
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: struct {
		Yield moneypkg.Amount `json:"yield"`
	}{yield}})
}
