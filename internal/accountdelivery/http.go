// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

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

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, identity string) (domain.Account, error)
	Deposit(ctx context.Context, identity string, amount moneypkg.Amount) (domain.Account, error)
	Withdraw(ctx context.Context, identity string, amount moneypkg.Amount) (domain.Account, error)
	UpdateGoal(ctx context.Context, identity string, goal moneypkg.Amount) (domain.Account, error)
	UpdateTrustMode(ctx context.Context, identity string, mode domain.TrustMode) (domain.Account, error)
	UpdateSafetyBuffer(ctx context.Context, identity string, buffer moneypkg.Amount) (domain.Account, error)
	Deactivate(ctx context.Context, identity string) (domain.Account, error)
	AutoSave(ctx context.Context, identity string, amount moneypkg.Amount, caller string) (domain.Account, error)
	CanAutoSave(ctx context.Context, identity string) (bool, error)
	WithdrawPooled(ctx context.Context, identity string, shares domain.Shares) (domain.Account, moneypkg.Amount, error)
	History(ctx context.Context, identity string, pageSize, pageID int32) ([]domain.Event, error)
	TotalValueLocked(ctx context.Context) (moneypkg.Amount, error)
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

func (h *Handler) respond(gctx *gin.Context, acc domain.Account, err error) {
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{acc}})
}

type createRequest struct {
	WeeklyGoal   string `json:"weekly_goal" binding:"required,amount"`
	SafetyBuffer string `json:"safety_buffer" binding:"required,nonnegamount"`
	TrustMode    string `json:"trust_mode" binding:"required,trustmode"`
}

// Create handles http request to create the caller's account.
func (h *Handler) Create(gctx *gin.Context) {
	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	acc, err := h.service.Create(gctx.Request.Context(), domain.CreateAccountParams{
		Owner:        middleware.Identity(gctx),
		WeeklyGoal:   moneypkg.MustParse(req.WeeklyGoal),
		SafetyBuffer: moneypkg.MustParse(req.SafetyBuffer),
		TrustMode:    domain.TrustMode(req.TrustMode),
	})
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: data{acc}})
}

// GetOwn handles http request to get the caller's account.
func (h *Handler) GetOwn(gctx *gin.Context) {
	acc, err := h.service.Get(gctx.Request.Context(), middleware.Identity(gctx))
	h.respond(gctx, acc, err)
}

type ownerURI struct {
	Owner string `uri:"owner" binding:"required"`
}

// Get handles http request to read any account. Account state is public.
func (h *Handler) Get(gctx *gin.Context) {
	var uri ownerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	acc, err := h.service.Get(gctx.Request.Context(), uri.Owner)
	h.respond(gctx, acc, err)
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required,amount"`
}

func bindAmount(gctx *gin.Context) (moneypkg.Amount, bool) {
	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return 0, false
	}

	return moneypkg.MustParse(req.Amount), true
}

// Deposit handles http request to deposit into the caller's account.
func (h *Handler) Deposit(gctx *gin.Context) {
	amount, ok := bindAmount(gctx)
	if !ok {
		return
	}

	acc, err := h.service.Deposit(gctx.Request.Context(), middleware.Identity(gctx), amount)
	h.respond(gctx, acc, err)
}

// Withdraw handles http request to withdraw from the caller's account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	amount, ok := bindAmount(gctx)
	if !ok {
		return
	}

	acc, err := h.service.Withdraw(gctx.Request.Context(), middleware.Identity(gctx), amount)
	h.respond(gctx, acc, err)
}

// AutoSave handles http request to trigger an automated save for the account in the path.
// The authenticated caller must be the owner or the executor, depending on the trust mode.
func (h *Handler) AutoSave(gctx *gin.Context) {
	var uri ownerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	amount, ok := bindAmount(gctx)
	if !ok {
		return
	}

	acc, err := h.service.AutoSave(gctx.Request.Context(), uri.Owner, amount, middleware.Identity(gctx))
	h.respond(gctx, acc, err)
}

// CanAutoSave handles http request to check the automated save rate limit of an account.
func (h *Handler) CanAutoSave(gctx *gin.Context) {
	var uri ownerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	ok, err := h.service.CanAutoSave(gctx.Request.Context(), uri.Owner)
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: struct {
		CanAutoSave bool `json:"can_auto_save"`
	}{ok}})
}

type goalRequest struct {
	WeeklyGoal string `json:"weekly_goal" binding:"required,amount"`
}

// UpdateGoal handles http request to change the caller's weekly goal.
func (h *Handler) UpdateGoal(gctx *gin.Context) {
	var req goalRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	acc, err := h.service.UpdateGoal(gctx.Request.Context(), middleware.Identity(gctx), moneypkg.MustParse(req.WeeklyGoal))
	h.respond(gctx, acc, err)
}

type trustModeRequest struct {
	TrustMode string `json:"trust_mode" binding:"required,trustmode"`
}

// UpdateTrustMode handles http request to change the caller's trust mode.
func (h *Handler) UpdateTrustMode(gctx *gin.Context) {
	var req trustModeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	acc, err := h.service.UpdateTrustMode(gctx.Request.Context(), middleware.Identity(gctx), domain.TrustMode(req.TrustMode))
	h.respond(gctx, acc, err)
}

type safetyBufferRequest struct {
	SafetyBuffer string `json:"safety_buffer" binding:"required,nonnegamount"`
}

// UpdateSafetyBuffer handles http request to change the caller's safety buffer.
func (h *Handler) UpdateSafetyBuffer(gctx *gin.Context) {
	var req safetyBufferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	acc, err := h.service.UpdateSafetyBuffer(gctx.Request.Context(), middleware.Identity(gctx), moneypkg.MustParse(req.SafetyBuffer))
	h.respond(gctx, acc, err)
}

// Deactivate handles http request to close the caller's account and pay out the balance.
func (h *Handler) Deactivate(gctx *gin.Context) {
	acc, err := h.service.Deactivate(gctx.Request.Context(), middleware.Identity(gctx))
	h.respond(gctx, acc, err)
}

type withdrawPooledRequest struct {
	Shares int64 `json:"shares" binding:"required,min=1"`
}

// WithdrawPooled handles http request to redeem pool share units of the caller.
func (h *Handler) WithdrawPooled(gctx *gin.Context) {
	var req withdrawPooledRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	acc, proceeds, err := h.service.WithdrawPooled(gctx.Request.Context(), middleware.Identity(gctx), domain.Shares(req.Shares))
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: struct {
		Account  domain.Account  `json:"account"`
		Proceeds moneypkg.Amount `json:"proceeds"`
	}{acc, proceeds}})
}

type historyRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

// History handles http request to list the caller's account events.
func (h *Handler) History(gctx *gin.Context) {
	var req historyRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	events, err := h.service.History(gctx.Request.Context(), middleware.Identity(gctx), req.PageSize, req.PageID)
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: struct {
		Events []domain.Event `json:"events"`
	}{events}})
}

// TotalValueLocked handles http request to read the funds held directly by the ledger.
func (h *Handler) TotalValueLocked(gctx *gin.Context) {
	tvl, err := h.service.TotalValueLocked(gctx.Request.Context())
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: struct {
		TotalValueLocked moneypkg.Amount `json:"total_value_locked"`
	}{tvl}})
}
