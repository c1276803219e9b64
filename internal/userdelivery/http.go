// Package userdelivery manages delivery layer of users.
package userdelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/internal/httperr"
	"github.com/go-petr/pet-savings/pkg/tokenpkg"
	"github.com/go-petr/pet-savings/pkg/web"
)

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Create(ctx context.Context, username, password, fullname, email string) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.User, string, *tokenpkg.Payload, error)
	IssueToken(ctx context.Context, identity string) (string, *tokenpkg.Payload, error)
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns user handler.
func NewHandler(us Service) *Handler {
	return &Handler{
		service: us,
	}
}

type userData struct {
	User domain.User `json:"user"`
}

func tokenResponse(user domain.User, token string, payload *tokenpkg.Payload) web.Response {
	return web.Response{
		AccessToken:          token,
		AccessTokenExpiresAt: payload.ExpiredAt.UTC().Format(time.RFC3339),
		Data:                 userData{User: user},
	}
}

type createRequest struct {
	Username string `json:"username" binding:"required,alphanum"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// Create handles http request to register a user. The username becomes the ledger identity.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	user, err := h.service.Create(ctx, req.Username, req.Password, req.FullName, req.Email)
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	token, payload, err := h.service.IssueToken(ctx, user.Username)
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, tokenResponse(user, token, payload))
}

type loginRequest struct {
	Username string `json:"username" binding:"required,alphanum"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login handles http login request and returns the user with an access token.
func (h *Handler) Login(gctx *gin.Context) {
	var req loginRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(gctx, err)
		return
	}

	user, token, payload, err := h.service.Login(gctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, tokenResponse(user, token, payload))
}
