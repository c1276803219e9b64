// Package httperr maps domain errors to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/errorspkg"
	"github.com/go-petr/pet-savings/pkg/web"
)

// Status returns the HTTP status for err.
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOwnerNotFound):
		return http.StatusNotFound
	}

	switch domain.Kind(err) {
	case domain.ErrPaused:
		return http.StatusServiceUnavailable
	case domain.ErrValidation:
		return http.StatusBadRequest
	case domain.ErrAuthorization:
		return http.StatusForbidden
	case domain.ErrState:
		return http.StatusConflict
	case domain.ErrRateLimit:
		return http.StatusTooManyRequests
	case domain.ErrInsufficientFunds:
		return http.StatusUnprocessableEntity
	case domain.ErrExternal:
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// Respond writes err as a JSON error response. Errors that are not domain errors are
// logged and replaced with errorspkg.ErrInternal.
func Respond(c *gin.Context, err error) {
	status := Status(err)

	if status == http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("internal error")
		err = errorspkg.ErrInternal
	}

	c.JSON(status, web.Error(err))
}

// BadRequest writes a binding or parameter error.
func BadRequest(c *gin.Context, err error) {
	zerolog.Ctx(c.Request.Context()).Info().Err(err).Send()
	c.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})
}
