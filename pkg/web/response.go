// Package web defines common components for a web application.
package web

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-savings/pkg/moneypkg"
)

// Response holds the common response type for all APIs.
type Response struct {
	AccessToken          string `json:"access_token,omitempty"`
	AccessTokenExpiresAt string `json:"access_token_expires_at,omitempty"`
	Data                 any    `json:"data,omitempty"`
	Error                string `json:"error,omitempty"`
}

// Error wraps a given err into the response envelope.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable suffix for a failed validation tag.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	case "email":
		return " must be a valid email"
	case "alphanum":
		return " accepts only alphanumeric characters"
	case "amount":
		return " must be a positive amount with at most 6 decimals"
	case "trustmode":
		return " must be MANUAL or AUTONOMOUS"
	}

	return " is invalid"
}

// BindingErrorMsg converts a gin binding error into a response message.
func BindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return err.Error()
}

// ValidAmount validates that the field is a positive fixed-point amount string.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	a, err := moneypkg.Parse(s)

	return err == nil && a.IsPositive()
}

// ValidNonNegativeAmount validates that the field is a fixed-point amount string >= 0.
var ValidNonNegativeAmount validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	a, err := moneypkg.Parse(s)

	return err == nil && a >= 0
}
