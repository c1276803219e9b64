package accountdelivery

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/web"
)

// ValidTrustMode validates whether the trust mode is known.
var ValidTrustMode validator.Func = func(fl validator.FieldLevel) bool {
	if m, ok := fl.Field().Interface().(string); ok {
		return domain.TrustMode(m).Valid()
	}

	return false
}

// RegisterValidators registers the custom binding tags used by account requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	for tag, fn := range map[string]validator.Func{
		"trustmode":    ValidTrustMode,
		"amount":       web.ValidAmount,
		"nonnegamount": web.ValidNonNegativeAmount,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	return nil
}
