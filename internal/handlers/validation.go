package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
)

// registerCustomValidations attaches application validation tags to gin's
// binding validator. Must run before any route binds a request body.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("supportedcurrency", validateSupportedCurrency)
}

func validateSupportedCurrency(fl validator.FieldLevel) bool {
	return domain.IsSupportedCurrency(fl.Field().String())
}
