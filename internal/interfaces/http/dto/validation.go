package dto

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations installs custom binding validators on gin's validator
// engine. decimal.Decimal fields cannot use the numeric gt/gte tags, so they
// get their own:
//
//	dgt0  - strictly positive
//	dgte0 - zero or positive
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	if err := v.RegisterValidation("dgt0", decimalPositive); err != nil {
		return err
	}
	return v.RegisterValidation("dgte0", decimalNonNegative)
}

func decimalPositive(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.IsPositive()
}

func decimalNonNegative(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && !d.IsNegative()
}
