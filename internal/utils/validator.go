package utils

import (
	"github.com/go-playground/validator/v10"
	"math"
	"reflect"
)

var Validate *validator.Validate

func InitValidator() {
	if Validate != nil {
		return
	}
	Validate = validator.New(validator.WithRequiredStructEnabled())
	_ = Validate.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		v := field.Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return true
	}
}
