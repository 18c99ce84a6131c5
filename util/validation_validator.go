package util

import (
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"

	"yonayona-server/openinghours"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("finite", validateFinite)
	validate.RegisterCustomTypeFunc(wallClockValue, openinghours.WallClockInstant{})
}

// ValidateStruct checks s against its validate tags. Failures are
// validator.ValidationErrors in field order.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// wallClockValue lets `required` reject an instant that was never set.
func wallClockValue(field reflect.Value) interface{} {
	if w, ok := field.Interface().(openinghours.WallClockInstant); ok && !w.IsZero() {
		return w.String()
	}
	return ""
}
