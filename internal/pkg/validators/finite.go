package validators

import (
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// FiniteTag is the struct tag name under which Finite is registered
const FiniteTag = "finite"

// Finite validates that a float field is neither NaN nor infinite.
// Integer fields always pass.
func Finite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}
