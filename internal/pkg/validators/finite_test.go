//go:build unit
// +build unit

package validators

import (
	"math"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Value  float64            `validate:"finite"`
	Values map[string]float64 `validate:"omitempty,dive,finite"`
}

func TestFinite(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation(FiniteTag, Finite))

	tests := []struct {
		name          string
		input         sample
		expectedError bool
	}{
		{name: "zero", input: sample{Value: 0}},
		{name: "negative", input: sample{Value: -3.5}},
		{name: "map values", input: sample{Value: 1, Values: map[string]float64{"h1": 12, "he4": 10.93}}},
		{name: "nan", input: sample{Value: math.NaN()}, expectedError: true},
		{name: "positive infinity", input: sample{Value: math.Inf(1)}, expectedError: true},
		{name: "infinite map value", input: sample{Values: map[string]float64{"c12": math.Inf(-1)}}, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
