package errors

import (
	"math"
)

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if numerical instability is detected.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values, iteration)
		}
	}
	return nil
}

// NonFiniteIndices returns the positions of NaN or Inf entries in values.
func NonFiniteIndices(values []float64) []int {
	var idx []int
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			idx = append(idx, i)
		}
	}
	return idx
}
