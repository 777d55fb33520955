package spectrum

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrNonPositivePeak is returned when a curve cannot be normalized
var ErrNonPositivePeak = errors.New("curve maximum must be positive to normalize")

// PercentScale is the value a normalized curve peaks at
const PercentScale = 100.0

// Normalize returns values divided by their maximum and scaled to 0-100
func Normalize(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, nil
	}
	peak := floats.Max(values)
	if !(peak > 0) {
		return nil, ErrNonPositivePeak
	}
	return Scale(values, PercentScale/peak), nil
}

// Scale returns a copy of values multiplied by k
func Scale(values []float64, k float64) []float64 {
	out := make([]float64, len(values))
	floats.ScaleTo(out, k, values)
	return out
}
