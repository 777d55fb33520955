package spectrum

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooFewSamples is returned for curves with fewer than two samples
	ErrTooFewSamples = errors.New("at least two samples are required")
	// ErrEmptyRange is returned when min and max wavelength coincide
	ErrEmptyRange = errors.New("wavelength range is empty")
	// ErrNotMonotonic is returned when wavelengths are not strictly increasing
	ErrNotMonotonic = errors.New("wavelengths are not strictly increasing")
)

// Step returns (max-min)/n
func Step(min, max float64, n int) float64 {
	return (max - min) / float64(n)
}

// Grid returns n points min + i*step for i in [0, n). With step = (max-min)/n
// every point lies in [min, max).
func Grid(min, max float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", n)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("grid bounds must be finite, got [%v, %v]", min, max)
	}
	if !(max > min) {
		return nil, ErrEmptyRange
	}

	step := Step(min, max, n)
	grid := make([]float64, n)
	for i := range grid {
		// min + i*step rather than accumulating, so error does not grow with i
		grid[i] = min + float64(i)*step
	}
	return grid, nil
}
