package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"spectralcli/pkg/contracts/domain"
)

// Interpolator evaluates the piecewise-linear function through a set of
// (wavelength, response) knots. Outside the knot range it returns the
// nearest end value.
type Interpolator struct {
	pl interp.PiecewiseLinear
}

// NewInterpolator fits the knots. Wavelengths must be strictly increasing.
func NewInterpolator(wavelength, response []float64) (*Interpolator, error) {
	if len(wavelength) != len(response) {
		return nil, fmt.Errorf("wavelength and response lengths differ: %d != %d", len(wavelength), len(response))
	}
	if len(wavelength) < 2 {
		return nil, ErrTooFewSamples
	}
	for i := 1; i < len(wavelength); i++ {
		if !(wavelength[i] > wavelength[i-1]) {
			return nil, fmt.Errorf("%w: %v at index %d follows %v", ErrNotMonotonic, wavelength[i], i, wavelength[i-1])
		}
	}

	ip := &Interpolator{}
	// PiecewiseLinear panics on the conditions checked above.
	if err := ip.pl.Fit(wavelength, response); err != nil {
		return nil, err
	}
	return ip, nil
}

// At returns the interpolated response at wavelength x
func (ip *Interpolator) At(x float64) float64 {
	return ip.pl.Predict(x)
}

// Resample interpolates curve onto its uniform grid
func Resample(curve domain.Curve) (domain.ResampledCurve, error) {
	n := curve.Len()
	if n < 2 {
		return domain.ResampledCurve{}, fmt.Errorf("%s: %w", curve.Channel, ErrTooFewSamples)
	}

	min, max := floats.Min(curve.Wavelength), floats.Max(curve.Wavelength)
	grid, err := Grid(min, max, n)
	if err != nil {
		return domain.ResampledCurve{}, fmt.Errorf("%s: %w", curve.Channel, err)
	}

	ip, err := NewInterpolator(curve.Wavelength, curve.Response)
	if err != nil {
		return domain.ResampledCurve{}, fmt.Errorf("%s: %w", curve.Channel, err)
	}

	values := make([]float64, len(grid))
	for i, x := range grid {
		values[i] = ip.At(x)
	}

	return domain.ResampledCurve{
		Channel:     curve.Channel,
		Grid:        grid,
		Values:      values,
		Min:         min,
		Max:         max,
		Step:        Step(min, max, n),
		SampleCount: n,
	}, nil
}

// ResampleAll resamples each curve independently, stopping at the first error
func ResampleAll(curves []domain.Curve) ([]domain.ResampledCurve, error) {
	out := make([]domain.ResampledCurve, 0, len(curves))
	for _, c := range curves {
		r, err := Resample(c)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
