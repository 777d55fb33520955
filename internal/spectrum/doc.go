// Package spectrum resamples spectral response curves onto a uniform
// wavelength grid.
//
// For a curve of N samples spanning [min, max] the grid is
//
//	min, min+step, ..., min+(N-1)*step    with step = (max-min)/N
//
// i.e. N points on the half-open interval [min, max). The last grid point
// stops one step short of the observed maximum. Values on the grid are
// obtained by piecewise-linear interpolation of the measured samples, which
// must be strictly increasing in wavelength.
package spectrum
