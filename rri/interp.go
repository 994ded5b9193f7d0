// SPDX-License-Identifier: EPL-2.0

package rri

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// DefaultFS is the default uniform-grid sampling frequency in Hz.
const DefaultFS = 4.0

// InterpMethod selects the interpolation algorithm.
type InterpMethod string

const (
	// InterpCubic fits a cubic spline passing exactly through every sample.
	InterpCubic InterpMethod = "cubic"
	// InterpLinear joins consecutive samples with straight segments.
	InterpLinear InterpMethod = "linear"
)

// InterpOptions configures resampling onto a uniform time grid.
type InterpOptions struct {
	// FS is the grid sampling frequency in Hz. Must be positive.
	FS float64
	// Method selects the interpolation algorithm.
	Method InterpMethod
}

// DefaultInterpOptions returns the standard configuration: 4 Hz, cubic.
func DefaultInterpOptions() InterpOptions {
	return InterpOptions{FS: DefaultFS, Method: InterpCubic}
}

// Interpolate resamples the irregular series onto a uniform time grid.
//
// The irregular time base is built from the intervals, a grid of points
// spaced 1/FS seconds apart is laid over the half-open range [0, last) where
// last is the final time-base point, and the selected interpolant is
// evaluated at every grid point.
//
// The returned slices have equal length. Cubic interpolation may overshoot
// the original value range between samples; linear interpolation never does,
// and clamps to the boundary values outside the sampled range.
//
// Errors: ErrInvalidRRI for a non-positive or non-finite value,
// ErrNotEnoughSamples for fewer than two samples, ErrInvalidSamplingRate for
// a non-positive FS, and ErrUnsupportedInterpMethod for an unknown method.
func (s Series) Interpolate(opts InterpOptions) (grid, values []float64, err error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	if len(s) < 2 {
		return nil, nil, ErrNotEnoughSamples
	}

	if math.IsNaN(opts.FS) || opts.FS <= 0 {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidSamplingRate, opts.FS)
	}

	var p interp.FittablePredictor

	switch opts.Method {
	case InterpCubic:
		p = &interp.NaturalCubic{}
	case InterpLinear:
		p = &interp.PiecewiseLinear{}
	default:
		return nil, nil, fmt.Errorf("%w: %q, choose among: %q, %q",
			ErrUnsupportedInterpMethod, opts.Method, InterpCubic, InterpLinear)
	}

	timeBase := s.TimeBase()
	if err := p.Fit(timeBase, s); err != nil {
		return nil, nil, fmt.Errorf("fit interpolant: %w", err)
	}

	grid = uniformGrid(timeBase[len(timeBase)-1], opts.FS)
	values = make([]float64, len(grid))
	for i, t := range grid {
		values[i] = p.Predict(t)
	}

	return grid, values, nil
}

// uniformGrid lays points 0, 1/fs, 2/fs, ... over the half-open range
// [0, last).
func uniformGrid(last, fs float64) []float64 {
	n := int(math.Ceil(last * fs))
	if n < 0 {
		n = 0
	}

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = float64(i) / fs
	}

	return grid
}
