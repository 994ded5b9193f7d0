// SPDX-License-Identifier: EPL-2.0

// Package rri provides the core R-R interval series type and its numeric
// pipeline.
//
// This package contains the building blocks the format decoders and the
// top-level loader are assembled from:
//   - Series, an ordered sequence of beat-to-beat intervals
//   - unit normalization to canonical milliseconds
//   - the zero-anchored time base derived from a series
//   - resampling onto a uniform time grid for spectral analysis
//   - the decoder Registry used by the loader
//
// # Series
//
// A Series is a plain slice of positive interval values:
//
//	series := rri.Series{800, 810, 790}
//
// Decoders produce raw series whose unit depends on the source file;
// Normalize pins the unit to milliseconds with a median heuristic.
//
// # Time Base
//
// TimeBase converts intervals into elapsed seconds:
//
//	t := series.TimeBase()
//	// t[0] == 0, t is non-decreasing, len(t) == len(series)
//
// # Resampling
//
// Spectral estimators need evenly spaced samples, but heartbeats are not
// evenly spaced. Interpolate lays a uniform grid over the recording and
// evaluates a cubic spline (or piecewise-linear interpolant) at every grid
// point:
//
//	grid, values, err := series.Interpolate(rri.InterpOptions{
//	    FS:     4.0,
//	    Method: rri.InterpCubic,
//	})
//
// The cubic spline passes exactly through every original sample; between
// samples it may overshoot the original value range, which is expected
// spline behavior.
//
// # Frequency-Domain Hand-Off
//
// PrepareFreqDomain validates the configuration a spectral estimator is
// called with and produces the resampled series it consumes:
//
//	grid, values, err := rri.PrepareFreqDomain(series, rri.DefaultFreqDomainOptions())
//
// Only Welch's method is accepted as the estimator today; the estimator
// itself lives outside this package.
//
// # Error Handling
//
// The package defines sentinel errors compatible with errors.Is:
//   - ErrEmptyData: a source yielded no interval values
//   - ErrInvalidRRI: a non-positive or non-finite interval value
//   - ErrNotEnoughSamples: interpolation needs at least two samples
//   - ErrUnsupportedInterpMethod: unknown interpolation method
//   - ErrUnsupportedSpectralMethod: unknown spectral estimator
//   - ErrInvalidSamplingRate: non-positive sampling frequency
package rri
