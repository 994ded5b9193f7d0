// SPDX-License-Identifier: EPL-2.0

package rri

import (
	"fmt"
	"math"
)

// SpectralMethod selects the power spectral density estimator fed by
// PrepareFreqDomain.
type SpectralMethod string

const (
	// SpectralWelch is Welch's averaged-periodogram method, the only
	// estimator currently accepted.
	SpectralWelch SpectralMethod = "welch"
)

// FreqDomainOptions configures the hand-off to a frequency-domain estimator.
type FreqDomainOptions struct {
	// FS is the uniform resampling frequency in Hz.
	FS float64
	// Method is the spectral estimator. Only SpectralWelch is accepted.
	Method SpectralMethod
	// Interp selects how the series is resampled before estimation.
	Interp InterpMethod
}

// DefaultFreqDomainOptions returns the standard configuration: 4 Hz, Welch,
// cubic resampling.
func DefaultFreqDomainOptions() FreqDomainOptions {
	return FreqDomainOptions{
		FS:     DefaultFS,
		Method: SpectralWelch,
		Interp: InterpCubic,
	}
}

// Validate checks the option fields against the supported estimators and
// interpolation methods.
func (o FreqDomainOptions) Validate() error {
	if o.Method != SpectralWelch {
		return fmt.Errorf("%w: %q, choose among: %q",
			ErrUnsupportedSpectralMethod, o.Method, SpectralWelch)
	}

	switch o.Interp {
	case InterpCubic, InterpLinear:
	default:
		return fmt.Errorf("%w: %q, choose among: %q, %q",
			ErrUnsupportedInterpMethod, o.Interp, InterpCubic, InterpLinear)
	}

	if math.IsNaN(o.FS) || o.FS <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSamplingRate, o.FS)
	}

	return nil
}

// PrepareFreqDomain validates the series and options and resamples the
// series the way a spectral estimator consumes it: a uniform time grid and
// the interpolated amplitudes at each grid point.
//
// The series is normalized before resampling, so caller-supplied sequences
// in seconds are accepted the same way file input is.
func PrepareFreqDomain(s Series, opts FreqDomainOptions) (grid, values []float64, err error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	canonical := s.Normalize()

	return canonical.Interpolate(InterpOptions{FS: opts.FS, Method: opts.Interp})
}
