// SPDX-License-Identifier: EPL-2.0

package rri

import "errors"

var (
	// ErrEmptyData indicates a well-formed source with no interval values.
	ErrEmptyData = errors.New("no rri data found")

	// ErrInvalidRRI indicates an interval value that is not a positive,
	// finite number.
	ErrInvalidRRI = errors.New("rri must contain only positive and non-zero numbers")

	// ErrNotEnoughSamples indicates a series too short to interpolate.
	ErrNotEnoughSamples = errors.New("at least two rri samples are required for interpolation")

	// ErrUnsupportedInterpMethod indicates an unknown interpolation method.
	ErrUnsupportedInterpMethod = errors.New("interpolation method not supported")

	// ErrUnsupportedSpectralMethod indicates an unknown spectral estimator.
	ErrUnsupportedSpectralMethod = errors.New("spectral method not supported")

	// ErrInvalidSamplingRate indicates a sampling frequency that is not a
	// positive number.
	ErrInvalidSamplingRate = errors.New("sampling frequency must be a positive number")
)
