// SPDX-License-Identifier: EPL-2.0

package rri

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/hrvkit/utils"
)

// Normalize returns the series with its unit pinned to milliseconds.
//
// Unit detection is a magnitude heuristic: a median below 1 means the values
// are almost certainly seconds (a median heartbeat gap under one millisecond
// is not physiological), so every value is scaled by 1000. Otherwise the
// series is returned unchanged. A genuine millisecond series with a median
// below 1 would be rescaled incorrectly; such input is implausible but not
// rejected here.
//
// The receiver is never mutated; when rescaling happens a copy is returned.
// For any series whose median is at least 1, Normalize is idempotent.
func (s Series) Normalize() Series {
	if len(s) == 0 {
		return s
	}

	if utils.Median(s) >= 1 {
		return s
	}

	out := make(Series, len(s))
	copy(out, s)
	floats.Scale(1000, out)

	return out
}
