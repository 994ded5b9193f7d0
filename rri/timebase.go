// SPDX-License-Identifier: EPL-2.0

package rri

import "gonum.org/v1/gonum/floats"

// TimeBase returns the elapsed time of each beat in seconds, anchored at
// zero.
//
// Element i is the cumulative sum of the intervals through index i, converted
// from milliseconds to seconds and shifted so the first beat sits at exactly
// 0. The result has the same length as the series and is non-decreasing for
// any valid (positive) series.
func (s Series) TimeBase() []float64 {
	if len(s) == 0 {
		return nil
	}

	t := floats.CumSum(make([]float64, len(s)), s)
	first := t[0]
	for i := range t {
		t[i] = (t[i] - first) / 1000.0
	}

	return t
}
