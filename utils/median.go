// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"slices"
)

// Median returns the middle value of values, averaging the two middle values
// when the count is even. The input slice is left untouched.
// The median of an empty slice is NaN.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
