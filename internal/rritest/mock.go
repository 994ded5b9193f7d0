// SPDX-License-Identifier: EPL-2.0

package rritest

import (
	"fmt"
	"math"
	"strings"
)

// TextContent renders interval values as the plain text export format:
// one integer per line with a trailing newline.
func TextContent(values []int) string {
	var b strings.Builder
	for _, v := range values {
		fmt.Fprintf(&b, "%d\n", v)
	}

	return b.String()
}

// HRMContent renders interval values as a minimal Polar HRM export with a
// [Params] preamble and an [HRData] section.
func HRMContent(values []int) string {
	var b strings.Builder
	b.WriteString("[Params]\nVersion=106\nMode=000000000\n\n[HRData]\n")
	for _, v := range values {
		fmt.Fprintf(&b, "%d\n", v)
	}

	return b.String()
}

// Tachogram generates n interval values oscillating around base with the
// given swing, a crude but smooth stand-in for respiratory sinus arrhythmia.
func Tachogram(n int, base, swing float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = base + swing*math.Sin(2*math.Pi*float64(i)/10.0)
	}

	return values
}
