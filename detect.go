// SPDX-License-Identifier: EPL-2.0

package hrvkit

import (
	"fmt"
	"regexp"
	"strings"
)

// Format identifies a supported RRI file layout.
type Format string

const (
	// FormatHRM is the Polar HRM export format, marked by an [HRData] section.
	FormatHRM Format = "hrm"
	// FormatText is the plain one-interval-per-line text format.
	FormatText Format = "text"
)

// hrDataMarker opens the interval section of an HRM export.
const hrDataMarker = "[HRData]"

var digitRun = regexp.MustCompile(`\d+`)

// Detect classifies file content as one of the supported formats.
//
// Content containing the [HRData] marker is classified as FormatHRM.
// Anything else must look like the plain text layout: on every line that
// contains digits at all, the first digit run must be the whole line
// (ignoring surrounding whitespace). A line such as "12 34" or "800.5"
// fails the check and Detect returns ErrUnsupportedFormat naming the line.
// Lines without any digits pass; whether they hold data is the parser's
// concern.
func Detect(content string) (Format, error) {
	if strings.Contains(content, hrDataMarker) {
		return FormatHRM, nil
	}

	for _, line := range strings.Split(content, "\n") {
		number := digitRun.FindString(line)
		if number == "" {
			continue
		}
		if number != strings.TrimSpace(line) {
			return "", fmt.Errorf("%w: line %q is not a single integer", ErrUnsupportedFormat, line)
		}
	}

	return FormatText, nil
}
