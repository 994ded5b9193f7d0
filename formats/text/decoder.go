package text

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/ik5/hrvkit/rri"
)

// interval matches a positive integer of at least two digits with no leading
// zero.
var interval = regexp.MustCompile(`[1-9]\d+`)

type Decoder struct{}

// Decode extracts every multi-digit positive integer from r, in order of
// appearance, as a raw interval series.
func (Decoder) Decode(r io.Reader) (rri.Series, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	matches := interval.FindAllString(string(content), -1)
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
