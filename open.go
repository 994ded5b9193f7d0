// SPDX-License-Identifier: EPL-2.0

package hrvkit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/hrvkit/formats/hrm"
	"github.com/ik5/hrvkit/formats/text"
	"github.com/ik5/hrvkit/rri"
)

// decoders maps sniffed formats to their parser.
var decoders = rri.NewRegistry()

func init() {
	decoders.Register(string(FormatText), text.Decoder{})
	decoders.Register(string(FormatHRM), hrm.Decoder{})
}

// Open loads an RRI recording from path and returns the series in
// milliseconds.
//
// The extension must be .txt or .hrm; anything else returns
// ErrUnsupportedFormat without touching the file. The parser itself is chosen
// by sniffing the content, so a .txt file carrying HRM data still loads.
func Open(path string) (rri.Series, error) {
	switch filepath.Ext(path) {
	case ".txt", ".hrm":
	default:
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rri file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read loads an RRI recording from an already-open stream. The whole stream
// is consumed, the format is sniffed from the content, and the decoded series
// is normalized to milliseconds before being returned.
func Read(r io.Reader) (rri.Series, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rri content: %w", err)
	}

	return parse(string(content))
}

func parse(content string) (rri.Series, error) {
	format, err := Detect(content)
	if err != nil {
		return nil, err
	}

	dec, ok := decoders.Get(string(format))
	if !ok {
		return nil, fmt.Errorf("%w: no decoder for %q", ErrUnsupportedFormat, format)
	}

	series, err := dec.Decode(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	return series.Normalize(), nil
}
