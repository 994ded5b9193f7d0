// SPDX-License-Identifier: EPL-2.0

package hrvkit

import "errors"

var (
	// ErrUnsupportedFormat indicates the file extension or content does not
	// match any supported RRI format.
	ErrUnsupportedFormat = errors.New("file format not supported")
)
