// SPDX-License-Identifier: EPL-2.0

// Package hrvkit loads beat-to-beat interval (RRI) recordings for heart-rate
// variability analysis.
//
// The package reads RRI series from text-based export files, normalizes the
// values to milliseconds, and prepares them for frequency-domain analysis by
// resampling the irregular series onto a uniform time grid.
//
// # Supported Formats
//
// Two file formats are supported:
//   - Plain text (.txt): one multi-digit interval per line, via formats/text
//   - Polar HRM (.hrm): an [HRData] section followed by interval lines, via formats/hrm
//
// # Quick Start
//
// The simplest way to load a recording is Open:
//
//	series, err := hrvkit.Open("recording.txt")
//	if err != nil {
//	    // Handle error
//	}
//
//	// series holds R-R intervals in milliseconds
//
// Already-open streams go through Read, which sniffs the format from the
// content itself:
//
//	series, err := hrvkit.Read(file)
//
// # Preparing for Spectral Analysis
//
// Frequency-domain estimators need evenly spaced samples. The rri subpackage
// resamples a series onto a uniform grid:
//
//	grid, values, err := series.Interpolate(rri.DefaultInterpOptions())
//
//	// grid is spaced 1/fs seconds apart; values follow the series through
//	// every original sample point
//
// See the rri subpackage for the interpolation options and the
// frequency-domain argument surface.
//
// # Unit Handling
//
// Recordings exported in seconds are detected with a median heuristic and
// rescaled, so the series returned by Open and Read is always in
// milliseconds. See rri.Series.Normalize for the heuristic and its limits.
//
// # Error Handling
//
// Errors are sentinel values suitable for errors.Is:
//   - hrvkit.ErrUnsupportedFormat: unknown extension or unrecognized content
//   - rri.ErrEmptyData: a well-formed file with no interval values
//   - rri.ErrInvalidRRI: a non-positive or non-finite interval value
//
// All errors surface immediately; there are no retries or partial results.
package hrvkit
