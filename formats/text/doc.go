// SPDX-License-Identifier: EPL-2.0

// Package text decodes plain-text RRI exports.
//
// The format is one positive integer per non-blank line, as written by
// several heart-rate monitor export tools:
//
//	800
//	810
//	790
//
// # Decoding
//
//	decoder := text.Decoder{}
//	series, err := decoder.Decode(file)
//
// The decoder scans the whole content for multi-digit positive integers, so
// stray labels around the numbers do not break extraction. Values below 10
// and zero-padded numbers are not matched; no physiological R-R interval is
// a single digit in either seconds or milliseconds.
//
// Decoded values are raw: unit normalization to milliseconds happens in the
// rri package.
//
// # Error Handling
//
// Decode returns rri.ErrEmptyData when the content yields no interval
// values.
package text
