// SPDX-License-Identifier: EPL-2.0

// Package hrm decodes Polar HRM heart-rate monitor exports.
//
// An HRM file is an INI-like text file whose interval data sits in a section
// opened by the [HRData] marker:
//
//	[Params]
//	Version=106
//
//	[HRData]
//	700
//	710
//	720
//
// # Decoding
//
//	decoder := hrm.Decoder{}
//	series, err := decoder.Decode(file)
//
// Everything before the marker is ignored; every digit run after it becomes
// an interval value, single digits included. Decoded values are raw: unit
// normalization to milliseconds happens in the rri package.
//
// # Error Handling
//
// Decode returns rri.ErrEmptyData when the marker is missing or the section
// after it holds no digits.
package hrm
