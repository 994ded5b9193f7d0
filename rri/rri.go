// SPDX-License-Identifier: EPL-2.0

package rri

import (
	"fmt"
	"io"
	"math"
	"sync"
)

// Series is an ordered sequence of R-R intervals, the time between
// consecutive heartbeats. Decoders return raw values whose unit depends on
// the source file; after Normalize the unit is milliseconds.
type Series []float64

// Validate checks that every interval is a finite, strictly positive number.
// It returns ErrInvalidRRI wrapped with the first offending index and value.
func (s Series) Validate() error {
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: value %v at index %d", ErrInvalidRRI, v, i)
		}
	}

	return nil
}

// Decoder constructs a raw Series from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Series, error)
}

// Registry for decoders by format key (e.g., "text", "hrm").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
