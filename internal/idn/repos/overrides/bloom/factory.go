// Package bloom adapts bits-and-blooms Bloom filters to the override repository.
package bloom

import (
	bitsbloom "github.com/bits-and-blooms/bloom/v3"

	"github.com/haukened/idn-display/internal/idn/repos/overrides"
)

type factory struct {
	sizer overrides.BloomSizer
}

// NewFactory returns a BloomFactory that sizes filters with NewSizer.
func NewFactory() overrides.BloomFactory { return factory{sizer: NewSizer()} }

// New builds a filter sized for capacity keys at the target false-positive rate.
func (f factory) New(capacity uint64, fpRate float64) overrides.BloomFilter {
	m, k := f.sizer.Size(capacity, fpRate)
	return &filter{bf: bitsbloom.New(uint(m), uint(k))}
}
