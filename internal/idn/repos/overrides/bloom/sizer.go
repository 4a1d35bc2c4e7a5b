package bloom

import (
	"math"

	"github.com/haukened/idn-display/internal/idn/repos/overrides"
)

// sizer implements overrides.BloomSizer with the standard formulas
//
//	m = - (n * ln p) / (ln 2)^2
//	k = (m / n) * ln 2
//
// clamped to at least 1.
type sizer struct{}

// NewSizer returns a BloomSizer.
func NewSizer() overrides.BloomSizer { return sizer{} }

func (sizer) Size(n uint64, p float64) (uint64, uint8) {
	if n == 0 {
		n = 1
	}
	if !(p > 0 && p < 1) {
		p = 0.01
	}
	m := uint64(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	if m == 0 {
		m = 1
	}
	k := math.Max(1, math.Round(float64(m)/float64(n)*math.Ln2))
	if k > math.MaxUint8 {
		k = math.MaxUint8
	}
	return m, uint8(k)
}
