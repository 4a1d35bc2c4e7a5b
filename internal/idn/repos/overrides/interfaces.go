// Package overrides holds operator-supplied names that must always be shown
// in ASCII. Lookups run through a bloom prefilter, an LRU decision cache and
// finally the authoritative store.
package overrides

import (
	"github.com/haukened/idn-display/internal/idn/domain"
	"github.com/haukened/idn-display/internal/idn/repos/lrucache"
)

// BloomSizer computes Bloom filter parameters from capacity (n) and target
// FP rate (p). It returns m (number of bits) and k (number of hash functions).
type BloomSizer interface {
	Size(n uint64, p float64) (m uint64, k uint8)
}

// BloomFilter is the minimal interface the repository needs from Bloom filters.
type BloomFilter interface {
	Add(key []byte)
	MightContain(key []byte) bool
	Clear()
}

// BloomFactory builds filters sized for a dataset.
type BloomFactory interface {
	New(capacity uint64, fpRate float64) BloomFilter
}

// DecisionCache caches override decisions by canonical ASCII name.
type DecisionCache = lrucache.Cache[string, domain.OverrideDecision]

// Store is the authoritative rule index.
//
// GetFirstMatch returns the exact rule for name if any, otherwise the most
// specific suffix rule covering it. RebuildAll atomically replaces every rule
// and the snapshot metadata.
type Store interface {
	GetFirstMatch(name string) (domain.OverrideRule, bool, error)
	RebuildAll(rules []domain.OverrideRule, version uint64, updatedUnix int64) error
	Stats() StoreStats
	Close() error
}

// Repository decides whether a name is forced to ASCII.
type Repository interface {
	Decide(name string) domain.OverrideDecision
	UpdateAll(rules []domain.OverrideRule, version uint64, updatedUnix int64) error
	Stats() RepoStats
	Close() error
}
