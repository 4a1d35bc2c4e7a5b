package overrides

import "github.com/haukened/idn-display/internal/idn/repos/lrucache"

// StoreStats reports store counts and snapshot metadata.
type StoreStats struct {
	Version     uint64 // snapshot version (0 if unknown)
	UpdatedUnix int64  // last updated unix time (0 if unknown)
	ExactKeys   uint64
	SuffixKeys  uint64
}

// RepoStats exposes repository counters and underlying store stats.
type RepoStats struct {
	Cache         lrucache.Stats
	BloomRejects  uint64 // lookups answered by the bloom prefilter alone
	StoreLookups  uint64
	StoreFailures uint64
	Store         StoreStats
}
