package overrides

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/haukened/idn-display/internal/idn/common/log"
	"github.com/haukened/idn-display/internal/idn/common/utils"
	"github.com/haukened/idn-display/internal/idn/domain"
)

// repository composes a Store, a Bloom filter (via factory) and a
// DecisionCache. Reads go bloom → cache → store; writes swap a whole snapshot.
type repository struct {
	mu      sync.RWMutex
	store   Store
	cache   DecisionCache
	bloom   BloomFilter
	factory BloomFactory
	fpRate  float64
	logger  log.Logger

	bloomRejects  atomic.Uint64
	storeLookups  atomic.Uint64
	storeFailures atomic.Uint64
}

// NewRepository constructs a Repository. fpRate is the target false-positive
// rate of the Bloom filter built on every UpdateAll. Until the first update
// every lookup consults the store.
func NewRepository(store Store, cache DecisionCache, factory BloomFactory, fpRate float64, logger log.Logger) Repository {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &repository{store: store, cache: cache, factory: factory, fpRate: fpRate, logger: logger}
}

// Decide reports whether name must be displayed in ASCII. name is expected in
// ASCII form; it is canonicalized before lookup. Store errors never force
// ASCII: the classifier keeps the final say.
func (r *repository) Decide(name string) domain.OverrideDecision {
	cn := utils.CanonicalName(name)
	if cn == "" {
		return domain.NoOverride()
	}
	if !r.checkBloom(cn) {
		r.bloomRejects.Add(1)
		return domain.NoOverride()
	}
	if d, ok := r.checkCache(cn); ok {
		return d
	}
	dec, err := r.checkStore(cn)
	if err != nil {
		return domain.NoOverride()
	}
	r.updateCache(cn, dec)
	return dec
}

// UpdateAll rebuilds the store, builds a fresh Bloom filter for the dataset,
// then swaps it in and purges the decision cache.
func (r *repository) UpdateAll(rules []domain.OverrideRule, version uint64, updatedUnix int64) error {
	if err := r.store.RebuildAll(rules, version, updatedUnix); err != nil {
		return err
	}

	bf := r.factory.New(uint64(len(rules)), r.fpRate)
	for _, ru := range rules {
		switch ru.Kind {
		case domain.OverrideExact:
			bf.Add([]byte(ru.Name))
		case domain.OverrideSuffix:
			bf.Add([]byte(reverseString(ru.Name)))
		}
	}

	r.mu.Lock()
	r.bloom = bf
	r.cache.Purge()
	r.mu.Unlock()

	r.logger.Info(map[string]any{
		"rules":   len(rules),
		"version": version,
	}, "override rules updated")
	return nil
}

// Stats returns repository counters and store stats.
func (r *repository) Stats() RepoStats {
	r.mu.RLock()
	cs := r.cache.Stats()
	r.mu.RUnlock()
	return RepoStats{
		Cache:         cs,
		BloomRejects:  r.bloomRejects.Load(),
		StoreLookups:  r.storeLookups.Load(),
		StoreFailures: r.storeFailures.Load(),
		Store:         r.store.Stats(),
	}
}

// Close releases the store.
func (r *repository) Close() error { return r.store.Close() }

// reverseString reverses s rune by rune. Suffix keys in the Bloom filter use
// this form so that anchors share prefixes.
func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// checkBloom returns true if the store must be consulted. With no filter
// loaded yet it always returns true.
func (r *repository) checkBloom(cn string) bool {
	r.mu.RLock()
	bf := r.bloom
	r.mu.RUnlock()
	if bf == nil {
		return true
	}
	if bf.MightContain([]byte(cn)) {
		return true
	}
	// suffix anchors, most specific to apex
	for a := cn; a != ""; {
		if bf.MightContain([]byte(reverseString(a))) {
			return true
		}
		i := strings.IndexByte(a, '.')
		if i < 0 {
			break
		}
		a = a[i+1:]
	}
	return false
}

func (r *repository) checkCache(cn string) (domain.OverrideDecision, bool) {
	r.mu.RLock()
	d, ok := r.cache.Get(cn)
	r.mu.RUnlock()
	return d, ok
}

// checkStore consults the authoritative store. Failed lookups are not cached.
func (r *repository) checkStore(cn string) (domain.OverrideDecision, error) {
	r.storeLookups.Add(1)
	rule, ok, err := r.store.GetFirstMatch(cn)
	if err != nil {
		r.storeFailures.Add(1)
		r.logger.Warn(map[string]any{"name": cn, "error": err}, "override lookup failed")
		return domain.NoOverride(), err
	}
	if !ok {
		return domain.NoOverride(), nil
	}
	return domain.OverrideDecision{Forced: true, MatchedRule: rule.Name, Source: rule.Source, Kind: rule.Kind}, nil
}

func (r *repository) updateCache(cn string, dec domain.OverrideDecision) {
	r.mu.Lock()
	r.cache.Put(cn, dec)
	r.mu.Unlock()
}
