// Package memstore keeps override rules in memory for runs without a
// configured database file.
package memstore

import (
	"strings"
	"sync"

	"github.com/haukened/idn-display/internal/idn/domain"
	"github.com/haukened/idn-display/internal/idn/repos/overrides"
)

type snapshot struct {
	exact       map[string]domain.OverrideRule
	suffix      map[string]domain.OverrideRule
	version     uint64
	updatedUnix int64
}

type store struct {
	mu   sync.RWMutex
	snap snapshot
}

// New returns an empty in-memory Store.
func New() overrides.Store {
	return &store{snap: snapshot{
		exact:  map[string]domain.OverrideRule{},
		suffix: map[string]domain.OverrideRule{},
	}}
}

func (s *store) GetFirstMatch(name string) (domain.OverrideRule, bool, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	if r, ok := snap.exact[name]; ok {
		return r, true, nil
	}
	for a := name; a != ""; {
		if r, ok := snap.suffix[a]; ok {
			return r, true, nil
		}
		i := strings.IndexByte(a, '.')
		if i < 0 {
			break
		}
		a = a[i+1:]
	}
	return domain.OverrideRule{}, false, nil
}

func (s *store) RebuildAll(rules []domain.OverrideRule, version uint64, updatedUnix int64) error {
	next := snapshot{
		exact:       make(map[string]domain.OverrideRule),
		suffix:      make(map[string]domain.OverrideRule),
		version:     version,
		updatedUnix: updatedUnix,
	}
	for _, r := range rules {
		switch r.Kind {
		case domain.OverrideExact:
			next.exact[r.Name] = r
		case domain.OverrideSuffix:
			next.suffix[r.Name] = r
		}
	}
	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
	return nil
}

func (s *store) Stats() overrides.StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return overrides.StoreStats{
		Version:     s.snap.version,
		UpdatedUnix: s.snap.updatedUnix,
		ExactKeys:   uint64(len(s.snap.exact)),
		SuffixKeys:  uint64(len(s.snap.suffix)),
	}
}

func (s *store) Close() error { return nil }
