package overrides

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/idn-display/internal/idn/domain"
	"github.com/haukened/idn-display/internal/idn/repos/lrucache"
)

// --- fakes ---

type fakeStore struct {
	rules        []domain.OverrideRule
	getErr       error
	getCalls     int
	rebuildErr   error
	rebuildCalls int
	version      uint64
	updated      int64
	closed       bool
}

func (s *fakeStore) GetFirstMatch(name string) (domain.OverrideRule, bool, error) {
	s.getCalls++
	if s.getErr != nil {
		return domain.OverrideRule{}, false, s.getErr
	}
	for _, r := range s.rules {
		if r.Name == name {
			return r, true, nil
		}
	}
	for _, r := range s.rules {
		if r.IsSuffix() && strings.HasSuffix(name, "."+r.Name) {
			return r, true, nil
		}
	}
	return domain.OverrideRule{}, false, nil
}

func (s *fakeStore) RebuildAll(rules []domain.OverrideRule, version uint64, updatedUnix int64) error {
	s.rebuildCalls++
	if s.rebuildErr != nil {
		return s.rebuildErr
	}
	s.rules = append([]domain.OverrideRule(nil), rules...)
	s.version, s.updated = version, updatedUnix
	return nil
}

func (s *fakeStore) Stats() StoreStats {
	return StoreStats{Version: s.version, UpdatedUnix: s.updated, ExactKeys: uint64(len(s.rules))}
}

func (s *fakeStore) Close() error { s.closed = true; return nil }

// setBloom is an exact-set "bloom" so tests are deterministic.
type setBloom struct{ keys map[string]struct{} }

func (b *setBloom) Add(k []byte) { b.keys[string(k)] = struct{}{} }
func (b *setBloom) MightContain(k []byte) bool {
	_, ok := b.keys[string(k)]
	return ok
}
func (b *setBloom) Clear() { b.keys = map[string]struct{}{} }

type setFactory struct {
	capacity uint64
	fpRate   float64
}

func (f *setFactory) New(capacity uint64, fpRate float64) BloomFilter {
	f.capacity, f.fpRate = capacity, fpRate
	return &setBloom{keys: map[string]struct{}{}}
}

func rule(t *testing.T, name string, kind domain.OverrideRuleKind) domain.OverrideRule {
	t.Helper()
	r, err := domain.NewOverrideRule(name, kind, "test.txt", time.Unix(1723550000, 0))
	require.NoError(t, err)
	return r
}

func newRepo(t *testing.T, store Store) (*repository, *setFactory) {
	t.Helper()
	cache, err := lrucache.New[string, domain.OverrideDecision](16)
	require.NoError(t, err)
	f := &setFactory{}
	return NewRepository(store, cache, f, 0.01, nil).(*repository), f
}

// --- tests ---

func TestReverseString(t *testing.T) {
	for in, want := range map[string]string{
		"":               "",
		"a":              "a",
		"example.com":    "moc.elpmaxe",
		"sub.domain.com": "moc.niamod.bus",
		"你好":             "好你",
	} {
		assert.Equal(t, want, reverseString(in), in)
	}
}

func TestRepository_DecideExactAndSuffix(t *testing.T) {
	store := &fakeStore{}
	r, f := newRepo(t, store)
	require.NoError(t, r.UpdateAll([]domain.OverrideRule{
		rule(t, "xn--pple-43d.com", domain.OverrideExact),
		rule(t, "xn--80ak6aa92e.com", domain.OverrideSuffix),
	}, 3, 1723550000))
	assert.Equal(t, uint64(2), f.capacity)
	assert.Equal(t, 0.01, f.fpRate)

	d := r.Decide("XN--PPLE-43D.com.")
	assert.True(t, d.Forced)
	assert.Equal(t, "xn--pple-43d.com", d.MatchedRule)
	assert.Equal(t, domain.OverrideExact, d.Kind)
	assert.Equal(t, "test.txt", d.Source)

	d = r.Decide("www.xn--80ak6aa92e.com")
	assert.True(t, d.Forced)
	assert.Equal(t, domain.OverrideSuffix, d.Kind)

	assert.True(t, r.Decide("xn--80ak6aa92e.com").Forced, "suffix rules are apex-inclusive")
	assert.False(t, r.Decide("www.xn--pple-43d.com").Forced, "exact rules do not cover subdomains")
}

func TestRepository_BloomShortCircuits(t *testing.T) {
	store := &fakeStore{}
	r, _ := newRepo(t, store)
	require.NoError(t, r.UpdateAll([]domain.OverrideRule{rule(t, "example.com", domain.OverrideExact)}, 1, 1))

	assert.False(t, r.Decide("other.org").Forced)
	assert.Equal(t, 0, store.getCalls)
	assert.Equal(t, uint64(1), r.Stats().BloomRejects)
}

func TestRepository_CachesDecisions(t *testing.T) {
	store := &fakeStore{}
	r, _ := newRepo(t, store)
	require.NoError(t, r.UpdateAll([]domain.OverrideRule{rule(t, "example.com", domain.OverrideExact)}, 1, 1))

	r.Decide("example.com")
	r.Decide("example.com")
	assert.Equal(t, 1, store.getCalls)

	st := r.Stats()
	assert.Equal(t, uint64(1), st.Cache.Hits)
	assert.Equal(t, uint64(1), st.StoreLookups)
	assert.Equal(t, uint64(1), st.Store.Version)
}

func TestRepository_UpdatePurgesCache(t *testing.T) {
	store := &fakeStore{}
	r, _ := newRepo(t, store)
	require.NoError(t, r.UpdateAll([]domain.OverrideRule{rule(t, "example.com", domain.OverrideExact)}, 1, 1))
	require.True(t, r.Decide("example.com").Forced)

	require.NoError(t, r.UpdateAll(nil, 2, 2))
	assert.False(t, r.Decide("example.com").Forced)
	assert.Equal(t, 0, r.cache.Len())
}

func TestRepository_NoBloomConsultsStore(t *testing.T) {
	store := &fakeStore{rules: []domain.OverrideRule{rule(t, "example.com", domain.OverrideExact)}}
	r, _ := newRepo(t, store)

	assert.True(t, r.Decide("example.com").Forced)
	assert.Equal(t, 1, store.getCalls)
}

func TestRepository_StoreErrorsAreNotCached(t *testing.T) {
	store := &fakeStore{getErr: errors.New("disk gone")}
	r, _ := newRepo(t, store)

	assert.False(t, r.Decide("example.com").Forced)
	assert.False(t, r.Decide("example.com").Forced)
	assert.Equal(t, 2, store.getCalls)
	assert.Equal(t, uint64(2), r.Stats().StoreFailures)
}

func TestRepository_UpdateAllStoreError(t *testing.T) {
	store := &fakeStore{rebuildErr: errors.New("readonly")}
	r, _ := newRepo(t, store)

	err := r.UpdateAll([]domain.OverrideRule{rule(t, "example.com", domain.OverrideExact)}, 1, 1)
	require.Error(t, err)
	assert.Nil(t, r.bloom, "bloom must not be swapped when the store fails")
}

func TestRepository_EmptyNameAndClose(t *testing.T) {
	store := &fakeStore{}
	r, _ := newRepo(t, store)

	assert.False(t, r.Decide("  ").Forced)
	assert.Equal(t, 0, store.getCalls)
	require.NoError(t, r.Close())
	assert.True(t, store.closed)
}

func TestNoopRepository(t *testing.T) {
	var r Repository = NoopRepository{}
	assert.False(t, r.Decide("example.com").Forced)
	assert.NoError(t, r.UpdateAll(nil, 1, 1))
	assert.Equal(t, RepoStats{}, r.Stats())
	assert.NoError(t, r.Close())
}
