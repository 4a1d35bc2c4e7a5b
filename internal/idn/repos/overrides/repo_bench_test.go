package overrides_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/haukened/idn-display/internal/idn/domain"
	"github.com/haukened/idn-display/internal/idn/repos/lrucache"
	"github.com/haukened/idn-display/internal/idn/repos/overrides"
	"github.com/haukened/idn-display/internal/idn/repos/overrides/bloom"
	"github.com/haukened/idn-display/internal/idn/repos/overrides/bolt"
)

func benchRules(n int) []domain.OverrideRule {
	out := make([]domain.OverrideRule, 0, n+1)
	for i := 0; i < n; i++ {
		out = append(out, domain.OverrideRule{
			Name:    fmt.Sprintf("xn--brand%04d-43d.com", i),
			Kind:    domain.OverrideExact,
			Source:  "bench",
			AddedAt: time.Unix(1, 0),
		})
	}
	out = append(out, domain.OverrideRule{Name: "paypal.com", Kind: domain.OverrideSuffix, Source: "bench", AddedAt: time.Unix(1, 0)})
	return out
}

func buildRepo(b *testing.B, cacheSize int) overrides.Repository {
	b.Helper()
	st, err := bolt.New(filepath.Join(b.TempDir(), "ov.db"))
	if err != nil {
		b.Fatalf("bolt.New: %v", err)
	}
	cache, err := lrucache.New[string, domain.OverrideDecision](cacheSize)
	if err != nil {
		b.Fatalf("lrucache.New: %v", err)
	}
	repo := overrides.NewRepository(st, cache, bloom.NewFactory(), 0.01, nil)
	if err := repo.UpdateAll(benchRules(5000), 1, time.Now().Unix()); err != nil {
		b.Fatalf("UpdateAll: %v", err)
	}
	b.Cleanup(func() { _ = repo.Close() })
	return repo
}

func BenchmarkDecide_BloomReject(b *testing.B) {
	repo := buildRepo(b, 1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = repo.Decide("www.example.org")
	}
}

func BenchmarkDecide_CachedHit(b *testing.B) {
	repo := buildRepo(b, 1024)
	_ = repo.Decide("xn--brand0042-43d.com")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = repo.Decide("xn--brand0042-43d.com")
	}
}

func BenchmarkDecide_SuffixNoCache(b *testing.B) {
	repo := buildRepo(b, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = repo.Decide("login.secure.paypal.com")
	}
}
