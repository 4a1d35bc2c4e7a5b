// Package verdictcache memoizes label classifications. Classification is a
// pure function of the label and its TLD, so a verdict can be reused for as
// long as the classifier lives.
package verdictcache

import (
	"github.com/haukened/idn-display/internal/idn/domain"
	"github.com/haukened/idn-display/internal/idn/repos/lrucache"
)

// Classifier is the wrapped classification function.
type Classifier interface {
	Classify(label domain.Label, topLevelDomain string) domain.CheckResult
}

type key struct {
	tld   string
	ascii string
}

// Cache is a Classifier that consults an LRU before the wrapped classifier.
type Cache struct {
	inner Classifier
	lru   lrucache.Cache[key, domain.CheckResult]
}

// New wraps inner with an LRU of size entries. A size of 0 disables caching.
func New(inner Classifier, size int) (*Cache, error) {
	l, err := lrucache.New[key, domain.CheckResult](size)
	if err != nil {
		return nil, err
	}
	return &Cache{inner: inner, lru: l}, nil
}

// Classify returns the cached verdict for (label, tld) or classifies the
// label and remembers the result. CheckUnableToRunSpoofCheck is never
// cached.
func (c *Cache) Classify(label domain.Label, topLevelDomain string) domain.CheckResult {
	k := key{tld: topLevelDomain, ascii: label.ASCII}
	if v, ok := c.lru.Get(k); ok {
		return v
	}
	v := c.inner.Classify(label, topLevelDomain)
	if v != domain.CheckUnableToRunSpoofCheck {
		c.lru.Put(k, v)
	}
	return v
}

// Stats reports cache counters.
func (c *Cache) Stats() lrucache.Stats { return c.lru.Stats() }
