// Package bolt persists override rules in a bbolt database.
//
// Layout: bucket "exact" maps names to rule values, bucket "suffix" maps
// reversed names to rule values and bucket "meta" holds the snapshot version
// and update time.
package bolt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/haukened/idn-display/internal/idn/domain"
	"github.com/haukened/idn-display/internal/idn/repos/overrides"
)

var (
	bucketExact  = []byte("exact")
	bucketSuffix = []byte("suffix")
	bucketMeta   = []byte("meta")

	keyVersion = []byte("version")
	keyUpdated = []byte("updated")
)

var errCorruptValue = errors.New("corrupt rule value")

type boltStore struct {
	db *bbolt.DB
}

// New opens (or creates) a database at path and ensures the buckets exist.
func New(path string) (overrides.Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open override db %s: %w", path, err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketExact, bucketSuffix, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init override db %s: %w", path, err)
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Close() error { return s.db.Close() }

// GetFirstMatch checks the exact bucket, then suffix anchors from the full
// name up to its last label.
func (s *boltStore) GetFirstMatch(name string) (domain.OverrideRule, bool, error) {
	var (
		rule  domain.OverrideRule
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketExact).Get([]byte(name)); v != nil {
			r, err := decodeRule(name, domain.OverrideExact, v)
			if err != nil {
				return err
			}
			rule, found = r, true
			return nil
		}
		b := tx.Bucket(bucketSuffix)
		for a := name; a != ""; {
			if v := b.Get([]byte(reverse(a))); v != nil {
				r, err := decodeRule(a, domain.OverrideSuffix, v)
				if err != nil {
					return err
				}
				rule, found = r, true
				return nil
			}
			i := strings.IndexByte(a, '.')
			if i < 0 {
				break
			}
			a = a[i+1:]
		}
		return nil
	})
	if err != nil {
		return domain.OverrideRule{}, false, err
	}
	return rule, found, nil
}

// RebuildAll replaces every rule and the metadata in a single transaction.
func (s *boltStore) RebuildAll(rules []domain.OverrideRule, version uint64, updatedUnix int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketExact, bucketSuffix} {
			if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
				return err
			}
		}
		exact, err := tx.CreateBucket(bucketExact)
		if err != nil {
			return err
		}
		suffix, err := tx.CreateBucket(bucketSuffix)
		if err != nil {
			return err
		}
		for _, r := range rules {
			v := encodeRule(r)
			switch r.Kind {
			case domain.OverrideExact:
				err = exact.Put([]byte(r.Name), v)
			case domain.OverrideSuffix:
				err = suffix.Put([]byte(reverse(r.Name)), v)
			default:
				continue
			}
			if err != nil {
				return err
			}
		}
		meta := tx.Bucket(bucketMeta)
		if err := meta.Put(keyVersion, binary.BigEndian.AppendUint64(nil, version)); err != nil {
			return err
		}
		return meta.Put(keyUpdated, binary.BigEndian.AppendUint64(nil, uint64(updatedUnix)))
	})
}

func (s *boltStore) Stats() overrides.StoreStats {
	st := overrides.StoreStats{}
	_ = s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketExact); b != nil {
			st.ExactKeys = uint64(b.Stats().KeyN)
		}
		if b := tx.Bucket(bucketSuffix); b != nil {
			st.SuffixKeys = uint64(b.Stats().KeyN)
		}
		if b := tx.Bucket(bucketMeta); b != nil {
			if v := b.Get(keyVersion); len(v) == 8 {
				st.Version = binary.BigEndian.Uint64(v)
			}
			if v := b.Get(keyUpdated); len(v) == 8 {
				st.UpdatedUnix = int64(binary.BigEndian.Uint64(v))
			}
		}
		return nil
	})
	return st
}

// encodeRule stores AddedAt (unix seconds, big endian) followed by Source.
func encodeRule(r domain.OverrideRule) []byte {
	v := binary.BigEndian.AppendUint64(make([]byte, 0, 8+len(r.Source)), uint64(r.AddedAt.Unix()))
	return append(v, r.Source...)
}

func decodeRule(name string, kind domain.OverrideRuleKind, v []byte) (domain.OverrideRule, error) {
	if len(v) < 8 {
		return domain.OverrideRule{}, fmt.Errorf("%w for %q", errCorruptValue, name)
	}
	return domain.OverrideRule{
		Name:    name,
		Kind:    kind,
		Source:  string(v[8:]),
		AddedAt: time.Unix(int64(binary.BigEndian.Uint64(v[:8])), 0),
	}, nil
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
