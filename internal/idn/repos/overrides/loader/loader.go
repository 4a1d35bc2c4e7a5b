// Package loader reads override lists from disk and assembles the override
// repository the display service consults.
package loader

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/haukened/idn-display/internal/idn/common/clock"
	"github.com/haukened/idn-display/internal/idn/common/log"
	"github.com/haukened/idn-display/internal/idn/domain"
	"github.com/haukened/idn-display/internal/idn/repos/lrucache"
	"github.com/haukened/idn-display/internal/idn/repos/overrides"
	"github.com/haukened/idn-display/internal/idn/repos/overrides/bloom"
	"github.com/haukened/idn-display/internal/idn/repos/overrides/bolt"
	"github.com/haukened/idn-display/internal/idn/repos/overrides/memstore"
	"github.com/haukened/idn-display/internal/idn/repos/overrides/parsers"
)

// Options configures Open.
type Options struct {
	Directory string  // override lists; empty disables overrides
	DBPath    string  // bbolt file; empty keeps rules in memory
	FPRate    float64 // bloom filter false-positive target
	CacheSize int     // decision cache entries; 0 disables the cache
	Clock     clock.Clock
	Logger    log.Logger
}

var (
	openBoltStore = bolt.New
	newMemStore   = memstore.New
)

// Open loads every list under opts.Directory into a new repository. With no
// directory configured it returns a NoopRepository.
func Open(opts Options) (overrides.Repository, error) {
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Directory == "" {
		opts.Logger.Debug(nil, "no override directory configured")
		return overrides.NoopRepository{}, nil
	}

	rules, err := LoadDirectory(opts.Directory, opts.Clock, opts.Logger)
	if err != nil {
		return nil, err
	}

	var store overrides.Store
	if opts.DBPath != "" {
		store, err = openBoltStore(opts.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open override store %s: %w", opts.DBPath, err)
		}
	} else {
		store = newMemStore()
	}

	cache, err := lrucache.New[string, domain.OverrideDecision](opts.CacheSize)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create override cache: %w", err)
	}

	repo := overrides.NewRepository(store, cache, bloom.NewFactory(), opts.FPRate, opts.Logger)
	version := store.Stats().Version + 1
	if err := repo.UpdateAll(rules, version, opts.Clock.Now().Unix()); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("failed to load override rules: %w", err)
	}
	return repo, nil
}

// LoadDirectory walks dir and parses every supported list in lexical order:
// plain lists (.txt, .list), hosts files (.hosts or a file named "hosts")
// and structured files (.yaml, .yml, .json, .toml). Other files are ignored.
// Rules repeated across files keep their first occurrence.
func LoadDirectory(dir string, clk clock.Clock, logger log.Logger) ([]domain.OverrideRule, error) {
	now := clk.Now()
	seen := make(map[string]struct{})
	var out []domain.OverrideRule

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rules, err := loadFile(path, logger, now)
		if err != nil {
			return fmt.Errorf("error parsing override file %s: %w", path, err)
		}
		for _, r := range rules {
			key := r.Name + "|" + r.Kind.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info(map[string]any{"dir": dir, "rules": len(out)}, "override lists loaded")
	return out, nil
}

func loadFile(path string, logger log.Logger, now time.Time) ([]domain.OverrideRule, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".txt" || ext == ".list":
		return parseWith(path, parsers.ParsePlainList, logger, now)
	case ext == ".hosts" || filepath.Base(path) == "hosts":
		return parseWith(path, parsers.ParseHostsFile, logger, now)
	case parsers.StructuredParser(path) != nil:
		return parsers.ParseStructuredFile(path, logger, now)
	default:
		logger.Debug(map[string]any{"file": path}, "skip_unsupported_file")
		return nil, nil
	}
}

type lineParser func(r io.Reader, source string, logger log.Logger, now time.Time) ([]domain.OverrideRule, error)

func parseWith(path string, parse lineParser, logger log.Logger, now time.Time) ([]domain.OverrideRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f, path, logger, now)
}
