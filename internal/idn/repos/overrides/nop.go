package overrides

import "github.com/haukened/idn-display/internal/idn/domain"

// NoopRepository is used when no override directory is configured.
type NoopRepository struct{}

func (NoopRepository) Decide(string) domain.OverrideDecision { return domain.NoOverride() }

func (NoopRepository) UpdateAll([]domain.OverrideRule, uint64, int64) error { return nil }

func (NoopRepository) Stats() RepoStats { return RepoStats{} }

func (NoopRepository) Close() error { return nil }

var _ Repository = NoopRepository{}
