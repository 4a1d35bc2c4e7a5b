package domain

import (
	"fmt"
	"strings"
	"time"
)

// OverrideRuleKind defines how an override rule matches names.
//
// exact  - matches the name only
// suffix - matches the name and any subdomain (apex-inclusive suffix)
type OverrideRuleKind uint8

const (
	// OverrideExact matches only the exact name.
	OverrideExact OverrideRuleKind = iota
	// OverrideSuffix matches the name and all its subdomains.
	OverrideSuffix
)

// String returns a stable string representation of the rule kind.
func (k OverrideRuleKind) String() string {
	switch k {
	case OverrideExact:
		return "exact"
	case OverrideSuffix:
		return "suffix"
	default:
		return fmt.Sprintf("OverrideRuleKind(%d)", k)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k OverrideRuleKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseOverrideRuleKind converts "exact" or "suffix" (case-insensitive) into a kind.
func ParseOverrideRuleKind(s string) (OverrideRuleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return OverrideExact, nil
	case "suffix":
		return OverrideSuffix, nil
	default:
		return 0, fmt.Errorf("unsupported OverrideRuleKind: %q", s)
	}
}

// OverrideRule forces names to be displayed in ASCII regardless of how their
// labels classify.
//
// Name is the canonical ASCII form without a trailing dot; Unicode input is
// converted by the parsers before a rule is built.
type OverrideRule struct {
	Name    string           `json:"name"`
	Kind    OverrideRuleKind `json:"kind"`
	Source  string           `json:"source"`   // file path or alias the rule came from
	AddedAt time.Time        `json:"added_at"` // ingestion timestamp
}

// NewOverrideRule constructs an OverrideRule and validates its fields.
func NewOverrideRule(name string, kind OverrideRuleKind, source string, addedAt time.Time) (OverrideRule, error) {
	r := OverrideRule{
		Name:    strings.TrimSpace(name),
		Kind:    kind,
		Source:  strings.TrimSpace(source),
		AddedAt: addedAt,
	}
	if err := r.Validate(); err != nil {
		return OverrideRule{}, err
	}
	return r, nil
}

// Validate checks the rule for required fields and supported values.
func (r OverrideRule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule name must not be empty")
	}
	if r.Source == "" {
		return fmt.Errorf("rule source must not be empty")
	}
	if r.AddedAt.IsZero() {
		return fmt.Errorf("rule addedAt must be set")
	}
	switch r.Kind {
	case OverrideExact, OverrideSuffix:
	default:
		return fmt.Errorf("unsupported OverrideRuleKind: %d", r.Kind)
	}
	return nil
}

// IsSuffix returns true when the rule kind is suffix.
func (r OverrideRule) IsSuffix() bool { return r.Kind == OverrideSuffix }

// OverrideDecision is the outcome of looking a name up in the override list.
type OverrideDecision struct {
	Forced      bool   // true if the name must be shown in ASCII
	MatchedRule string // rule name that matched
	Source      string
	Kind        OverrideRuleKind
}

// NoOverride returns a decision that leaves display to the classifier.
func NoOverride() OverrideDecision { return OverrideDecision{} }
