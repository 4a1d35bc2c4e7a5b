// Package parsers turns override list files into domain.OverrideRule values.
package parsers

import (
	"strings"
	"time"

	"github.com/haukened/idn-display/internal/idn/common/utils"
	"github.com/haukened/idn-display/internal/idn/domain"
)

// ruleKindFromRaw returns OverrideSuffix if raw begins with "*." or ".".
func ruleKindFromRaw(raw string) domain.OverrideRuleKind {
	if strings.HasPrefix(raw, "*.") || strings.HasPrefix(raw, ".") {
		return domain.OverrideSuffix
	}
	return domain.OverrideExact
}

// normalizeName strips suffix markers and converts the name to canonical
// ASCII, so "*.аpple.com" and ".xn--pple-43d.com." both yield "xn--pple-43d.com".
func normalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	name = strings.TrimPrefix(name, "*.")
	name = strings.TrimPrefix(name, ".")
	return utils.CanonicalASCIIName(name)
}

// isValidName applies DNS length limits. Exact rules need at least two
// labels; suffix rules may name a bare TLD.
func isValidName(name string, kind domain.OverrideRuleKind) bool {
	if name == "" || len(name) > 253 {
		return false
	}
	labels := strings.Split(name, ".")
	if kind == domain.OverrideExact && len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if len(l) == 0 || len(l) > 63 {
			return false
		}
	}
	return true
}

// buildRule validates raw and turns it into a rule, reporting why it was skipped.
func buildRule(raw string, kind domain.OverrideRuleKind, source string, now time.Time) (domain.OverrideRule, string, error) {
	name, err := normalizeName(raw)
	if err != nil {
		return domain.OverrideRule{}, "skip_invalid_idna", err
	}
	if !isValidName(name, kind) {
		return domain.OverrideRule{}, "skip_invalid_name", nil
	}
	r, err := domain.NewOverrideRule(name, kind, source, now)
	if err != nil {
		return domain.OverrideRule{}, "skip_constructor_error", err
	}
	return r, "", nil
}
