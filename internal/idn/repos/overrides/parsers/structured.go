package parsers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"

	"github.com/haukened/idn-display/internal/idn/common/log"
	"github.com/haukened/idn-display/internal/idn/domain"
)

// StructuredParser returns the koanf parser for a structured override file,
// or nil if the extension is not supported.
func StructuredParser(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	case ".json":
		return json.Parser()
	case ".toml":
		return toml.Parser()
	default:
		return nil
	}
}

// ParseStructuredFile loads a YAML, JSON or TOML override file:
//
//	source: brand-protection   # optional, defaults to the file path
//	exact:  [xn--pple-43d.com]
//	suffix: [paypal.com]
//
// Entries in "suffix" are suffix rules whether or not they carry a "*."
// marker; entries in "exact" follow the marker like plain lists do.
func ParseStructuredFile(path string, logger log.Logger, now time.Time) ([]domain.OverrideRule, error) {
	parser := StructuredParser(path)
	if parser == nil {
		return nil, fmt.Errorf("unsupported override file type %q", filepath.Ext(path))
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load override file %s: %w", path, err)
	}

	source := strings.TrimSpace(k.String("source"))
	if source == "" {
		source = path
	}

	seen := make(map[string]struct{})
	var out []domain.OverrideRule
	add := func(raw string, kind domain.OverrideRuleKind) {
		rule, reason, err := buildRule(raw, kind, source, now)
		if reason != "" {
			fields := map[string]any{"file": path, "raw": raw}
			if err != nil {
				fields["error"] = err.Error()
			}
			logger.Debug(fields, reason)
			return
		}
		key := rule.Name + "|" + kind.String()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, rule)
	}

	for _, raw := range k.Strings("exact") {
		add(raw, ruleKindFromRaw(strings.TrimSpace(raw)))
	}
	for _, raw := range k.Strings("suffix") {
		add(raw, domain.OverrideSuffix)
	}

	logger.Debug(map[string]any{"file": path, "source": source, "count": len(out)}, "parse_structured_done")
	return out, nil
}
