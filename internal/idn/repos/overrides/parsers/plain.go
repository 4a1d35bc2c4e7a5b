package parsers

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/haukened/idn-display/internal/idn/common/log"
	"github.com/haukened/idn-display/internal/idn/domain"
)

// ParsePlainList parses a newline-delimited list of domains. Names are exact
// by default; a leading "*." or "." makes an apex-inclusive suffix rule.
//
// Behavior:
// - '#' starts a comment (whole-line or inline)
// - Unicode names are converted to ASCII with the IDNA lookup profile
// - invalid names are skipped, not fatal
// - duplicates (same name and kind) keep the first occurrence
func ParsePlainList(r io.Reader, source string, logger log.Logger, now time.Time) ([]domain.OverrideRule, error) {
	scanner := bufio.NewScanner(r)

	seen := make(map[string]struct{})
	out := make([]domain.OverrideRule, 0, 64)
	logger.Debug(map[string]any{"source": source}, "parse_plain_list_start")
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimPrefix(scanner.Text(), "\uFEFF")

		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}

		kind := ruleKindFromRaw(s)
		rule, reason, err := buildRule(s, kind, source, now)
		if reason != "" {
			fields := map[string]any{"line": lineNum, "raw": s}
			if err != nil {
				fields["error"] = err.Error()
			}
			logger.Debug(fields, reason)
			continue
		}

		seenKey := rule.Name + "|" + kind.String()
		if _, ok := seen[seenKey]; ok {
			logger.Debug(map[string]any{"line": lineNum, "name": rule.Name, "kind": kind.String()}, "skip_duplicate")
			continue
		}
		seen[seenKey] = struct{}{}
		out = append(out, rule)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	logger.Debug(map[string]any{"source": source, "count": len(out)}, "parse_plain_list_done")
	return out, nil
}
