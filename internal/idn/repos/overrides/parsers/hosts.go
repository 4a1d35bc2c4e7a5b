package parsers

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/haukened/idn-display/internal/idn/common/log"
	"github.com/haukened/idn-display/internal/idn/domain"
)

// ParseHostsFile reads /etc/hosts-style files and returns an exact rule for
// every hostname after the address field. Wildcards and names starting with
// "." are not hosts syntax and are skipped.
func ParseHostsFile(r io.Reader, source string, logger log.Logger, now time.Time) ([]domain.OverrideRule, error) {
	scanner := bufio.NewScanner(r)

	seen := make(map[string]struct{})
	out := make([]domain.OverrideRule, 0, 256)
	logger.Debug(map[string]any{"source": source}, "parse_hosts_start")

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimPrefix(scanner.Text(), "\uFEFF")
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		// fields[0] is the address
		for _, raw := range fields[1:] {
			if strings.HasPrefix(raw, ".") || strings.Contains(raw, "*") {
				logger.Debug(map[string]any{"line": lineNum, "raw": raw}, "hosts_skip_invalid_token")
				continue
			}
			rule, reason, err := buildRule(raw, domain.OverrideExact, source, now)
			if reason != "" {
				fields := map[string]any{"line": lineNum, "raw": raw}
				if err != nil {
					fields["error"] = err.Error()
				}
				logger.Debug(fields, "hosts_"+reason)
				continue
			}
			if _, ok := seen[rule.Name]; ok {
				continue
			}
			seen[rule.Name] = struct{}{}
			out = append(out, rule)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	logger.Debug(map[string]any{"source": source, "count": len(out)}, "parse_hosts_done")
	return out, nil
}
