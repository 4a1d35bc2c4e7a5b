// Package idna parses user-supplied domain names into labels using the IDNA
// lookup profile (UTS #46 nontransitional processing).
package idna

import (
	"errors"
	"fmt"
	"strings"

	xidna "golang.org/x/net/idna"

	"github.com/haukened/idn-display/internal/idn/domain"
)

// ErrInvalidDomain wraps every parse failure.
var ErrInvalidDomain = errors.New("invalid domain")

var profile = xidna.Lookup

// Parse maps, validates and splits input into labels. Each label carries its
// ASCII form and, for "xn--" labels, the decoded Unicode form. A trailing dot
// produces an empty root label.
func Parse(input string) (domain.Name, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return domain.Name{}, fmt.Errorf("%w: empty input", ErrInvalidDomain)
	}

	ascii, err := profile.ToASCII(s)
	if err != nil {
		return domain.Name{}, fmt.Errorf("%w: %q: %v", ErrInvalidDomain, s, err)
	}
	ascii = strings.ToLower(ascii)

	parts := strings.Split(ascii, ".")
	name := domain.Name{Labels: make([]domain.Label, 0, len(parts))}
	for i, part := range parts {
		if part == "" && i != len(parts)-1 {
			return domain.Name{}, fmt.Errorf("%w: %q: empty label", ErrInvalidDomain, s)
		}
		unicode := part
		if domain.HasACEPrefix(part) {
			unicode, err = profile.ToUnicode(part)
			if err != nil {
				return domain.Name{}, fmt.Errorf("%w: label %q: %v", ErrInvalidDomain, part, err)
			}
		}
		name.Labels = append(name.Labels, domain.NewLabel(part, unicode, i > 0))
	}
	return name, nil
}
