package utils

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// CanonicalName returns a domain name in canonical form: trimmed of
// surrounding whitespace, lowercased and without trailing dots. It does not
// perform IDNA processing.
func CanonicalName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimRight(name, ".")
}

// CanonicalASCIIName canonicalizes name and converts it to its ASCII
// (Punycode) form with the IDNA lookup profile, so that Unicode and ASCII
// spellings of the same domain compare equal.
func CanonicalASCIIName(name string) (string, error) {
	name = CanonicalName(name)
	if name == "" {
		return "", fmt.Errorf("empty domain name")
	}
	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("idna conversion of %q failed: %w", name, err)
	}
	return strings.ToLower(ascii), nil
}
