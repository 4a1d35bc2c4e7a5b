package utils

import "golang.org/x/net/publicsuffix"

// RegistrableDomain returns the effective TLD plus one label for an ASCII
// domain name, falling back to the canonical name when the public suffix
// list has no answer (single labels, bare suffixes).
func RegistrableDomain(name string) string {
	name = CanonicalName(name)
	apex, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		return name
	}
	return apex
}

// PublicSuffix returns the public suffix of an ASCII domain name and
// whether it is managed by ICANN.
func PublicSuffix(name string) (string, bool) {
	name = CanonicalName(name)
	if name == "" {
		return "", false
	}
	return publicsuffix.PublicSuffix(name)
}
