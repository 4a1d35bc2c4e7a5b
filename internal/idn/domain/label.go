package domain

import "strings"

// Label is a single dot-separated segment of a parsed domain name.
// Pure value type; produced by the parser and never mutated afterwards.
type Label struct {
	ASCII   string // ASCII-compatible form ("xn--" prefixed when IsIDN)
	Unicode string // decoded form; empty only for the root label of an FQDN
	IsIDN   bool   // true if the label required IDNA processing

	// HasLeadingDelimiter is false only for the leftmost label of a name.
	HasLeadingDelimiter bool
}

// NewLabel builds a label from its ASCII and Unicode forms. The IDN flag is
// derived from the ACE prefix of the ASCII form.
func NewLabel(ascii, unicode string, leadingDelimiter bool) Label {
	return Label{
		ASCII:               ascii,
		Unicode:             unicode,
		IsIDN:               HasACEPrefix(ascii),
		HasLeadingDelimiter: leadingDelimiter,
	}
}

// ASCIIWithLeadingDelimiter returns the ASCII form preceded by the "." that
// separates it from the label to its left, if any.
func (l Label) ASCIIWithLeadingDelimiter() string {
	if l.HasLeadingDelimiter {
		return "." + l.ASCII
	}
	return l.ASCII
}

// Display returns the Unicode form for IDN labels and the ASCII form otherwise.
func (l Label) Display() string {
	if l.IsIDN {
		return l.Unicode
	}
	return l.ASCII
}

// HasACEPrefix reports whether an ASCII label carries the "xn--" prefix.
func HasACEPrefix(ascii string) bool {
	return len(ascii) >= 4 && strings.EqualFold(ascii[:4], "xn--")
}
