package domain

import (
	"fmt"
	"strings"
)

// CheckResult is the verdict of classifying one label. Exactly one value is
// produced per classification; only CheckSafe permits Unicode display.
type CheckResult uint8

const (
	// CheckUnableToRunSpoofCheck means the checker was unavailable or errored.
	CheckUnableToRunSpoofCheck CheckResult = iota
	// CheckSpoofCheckFailed means the confusable-detection engine flagged the label.
	CheckSpoofCheckFailed
	// CheckTLDSpecificCharacters means the label uses scalars reserved for another TLD.
	CheckTLDSpecificCharacters
	// CheckDigitLookalikes means the label is made of digits and digit lookalikes.
	CheckDigitLookalikes
	// CheckUnsafeMiddleDot means the label has a middle dot outside the Catalan "l·l" form.
	CheckUnsafeMiddleDot
	// CheckSafe means the label may be displayed in Unicode.
	CheckSafe
)

var checkResultNames = [...]string{
	CheckUnableToRunSpoofCheck: "unable-to-run-spoof-check",
	CheckSpoofCheckFailed:      "spoof-check-failed",
	CheckTLDSpecificCharacters: "tld-specific-characters",
	CheckDigitLookalikes:       "digit-lookalikes",
	CheckUnsafeMiddleDot:       "unsafe-middle-dot",
	CheckSafe:                  "safe",
}

// String returns a stable name for the verdict.
func (r CheckResult) String() string {
	if int(r) < len(checkResultNames) {
		return checkResultNames[r]
	}
	return fmt.Sprintf("CheckResult(%d)", r)
}

// IsSafe is a convenience accessor.
func (r CheckResult) IsSafe() bool { return r == CheckSafe }

// MarshalText implements encoding.TextMarshaler.
func (r CheckResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseCheckResult converts a verdict name back into a CheckResult.
func ParseCheckResult(s string) (CheckResult, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range checkResultNames {
		if name == s {
			return CheckResult(i), nil
		}
	}
	return 0, fmt.Errorf("unsupported CheckResult: %q", s)
}
