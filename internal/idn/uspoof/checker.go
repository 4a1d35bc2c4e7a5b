// Package uspoof implements the UTS #39 security checks the label classifier
// relies on: restriction level detection, allowed-character limits, mixed
// numbering systems and invisible or hidden combining marks.
//
// A Checker is configured once and then only read, so a configured Checker
// may be used from many goroutines at once.
package uspoof

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/haukened/idn-display/internal/idn/uset"
)

var (
	// ErrInvalidUTF8 is returned by Check for input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("uspoof: invalid UTF-8 input")
	// ErrIllegalArgument is returned for unknown check bits or a nil allowed set.
	ErrIllegalArgument = errors.New("uspoof: illegal argument")
)

// Checker runs spoof checks against identifiers.
type Checker struct {
	checks  Checks
	level   RestrictionLevel
	allowed *uset.Set
}

// Open returns a Checker with every check enabled except CheckCharLimit and
// the restriction level set to highly restrictive.
func Open() (*Checker, error) {
	return &Checker{
		checks: AllChecks &^ CheckCharLimit,
		level:  LevelHighlyRestrictive,
	}, nil
}

// Checks returns the enabled checks.
func (c *Checker) Checks() Checks { return c.checks }

// SetChecks replaces the enabled checks. Bits outside AllChecks|AuxInfo are rejected.
func (c *Checker) SetChecks(checks Checks) error {
	if checks&^(AllChecks|AuxInfo) != 0 {
		return fmt.Errorf("%w: unknown check bits %#x", ErrIllegalArgument, int32(checks&^(AllChecks|AuxInfo)))
	}
	c.checks = checks
	return nil
}

// RestrictionLevel returns the most permissive level that still passes CheckRestrictionLevel.
func (c *Checker) RestrictionLevel() RestrictionLevel { return c.level }

// SetRestrictionLevel sets the level enforced by CheckRestrictionLevel.
func (c *Checker) SetRestrictionLevel(level RestrictionLevel) { c.level = level }

// AllowedChars returns the allowed character set, or nil if none was installed.
func (c *Checker) AllowedChars() *uset.Set { return c.allowed }

// SetAllowedChars limits identifiers to the scalars of set and enables CheckCharLimit.
func (c *Checker) SetAllowedChars(set *uset.Set) error {
	if set == nil {
		return fmt.Errorf("%w: nil allowed set", ErrIllegalArgument)
	}
	c.allowed = set
	c.checks |= CheckCharLimit
	return nil
}

// Check runs the enabled checks over s. The low 16 bits of the result hold
// failed checks; with AuxInfo enabled the restriction level is reported in
// the RestrictionLevelMask bits.
func (c *Checker) Check(s string) (int32, error) {
	if !utf8.ValidString(s) {
		return 0, ErrInvalidUTF8
	}

	var failed Checks
	var level RestrictionLevel
	if c.checks&(CheckRestrictionLevel|AuxInfo) != 0 {
		level = c.restrictionLevel(s)
		if c.checks&CheckRestrictionLevel != 0 && c.level.valid() && level > c.level {
			failed |= CheckRestrictionLevel
		}
	}
	if c.checks&CheckCharLimit != 0 && c.allowed != nil && !c.allowed.ContainsAll(s) {
		failed |= CheckCharLimit
	}
	if c.checks&CheckMixedNumbers != 0 && hasMixedNumbers(s) {
		failed |= CheckMixedNumbers
	}
	if c.checks&(CheckInvisible|CheckHiddenOverlay) != 0 {
		nfd := norm.NFD.String(s)
		if c.checks&CheckInvisible != 0 && hasRepeatedMark(nfd) {
			failed |= CheckInvisible
		}
		if c.checks&CheckHiddenOverlay != 0 && hasHiddenOverlay(nfd) {
			failed |= CheckHiddenOverlay
		}
	}

	result := int32(failed)
	if c.checks&AuxInfo != 0 {
		result |= int32(level)
	}
	return result, nil
}

// restrictionLevel classifies s per UTS #39 section 5.2.
func (c *Checker) restrictionLevel(s string) RestrictionLevel {
	if c.allowed != nil && !c.allowed.ContainsAll(s) {
		return LevelUnrestrictive
	}
	if isASCII(s) {
		return LevelASCII
	}
	if set, all := resolveScripts(s, nil); all || len(set) > 0 {
		return LevelSingleScriptRestrictive
	}
	noLatin, all := resolveScripts(s, func(sc string) bool { return sc == "Latin" })
	if !all {
		if noLatin.has(scriptKore) || noLatin.has(scriptHanb) || noLatin.has(scriptJpan) {
			return LevelHighlyRestrictive
		}
		if len(noLatin) > 0 && !noLatin.has("Cyrillic") && !noLatin.has("Greek") && !noLatin.has("Cherokee") {
			return LevelModeratelyRestrictive
		}
	}
	return LevelMinimallyRestrictive
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// hasMixedNumbers reports whether s has decimal digits from more than one
// numbering system, identified by the zero digit of each system.
func hasMixedNumbers(s string) bool {
	var zero rune = -1
	for _, r := range s {
		z, ok := digitZero(r)
		if !ok {
			continue
		}
		if zero >= 0 && z != zero {
			return true
		}
		zero = z
	}
	return false
}

// digitZero returns the zero of the decimal digit run containing r. Every Nd
// range starts at a zero and is made of whole runs of ten.
func digitZero(r rune) (rune, bool) {
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		lo, hi := rune(rg.Lo), rune(rg.Hi)
		if r >= lo && r <= hi && rg.Stride == 1 {
			return lo + (r-lo)/10*10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		lo, hi := rune(rg.Lo), rune(rg.Hi)
		if r >= lo && r <= hi && rg.Stride == 1 {
			return lo + (r-lo)/10*10, true
		}
	}
	return r, true
}

// hasRepeatedMark reports whether the same nonspacing mark occurs twice on one
// base character. nfd must already be in NFD.
func hasRepeatedMark(nfd string) bool {
	var marks []rune
	for _, r := range nfd {
		if !unicode.Is(unicode.Mn, r) {
			marks = marks[:0]
			continue
		}
		for _, m := range marks {
			if m == r {
				return true
			}
		}
		marks = append(marks, r)
	}
	return false
}

// dottedLeads already carry a dot (or look like they do), so a following
// combining dot above is invisible.
var dottedLeads = uset.MustParse(`[ijlıȷіј]`)

// hasHiddenOverlay reports a combining dot above placed on a dotted lead. nfd
// must already be in NFD.
func hasHiddenOverlay(nfd string) bool {
	prev := rune(-1)
	for _, r := range nfd {
		if r == 0x0307 && dottedLeads.Contains(prev) {
			return true
		}
		prev = r
	}
	return false
}
