// Package spoofcheck decides whether a single IDN label is safe to show in
// Unicode or must fall back to its ASCII form.
package spoofcheck

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/haukened/idn-display/internal/idn/common/log"
	"github.com/haukened/idn-display/internal/idn/domain"
	"github.com/haukened/idn-display/internal/idn/uset"
	"github.com/haukened/idn-display/internal/idn/uspoof"
)

const (
	digitLookalikePattern = `[θ२২੨੨૨೩೭շзҙӡउওਤ੩૩౩ဒვპੜკ੫丩ㄐճ৪੪୫૭୨౨]`
	kanaExceptionPattern  = `[\u3078-\u307a\u30d8-\u30da\u30fb-\u30fe]`
	combiningMarkPattern  = `[\u0300-\u0339]`
	middleDot             = '\u00b7'
)

// Engine is the confusable-detection engine the classifier configures once
// and then queries. *uspoof.Checker satisfies it.
type Engine interface {
	Checks() uspoof.Checks
	SetChecks(uspoof.Checks) error
	SetRestrictionLevel(uspoof.RestrictionLevel)
	SetAllowedChars(*uset.Set) error
	Check(s string) (int32, error)
}

// Options configures New.
type Options struct {
	// OpenEngine creates the engine. Defaults to uspoof.Open.
	OpenEngine func() (Engine, error)
	// AppleFonts removes scalars the Apple system UI font renders as blank.
	AppleFonts bool
	Logger     log.Logger
}

// DefaultOptions returns the options Shared uses.
func DefaultOptions() Options {
	return Options{
		AppleFonts: runtime.GOOS == "darwin",
	}
}

func openUspoof() (Engine, error) {
	return uspoof.Open()
}

// compilePattern builds the exception sets; replaced in tests.
var compilePattern = uset.Parse

// Classifier holds the configured engine and the frozen exception sets. It is
// never mutated after New returns and is safe for concurrent use.
//
// A nil *Classifier is valid and reports CheckUnableToRunSpoofCheck for
// every IDN label.
type Classifier struct {
	engine          Engine
	digitLookalikes *uset.Set
	kanaExceptions  *uset.Set
	combiningMarks  *uset.Set
}

// New configures an engine and compiles the exception sets. Any failure
// leaves the classifier unusable, so New returns a nil *Classifier along with
// the error; callers may still call Classify on it.
func New(opts Options) (*Classifier, error) {
	if opts.OpenEngine == nil {
		opts.OpenEngine = openUspoof
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}

	engine, err := opts.OpenEngine()
	if err != nil {
		return nil, fmt.Errorf("open spoof checker: %w", err)
	}

	// Latin may mix with one CJK logical script, nothing else.
	engine.SetRestrictionLevel(uspoof.LevelHighlyRestrictive)

	allowed := AllowedSet(opts.AppleFonts)
	if err := engine.SetAllowedChars(allowed); err != nil {
		return nil, fmt.Errorf("set allowed characters: %w", err)
	}
	if err := engine.SetChecks(engine.Checks() | uspoof.AuxInfo); err != nil {
		return nil, fmt.Errorf("enable aux info: %w", err)
	}

	c := &Classifier{engine: engine}
	for _, p := range []struct {
		dst     **uset.Set
		pattern string
	}{
		{&c.digitLookalikes, digitLookalikePattern},
		{&c.kanaExceptions, kanaExceptionPattern},
		{&c.combiningMarks, combiningMarkPattern},
	} {
		set, err := compilePattern(p.pattern)
		if err != nil {
			return nil, fmt.Errorf("compile exception set: %w", err)
		}
		*p.dst = set
	}

	opts.Logger.Debug(map[string]any{
		"allowed":     allowed.Len(),
		"apple_fonts": opts.AppleFonts,
	}, "spoof checker ready")
	return c, nil
}

var (
	sharedOnce       sync.Once
	sharedClassifier *Classifier
)

// Shared returns the process-wide classifier, building it on first use with
// DefaultOptions. If construction fails the failure is logged once and the
// nil classifier is returned.
func Shared() *Classifier {
	sharedOnce.Do(func() {
		c, err := New(DefaultOptions())
		if err != nil {
			log.Error(map[string]any{"error": err}, "spoof checker unavailable")
		}
		sharedClassifier = c
	})
	return sharedClassifier
}

// Classify reports whether label may be displayed in Unicode under the given
// top-level domain. The TLD is compared verbatim and is expected in the form
// the renderer uses for display. Only CheckSafe permits Unicode display.
func (c *Classifier) Classify(label domain.Label, topLevelDomain string) domain.CheckResult {
	if !label.IsIDN {
		return domain.CheckSafe
	}
	if c == nil || c.engine == nil {
		return domain.CheckUnableToRunSpoofCheck
	}

	s := label.Unicode
	result, err := c.engine.Check(s)
	if err != nil {
		return domain.CheckUnableToRunSpoofCheck
	}
	if uspoof.Failed(result) {
		return domain.CheckSpoofCheckFailed
	}
	level := uspoof.LevelOf(result)

	// þ can spoof b and p, ð can spoof o. Both are Icelandic.
	if topLevelDomain != "is" && containsRune(s, 'þ', 'ð') {
		return domain.CheckTLDSpecificCharacters
	}
	if topLevelDomain != "az" && containsRune(s, 'ə') {
		return domain.CheckTLDSpecificCharacters
	}

	if hasUnsafeMiddleDot(s, topLevelDomain) {
		return domain.CheckUnsafeMiddleDot
	}
	if c.hasDigitLookalike(s) {
		return domain.CheckDigitLookalikes
	}

	if level == uspoof.LevelSingleScriptRestrictive &&
		!c.kanaExceptions.ContainsAny(s) &&
		!c.combiningMarks.ContainsAny(s) {
		return domain.CheckSafe
	}

	// Whole-script confusables, dangerous mixed-script patterns and
	// top-domain similarity are not checked; everything left is safe.
	return domain.CheckSafe
}

func containsRune(s string, targets ...rune) bool {
	for _, r := range s {
		for _, t := range targets {
			if r == t {
				return true
			}
		}
	}
	return false
}

// hasDigitLookalike reports whether s consists only of ASCII digits and digit
// lookalikes, with at least one lookalike.
func (c *Classifier) hasDigitLookalike(s string) bool {
	found := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if !c.digitLookalikes.Contains(r) {
			return false
		}
		found = true
	}
	return found
}

// hasUnsafeMiddleDot reports whether s has a middle dot that is not between
// two 'l's, or any middle dot at all outside the .cat TLD (RFC 5892 A.3).
func hasUnsafeMiddleDot(s, topLevelDomain string) bool {
	runes := []rune(s)
	found := false
	for i, r := range runes {
		if r != middleDot {
			continue
		}
		if i == 0 || i == len(runes)-1 {
			return true
		}
		if runes[i-1] != 'l' || runes[i+1] != 'l' {
			return true
		}
		found = true
	}
	return found && topLevelDomain != "cat"
}
