package uspoof

import (
	"sort"
	"unicode"
)

// Augmented script identifiers (UTS #39 section 5.1).
const (
	scriptHanb = "Hanb" // Han with Bopomofo
	scriptJpan = "Jpan" // Han, Hiragana, Katakana
	scriptKore = "Kore" // Han, Hangul
)

type namedScript struct {
	name  string
	table *unicode.RangeTable
}

// scriptOrder lists the scripts most often seen in domain labels first; the
// remainder of unicode.Scripts follows in name order.
var scriptOrder = func() []namedScript {
	preferred := []string{
		"Common", "Inherited", "Latin", "Cyrillic", "Greek", "Han", "Hiragana",
		"Katakana", "Hangul", "Bopomofo", "Arabic", "Hebrew", "Armenian",
		"Georgian", "Devanagari", "Bengali", "Thai", "Cherokee",
	}
	seen := make(map[string]bool, len(unicode.Scripts))
	out := make([]namedScript, 0, len(unicode.Scripts))
	for _, name := range preferred {
		if t, ok := unicode.Scripts[name]; ok {
			out = append(out, namedScript{name, t})
			seen[name] = true
		}
	}
	rest := make([]string, 0, len(unicode.Scripts))
	for name := range unicode.Scripts {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, namedScript{name, unicode.Scripts[name]})
	}
	return out
}()

// scriptOf returns the Unicode Script property value of r, or "Unknown".
func scriptOf(r rune) string {
	for _, s := range scriptOrder {
		if unicode.Is(s.table, r) {
			return s.name
		}
	}
	return "Unknown"
}

// augmented returns the augmented script set of a single script.
func augmented(script string) []string {
	switch script {
	case "Han":
		return []string{"Han", scriptHanb, scriptJpan, scriptKore}
	case "Hiragana", "Katakana":
		return []string{script, scriptJpan}
	case "Hangul":
		return []string{script, scriptKore}
	case "Bopomofo":
		return []string{script, scriptHanb}
	}
	return []string{script}
}

// scriptSet is a set of script names. A nil scriptSet with all=true stands
// for "every script", which is what Common and Inherited resolve to.
type scriptSet map[string]struct{}

func (s scriptSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// resolveScripts intersects the augmented script sets of every scalar in str,
// skipping Common, Inherited and any script for which skip returns true.
// all is true when no scalar constrained the result.
func resolveScripts(str string, skip func(string) bool) (set scriptSet, all bool) {
	all = true
	for _, r := range str {
		sc := scriptOf(r)
		if sc == "Common" || sc == "Inherited" {
			continue
		}
		if skip != nil && skip(sc) {
			continue
		}
		aug := augmented(sc)
		if all {
			set = make(scriptSet, len(aug))
			for _, a := range aug {
				set[a] = struct{}{}
			}
			all = false
			continue
		}
		next := make(scriptSet, len(aug))
		for _, a := range aug {
			if set.has(a) {
				next[a] = struct{}{}
			}
		}
		set = next
	}
	return set, all
}
