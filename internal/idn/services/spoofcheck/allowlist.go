package spoofcheck

import (
	"github.com/haukened/idn-display/internal/idn/uset"
	"github.com/haukened/idn-display/internal/idn/uspoof"
)

type runeRange struct{ lo, hi rune }

// deniedScalars are removed from recommended ∪ inclusion.
var deniedScalars = []rune{
	0x0338, // combining long solidus overlay, looks like a slash
	0x058A, // armenian hyphen
	0x2010, // hyphen
	0x2019, // right single quotation mark
	0x2027, // hyphenation point
	0x30A0, // katakana-hiragana double hyphen
	0x02BB, // modifier letter turned comma
	0x02BC, // modifier letter apostrophe
	0x02EC, // modifier letter voicing
	0x0138, // latin small letter kra
}

// appleFontScalars render blank in the default Apple system UI font.
var appleFontScalars = []runeRange{
	{0x0620, 0x0620}, // arabic letter kashmiri yeh
	{0x0F8C, 0x0F8F}, // tibetan transliteration signs
}

// deniedBlocks are rarely used LGC blocks.
var deniedBlocks = []runeRange{
	{0x01CD, 0x01DC}, // latin extended-b, pinyin
	{0x1C80, 0x1C8F}, // cyrillic extended-c
	{0x1E00, 0x1E9B}, // latin extended additional
	{0x1F00, 0x1FFF}, // greek extended
	{0xA640, 0xA69F}, // cyrillic extended-b
	{0xA720, 0xA7FF}, // latin extended-d
}

// AllowedSet builds the scalars an IDN label may contain. appleFonts also
// removes the scalars Apple system fonts render as blank.
func AllowedSet(appleFonts bool) *uset.Set {
	b := uset.NewBuilder().
		AddSet(uspoof.RecommendedSet()).
		AddSet(uspoof.InclusionSet())
	for _, r := range deniedScalars {
		b.Remove(r)
	}
	if appleFonts {
		for _, rr := range appleFontScalars {
			b.RemoveRange(rr.lo, rr.hi)
		}
	}
	for _, rr := range deniedBlocks {
		b.RemoveRange(rr.lo, rr.hi)
	}
	return b.Freeze()
}
