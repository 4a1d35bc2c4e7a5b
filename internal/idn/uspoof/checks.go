package uspoof

import "fmt"

// Checks is a bitmask of spoof checks. The layout matches ICU's USpoofChecks so
// results can be compared with other UTS #39 implementations.
type Checks int32

const (
	CheckSingleScriptConfusable Checks = 1
	CheckMixedScriptConfusable  Checks = 2
	CheckWholeScriptConfusable  Checks = 4
	// CheckAnyCase modifies the confusable checks; it never appears in a result.
	CheckAnyCase          Checks = 8
	CheckRestrictionLevel Checks = 16
	CheckInvisible        Checks = 32
	CheckCharLimit        Checks = 64
	CheckMixedNumbers     Checks = 128
	CheckHiddenOverlay    Checks = 256

	// AllChecks masks every check-failure bit of a result.
	AllChecks Checks = 0xFFFF

	// AuxInfo asks Check to report the computed restriction level in the result.
	AuxInfo Checks = 0x40000000
)

// RestrictionLevel ranks how freely an identifier mixes scripts, from most to
// least restrictive (UTS #39 section 5.2).
type RestrictionLevel int32

const (
	LevelASCII                   RestrictionLevel = 0x10000000
	LevelSingleScriptRestrictive RestrictionLevel = 0x20000000
	LevelHighlyRestrictive       RestrictionLevel = 0x30000000
	LevelModeratelyRestrictive   RestrictionLevel = 0x40000000
	LevelMinimallyRestrictive    RestrictionLevel = 0x50000000
	LevelUnrestrictive           RestrictionLevel = 0x60000000

	// RestrictionLevelMask extracts the level from a Check result.
	RestrictionLevelMask int32 = 0x7F000000
)

// LevelOf extracts the restriction level from a Check result.
func LevelOf(result int32) RestrictionLevel {
	return RestrictionLevel(result & RestrictionLevelMask)
}

// Failed reports whether any check-failure bit is set in a Check result.
func Failed(result int32) bool {
	return result&int32(AllChecks) != 0
}

func (l RestrictionLevel) String() string {
	switch l {
	case LevelASCII:
		return "ascii"
	case LevelSingleScriptRestrictive:
		return "single-script-restrictive"
	case LevelHighlyRestrictive:
		return "highly-restrictive"
	case LevelModeratelyRestrictive:
		return "moderately-restrictive"
	case LevelMinimallyRestrictive:
		return "minimally-restrictive"
	case LevelUnrestrictive:
		return "unrestrictive"
	default:
		return fmt.Sprintf("RestrictionLevel(%#x)", int32(l))
	}
}

func (l RestrictionLevel) valid() bool {
	switch l {
	case LevelASCII, LevelSingleScriptRestrictive, LevelHighlyRestrictive,
		LevelModeratelyRestrictive, LevelMinimallyRestrictive, LevelUnrestrictive:
		return true
	}
	return false
}
