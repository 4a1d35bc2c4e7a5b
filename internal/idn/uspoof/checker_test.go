package uspoof

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/idn-display/internal/idn/uset"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	c, err := Open()
	require.NoError(t, err)
	allowed := uset.NewBuilder().AddSet(RecommendedSet()).AddSet(InclusionSet()).Freeze()
	require.NoError(t, c.SetAllowedChars(allowed))
	require.NoError(t, c.SetChecks(c.Checks()|AuxInfo))
	return c
}

func TestOpen_Defaults(t *testing.T) {
	c, err := Open()
	require.NoError(t, err)
	assert.Equal(t, LevelHighlyRestrictive, c.RestrictionLevel())
	assert.Zero(t, c.Checks()&CheckCharLimit)
	assert.NotZero(t, c.Checks()&CheckRestrictionLevel)
	assert.NotZero(t, c.Checks()&CheckInvisible)
	assert.NotZero(t, c.Checks()&CheckMixedNumbers)
	assert.Nil(t, c.AllowedChars())
}

func TestSetChecks_RejectsUnknownBits(t *testing.T) {
	c, err := Open()
	require.NoError(t, err)
	err = c.SetChecks(Checks(0x10000))
	assert.True(t, errors.Is(err, ErrIllegalArgument))
	assert.NoError(t, c.SetChecks(AllChecks|AuxInfo))
}

func TestSetAllowedChars(t *testing.T) {
	c, err := Open()
	require.NoError(t, err)
	assert.True(t, errors.Is(c.SetAllowedChars(nil), ErrIllegalArgument))

	require.NoError(t, c.SetAllowedChars(uset.MustParse(`[a-z]`)))
	assert.NotZero(t, c.Checks()&CheckCharLimit)

	res, err := c.Check("abc")
	require.NoError(t, err)
	assert.False(t, Failed(res))

	res, err = c.Check("abé")
	require.NoError(t, err)
	assert.NotZero(t, Checks(res)&CheckCharLimit)
}

func TestCheck_InvalidUTF8(t *testing.T) {
	c := newTestChecker(t)
	_, err := c.Check("ab\xffc")
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
}

func TestCheck_RestrictionLevels(t *testing.T) {
	c := newTestChecker(t)
	tests := []struct {
		name   string
		input  string
		level  RestrictionLevel
		failed bool
	}{
		{"ascii", "example", LevelASCII, false},
		{"latin with diacritics", "faß", LevelSingleScriptRestrictive, false},
		{"latin with common middle dot", "pel·lícula", LevelSingleScriptRestrictive, false},
		{"han only", "你好你好", LevelSingleScriptRestrictive, false},
		{"japanese mix", "ひらがなカタカナ漢字", LevelSingleScriptRestrictive, false},
		{"georgian with digits", "16კ", LevelSingleScriptRestrictive, false},
		{"arabic", "أهلا", LevelSingleScriptRestrictive, false},
		{"latin plus han", "abc中文", LevelHighlyRestrictive, false},
		{"latin plus arabic", "abcأهلا", LevelModeratelyRestrictive, true},
		{"latin plus cyrillic", "аpple", LevelMinimallyRestrictive, true},
		{"cyrillic greek latin", "раγpal", LevelMinimallyRestrictive, true},
		{"outside allowed set", "😀", LevelUnrestrictive, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Check(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.level, LevelOf(res), "level for %q", tt.input)
			assert.Equal(t, tt.failed, Failed(res), "failed for %q (%#x)", tt.input, res)
		})
	}
}

func TestCheck_NoAuxInfoOmitsLevel(t *testing.T) {
	c, err := Open()
	require.NoError(t, err)
	res, err := c.Check("example")
	require.NoError(t, err)
	assert.Zero(t, res&RestrictionLevelMask)
}

func TestCheck_CharLimit(t *testing.T) {
	c := newTestChecker(t)
	for _, s := range []string{"😀", "☃", "a☃b"} {
		res, err := c.Check(s)
		require.NoError(t, err)
		assert.NotZerof(t, Checks(res)&CheckCharLimit, "expected char limit failure for %q", s)
	}
}

func TestCheck_MixedNumbers(t *testing.T) {
	c := newTestChecker(t)

	res, err := c.Check("१२3")
	require.NoError(t, err)
	assert.NotZero(t, Checks(res)&CheckMixedNumbers)

	res, err = c.Check("१२३")
	require.NoError(t, err)
	assert.Zero(t, Checks(res)&CheckMixedNumbers)

	res, err = c.Check("a123")
	require.NoError(t, err)
	assert.Zero(t, Checks(res)&CheckMixedNumbers)
}

func TestCheck_InvisibleRepeatedMark(t *testing.T) {
	c := newTestChecker(t)

	res, err := c.Check("á́b")
	require.NoError(t, err)
	assert.NotZero(t, Checks(res)&CheckInvisible)

	res, err = c.Check("áb́")
	require.NoError(t, err)
	assert.Zero(t, Checks(res)&CheckInvisible)

	// NFD of U+00E1 already carries U+0301.
	res, err = c.Check("á́")
	require.NoError(t, err)
	assert.NotZero(t, Checks(res)&CheckInvisible)
}

func TestCheck_HiddenOverlay(t *testing.T) {
	c := newTestChecker(t)

	res, err := c.Check("i̇x")
	require.NoError(t, err)
	assert.NotZero(t, Checks(res)&CheckHiddenOverlay)

	res, err = c.Check("ȧx")
	require.NoError(t, err)
	assert.Zero(t, Checks(res)&CheckHiddenOverlay)
}

func TestCheck_DisabledChecksDoNotFire(t *testing.T) {
	c := newTestChecker(t)
	require.NoError(t, c.SetChecks(AuxInfo))
	res, err := c.Check("аpple")
	require.NoError(t, err)
	assert.False(t, Failed(res))
	assert.Equal(t, LevelMinimallyRestrictive, LevelOf(res))
}

func TestRestrictionLevel_String(t *testing.T) {
	assert.Equal(t, "single-script-restrictive", LevelSingleScriptRestrictive.String())
	assert.Equal(t, "highly-restrictive", LevelHighlyRestrictive.String())
	assert.Contains(t, RestrictionLevel(7).String(), "RestrictionLevel(")
}

func TestIdentifierSets(t *testing.T) {
	rec := RecommendedSet()
	assert.Same(t, rec, RecommendedSet())
	for _, r := range []rune{'a', 'ß', 'þ', 'ə', 'í', 'а', 'γ', '你', 'ひ', 'カ', 'ー', 'კ', 'أ', '0', '9'} {
		assert.Truef(t, rec.Contains(r), "expected %U recommended", r)
	}
	for _, r := range []rune{'😀', '☃', '·', '-', '.'} {
		assert.Falsef(t, rec.Contains(r), "expected %U not recommended", r)
	}
	// Technical and uncommon-use letters of recommended scripts.
	for _, r := range []rune{0x0261, 0x01C0, 0x1D00, 0x0251, 0x0269, 0x2C65, 0xAB30} {
		assert.Falsef(t, rec.Contains(r), "expected %U not recommended", r)
	}

	inc := InclusionSet()
	for _, r := range []rune{'-', '·', 0x2010, 0x2019, 0x30FB} {
		assert.Truef(t, inc.Contains(r), "expected %U in inclusion set", r)
	}
	for _, r := range []rune{'a', 0x200C, 0x200D, 0x0261} {
		assert.Falsef(t, inc.Contains(r), "expected %U not in inclusion set", r)
	}
	assert.Equal(t, "15.0.0", SecurityDataVersion)
}
