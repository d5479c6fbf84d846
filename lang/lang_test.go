package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarete/pcomb"
	"github.com/clarete/pcomb/chars"
)

func TestTimes(t *testing.T) {
	v, err := pcomb.Run(Times(chars.Digit(), 3), []rune("123x"), nil)
	require.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3'}, v)

	_, err = pcomb.Run(Times(chars.Digit(), 3), []rune("12x"), nil)
	require.Error(t, err)
}

func TestBetween(t *testing.T) {
	p := Between(chars.Character('('), chars.Digit(), chars.Character(')'))
	v, err := pcomb.Run(p, []rune("(5)"), nil)
	require.NoError(t, err)
	assert.Equal(t, '5', v)
}

func TestSepBy(t *testing.T) {
	p := SepBy(chars.Character(','), chars.Digit())
	v, err := pcomb.Run(p, []rune("1,2,3"), nil)
	require.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3'}, v)

	v, err = pcomb.Run(p, []rune(""), nil)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSepBy1RequiresOne(t *testing.T) {
	_, err := pcomb.Run(SepBy1(chars.Character(','), chars.Digit()), []rune(""), nil)
	require.Error(t, err)
}

// spec.md scenario S3: sepEndBy(char(','), char('a')) over "a,a," must
// succeed with ["a","a"] — both separated and terminated uses of the
// separator are accepted.
func TestSepEndByAllowsTrailingSeparator(t *testing.T) {
	v, err := pcomb.Run(SepEndBy(chars.Character(','), chars.Character('a')), []rune("a,a,"), nil)
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'a'}, v)
}

func TestSepEndByOnEmptyInputSucceedsEmpty(t *testing.T) {
	v, err := pcomb.Run(SepEndBy(chars.Character(','), chars.Character('a')), []rune(""), nil)
	require.NoError(t, err)
	assert.Empty(t, v)
}

// spec.md scenario S5: sepEndBy1 over empty input fails — unlike
// SepEndBy, at least one element is mandatory.
func TestSepEndBy1OnEmptyInputFails(t *testing.T) {
	_, err := pcomb.Run(SepEndBy1(chars.Character(','), chars.Character('a')), []rune(""), nil)
	require.Error(t, err)
}

func TestEndByRequiresTrailingSeparator(t *testing.T) {
	v, err := pcomb.Run(EndBy(chars.Character(';'), chars.Digit()), []rune("1;2;"), nil)
	require.NoError(t, err)
	assert.Equal(t, []rune{'1', '2'}, v)

	_, err = pcomb.Run(EndBy1(chars.Character(';'), chars.Digit()), []rune("1;2"), nil)
	require.Error(t, err, "the final element has no trailing separator")
}

func digitValue(r rune) int { return int(r - '0') }

func digitInt() pcomb.Parser[rune, int] {
	return pcomb.Bind(chars.Digit(), func(r rune) pcomb.Parser[rune, int] {
		return pcomb.Always[rune, int](digitValue(r))
	})
}

func TestChainL1IsLeftAssociative(t *testing.T) {
	minus := pcomb.Bind(chars.Character('-'), func(rune) pcomb.Parser[rune, func(int, int) int] {
		return pcomb.Always[rune, func(int, int) int](func(a, b int) int { return a - b })
	})
	// (9-1)-2 = 6, not 9-(1-2) = 10
	v, err := pcomb.Run(ChainL1(digitInt(), minus), []rune("9-1-2"), nil)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestChainR1IsRightAssociative(t *testing.T) {
	minus := pcomb.Bind(chars.Character('-'), func(rune) pcomb.Parser[rune, func(int, int) int] {
		return pcomb.Always[rune, func(int, int) int](func(a, b int) int { return a - b })
	})
	// 9-(1-2) = 10
	v, err := pcomb.Run(ChainR1(digitInt(), minus), []rune("9-1-2"), nil)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestChainLDefaultsWhenPDoesNotMatch(t *testing.T) {
	plus := pcomb.Bind(chars.Character('+'), func(rune) pcomb.Parser[rune, func(int, int) int] {
		return pcomb.Always[rune, func(int, int) int](func(a, b int) int { return a + b })
	})
	v, err := pcomb.Run(ChainL(digitInt(), plus, -1), []rune("x"), nil)
	require.NoError(t, err)
	assert.Equal(t, -1, v)
}
