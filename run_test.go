package pcomb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestHelper(t *testing.T) {
	assert.True(t, Test(digitParser(), []rune("5"), nil))
	assert.False(t, Test(digitParser(), []rune("x"), nil))
}

func TestRunManyLazilyResumes(t *testing.T) {
	s := RunMany(digitParser(), []rune("12x"), nil)

	require.False(t, s.IsEmpty())
	first := s.First()
	require.True(t, first.Ok())
	assert.Equal(t, '1', first.Value)

	s = s.Rest()
	second := s.First()
	require.True(t, second.Ok())
	assert.Equal(t, '2', second.Value)

	s = s.Rest()
	third := s.First()
	assert.False(t, third.Ok())

	s = s.Rest()
	assert.True(t, s.IsEmpty(), "RunMany stops at the first failing attempt")
}

func TestRunRec(t *testing.T) {
	// a parenthesized digit, arbitrarily nested: (((5)))
	parser := RecParser[rune, rune]("paren-digit", func(self Parser[rune, rune]) Parser[rune, rune] {
		nested := Bind(testChar('('), func(rune) Parser[rune, rune] {
			return Bind(self, func(v rune) Parser[rune, rune] {
				return Bind(testChar(')'), func(rune) Parser[rune, rune] {
					return Always[rune, rune](v)
				})
			})
		})
		return Either(nested, digitParser())
	})

	v, err := Run(parser, []rune("(((5)))"), nil)
	require.NoError(t, err)
	assert.Equal(t, '5', v)
}

func testChar(r rune) Parser[rune, rune] {
	return Token(func(tok rune) bool { return tok == r }, func(pos Position, found *rune) error {
		return NewExpectError(pos, string(r), foundAny(found), found != nil)
	})
}
