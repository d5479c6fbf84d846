package pcomb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func digitParser() Parser[rune, rune] {
	return Token(isDigit, func(pos Position, found *rune) error {
		return NewExpectError(pos, "digit", foundAny(found), found != nil)
	})
}

func foundAny(found *rune) any {
	if found == nil {
		return nil
	}
	return *found
}

func TestAlwaysNeverConsume(t *testing.T) {
	v, err := Run(Always[rune, string]("x"), []rune("abc"), nil)
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestNeverFails(t *testing.T) {
	wantErr := &UnknownError{Pos: NewPosition()}
	_, err := Run[rune, int](Never[rune, int](wantErr), []rune("abc"), nil)
	assert.Equal(t, wantErr, err)
}

func TestTokenConsumesOnMatch(t *testing.T) {
	v, err := Run(digitParser(), []rune("5x"), nil)
	require.NoError(t, err)
	assert.Equal(t, '5', v)
}

func TestTokenFailsOnMismatchWithoutConsuming(t *testing.T) {
	_, err := Run(digitParser(), []rune("x5"), nil)
	require.Error(t, err)
}

func TestTokenFailsOnEOF(t *testing.T) {
	_, err := Run(digitParser(), []rune(""), nil)
	require.Error(t, err)
}

func TestBindSequencesAndCommits(t *testing.T) {
	p := Bind(digitParser(), func(d rune) Parser[rune, string] {
		return Bind(digitParser(), func(d2 rune) Parser[rune, string] {
			return Always[rune, string](string([]rune{d, d2}))
		})
	})
	v, err := Run(p, []rune("12"), nil)
	require.NoError(t, err)
	assert.Equal(t, "12", v)

	_, err = Run(p, []rune("1x"), nil)
	require.Error(t, err, "once the first digit consumed, a failed second digit must be a committed failure")
}

func TestAttemptUndoesCommit(t *testing.T) {
	p := Attempt(Bind(digitParser(), func(rune) Parser[rune, string] {
		return Bind(digitParser(), func(rune) Parser[rune, string] {
			return Always[rune, string]("two digits")
		})
	}))
	fallback := Always[rune, string]("fallback")
	v, err := Run(Either(p, fallback), []rune("1x"), nil)
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)
}

func TestLookaheadDoesNotConsume(t *testing.T) {
	p := Bind(Lookahead(digitParser()), func(rune) Parser[rune, rune] {
		return digitParser()
	})
	v, err := Run(p, []rune("7"), nil)
	require.NoError(t, err)
	assert.Equal(t, '7', v)
}

func TestEitherTriesSecondOnlyOnEmptyFailure(t *testing.T) {
	p := Either(digitParser(), Always[rune, rune]('?'))
	v, err := Run(p, []rune("x"), nil)
	require.NoError(t, err)
	assert.Equal(t, '?', v)
}

func TestEitherDoesNotTrySecondAfterConsuming(t *testing.T) {
	p := Either(
		Bind(digitParser(), func(rune) Parser[rune, rune] { return digitParser() }),
		Always[rune, rune]('?'),
	)
	_, err := Run(p, []rune("1x"), nil)
	require.Error(t, err, "p consumed one digit before failing, so q must never run")
}

func TestChoiceLeftmostWins(t *testing.T) {
	// Digit-based analogue of spec.md scenario S7: choice(one digit,
	// two digits) over "99" succeeds with the first, shortest
	// alternative.
	one := Bind(digitParser(), func(d rune) Parser[rune, string] { return Always[rune, string](string(d)) })
	two := Bind(digitParser(), func(d1 rune) Parser[rune, string] {
		return Bind(digitParser(), func(d2 rune) Parser[rune, string] {
			return Always[rune, string](string([]rune{d1, d2}))
		})
	})
	v, err := Run(Choice(one, two), []rune("99"), nil)
	require.NoError(t, err)
	assert.Equal(t, "9", v)
}

func TestChoiceNoAlternativesPanics(t *testing.T) {
	assert.Panics(t, func() {
		Choice[rune, rune]()
	})
}

func TestOptionalYieldsZeroValueOnFailure(t *testing.T) {
	v, err := Run(Optional(digitParser()), []rune("x"), nil)
	require.NoError(t, err)
	assert.Equal(t, rune(0), v)
}

func TestEofSucceedsOnlyAtEnd(t *testing.T) {
	_, err := Run(Eof[rune](), []rune(""), nil)
	require.NoError(t, err)

	_, err = Run(Eof[rune](), []rune("x"), nil)
	require.Error(t, err)
}

func TestSetInputRoutesThroughParserState(t *testing.T) {
	p := Bind(SetInput[rune](StreamFromString("zz")), func(s ParserState[rune]) Parser[rune, rune] {
		return digitParser()
	})
	// replacing the input with non-digit text should make the
	// following digitParser fail, proving SetInput actually swapped
	// what subsequent parsers read from.
	_, err := Run(p, []rune("1"), nil)
	require.Error(t, err)
}

func TestModifyStateThreadsUserValue(t *testing.T) {
	p := Bind(ModifyState[rune](func(u any) any { return u.(int) + 1 }), func(ParserState[rune]) Parser[rune, any] {
		return GetState[rune]()
	})
	v, err := Run(p, []rune(""), 41)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}
