package pcomb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectErrorFormatting(t *testing.T) {
	e := NewExpectError(Position{Index: 3}, "digit", nil, false)
	assert.Equal(t, "expected digit at 3", e.Error())

	e2 := NewExpectError(Position{Index: 3}, "digit", 'x', true)
	assert.Equal(t, "expected digit but found 120 at 3", e2.Error())
}

func TestChoiceErrorFlattensLazily(t *testing.T) {
	pos := Position{Index: 1}
	tail := NewMultipleError(pos, []error{&UnknownError{Pos: pos}, &UnknownError{Pos: pos}})
	ce := NewChoiceError(pos, &UnexpectError{Pos: pos, Found: "x"}, tail)

	errs := ce.Errors()
	require.Len(t, errs, 3)

	opts := cmp.Options{}
	if diff := cmp.Diff(errs[1], errs[2], opts); diff != "" {
		t.Errorf("tail errors should be equal ordering-wise: %s", diff)
	}
}

func TestParserErrorIsFatalAndPanics(t *testing.T) {
	assert.PanicsWithValue(t, ParserError{Message: "boom: 1"}, func() {
		throwParserError("boom: %d", 1)
	})
}
