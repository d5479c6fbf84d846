package pcomb

import (
	"fmt"
	"strings"
)

// ParseError is the interface satisfied by every member of the parse
// error taxonomy (spec.md §3, §7). It extends error with a Position
// accessor so callers can report where a parse failed without type
// switching on every variant.
type ParseError interface {
	error
	Position() Position
}

// UnknownError is the least informative failure: something went
// wrong at pos, no further detail available.
type UnknownError struct {
	Pos Position
}

func (e *UnknownError) Position() Position { return e.Pos }
func (e *UnknownError) Error() string       { return fmt.Sprintf("parse error at %d", e.Pos.Index) }

// UnexpectError reports an unwanted token was found at pos.
type UnexpectError struct {
	Pos   Position
	Found any
}

func (e *UnexpectError) Position() Position { return e.Pos }
func (e *UnexpectError) Error() string {
	return fmt.Sprintf("unexpected %v at %d", e.Found, e.Pos.Index)
}

// ExpectError reports that expected was wanted at pos, optionally
// alongside what was actually found. Found is an any rather than a
// typed Token because ParseError (unlike Parser[T, V]) is not generic
// over the token type — a single error hierarchy must serve every
// token type a grammar mixes together.
type ExpectError struct {
	Pos      Position
	Expected string
	Found    any
	hasFound bool
}

func NewExpectError(pos Position, expected string, found any, hasFound bool) *ExpectError {
	return &ExpectError{Pos: pos, Expected: expected, Found: found, hasFound: hasFound}
}

func (e *ExpectError) Position() Position { return e.Pos }

// Error formats lazily: the string is only built when requested,
// matching spec.md §7 ("error message formatting is lazy via property
// getters so unused branches pay nothing").
func (e *ExpectError) Error() string {
	if !e.hasFound {
		return fmt.Sprintf("expected %s at %d", e.Expected, e.Pos.Index)
	}
	return fmt.Sprintf("expected %s but found %v at %d", e.Expected, e.Found, e.Pos.Index)
}

// MultipleError is a generic union of errors produced at the same
// position, e.g. by Either when both alternatives fail.
type MultipleError struct {
	Pos    Position
	Errs   []error
}

func NewMultipleError(pos Position, errs []error) *MultipleError {
	return &MultipleError{Pos: pos, Errs: errs}
}

func (e *MultipleError) Position() Position { return e.Pos }

func (e *MultipleError) Error() string {
	parts := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("at %d: %s", e.Pos.Index, strings.Join(parts, " OR "))
}

// ChoiceError is MultipleError's lazy cousin: it holds head and tail
// separately, so building one never copies tail's slice, and a chain
// of N Choice alternatives builds an error in O(N) instead of O(N^2).
// spec.md §4.3: "used internally by choice to avoid quadratic list
// construction."
type ChoiceError struct {
	Pos  Position
	Head error
	Tail *MultipleError
}

func NewChoiceError(pos Position, head error, tail *MultipleError) *ChoiceError {
	return &ChoiceError{Pos: pos, Head: head, Tail: tail}
}

func (e *ChoiceError) Position() Position { return e.Pos }

// Errors builds Head followed by Tail's errors on demand. Choice nests
// one ChoiceError per alternative, so a ChoiceError that sits inside
// Tail comes back as a single element; it is not expanded.
func (e *ChoiceError) Errors() []error {
	out := make([]error, 0, 1+len(e.Tail.Errs))
	out = append(out, e.Head)
	out = append(out, e.Tail.Errs...)
	return out
}

func (e *ChoiceError) Error() string {
	errs := e.Errors()
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("at %d: %s", e.Pos.Index, strings.Join(parts, " OR "))
}

// ParserError signals a defect in the grammar itself, not a parse
// failure: Choice() called with no alternatives, or Many applied to a
// parser that can succeed without consuming. It is fatal and, per
// spec.md §7, is never caught by a combinator — it is raised with
// panic and propagates straight out of the trampoline. Run and its
// siblings (run.go) do not recover it; a caller that wants it as a
// value must recover() itself.
type ParserError struct {
	Message string
}

func (e ParserError) Error() string { return e.Message }

// throwParserError panics with a ParserError, the sanctioned way to
// signal a grammar defect from anywhere in the engine.
func throwParserError(format string, args ...any) {
	panic(ParserError{Message: fmt.Sprintf(format, args...)})
}
