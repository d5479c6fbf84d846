package pcomb

// Position is a monotonic cursor index into the input stream. The
// zero value is the initial position of any parse.
type Position struct {
	Index int
}

// NewPosition returns the initial position, index 0.
func NewPosition() Position { return Position{} }

// Increment advances the position by one token. tok is accepted but
// unused by this implementation, matching spec.md §3's note that it
// is "passed for future extensibility (column/line tracking)" — a
// Token-aware Position (e.g. one that tracks newlines for rune
// streams) can be swapped in without touching the combinators that
// call Increment.
func (p Position) Increment(tok any) Position {
	return Position{Index: p.Index + 1}
}

// Less reports whether p sorts before other under the position's
// total order.
func (p Position) Less(other Position) bool { return p.Index < other.Index }

// Equal reports positional equality.
func (p Position) Equal(other Position) bool { return p.Index == other.Index }

// nextSlot caches the single successor of a ParserState so that
// repeated calls to Next for the same logical state return the same
// ParserState value — cheap identity for memo key comparisons, per
// spec.md §3.
type nextSlot[T any] struct {
	has    bool
	result ParserState[T]
}

// ParserState is the immutable triple (input, position, userState)
// threaded through every parser call. Every transition produces a new
// value; nothing here is mutated in place except the private next-
// state cache, which exists purely as a memoization of a pure
// function and is invisible to callers.
type ParserState[T any] struct {
	Input     Stream[T]
	Position  Position
	UserState any

	next *nextSlot[T]
}

// NewParserState builds the initial state for a parse over input,
// seeded with userState (nil if the grammar doesn't use one).
func NewParserState[T any](input Stream[T], userState any) ParserState[T] {
	return ParserState[T]{
		Input:     input,
		Position:  NewPosition(),
		UserState: userState,
		next:      &nextSlot[T]{},
	}
}

// Next returns the state reached by consuming tok. Calling Next twice
// on the same ParserState value returns the identical successor
// object both times (same Position, same cache pointer lineage),
// which is what lets the memo table use plain position equality as a
// correctness-preserving shortcut instead of needing true state
// identity.
func (s ParserState[T]) Next(tok T) ParserState[T] {
	if s.next.has {
		return s.next.result
	}
	successor := ParserState[T]{
		Input:     s.Input.Rest(),
		Position:  s.Position.Increment(tok),
		UserState: s.UserState,
		next:      &nextSlot[T]{},
	}
	s.next.has = true
	s.next.result = successor
	return successor
}

// WithUserState returns a copy of s with a different user value. Used
// by SetState/ModifyState (parser.go); it does not touch Position or
// Input, matching the "modifyState vs modifyParserState asymmetry"
// called out in spec.md §9.
func (s ParserState[T]) WithUserState(u any) ParserState[T] {
	return ParserState[T]{Input: s.Input, Position: s.Position, UserState: u, next: &nextSlot[T]{}}
}

// WithPosition returns a copy of s at a different position, input
// unchanged. Used by SetPosition.
func (s ParserState[T]) WithPosition(pos Position) ParserState[T] {
	return ParserState[T]{Input: s.Input, Position: pos, UserState: s.UserState, next: &nextSlot[T]{}}
}

// WithInput returns a copy of s reading from a different stream,
// position and user state unchanged. Used by SetInput, which spec.md
// §9 flags as routed through modifyState in the original source —
// this implementation routes it through modifyParserState instead
// (see modifyParserState in parser.go), the bug-fix option.
func (s ParserState[T]) WithInput(input Stream[T]) ParserState[T] {
	return ParserState[T]{Input: input, Position: s.Position, UserState: s.UserState, next: &nextSlot[T]{}}
}

// Equal reports state equality by position only, per spec.md §3:
// "input tails are expected to be consistent with position; user
// state is not part of identity."
func (s ParserState[T]) Equal(other ParserState[T]) bool {
	return s.Position.Equal(other.Position)
}
