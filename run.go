package pcomb

// Run parses input with p and returns its value, or the ParseError it
// failed with. It builds the initial ParserState from input via
// StreamFromSlice, seeds an empty memo chain, and drives the whole
// thing through the trampoline (spec.md §4.7).
func Run[T, V any](p Parser[T, V], input []T, userState any) (V, error) {
	return RunStream(p, StreamFromSlice(input), userState)
}

// RunStream is Run without the array-to-stream conversion, for
// callers that already have a Stream[T].
func RunStream[T, V any](p Parser[T, V], input Stream[T], userState any) (V, error) {
	return RunState(p, NewParserState(input, userState))
}

// RunState is Run without building an initial state at all — the
// caller supplies one directly, e.g. to resume a RunMany sequence.
func RunState[T, V any](p Parser[T, V], state ParserState[T]) (V, error) {
	var (
		value V
		err   error
	)
	Perform(p, state, func(v V, _ ParserState[T]) { value = v }, func(e error, _ ParserState[T]) { err = e })
	return value, err
}

// Perform is the callback-style entry point: no raising, the result
// is reported to onOk or onErr as appropriate (spec.md §4.7). The
// terminal continuations each return a thunk that performs the
// callback and then returns nil, stopping the trampoline.
func Perform[T, V any](p Parser[T, V], state ParserState[T], onOk func(V, ParserState[T]), onErr func(error, ParserState[T])) {
	memo := NewMemoChain[T]()

	terminalOk := func(v V, s ParserState[T], _ *MemoChain[T]) Thunk {
		return func() Thunk { onOk(v, s); return nil }
	}
	terminalErr := func(e error, s ParserState[T], _ *MemoChain[T]) Thunk {
		return func() Thunk { onErr(e, s); return nil }
	}

	runTrampoline(p.body(state, memo, terminalOk, terminalErr, terminalOk, terminalErr))
}

// Test reports whether p matches input at all, discarding both the
// value and the error.
func Test[T, V any](p Parser[T, V], input []T, userState any) bool {
	return TestStream(p, StreamFromSlice(input), userState)
}

// TestStream is Test over an existing Stream[T].
func TestStream[T, V any](p Parser[T, V], input Stream[T], userState any) bool {
	return TestState(p, NewParserState(input, userState))
}

// TestState is Test over an existing ParserState[T].
func TestState[T, V any](p Parser[T, V], state ParserState[T]) bool {
	ok := false
	Perform(p, state, func(V, ParserState[T]) { ok = true }, func(error, ParserState[T]) { ok = false })
	return ok
}

// ManyResult is one element of the lazy sequence RunMany produces:
// either a successful value or the error the next attempt failed
// with, plus the state the underlying run left off at.
type ManyResult[T, V any] struct {
	Value V
	Err   error
	State ParserState[T]
}

// Ok reports whether this result is a successful parse.
func (r ManyResult[T, V]) Ok() bool { return r.Err == nil }

// RunMany builds a lazy stream whose first element is the result of
// running p once against input, and whose rest resumes parsing p from
// the state that attempt reached — letting a caller consume an
// unbounded sequence of p-shaped values without ever materializing
// the whole thing (spec.md §4.7).
func RunMany[T, V any](p Parser[T, V], input []T, userState any) Stream[ManyResult[T, V]] {
	return RunManyStream(p, StreamFromSlice(input), userState)
}

// RunManyStream is RunMany over an existing Stream[T].
func RunManyStream[T, V any](p Parser[T, V], input Stream[T], userState any) Stream[ManyResult[T, V]] {
	return RunManyState(p, NewParserState(input, userState))
}

// RunManyState is RunMany over an existing ParserState[T].
func RunManyState[T, V any](p Parser[T, V], state ParserState[T]) Stream[ManyResult[T, V]] {
	var result ManyResult[T, V]
	Perform(p, state,
		func(v V, s ParserState[T]) { result = ManyResult[T, V]{Value: v, State: s} },
		func(e error, s ParserState[T]) { result = ManyResult[T, V]{Err: e, State: s} },
	)
	if !result.Ok() {
		return consStream(result, End[ManyResult[T, V]]())
	}
	return MemoStream(result, func() Stream[ManyResult[T, V]] { return RunManyState(p, result.State) })
}
