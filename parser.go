package pcomb

// Parser is the opaque combinator value of spec.md §3: a displayName
// for diagnostics, a parserId stable across calls (required for memo
// keying), and a continuation-passing body. T is the input token
// type, V the value this parser produces on success.
type Parser[T, V any] struct {
	name string
	id   uint64
	body Body[T, V]
}

// Name returns the parser's diagnostic display name.
func (p Parser[T, V]) Name() string { return p.name }

// ID returns the parser's stable identity, used as a memo key.
func (p Parser[T, V]) ID() uint64 { return p.id }

// New wraps body as a named Parser with a fresh id. Wrapping an
// already-wrapped parser (memo_combinators.go's Memo, Backtrack) always goes
// through New again, so the wrapper gets its own id/name and is never
// mistaken for its inner parser by the memo table, per spec.md §3.
func New[T, V any](name string, body Body[T, V]) Parser[T, V] {
	return Parser[T, V]{name: name, id: nextParserID(), body: body}
}

// RecParser names a parser built by Rec; see rec.go.
func RecParser[T, V any](name string, define func(Parser[T, V]) Parser[T, V]) Parser[T, V] {
	return New[T, V](name, Rec(define))
}

// Always never consumes and always succeeds with x: spec.md §4.3.
func Always[T, V any](x V) Parser[T, V] {
	return New[T, V]("always", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		return eok(x, state, memo)
	})
}

// Never never consumes and always fails with err.
func Never[T, V any](err error) Parser[T, V] {
	return New[T, V]("never", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		return eerr(err, state, memo)
	})
}

// Bind sequences p and, on success, f(value) to build the next
// parser to run. Consumption composes: once p has consumed, the rest
// of the sequence is committed too, so q's eok/eerr outcomes are
// reported to the caller through cok/cerr instead of eok/eerr
// (spec.md §4.3). Failures of p propagate untouched — ErrCont doesn't
// depend on V, so no rewiring is needed there at all.
func Bind[T, A, B any](p Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	return New[T, B]("bind", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, B], cerr ErrCont[T], eok Cont[T, B], eerr ErrCont[T]) Thunk {
		pcok := func(v A, s ParserState[T], m *MemoChain[T]) Thunk {
			return bounce(func() Thunk {
				q := f(v)
				return q.body(s, m, cok, cerr, cok, cerr)
			})
		}
		peok := func(v A, s ParserState[T], m *MemoChain[T]) Thunk {
			return bounce(func() Thunk {
				q := f(v)
				return q.body(s, m, cok, cerr, eok, eerr)
			})
		}
		return bounce(func() Thunk { return p.body(state, memo, pcok, cerr, peok, eerr) })
	})
}

// Token is the core's single input-consuming primitive (spec.md
// §4.3). On empty input it invokes eerr(errFn(pos, nil)) without
// consuming; otherwise it peeks the next token and invokes cok on a
// predicate match or eerr (input left untouched) otherwise.
func Token[T any](pred func(T) bool, errFn func(pos Position, found *T) error) Parser[T, T] {
	return New[T, T]("token", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, T], cerr ErrCont[T], eok Cont[T, T], eerr ErrCont[T]) Thunk {
		if state.Input.IsEmpty() {
			return eerr(errFn(state.Position, nil), state, memo)
		}
		tok := state.Input.First()
		if pred(tok) {
			return cok(tok, state.Next(tok), memo)
		}
		found := tok
		return eerr(errFn(state.Position, &found), state, memo)
	})
}

// AnyToken matches and returns any single token, failing only on EOF.
func AnyToken[T any]() Parser[T, T] {
	return Token[T](func(T) bool { return true }, func(pos Position, found *T) error {
		return &UnexpectError{Pos: pos, Found: "EOF"}
	})
}

// Attempt runs p with its cerr rewired to eerr at the original state:
// a p that consumes then fails becomes "failed without consuming",
// making it eligible for the other side of an Either. The memo
// reported is the one p produced — memo entries accumulated during
// the attempt are pure and survive (spec.md §4.3).
func Attempt[T, V any](p Parser[T, V]) Parser[T, V] {
	return New[T, V]("attempt", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		rewired := func(err error, s ParserState[T], m *MemoChain[T]) Thunk {
			return bounce(func() Thunk { return eerr(err, state, m) })
		}
		return bounce(func() Thunk { return p.body(state, memo, cok, rewired, eok, eerr) })
	})
}

// Lookahead runs p; on any success it reports the pre-call state
// instead of whatever state p reached, so the input is not consumed.
// Errors propagate unchanged (spec.md §4.3).
func Lookahead[T, V any](p Parser[T, V]) Parser[T, V] {
	return New[T, V]("lookahead", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		wrapCok := func(v V, s ParserState[T], m *MemoChain[T]) Thunk {
			return bounce(func() Thunk { return cok(v, state, m) })
		}
		wrapEok := func(v V, s ParserState[T], m *MemoChain[T]) Thunk {
			return bounce(func() Thunk { return eok(v, state, m) })
		}
		return bounce(func() Thunk { return p.body(state, memo, wrapCok, cerr, wrapEok, eerr) })
	})
}

// Either runs p; only on p's eerr does it try q at the original
// state. Every other outcome of p propagates untouched — once p has
// consumed input, the default commitment rule means q is never
// considered (spec.md §4.1, §4.3). If q also fails empty, the two
// errors are merged into a MultipleError. q runs with the memo p's
// eerr returned, so memoized work from the failed alternative is
// still visible to q (spec.md §9, intentional).
func Either[T, V any](p, q Parser[T, V]) Parser[T, V] {
	return New[T, V]("either", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		pEerr := func(errP error, s ParserState[T], mFromP *MemoChain[T]) Thunk {
			return bounce(func() Thunk {
				qEerr := func(errQ error, s2 ParserState[T], mFromQ *MemoChain[T]) Thunk {
					return bounce(func() Thunk {
						return eerr(NewMultipleError(state.Position, []error{errP, errQ}), state, mFromQ)
					})
				}
				return q.body(state, mFromP, cok, cerr, eok, qEerr)
			})
		}
		return bounce(func() Thunk { return p.body(state, memo, cok, cerr, eok, pEerr) })
	})
}

// Choice right-folds Either over alternatives using ChoiceError as
// the lazy error combiner, seeded with a parser that always fails
// with an empty Multiple. Calling Choice with zero alternatives is a
// grammar defect, raised immediately (spec.md §4.3, §7).
func Choice[T, V any](ps ...Parser[T, V]) Parser[T, V] {
	if len(ps) == 0 {
		throwParserError("choice: called with no alternatives")
	}
	return choiceFold(ps)
}

func choiceFold[T, V any](ps []Parser[T, V]) Parser[T, V] {
	if len(ps) == 0 {
		return New[T, V]("choice-seed", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
			return eerr(NewMultipleError(state.Position, []error{}), state, memo)
		})
	}
	return choiceEither(ps[0], choiceFold(ps[1:]))
}

// choiceEither is Either specialized to merge errors as a lazy
// ChoiceError instead of a flattened MultipleError, so an N-way
// Choice builds its failure in O(N) rather than O(N^2).
func choiceEither[T, V any](p, q Parser[T, V]) Parser[T, V] {
	return New[T, V]("choice", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		pEerr := func(errP error, s ParserState[T], mFromP *MemoChain[T]) Thunk {
			return bounce(func() Thunk {
				qEerr := func(errQ error, s2 ParserState[T], mFromQ *MemoChain[T]) Thunk {
					return bounce(func() Thunk {
						tail, ok := errQ.(*MultipleError)
						if !ok {
							tail = NewMultipleError(state.Position, []error{errQ})
						}
						return eerr(NewChoiceError(state.Position, errP, tail), state, mFromQ)
					})
				}
				return q.body(state, mFromP, cok, cerr, eok, qEerr)
			})
		}
		return bounce(func() Thunk { return p.body(state, memo, cok, cerr, eok, pEerr) })
	})
}

// Optional is Choice(p, Always(zero)): p if it matches, otherwise the
// empty success zero-value without consuming.
func Optional[T, V any](p Parser[T, V]) Parser[T, V] {
	var zero V
	return Either(p, Always[T, V](zero))
}

// Expected wraps p, replacing any eerr error with Expect(pos, label)
// — spec.md §4.3's expected.
func Expected[T, V any](label string, p Parser[T, V]) Parser[T, V] {
	return New[T, V]("expected", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		wrapEerr := func(err error, s ParserState[T], m *MemoChain[T]) Thunk {
			return bounce(func() Thunk { return eerr(NewExpectError(s.Position, label, nil, false), s, m) })
		}
		return bounce(func() Thunk { return p.body(state, memo, cok, cerr, eok, wrapEerr) })
	})
}

// Fail gets the current position and fails (without consuming) with
// either ParseError(pos, msg) or Unknown(pos) when msg is empty.
func Fail[T, V any](msg string) Parser[T, V] {
	return New[T, V]("fail", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		if msg == "" {
			return eerr(&UnknownError{Pos: state.Position}, state, memo)
		}
		return eerr(NewExpectError(state.Position, msg, nil, false), state, memo)
	})
}

// eofValue is returned by Eof on success: a unique sentinel distinct
// from any real token.
type eofValue struct{}

// EofValue is the stream-end sentinel value Eof succeeds with.
var EofValue = eofValue{}

// Eof succeeds with EofValue iff the input is exhausted; otherwise it
// fails without consuming.
func Eof[T any]() Parser[T, eofValue] {
	return New[T, eofValue]("eof", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, eofValue], cerr ErrCont[T], eok Cont[T, eofValue], eerr ErrCont[T]) Thunk {
		if state.Input.IsEmpty() {
			return eok(EofValue, state, memo)
		}
		found := state.Input.First()
		return eerr(NewExpectError(state.Position, "end of input", found, true), state, memo)
	})
}

// extract builds a zero-consumption parser that reports f(state)
// through eok without altering the state at all — the shared shape
// behind GetPosition, GetState, GetInput and GetParserState.
func extract[T, V any](f func(ParserState[T]) V) Parser[T, V] {
	return New[T, V]("extract", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		return eok(f(state), state, memo)
	})
}

// modifyParserState builds a zero-consumption parser that replaces
// the state with f(state) and reports the *new* state as its result
// value — the shared shape behind SetPosition, SetInput,
// ModifyState and SetParserState. Per spec.md §9, this is
// deliberately asymmetric with extract: state-setting parsers report
// the new state as their value, extract reports a value without
// changing state. Preserve this; user code composing with Bind
// depends on it.
func modifyParserState[T any](f func(ParserState[T]) ParserState[T]) Parser[T, ParserState[T]] {
	return New[T, ParserState[T]]("modifyParserState", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, ParserState[T]], cerr ErrCont[T], eok Cont[T, ParserState[T]], eerr ErrCont[T]) Thunk {
		next := f(state)
		return eok(next, next, memo)
	})
}

// GetParserState reports the current ParserState without altering it.
func GetParserState[T any]() Parser[T, ParserState[T]] {
	return extract(func(s ParserState[T]) ParserState[T] { return s })
}

// SetParserState replaces the state outright with s.
func SetParserState[T any](s ParserState[T]) Parser[T, ParserState[T]] {
	return modifyParserState(func(ParserState[T]) ParserState[T] { return s })
}

// GetPosition reports the current position.
func GetPosition[T any]() Parser[T, Position] {
	return extract(func(s ParserState[T]) Position { return s.Position })
}

// SetPosition relocates the cursor to pos, leaving input and user
// state alone.
func SetPosition[T any](pos Position) Parser[T, ParserState[T]] {
	return modifyParserState(func(s ParserState[T]) ParserState[T] { return s.WithPosition(pos) })
}

// GetState reports the current user state value.
func GetState[T any]() Parser[T, any] {
	return extract(func(s ParserState[T]) any { return s.UserState })
}

// SetState replaces the user state value with u.
func SetState[T any](u any) Parser[T, ParserState[T]] {
	return modifyParserState(func(s ParserState[T]) ParserState[T] { return s.WithUserState(u) })
}

// ModifyState replaces the user state value with f(current).
func ModifyState[T any](f func(any) any) Parser[T, ParserState[T]] {
	return modifyParserState(func(s ParserState[T]) ParserState[T] { return s.WithUserState(f(s.UserState)) })
}

// GetInput reports the current input stream.
func GetInput[T any]() Parser[T, Stream[T]] {
	return extract(func(s ParserState[T]) Stream[T] { return s.Input })
}

// SetInput replaces the input stream with in. Routed through
// modifyParserState rather than modifyState: spec.md §9 flags the
// original's routing through the user-state setter as a likely
// source bug, and this implementation takes the fix.
func SetInput[T any](in Stream[T]) Parser[T, ParserState[T]] {
	return modifyParserState(func(s ParserState[T]) ParserState[T] { return s.WithInput(in) })
}
