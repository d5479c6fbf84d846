package pcomb

// Backtrack runs p but rewires all four of its continuations to
// forward with the caller's original memo instead of the one p
// produced, discarding any memo entries accumulated inside p. Use it
// when a speculative branch should not pollute the memo chain visible
// to the rest of the parse (spec.md §4.6).
func Backtrack[T, V any](p Parser[T, V]) Parser[T, V] {
	return New[T, V]("backtrack", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		wrapCok := func(v V, s ParserState[T], _ *MemoChain[T]) Thunk {
			return bounce(func() Thunk { return cok(v, s, memo) })
		}
		wrapCerr := func(err error, s ParserState[T], _ *MemoChain[T]) Thunk {
			return bounce(func() Thunk { return cerr(err, s, memo) })
		}
		wrapEok := func(v V, s ParserState[T], _ *MemoChain[T]) Thunk {
			return bounce(func() Thunk { return eok(v, s, memo) })
		}
		wrapEerr := func(err error, s ParserState[T], _ *MemoChain[T]) Thunk {
			return bounce(func() Thunk { return eerr(err, s, memo) })
		}
		return bounce(func() Thunk { return p.body(state, memo, wrapCok, wrapCerr, wrapEok, wrapEerr) })
	})
}

// Memo gives p a fresh memo key id (nextParserID) and, on every call,
// first scans the memo chain for an entry keyed by (id, state). If found,
// it replays the recorded outcome through the caller's continuations
// instead of re-running p. Otherwise it runs p, and on each of the
// four possible outcomes prepends a cell recording how to replay it.
//
// The invariant this buys: two calls to the same memoized parser at
// positions with the same index yield identical outcomes and
// identical downstream state deltas (spec.md §4.6).
//
// The peerr branch below is deliberately asymmetric with the other
// three: it prepends a cell onto the memo in scope *before* p ran
// (memo), while cok/cerr/eok prepend theirs onto the memo p actually
// produced (m); pm is the state p reported. This matches the documented behavior of the source
// this engine is modeled on (spec.md §9's Open Questions) rather than
// normalizing it — memo_test.go pins this exact asymmetry.
func Memo[T, V any](p Parser[T, V]) Parser[T, V] {
	id := nextParserID()
	return New[T, V]("memo", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		if resumer, ok := lookupTyped[T, V](memo, id, state); ok {
			return bounce(func() Thunk { return resumer(cok, cerr, eok, eerr) })
		}

		pcok := func(v V, pm ParserState[T], m *MemoChain[T]) Thunk {
			return bounce(func() Thunk {
				resumer := Resumer[T, V](func(cok2 Cont[T, V], _ ErrCont[T], _ Cont[T, V], _ ErrCont[T]) Thunk {
					return cok2(v, pm, m)
				})
				return cok(v, pm, m.prepend(id, state, resumer))
			})
		}
		pcerr := func(err error, pm ParserState[T], m *MemoChain[T]) Thunk {
			return bounce(func() Thunk {
				resumer := Resumer[T, V](func(_ Cont[T, V], cerr2 ErrCont[T], _ Cont[T, V], _ ErrCont[T]) Thunk {
					return cerr2(err, pm, m)
				})
				return cerr(err, pm, m.prepend(id, state, resumer))
			})
		}
		peok := func(v V, pm ParserState[T], m *MemoChain[T]) Thunk {
			return bounce(func() Thunk {
				resumer := Resumer[T, V](func(_ Cont[T, V], _ ErrCont[T], eok2 Cont[T, V], _ ErrCont[T]) Thunk {
					return eok2(v, pm, m)
				})
				return eok(v, pm, m.prepend(id, state, resumer))
			})
		}
		peerr := func(err error, pm ParserState[T], m *MemoChain[T]) Thunk {
			return bounce(func() Thunk {
				resumer := Resumer[T, V](func(_ Cont[T, V], _ ErrCont[T], _ Cont[T, V], eerr2 ErrCont[T]) Thunk {
					return eerr2(err, pm, m)
				})
				return eerr(err, pm, memo.prepend(id, state, resumer))
			})
		}

		return bounce(func() Thunk { return p.body(state, memo, pcok, pcerr, peok, peerr) })
	})
}
