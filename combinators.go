package pcomb

// Cons runs pv, then ps, and succeeds with the stream formed by
// prepending pv's value to ps's stream (spec.md §4.4).
func Cons[T, V any](pv Parser[T, V], ps Parser[T, Stream[V]]) Parser[T, Stream[V]] {
	return Bind(pv, func(v V) Parser[T, Stream[V]] {
		return Bind(ps, func(s Stream[V]) Parser[T, Stream[V]] {
			return Always[T, Stream[V]](consStream(v, s))
		})
	})
}

// Append runs pa, then pb, and succeeds with the lazy concatenation
// of their two result streams (spec.md §4.4).
func Append[T, V any](pa, pb Parser[T, Stream[V]]) Parser[T, Stream[V]] {
	return Bind(pa, func(a Stream[V]) Parser[T, Stream[V]] {
		return Bind(pb, func(b Stream[V]) Parser[T, Stream[V]] {
			return Always[T, Stream[V]](appendStream(a, b))
		})
	})
}

// Sequence right-folds Cons over ps, seeded with Always(End[V]()), so
// the whole sequence succeeds with an ordered stream of each
// sub-parser's value iff every one of them succeeds (spec.md §4.4).
func Sequence[T, V any](ps ...Parser[T, V]) Parser[T, Stream[V]] {
	result := Always[T, Stream[V]](End[V]())
	for i := len(ps) - 1; i >= 0; i-- {
		result = Cons(ps[i], result)
	}
	return result
}

// Eager runs p and converts its lazily built result stream into a
// fully materialized, ordered slice (spec.md §4.4).
func Eager[T, V any](p Parser[T, Stream[V]]) Parser[T, []V] {
	return Bind(p, func(s Stream[V]) Parser[T, []V] {
		return Always[T, []V](ToArray(s))
	})
}

// Next runs pa, then pb, and succeeds with pb's value. It is the
// common case of Bind that discards the first result, named
// separately because it is the combinator most grammars actually
// write (spec.md §6, scenarios S4/S6/S7).
func Next[T, A, B any](pa Parser[T, A], pb Parser[T, B]) Parser[T, B] {
	return Bind(pa, func(A) Parser[T, B] { return pb })
}

// Binds chains p through a sequence of value-preserving binds,
// threading each step's result into the next. It is syntactic sugar
// over repeated Bind calls for grammars that build up a single value
// through several dependent steps (spec.md §6).
func Binds[T, V any](p Parser[T, V], fs ...func(V) Parser[T, V]) Parser[T, V] {
	result := p
	for _, f := range fs {
		result = Bind(result, f)
	}
	return result
}

// guardEmptyAccept rewires p's eok continuation to raise a
// ParserError if p succeeds without advancing the position. It is
// Many's safeP (spec.md §4.4): a parser that can succeed at the same
// position it started from would make Many loop forever, so that
// outcome is treated as a grammar defect instead of being allowed to
// recur. Only eok is rewired — cok is by definition safe, since it
// always advances.
func guardEmptyAccept[T, V any](name string, p Parser[T, V]) Parser[T, V] {
	return New[T, V](name, func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		fatalEok := func(v V, s ParserState[T], m *MemoChain[T]) Thunk {
			if s.Position.Equal(state.Position) {
				throwParserError("%s: parser applied to a parser that accepts an empty string", name)
			}
			return bounce(func() Thunk { return eok(v, s, m) })
		}
		return bounce(func() Thunk { return p.body(state, memo, cok, cerr, fatalEok, eerr) })
	})
}

// Many is zero-or-more repetition: the fixed point
// self = either(cons(safeP, self), always(end)), where safeP is p
// guarded against the empty-accept pathology (spec.md §4.4). It
// terminates whenever every successful invocation of p advances the
// position; otherwise it raises ParserError via guardEmptyAccept.
func Many[T, V any](p Parser[T, V]) Parser[T, Stream[V]] {
	return RecParser[T, Stream[V]]("many", func(self Parser[T, Stream[V]]) Parser[T, Stream[V]] {
		safeP := guardEmptyAccept("many", p)
		return Either(Cons(safeP, self), Always[T, Stream[V]](End[V]()))
	})
}

// Many1 is one-or-more repetition: p, then Many(p).
func Many1[T, V any](p Parser[T, V]) Parser[T, Stream[V]] {
	return Cons(p, Many(p))
}
