// Package lang is the derived-combinator layer spec.md §1 calls out
// as an external collaborator: times, between, sepBy, endBy,
// chain{l,r}{,1}, built entirely from the core's public surface,
// never reaching into pcomb's internals. It is grounded in the
// teacher's generic ZeroOrMore/OneOrMore/Choice/Optional helpers
// (parser.go in the teacher), re-expressed as CPS combinators.
package lang

import "github.com/clarete/pcomb"

// Times runs p exactly n times in sequence, collecting an ordered
// slice of its n results.
func Times[T, V any](p pcomb.Parser[T, V], n int) pcomb.Parser[T, []V] {
	ps := make([]pcomb.Parser[T, V], n)
	for i := range ps {
		ps[i] = p
	}
	return pcomb.Eager(pcomb.Sequence(ps...))
}

// Between runs open, then p, then close, and succeeds with p's value.
func Between[T, O, V, C any](open pcomb.Parser[T, O], p pcomb.Parser[T, V], close pcomb.Parser[T, C]) pcomb.Parser[T, V] {
	return pcomb.Bind(open, func(O) pcomb.Parser[T, V] {
		return pcomb.Bind(p, func(v V) pcomb.Parser[T, V] {
			return pcomb.Bind(close, func(C) pcomb.Parser[T, V] {
				return pcomb.Always[T, V](v)
			})
		})
	})
}

// SepBy1 matches one or more p, separated by sep, collecting p's
// values (sep's are discarded).
func SepBy1[T, S, V any](sep pcomb.Parser[T, S], p pcomb.Parser[T, V]) pcomb.Parser[T, []V] {
	rest := pcomb.Many(pcomb.Next(sep, p))
	return pcomb.Eager(pcomb.Cons(p, rest))
}

// SepBy matches zero or more p, separated by sep.
func SepBy[T, S, V any](sep pcomb.Parser[T, S], p pcomb.Parser[T, V]) pcomb.Parser[T, []V] {
	return pcomb.Either(SepBy1(sep, p), pcomb.Always[T, []V](nil))
}

// EndBy1 matches one or more p, each one followed by sep, collecting
// p's values.
func EndBy1[T, S, V any](sep pcomb.Parser[T, S], p pcomb.Parser[T, V]) pcomb.Parser[T, []V] {
	item := pcomb.Bind(p, func(v V) pcomb.Parser[T, V] {
		return pcomb.Next(sep, pcomb.Always[T, V](v))
	})
	return pcomb.Eager(pcomb.Many1(item))
}

// EndBy matches zero or more p, each followed by sep.
func EndBy[T, S, V any](sep pcomb.Parser[T, S], p pcomb.Parser[T, V]) pcomb.Parser[T, []V] {
	item := pcomb.Bind(p, func(v V) pcomb.Parser[T, V] {
		return pcomb.Next(sep, pcomb.Always[T, V](v))
	})
	return pcomb.Eager(pcomb.Many(item))
}

// SepEndBy1 matches one or more p, separated and optionally terminated
// by sep (spec.md scenario S5: an empty input fails this).
func SepEndBy1[T, S, V any](sep pcomb.Parser[T, S], p pcomb.Parser[T, V]) pcomb.Parser[T, []V] {
	return pcomb.Bind(p, func(head V) pcomb.Parser[T, []V] {
		afterSep := pcomb.Bind(sep, func(S) pcomb.Parser[T, []V] {
			return pcomb.Either(
				pcomb.Bind(SepEndBy1(sep, p), func(tail []V) pcomb.Parser[T, []V] {
					return pcomb.Always[T, []V](append([]V{head}, tail...))
				}),
				pcomb.Always[T, []V]([]V{head}),
			)
		})
		return pcomb.Either(afterSep, pcomb.Always[T, []V]([]V{head}))
	})
}

// SepEndBy matches zero or more p, separated and optionally
// terminated by sep (spec.md scenario S3: "a,a," over a = character
// 'a' yields ["a","a"]).
func SepEndBy[T, S, V any](sep pcomb.Parser[T, S], p pcomb.Parser[T, V]) pcomb.Parser[T, []V] {
	return pcomb.Either(SepEndBy1(sep, p), pcomb.Always[T, []V](nil))
}

// ChainL1 parses one or more p separated by op, left-folding each
// matched operator function over the accumulated value:
// p op p op p => ((p op p) op p). This is how a left-associative
// binary-operator grammar is expressed without writing a
// left-recursive rule, which spec.md's core explicitly does not
// support (Non-goals: "left-recursion elimination").
func ChainL1[T, V any](p pcomb.Parser[T, V], op pcomb.Parser[T, func(V, V) V]) pcomb.Parser[T, V] {
	return pcomb.Bind(p, func(first V) pcomb.Parser[T, V] {
		return chainLRest(first, p, op)
	})
}

func chainLRest[T, V any](acc V, p pcomb.Parser[T, V], op pcomb.Parser[T, func(V, V) V]) pcomb.Parser[T, V] {
	step := pcomb.Bind(op, func(fn func(V, V) V) pcomb.Parser[T, V] {
		return pcomb.Bind(p, func(rhs V) pcomb.Parser[T, V] {
			return chainLRest(fn(acc, rhs), p, op)
		})
	})
	return pcomb.Either(step, pcomb.Always[T, V](acc))
}

// ChainL is ChainL1, but succeeds with def if p doesn't match at all.
func ChainL[T, V any](p pcomb.Parser[T, V], op pcomb.Parser[T, func(V, V) V], def V) pcomb.Parser[T, V] {
	return pcomb.Either(ChainL1(p, op), pcomb.Always[T, V](def))
}

// ChainR1 parses one or more p separated by op, right-folding each
// matched operator function: p op p op p => (p op (p op p)).
func ChainR1[T, V any](p pcomb.Parser[T, V], op pcomb.Parser[T, func(V, V) V]) pcomb.Parser[T, V] {
	return pcomb.Bind(p, func(lhs V) pcomb.Parser[T, V] {
		step := pcomb.Bind(op, func(fn func(V, V) V) pcomb.Parser[T, V] {
			return pcomb.Bind(ChainR1(p, op), func(rhs V) pcomb.Parser[T, V] {
				return pcomb.Always[T, V](fn(lhs, rhs))
			})
		})
		return pcomb.Either(step, pcomb.Always[T, V](lhs))
	})
}

// ChainR is ChainR1, but succeeds with def if p doesn't match at all.
func ChainR[T, V any](p pcomb.Parser[T, V], op pcomb.Parser[T, func(V, V) V], def V) pcomb.Parser[T, V] {
	return pcomb.Either(ChainR1(p, op), pcomb.Always[T, V](def))
}
