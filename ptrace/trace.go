// Package ptrace is an optional instrumentation layer for pcomb
// grammars, generalizing the teacher's stacktrace []TracerSpan /
// PushTraceSpan / PopTraceSpan bookkeeping (base_parser.go) from a
// stateful receiver's field to an explicit value threaded in by the
// caller — the core engine itself stays untouched (spec.md §5: no
// operation performs I/O or side effects outside the continuation
// protocol), so tracing is opt-in wrapping at the call site, not a
// built-in core feature.
package ptrace

import (
	"github.com/clarete/pcomb"
)

// Span is one entry of a captured trace: which named rule ran, and
// whether it consumed input and/or succeeded.
type Span struct {
	Name     string `yaml:"name"`
	Consumed bool   `yaml:"consumed"`
	Ok       bool   `yaml:"ok"`
}

// Stats accumulates a parse's trace spans plus a running count of
// pcomb.Memo replays — the "memo hit-count" the CLI's trace
// subcommand reports, which only becomes nonzero when a traced rule
// is actually wrapped in pcomb.Memo and revisited at the same
// position (spec.md §3's memo cell chain).
type Stats struct {
	Spans    []Span
	MemoHits int
}

// Wrap instruments p under name: every outcome — cok, cerr, eok, eerr
// — appends exactly one Span to stats before forwarding to the
// caller's original continuation, mirroring PushTraceSpan/
// PopTraceSpan's push-on-entry/pop-on-exit pairing collapsed into a
// single record, since CPS already makes "exit" synchronous with the
// continuation call.
func Wrap[T, V any](name string, stats *Stats, p pcomb.Parser[T, V]) pcomb.Parser[T, V] {
	return pcomb.New[T, V](name, func(
		state pcomb.ParserState[T],
		memo *pcomb.MemoChain[T],
		cok pcomb.Cont[T, V],
		cerr pcomb.ErrCont[T],
		eok pcomb.Cont[T, V],
		eerr pcomb.ErrCont[T],
	) pcomb.Thunk {
		record := func(consumed, ok bool) {
			stats.Spans = append(stats.Spans, Span{Name: name, Consumed: consumed, Ok: ok})
		}
		wrapCok := func(v V, s pcomb.ParserState[T], m *pcomb.MemoChain[T]) pcomb.Thunk {
			record(true, true)
			return cok(v, s, m)
		}
		wrapCerr := func(err error, s pcomb.ParserState[T], m *pcomb.MemoChain[T]) pcomb.Thunk {
			record(true, false)
			return cerr(err, s, m)
		}
		wrapEok := func(v V, s pcomb.ParserState[T], m *pcomb.MemoChain[T]) pcomb.Thunk {
			record(false, true)
			return eok(v, s, m)
		}
		wrapEerr := func(err error, s pcomb.ParserState[T], m *pcomb.MemoChain[T]) pcomb.Thunk {
			record(false, false)
			return eerr(err, s, m)
		}
		return p.body(state, memo, wrapCok, wrapCerr, wrapEok, wrapEerr)
	})
}

// CountMemoHits wraps p with pcomb.Memo and increments stats.MemoHits
// every time the memo chain satisfies a lookup instead of re-running
// p's body — making pcomb.Memo's effect observable from outside the
// core package, which otherwise exposes no hit/miss counters of its
// own (by design: the memo chain is a pure value, not a stats object).
// Len() before/after is a heuristic, not an exact hit counter: it
// assumes the chain only grows along the path being observed, true
// for the single-threaded recursive-descent call patterns the CLI
// demos use, but not a general property of arbitrary grammars. Only
// consumed-ok outcomes are inspected; a replayed cerr, eok or eerr is
// not counted.
func CountMemoHits[T, V any](name string, stats *Stats, p pcomb.Parser[T, V]) pcomb.Parser[T, V] {
	memoized := pcomb.Memo(p)
	return pcomb.New[T, V](name+".memo", func(
		state pcomb.ParserState[T],
		memo *pcomb.MemoChain[T],
		cok pcomb.Cont[T, V],
		cerr pcomb.ErrCont[T],
		eok pcomb.Cont[T, V],
		eerr pcomb.ErrCont[T],
	) pcomb.Thunk {
		before := memo.Len()
		wrapCok := func(v V, s pcomb.ParserState[T], m *pcomb.MemoChain[T]) pcomb.Thunk {
			if m.Len() <= before {
				stats.MemoHits++
			}
			return cok(v, s, m)
		}
		return memoized.body(state, memo, wrapCok, cerr, eok, eerr)
	})
}
