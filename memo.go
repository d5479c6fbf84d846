package pcomb

import "sync/atomic"

var parserIDCounter uint64

// nextParserID hands out a fresh, stable id for a Parser value. Every
// Parser gets exactly one, assigned once at construction (parser.go's
// New), which is what lets the memo table key on it.
func nextParserID() uint64 {
	return atomic.AddUint64(&parserIDCounter, 1)
}

// Resumer replays a previously recorded outcome through whichever
// continuations a later call supplies. It is what a MemoCell stores:
// not the recorded value itself, but a closure able to re-deliver it.
type Resumer[T, V any] func(cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk

// MemoCell is one immutable link in the memo chain: spec.md §3's
// "(id, state, resumer, next)". The chain is singly-linked,
// most-recently-added first; resumer is stored as `any` because a
// single chain accumulates cells for parsers of many different value
// types V, and Go generics are monomorphic per function — memo.go
// cannot know V in advance. The caller that performs a lookup (always
// a Memo combinator wrapping a concrete Parser[T, V]) knows V and
// performs the one, localized type assertion back to Resumer[T, V].
type MemoCell[T any] struct {
	id      uint64
	state   ParserState[T]
	resumer any
	next    *MemoCell[T]
}

// MemoChain is the memo chain passed to every parser body alongside
// its ParserState and handed on through every continuation (not a
// side table): spec.md §3's memo cell chain lifecycle invariant. The
// zero value is a valid, empty chain.
type MemoChain[T any] struct {
	head *MemoCell[T]
}

// NewMemoChain returns an empty memo chain.
func NewMemoChain[T any]() *MemoChain[T] { return &MemoChain[T]{} }

// lookup scans the chain for (id, state), returning the stored
// resumer if present. Equality is parserId equality plus
// ParserState.Equal (position equality), per spec.md §4.6.
func (m *MemoChain[T]) lookup(id uint64, state ParserState[T]) (any, bool) {
	for cell := m.head; cell != nil; cell = cell.next {
		if cell.id == id && cell.state.Equal(state) {
			return cell.resumer, true
		}
	}
	return nil, false
}

// prepend returns a new chain with a fresh cell in front; the
// receiver's chain is untouched, preserving the "discard or preserve"
// backtracking semantics spec.md §3 calls for.
func (m *MemoChain[T]) prepend(id uint64, state ParserState[T], resumer any) *MemoChain[T] {
	return &MemoChain[T]{head: &MemoCell[T]{id: id, state: state, resumer: resumer, next: m.head}}
}

// Len reports how many cells are in the chain, letting external
// instrumentation (pcomb/ptrace) observe whether a call added a new
// cell or found one that was already there, without needing to know
// any cell's stored type.
func (m *MemoChain[T]) Len() int {
	n := 0
	for cell := m.head; cell != nil; cell = cell.next {
		n++
	}
	return n
}

// lookupTyped is the generic-friendly wrapper around lookup: it does
// the one type assertion a Memo combinator needs, localized to the
// single call site that knows V.
func lookupTyped[T, V any](m *MemoChain[T], id uint64, state ParserState[T]) (Resumer[T, V], bool) {
	raw, ok := m.lookup(id, state)
	if !ok {
		return nil, false
	}
	resumer, ok := raw.(Resumer[T, V])
	return resumer, ok
}
