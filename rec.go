package pcomb

// Rec is the fixed-point builder of spec.md §4.5: the only sanctioned
// way to build a self-referential parser. define is handed a
// reference, handle, that dispatches to the completed parser — but
// only once parsing actually happens, never during construction,
// because handle is backed by a cell that is filled in exactly once,
// right after define returns, and before any parse can possibly run.
//
// A direct Go closure capturing itself at construction time would
// have to read an uninitialized variable; Rec avoids that by giving
// define a handle whose body is deferred until call time.
func Rec[T, V any](define func(handle Parser[T, V]) Parser[T, V]) Body[T, V] {
	cell := &recCell[T, V]{}
	handle := New[T, V]("rec", func(state ParserState[T], memo *MemoChain[T], cok Cont[T, V], cerr ErrCont[T], eok Cont[T, V], eerr ErrCont[T]) Thunk {
		return bounce(func() Thunk { return cell.resolved.body(state, memo, cok, cerr, eok, eerr) })
	})
	cell.resolved = define(handle)
	return cell.resolved.body
}

// recCell is the single mutable indirection cell Rec needs. It is
// written exactly once, by Rec itself, before any parse runs. (The
// other in-place writes in this package are caches: ParserState's
// next-state slot and memoStreamCell's resolved tail.)
type recCell[T, V any] struct {
	resolved Parser[T, V]
}
