package pcomb

// Thunk is the trampoline's unit of deferred work (spec.md §4.2). A
// thunk that returns nil is terminal: the trampoline stops. Every
// combinator that would otherwise call into another parser's body
// recursively instead returns a Thunk wrapping that call, so the Go
// call stack never grows with input length or grammar nesting depth.
type Thunk func() Thunk

// Cont is a success continuation: "consumed-ok" or "empty-ok" in
// spec.md §4.1's terms. It is parameterized by the parsed value type
// V as well as the token type T.
type Cont[T, V any] func(value V, state ParserState[T], memo *MemoChain[T]) Thunk

// ErrCont is a failure continuation: "consumed-error" or
// "empty-error". It carries no value, only an error, so unlike Cont
// it needs no V type parameter — a single ErrCont[T] shape is reused
// by every Parser[T, V] regardless of V.
type ErrCont[T any] func(err error, state ParserState[T], memo *MemoChain[T]) Thunk

// Body is the continuation-passing implementation of a parser: the
// six-argument calling convention of spec.md §4.1. Calling body
// directly is fine (no recursion happens inside the call itself); what
// body returns must always be a Thunk so the caller's trampoline can
// keep bouncing instead of recursing into sub-parsers.
type Body[T, V any] func(
	state ParserState[T],
	memo *MemoChain[T],
	cok Cont[T, V],
	cerr ErrCont[T],
	eok Cont[T, V],
	eerr ErrCont[T],
) Thunk

// bounce wraps fn as a single-step Thunk, deferring its execution by
// one trampoline iteration. Combinators use this whenever they are
// about to call another parser's Body, instead of calling it in line.
func bounce(fn func() Thunk) Thunk {
	return fn
}
