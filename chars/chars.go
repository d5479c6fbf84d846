// Package chars is the string/character helper layer spec.md §1 treats
// as an external collaborator of the core engine, specified only by
// the interfaces it consumes (spec.md §6). It builds every primitive
// here from pcomb.Token, exactly as the teacher's BaseParser built
// ExpectRune/ExpectRange/ExpectLiteral directly on its own Peek/Any
// (base_parser.go), just expressed as values instead of methods.
//
// Unicode-aware tokenization is an explicit core Non-goal (spec.md
// §1), so every class below (Digit, Letter, Space) is an ASCII range
// check, not a unicode.IsDigit/IsLetter call.
package chars

import (
	"fmt"
	"strings"

	"github.com/clarete/pcomb"
)

// Character matches a single rune equal to r.
func Character(r rune) pcomb.Parser[rune, rune] {
	name := fmt.Sprintf("character(%q)", r)
	return pcomb.Token(
		func(tok rune) bool { return tok == r },
		func(pos pcomb.Position, found *rune) error {
			return pcomb.NewExpectError(pos, name, foundValue(found), found != nil)
		},
	)
}

// OneOf matches a single rune that appears anywhere in runes.
func OneOf(runes string) pcomb.Parser[rune, rune] {
	set := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		set[r] = struct{}{}
	}
	name := fmt.Sprintf("oneOf(%q)", runes)
	return pcomb.Token(
		func(tok rune) bool { _, ok := set[tok]; return ok },
		func(pos pcomb.Position, found *rune) error {
			return pcomb.NewExpectError(pos, name, foundValue(found), found != nil)
		},
	)
}

// Range matches a single rune r such that lo <= r <= hi.
func Range(lo, hi rune) pcomb.Parser[rune, rune] {
	name := fmt.Sprintf("range(%q-%q)", lo, hi)
	return pcomb.Token(
		func(tok rune) bool { return tok >= lo && tok <= hi },
		func(pos pcomb.Position, found *rune) error {
			return pcomb.NewExpectError(pos, name, foundValue(found), found != nil)
		},
	)
}

// Digit matches a single ASCII digit, 0-9.
func Digit() pcomb.Parser[rune, rune] { return Range('0', '9') }

// Letter matches a single ASCII letter, a-z or A-Z.
func Letter() pcomb.Parser[rune, rune] {
	return pcomb.Either(Range('a', 'z'), Range('A', 'Z'))
}

// Space matches a single ASCII whitespace character.
func Space() pcomb.Parser[rune, rune] { return OneOf(" \t\r\n") }

// AnyChar matches any single rune, failing only at end of input.
func AnyChar() pcomb.Parser[rune, rune] { return pcomb.AnyToken[rune]() }

// String matches the literal sequence s, rune by rune, committing
// after the first rune matches: an attempt that partially matches and
// then diverges is a consumed-error, not an empty-error, unless the
// caller wraps it in pcomb.Attempt. (In spec.md scenario S7,
// choice(string("a"), string("aa"), string("aaa")) over "aaaa", the
// leftmost alternative wins simply because it succeeds first.)
func String(s string) pcomb.Parser[rune, string] {
	if s == "" {
		return pcomb.Always[rune, string]("")
	}
	runes := []rune(s)
	p := pcomb.Bind(Character(runes[0]), func(rune) pcomb.Parser[rune, string] {
		return pcomb.Always[rune, string](string(runes[0]))
	})
	for _, r := range runes[1:] {
		r := r
		p = pcomb.Bind(p, func(acc string) pcomb.Parser[rune, string] {
			return pcomb.Bind(Character(r), func(rune) pcomb.Parser[rune, string] {
				return pcomb.Always[rune, string](acc + string(r))
			})
		})
	}
	return p
}

// Trie matches the longest word in words that is a prefix of the
// remaining input, generalizing the teacher's rune-keyed ChoiceRune
// dispatch (parser.go) from single characters to whole words. It
// exists because degenerate choice(String(w1), String(w2), ...) over
// a large keyword set is O(sum of lengths) per failed alternative and
// always has to be wrapped in Attempt to avoid the commit-on-first-
// rune trap that String documents above; Trie avoids both problems by
// walking the candidates together, one rune at a time.
func Trie(words ...string) pcomb.Parser[rune, string] {
	name := fmt.Sprintf("trie(%s)", strings.Join(words, ","))
	return pcomb.New[rune, string](name, func(
		state pcomb.ParserState[rune],
		memo *pcomb.MemoChain[rune],
		cok pcomb.Cont[rune, string],
		cerr pcomb.ErrCont[rune],
		eok pcomb.Cont[rune, string],
		eerr pcomb.ErrCont[rune],
	) pcomb.Thunk {
		return trieStep(words, "", state, state, "", state, false, memo, cok, eok, eerr)
	})
}

// trieStep consumes one rune at a time, keeping only the candidates
// still consistent with what has been read, and remembering the
// longest whole word read so far (best, reached at bestState). Once no
// candidate can be extended further it commits to that word. start is
// the position before any rune was consumed, needed to tell eok and
// cok apart when the longest match turns out to be the empty string.
func trieStep(
	candidates []string,
	matched string,
	start pcomb.ParserState[rune],
	state pcomb.ParserState[rune],
	best string,
	bestState pcomb.ParserState[rune],
	found bool,
	memo *pcomb.MemoChain[rune],
	cok pcomb.Cont[rune, string],
	eok pcomb.Cont[rune, string],
	eerr pcomb.ErrCont[rune],
) pcomb.Thunk {
	return func() pcomb.Thunk {
		for _, w := range candidates {
			if w == matched {
				best, bestState, found = w, state, true
			}
		}
		report := func() pcomb.Thunk {
			if !found {
				return eerr(&pcomb.UnknownError{Pos: start.Position}, start, memo)
			}
			if len(best) == 0 {
				return eok(best, start, memo)
			}
			return cok(best, bestState, memo)
		}

		if state.Input.IsEmpty() {
			return report()
		}

		tok := state.Input.First()
		var next []string
		for _, w := range candidates {
			if len(w) > len(matched) && rune(w[len(matched)]) == tok {
				next = append(next, w)
			}
		}
		if len(next) == 0 {
			return report()
		}
		return trieStep(next, matched+string(tok), start, state.Next(tok), best, bestState, found, memo, cok, eok, eerr)
	}
}

func foundValue(found *rune) any {
	if found == nil {
		return nil
	}
	return *found
}
