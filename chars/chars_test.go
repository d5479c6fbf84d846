package chars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarete/pcomb"
)

func TestCharacter(t *testing.T) {
	v, err := pcomb.Run(Character('a'), []rune("a"), nil)
	require.NoError(t, err)
	assert.Equal(t, 'a', v)

	_, err = pcomb.Run(Character('a'), []rune("b"), nil)
	require.Error(t, err)
}

func TestOneOfAndRange(t *testing.T) {
	v, err := pcomb.Run(OneOf("xyz"), []rune("y"), nil)
	require.NoError(t, err)
	assert.Equal(t, 'y', v)

	_, err = pcomb.Run(Range('a', 'f'), []rune("g"), nil)
	require.Error(t, err)
}

func TestDigitLetterSpace(t *testing.T) {
	assert.True(t, pcomb.Test(Digit(), []rune("7"), nil))
	assert.True(t, pcomb.Test(Letter(), []rune("Q"), nil))
	assert.True(t, pcomb.Test(Space(), []rune("\t"), nil))
	assert.False(t, pcomb.Test(Digit(), []rune("q"), nil))
}

func TestStringMatchesWholeLiteral(t *testing.T) {
	v, err := pcomb.Run(String("func"), []rune("func main"), nil)
	require.NoError(t, err)
	assert.Equal(t, "func", v)
}

func TestStringLeftmostCommitRequiresAttempt(t *testing.T) {
	// String commits as soon as its first rune matches. Over input
	// "fun", choice(String("func"), String("fun")) tries String("func")
	// first: it consumes 'f','u','n' and then fails on EOF expecting
	// 'c' — three runes in, so that failure is a committed (cerr)
	// failure, and Choice never gives String("fun") a turn at all.
	bare := pcomb.Choice(String("func"), String("fun"))
	_, err := pcomb.Run(bare, []rune("fun"), nil)
	require.Error(t, err)

	// Wrapping the first alternative in Attempt rewires its committed
	// failure back to an empty failure, restoring backtracking.
	attempted := pcomb.Choice(pcomb.Attempt(String("func")), String("fun"))
	v, err := pcomb.Run(attempted, []rune("fun"), nil)
	require.NoError(t, err)
	assert.Equal(t, "fun", v)
}

func TestTrieLongestMatch(t *testing.T) {
	trie := Trie("a", "ab", "abc")

	v, err := pcomb.Run(trie, []rune("abcd"), nil)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	v, err = pcomb.Run(trie, []rune("abx"), nil)
	require.NoError(t, err)
	assert.Equal(t, "ab", v)
}

func TestTrieNoMatchFails(t *testing.T) {
	trie := Trie("cat", "car")
	_, err := pcomb.Run(trie, []rune("dog"), nil)
	require.Error(t, err)
}

func TestTrieEmptyMatchDoesNotConsume(t *testing.T) {
	// "" is a degenerate candidate: the longest match can legitimately
	// be zero-length, which must surface as eok (no consumption), not
	// cok. Because it is an eok, wrapping Trie in pcomb.Many trips the
	// empty-accept guard the first time it matches nothing, instead of
	// looping forever.
	trie := Trie("", "xyz")
	p := pcomb.Eager(pcomb.Many(trie))
	assert.Panics(t, func() {
		pcomb.Run(p, []rune("qqq"), nil)
	}, "many(trie) over input where trie always matches empty must be rejected as a grammar defect, not loop")
}
