package pcomb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamFromSlice(t *testing.T) {
	s := StreamFromSlice([]int{1, 2, 3})
	require.False(t, s.IsEmpty())
	assert.Equal(t, 1, s.First())
	s = s.Rest()
	assert.Equal(t, 2, s.First())
	s = s.Rest()
	assert.Equal(t, 3, s.First())
	s = s.Rest()
	assert.True(t, s.IsEmpty())
}

func TestStreamFromSliceEmpty(t *testing.T) {
	s := StreamFromSlice([]int{})
	assert.True(t, s.IsEmpty())
	assert.Equal(t, End[int](), s)
}

func TestStreamFromString(t *testing.T) {
	s := StreamFromString("ab")
	assert.Equal(t, 'a', s.First())
	assert.Equal(t, 'b', s.Rest().First())
	assert.True(t, s.Rest().Rest().IsEmpty())
}

func TestConsStream(t *testing.T) {
	s := consStream(1, consStream(2, End[int]()))
	assert.Equal(t, []int{1, 2}, ToArray(s))
}

func TestAppendStreamLazy(t *testing.T) {
	a := consStream(1, End[int]())
	b := consStream(2, consStream(3, End[int]()))
	assert.Equal(t, []int{1, 2, 3}, ToArray(appendStream(a, b)))
}

func TestAppendStreamEmptyLeft(t *testing.T) {
	b := consStream(9, End[int]())
	assert.Equal(t, b, appendStream(End[int](), b))
}

func TestMemoStreamCachesOnce(t *testing.T) {
	calls := 0
	s := MemoStream(1, func() Stream[int] {
		calls++
		return End[int]()
	})
	_ = s.Rest()
	_ = s.Rest()
	assert.Equal(t, 1, calls)
}

func TestToArray(t *testing.T) {
	assert.Equal(t, []int{}, append([]int{}, ToArray(End[int]())...))
	assert.Equal(t, []int{1, 2, 3}, ToArray(StreamFromSlice([]int{1, 2, 3})))
}
