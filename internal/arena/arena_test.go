package arena

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocCopies(t *testing.T) {
	var a Strings
	src := []byte("hello")
	s := a.AllocBytes(src)
	src[0] = 'j'
	assert.Equal(t, "hello", s)
	assert.Equal(t, 5, a.Size())
}

func TestAllocEmpty(t *testing.T) {
	var a Strings
	assert.Equal(t, "", a.Alloc(""))
	assert.Equal(t, 0, a.Chunks())
}

func TestStringsSurviveGrowth(t *testing.T) {
	var a Strings
	var got, want []string
	for i := range 5000 {
		w := strings.Repeat(string(rune('a'+i%26)), 1+i%37)
		want = append(want, w)
		got = append(got, a.Alloc(w))
	}
	require.Greater(t, a.Chunks(), 1)
	assert.Equal(t, want, got)
}

func TestOversizedAllocation(t *testing.T) {
	var a Strings
	small := a.Alloc("small")
	big := strings.Repeat("x", maxChunk+1)
	got := a.Alloc(big)
	after := a.Alloc("after")

	assert.Equal(t, "small", small)
	assert.Equal(t, big, got)
	assert.Equal(t, "after", after)
	// "after" lands in the first chunk, next to "small".
	assert.Equal(t, 2, a.Chunks())
}

func TestChunkGrowthIsCapped(t *testing.T) {
	var a Strings
	for range 64 {
		a.Alloc(strings.Repeat("y", maxChunk/2))
	}
	for _, c := range a.chunks {
		assert.LessOrEqual(t, cap(c), maxChunk)
	}
}
