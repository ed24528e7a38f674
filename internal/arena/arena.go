// Package arena provides an append-only byte arena for long-lived strings.
//
// Bytes handed out by the arena are never moved or reused, so strings that
// alias them stay valid for as long as the arena is reachable.
package arena

import (
	"fmt"
	"unsafe"
)

const (
	minChunkShift = 12
	minChunk      = 1 << minChunkShift
	maxChunk      = 1 << 20
)

// Strings is an arena of string bytes.
//
// Internally it keeps a list of chunks with doubling capacity, capped at 1 MiB.
// A string that does not fit in a fresh chunk gets a dedicated one.
//
// A zero Strings is empty and ready to use. It is not safe for concurrent use.
type Strings struct {
	// Invariant: len(chunks[i]) <= cap(chunks[i]) and no chunk is ever
	// reallocated; only the last chunk receives new bytes.
	chunks [][]byte
	size   int
}

// Alloc copies s into the arena and returns a string that aliases the copy.
func (a *Strings) Alloc(s string) string {
	if len(s) == 0 {
		return ""
	}
	buf := a.reserve(len(s))
	copy(buf, s)
	a.size += len(s)
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

// AllocBytes is Alloc for a byte slice.
func (a *Strings) AllocBytes(b []byte) string {
	return a.Alloc(unsafe.String(unsafe.SliceData(b), len(b)))
}

// Size returns the number of string bytes stored.
func (a *Strings) Size() int {
	return a.size
}

// Chunks returns the number of chunks allocated so far.
func (a *Strings) Chunks() int {
	return len(a.chunks)
}

// reserve returns n bytes at the end of the last chunk, opening a new chunk
// when the last one is full.
func (a *Strings) reserve(n int) []byte {
	if n < 0 {
		panic(fmt.Sprintf("arena: negative allocation %d", n))
	}
	if len(a.chunks) > 0 {
		last := &a.chunks[len(a.chunks)-1]
		if cap(*last)-len(*last) >= n {
			start := len(*last)
			*last = (*last)[:start+n]
			return (*last)[start : start+n : start+n]
		}
	}

	size := a.nextChunkSize()
	if n > size {
		// Oversized strings get a dedicated chunk. It goes before the current
		// chunk so that the current chunk keeps receiving small strings.
		buf := make([]byte, n)
		if len(a.chunks) == 0 {
			a.chunks = append(a.chunks, buf)
		} else {
			last := a.chunks[len(a.chunks)-1]
			a.chunks[len(a.chunks)-1] = buf
			a.chunks = append(a.chunks, last)
		}
		return buf
	}

	buf := make([]byte, n, size)
	a.chunks = append(a.chunks, buf)
	return buf[:n:n]
}

func (a *Strings) nextChunkSize() int {
	if len(a.chunks) == 0 {
		return minChunk
	}
	return min(2*cap(a.chunks[len(a.chunks)-1]), maxChunk)
}
