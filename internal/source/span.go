package source

import (
	"fmt"

	"fortio.org/safecast"
)

const (
	// LenTag marks a Span whose base field is an index into a SpanInterner.
	LenTag uint16 = 0x8000
	// MaxLen is the longest range stored inline in a Span.
	MaxLen = 0x7fff
)

// SpanData is a decoded half-open byte range [Lo, Hi).
type SpanData struct {
	Lo, Hi BytePos
}

// Len returns Hi - Lo.
func (d SpanData) Len() uint32 {
	return uint32(d.Hi - d.Lo)
}

// Contains reports whether pos lies inside the range.
func (d SpanData) Contains(pos BytePos) bool {
	return d.Lo <= pos && pos < d.Hi
}

// Cover returns the smallest range containing both d and other.
func (d SpanData) Cover(other SpanData) SpanData {
	return SpanData{Lo: min(d.Lo, other.Lo), Hi: max(d.Hi, other.Hi)}
}

// Shift moves the range by delta bytes. It panics if either end leaves the
// 32-bit position space.
func (d SpanData) Shift(delta int) SpanData {
	lo, errLo := safecast.Conv[BytePos](int64(d.Lo) + int64(delta))
	hi, errHi := safecast.Conv[BytePos](int64(d.Hi) + int64(delta))
	if errLo != nil || errHi != nil {
		panic(fmt.Errorf("span %v shifted by %d leaves position space", d, delta))
	}
	return SpanData{Lo: lo, Hi: hi}
}

func (d SpanData) String() string {
	return fmt.Sprintf("%d..%d", d.Lo, d.Hi)
}

// Span is a compact handle for a byte range.
//
// Short ranges are stored inline as a base offset and a 15-bit length. Longer
// ranges are stored in a SpanInterner and the Span carries the table index
// with LenTag in the length field. The zero Span is DummySpan.
//
// Inline spans compare equal exactly when their ranges are equal. Interned
// spans from the same interner do too, since the interner deduplicates.
type Span struct {
	baseOrIndex uint32
	lenOrTag    uint16
}

// DummySpan stands for "no real position".
var DummySpan = Span{}

// NewSpan encodes [lo, hi). The ends are swapped if lo > hi. Ranges longer
// than MaxLen are interned in in, which must then be non-nil.
func NewSpan(in *SpanInterner, lo, hi BytePos) Span {
	if lo > hi {
		lo, hi = hi, lo
	}
	if n := hi - lo; n <= MaxLen {
		return Span{baseOrIndex: uint32(lo), lenOrTag: uint16(n)}
	}
	if in == nil {
		panic("source: span longer than MaxLen needs a SpanInterner")
	}
	return Span{baseOrIndex: in.Intern(SpanData{Lo: lo, Hi: hi}), lenOrTag: LenTag}
}

// IsInline reports whether the range is stored in the span itself.
func (s Span) IsInline() bool {
	return s.lenOrTag&LenTag == 0
}

// IsDummy reports whether s is DummySpan.
func (s Span) IsDummy() bool {
	return s == DummySpan
}

// Data decodes the span. Inline spans ignore in; interned spans must be
// decoded with the interner that produced them.
func (s Span) Data(in *SpanInterner) SpanData {
	if s.IsInline() {
		lo := BytePos(s.baseOrIndex)
		return SpanData{Lo: lo, Hi: lo + BytePos(s.lenOrTag)}
	}
	if in == nil {
		panic("source: decoding an interned span needs a SpanInterner")
	}
	return in.Get(s.baseOrIndex)
}

func (s Span) String() string {
	if s.IsInline() {
		return fmt.Sprintf("Span(%d+%d)", s.baseOrIndex, s.lenOrTag)
	}
	return fmt.Sprintf("Span(#%d)", s.baseOrIndex)
}
