package source

import (
	"fmt"

	"fortio.org/safecast"
)

// SpanInterner is an insertion-ordered set of ranges too long for an inline
// Span. It is not safe for concurrent use; a session serializes access.
type SpanInterner struct {
	index map[SpanData]uint32
	spans []SpanData
}

// NewSpanInterner creates an empty interner.
func NewSpanInterner() *SpanInterner {
	return &SpanInterner{index: make(map[SpanData]uint32)}
}

// Intern returns the index of data, appending it if it was not seen before.
func (in *SpanInterner) Intern(data SpanData) uint32 {
	if idx, ok := in.index[data]; ok {
		return idx
	}
	idx, err := safecast.Conv[uint32](len(in.spans))
	if err != nil {
		panic(fmt.Errorf("span interner overflow: %w", err))
	}
	if in.index == nil {
		in.index = make(map[SpanData]uint32)
	}
	in.spans = append(in.spans, data)
	in.index[data] = idx
	return idx
}

// Get returns the range stored at idx. It panics if idx was never returned
// by Intern.
func (in *SpanInterner) Get(idx uint32) SpanData {
	if int64(idx) >= int64(len(in.spans)) {
		panic(fmt.Sprintf("source: span index %d out of range (%d interned)", idx, len(in.spans)))
	}
	return in.spans[idx]
}

// Len returns the number of interned ranges.
func (in *SpanInterner) Len() int {
	return len(in.spans)
}
