package source

import (
	"testing"
	"unsafe"
)

func TestSpanIsEightBytes(t *testing.T) {
	if got := unsafe.Sizeof(Span{}); got != 8 {
		t.Fatalf("Span is %d bytes, want 8", got)
	}
}

func TestSpanRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi BytePos
		inline bool
	}{
		{"empty", 0, 0, true},
		{"short", 10, 20, true},
		{"max inline", 100, 100 + MaxLen, true},
		{"first interned", 100, 100 + MaxLen + 1, false},
		{"huge", 0, 1 << 31, false},
		{"high base", 1<<32 - 10, 1<<32 - 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewSpanInterner()
			sp := NewSpan(in, tt.lo, tt.hi)
			if sp.IsInline() != tt.inline {
				t.Fatalf("IsInline() = %v, want %v", sp.IsInline(), tt.inline)
			}
			wantLen := 0
			if !tt.inline {
				wantLen = 1
			}
			if in.Len() != wantLen {
				t.Fatalf("interner has %d entries, want %d", in.Len(), wantLen)
			}
			if got := sp.Data(in); got != (SpanData{Lo: tt.lo, Hi: tt.hi}) {
				t.Fatalf("Data() = %v, want %d..%d", got, tt.lo, tt.hi)
			}
		})
	}
}

func TestNewSpanSwapsEnds(t *testing.T) {
	in := NewSpanInterner()
	if got := NewSpan(in, 20, 10).Data(in); got != (SpanData{Lo: 10, Hi: 20}) {
		t.Fatalf("got %v", got)
	}
	if got := NewSpan(in, 50000, 10).Data(in); got != (SpanData{Lo: 10, Hi: 50000}) {
		t.Fatalf("got %v", got)
	}
}

func TestInternedSpansDeduplicate(t *testing.T) {
	in := NewSpanInterner()
	a := NewSpan(in, 0, 40000)
	b := NewSpan(in, 0, 40000)
	c := NewSpan(in, 1, 40000)
	if a != b {
		t.Fatalf("equal long spans differ: %v %v", a, b)
	}
	if a == c {
		t.Fatal("different long spans share a handle")
	}
	if in.Len() != 2 {
		t.Fatalf("interner has %d entries, want 2", in.Len())
	}
}

func TestDummySpan(t *testing.T) {
	if !DummySpan.IsDummy() || !DummySpan.IsInline() {
		t.Fatal("DummySpan must be the zero inline span")
	}
	if DummySpan.Data(nil) != (SpanData{}) {
		t.Fatal("DummySpan decodes to 0..0")
	}
	if NewSpan(nil, 1, 2).IsDummy() {
		t.Fatal("a real span is not dummy")
	}
}

func TestInlineSpanNeedsNoInterner(t *testing.T) {
	sp := NewSpan(nil, 5, 9)
	if sp.Data(nil) != (SpanData{Lo: 5, Hi: 9}) {
		t.Fatalf("got %v", sp.Data(nil))
	}
}

func TestNilInternerPanicsForLongSpan(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewSpan(nil, 0, MaxLen+1)
}

func TestSpanInternerGetOutOfRange(t *testing.T) {
	in := NewSpanInterner()
	in.Intern(SpanData{Lo: 1, Hi: 2})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	in.Get(1)
}

func TestZeroSpanInterner(t *testing.T) {
	var in SpanInterner
	if idx := in.Intern(SpanData{Lo: 1, Hi: 2}); idx != 0 {
		t.Fatalf("first index = %d", idx)
	}
	if idx := in.Intern(SpanData{Lo: 1, Hi: 2}); idx != 0 {
		t.Fatalf("repeated index = %d", idx)
	}
}

func TestSpanDataHelpers(t *testing.T) {
	d := SpanData{Lo: 10, Hi: 20}
	if d.Len() != 10 {
		t.Fatalf("Len() = %d", d.Len())
	}
	for pos, want := range map[BytePos]bool{9: false, 10: true, 19: true, 20: false} {
		if d.Contains(pos) != want {
			t.Errorf("Contains(%d) = %v", pos, !want)
		}
	}
	if got := d.Cover(SpanData{Lo: 15, Hi: 30}); got != (SpanData{Lo: 10, Hi: 30}) {
		t.Errorf("Cover = %v", got)
	}
	if got := d.Shift(-10); got != (SpanData{Lo: 0, Hi: 10}) {
		t.Errorf("Shift(-10) = %v", got)
	}
	if got := d.Shift(5); got != (SpanData{Lo: 15, Hi: 25}) {
		t.Errorf("Shift(5) = %v", got)
	}
}

func TestSpanDataShiftOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	SpanData{Lo: 3, Hi: 5}.Shift(-4)
}
