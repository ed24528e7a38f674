package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscore/internal/source"
	"tscore/internal/symbol"
)

func TestKeywordsAreStable(t *testing.T) {
	s := New()
	defer s.Close()
	for i, kw := range symbol.Predefined() {
		assert.Equal(t, symbol.Symbol(i), s.InternSymbol(kw))
		assert.Equal(t, symbol.Symbol(i), s.InternSymbol(kw))
	}
	assert.Equal(t, symbol.KwFunction, s.InternSymbol("function"))
	assert.Equal(t, "await", s.ResolveSymbol(symbol.KwAwait))
}

func TestSpanBoundary(t *testing.T) {
	s := New()
	defer s.Close()

	short := s.MakeSpan(10, 10+source.MaxLen)
	assert.True(t, short.IsInline())
	assert.Equal(t, 0, s.Stats().InternedSpans)
	assert.Equal(t, source.SpanData{Lo: 10, Hi: 10 + source.MaxLen}, s.ResolveSpan(short))

	long := s.MakeSpan(10, 10+source.MaxLen+1)
	assert.False(t, long.IsInline())
	assert.Equal(t, 1, s.Stats().InternedSpans)
	assert.Equal(t, source.SpanData{Lo: 10, Hi: 10 + source.MaxLen + 1}, s.ResolveSpan(long))

	again := s.MakeSpan(10+source.MaxLen+1, 10)
	assert.Equal(t, long, again)
	assert.Equal(t, 1, s.Stats().InternedSpans)
}

func TestMakeIdent(t *testing.T) {
	s := New()
	defer s.Close()
	id := s.MakeIdent("console", 3, 10)
	assert.Equal(t, "console", id.AsStr(s))
	assert.Equal(t, source.SpanData{Lo: 3, Hi: 10}, s.ResolveSpan(id.Span))
	assert.True(t, s.MakeIdent("console", 50, 57).Equal(id))
}

func TestWith(t *testing.T) {
	var leaked *Session
	got := With(func(s *Session) string {
		leaked = s
		return s.ResolveSymbol(s.InternSymbol("scoped"))
	})
	assert.Equal(t, "scoped", got)
	assert.Panics(t, func() { leaked.InternSymbol("x") })
}

func TestUseAfterClosePanics(t *testing.T) {
	s := New()
	sym := s.InternSymbol("x")
	long := s.MakeSpan(0, 1<<20)
	s.Close()

	assert.PanicsWithValue(t, errUseAfterClose, func() { s.InternSymbol("x") })
	assert.PanicsWithValue(t, errUseAfterClose, func() { s.ResolveSymbol(sym) })
	assert.PanicsWithValue(t, errUseAfterClose, func() { s.MakeSpan(0, 1) })
	assert.PanicsWithValue(t, errUseAfterClose, func() { s.ResolveSpan(source.DummySpan) })
	assert.PanicsWithValue(t, errUseAfterClose, func() { s.ResolveSpan(long) })
	assert.PanicsWithValue(t, errUseAfterClose, func() { s.Stats() })
	assert.PanicsWithValue(t, errUseAfterClose, func() { s.Symbols(func(symbol.Symbol, string) bool { return true }) })
	assert.Panics(t, s.Close)

	var nilSession *Session
	assert.Panics(t, func() { nilSession.InternSymbol("x") })
}

// Callers racing Close must see the use-after-close panic, never a nil
// interner.
func TestCloseRacingCallers(t *testing.T) {
	for round := 0; round < 50; round++ {
		s := New()
		long := s.MakeSpan(0, 1<<20)

		const workers = 8
		var wg sync.WaitGroup
		failures := make(chan any, workers)
		start := make(chan struct{})
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil && r != errUseAfterClose {
						failures <- r
					}
				}()
				<-start
				for i := 0; ; i++ {
					sym := s.InternSymbol(fmt.Sprintf("w%d_%d", w, i))
					s.ResolveSymbol(sym)
					s.ResolveSpan(long)
					s.Stats()
				}
			}(w)
		}
		close(start)
		s.Close()
		wg.Wait()
		close(failures)
		for r := range failures {
			t.Fatalf("round %d: unexpected panic %v", round, r)
		}
	}
}

func TestForeignHandlesPanic(t *testing.T) {
	a := New()
	defer a.Close()
	b := New()
	defer b.Close()

	sym := a.InternSymbol("only in a")
	assert.Panics(t, func() { b.ResolveSymbol(sym) })

	long := a.MakeSpan(0, 1<<20)
	assert.Panics(t, func() { b.ResolveSpan(long) })
}

func TestConcurrentInterning(t *testing.T) {
	s := New()
	defer s.Close()

	const workers = 16
	const names = 500
	results := make([][]symbol.Symbol, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]symbol.Symbol, names)
			for i := range names {
				// each worker walks the names in a different order
				n := (i*7 + w) % names
				out[n] = s.InternSymbol(fmt.Sprintf("id%d", n))
				s.MakeSpan(0, source.BytePos(40000+n))
			}
			results[w] = out
		}()
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		require.Equal(t, results[0], results[w], "worker %d", w)
	}
	for n, sym := range results[0] {
		assert.Equal(t, fmt.Sprintf("id%d", n), s.ResolveSymbol(sym))
	}
	st := s.Stats()
	assert.Equal(t, len(symbol.Predefined())+names, st.Symbols)
	assert.Equal(t, names, st.InternedSpans)
}

func TestSymbolsIteration(t *testing.T) {
	s := New()
	defer s.Close()
	s.InternSymbol("zeta")
	var last string
	count := 0
	s.Symbols(func(_ symbol.Symbol, text string) bool {
		count++
		last = text
		return true
	})
	assert.Equal(t, len(symbol.Predefined())+1, count)
	assert.Equal(t, "zeta", last)
}
