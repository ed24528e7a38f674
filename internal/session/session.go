// Package session owns the span and symbol interners of one compilation.
//
// Every Span longer than source.MaxLen and every Symbol is only meaningful
// together with the Session that produced it. Sessions are passed explicitly;
// there is no ambient default.
package session

import (
	"sync"
	"sync/atomic"

	"tscore/internal/source"
	"tscore/internal/symbol"
)

// Session is safe for concurrent use. Calling any method after Close panics.
type Session struct {
	closed atomic.Bool

	symMu   sync.RWMutex
	symbols *symbol.Interner

	spanMu sync.Mutex
	spans  *source.SpanInterner
}

// Stats summarizes the interners.
type Stats struct {
	Symbols       int
	SymbolBytes   int
	InternedSpans int
}

// New creates a session with a prefilled symbol table.
func New() *Session {
	return &Session{
		symbols: symbol.NewInterner(),
		spans:   source.NewSpanInterner(),
	}
}

// With runs f in a fresh session and closes it afterwards. Handles produced
// inside f must not outlive it.
func With[T any](f func(*Session) T) T {
	s := New()
	defer s.Close()
	return f(s)
}

// Close releases the interners. Closing twice panics.
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		panic("session: closed twice")
	}
	s.symMu.Lock()
	s.symbols = nil
	s.symMu.Unlock()
	s.spanMu.Lock()
	s.spans = nil
	s.spanMu.Unlock()
}

func (s *Session) live() {
	if s == nil {
		panic("session: nil session")
	}
	if s.closed.Load() {
		panic(errUseAfterClose)
	}
}

const errUseAfterClose = "session: use after Close"

// lookupSymbols runs f under the symbol read lock. Close may have run since
// the caller's live check, so the table is checked again under the lock.
func (s *Session) lookupSymbols(f func(*symbol.Interner)) {
	s.symMu.RLock()
	defer s.symMu.RUnlock()
	if s.symbols == nil {
		panic(errUseAfterClose)
	}
	f(s.symbols)
}

// InternSymbol returns the symbol for text.
func (s *Session) InternSymbol(text string) symbol.Symbol {
	s.live()
	// Most identifiers repeat, so try under the read lock first.
	var (
		sym symbol.Symbol
		ok  bool
	)
	s.lookupSymbols(func(in *symbol.Interner) { sym, ok = in.Find(text) })
	if ok {
		return sym
	}

	s.symMu.Lock()
	defer s.symMu.Unlock()
	s.live()
	return s.symbols.Intern(text)
}

// ResolveSymbol returns the text of sym. It panics if sym was not produced
// by this session.
func (s *Session) ResolveSymbol(sym symbol.Symbol) string {
	s.live()
	var text string
	s.lookupSymbols(func(in *symbol.Interner) { text = in.Get(sym) })
	return text
}

// MakeSpan encodes [lo, hi). Short spans are built without taking a lock.
func (s *Session) MakeSpan(lo, hi source.BytePos) source.Span {
	s.live()
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo <= source.MaxLen {
		return source.NewSpan(nil, lo, hi)
	}
	s.spanMu.Lock()
	defer s.spanMu.Unlock()
	s.live()
	return source.NewSpan(s.spans, lo, hi)
}

// ResolveSpan decodes sp.
func (s *Session) ResolveSpan(sp source.Span) source.SpanData {
	s.live()
	if sp.IsInline() {
		return sp.Data(nil)
	}
	s.spanMu.Lock()
	defer s.spanMu.Unlock()
	s.live()
	return sp.Data(s.spans)
}

// MakeIdent interns text and pairs it with the span [lo, hi).
func (s *Session) MakeIdent(text string, lo, hi source.BytePos) symbol.Ident {
	return symbol.NewIdent(s.InternSymbol(text), s.MakeSpan(lo, hi))
}

// Stats reports interner sizes.
func (s *Session) Stats() Stats {
	s.live()
	var st Stats
	s.lookupSymbols(func(in *symbol.Interner) {
		st.Symbols = in.Len()
		st.SymbolBytes = in.Bytes()
	})
	s.spanMu.Lock()
	defer s.spanMu.Unlock()
	s.live()
	st.InternedSpans = s.spans.Len()
	return st
}

// Symbols calls yield for every interned symbol in index order while holding
// the symbol lock; yield must not call back into the session.
func (s *Session) Symbols(yield func(symbol.Symbol, string) bool) {
	s.live()
	s.lookupSymbols(func(in *symbol.Interner) {
		for sym, text := range in.All() {
			if !yield(sym, text) {
				return
			}
		}
	})
}
