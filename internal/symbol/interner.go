package symbol

import (
	"fmt"
	"iter"

	"fortio.org/safecast"

	"tscore/internal/arena"
)

// Interner maps strings to symbols and back. Interned text is copied into an
// arena that lives as long as the Interner.
//
// Interner is not safe for concurrent use; a session guards it with a lock.
type Interner struct {
	arena   arena.Strings
	names   map[string]Symbol
	strings []string
}

// Prefill builds an interner whose first symbols are init, in order. It
// panics on duplicates, since that would break the index correspondence.
func Prefill(init []string) *Interner {
	in := &Interner{
		names:   make(map[string]Symbol, len(init)),
		strings: make([]string, 0, len(init)),
	}
	for i, s := range init {
		if _, dup := in.names[s]; dup {
			panic(fmt.Sprintf("symbol: duplicate prefill entry %q at %d", s, i))
		}
		in.add(s)
	}
	return in
}

// NewInterner returns an interner prefilled with the predefined table.
func NewInterner() *Interner {
	return Prefill(predefined[:])
}

// Intern returns the symbol for s, adding s if it is new.
func (in *Interner) Intern(s string) Symbol {
	if sym, ok := in.names[s]; ok {
		return sym
	}
	return in.add(s)
}

// Find returns the symbol for s without adding it.
func (in *Interner) Find(s string) (Symbol, bool) {
	sym, ok := in.names[s]
	return sym, ok
}

func (in *Interner) add(s string) Symbol {
	n, err := safecast.Conv[uint32](len(in.strings))
	if err != nil {
		panic(fmt.Errorf("symbol table overflow: %w", err))
	}
	sym := Symbol(n)
	owned := in.arena.Alloc(s)
	if in.names == nil {
		in.names = make(map[string]Symbol)
	}
	in.strings = append(in.strings, owned)
	in.names[owned] = sym
	return sym
}

// Get returns the text of sym. It panics if sym did not come from in.
func (in *Interner) Get(sym Symbol) string {
	s, ok := in.Lookup(sym)
	if !ok {
		panic(fmt.Sprintf("symbol: %d out of range (%d interned)", uint32(sym), len(in.strings)))
	}
	return s
}

// Lookup returns the text of sym, or false if sym is out of range.
func (in *Interner) Lookup(sym Symbol) (string, bool) {
	if int64(sym) >= int64(len(in.strings)) {
		return "", false
	}
	return in.strings[sym], true
}

// ResolveSymbol implements Resolver.
func (in *Interner) ResolveSymbol(sym Symbol) string {
	return in.Get(sym)
}

// Len returns the number of symbols, predefined ones included.
func (in *Interner) Len() int {
	return len(in.strings)
}

// Bytes returns the number of string bytes held by the arena.
func (in *Interner) Bytes() int {
	return in.arena.Size()
}

// All iterates over every symbol in index order.
func (in *Interner) All() iter.Seq2[Symbol, string] {
	return func(yield func(Symbol, string) bool) {
		for i, s := range in.strings {
			if !yield(Symbol(i), s) {
				return
			}
		}
	}
}
