package symbol

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscore/internal/source"
)

func TestPredefinedOrder(t *testing.T) {
	in := NewInterner()
	require.Equal(t, len(predefined), in.Len())

	tests := map[Symbol]string{
		Empty:         "",
		KwAbstract:    "abstract",
		KwAny:         "any",
		KwConstructor: "constructor",
		KwInstanceOf:  "instanceof",
		KwKeyOf:       "keyof",
		KwTypeOf:      "typeof",
		KwYield:       "yield",
		SymBigInt:     "BigInt",
		SymString:     "String",
	}
	for sym, want := range tests {
		assert.Equal(t, want, in.Get(sym))
		assert.Equal(t, sym, in.Intern(want), "interning %q again", want)
	}
	assert.Equal(t, Symbol(1), KwAbstract)
	assert.Equal(t, SymBigInt, KwYield+1)
	assert.Equal(t, len(predefined), in.Len(), "re-interning keywords must not grow the table")
}

func TestPredefinedMatchesTable(t *testing.T) {
	in := NewInterner()
	for i, s := range Predefined() {
		assert.Equal(t, Symbol(i), in.Intern(s), "%q", s)
	}
}

func TestDigits(t *testing.T) {
	in := NewInterner()
	for n := range 10 {
		assert.Equal(t, strconv.Itoa(n), in.Get(Digit(n)))
		assert.Equal(t, Digit(n), in.Intern(strconv.Itoa(n)))
	}
	assert.Panics(t, func() { Digit(10) })
	assert.Panics(t, func() { Digit(-1) })
}

func TestInternDeduplicates(t *testing.T) {
	in := NewInterner()
	base := in.Len()
	a := in.Intern("console")
	b := in.Intern("console")
	c := in.Intern("log")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, Symbol(base), a)
	assert.Equal(t, Symbol(base+1), c)
	assert.Equal(t, base+2, in.Len())
	assert.Equal(t, "console", in.Get(a))
	assert.Equal(t, "log", c.AsStr(in))
}

func TestInternCopiesInput(t *testing.T) {
	in := NewInterner()
	buf := []byte("mutable")
	sym := in.Intern(string(buf))
	buf[0] = 'M'
	assert.Equal(t, "mutable", in.Get(sym))
}

func TestInternManyStrings(t *testing.T) {
	in := NewInterner()
	syms := make([]Symbol, 0, 20000)
	for i := range 20000 {
		syms = append(syms, in.Intern(fmt.Sprintf("name_%d", i)))
	}
	for i, sym := range syms {
		require.Equal(t, fmt.Sprintf("name_%d", i), in.Get(sym))
	}
	assert.Greater(t, in.Bytes(), 0)
}

func TestPrefill(t *testing.T) {
	in := Prefill([]string{"a", "b", ""})
	assert.Equal(t, Symbol(0), in.Intern("a"))
	assert.Equal(t, Symbol(2), in.Intern(""))
	assert.Equal(t, 3, in.Len())

	assert.Panics(t, func() { Prefill([]string{"x", "y", "x"}) })
}

func TestFind(t *testing.T) {
	in := NewInterner()
	_, ok := in.Find("fresh")
	assert.False(t, ok)
	assert.Equal(t, len(predefined), in.Len())

	sym, ok := in.Find("let")
	assert.True(t, ok)
	assert.Equal(t, KwLet, sym)
}

func TestGetOutOfRange(t *testing.T) {
	in := NewInterner()
	_, ok := in.Lookup(Symbol(in.Len()))
	assert.False(t, ok)
	assert.Panics(t, func() { in.Get(Symbol(in.Len())) })
}

func TestAll(t *testing.T) {
	in := Prefill([]string{"x", "y"})
	var got []string
	for sym, s := range in.All() {
		assert.Equal(t, s, in.Get(sym))
		got = append(got, s)
	}
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestSymbolPredicates(t *testing.T) {
	assert.True(t, Empty.IsEmpty())
	assert.False(t, Empty.IsKeyword())
	assert.True(t, KwAbstract.IsKeyword())
	assert.True(t, KwYield.IsKeyword())
	assert.False(t, SymBigInt.IsKeyword())
	assert.False(t, Digit(0).IsKeyword())
	assert.True(t, KwTrue.IsBoolLit())
	assert.True(t, KwFalse.IsBoolLit())
	assert.False(t, KwNull.IsBoolLit())
}

func TestIdent(t *testing.T) {
	in := NewInterner()
	span := source.NewSpan(nil, 4, 8)
	quoted := NewIdent(in.Intern("'foo"), span)
	plain := quoted.WithoutFirstQuote(in, in.Intern)

	assert.Equal(t, "foo", plain.AsStr(in))
	assert.Equal(t, span, plain.Span)
	assert.Equal(t, plain, plain.WithoutFirstQuote(in, in.Intern))

	other := WithDummySpan(plain.Name)
	assert.True(t, plain.Equal(other))
	assert.True(t, other.Span.IsDummy())
	assert.False(t, plain.IsReserved())
	assert.True(t, WithDummySpan(KwClass).IsReserved())
}
