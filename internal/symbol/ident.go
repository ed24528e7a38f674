package symbol

import (
	"strings"

	"tscore/internal/source"
)

// Ident is a name together with where it was written. It does not own the
// name; resolve it through the owning session.
type Ident struct {
	Name Symbol
	Span source.Span
}

// NewIdent pairs a name with a span.
func NewIdent(name Symbol, span source.Span) Ident {
	return Ident{Name: name, Span: span}
}

// WithDummySpan makes an identifier with no real position.
func WithDummySpan(name Symbol) Ident {
	return Ident{Name: name, Span: source.DummySpan}
}

// Equal compares names only; spans are ignored.
func (id Ident) Equal(other Ident) bool {
	return id.Name == other.Name
}

// AsStr returns the identifier text.
func (id Ident) AsStr(r Resolver) string {
	return id.Name.AsStr(r)
}

// IsReserved reports whether the name is a reserved word.
func (id Ident) IsReserved() bool {
	return id.Name.IsKeyword()
}

// WithoutFirstQuote strips a leading `'` from the name, interning the
// shortened text with intern. The span is kept.
func (id Ident) WithoutFirstQuote(r Resolver, intern func(string) Symbol) Ident {
	text := id.AsStr(r)
	trimmed, ok := strings.CutPrefix(text, "'")
	if !ok {
		return id
	}
	return Ident{Name: intern(trimmed), Span: id.Span}
}
