// Package symbol interns strings into dense Symbol handles.
//
// An Interner built by NewInterner is prefilled with the predefined table:
// the empty string, the reserved words, a few common global names and the ten
// decimal digits. Their symbols are the constants in this package, so keyword
// tests are integer comparisons.
//
// Symbols compare and order by index. Resolve them through the Interner (or
// session) that produced them to get text or lexical order.
package symbol

import "fmt"

// Symbol is a dense index into an Interner's string table.
type Symbol uint32

// Resolver turns symbols back into text. A session and an Interner both
// implement it.
type Resolver interface {
	ResolveSymbol(Symbol) string
}

// AsStr returns the text of s as known to r.
func (s Symbol) AsStr(r Resolver) string {
	return r.ResolveSymbol(s)
}

// IsEmpty reports whether s is the empty string.
func (s Symbol) IsEmpty() bool {
	return s == Empty
}

// IsKeyword reports whether s is one of the predefined reserved words.
func (s Symbol) IsKeyword() bool {
	return firstKeyword <= s && s <= lastKeyword
}

// IsBoolLit reports whether s is `true` or `false`.
func (s Symbol) IsBoolLit() bool {
	return s == KwTrue || s == KwFalse
}

func (s Symbol) String() string {
	if int(s) < len(predefined) {
		return fmt.Sprintf("Symbol(%d %q)", uint32(s), predefined[s])
	}
	return fmt.Sprintf("Symbol(%d)", uint32(s))
}
