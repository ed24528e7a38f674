package token

import (
	"fmt"
	"strings"
)

// Token is one lexeme: a kind and a byte length.
type Token struct {
	Kind Kind
	Len  uint32
	// Terminated is set for block comments closed at depth zero.
	Terminated bool
	// Literal describes Literal tokens.
	Literal LiteralData
}

// LiteralData is the payload of a Literal token.
type LiteralData struct {
	Kind LiteralKind

	// Numeric only.
	Base          Base
	EmptyInt      bool
	EmptyExponent bool

	// Str only.
	Terminated bool

	// SuffixStart is the offset, relative to the token start, of an
	// identifier-shaped suffix. It equals the token length when there is none.
	SuffixStart uint32
}

// HasSuffix reports whether the literal carries a suffix such as the BigInt `n`.
func (t Token) HasSuffix() bool {
	return t.Kind == Literal && t.Literal.SuffixStart < t.Len
}

// IsUnterminated reports whether a block comment or string literal ran into EOF.
func (t Token) IsUnterminated() bool {
	switch t.Kind {
	case BlockComment:
		return !t.Terminated
	case Literal:
		return t.Literal.Kind == Str && !t.Literal.Terminated
	default:
		return false
	}
}

// String renders the token in a stable, compact form used by golden files and
// the CLI, e.g. `Literal(Numeric{Hexadecimal, empty_int}) len=2`.
func (t Token) String() string {
	var b strings.Builder
	b.WriteString(t.Kind.String())
	switch t.Kind {
	case BlockComment:
		fmt.Fprintf(&b, "{terminated:%t}", t.Terminated)
	case Literal:
		b.WriteByte('(')
		b.WriteString(t.Literal.String())
		if t.HasSuffix() {
			fmt.Fprintf(&b, ", suffix@%d", t.Literal.SuffixStart)
		}
		b.WriteByte(')')
	}
	fmt.Fprintf(&b, " len=%d", t.Len)
	return b.String()
}

func (l LiteralData) String() string {
	if l.Kind == Str {
		return fmt.Sprintf("Str{terminated:%t}", l.Terminated)
	}
	var flags []string
	flags = append(flags, l.Base.String())
	if l.EmptyInt {
		flags = append(flags, "empty_int")
	}
	if l.EmptyExponent {
		flags = append(flags, "empty_exponent")
	}
	return "Numeric{" + strings.Join(flags, ", ") + "}"
}
