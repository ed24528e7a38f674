package lexer

import (
	"iter"

	"tscore/internal/ident"
	"tscore/internal/token"
)

// AdvanceToken consumes one token from the cursor. The cursor must be positioned
// at the start of the token and not at end of input; lengths are measured from
// the cursor's start, so callers use a fresh cursor per token (see FirstToken).
func (c *Cursor) AdvanceToken() token.Token {
	first, ok := c.Bump()
	if !ok {
		panic("lexer: AdvanceToken at end of input")
	}

	var tok token.Token
	switch {
	case first == '/':
		switch c.First() {
		case '/':
			c.lineComment()
			tok.Kind = token.LineComment
		case '*':
			tok.Kind = token.BlockComment
			tok.Terminated = c.blockComment()
		default:
			tok.Kind = token.Slash
		}

	case IsWhitespace(first):
		c.EatWhile(IsWhitespace)
		tok.Kind = token.Whitespace

	case IsLineBreak(first):
		c.EatWhile(IsLineBreak)
		tok.Kind = token.LineBreak

	case ident.IsIDStart(first):
		c.EatWhile(ident.IsIDPart)
		tok.Kind = token.Ident

	case isDecDigit(first), first == '.' && isDecDigit(c.First()):
		tok.Kind = token.Literal
		tok.Literal = c.number(first)
		tok.Literal.SuffixStart = c.lenConsumed32()
		c.eatLiteralSuffix()

	case first == '"', first == '\'', first == '`':
		terminated := c.quoted(first)
		tok.Kind = token.Literal
		tok.Literal = token.LiteralData{
			Kind:        token.Str,
			Terminated:  terminated,
			SuffixStart: c.lenConsumed32(),
		}
		if terminated {
			c.eatLiteralSuffix()
		}

	default:
		kind, ok := token.Punct(first)
		if !ok {
			kind = token.Unknown
		}
		tok.Kind = kind
	}

	tok.Len = c.lenConsumed32()
	return tok
}

// FirstToken lexes the first token of a non-empty input.
func FirstToken(input string) token.Token {
	c := NewCursor(input)
	return c.AdvanceToken()
}

// Tokenize returns the tokens of input as a lazy sequence. Each iteration
// re-tokenizes from the start.
func Tokenize(input string) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		lx := New(input)
		for {
			tok, ok := lx.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Lexer walks the tokens of one input and tracks the running byte offset.
type Lexer struct {
	input string
	off   int
}

// New creates a lexer at the start of input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token, or false once the input is exhausted.
func (lx *Lexer) Next() (token.Token, bool) {
	if lx.off >= len(lx.input) {
		return token.Token{}, false
	}
	tok := FirstToken(lx.input[lx.off:])
	lx.off += int(tok.Len)
	return tok, true
}

// Offset returns the byte offset of the next token.
func (lx *Lexer) Offset() int {
	return lx.off
}

// Skip advances past n bytes without tokenizing them, e.g. a shebang line.
func (lx *Lexer) Skip(n int) {
	lx.off = min(lx.off+n, len(lx.input))
}

func isDecDigit(r rune) bool { return '0' <= r && r <= '9' }

func isHexDigit(r rune) bool {
	return isDecDigit(r) || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}
