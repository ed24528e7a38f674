// Package testkit holds invariant checks shared by unit tests and fuzz targets.
package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"tscore/internal/ident"
	"tscore/internal/lexer"
	"tscore/internal/token"
)

// CheckTokenInvariants verifies a raw token stream against its input:
// 1) every token is non-empty
// 2) token lengths add up to the input length
// 3) literal suffix offsets lie inside their token
// 4) identifier, whitespace and line break tokens contain only their class
func CheckTokenInvariants(input string, toks []token.Token) error {
	var off uint32
	total, err := safecast.Conv[uint32](len(input))
	if err != nil {
		return fmt.Errorf("input length overflow: %w", err)
	}
	for i, tok := range toks {
		if tok.Len == 0 {
			return fmt.Errorf("token %d (%v) is empty", i, tok)
		}
		if off+tok.Len > total {
			return fmt.Errorf("token %d (%v) at %d runs past end of input (%d)", i, tok, off, total)
		}
		text := input[off : off+tok.Len]
		switch tok.Kind {
		case token.Literal:
			if tok.Literal.SuffixStart > tok.Len {
				return fmt.Errorf("token %d (%v): suffix start past token end", i, tok)
			}
		case token.Ident:
			if !ident.IsIdent(text) {
				return fmt.Errorf("token %d: %q is not an identifier", i, text)
			}
		case token.Whitespace:
			if strings.IndexFunc(text, func(r rune) bool { return !lexer.IsWhitespace(r) }) >= 0 {
				return fmt.Errorf("token %d: %q is not all whitespace", i, text)
			}
		case token.LineBreak:
			if strings.IndexFunc(text, func(r rune) bool { return !lexer.IsLineBreak(r) }) >= 0 {
				return fmt.Errorf("token %d: %q is not all line breaks", i, text)
			}
		}
		off += tok.Len
	}
	if off != total {
		return fmt.Errorf("tokens cover %d bytes, input has %d", off, total)
	}
	return nil
}
