package lexer

import "tscore/internal/ident"

// quoted scans the body of a '"', '\'' or '`' literal after its opening quote
// and reports whether the closing quote was found. Only `\\` and an escaped
// quote are recognized; other escapes are ordinary text here.
func (c *Cursor) quoted(quote rune) bool {
	for {
		r, ok := c.Bump()
		if !ok {
			return false
		}
		switch {
		case r == quote:
			return true
		case r == '\\':
			if next := c.First(); next == '\\' || next == quote {
				c.Bump()
			}
		}
	}
}

// eatLiteralSuffix consumes an identifier directly following a literal, such
// as the `n` of a BigInt.
func (c *Cursor) eatLiteralSuffix() {
	if !ident.IsIDStart(c.First()) {
		return
	}
	c.Bump()
	c.EatWhile(ident.IsIDPart)
}
