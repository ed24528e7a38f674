package lexer

import "tscore/internal/token"

// number scans a numeric literal whose first character, a digit or a '.'
// followed by a digit, has already been consumed.
//
// Digits after a 0b or 0o prefix are eaten as decimal digits; radix validity
// is left to the consumer so the token boundary does not depend on it.
func (c *Cursor) number(first rune) token.LiteralData {
	lit := token.LiteralData{Kind: token.Numeric, Base: token.Decimal}
	float := false

	switch first {
	case '0':
		var hasDigits bool
		switch c.First() {
		case 'b', 'B':
			lit.Base = token.Binary
			c.Bump()
			hasDigits = c.eatDecimalDigits()
		case 'o', 'O':
			lit.Base = token.Octal
			c.Bump()
			hasDigits = c.eatDecimalDigits()
		case 'x', 'X':
			lit.Base = token.Hexadecimal
			c.Bump()
			hasDigits = c.eatHexDigits()
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '_', '.', 'e', 'E':
			c.eatDecimalDigits()
			hasDigits = true
		default:
			// a lone 0
			return lit
		}
		if !hasDigits {
			lit.EmptyInt = true
			return lit
		}
	case '.':
		float = true
		c.eatDecimalDigits()
	default:
		c.eatDecimalDigits()
	}

	switch c.First() {
	case '.':
		// `12.foo()` stays an integer followed by a dot
		if float || !isDecDigit(c.Second()) {
			return lit
		}
		c.Bump()
		c.eatDecimalDigits()
		if r := c.First(); r == 'e' || r == 'E' {
			c.Bump()
			lit.EmptyExponent = !c.eatExponent()
		}
	case 'e', 'E':
		c.Bump()
		lit.EmptyExponent = !c.eatExponent()
	}
	return lit
}

// eatDecimalDigits consumes digits and '_' separators and reports whether any
// digit was seen.
func (c *Cursor) eatDecimalDigits() bool {
	return c.eatDigits(isDecDigit)
}

func (c *Cursor) eatHexDigits() bool {
	return c.eatDigits(isHexDigit)
}

func (c *Cursor) eatDigits(isDigit func(rune) bool) bool {
	hasDigits := false
	for {
		r := c.First()
		switch {
		case r == '_':
			c.Bump()
		case isDigit(r):
			hasDigits = true
			c.Bump()
		default:
			return hasDigits
		}
	}
}

// eatExponent consumes an optional sign and the exponent digits after 'e'.
func (c *Cursor) eatExponent() bool {
	if r := c.First(); r == '+' || r == '-' {
		c.Bump()
	}
	return c.eatDecimalDigits()
}
