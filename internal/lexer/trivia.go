package lexer

// IsWhitespace reports whether r is white space that does not end a line.
func IsWhitespace(r rune) bool {
	switch r {
	case '\t', // character tabulation
		'\v',     // line tabulation
		'\f',     // form feed
		' ',      // space
		'\u00a0', // no-break space
		'\u1680', // ogham space mark
		'\u180e', // mongolian vowel separator
		'\u2000', // en quad
		'\u2001', // em quad
		'\u2002', // en space
		'\u2003', // em space
		'\u2004', // three-per-em space
		'\u2005', // four-per-em space
		'\u2006', // six-per-em space
		'\u2007', // figure space
		'\u2008', // punctuation space
		'\u2009', // thin space
		'\u200a', // hair space
		'\u200b', // zero width space
		'\u200c', // zero width non-joiner
		'\u200d', // zero width joiner
		'\u202f', // narrow no-break space
		'\u205f', // medium mathematical space
		'\u2060', // word joiner
		'\u3000', // ideographic space
		'\ufeff': // zero width no-break space (BOM)
		return true
	}
	return false
}

// IsLineBreak reports whether r is a line terminator.
func IsLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

// lineComment consumes the second '/' and the rest of the line.
func (c *Cursor) lineComment() {
	c.Bump()
	c.EatWhile(func(r rune) bool { return !IsLineBreak(r) })
}

// blockComment consumes the '*' after the opening '/' and the comment body,
// honouring nesting. It reports whether every opened comment was closed.
func (c *Cursor) blockComment() bool {
	c.Bump()
	depth := 1
	for {
		r, ok := c.Bump()
		if !ok {
			return false
		}
		switch {
		case r == '/' && c.First() == '*':
			c.Bump()
			depth++
		case r == '*' && c.First() == '/':
			c.Bump()
			depth--
			if depth == 0 {
				return true
			}
		}
	}
}

// StripShebang returns the length of a leading `#!` line, excluding its line
// terminator.
func StripShebang(input string) (int, bool) {
	if len(input) < 2 || input[0] != '#' || input[1] != '!' {
		return 0, false
	}
	c := NewCursor(input)
	c.EatWhile(func(r rune) bool { return !IsLineBreak(r) })
	return c.LenConsumed(), true
}
