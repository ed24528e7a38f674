package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// EOFChar is returned by First and Second past the end of input. A literal NUL
// in the source is indistinguishable from it; callers that care use IsEOF.
const EOFChar rune = '\x00'

// Cursor reads characters from a borrowed string with two characters of lookahead.
// Invalid UTF-8 decodes as utf8.RuneError one byte at a time, so the cursor
// always makes progress.
type Cursor struct {
	input string
	pos   int
}

// NewCursor creates a cursor at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{input: input}
}

// decodeAt returns the rune at byte offset off and its width.
func (c *Cursor) decodeAt(off int) (rune, int) {
	if off >= len(c.input) {
		return EOFChar, 0
	}
	if b := c.input[off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.input[off:])
}

// First peeks the next character without consuming it.
func (c *Cursor) First() rune {
	r, _ := c.decodeAt(c.pos)
	return r
}

// Second peeks the character after First.
func (c *Cursor) Second() rune {
	_, w := c.decodeAt(c.pos)
	if w == 0 {
		return EOFChar
	}
	r, _ := c.decodeAt(c.pos + w)
	return r
}

// Bump consumes one character. It returns false at end of input.
func (c *Cursor) Bump() (rune, bool) {
	r, w := c.decodeAt(c.pos)
	if w == 0 {
		return EOFChar, false
	}
	c.pos += w
	return r, true
}

// IsEOF reports whether all input has been consumed.
func (c *Cursor) IsEOF() bool {
	return c.pos >= len(c.input)
}

// EatWhile consumes characters while pred holds and input remains.
func (c *Cursor) EatWhile(pred func(rune) bool) {
	for !c.IsEOF() && pred(c.First()) {
		c.Bump()
	}
}

// LenConsumed returns the number of bytes consumed so far.
func (c *Cursor) LenConsumed() int {
	return c.pos
}

// Rest returns the unconsumed input.
func (c *Cursor) Rest() string {
	return c.input[c.pos:]
}

// lenConsumed32 is LenConsumed narrowed to a token length.
func (c *Cursor) lenConsumed32() uint32 {
	n, err := safecast.Conv[uint32](c.pos)
	if err != nil {
		panic(fmt.Errorf("token length overflow: %w", err))
	}
	return n
}
