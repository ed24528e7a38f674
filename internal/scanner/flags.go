package scanner

import "strings"

// Flags describe a lexeme beyond its kind.
type Flags uint32

const (
	// PrecedingLineBreak is set when trivia before the lexeme contains a line break.
	PrecedingLineBreak Flags = 1 << iota
	// Unterminated marks a string literal that ran into end of input.
	Unterminated
	// Scientific marks a decimal literal with an exponent.
	Scientific
	// Octal marks a legacy octal literal such as 0777.
	Octal
	HexSpecifier
	BinarySpecifier
	OctalSpecifier
	// ContainsSeparator marks a numeric literal with '_' separators.
	ContainsSeparator
	EmptyInt
	EmptyExponent
	// InvalidDigit marks a digit outside the literal's radix.
	InvalidDigit
	HasSuffix
	// ContainsEscape marks a string literal with a backslash.
	ContainsEscape
	// Keyword marks an identifier that is a reserved word.
	Keyword
)

var flagNames = [...]string{
	"PrecedingLineBreak",
	"Unterminated",
	"Scientific",
	"Octal",
	"HexSpecifier",
	"BinarySpecifier",
	"OctalSpecifier",
	"ContainsSeparator",
	"EmptyInt",
	"EmptyExponent",
	"InvalidDigit",
	"HasSuffix",
	"ContainsEscape",
	"Keyword",
}

// Has reports whether all bits of mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Names returns the set flags by name, in bit order.
func (f Flags) Names() []string {
	var out []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			out = append(out, name)
		}
	}
	return out
}
