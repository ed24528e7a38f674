package token

// Kind represents the category of a raw token.
type Kind uint8

const (
	// LineComment is `// ...` up to, not including, the line terminator.
	LineComment Kind = iota
	// BlockComment is `/* ... */`; nested comments are part of one token.
	BlockComment
	// Whitespace is a run of non-line-terminating white space.
	Whitespace
	// LineBreak is a run of line terminators (LF, CR, LS, PS).
	LineBreak
	// Ident is an identifier or keyword.
	Ident
	// Literal is a numeric or quoted literal, see LiteralData.
	Literal

	Semi         // ;
	Comma        // ,
	Dot          // .
	OpenParen    // (
	CloseParen   // )
	OpenBrace    // {
	CloseBrace   // }
	OpenBracket  // [
	CloseBracket // ]
	At           // @
	Pound        // #
	Tilde        // ~
	Question     // ?
	Colon        // :
	Dollar       // $
	Eq           // =
	Bang         // !
	Lt           // <
	Gt           // >
	Minus        // -
	And          // &
	Or           // |
	Plus         // +
	Star         // *
	Slash        // /
	Caret        // ^
	Percent      // %

	// Unknown is any character the tokenizer does not recognize.
	Unknown
)

var kindNames = [...]string{
	LineComment:  "LineComment",
	BlockComment: "BlockComment",
	Whitespace:   "Whitespace",
	LineBreak:    "LineBreak",
	Ident:        "Ident",
	Literal:      "Literal",
	Semi:         "Semi",
	Comma:        "Comma",
	Dot:          "Dot",
	OpenParen:    "OpenParen",
	CloseParen:   "CloseParen",
	OpenBrace:    "OpenBrace",
	CloseBrace:   "CloseBrace",
	OpenBracket:  "OpenBracket",
	CloseBracket: "CloseBracket",
	At:           "At",
	Pound:        "Pound",
	Tilde:        "Tilde",
	Question:     "Question",
	Colon:        "Colon",
	Dollar:       "Dollar",
	Eq:           "Eq",
	Bang:         "Bang",
	Lt:           "Lt",
	Gt:           "Gt",
	Minus:        "Minus",
	And:          "And",
	Or:           "Or",
	Plus:         "Plus",
	Star:         "Star",
	Slash:        "Slash",
	Caret:        "Caret",
	Percent:      "Percent",
	Unknown:      "Unknown",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// punctByChar maps one-character punctuators to their kinds. Slash is not
// listed: it is resolved after the comment checks.
var punctByChar = [128]Kind{
	';': Semi,
	',': Comma,
	'.': Dot,
	'(': OpenParen,
	')': CloseParen,
	'{': OpenBrace,
	'}': CloseBrace,
	'[': OpenBracket,
	']': CloseBracket,
	'@': At,
	'#': Pound,
	'~': Tilde,
	'?': Question,
	':': Colon,
	'$': Dollar,
	'=': Eq,
	'!': Bang,
	'<': Lt,
	'>': Gt,
	'-': Minus,
	'&': And,
	'|': Or,
	'+': Plus,
	'*': Star,
	'^': Caret,
	'%': Percent,
}

// Punct returns the one-character punctuator kind for r.
func Punct(r rune) (Kind, bool) {
	if r <= 0 || r >= 128 {
		return Unknown, false
	}
	k := punctByChar[r]
	// LineComment is the zero Kind and never a punctuator.
	return k, k != LineComment
}

// IsTrivia reports whether k carries no syntax: comments, whitespace and line breaks.
func (k Kind) IsTrivia() bool {
	switch k {
	case LineComment, BlockComment, Whitespace, LineBreak:
		return true
	default:
		return false
	}
}

// IsPunct reports whether k is a one-character punctuator.
func (k Kind) IsPunct() bool {
	return k >= Semi && k <= Percent
}

// Base is the radix of a numeric literal.
type Base uint8

const (
	Decimal Base = iota
	Binary
	Octal
	Hexadecimal
)

func (b Base) String() string {
	switch b {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Hexadecimal:
		return "Hexadecimal"
	default:
		return "Decimal"
	}
}

// Radix returns the numeric radix of b.
func (b Base) Radix() int {
	switch b {
	case Binary:
		return 2
	case Octal:
		return 8
	case Hexadecimal:
		return 16
	default:
		return 10
	}
}

// LiteralKind separates numeric from quoted literals.
type LiteralKind uint8

const (
	Numeric LiteralKind = iota
	Str
)

func (k LiteralKind) String() string {
	if k == Str {
		return "Str"
	}
	return "Numeric"
}
