package scanner

import (
	"fmt"
	"strings"

	"tscore/internal/diag"
	"tscore/internal/source"
	"tscore/internal/token"
)

func (s *Scanner) cookNumber(lx *Lexeme, text string, span source.SpanData) {
	lit := lx.Raw.Literal
	body := text[:lit.SuffixStart]
	lx.Symbol = s.sess.InternSymbol(text)
	at := func(lo, hi int) source.SpanData {
		return source.SpanData{Lo: span.Lo + source.BytePos(lo), Hi: span.Lo + source.BytePos(hi)}
	}

	digits := body
	switch lit.Base {
	case token.Hexadecimal:
		lx.Flags |= HexSpecifier
		digits = body[2:]
	case token.Binary:
		lx.Flags |= BinarySpecifier
		digits = body[2:]
	case token.Octal:
		lx.Flags |= OctalSpecifier
		digits = body[2:]
	}
	prefixLen := len(body) - len(digits)

	if strings.ContainsRune(body, '_') {
		lx.Flags |= ContainsSeparator
		if i := misplacedSeparator(digits, lit.Base); i >= 0 {
			diag.ReportError(s.opts.Reporter, diag.LexSeparatorPlacement, at(prefixLen+i, prefixLen+i+1),
				"numeric separators are only allowed between digits").Emit()
		}
	}

	if lit.EmptyInt {
		lx.Flags |= EmptyInt
		diag.ReportError(s.opts.Reporter, diag.LexEmptyDigits, span,
			fmt.Sprintf("digits expected after %q", body[:2])).Emit()
	}

	float := false
	if lit.Base == token.Decimal {
		float = strings.ContainsRune(body, '.')
		if strings.ContainsAny(body, "eE") {
			lx.Flags |= Scientific
			float = true
		}
		if isLegacyOctal(body) {
			lx.Flags |= Octal
			diag.ReportWarning(s.opts.Reporter, diag.LexLegacyOctal, span,
				"octal literals must use the 0o prefix").
				WithFix("use the 0o prefix", diag.FixEdit{Span: at(0, 1), NewText: "0o"}).
				Emit()
		}
	}

	if lit.EmptyExponent {
		lx.Flags |= EmptyExponent
		diag.ReportError(s.opts.Reporter, diag.LexEmptyExponent, span, "exponent requires at least one digit").Emit()
	}

	if i := invalidDigit(digits, lit.Base); i >= 0 {
		lx.Flags |= InvalidDigit
		base := strings.ToLower(lit.Base.String())
		msg := fmt.Sprintf("digit %q is not valid in a %s literal", digits[i], base)
		if isFractionOrExponent(digits[i], lit.Base) {
			msg = fmt.Sprintf("%s literals cannot have a fraction or exponent", base)
		}
		diag.ReportError(s.opts.Reporter, diag.LexInvalidDigit, at(prefixLen+i, prefixLen+i+1), msg).Emit()
	}

	if lx.Raw.HasSuffix() {
		lx.Flags |= HasSuffix
		suffix := text[lit.SuffixStart:]
		// `n` marks a BigInt; it only applies to integers.
		if suffix != "n" || float || lx.Flags.Has(Octal) {
			diag.ReportError(s.opts.Reporter, diag.LexInvalidSuffix, at(int(lit.SuffixStart), len(text)),
				fmt.Sprintf("invalid suffix %q on numeric literal", suffix)).Emit()
		}
	}
}

// isLegacyOctal reports literals such as 0777: a leading zero followed only by
// octal digits.
func isLegacyOctal(body string) bool {
	if len(body) < 2 || body[0] != '0' {
		return false
	}
	for i := 1; i < len(body); i++ {
		if body[i] < '0' || body[i] > '7' {
			return false
		}
	}
	return true
}

// invalidDigit returns the index of the first character after a radix prefix
// that is neither a digit of base nor '_', or -1. The tokenizer lets decimal
// digits, fractions and exponents follow any prefix, so all of them land here.
func invalidDigit(digits string, base token.Base) int {
	var valid func(byte) bool
	switch base {
	case token.Binary:
		valid = func(c byte) bool { return c == '0' || c == '1' }
	case token.Octal:
		valid = func(c byte) bool { return '0' <= c && c <= '7' }
	case token.Hexadecimal:
		valid = func(c byte) bool { return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F' }
	default:
		return -1
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c != '_' && !valid(c) {
			return i
		}
	}
	return -1
}

// isFractionOrExponent reports whether c can only start a fraction or an
// exponent in a prefixed literal.
func isFractionOrExponent(c byte, base token.Base) bool {
	switch c {
	case '.', '+', '-':
		return true
	case 'e', 'E':
		return base != token.Hexadecimal
	}
	return false
}

// misplacedSeparator returns the index of the first '_' that is not between
// two digits, or -1.
func misplacedSeparator(digits string, base token.Base) int {
	isDigit := func(c byte) bool {
		if base == token.Hexadecimal {
			return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
		}
		return '0' <= c && c <= '9'
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] != '_' {
			continue
		}
		if i == 0 || i == len(digits)-1 || !isDigit(digits[i-1]) || !isDigit(digits[i+1]) {
			return i
		}
	}
	return -1
}
