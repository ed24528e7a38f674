// Package scanner turns raw tokens into positioned lexemes.
//
// A Lexeme carries an encoded span in the session's position space, a symbol
// for identifiers and literals, and Flags derived from the raw token and its
// text. Trivia is not returned; it only contributes PrecedingLineBreak.
// Lexical problems go to the optional diag.Reporter.
package scanner

import (
	"fmt"
	"iter"
	"strings"

	"tscore/internal/diag"
	"tscore/internal/lexer"
	"tscore/internal/session"
	"tscore/internal/source"
	"tscore/internal/symbol"
	"tscore/internal/token"
)

// Lexeme is a significant token with its position and cooked data.
type Lexeme struct {
	Kind   token.Kind
	Raw    token.Token
	Span   source.Span
	Symbol symbol.Symbol
	Flags  Flags
}

// IsKeyword reports whether the lexeme is a reserved word.
func (lx Lexeme) IsKeyword() bool {
	return lx.Flags.Has(Keyword)
}

// Options configure a Scanner.
type Options struct {
	// Reporter receives lexical diagnostics. It may be nil.
	Reporter diag.Reporter
	// SkipShebang drops a leading `#!` line.
	SkipShebang bool
}

// Scanner reads lexemes from one file.
type Scanner struct {
	sess *session.Session
	file *source.File
	opts Options

	next func() (token.Token, bool)
	off  int
}

// New scans the text of file.
func New(sess *session.Session, file *source.File, opts Options) *Scanner {
	lx := lexer.New(file.Text)
	s := &Scanner{sess: sess, file: file, opts: opts, next: lx.Next}
	if opts.SkipShebang {
		if n, ok := lexer.StripShebang(file.Text); ok {
			lx.Skip(n)
			s.off = n
		}
	}
	return s
}

// NewFromTokens scans file using raw tokens produced earlier, starting at
// byte offset start. The tokens must cover file.Text[start:] exactly.
func NewFromTokens(sess *session.Session, file *source.File, start int, toks []token.Token, opts Options) *Scanner {
	i := 0
	next := func() (token.Token, bool) {
		if i >= len(toks) {
			return token.Token{}, false
		}
		i++
		return toks[i-1], true
	}
	return &Scanner{sess: sess, file: file, opts: opts, next: next, off: start}
}

// File returns the file being scanned.
func (s *Scanner) File() *source.File {
	return s.file
}

// Offset returns the byte offset, within the file, of the next raw token.
func (s *Scanner) Offset() int {
	return s.off
}

// Next returns the next significant lexeme, or false at end of input.
func (s *Scanner) Next() (Lexeme, bool) {
	var flags Flags
	for {
		start := s.off
		tok, ok := s.next()
		if !ok {
			return Lexeme{}, false
		}
		s.off += int(tok.Len)
		if s.off > len(s.file.Text) {
			panic(fmt.Sprintf("scanner: token %v runs past end of %s", tok, s.file.Path))
		}
		text := s.file.Text[start:s.off]
		span := source.SpanData{Lo: s.file.Pos(start), Hi: s.file.Pos(s.off)}

		switch tok.Kind {
		case token.Whitespace, token.LineComment:
			continue
		case token.LineBreak:
			flags |= PrecedingLineBreak
			continue
		case token.BlockComment:
			if !tok.Terminated {
				diag.ReportError(s.opts.Reporter, diag.LexUnterminatedBlockComment, span, "unterminated block comment").
					WithFix("close the comment", diag.FixEdit{Span: source.SpanData{Lo: span.Hi, Hi: span.Hi}, NewText: "*/"}).
					Emit()
			}
			if strings.ContainsAny(text, "\n\r\u2028\u2029") {
				flags |= PrecedingLineBreak
			}
			continue
		}

		lx := Lexeme{
			Kind:  tok.Kind,
			Raw:   tok,
			Span:  s.sess.MakeSpan(span.Lo, span.Hi),
			Flags: flags,
		}
		s.cook(&lx, text, span)
		return lx, true
	}
}

// All returns the remaining lexemes as a sequence.
func (s *Scanner) All() iter.Seq[Lexeme] {
	return func(yield func(Lexeme) bool) {
		for {
			lx, ok := s.Next()
			if !ok || !yield(lx) {
				return
			}
		}
	}
}

// Text returns the source text of a lexeme produced by s.
func (s *Scanner) Text(lx Lexeme) string {
	return s.file.Slice(s.sess.ResolveSpan(lx.Span))
}

func (s *Scanner) cook(lx *Lexeme, text string, span source.SpanData) {
	switch lx.Kind {
	case token.Ident:
		lx.Symbol = s.sess.InternSymbol(text)
		if lx.Symbol.IsKeyword() {
			lx.Flags |= Keyword
		}
	case token.Literal:
		if lx.Raw.Literal.Kind == token.Str {
			s.cookString(lx, text, span)
		} else {
			s.cookNumber(lx, text, span)
		}
	case token.Unknown:
		diag.ReportError(s.opts.Reporter, diag.LexUnknownChar, span, fmt.Sprintf("invalid character %q", text)).Emit()
	}
}

func (s *Scanner) cookString(lx *Lexeme, text string, span source.SpanData) {
	lit := lx.Raw.Literal
	body := text[1:lit.SuffixStart]
	if lit.Terminated {
		body = body[:len(body)-1]
	} else {
		lx.Flags |= Unterminated
		diag.ReportError(s.opts.Reporter, diag.LexUnterminatedString, span, "unterminated string literal").
			WithFix("close the string", diag.FixEdit{Span: source.SpanData{Lo: span.Hi, Hi: span.Hi}, NewText: text[:1]}).
			Emit()
	}
	if strings.ContainsRune(body, '\\') {
		lx.Flags |= ContainsEscape
	}
	lx.Symbol = s.sess.InternSymbol(body)

	if lx.Raw.HasSuffix() {
		lx.Flags |= HasSuffix
		suffix := source.SpanData{Lo: span.Lo + source.BytePos(lit.SuffixStart), Hi: span.Hi}
		diag.ReportError(s.opts.Reporter, diag.LexInvalidSuffix, suffix,
			fmt.Sprintf("string literal cannot have suffix %q", text[lit.SuffixStart:])).Emit()
	}
}
