package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"tscore/internal/scanner"
	"tscore/internal/session"
	"tscore/internal/source"
	"tscore/internal/token"
)

// TokenOutput is one raw token in JSON output. Offsets are file-relative.
type TokenOutput struct {
	Kind  string `json:"kind"`
	Token string `json:"token"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
}

// LexemeOutput is one scanned lexeme in JSON output.
type LexemeOutput struct {
	TokenOutput
	Symbol uint32   `json:"symbol,omitempty"`
	Flags  []string `json:"flags,omitempty"`
}

// TokenRows converts raw tokens of file, the first at byte offset start, to
// output rows.
func TokenRows(file *source.File, start int, toks []token.Token) []TokenOutput {
	rows := make([]TokenOutput, 0, len(toks))
	off := start
	for _, tok := range toks {
		end := off + int(tok.Len)
		lc := file.LineCol(file.Pos(off))
		rows = append(rows, TokenOutput{
			Kind:  tok.Kind.String(),
			Token: tok.String(),
			Text:  file.Text[off:end],
			Start: off,
			End:   end,
			Line:  lc.Line,
			Col:   lc.Col,
		})
		off = end
	}
	return rows
}

// FormatTokensPretty writes raw tokens of file, the first starting at byte
// offset start, one per line.
func FormatTokensPretty(w io.Writer, file *source.File, start int, toks []token.Token) error {
	for i, row := range TokenRows(file, start, toks) {
		if _, err := fmt.Fprintf(w, "%4d: %-48s %q at %d:%d\n", i+1, row.Token, row.Text, row.Line, row.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes raw tokens as a JSON array.
func FormatTokensJSON(w io.Writer, file *source.File, start int, toks []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(TokenRows(file, start, toks))
}

// LexemeRows converts lexemes scanned from file to output rows.
func LexemeRows(sess *session.Session, file *source.File, lexemes []scanner.Lexeme) []LexemeOutput {
	rows := make([]LexemeOutput, 0, len(lexemes))
	for _, lx := range lexemes {
		sp := sess.ResolveSpan(lx.Span)
		lc := file.LineCol(sp.Lo)
		rows = append(rows, LexemeOutput{
			TokenOutput: TokenOutput{
				Kind:  lx.Kind.String(),
				Token: lx.Raw.String(),
				Text:  file.Slice(sp),
				Start: file.Offset(sp.Lo),
				End:   file.Offset(sp.Hi),
				Line:  lc.Line,
				Col:   lc.Col,
			},
			Symbol: uint32(lx.Symbol),
			Flags:  lx.Flags.Names(),
		})
	}
	return rows
}

// FormatLexemesPretty writes scanned lexemes with their flags, one per line.
func FormatLexemesPretty(w io.Writer, sess *session.Session, file *source.File, lexemes []scanner.Lexeme) error {
	for i, row := range LexemeRows(sess, file, lexemes) {
		flags := lexemes[i].Flags.String()
		if _, err := fmt.Fprintf(w, "%4d: %-12s %-24q at %d:%d flags=%s\n", i+1, row.Kind, row.Text, row.Line, row.Col, flags); err != nil {
			return err
		}
	}
	return nil
}

// FormatLexemesJSON writes scanned lexemes as a JSON array.
func FormatLexemesJSON(w io.Writer, sess *session.Session, file *source.File, lexemes []scanner.Lexeme) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(LexemeRows(sess, file, lexemes))
}
