package diag

import (
	"tscore/internal/source"
)

type Note struct {
	Span source.SpanData
	Msg  string
}

type FixEdit struct {
	Span    source.SpanData
	NewText string
}

type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic spans are decoded ranges in SourceMap position space, so a
// diagnostic stays readable after the session that produced it is closed.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.SpanData
	Notes    []Note
	Fixes    []Fix
}

func New(sev Severity, code Code, primary source.SpanData, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.SpanData, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.SpanData, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
