package diag

import (
	"fmt"
	"sort"
	"strings"

	"tscore/internal/source"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShort renders diagnostics one per line as
// `severity CODE path:line:col message`, sorted by location. Positions that no
// file in sm contains are dropped. Golden files and the CLI short format share it.
func FormatShort(diags []Diagnostic, sm *source.SourceMap, includeNotes bool) string {
	if sm == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]shortDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = appendDiagnostic(rendered, &diags[i], sm, includeNotes)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for _, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s\n", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
	}
	return b.String()
}

func appendDiagnostic(out []shortDiagnostic, d *Diagnostic, sm *source.SourceMap, includeNotes bool) []shortDiagnostic {
	if path, lc, ok := sm.Resolve(d.Primary.Lo); ok {
		out = append(out, shortDiagnostic{
			Severity: SeverityLabel(d.Severity),
			Code:     d.Code.ID(),
			Path:     path,
			Line:     lc.Line,
			Column:   lc.Col,
			Message:  sanitizeMessage(d.Message),
		})
	}
	if !includeNotes {
		return out
	}
	for _, note := range d.Notes {
		path, lc, ok := sm.Resolve(note.Span.Lo)
		if !ok {
			continue
		}
		out = append(out, shortDiagnostic{
			Severity: "note",
			Code:     d.Code.ID(),
			Path:     path,
			Line:     lc.Line,
			Column:   lc.Col,
			Message:  sanitizeMessage(note.Msg),
		})
	}
	return out
}

// SeverityLabel is the lower-case severity used in short output.
func SeverityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
