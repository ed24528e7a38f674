package diagfmt

import (
	"encoding/json"
	"io"

	"tscore/internal/diag"
	"tscore/internal/source"
)

// LocationJSON is a resolved source range.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type FixEditJSON struct {
	Location    LocationJSON `json:"location"`
	NewText     string       `json:"new_text"`
	OldText     string       `json:"old_text,omitempty"`
	BeforeLines []string     `json:"before_lines,omitempty"`
	AfterLines  []string     `json:"after_lines,omitempty"`
}

type FixJSON struct {
	Title string        `json:"title"`
	Edits []FixEditJSON `json:"edits,omitempty"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the root of the JSON document.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Dropped     int              `json:"dropped,omitempty"`
}

// makeLocation resolves sp against sm. Byte offsets are file-relative. A span
// outside every file yields an empty file name and the raw positions.
func makeLocation(sp source.SpanData, sm *source.SourceMap, mode PathMode, baseDir string, includePositions bool) LocationJSON {
	f := lookupFile(sm, sp)
	if f == nil {
		return LocationJSON{StartByte: uint32(sp.Lo), EndByte: uint32(sp.Hi)}
	}
	loc := LocationJSON{
		File:      formatPath(f.Path, mode, baseDir),
		StartByte: uint32(sp.Lo - f.Base),
		EndByte:   uint32(sp.Hi - f.Base),
	}
	if includePositions {
		start, end := f.LineCol(sp.Lo), f.LineCol(sp.Hi)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// BuildDiagnosticsOutput builds the JSON document without serializing it.
func BuildDiagnosticsOutput(bag *diag.Bag, sm *source.SourceMap, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}

	loc := func(sp source.SpanData) LocationJSON {
		return makeLocation(sp, sm, opts.PathMode, opts.BaseDir, opts.IncludePositions)
	}

	diagnostics := make([]DiagnosticJSON, 0, n)
	for i := range n {
		d := &items[i]
		out := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: loc(d.Primary),
		}

		includeNotes := opts.IncludeNotes || d.Code == diag.ObsTimings
		if includeNotes && len(d.Notes) > 0 {
			out.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				out.Notes[j] = NoteJSON{Message: note.Msg, Location: loc(note.Span)}
			}
		}

		if opts.IncludeFixes && len(d.Fixes) > 0 {
			out.Fixes = make([]FixJSON, len(d.Fixes))
			for j, fix := range d.Fixes {
				fj := FixJSON{Title: fix.Title}
				for _, edit := range fix.Edits {
					ej := FixEditJSON{
						Location: loc(edit.Span),
						NewText:  edit.NewText,
						OldText:  oldText(sm, edit.Span),
					}
					if opts.IncludePreviews {
						if preview, err := buildFixEditPreview(sm, edit); err == nil {
							ej.BeforeLines = preview.before
							ej.AfterLines = preview.after
						}
					}
					fj.Edits = append(fj.Edits, ej)
				}
				out.Fixes[j] = fj
			}
		}
		diagnostics = append(diagnostics, out)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
		Dropped:     bag.Dropped() + len(items) - n,
	}
}

// JSON writes the diagnostics in bag as an indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, sm *source.SourceMap, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, sm, opts))
}

func oldText(sm *source.SourceMap, sp source.SpanData) string {
	if sp.Lo == sp.Hi {
		return ""
	}
	if f := lookupFile(sm, sp); f != nil {
		return f.Slice(sp)
	}
	return ""
}

// lookupFile returns the file holding all of sp, or nil.
func lookupFile(sm *source.SourceMap, sp source.SpanData) *source.File {
	if sm == nil {
		return nil
	}
	f := sm.Lookup(sp.Lo)
	if f == nil || !f.Contains(sp.Hi) {
		return nil
	}
	return f
}
