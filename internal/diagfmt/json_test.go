package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"tscore/internal/diag"
	"tscore/internal/source"
)

func TestJSONBasic(t *testing.T) {
	sm := source.NewSourceMap()
	sm.AddVirtual("first.ts", "x")
	f := sm.AddVirtual("test.ts", "function f() {\n\tlet x = \"unterminated\n}")

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnterminatedString, span(f, 24, 37), "Unterminated string literal"))

	var buf bytes.Buffer
	err := JSON(&buf, bag, sm, JSONOpts{IncludePositions: true, PathMode: PathModeBasename, IncludeNotes: true, IncludeFixes: true})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %+v", output)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "LEX1002" {
		t.Errorf("unexpected severity/code %s/%s", d.Severity, d.Code)
	}
	want := LocationJSON{File: "test.ts", StartByte: 24, EndByte: 37, StartLine: 2, StartCol: 10, EndLine: 2, EndCol: 23}
	if d.Location != want {
		t.Errorf("location = %+v, want %+v", d.Location, want)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	sm := source.NewSourceMap()
	f := sm.AddVirtual("a.ts", "x = 0777")
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevWarning, diag.LexLegacyOctal, span(f, 4, 8), "legacy octal literal"))

	out := BuildDiagnosticsOutput(bag, sm, JSONOpts{})
	loc := out.Diagnostics[0].Location
	if loc.StartLine != 0 || loc.StartCol != 0 {
		t.Errorf("positions should be omitted, got %+v", loc)
	}
	if loc.StartByte != 4 || loc.EndByte != 8 {
		t.Errorf("byte range = %d..%d, want 4..8", loc.StartByte, loc.EndByte)
	}
	if out.Diagnostics[0].Severity != "WARNING" {
		t.Errorf("severity = %s", out.Diagnostics[0].Severity)
	}
}

func TestJSONMaxAndDropped(t *testing.T) {
	sm := source.NewSourceMap()
	f := sm.AddVirtual("a.ts", "@@@@")
	bag := diag.NewBag(3)
	for i := range 4 {
		bag.Add(diag.NewError(diag.LexUnknownChar, span(f, i, i+1), "invalid character"))
	}

	out := BuildDiagnosticsOutput(bag, sm, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
	// one dropped by the bag, one cut by Max
	if out.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", out.Dropped)
	}
}

func TestJSONNotesAndFixes(t *testing.T) {
	sm := source.NewSourceMap()
	f := sm.AddVirtual("a.ts", "let n = 0777;\n")
	d := diag.New(diag.SevWarning, diag.LexLegacyOctal, span(f, 8, 12), "legacy octal literal").
		WithNote(span(f, 8, 9), "leading zero").
		WithFix("use an explicit prefix", diag.FixEdit{Span: span(f, 8, 9), NewText: "0o"})
	bag := diag.NewBag(1)
	bag.Add(d)

	without := BuildDiagnosticsOutput(bag, sm, JSONOpts{})
	if without.Diagnostics[0].Notes != nil || without.Diagnostics[0].Fixes != nil {
		t.Fatalf("notes and fixes must be opt-in: %+v", without.Diagnostics[0])
	}

	out := BuildDiagnosticsOutput(bag, sm, JSONOpts{IncludeNotes: true, IncludeFixes: true, IncludePreviews: true})
	dj := out.Diagnostics[0]
	if len(dj.Notes) != 1 || dj.Notes[0].Message != "leading zero" || dj.Notes[0].Location.StartByte != 8 {
		t.Errorf("unexpected notes %+v", dj.Notes)
	}
	if len(dj.Fixes) != 1 || len(dj.Fixes[0].Edits) != 1 {
		t.Fatalf("unexpected fixes %+v", dj.Fixes)
	}
	edit := dj.Fixes[0].Edits[0]
	if edit.OldText != "0" || edit.NewText != "0o" {
		t.Errorf("edit old/new = %q/%q", edit.OldText, edit.NewText)
	}
	if len(edit.BeforeLines) != 1 || edit.BeforeLines[0] != "let n = 0777;" {
		t.Errorf("before = %q", edit.BeforeLines)
	}
	if len(edit.AfterLines) != 1 || edit.AfterLines[0] != "let n = 0o777;" {
		t.Errorf("after = %q", edit.AfterLines)
	}
}

func TestJSONTimingNotesAlwaysIncluded(t *testing.T) {
	sm := source.NewSourceMap()
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, source.SpanData{}, "timings").
		WithNote(source.SpanData{}, "lex: 1ms"))

	out := BuildDiagnosticsOutput(bag, sm, JSONOpts{})
	if len(out.Diagnostics[0].Notes) != 1 {
		t.Fatalf("timing notes missing: %+v", out.Diagnostics[0])
	}
	if out.Diagnostics[0].Location.File != "" {
		t.Errorf("unresolved span should have no file, got %q", out.Diagnostics[0].Location.File)
	}
}
