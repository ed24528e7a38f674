package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"

	"tscore/internal/diag"
	"tscore/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info *color.Color
	gutter, note    *color.Color
	fix, removed    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan, color.Bold),
		gutter:  color.New(color.FgBlue, color.Bold),
		note:    color.New(color.FgCyan),
		fix:     color.New(color.FgGreen),
		removed: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.gutter, p.note, p.fix, p.removed} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty writes the diagnostics in bag in a human readable form with source
// excerpts.
func Pretty(w io.Writer, bag *diag.Bag, sm *source.SourceMap, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, sm, opts, pal)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "\n... %d more diagnostic(s) not shown\n", n)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, sm *source.SourceMap, opts PrettyOpts, pal palette) {
	sevColor := pal.severity(d.Severity)
	fmt.Fprintf(w, "%s %s: %s\n", sevColor.Sprint(d.Severity.String()), sevColor.Sprint(d.Code.ID()), d.Message)

	f := lookupFile(sm, d.Primary)
	if f == nil {
		return
	}
	start := f.LineCol(d.Primary.Lo)
	fmt.Fprintf(w, "  %s %s:%d:%d\n", pal.gutter.Sprint("-->"), formatPath(f.Path, opts.PathMode, opts.BaseDir), start.Line, start.Col)
	writeExcerpt(w, f, d.Primary, int(opts.Context), sevColor, pal)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), locatedMessage(sm, note.Span, note.Msg, opts))
		}
	}
	if opts.ShowFixes {
		for i, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.fix.Sprintf("fix #%d:", i+1), fix.Title)
			for _, edit := range fix.Edits {
				fmt.Fprintf(w, "      %s apply=%s\n", locatedMessage(sm, edit.Span, "", opts), strconv.Quote(edit.NewText))
				if !opts.ShowPreview {
					continue
				}
				preview, err := buildFixEditPreview(sm, edit)
				if err != nil {
					continue
				}
				for _, line := range preview.before {
					fmt.Fprintf(w, "      %s %s\n", pal.removed.Sprint("-"), line)
				}
				for _, line := range preview.after {
					fmt.Fprintf(w, "      %s %s\n", pal.fix.Sprint("+"), line)
				}
			}
		}
	}
}

// locatedMessage renders `path:line:col: msg`, or just msg when sp cannot be
// resolved.
func locatedMessage(sm *source.SourceMap, sp source.SpanData, msg string, opts PrettyOpts) string {
	f := lookupFile(sm, sp)
	if f == nil {
		return msg
	}
	lc := f.LineCol(sp.Lo)
	loc := fmt.Sprintf("%s:%d:%d", formatPath(f.Path, opts.PathMode, opts.BaseDir), lc.Line, lc.Col)
	if msg == "" {
		return loc
	}
	return loc + ": " + msg
}

// writeExcerpt prints the primary line, context lines around it, and a caret
// underline. Spans covering several lines are underlined to the end of their
// first line.
func writeExcerpt(w io.Writer, f *source.File, sp source.SpanData, context int, sevColor *color.Color, pal palette) {
	line := f.LineCol(sp.Lo).Line
	first := max(int(line)-max(context, 0), 1)
	last := min(int(line)+max(context, 0), f.LineCount())
	gutterWidth := len(strconv.Itoa(last))
	blank := strings.Repeat(" ", gutterWidth)

	fmt.Fprintf(w, "  %s %s\n", blank, pal.gutter.Sprint("|"))
	for n := first; n <= last; n++ {
		text := f.LineText(uint32(n))
		num := fmt.Sprintf("%*d", gutterWidth, n)
		fmt.Fprintf(w, "  %s %s %s\n", pal.gutter.Sprint(num), pal.gutter.Sprint("|"), expandTabs(text))
		if n != int(line) {
			continue
		}
		pad, width := caretRange(f, uint32(n), text, sp)
		fmt.Fprintf(w, "  %s %s %s%s\n", blank, pal.gutter.Sprint("|"), strings.Repeat(" ", pad), sevColor.Sprint(strings.Repeat("^", width)))
	}
}

// caretRange returns the display column and width of the part of sp that
// lies on the given line.
func caretRange(f *source.File, line uint32, text string, sp source.SpanData) (pad, width int) {
	lineStart := f.Offset(f.LineStart(line))
	lo := min(f.Offset(sp.Lo)-lineStart, len(text))
	hi := len(text)
	if f.LineCol(sp.Hi).Line == line {
		hi = min(f.Offset(sp.Hi)-lineStart, len(text))
	}
	hi = max(hi, lo)
	return displayWidth(text[:lo]), max(displayWidth(text[lo:hi]), 1)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func displayWidth(s string) int {
	return uniseg.StringWidth(expandTabs(s))
}
