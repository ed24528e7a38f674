package source

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"fortio.org/safecast"
)

// File captures metadata and content for a single source file.
type File struct {
	ID    FileID
	Path  string
	Text  string
	Base  BytePos
	Kind  ScriptKind
	Hash  [32]byte
	Flags FileFlags

	// lines holds the offsets, relative to Base, at which each line starts.
	lines []uint32
}

// End returns the position just past the last byte of the file.
func (f *File) End() BytePos {
	return f.Base + BytePos(len(f.Text))
}

// Contains reports whether pos lies in the file, counting the end position.
func (f *File) Contains(pos BytePos) bool {
	return f.Base <= pos && pos <= f.End()
}

// Pos converts a file-relative byte offset to a position.
func (f *File) Pos(off int) BytePos {
	n, err := safecast.Conv[uint32](off)
	if err != nil || off > len(f.Text) {
		panic(fmt.Sprintf("source: offset %d outside %s", off, f.Path))
	}
	return f.Base + BytePos(n)
}

// Offset converts a position in the file to a byte offset into Text.
func (f *File) Offset(pos BytePos) int {
	if !f.Contains(pos) {
		panic(fmt.Sprintf("source: position %d outside %s [%d, %d]", pos, f.Path, f.Base, f.End()))
	}
	return int(pos - f.Base)
}

// Slice returns the text covered by d, which must lie in the file.
func (f *File) Slice(d SpanData) string {
	return f.Text[f.Offset(d.Lo):f.Offset(d.Hi)]
}

// LineCount returns the number of lines; an empty file has one.
func (f *File) LineCount() int {
	return len(f.lines)
}

// LineCol converts pos to a 1-based line and byte column.
func (f *File) LineCol(pos BytePos) LineCol {
	off := uint32(f.Offset(pos))
	// index of the last line start <= off
	line := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > off }) - 1
	return LineCol{Line: uint32(line + 1), Col: off - f.lines[line] + 1}
}

// LineStart returns the position of the first byte of a 1-based line. Lines
// past the end map to End.
func (f *File) LineStart(line uint32) BytePos {
	if line == 0 {
		return f.Base
	}
	if int64(line) > int64(len(f.lines)) {
		return f.End()
	}
	return f.Base + BytePos(f.lines[line-1])
}

// LineText returns the text of a 1-based line without its terminator, or ""
// if the line does not exist.
func (f *File) LineText(line uint32) string {
	if line == 0 || int64(line) > int64(len(f.lines)) {
		return ""
	}
	start := f.lines[line-1]
	end := uint32(len(f.Text))
	if int64(line) < int64(len(f.lines)) {
		end = f.lines[line]
	}
	return strings.TrimRight(f.Text[start:end], "\r\n\u2028\u2029")
}

// ScriptKindFromPath infers the dialect from a file extension.
func ScriptKindFromPath(path string) ScriptKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".cjs":
		return ScriptJS
	case ".jsx":
		return ScriptJSX
	case ".ts", ".mts", ".cts":
		return ScriptTS
	case ".tsx":
		return ScriptTSX
	case ".json":
		return ScriptJSON
	default:
		return ScriptUnknown
	}
}

// buildLineIndex records the start of every line. CRLF counts as one break;
// lone CR, LS and PS end lines as well.
func buildLineIndex(text string) []uint32 {
	out := []uint32{0}
	for i := 0; i < len(text); i++ {
		var next int
		switch text[i] {
		case '\n':
			next = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			next = i + 1
		case 0xE2:
			// U+2028 and U+2029 are E2 80 A8 and E2 80 A9.
			if i+2 < len(text) && text[i+1] == 0x80 && (text[i+2] == 0xA8 || text[i+2] == 0xA9) {
				i += 2
				next = i + 1
			} else {
				continue
			}
		default:
			continue
		}
		n, err := safecast.Conv[uint32](next)
		if err != nil {
			panic(fmt.Errorf("line index overflow: %w", err))
		}
		out = append(out, n)
	}
	return out
}
