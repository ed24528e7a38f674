package source

import "fmt"

type (
	// BytePos is a byte offset in the position space of a SourceMap. Offsets
	// of different files never overlap.
	BytePos uint32
	// FileID uniquely identifies a source file within a SourceMap.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHadUTF8BOM marks text that starts with U+FEFF. The BOM is kept.
	FileHadUTF8BOM
	// FileTranscoded marks a UTF-16 file that was converted to UTF-8.
	FileTranscoded
)

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// ScriptKind classifies a file by the dialect its extension implies.
type ScriptKind uint8

const (
	ScriptUnknown ScriptKind = iota
	ScriptJS
	ScriptJSX
	ScriptTS
	ScriptTSX
	ScriptJSON
)

var scriptKindNames = [...]string{
	ScriptUnknown: "unknown",
	ScriptJS:      "js",
	ScriptJSX:     "jsx",
	ScriptTS:      "ts",
	ScriptTSX:     "tsx",
	ScriptJSON:    "json",
}

func (k ScriptKind) String() string {
	if int(k) < len(scriptKindNames) {
		return scriptKindNames[k]
	}
	return fmt.Sprintf("ScriptKind(%d)", k)
}

// Effective returns the kind used for tokenizing; unknown files are read as TS.
func (k ScriptKind) Effective() ScriptKind {
	if k == ScriptUnknown {
		return ScriptTS
	}
	return k
}
