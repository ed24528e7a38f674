package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sync"

	"fortio.org/safecast"
	"github.com/tidwall/btree"
)

// SourceMap assigns every file a disjoint range of one shared position space,
// so a position alone identifies its file.
//
// Files are laid out back to back with a one byte gap, which keeps the end
// position of each file distinct from the base of the next. SourceMap is safe
// for concurrent use.
type SourceMap struct {
	mu    sync.RWMutex
	files []*File
	// Keys are file end positions.
	byEnd btree.Map[BytePos, *File]
	next  BytePos
}

// NewSourceMap creates an empty map. Position 0 is never assigned to a file,
// so the zero BytePos cannot be mistaken for a real location.
func NewSourceMap() *SourceMap {
	return &SourceMap{next: 1}
}

// AddVirtual adds in-memory text.
func (m *SourceMap) AddVirtual(path, text string) *File {
	return m.add(path, text, FileVirtual)
}

// Load reads and decodes a file from disk and adds it.
func (m *SourceMap) Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, flags, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m.add(path, text, flags), nil
}

func (m *SourceMap) add(path, text string, flags FileFlags) *File {
	size, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("source: %s is too large: %w", path, err))
	}
	if HasUTF8BOM(text) {
		flags |= FileHadUTF8BOM
	}
	f := &File{
		Path:  normalizePath(path),
		Text:  text,
		Kind:  ScriptKindFromPath(path),
		Hash:  sha256.Sum256([]byte(text)),
		Flags: flags,
		lines: buildLineIndex(text),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if uint64(m.next)+uint64(size)+1 > uint64(^BytePos(0)) {
		panic(fmt.Sprintf("source: position space exhausted adding %s", path))
	}
	id, err := safecast.Conv[FileID](len(m.files))
	if err != nil {
		panic(fmt.Errorf("source: too many files: %w", err))
	}
	f.ID = id
	f.Base = m.next
	m.next = f.End() + 1
	m.files = append(m.files, f)
	m.byEnd.Set(f.End(), f)
	return f
}

// File returns the file with the given ID, or nil.
func (m *SourceMap) File(id FileID) *File {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int64(id) >= int64(len(m.files)) {
		return nil
	}
	return m.files[id]
}

// Files returns every file in the order they were added.
func (m *SourceMap) Files() []*File {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*File(nil), m.files...)
}

// Len returns the number of files.
func (m *SourceMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.files)
}

// Lookup returns the file containing pos, or nil.
func (m *SourceMap) Lookup(pos BytePos) *File {
	m.mu.RLock()
	defer m.mu.RUnlock()
	iter := m.byEnd.Iter()
	if !iter.Seek(pos) || pos < iter.Value().Base {
		return nil
	}
	return iter.Value()
}

// Resolve converts pos to a path and line/column. It reports false for
// positions outside every file.
func (m *SourceMap) Resolve(pos BytePos) (string, LineCol, bool) {
	f := m.Lookup(pos)
	if f == nil {
		return "", LineCol{}, false
	}
	return f.Path, f.LineCol(pos), true
}
