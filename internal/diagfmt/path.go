package diagfmt

import (
	"path/filepath"
	"strings"
)

// autoPathLimit is the length above which PathModeAuto shortens absolute paths.
const autoPathLimit = 40

func formatPath(path string, mode PathMode, baseDir string) string {
	if strings.HasPrefix(path, "<") {
		return path
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
		return path
	case PathModeRelative:
		base := baseDir
		if base == "" {
			base = "."
		}
		absBase, err := filepath.Abs(base)
		if err != nil {
			return path
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		if rel, err := filepath.Rel(absBase, absPath); err == nil {
			return filepath.ToSlash(rel)
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	default:
		if filepath.IsAbs(path) && len(path) > autoPathLimit {
			return filepath.Base(path)
		}
		return path
	}
}
