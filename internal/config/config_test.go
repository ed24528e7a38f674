package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadFull(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, path, `
[project]
name = " app "
include = ["src/**/*.ts", "src/**/*.tsx"]
exclude = ["**/node_modules/**"]

[lexer]
strip_shebang = false

[build]
jobs = 4
cache = true
max_diagnostics = 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, "app", cfg.Project.Name)
	assert.Equal(t, []string{"src/**/*.ts", "src/**/*.tsx"}, cfg.Project.Include)
	assert.False(t, cfg.Lexer.StripShebang)
	assert.Equal(t, BuildConfig{Jobs: 4, Cache: true, MaxDiagnostics: 7}, cfg.Build)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[project]\nname = \"lib\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	def := Default(cfg.Root)
	assert.Equal(t, def.Project.Include, cfg.Project.Include)
	assert.Equal(t, def.Project.Exclude, cfg.Project.Exclude)
	assert.True(t, cfg.Lexer.StripShebang)
	assert.Equal(t, DefaultMaxDiagnostics, cfg.Build.MaxDiagnostics)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"syntax", "[project\n", "failed to parse TOML"},
		{"unknown key", "[lexer]\njsx = true\n", "unknown keys: lexer.jsx"},
		{"negative jobs", "[build]\njobs = -1\n", "[build].jobs"},
		{"bad glob", "[project]\ninclude = [\"src/[\"]\n", "invalid glob"},
		{"empty include", "[project]\ninclude = []\n", "must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, FileName), path)

	cfg, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Root)
}

func TestDiscoverWithoutFile(t *testing.T) {
	dir := t.TempDir()
	if _, ok, err := Find(dir); err != nil || ok {
		t.Skip("a tscore.toml exists above the temp directory")
	}
	cfg, err := Discover(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, dir, cfg.Root)
	assert.True(t, cfg.Lexer.StripShebang)
}

func TestMatch(t *testing.T) {
	cfg := Default("/p")
	tests := map[string]bool{
		"a.ts":                      true,
		"src/deep/b.tsx":            true,
		"lib/c.mjs":                 true,
		"d.json":                    false,
		"README.md":                 false,
		"node_modules/pkg/index.ts": false,
		"src/node_modules/x.js":     false,
	}
	for path, want := range tests {
		assert.Equal(t, want, cfg.Match(path), path)
	}

	cfg.Project.Include = []string{"src/**/*.ts"}
	cfg.Project.Exclude = []string{"**/*.test.ts"}
	assert.True(t, cfg.Match("src/a.ts"))
	assert.False(t, cfg.Match("a.ts"))
	assert.False(t, cfg.Match("src/a.test.ts"))
}
