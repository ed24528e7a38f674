// Package config loads tscore.toml project files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
)

// FileName is the project file searched for by Find.
const FileName = "tscore.toml"

// DefaultMaxDiagnostics caps diagnostics per file when nothing else is set.
const DefaultMaxDiagnostics = 100

// Config is a decoded project file with defaults applied.
type Config struct {
	// Path is the project file, empty when defaults are used.
	Path string `toml:"-"`
	// Root is the directory globs are matched against.
	Root string `toml:"-"`

	Project ProjectConfig `toml:"project"`
	Lexer   LexerConfig   `toml:"lexer"`
	Build   BuildConfig   `toml:"build"`
}

type ProjectConfig struct {
	Name    string   `toml:"name"`
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

type LexerConfig struct {
	StripShebang bool `toml:"strip_shebang"`
}

type BuildConfig struct {
	// Jobs is the worker limit; 0 means GOMAXPROCS.
	Jobs           int  `toml:"jobs"`
	Cache          bool `toml:"cache"`
	MaxDiagnostics int  `toml:"max_diagnostics"`
}

var (
	defaultInclude = []string{"**/*.{ts,tsx,mts,cts,js,jsx,mjs,cjs}"}
	defaultExclude = []string{"**/node_modules/**"}
)

// Default returns the configuration used when no project file exists.
func Default(root string) *Config {
	return &Config{
		Root: root,
		Project: ProjectConfig{
			Include: slices.Clone(defaultInclude),
			Exclude: slices.Clone(defaultExclude),
		},
		Lexer: LexerConfig{StripShebang: true},
		Build: BuildConfig{MaxDiagnostics: DefaultMaxDiagnostics},
	}
}

// Find walks up from startDir looking for tscore.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes the project file at path. Keys that are absent keep their
// defaults; unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default(filepath.Dir(path))
	cfg.Path = path

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("project", "name") {
		cfg.Project.Name = strings.TrimSpace(raw.Project.Name)
	}
	if meta.IsDefined("project", "include") {
		cfg.Project.Include = raw.Project.Include
	}
	if meta.IsDefined("project", "exclude") {
		cfg.Project.Exclude = raw.Project.Exclude
	}
	if meta.IsDefined("lexer", "strip_shebang") {
		cfg.Lexer.StripShebang = raw.Lexer.StripShebang
	}
	if meta.IsDefined("build", "jobs") {
		cfg.Build.Jobs = raw.Build.Jobs
	}
	if meta.IsDefined("build", "cache") {
		cfg.Build.Cache = raw.Build.Cache
	}
	if meta.IsDefined("build", "max_diagnostics") {
		cfg.Build.MaxDiagnostics = raw.Build.MaxDiagnostics
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the nearest project file above startDir, or returns
// Default rooted at startDir.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if ok {
		return Load(path)
	}
	root, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	return Default(root), nil
}

// Validate checks value ranges and glob syntax.
func (c *Config) Validate() error {
	if c.Build.Jobs < 0 {
		return fmt.Errorf("[build].jobs must be >= 0, got %d", c.Build.Jobs)
	}
	if c.Build.MaxDiagnostics < 0 {
		return fmt.Errorf("[build].max_diagnostics must be >= 0, got %d", c.Build.MaxDiagnostics)
	}
	if len(c.Project.Include) == 0 {
		return errors.New("[project].include must not be empty")
	}
	for _, list := range [][]string{c.Project.Include, c.Project.Exclude} {
		for _, pattern := range list {
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("invalid glob %q", pattern)
			}
		}
	}
	return nil
}

// Match reports whether a slash-separated path relative to Root is selected:
// it matches an include glob and no exclude glob.
func (c *Config) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range c.Project.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	for _, pattern := range c.Project.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
