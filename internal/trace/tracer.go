package trace

import (
	"fmt"
	"io"
	"os"
)

// Tracer receives trace events. Implementations are safe for concurrent use.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool
}

// Config describes a tracer.
type Config struct {
	Level  Level
	Format Format
	// Output wins over OutputPath when set.
	Output io.Writer
	// OutputPath is a file to create; "" and "-" mean stderr.
	OutputPath string
}

// New creates a stream tracer, or Nop when the level is LevelOff.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	w := cfg.Output
	if w == nil {
		if cfg.OutputPath == "" || cfg.OutputPath == "-" {
			w = nopCloser{os.Stderr}
		} else {
			// #nosec G304 -- the path comes from the --trace flag
			f, err := os.Create(cfg.OutputPath)
			if err != nil {
				return nil, fmt.Errorf("failed to open trace output: %w", err)
			}
			w = f
		}
	}
	return NewStreamTracer(w, cfg.Level, cfg.Format), nil
}

// nopCloser keeps Close from closing stderr.
type nopCloser struct{ io.Writer }
