package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tscore/internal/trace"
)

// setupTracing builds a tracer from the --trace flags and attaches it to the
// command context. A trace output without a level traces phases.
func setupTracing(cmd *cobra.Command) (func() error, error) {
	flags := cmd.Root().PersistentFlags()

	output, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	if level == trace.LevelOff {
		if output == "" {
			return func() error { return nil }, nil
		}
		level = trace.LevelPhase
	}

	format := trace.FormatFromPath(output)
	if formatStr != "auto" {
		if format, err = trace.ParseFormat(formatStr); err != nil {
			return nil, err
		}
	}

	tracer, err := trace.New(trace.Config{Level: level, Format: format, OutputPath: output})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	ctx := trace.WithTracer(cmd.Context(), tracer)
	root := trace.Begin(tracer, trace.ScopeDriver, cmd.CommandPath(), 0)
	cmd.SetContext(trace.WithParent(ctx, root))

	return func() error {
		root.End("")
		if err := tracer.Close(); err != nil {
			return fmt.Errorf("trace: %w", err)
		}
		return nil
	}, nil
}
