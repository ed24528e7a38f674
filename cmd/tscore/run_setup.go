package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tscore/internal/prof"
)

// cleanups run once, in reverse order, after the command finishes.
var cleanups []func() error

func setupRun(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := resolveColor(colorFlag, os.Stdout)
	if err != nil {
		return err
	}
	color.NoColor = !useColor

	cpu, _ := flags.GetString("cpuprofile")
	mem, _ := flags.GetString("memprofile")
	exec, _ := flags.GetString("exectrace")
	if cpu != "" || mem != "" || exec != "" {
		p, err := prof.Start(prof.Config{CPU: cpu, Mem: mem, Trace: exec})
		if err != nil {
			return err
		}
		cleanups = append(cleanups, p.Stop)
	}

	traceCleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, traceCleanup)
	return nil
}

func finishRun() error {
	var errs []error
	for i := len(cleanups) - 1; i >= 0; i-- {
		errs = append(errs, cleanups[i]())
	}
	cleanups = nil
	return errors.Join(errs...)
}

// resolveColor decides whether output to f is colored. auto honours NO_COLOR
// and colors terminals only.
func resolveColor(flag string, f *os.File) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "", "auto":
		return os.Getenv("NO_COLOR") == "" && isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", flag)
	}
}

func colorFor(cmd *cobra.Command, f *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	ok, err := resolveColor(flag, f)
	return err == nil && ok
}
