package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tscore/internal/version"
)

// errDiagnostics reports that errors were printed as diagnostics already.
var errDiagnostics = errors.New("errors reported")

var rootCmd = &cobra.Command{
	Use:           "tscore",
	Short:         "ECMAScript/TypeScript tokenizer front end",
	Long:          `tscore tokenizes JavaScript and TypeScript sources and reports lexical diagnostics`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupRun(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return finishRun()
	},
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "print diagnostics only")
	flags.String("diagnostics", "pretty", "diagnostic style on stderr (pretty|short)")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 0, "maximum number of diagnostics per file (0 = from tscore.toml)")
	flags.String("trace", "", "write trace events to file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.String("cpuprofile", "", "write a CPU profile to file")
	flags.String("memprofile", "", "write a heap profile to file")
	flags.String("exectrace", "", "write a runtime execution trace to file")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if cleanupErr := finishRun(); err == nil {
		err = cleanupErr
	}
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
