package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tscore/internal/diag"
	"tscore/internal/diagfmt"
	"tscore/internal/driver"
	"tscore/internal/observ"
	"tscore/internal/session"
	"tscore/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [path...]",
	Short: "Tokenize JavaScript and TypeScript sources",
	Long: `Tokenize breaks source files into tokens and reports lexical diagnostics.
Paths may be files, directories (filtered by tscore.toml) or - for stdin.`,
	RunE: runTokenize,
}

func init() {
	flags := tokenizeCmd.Flags()
	flags.String("format", "pretty", "output format (pretty|json)")
	flags.Bool("raw", false, "print raw tokens instead of scanned lexemes")
	flags.Bool("cache", false, "reuse raw tokens from the on-disk cache")
	flags.Int("jobs", 0, "max parallel files (0 = from tscore.toml or GOMAXPROCS)")
	flags.Bool("strip-shebang", false, "skip a leading #! line")
	flags.String("ui", "auto", "progress view (auto|on|off)")
}

// fileJSON is the per-file object of tokenize --format json.
type fileJSON struct {
	Path        string                    `json:"path"`
	Cached      bool                      `json:"cached,omitempty"`
	Tokens      []diagfmt.TokenOutput     `json:"tokens,omitempty"`
	Lexemes     []diagfmt.LexemeOutput    `json:"lexemes,omitempty"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
}

type tokenizeJSON struct {
	Files   []fileJSON     `json:"files"`
	Timings *observ.Report `json:"timings,omitempty"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return fmt.Errorf("failed to get raw flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	r, inputs, err := newRun(cmd, args)
	if err != nil {
		return err
	}
	defer r.sess.Close()

	results, err := r.executeWithProgress(cmd, "tokenize", inputs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		doc := tokenizeJSON{Files: make([]fileJSON, 0, len(results))}
		for _, res := range results {
			doc.Files = append(doc.Files, resultJSON(r.sess, r.sm, res, raw, quiet))
		}
		if r.opts.Timer != nil {
			report := r.opts.Timer.Report()
			doc.Timings = &report
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return err
		}
	} else {
		if err := writeDiagnostics(cmd, r.sm, results); err != nil {
			return err
		}
		if !quiet {
			if err := writeTokensPretty(out, r.sess, results, raw); err != nil {
				return err
			}
		}
		if r.opts.Timer != nil {
			fmt.Fprint(cmd.ErrOrStderr(), r.opts.Timer.Summary())
		}
	}

	if hasErrors(results) {
		return errDiagnostics
	}
	return nil
}

func resultJSON(sess *session.Session, sm *source.SourceMap, res *driver.Result, raw, quiet bool) fileJSON {
	out := fileJSON{
		Path:   res.Path,
		Cached: res.CacheHit,
		Diagnostics: diagfmt.BuildDiagnosticsOutput(res.Bag, sm, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			IncludeFixes:     true,
		}),
	}
	if quiet || res.File == nil {
		return out
	}
	if raw {
		out.Tokens = diagfmt.TokenRows(res.File, res.Start, res.Tokens)
	} else {
		out.Lexemes = diagfmt.LexemeRows(sess, res.File, res.Lexemes)
	}
	return out
}

// writeTokensPretty prints each file's tokens, with a header when there is
// more than one file.
func writeTokensPretty(w io.Writer, sess *session.Session, results []*driver.Result, raw bool) error {
	for i, res := range results {
		if res.File == nil {
			continue
		}
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", res.Path)
		}
		var err error
		if raw {
			err = diagfmt.FormatTokensPretty(w, res.File, res.Start, res.Tokens)
		} else {
			err = diagfmt.FormatLexemesPretty(w, sess, res.File, res.Lexemes)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// writeDiagnostics prints every result's diagnostics in the style chosen by
// --diagnostics: pretty excerpts, or one sorted line each.
func writeDiagnostics(cmd *cobra.Command, sm *source.SourceMap, results []*driver.Result) error {
	w := cmd.ErrOrStderr()
	style, err := cmd.Root().PersistentFlags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	switch strings.ToLower(style) {
	case "short":
		var all []diag.Diagnostic
		dropped := 0
		for _, res := range results {
			all = append(all, res.Bag.Items()...)
			dropped += res.Bag.Dropped()
		}
		fmt.Fprint(w, diag.FormatShort(all, sm, true))
		if dropped > 0 {
			fmt.Fprintf(w, "... %d more diagnostic(s) not shown\n", dropped)
		}
	case "pretty":
		opts := diagfmt.PrettyOpts{
			Color:     colorFor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
			ShowFixes: true,
		}
		for _, res := range results {
			if res.Bag.Len() > 0 || res.Bag.Dropped() > 0 {
				diagfmt.Pretty(w, res.Bag, sm, opts)
			}
		}
	default:
		return fmt.Errorf("invalid --diagnostics value %q (expected pretty|short)", style)
	}
	return nil
}

func hasErrors(results []*driver.Result) bool {
	for _, res := range results {
		if res.Bag.HasErrors() {
			return true
		}
	}
	return false
}
