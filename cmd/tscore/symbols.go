package main

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"tscore/internal/driver"
	"tscore/internal/session"
	"tscore/internal/symbol"
	"tscore/internal/token"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [flags] [path...]",
	Short: "Count identifiers across sources",
	Long:  `Symbols tokenizes the given paths and lists every identifier with its number of uses.`,
	RunE:  runSymbols,
}

func init() {
	flags := symbolsCmd.Flags()
	flags.String("format", "pretty", "output format (pretty|json)")
	flags.Bool("keywords", true, "include reserved words")
	flags.Int("top", 0, "show only the N most used identifiers (0 = all)")
	flags.Int("jobs", 0, "max parallel files (0 = from tscore.toml or GOMAXPROCS)")
	flags.Bool("strip-shebang", false, "skip a leading #! line")
	flags.String("ui", "auto", "progress view (auto|on|off)")
}

type symbolCount struct {
	Symbol  uint32 `json:"symbol"`
	Text    string `json:"text"`
	Count   int    `json:"count"`
	Keyword bool   `json:"keyword,omitempty"`
}

type symbolsJSON struct {
	Files         int           `json:"files"`
	Identifiers   []symbolCount `json:"identifiers"`
	Symbols       int           `json:"symbols"`
	SymbolBytes   int           `json:"symbol_bytes"`
	InternedSpans int           `json:"interned_spans"`
}

func runSymbols(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	keywords, _ := flags.GetBool("keywords")
	top, _ := flags.GetInt("top")
	if top < 0 {
		return fmt.Errorf("--top must be >= 0, got %d", top)
	}

	r, inputs, err := newRun(cmd, args)
	if err != nil {
		return err
	}
	defer r.sess.Close()

	results, err := r.executeWithProgress(cmd, "symbols", inputs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if err := writeDiagnostics(cmd, r.sm, results); err != nil {
		return err
	}

	counts := countIdentifiers(r.sess, results, keywords)
	if top > 0 && len(counts) > top {
		counts = counts[:top]
	}
	stats := r.sess.Stats()

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(symbolsJSON{
			Files:         len(results),
			Identifiers:   counts,
			Symbols:       stats.Symbols,
			SymbolBytes:   stats.SymbolBytes,
			InternedSpans: stats.InternedSpans,
		})
	} else {
		err = writeSymbolsPretty(out, counts, stats, len(results))
	}
	if err != nil {
		return err
	}
	if hasErrors(results) {
		return errDiagnostics
	}
	return nil
}

// countIdentifiers tallies identifier lexemes by symbol, most used first and
// then alphabetically.
func countIdentifiers(sess *session.Session, results []*driver.Result, keywords bool) []symbolCount {
	byIndex := make(map[symbol.Symbol]int)
	for _, res := range results {
		for _, lx := range res.Lexemes {
			if lx.Kind != token.Ident || (!keywords && lx.IsKeyword()) {
				continue
			}
			byIndex[lx.Symbol]++
		}
	}
	counts := make([]symbolCount, 0, len(byIndex))
	for sym, n := range byIndex {
		counts = append(counts, symbolCount{
			Symbol:  uint32(sym),
			Text:    sess.ResolveSymbol(sym),
			Count:   n,
			Keyword: sym.IsKeyword(),
		})
	}
	slices.SortFunc(counts, func(a, b symbolCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Text, b.Text)
	})
	return counts
}

func writeSymbolsPretty(w io.Writer, counts []symbolCount, stats session.Stats, files int) error {
	for _, c := range counts {
		mark := ""
		if c.Keyword {
			mark = " (keyword)"
		}
		if _, err := fmt.Fprintf(w, "%6d  %s%s\n", c.Count, c.Text, mark); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d file(s), %d symbol(s) in %d byte(s), %d interned span(s)\n",
		files, stats.Symbols, stats.SymbolBytes, stats.InternedSpans)
	return err
}
