package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tscore/internal/config"
	"tscore/internal/driver"
	"tscore/internal/observ"
	"tscore/internal/session"
	"tscore/internal/source"
)

const stdinPath = "<stdin>"

// run holds the state of one tokenizer invocation over several inputs.
type run struct {
	cfg   *config.Config
	opts  driver.Options
	sess  *session.Session
	sm    *source.SourceMap
	stdin io.Reader
}

// input is one command-line argument resolved to what it names.
type input struct {
	path  string
	dir   bool
	stdin bool
	// files lists the directory contents selected by the config.
	files []string
}

// resolveInputs classifies args; no args means the current directory.
func resolveInputs(args []string, cfg *config.Config) ([]input, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	inputs := make([]input, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			inputs = append(inputs, input{path: stdinPath, stdin: true})
			continue
		}
		st, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !st.IsDir() {
			inputs = append(inputs, input{path: arg})
			continue
		}
		files, err := driver.ListFiles(arg, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", arg, err)
		}
		inputs = append(inputs, input{path: arg, dir: true, files: files})
	}
	return inputs, nil
}

// fileList returns every file the inputs will produce, in order.
func fileList(inputs []input) []string {
	var files []string
	for _, in := range inputs {
		if in.dir {
			files = append(files, in.files...)
		} else {
			files = append(files, in.path)
		}
	}
	return files
}

// execute tokenizes the inputs in order. Directory inputs run in parallel
// internally; the results keep the order of fileList.
func (r *run) execute(ctx context.Context, inputs []input) ([]*driver.Result, error) {
	var results []*driver.Result
	for _, in := range inputs {
		switch {
		case in.stdin:
			data, err := io.ReadAll(r.stdin)
			if err != nil {
				return results, fmt.Errorf("failed to read stdin: %w", err)
			}
			text, _, err := source.Decode(data)
			if err != nil {
				return results, fmt.Errorf("failed to decode stdin: %w", err)
			}
			results = append(results, driver.TokenizeText(ctx, r.sess, r.sm, stdinPath, text, r.opts))
		case in.dir:
			res, err := driver.TokenizeDir(ctx, r.sess, r.sm, in.path, r.cfg, r.opts)
			if err != nil {
				return results, err
			}
			results = append(results, res...)
		default:
			res, err := driver.Tokenize(ctx, r.sess, r.sm, in.path, r.opts)
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
	}
	return results, nil
}

// newRun loads the project config for args and applies command-line
// overrides. The caller closes r.sess.
func newRun(cmd *cobra.Command, args []string) (*run, []input, error) {
	start := "."
	if len(args) > 0 && args[0] != "-" {
		start = args[0]
		if st, err := os.Stat(start); err == nil && !st.IsDir() {
			start = filepath.Dir(start)
		}
	}
	cfg, err := config.Discover(start)
	if err != nil {
		return nil, nil, err
	}

	opts := driver.Options{
		MaxDiagnostics: cfg.Build.MaxDiagnostics,
		Jobs:           cfg.Build.Jobs,
		SkipShebang:    cfg.Lexer.StripShebang,
	}
	flags := cmd.Flags()
	if n, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); n > 0 {
		opts.MaxDiagnostics = n
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if opts.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, nil, err
		}
		if opts.Jobs < 0 {
			return nil, nil, fmt.Errorf("--jobs must be >= 0, got %d", opts.Jobs)
		}
	}
	if flags.Lookup("strip-shebang") != nil && flags.Changed("strip-shebang") {
		if opts.SkipShebang, err = flags.GetBool("strip-shebang"); err != nil {
			return nil, nil, err
		}
	}
	useCache := cfg.Build.Cache
	if flags.Lookup("cache") != nil && flags.Changed("cache") {
		if useCache, err = flags.GetBool("cache"); err != nil {
			return nil, nil, err
		}
	}
	if useCache {
		cache, err := driver.OpenTokenCache("tscore")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open token cache: %w", err)
		}
		opts.Cache = cache
	}
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		opts.Timer = observ.NewTimer()
	}

	inputs, err := resolveInputs(args, cfg)
	if err != nil {
		return nil, nil, err
	}
	return &run{
		cfg:   cfg,
		opts:  opts,
		sess:  session.New(),
		sm:    source.NewSourceMap(),
		stdin: cmd.InOrStdin(),
	}, inputs, nil
}

// executeWithProgress runs the inputs, showing the progress view when the
// --ui flag and the terminal allow it.
func (r *run) executeWithProgress(cmd *cobra.Command, title string, inputs []input) ([]*driver.Result, error) {
	modeFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(modeFlag)
	if err != nil {
		return nil, err
	}
	files := fileList(inputs)
	if !shouldUseTUI(mode, len(files)) {
		return r.execute(cmd.Context(), inputs)
	}
	var results []*driver.Result
	err = runWithUI(title, files, func(sink driver.ProgressSink) error {
		r.opts.Progress = sink
		var runErr error
		results, runErr = r.execute(cmd.Context(), inputs)
		return runErr
	})
	r.opts.Progress = nil
	return results, err
}
