package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"tscore/internal/config"
	"tscore/internal/session"
	"tscore/internal/source"
	"tscore/internal/trace"
)

// ListFiles returns the source files under dir selected by cfg, sorted.
// Paths are matched relative to dir; hidden directories are skipped.
func ListFiles(dir string, cfg *config.Config) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if source.ScriptKindFromPath(path) != source.ScriptUnknown && cfg.Match(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every file ListFiles selects. Files are loaded in
// sorted order so positions are stable, then lexed and scanned in parallel
// into one shared session. Results are indexed like the file list; a file
// that fails to load yields a result with Err set and an I/O diagnostic.
func TokenizeDir(ctx context.Context, sess *session.Session, sm *source.SourceMap, dir string, cfg *config.Config, opts Options) ([]*Result, error) {
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopePass, "tokenize-dir", trace.ParentFromContext(ctx))
	defer root.End("")
	ctx = trace.WithParent(ctx, root)

	paths, err := ListFiles(dir, cfg)
	if err != nil {
		return nil, err
	}
	root.WithExtra("files", strconv.Itoa(len(paths)))
	if len(paths) == 0 {
		return nil, nil
	}
	for _, path := range paths {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	results := make([]*Result, len(paths))
	files := make([]*source.File, len(paths))
	loadSpan := trace.Begin(tracer, trace.ScopePass, "load", root.ID())
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			loadSpan.End("cancelled")
			return results, err
		}
		file, err := loadFile(ctx, sm, path, opts)
		if err != nil {
			results[i] = loadFailure(path, err, opts.MaxDiagnostics)
			continue
		}
		files[i] = file
	}
	loadSpan.End("")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	lexSpan := trace.Begin(tracer, trace.ScopePass, "lex+scan", root.ID())
	defer lexSpan.End("")
	workCtx := trace.WithParent(ctx, lexSpan)

	g, gctx := errgroup.WithContext(workCtx)
	g.SetLimit(min(jobs, len(paths)))
	for i, file := range files {
		if file == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// each goroutine owns results[i]
			results[i] = tokenizeFile(gctx, sess, file, opts)
			return nil
		})
	}
	return results, g.Wait()
}
