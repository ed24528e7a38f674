package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tscore/internal/config"
	"tscore/internal/diag"
	"tscore/internal/lexer"
	"tscore/internal/observ"
	"tscore/internal/scanner"
	"tscore/internal/session"
	"tscore/internal/source"
	"tscore/internal/token"
	"tscore/internal/trace"
)

// Options configure Tokenize and TokenizeDir.
type Options struct {
	MaxDiagnostics int
	// Jobs limits parallel workers; 0 means GOMAXPROCS.
	Jobs        int
	SkipShebang bool
	// Cache, when set, stores raw tokens by content hash.
	Cache    *TokenCache
	Progress ProgressSink
	// Timer, when set, accumulates load, lex and scan time.
	Timer *observ.Timer
}

// Result holds everything produced for one file.
type Result struct {
	Path string
	// File is nil when loading failed.
	File *source.File
	// Start is the offset of the first token; the shebang line is skipped.
	Start   int
	Tokens  []token.Token
	Lexemes []scanner.Lexeme
	Bag     *diag.Bag
	// Err is the load error, also reported in Bag.
	Err      error
	CacheHit bool
}

// Tokenize loads path into sm, tokenizes it and scans the tokens into
// lexemes interned in sess.
func Tokenize(ctx context.Context, sess *session.Session, sm *source.SourceMap, path string, opts Options) (*Result, error) {
	file, err := loadFile(ctx, sm, path, opts)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(ctx, sess, file, opts), nil
}

// TokenizeText tokenizes in-memory text registered in sm under path.
func TokenizeText(ctx context.Context, sess *session.Session, sm *source.SourceMap, path, text string, opts Options) *Result {
	return tokenizeFile(ctx, sess, sm.AddVirtual(path, text), opts)
}

func loadFile(ctx context.Context, sm *source.SourceMap, path string, opts Options) (*source.File, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "load:"+path, trace.ParentFromContext(ctx))
	start := time.Now()
	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})

	file, err := sm.Load(path)
	elapsed := time.Since(start)
	opts.Timer.Add(string(StageLoad), elapsed)
	if err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: elapsed})
		trace.Point(tracer, trace.ScopeFile, "load failed", err.Error(), span.ID())
		span.End("error")
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusDone, Elapsed: elapsed})
	span.WithExtra("bytes", strconv.Itoa(len(file.Text))).End("")
	return file, nil
}

func tokenizeFile(ctx context.Context, sess *session.Session, file *source.File, opts Options) *Result {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file:"+file.Path, trace.ParentFromContext(ctx))

	res := &Result{
		Path: file.Path,
		File: file,
		Bag:  diag.NewBag(bagLimit(opts.MaxDiagnostics)),
	}
	if opts.SkipShebang {
		if n, ok := lexer.StripShebang(file.Text); ok {
			res.Start = n
		}
	}

	lexStart := time.Now()
	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusWorking})
	res.Tokens, res.CacheHit = cachedTokens(opts.Cache, file, res.Start)
	if !res.CacheHit {
		res.Tokens = lexTokens(file.Text, res.Start)
		if err := opts.Cache.Put(file.Hash, &CacheEntry{Start: res.Start, Tokens: res.Tokens}); err != nil {
			trace.Point(tracer, trace.ScopeFile, "cache write failed", err.Error(), span.ID())
		}
	}
	elapsed := time.Since(lexStart)
	opts.Timer.Add(string(StageLex), elapsed)
	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusDone, Elapsed: elapsed, Cached: res.CacheHit})

	scanStart := time.Now()
	emit(opts.Progress, Event{File: file.Path, Stage: StageScan, Status: StatusWorking})
	sc := scanner.NewFromTokens(sess, file, res.Start, res.Tokens, scanner.Options{
		Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag}),
	})
	for lx := range sc.All() {
		res.Lexemes = append(res.Lexemes, lx)
	}
	res.Bag.Sort()
	elapsed = time.Since(scanStart)
	opts.Timer.Add(string(StageScan), elapsed)
	status := StatusDone
	if res.Bag.HasErrors() {
		status = StatusError
	}
	emit(opts.Progress, Event{File: file.Path, Stage: StageScan, Status: status, Elapsed: elapsed})

	span.WithExtra("tokens", strconv.Itoa(len(res.Tokens))).
		WithExtra("lexemes", strconv.Itoa(len(res.Lexemes))).
		WithExtra("cached", strconv.FormatBool(res.CacheHit)).
		End("")
	return res
}

func lexTokens(text string, start int) []token.Token {
	lx := lexer.New(text)
	lx.Skip(start)
	var toks []token.Token
	for {
		tok, ok := lx.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// cachedTokens returns cached tokens that start at start and cover the rest of
// the file exactly. Anything else counts as a miss.
func cachedTokens(cache *TokenCache, file *source.File, start int) ([]token.Token, bool) {
	entry, ok, err := cache.Get(file.Hash)
	if err != nil || !ok || entry.Start != start {
		return nil, false
	}
	total := start
	for _, tok := range entry.Tokens {
		total += int(tok.Len)
	}
	if total != len(file.Text) {
		return nil, false
	}
	return entry.Tokens, true
}

// loadFailure turns a load error into a result carrying an I/O diagnostic.
func loadFailure(path string, err error, maxDiagnostics int) *Result {
	code := diag.IOLoadFileError
	if errors.Is(err, source.ErrInvalidUTF16) {
		code = diag.IODecodeError
	}
	bag := diag.NewBag(bagLimit(maxDiagnostics))
	bag.Add(diag.NewError(code, source.SpanData{}, err.Error()))
	return &Result{Path: path, Bag: bag, Err: err}
}

func bagLimit(n int) int {
	if n <= 0 {
		return config.DefaultMaxDiagnostics
	}
	return n
}
