// Package trace records spans for the tokenizer pipeline.
//
// Enable it from the command line:
//
//	tscore tokenize --trace=- --trace-level=detail src/
//
// A Tracer travels through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", 0)
//	defer span.End("")
//
// Levels filter by scope. LevelPhase keeps driver and pass spans, LevelDetail
// adds one span per file, LevelDebug keeps everything.
package trace
