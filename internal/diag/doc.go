// Package diag defines the diagnostic model for lexical and I/O problems.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form (codes.go).
//   - Message: short, actionable text.
//   - Primary: the decoded source range, in SourceMap positions.
//   - Notes: optional secondary ranges with messages.
//   - Fixes: optional text edits that would address the problem.
//
// # Emitting diagnostics
//
// Producers report through a Reporter so they stay independent of storage.
// The scanner uses ReportError/ReportWarning builders; BagReporter collects
// into a capped Bag, which supports sorting and deduplication, and
// DedupReporter filters repeats on the way.
//
// Rendering lives in internal/diagfmt. FormatShort is the exception: the
// one-line form is part of this package so golden tests can use it without
// pulling in terminal styling.
package diag
