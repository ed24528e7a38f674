package diag

import "tscore/internal/source"

type reportKey struct {
	code Code
	sev  Severity
	span source.SpanData
	msg  string
}

// DedupReporter forwards each distinct report once. Reports are distinct
// when code, severity, primary span or message differ. It is not safe for
// concurrent use.
type DedupReporter struct {
	next Reporter
	seen map[reportKey]struct{}
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[reportKey]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.SpanData, msg string, notes []Note, fixes []Fix) {
	if r == nil || r.next == nil {
		return
	}
	key := reportKey{code, sev, primary, msg}
	if _, dup := r.seen[key]; dup {
		return
	}
	r.seen[key] = struct{}{}
	r.next.Report(code, sev, primary, msg, notes, fixes)
}
