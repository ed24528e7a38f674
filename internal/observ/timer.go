// Package observ measures pipeline phases.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase is the accumulated time spent in one named phase.
type Phase struct {
	Name  string
	Dur   time.Duration
	Count int
	Note  string
}

// Timer accumulates phase durations. Phases keep the order in which they
// were first seen. It is safe for concurrent use, so parallel workers can
// add per-file time to a shared phase.
type Timer struct {
	mu     sync.Mutex
	start  time.Time
	phases []Phase
	index  map[string]int
}

func NewTimer() *Timer {
	return &Timer{start: time.Now(), index: make(map[string]int, 8)}
}

// Time starts measuring name and returns a function that stops it.
func (t *Timer) Time(name string) func() {
	start := time.Now()
	return func() { t.Add(name, time.Since(start)) }
}

// Add adds d to the phase called name. A nil Timer ignores it.
func (t *Timer) Add(name string, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	i, ok := t.index[name]
	if !ok {
		i = len(t.phases)
		t.index[name] = i
		t.phases = append(t.phases, Phase{Name: name})
	}
	t.phases[i].Dur += d
	t.phases[i].Count++
}

// Note attaches a note to an existing phase.
func (t *Timer) Note(name, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if i, ok := t.index[name]; ok {
		t.phases[i].Note = note
	}
}

// Phases returns a copy of the recorded phases.
func (t *Timer) Phases() []Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Phase(nil), t.phases...)
}

// Summary renders one line per phase plus the wall time since NewTimer.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-12s %9.2f ms  x%d", p.Name, p.DurationMS, p.Count)
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-12s %9.2f ms\n", "wall", report.WallMS)
	return sb.String()
}

type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count"`
	Note       string  `json:"note,omitempty"`
}

// Report is the serializable form of a Timer.
type Report struct {
	WallMS float64       `json:"wall_ms"`
	Phases []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	phases := t.Phases()
	report := Report{
		WallMS: durationToMillis(time.Since(t.start)),
		Phases: make([]PhaseReport, len(phases)),
	}
	for i, p := range phases {
		report.Phases[i] = PhaseReport{
			Name:       p.Name,
			DurationMS: durationToMillis(p.Dur),
			Count:      p.Count,
			Note:       p.Note,
		}
	}
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
