package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tscore/internal/driver"
)

func send(m tea.Model, ev driver.Event) tea.Model {
	next, _ := m.Update(eventMsg(ev))
	return next
}

func TestProgressModelTracksFiles(t *testing.T) {
	files := []string{"src/a.ts", "src/b.ts"}
	var m tea.Model = NewProgressModel("tokenize", files, nil)

	m = send(m, driver.Event{File: "src/a.ts", Stage: driver.StageLoad, Status: driver.StatusWorking})
	m = send(m, driver.Event{File: "./src/a.ts", Stage: driver.StageLex, Status: driver.StatusDone, Cached: true})
	m = send(m, driver.Event{File: "src/a.ts", Stage: driver.StageScan, Status: driver.StatusDone})
	m = send(m, driver.Event{File: "src/b.ts", Stage: driver.StageLoad, Status: driver.StatusError})
	m = send(m, driver.Event{File: "unknown.ts", Stage: driver.StageLoad, Status: driver.StatusWorking})

	pm := m.(*progressModel)
	if pm.items[0].status != "done" || !pm.items[0].finished || !pm.items[0].cached {
		t.Fatalf("item a = %+v", pm.items[0])
	}
	if pm.items[1].status != "error" {
		t.Fatalf("item b = %+v", pm.items[1])
	}
	if got := pm.percent(); got != 1.0 {
		t.Fatalf("percent = %v, want 1", got)
	}

	view := m.View()
	for _, want := range []string{"tokenize 2/2, 1 failed, 1 cached", "done", "error", "src/a.ts"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressModelStages(t *testing.T) {
	var m tea.Model = NewProgressModel("t", []string{"a.ts"}, nil)
	m = send(m, driver.Event{File: "a.ts", Stage: driver.StageLex, Status: driver.StatusWorking})
	pm := m.(*progressModel)
	if pm.items[0].status != "lexing" {
		t.Fatalf("status = %q", pm.items[0].status)
	}
	if got := pm.percent(); got != 0.4 {
		t.Fatalf("percent = %v", got)
	}
}

func TestProgressModelQuitsWhenEventsClose(t *testing.T) {
	ch := make(chan driver.Event)
	close(ch)
	pm := NewProgressModel("t", []string{"a.ts"}, ch).(*progressModel)
	msg := pm.listenForEvent()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("expected doneMsg, got %T", msg)
	}
	m, cmd := pm.Update(msg)
	if cmd == nil || !m.(*progressModel).done {
		t.Fatal("model should finish and quit")
	}
	if !strings.Contains(m.View(), "done: t 0/1") {
		t.Fatalf("unexpected view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 6, "abc..."},
		{"abcdef", 2, "ab"},
		{"日本語のパス", 7, "日本..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
