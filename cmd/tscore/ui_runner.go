package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tscore/internal/driver"
	"tscore/internal/ui"
)

// runWithUI runs work while the progress view consumes its events. work must
// not close the channel; runWithUI does once work returns.
func runWithUI(title string, files []string, work func(driver.ProgressSink) error) error {
	events := make(chan driver.Event, 256)
	done := make(chan error, 1)

	go func() {
		err := work(driver.ChannelSink{Ch: events})
		close(events)
		done <- err
	}()

	program := tea.NewProgram(ui.NewProgressModel(title, files, events), tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep draining so the worker never blocks on a full channel
		go func() {
			for range events {
			}
		}()
	}
	workErr := <-done
	if uiErr != nil {
		return uiErr
	}
	return workErr
}
