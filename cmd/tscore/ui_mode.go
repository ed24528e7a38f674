package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the value of --ui.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

var uiModes = map[string]uiMode{
	"":     uiModeAuto,
	"auto": uiModeAuto,
	"on":   uiModeOn,
	"off":  uiModeOff,
}

func readUIMode(value string) (uiMode, error) {
	if mode, ok := uiModes[strings.ToLower(strings.TrimSpace(value))]; ok {
		return mode, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI reports whether to show the progress view. auto needs a
// terminal on stdout and more than one file.
func shouldUseTUI(mode uiMode, files int) bool {
	if mode != uiModeAuto {
		return mode == uiModeOn
	}
	return files > 1 && isTerminal(os.Stdout)
}
