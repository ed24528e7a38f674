package diag

// Severity orders diagnostics from informational to fatal for the file.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError marks the file as failed; the CLI exits non-zero.
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
