package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tscore/internal/version"
)

// buildInfo is the version payload; optional fields stay empty unless asked for.
type buildInfo struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show tscore build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	flags := versionCmd.Flags()
	flags.Bool("hash", false, "include git commit hash")
	flags.Bool("message", false, "include git commit message")
	flags.Bool("date", false, "include build timestamp")
	flags.Bool("full", false, "show all build metadata")
	flags.String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	full, _ := flags.GetBool("full")
	want := func(name string) bool {
		on, _ := flags.GetBool(name)
		return on || full
	}
	info := collectBuildInfo(want("hash"), want("message"), want("date"))

	format, _ := flags.GetString("format")
	switch strings.ToLower(format) {
	case "pretty":
		renderVersionPretty(cmd.OutOrStdout(), info)
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

func collectBuildInfo(hash, message, date bool) buildInfo {
	info := buildInfo{Tool: "tscore", Version: strings.TrimSpace(version.Version)}
	if info.Version == "" {
		info.Version = "dev"
	}
	if hash {
		info.GitCommit = valueOrUnknown(version.GitCommit)
	}
	if message {
		info.GitMessage = valueOrUnknown(version.GitMessage)
	}
	if date {
		info.BuildDate = valueOrUnknown(version.BuildDate)
	}
	return info
}

func renderVersionPretty(out io.Writer, info buildInfo) {
	fmt.Fprintf(out, "%s %s\n", info.Tool, version.Colored(info.Version))
	for _, row := range [][2]string{
		{"commit", info.GitCommit},
		{"message", info.GitMessage},
		{"built", info.BuildDate},
	} {
		if row[1] != "" {
			fmt.Fprintf(out, "%-8s %s\n", row[0]+":", row[1])
		}
	}
}

func valueOrUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
