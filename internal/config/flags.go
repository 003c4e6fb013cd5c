package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-name            brand name shown in the header
//	-theme           colour theme: light or dark
//	-support-phone   support phone number
//	-support-email   support email address
//	-status-timeout  how long status lines stay visible (e.g. "2s")
//	-log-file        log file path
//	-c/-config       json file path with configs
//
// Unset flags leave the corresponding fields zero so lower-priority sources
// keep their values after merging.
func parseFlags(args []string) (*StructuredConfig, error) {
	var name string
	var theme string
	var supportPhone string
	var supportEmail string
	var statusTimeout time.Duration
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("laundry", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&name, "name", "", "Brand name")
	fs.StringVar(&theme, "theme", "", "UI theme (light, dark)")
	fs.StringVar(&supportPhone, "support-phone", "", "Support phone number")
	fs.StringVar(&supportEmail, "support-email", "", "Support email address")
	fs.DurationVar(&statusTimeout, "status-timeout", 0, "Status line timeout (e.g., 2s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Name:         name,
			SupportPhone: supportPhone,
			SupportEmail: supportEmail,
		},
		UI: UI{
			Theme:         theme,
			StatusTimeout: statusTimeout,
		},
		Log: Log{
			FilePath: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
