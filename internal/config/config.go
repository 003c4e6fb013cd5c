// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-laundry/models"
)

// Theme names understood by the terminal UI.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// StructuredConfig is the top-level configuration container for the
// go-laundry client. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds branding and support contact settings.
	App App `envPrefix:"APP_"`

	// UI holds presentation settings of the terminal UI.
	UI UI `envPrefix:"UI_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the settings shown to customers.
type App struct {
	// Name overrides the brand name in the home screen header.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// SupportPhone is the number shown (and copied) by the "Contact us" alert.
	// Must be a valid Kenyan mobile number.
	// Env: APP_SUPPORT_PHONE
	SupportPhone string `env:"SUPPORT_PHONE"`

	// SupportEmail is the address shown by the "Contact us" alert.
	// Env: APP_SUPPORT_EMAIL
	SupportEmail string `env:"SUPPORT_EMAIL"`
}

// UI holds presentation settings.
type UI struct {
	// Theme selects the colour palette: "light" or "dark".
	// Env: UI_THEME
	Theme string `env:"THEME"`

	// StatusTimeout is how long transient status lines (e.g. "copied") stay
	// on screen.
	// Env: UI_STATUS_TIMEOUT
	StatusTimeout time.Duration `env:"STATUS_TIMEOUT"`
}

// Log holds log output settings.
type Log struct {
	// FilePath is the file the client appends JSON log entries to.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:         models.DefaultBrand().Name,
			SupportPhone: "0712345678",
			SupportEmail: "hello@freshfold.co.ke",
		},
		UI: UI{
			Theme:         ThemeLight,
			StatusTimeout: 2 * time.Second,
		},
		Log: Log{
			FilePath: "laundry.log",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags parsed from args (usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
