package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidTheme indicates an unknown UI theme name.
	ErrInvalidTheme = errors.New("invalid ui theme")
	// ErrInvalidUIConfigs indicates invalid UI timings (e.g. a non-positive
	// status timeout).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidSupportContacts indicates a support phone or email that does
	// not pass the customer-facing validators.
	ErrInvalidSupportContacts = errors.New("invalid support contacts")
	// ErrInvalidAppConfigs indicates missing application settings
	// (for example, a blank name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates missing log settings.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
