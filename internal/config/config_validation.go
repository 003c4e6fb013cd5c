// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-laundry/internal/validators"
)

// validate checks that the final merged [StructuredConfig] is usable by the
// client. Support contacts go through the same validators as customer input.
func (cfg *StructuredConfig) validate() error {
	if !validators.ValidateRequired(cfg.App.Name) {
		return ErrInvalidAppConfigs
	}
	if !validators.ValidatePhone(cfg.App.SupportPhone) {
		return fmt.Errorf("%w: phone %q", ErrInvalidSupportContacts, cfg.App.SupportPhone)
	}
	if !validators.ValidateEmail(cfg.App.SupportEmail) {
		return fmt.Errorf("%w: email %q", ErrInvalidSupportContacts, cfg.App.SupportEmail)
	}

	switch cfg.UI.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTheme, cfg.UI.Theme)
	}
	if cfg.UI.StatusTimeout <= 0 {
		return ErrInvalidUIConfigs
	}

	if !validators.ValidateRequired(cfg.Log.FilePath) {
		return ErrInvalidLogConfigs
	}

	return nil
}
