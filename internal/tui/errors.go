// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-laundry/internal/validators"
)

// ErrNilConfig is returned by [New] when no configuration is given.
var ErrNilConfig = errors.New("tui: nil config")

// humanizeValidationError turns a validator sentinel into a form message.
func humanizeValidationError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrEmptyName):
		return "Please enter your name"
	case errors.Is(err, validators.ErrEmptyEmail):
		return "Please enter your email address"
	case errors.Is(err, validators.ErrInvalidEmail):
		return "That email address does not look right"
	case errors.Is(err, validators.ErrEmptyPhone):
		return "Please enter your phone number"
	case errors.Is(err, validators.ErrInvalidPhone):
		return "Use a Kenyan mobile number, e.g. 0712345678 or +254712345678"
	case errors.Is(err, validators.ErrShortPassword):
		return "Password must be at least 6 characters"
	default:
		return err.Error()
	}
}
