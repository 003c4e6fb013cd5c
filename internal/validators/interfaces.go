// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the laundry front end.
//
// Two layers live here:
//   - string predicates ([ValidateEmail], [ValidatePassword], [ValidatePhone],
//     [ValidateRequired]) that never fail and only answer true or false;
//   - [Validator] implementations that check whole form models and report the
//     first broken rule as a sentinel error, so screens can show a message.
package validators

import "context"

// Validator validates an arbitrary input value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
