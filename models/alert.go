// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Alert is the content of a simple alert dialog: a title and a message body.
type Alert struct {
	Title   string
	Message string
}
