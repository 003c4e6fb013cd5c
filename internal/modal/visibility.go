// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package modal holds the visibility state shared by every overlay in the
// terminal UI (alert dialogs, the build info window).
//
// A [Visibility] is owned by exactly one overlay and is never shared. It is
// not safe for concurrent use; all calls happen on the Bubble Tea event loop.
package modal

// Visibility is a two-state flag: Hidden (the initial state) or Visible.
// The zero value is a ready-to-use Hidden flag.
type Visibility struct {
	visible bool
}

// New returns a Hidden [Visibility].
func New() *Visibility {
	return &Visibility{}
}

// ShowModal makes the overlay visible. Calling it on a visible overlay is a no-op.
func (v *Visibility) ShowModal() {
	v.visible = true
}

// HideModal hides the overlay. Calling it on a hidden overlay is a no-op.
func (v *Visibility) HideModal() {
	v.visible = false
}

// ToggleModal flips the flag.
func (v *Visibility) ToggleModal() {
	v.visible = !v.visible
}

// IsVisible reports whether the overlay is currently shown.
func (v *Visibility) IsVisible() bool {
	return v.visible
}
