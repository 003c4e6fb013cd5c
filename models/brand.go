// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Service describes one offering of the laundry business.
type Service struct {
	// Name is the short label shown in lists (e.g. "Wash & Fold").
	Name string
	// Description is a one-line explanation of what the service includes.
	Description string
	// Turnaround is a human-readable delivery estimate (e.g. "24h").
	Turnaround string
}

// Brand carries the static branding copy rendered on the home screen.
type Brand struct {
	Name     string
	Tagline  string
	About    string
	Services []Service
}

// DefaultBrand returns the branding copy of the laundry business.
func DefaultBrand() Brand {
	return Brand{
		Name:    "FreshFold Laundry",
		Tagline: "Clean clothes, delivered to your door",
		About:   "We collect, wash, dry, iron and deliver. You relax.",
		Services: []Service{
			{Name: "Wash & Fold", Description: "Everyday laundry washed, dried and neatly folded", Turnaround: "24h"},
			{Name: "Dry Cleaning", Description: "Suits, dresses and delicate fabrics", Turnaround: "48h"},
			{Name: "Ironing", Description: "Pressed shirts and trousers on hangers", Turnaround: "24h"},
			{Name: "Duvets & Bedding", Description: "Duvets, blankets and curtains", Turnaround: "72h"},
		},
	}
}
