// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Customer is the data collected by the sign-up form.
//
// ID stays empty until the form passes validation and a reference is assigned.
type Customer struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Password string
}
