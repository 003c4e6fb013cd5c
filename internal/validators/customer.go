// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-laundry/models"
)

// Field names accepted by [CustomerValidator] to restrict validation to a
// subset of the sign-up form.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldPassword = "password"
)

// CustomerValidator checks the sign-up form ([models.Customer]).
type CustomerValidator struct{}

// NewCustomerValidator returns a [Validator] for [models.Customer] values and pointers.
func NewCustomerValidator() Validator {
	return &CustomerValidator{}
}

// Validate dispatches on the dynamic type of obj and returns ErrUnsupportedType
// for anything but a customer. A nil *models.Customer is unsupported too.
func (v *CustomerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Customer:
		return v.validateCustomer(ctx, value, fields...)
	case *models.Customer:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCustomer(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateCustomer checks the requested fields in order and returns the first
// failure. With no fields given, all four are checked: name, email, phone,
// password.
//
// Required-ness is checked on the trimmed value, formats on the raw value;
// the password length counts surrounding spaces.
func (v *CustomerValidator) validateCustomer(_ context.Context, c models.Customer, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPhone, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !ValidateRequired(c.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if !ValidateRequired(c.Email) {
				return ErrEmptyEmail
			}
			if !ValidateEmail(c.Email) {
				return ErrInvalidEmail
			}
		case FieldPhone:
			if !ValidateRequired(c.Phone) {
				return ErrEmptyPhone
			}
			if !ValidatePhone(c.Phone) {
				return ErrInvalidPhone
			}
		case FieldPassword:
			if !ValidatePassword(c.Password) {
				return ErrShortPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
