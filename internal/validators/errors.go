package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName     = errors.New("name is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrEmptyPhone    = errors.New("phone number is required")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrShortPassword = errors.New("password must be at least 6 characters")
)
