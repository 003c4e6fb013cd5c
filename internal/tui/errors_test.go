package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-laundry/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "empty name", err: validators.ErrEmptyName, want: "Please enter your name"},
		{name: "wrapped email", err: fmt.Errorf("form: %w", validators.ErrInvalidEmail), want: "That email address does not look right"},
		{name: "empty phone", err: validators.ErrEmptyPhone, want: "Please enter your phone number"},
		{name: "short password", err: validators.ErrShortPassword, want: "Password must be at least 6 characters"},
		{name: "unknown", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeValidationError(tt.err))
		})
	}
}
