// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-laundry/internal/config"
	"github.com/MKhiriev/go-laundry/internal/logger"
	"github.com/MKhiriev/go-laundry/internal/validators"
	"github.com/MKhiriev/go-laundry/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldPassword
)

// SignUpModel is the Bubble Tea model for the sign-up screen. It renders four
// text inputs (name, email, phone and password) and checks them with a
// [validators.Validator] on submission.
// On success the customer gets a reference ID, the form is reset and the
// model navigates home with a [SignUpSuccessNotice] payload.
type SignUpModel struct {
	ctx       context.Context
	validator validators.Validator
	styles    styles
	log       *logger.Logger
	newID     func() string

	inputs []textinput.Model
	focus  int
	errMsg string
}

// NewSignUpModel creates a [SignUpModel] with four pre-configured text inputs.
// The name field receives focus immediately; the password field uses masked echo.
func NewSignUpModel(ctx context.Context, v validators.Validator, ui config.UI, log *logger.Logger) *SignUpModel {
	fields := make([]textinput.Model, 4)

	fields[fieldName] = textinput.New()
	fields[fieldName].Placeholder = "full name"
	fields[fieldName].CharLimit = 64
	fields[fieldName].Width = 40
	fields[fieldName].Focus()

	fields[fieldEmail] = textinput.New()
	fields[fieldEmail].Placeholder = "you@example.com"
	fields[fieldEmail].CharLimit = 254
	fields[fieldEmail].Width = 40

	fields[fieldPhone] = textinput.New()
	fields[fieldPhone].Placeholder = "0712345678"
	fields[fieldPhone].CharLimit = 13
	fields[fieldPhone].Width = 40

	fields[fieldPassword] = textinput.New()
	fields[fieldPassword].Placeholder = "at least 6 characters"
	fields[fieldPassword].CharLimit = 256
	fields[fieldPassword].Width = 40
	fields[fieldPassword].EchoMode = textinput.EchoPassword
	fields[fieldPassword].EchoCharacter = '*'

	if log == nil {
		log = logger.Nop()
	}

	return &SignUpModel{
		ctx:       ctx,
		validator: v,
		styles:    newStyles(ui.Theme),
		log:       log,
		newID:     uuid.NewString,
		inputs:    fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *SignUpModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - esc      : clears the form and navigates back home.
//   - tab      : moves focus to the next input.
//   - shift+tab: moves focus to the previous input.
//   - enter    : validates the form and, on success, navigates home with a
//     [SignUpSuccessNotice].
//
// All other key events are forwarded to the focused input widget.
func (m *SignUpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.resetForm()
			return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit validates the form. Name, email and phone are trimmed before
// validation; the password is taken as typed.
func (m *SignUpModel) submit() tea.Cmd {
	customer := models.Customer{
		Name:     strings.TrimSpace(m.inputs[fieldName].Value()),
		Email:    strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Phone:    strings.TrimSpace(m.inputs[fieldPhone].Value()),
		Password: m.inputs[fieldPassword].Value(),
	}

	if err := m.validator.Validate(m.ctx, customer); err != nil {
		m.log.Debug().Err(err).Msg("sign-up form rejected")
		m.errMsg = humanizeValidationError(err)
		return nil
	}

	customer.ID = m.newID()
	m.log.Info().Str("customer_id", customer.ID).Msg("customer signed up")

	m.resetForm()
	return func() tea.Msg {
		return NavigateTo{
			Page:    pageHome,
			Payload: SignUpSuccessNotice{Customer: customer},
		}
	}
}

// View implements [tea.Model]. Renders the form as a two-column table and an
// optional error message.
func (m *SignUpModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Name      │ [")
	b.WriteString(m.inputs[fieldName].View())
	b.WriteString("]\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[fieldEmail].View())
	b.WriteString("]\n")
	b.WriteString("Phone     │ [")
	b.WriteString(m.inputs[fieldPhone].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[fieldPassword].View())
	b.WriteString("]\n")

	b.WriteString("\n[Create account]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.error.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return m.styles.renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *SignUpModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.errMsg = ""
	m.focus = fieldName
	m.inputs[m.focus].Focus()
}

func (m *SignUpModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignUpModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
