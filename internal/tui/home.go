// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-laundry/internal/config"
	"github.com/MKhiriev/go-laundry/internal/logger"
	"github.com/MKhiriev/go-laundry/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type homeAction int

const (
	actionPickup homeAction = iota
	actionServices
	actionContact
	actionSignUp
)

type homeButton struct {
	label  string
	action homeAction
}

// HomeModel is the landing screen: branding text and a column of buttons.
// Every button but "Sign up" opens an alert dialog on top of the page.
type HomeModel struct {
	brand         models.Brand
	app           config.App
	styles        styles
	clipboard     Clipboard
	statusTimeout time.Duration
	log           *logger.Logger

	buttons []homeButton
	idx     int
	alert   alertModel
	status  string
	errMsg  string
}

// NewHomeModel creates a [HomeModel] for brand, using app for the header name
// and support contacts.
func NewHomeModel(brand models.Brand, app config.App, ui config.UI, cb Clipboard, log *logger.Logger) *HomeModel {
	if app.Name != "" {
		brand.Name = app.Name
	}
	if log == nil {
		log = logger.Nop()
	}
	if cb == nil {
		cb = systemClipboard{}
	}

	return &HomeModel{
		brand:         brand,
		app:           app,
		styles:        newStyles(ui.Theme),
		clipboard:     cb,
		statusTimeout: ui.StatusTimeout,
		log:           log,
		buttons: []homeButton{
			{label: "Schedule pickup", action: actionPickup},
			{label: "Our services", action: actionServices},
			{label: "Contact us", action: actionContact},
			{label: "Sign up", action: actionSignUp},
		},
		alert: newAlertModel(),
	}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model]. Handled messages:
//   - [SignUpSuccessNotice]: opens the welcome alert.
//   - copiedMsg / copyFailedMsg: sets the status line, cleared after a timeout.
//   - enter / esc while an alert is open: closes it.
//   - c while the contact alert is open: copies the support phone number.
//   - up / down / enter: moves the selection and presses the button.
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignUpSuccessNotice:
		m.alert.open(alertSignedUp, signedUpAlert(msg.Customer), "")
		return m, nil
	case copiedMsg:
		m.errMsg = ""
		m.status = "Copied " + msg.text + " to clipboard"
		return m, cmdClearStatus(m.statusTimeout)
	case copyFailedMsg:
		m.log.Warn().Err(msg.err).Msg("clipboard write failed")
		m.status = ""
		m.errMsg = "Could not copy to clipboard"
		return m, cmdClearStatus(m.statusTimeout)
	case clearStatusMsg:
		m.status = ""
		m.errMsg = ""
		return m, nil
	case tea.KeyMsg:
		if m.alert.visible() {
			return m.updateAlert(msg)
		}
		return m.updateButtons(msg)
	}

	return m, nil
}

func (m *HomeModel) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
		m.alert.close()
	case key.Matches(msg, keys.copy) && m.alert.kind == alertContact:
		return m, cmdCopyToClipboard(m.clipboard, m.app.SupportPhone)
	}
	return m, nil
}

func (m *HomeModel) updateButtons(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.buttons)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		return m, m.press(m.buttons[m.idx].action)
	}
	return m, nil
}

func (m *HomeModel) press(action homeAction) tea.Cmd {
	m.log.Debug().Str("button", m.buttons[m.idx].label).Msg("button pressed")

	switch action {
	case actionPickup:
		m.alert.open(alertPickup, pickupAlert(m.app), "")
	case actionServices:
		m.alert.open(alertServices, servicesAlert(m.brand), "")
	case actionContact:
		m.alert.open(alertContact, contactAlert(m.app), "c: copy phone")
	case actionSignUp:
		return func() tea.Msg { return NavigateTo{Page: pageSignUp} }
	}
	return nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.tagline.Render(m.brand.Tagline))
	b.WriteString("\n")
	b.WriteString(m.brand.About)
	b.WriteString("\n\n")

	labelWidth := 0
	for _, btn := range m.buttons {
		if w := lipgloss.Width(btn.label); w > labelWidth {
			labelWidth = w
		}
	}

	for i, btn := range m.buttons {
		line := fmt.Sprintf("[ %-*s ]", labelWidth, btn.label)
		if i == m.idx {
			b.WriteString("> ")
			b.WriteString(m.styles.selected.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.status.Render("OK: " + m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.error.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	page := m.styles.renderPage(strings.ToUpper(m.brand.Name), strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
	return withOverlay(page, m.alert.View(m.styles))
}

func pickupAlert(app config.App) models.Alert {
	return models.Alert{
		Title:   "Pickup requested",
		Message: "Thank you! A rider will call you shortly to confirm a pickup time.\nQuestions? Call " + app.SupportPhone + ".",
	}
}

func servicesAlert(brand models.Brand) models.Alert {
	var b strings.Builder
	for i, s := range brand.Services {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %s (%s): %s", s.Name, s.Turnaround, s.Description)
	}

	return models.Alert{Title: "Our services", Message: b.String()}
}

func contactAlert(app config.App) models.Alert {
	return models.Alert{
		Title:   "Contact us",
		Message: "Phone: " + app.SupportPhone + "\nEmail: " + app.SupportEmail,
	}
}

func signedUpAlert(c models.Customer) models.Alert {
	return models.Alert{
		Title: "Welcome aboard",
		Message: fmt.Sprintf("Welcome, %s!\nYour customer reference is %s.\nWe will text %s when your first pickup is confirmed.",
			c.Name, c.ID, c.Phone),
	}
}
