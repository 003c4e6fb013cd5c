package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-laundry/internal/config"
	"github.com/MKhiriev/go-laundry/internal/logger"
	"github.com/MKhiriev/go-laundry/internal/validators"
	"github.com/MKhiriev/go-laundry/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testApp() config.App {
	return config.App{
		Name:         "FreshFold Laundry",
		SupportPhone: "0712345678",
		SupportEmail: "hello@freshfold.co.ke",
	}
}

func testUI() config.UI {
	return config.UI{Theme: config.ThemeLight, StatusTimeout: time.Second}
}

func newTestHome(cb Clipboard) *HomeModel {
	return NewHomeModel(models.DefaultBrand(), testApp(), testUI(), cb, logger.Nop())
}

func newTestSignUp() *SignUpModel {
	m := NewSignUpModel(context.Background(), validators.NewCustomerValidator(), testUI(), logger.Nop())
	m.newID = func() string { return "ref-1" }
	return m
}

// typeInto sends text to the focused input of m.
func typeInto(m tea.Model, text string) tea.Model {
	updated, _ := m.Update(runes(text))
	return updated
}

// pressDown moves the home selection n times.
func pressDown(m *HomeModel, n int) {
	for i := 0; i < n; i++ {
		m.Update(keyDown)
	}
}
