package tui

import (
	"github.com/MKhiriev/go-laundry/internal/modal"
	"github.com/MKhiriev/go-laundry/models"
)

type alertKind int

const (
	alertNone alertKind = iota
	alertPickup
	alertServices
	alertContact
	alertSignedUp
)

// alertModel is a dismissable dialog drawn under the page it belongs to.
type alertModel struct {
	visibility *modal.Visibility
	kind       alertKind
	content    models.Alert
	hint       string
}

func newAlertModel() alertModel {
	return alertModel{visibility: modal.New()}
}

func (m *alertModel) open(kind alertKind, content models.Alert, hint string) {
	m.kind = kind
	m.content = content
	m.hint = hint
	m.visibility.ShowModal()
}

func (m *alertModel) close() {
	m.visibility.HideModal()
	m.kind = alertNone
	m.content = models.Alert{}
	m.hint = ""
}

func (m alertModel) visible() bool {
	return m.visibility.IsVisible()
}

func (m alertModel) View(s styles) string {
	if !m.visible() {
		return ""
	}

	content := s.title.Render(m.content.Title) + "\n\n" + m.content.Message + "\n\n"
	if m.hint != "" {
		content += s.help.Render(m.hint) + "    "
	}
	content += s.help.Render("enter / esc close")
	return s.overlay.Render(content)
}
