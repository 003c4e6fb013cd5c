package tui

import (
	"github.com/MKhiriev/go-laundry/internal/modal"
	"github.com/MKhiriev/go-laundry/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) toggles the build info window on the home page
// 4) handles NavigateTo messages
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	quitByUser bool
	appName    string
	buildInfo  models.AppBuildInfo
	styles     styles

	buildInfoWindow *modal.Visibility
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage, appName string, buildInfo models.AppBuildInfo, theme string) RootModel {
	return RootModel{
		pages:           pages,
		current:         pages[startPage],
		currentName:     startPage,
		appName:         appName,
		buildInfo:       buildInfo,
		styles:          newStyles(theme),
		buildInfoWindow: modal.New(),
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo) && r.currentName == pageHome:
			r.buildInfoWindow.ToggleModal()
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.buildInfoWindow.IsVisible():
			r.buildInfoWindow.HideModal()
			return r, nil
		}

		if r.buildInfoWindow.IsVisible() {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.buildInfoWindow.HideModal()
		r.current = next
		r.currentName = nav.Page

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.buildInfoWindow.IsVisible() {
		return r.styles.app.Render(r.styles.renderBuildInfoWindow(r.appName, r.buildInfo))
	}
	if r.current == nil {
		return r.styles.app.Render(r.styles.renderPage(r.appName, "", ""))
	}
	return r.styles.app.Render(r.current.View())
}

// QuitByUser reports whether the program ended because the user pressed ctrl+c.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}
