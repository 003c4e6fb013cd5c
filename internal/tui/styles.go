package tui

import (
	"github.com/MKhiriev/go-laundry/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// palette is the set of colours one theme is built from.
type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	muted   lipgloss.Color
	danger  lipgloss.Color
	success lipgloss.Color
}

var palettes = map[string]palette{
	config.ThemeLight: {
		primary: lipgloss.Color("#1565C0"),
		accent:  lipgloss.Color("#00ACC1"),
		muted:   lipgloss.Color("#607D8B"),
		danger:  lipgloss.Color("#C62828"),
		success: lipgloss.Color("#2E7D32"),
	},
	config.ThemeDark: {
		primary: lipgloss.Color("#90CAF9"),
		accent:  lipgloss.Color("#80DEEA"),
		muted:   lipgloss.Color("#B0BEC5"),
		danger:  lipgloss.Color("#EF9A9A"),
		success: lipgloss.Color("#A5D6A7"),
	},
}

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	tagline  lipgloss.Style
	help     lipgloss.Style
	selected lipgloss.Style
	error    lipgloss.Style
	status   lipgloss.Style
	overlay  lipgloss.Style
}

// newStyles builds the styles of the named theme, falling back to the light one.
func newStyles(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[config.ThemeLight]
	}

	return styles{
		app:      lipgloss.NewStyle().Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.primary),
		tagline:  lipgloss.NewStyle().Italic(true).Foreground(p.accent),
		help:     lipgloss.NewStyle().Faint(true).Foreground(p.muted),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		error:    lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		status:   lipgloss.NewStyle().Foreground(p.success),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.primary).Padding(1, 2),
	}
}
