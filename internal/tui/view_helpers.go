package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out a screen: title, divider, indented body, divider and
// the hotkey line.
func (s styles) renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(s.title.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(s.help.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(s.help.Render("ctrl+c: quit"))

	return b.String()
}

// withOverlay appends an overlay box under the page body.
func withOverlay(page, overlay string) string {
	if overlay == "" {
		return page
	}
	return page + "\n\n" + overlay
}
