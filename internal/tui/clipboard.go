package tui

//go:generate mockgen -source=clipboard.go -destination=../mock/clipboard_mock.go -package=mock

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func cmdCopyToClipboard(cb Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		if err := cb.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{text: text}
	}
}

func cmdClearStatus(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
