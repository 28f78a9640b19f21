package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskdash/internal/api"
)

// Run starts the interactive dashboard. It returns api.ErrUnauthorized when
// the server rejected the credential mid-session (the stored session has
// already been cleared by then).
func Run(client *api.Client, username string) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(client, username)
	out, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if final, ok := out.(appModel); ok && final.authExpired {
		return api.ErrUnauthorized
	}
	return nil
}
