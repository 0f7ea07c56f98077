package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderSettings() string {
	var b strings.Builder

	title := styleTitle.Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	copyMode := "result only"
	if a.state.config.CopyNegative {
		copyMode = "result + negative prompt"
	}

	configLines := []string{
		fmt.Sprintf("  Start direction: %s", a.state.config.DefaultDirection),
		fmt.Sprintf("  Clipboard copy:  %s", copyMode),
	}
	configBox := styleBox.Width(50).Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	actions := []string{
		"  [d] Toggle start direction",
		"  [c] Toggle clipboard copy mode",
	}
	actionsBox := styleBox.Width(50).Render(strings.Join(actions, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, actionsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
