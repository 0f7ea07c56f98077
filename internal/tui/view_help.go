package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleTitle.Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	syntax := []string{
		"  NovelAI    2::tag::   base weight until next :: token",
		"             {tag}      ×1.05 per level",
		"             [tag]      ×0.95 per level",
		"             -1::tag::  negative tag (single field)",
		"",
		"  PixAI      (tag:1.5)  explicit weight",
		"             (tag)      ×1.1 per level",
		"             [tag]      ×0.9 per level",
		"             \\( \\)      literal parentheses",
	}
	syntaxBox := styleBox.Width(58).Render(strings.Join(syntax, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, syntaxBox))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  Tab            Switch input field",
		"  Ctrl+R         Swap direction (result becomes source)",
		"  Ctrl+Y         Copy result to clipboard",
		"  Ctrl+S         Save result to " + savePath,
		"  Ctrl+O         Settings",
		"  Esc            Back / Quit",
	}
	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.Width(58).Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
