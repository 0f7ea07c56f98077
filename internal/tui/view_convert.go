package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/promptport/internal/prompt"
)

func (a *App) renderConvert() string {
	var b strings.Builder
	s := a.state

	boxWidth := min(72, a.width-2)
	if boxWidth < 24 {
		boxWidth = 24
	}

	// Header
	title := styleTitle.Render("promptport")
	direction := styleSubtitle.Render(directionLabel(s.direction))
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", direction)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n\n")

	// Source input(s)
	sourceLabel := "NovelAI prompt"
	if s.direction == prompt.PixAIToNovelAI {
		sourceLabel = "PixAI prompt"
	}
	b.WriteString(a.renderField(sourceLabel, s.source.View(), boxWidth, s.focus == focusSource))
	if s.hasNegativeInput() {
		b.WriteString(a.renderField("PixAI negative prompt", s.negative.View(), boxWidth, s.focus == focusNegative))
	}

	// Result(s)
	resultLabel := "PixAI prompt"
	if s.direction == prompt.PixAIToNovelAI {
		resultLabel = "NovelAI prompt"
	}
	b.WriteString(a.renderResultBox(resultLabel, s.result.Text, boxWidth))
	if s.direction == prompt.NovelAIToPixAI {
		b.WriteString(a.renderResultBox("PixAI negative prompt", s.result.NegativeText, boxWidth))
	}

	// Segment strip
	if len(s.result.Segments) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, renderSegments(s.result.Segments, boxWidth)))
		b.WriteString("\n\n")
	}

	// Status bar
	status := s.statusMsg
	if status == "" {
		status = "[Tab] Field  [Ctrl+R] Swap  [Ctrl+Y] Copy  [Ctrl+S] Save  [Ctrl+G] Help  [Esc] Quit"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(status)))

	return b.String()
}

func (a *App) renderField(label, content string, width int, focused bool) string {
	style := styleBox.Width(width)
	if focused {
		style = style.BorderForeground(colorSecondary)
	}
	box := lipgloss.JoinVertical(lipgloss.Left,
		styleSubtitle.Render(label),
		style.Render(content),
	)
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box) + "\n"
}

func (a *App) renderResultBox(label, content string, width int) string {
	if content == "" {
		content = styleSubtitle.Render("(empty)")
	}
	box := lipgloss.JoinVertical(lipgloss.Left,
		styleSubtitle.Render(label),
		styleResultBox.Width(width).Render(content),
	)
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box) + "\n"
}

// renderSegments lays out one chip per segment, colored by whether its
// weight raises, lowers, or leaves the tag's emphasis.
func renderSegments(segs []prompt.Segment, width int) string {
	chips := make([]string, 0, len(segs))
	for _, seg := range segs {
		label := seg.Text
		if seg.Kind == prompt.KindWeighted {
			label = fmt.Sprintf("%s ×%.2f", seg.Text, seg.Weight)
		}
		chips = append(chips, segmentStyle(seg).Render(label))
	}
	line := strings.Join(chips, styleSubtitle.Render("  ·  "))
	return lipgloss.NewStyle().Width(width).Render(line)
}
