package tui

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/promptport/internal/config"
	"github.com/sant0-9/promptport/internal/prompt"
)

type view int

const (
	viewConvert view = iota
	viewHelp
	viewSettings
)

const savePath = "promptport-result.txt"

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp() *App {
	cfg, err := config.Load()
	if cfg == nil || err != nil {
		cfg = config.DefaultConfig()
	}

	return &App{
		view:  viewConvert,
		state: newState(cfg),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textarea.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := a.handleKey(msg); handled {
			return a, cmd
		}
		a.state.statusMsg = ""

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		inputWidth := min(70, a.width-6)
		if inputWidth < 20 {
			inputWidth = 20
		}
		a.state.source.SetWidth(inputWidth)
		a.state.negative.SetWidth(inputWidth)

	case copiedMsg:
		a.state.statusMsg = "Copied to clipboard"
		return a, nil

	case savedMsg:
		a.state.statusMsg = fmt.Sprintf("Saved to %s", msg.path)
		return a, nil

	case actionErrorMsg:
		a.state.statusMsg = fmt.Sprintf("Error: %v", msg.error)
		return a, nil
	}

	// Forward everything else to the focused textarea and reconvert.
	if a.view == viewConvert {
		var cmd tea.Cmd
		if a.state.focus == focusNegative && a.state.hasNegativeInput() {
			a.state.negative, cmd = a.state.negative.Update(msg)
		} else {
			a.state.source, cmd = a.state.source.Update(msg)
		}
		cmds = append(cmds, cmd)
		a.state.reconvert()
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if a.view == viewSettings {
		return true, a.handleSettingsKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewHelp {
			a.view = viewConvert
			return true, nil
		}
		a.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.Help):
		a.view = viewHelp
		return true, nil

	case key.Matches(msg, keys.Settings):
		a.view = viewSettings
		return true, nil

	case key.Matches(msg, keys.Swap):
		a.swapDirection()
		return true, nil

	case key.Matches(msg, keys.Copy):
		return true, a.copyResult()

	case key.Matches(msg, keys.Save):
		return true, a.saveResult()

	case key.Matches(msg, keys.Tab):
		a.cycleFocus()
		return true, nil
	}

	return false, nil
}

// swapDirection flips the conversion and feeds the previous result fields
// back in as the new source fields, so repeated swaps round-trip.
func (a *App) swapDirection() {
	s := a.state
	text, negative := s.result.Text, s.result.NegativeText

	if s.direction == prompt.NovelAIToPixAI {
		s.direction = prompt.PixAIToNovelAI
	} else {
		s.direction = prompt.NovelAIToPixAI
	}

	s.source.SetValue(text)
	s.negative.SetValue(negative)
	if !s.hasNegativeInput() && s.focus == focusNegative {
		a.cycleFocus()
	}
	s.statusMsg = ""
	s.reconvert()
}

func (a *App) cycleFocus() {
	s := a.state
	if !s.hasNegativeInput() {
		s.focus = focusSource
		s.source.Focus()
		s.negative.Blur()
		return
	}
	if s.focus == focusSource {
		s.focus = focusNegative
		s.source.Blur()
		s.negative.Focus()
	} else {
		s.focus = focusSource
		s.negative.Blur()
		s.source.Focus()
	}
}

// clipboardText is what a copy exports: the result, plus the negative
// prompt under a header when the config asks for it.
func (a *App) clipboardText() string {
	s := a.state
	out := s.result.Text
	if s.config.CopyNegative && s.result.NegativeText != "" {
		out += "\n\nNegative prompt:\n" + s.result.NegativeText
	}
	return out
}

func (a *App) copyResult() tea.Cmd {
	text := a.clipboardText()
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return actionErrorMsg{err}
		}
		return copiedMsg{}
	}
}

func (a *App) saveResult() tea.Cmd {
	text := a.clipboardText()
	return func() tea.Msg {
		if err := os.WriteFile(savePath, []byte(text+"\n"), 0644); err != nil {
			return actionErrorMsg{err}
		}
		return savedMsg{savePath}
	}
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	switch msg.String() {
	case "esc", "ctrl+c":
		a.view = viewConvert
		return nil
	case "d":
		if s.config.DefaultDirection == config.DirectionNovelAIToPixAI {
			s.config.DefaultDirection = config.DirectionPixAIToNovelAI
		} else {
			s.config.DefaultDirection = config.DirectionNovelAIToPixAI
		}
		return a.saveConfig()
	case "c":
		s.config.CopyNegative = !s.config.CopyNegative
		return a.saveConfig()
	}
	return nil
}

func (a *App) saveConfig() tea.Cmd {
	cfg := *a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return actionErrorMsg{err}
		}
		return nil
	}
}

type copiedMsg struct{}
type savedMsg struct{ path string }
type actionErrorMsg struct{ error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewHelp:
		return a.renderHelp()
	case viewSettings:
		return a.renderSettings()
	default:
		return a.renderConvert()
	}
}

// directionLabel names the active conversion for headers and status lines.
func directionLabel(dir prompt.Direction) string {
	if dir == prompt.PixAIToNovelAI {
		return "PixAI → NovelAI"
	}
	return "NovelAI → PixAI"
}
