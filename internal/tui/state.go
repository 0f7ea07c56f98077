package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/sant0-9/promptport/internal/config"
	"github.com/sant0-9/promptport/internal/prompt"
)

type focusField int

const (
	focusSource focusField = iota
	focusNegative
)

type state struct {
	// Config
	config *config.Config

	// Conversion state
	direction prompt.Direction
	result    prompt.Result

	// Inputs
	source   textarea.Model
	negative textarea.Model
	focus    focusField

	// Transient status line
	statusMsg string
}

func newState(cfg *config.Config) *state {
	src := textarea.New()
	src.Placeholder = "Paste a prompt here..."
	src.ShowLineNumbers = false
	src.CharLimit = 0
	src.SetHeight(4)
	src.Focus()

	neg := textarea.New()
	neg.Placeholder = "Negative prompt..."
	neg.ShowLineNumbers = false
	neg.CharLimit = 0
	neg.SetHeight(2)

	dir := prompt.NovelAIToPixAI
	if cfg.DefaultDirection == config.DirectionPixAIToNovelAI {
		dir = prompt.PixAIToNovelAI
	}

	return &state{
		config:    cfg,
		direction: dir,
		source:    src,
		negative:  neg,
	}
}

// reconvert recomputes the result from the current inputs. Cheap enough to
// run on every keystroke.
func (s *state) reconvert() {
	s.result = prompt.Convert(s.source.Value(), s.negative.Value(), s.direction)
}

// hasNegativeInput reports whether the current direction reads a separate
// negative prompt field (only the PixAI side has one).
func (s *state) hasNegativeInput() bool {
	return s.direction == prompt.PixAIToNovelAI
}
