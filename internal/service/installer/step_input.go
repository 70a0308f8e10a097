package installer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputStep asks for a single line of text.
type InputStep struct {
	input    textinput.Model
	started  bool
	err      error
	title    func(state *InstallState) string
	optional bool
	skip     func(state *InstallState) bool
	apply    func(state *InstallState, value string) error
}

type inputOptions struct {
	placeholder string
	secret      bool
	optional    bool
}

func newInputStep(opts inputOptions) *InputStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = opts.placeholder
	if opts.secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return &InputStep{input: ti, optional: opts.optional}
}

func (s *InputStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !s.started {
		s.started = true
		if s.skip != nil && s.skip(state) {
			return nil, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := s.input.Value()
		if val == "" && !s.optional {
			s.err = fmt.Errorf("a value is required")
			return s, cmd
		}
		if err := s.apply(state, val); err != nil {
			s.err = err
			return s, cmd
		}
		return nil, nil
	}
	return s, cmd
}

func (s *InputStep) View(state *InstallState) string {
	hint := ""
	if s.optional {
		hint = " (optional - press Enter to skip)"
	}
	view := fmt.Sprintf("%s%s:\n\n%s\n\n", s.title(state), hint, s.input.View())
	if s.err != nil {
		view += errorStyle.Render(s.err.Error()) + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}
