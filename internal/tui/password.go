package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordModel is a single masked input line. It quits on enter with the
// typed value or on cancel with quitByUser set.
type passwordModel struct {
	prompt     string
	input      textinput.Model
	submitted  bool
	quitByUser bool
}

func newPasswordModel(prompt string) passwordModel {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 1024
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return passwordModel{prompt: prompt, input: input}
}

// Init implements [tea.Model].
func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.submit):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(msg, keys.cancel):
			m.quitByUser = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Nothing is left on screen after submit.
func (m passwordModel) View() string {
	if m.submitted || m.quitByUser {
		return ""
	}
	return promptStyle.Render(m.prompt) + " " + m.input.View() + "\n" +
		helpStyle.Render("enter: submit  esc: cancel") + "\n"
}

// Value is the typed password.
func (m passwordModel) Value() string {
	return m.input.Value()
}
