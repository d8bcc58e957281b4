// Package prompt asks a fixed list of questions one at a time in the
// terminal.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned by Run when the user quits with Ctrl-C or Esc.
var ErrCancelled = errors.New("prompt cancelled")

// Question is a single text prompt. An empty answer falls back to Default.
type Question struct {
	Key     string
	Prompt  string
	Default string
}

// Model is a bubbletea model that asks one question at a time.
type Model struct {
	questions []Question
	idx       int
	inputs    []textinput.Model
	done      bool
}

// NewModel builds a model with the first question focused.
func NewModel(questions []Question) Model {
	inputs := make([]textinput.Model, len(questions))
	for i, q := range questions {
		ti := textinput.New()
		ti.Placeholder = q.Default
		ti.CharLimit = 512
		inputs[i] = ti
	}
	m := Model{
		questions: questions,
		inputs:    inputs,
	}
	if len(inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		m.done = true
		return m, tea.Quit
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.idx < len(m.inputs)-1 {
				m.inputs[m.idx].Blur()
				m.idx++
				m.inputs[m.idx].Focus()
				return m, textinput.Blink
			}
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.inputs[m.idx], cmd = m.inputs[m.idx].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.done || len(m.questions) == 0 {
		return ""
	}
	q := m.questions[m.idx]
	return fmt.Sprintf("%s: %s\n", q.Prompt, m.inputs[m.idx].View())
}

// Done reports whether every question was answered.
func (m Model) Done() bool { return m.done }

// Answers returns the answers keyed by Question.Key, with defaults applied.
func (m Model) Answers() map[string]string {
	answers := make(map[string]string, len(m.questions))
	for i, q := range m.questions {
		v := m.inputs[i].Value()
		if v == "" {
			v = q.Default
		}
		answers[q.Key] = v
	}
	return answers
}

// Run shows the prompts and returns the answers keyed by Question.Key.
func Run(questions []Question) (map[string]string, error) {
	if len(questions) == 0 {
		return map[string]string{}, nil
	}
	result, err := tea.NewProgram(NewModel(questions)).Run()
	if err != nil {
		return nil, err
	}
	final, ok := result.(Model)
	if !ok || !final.done {
		return nil, ErrCancelled
	}
	return final.Answers(), nil
}
