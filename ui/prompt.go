package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type InputData struct {
	Question     string
	DefaultValue string

	// Function that gets run on the input value
	Parse func(string) error
}

// Prompt is a single line text input. An empty input stands for
// Data.DefaultValue.
type Prompt struct {
	Input textinput.Model
	Data  InputData
}

func NewPrompt(inputData InputData) Prompt {
	input := textinput.New()
	input.Prompt = fmt.Sprintf("%s: ", inputData.Question)
	input.Placeholder = inputData.DefaultValue
	input.Focus()
	return Prompt{Data: inputData, Input: input}
}

func (m *Prompt) SetValue(value string) {
	m.Input.SetValue(value)
}

func (m Prompt) GetValue() string {
	if m.Input.Value() != "" {
		return m.Input.Value()
	}
	return m.Data.DefaultValue
}

func (m Prompt) ParseValue() error {
	if m.Data.Parse == nil {
		return nil
	}
	return m.Data.Parse(m.GetValue())
}

func (m Prompt) Init() tea.Cmd {
	return textinput.Blink
}

func (m Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Prompt) View() string {
	return m.Input.View()
}
