package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nydauron/trackside/athletics"
)

type UpdateSelection struct {
	Idx int
}

type Selection struct {
	selections []SelectionOption

	selected      int
	displayInline bool
}

type SelectionOption struct {
	key         string
	displayText string
}

func (m *Selection) GetKey() *string {
	if m.selected < 0 || m.selected >= len(m.selections) {
		return nil
	}
	return &m.selections[m.selected].key
}

func (m Selection) Init() tea.Cmd {
	return nil
}

func (m Selection) Update(msg tea.Msg) (Selection, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateSelection:
		if msg.Idx >= 0 && msg.Idx < len(m.selections) {
			m.selected = msg.Idx
		}
		return m, nil
	}
	return m, nil
}

func (m Selection) View() string {
	selectionStrArr := make([]string, len(m.selections))
	for i, selection := range m.selections {
		marker := " "
		if i == m.selected {
			marker = "x"
		}
		selectionStrArr[i] = fmt.Sprintf("[%s] %d %s", marker, i+1, selection.displayText)
	}
	if m.displayInline {
		return strings.Join(selectionStrArr, " ")
	}
	return strings.Join(selectionStrArr, "\n")
}

// StatusPrompt picks a result status for one athlete. Number keys select a
// status directly; left and right step through them.
type StatusPrompt struct {
	AthleteName string
	Status      athletics.Status

	input Selection
}

func NewStatusPrompt(athleteName string, current athletics.Status) StatusPrompt {
	statuses := athletics.Statuses()
	options := make([]SelectionOption, len(statuses))
	selected := 0
	for i, st := range statuses {
		options[i] = SelectionOption{key: string(st), displayText: string(st)}
		if st == current {
			selected = i
		}
	}
	return StatusPrompt{
		AthleteName: athleteName,
		Status:      statuses[selected],
		input: Selection{
			selections:    options,
			selected:      selected,
			displayInline: true,
		},
	}
}

func (m StatusPrompt) Init() tea.Cmd {
	return nil
}

func (m StatusPrompt) Update(msg tea.Msg) (StatusPrompt, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	idx := m.input.selected
	switch k := keyMsg.String(); k {
	case "left", "h":
		idx--
	case "right", "l", "tab":
		idx++
	default:
		n, err := strconv.Atoi(k)
		if err != nil {
			return m, nil
		}
		idx = n - 1
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(UpdateSelection{Idx: idx})
	if key := m.input.GetKey(); key != nil {
		m.Status = athletics.Status(*key)
	}
	return m, cmd
}

func (m StatusPrompt) View() string {
	return fmt.Sprintf("Status of %s: %s", m.AthleteName, m.input.View())
}
