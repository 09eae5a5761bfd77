package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				// Keep the filter, go back to list navigation.
				m.InputMode = false
				m.InputBuffer.Blur()
				return m, nil
			case tea.KeyEsc:
				// Drop the filter entirely.
				m.InputMode = false
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.applyFilter()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.Cancelled = true
			return m, tea.Quit
		case "enter":
			if m.SelectedIdx < len(m.FilteredIndices) {
				m.Choice = m.Names[m.FilteredIndices[m.SelectedIdx]]
				m.Cancelled = false
				return m, tea.Quit
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			return m, textinput.Blink
		}
	}

	return m, cmd
}

// applyFilter recomputes FilteredIndices from the input buffer.
// Case-insensitive substring match, the feel of dmenu's default filter.
func (m *PickerModel) applyFilter() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		m.FilterActive = false
		m.FilteredIndices = make([]int, len(m.Names))
		for i := range m.Names {
			m.FilteredIndices[i] = i
		}
	} else {
		m.FilterActive = true
		var result []int
		for i, name := range m.Names {
			if strings.Contains(strings.ToLower(name), term) {
				result = append(result, i)
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}
