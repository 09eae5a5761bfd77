package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("240")) // Grey

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Launch Application"))
	b.WriteString("\n\n")

	if len(m.Names) == 0 {
		b.WriteString(dimStyle.Render("  No applications found.\n"))
		b.WriteString("\n" + dimStyle.Render("  q: quit"))
		return b.String()
	}

	// Window for long lists: keep the cursor visible.
	height := m.WindowSize.Height - 6
	if height < 5 {
		height = 5
	}
	start := 0
	if m.SelectedIdx >= height {
		start = m.SelectedIdx - height + 1
	}

	for row := start; row < len(m.FilteredIndices) && row < start+height; row++ {
		name := m.Names[m.FilteredIndices[row]]
		if row == m.SelectedIdx {
			b.WriteString(selectedItemStyle.Render("> " + name))
		} else {
			b.WriteString(unselectedItemStyle.Render(name))
		}
		b.WriteString("\n")
	}

	if m.FilterActive && len(m.FilteredIndices) == 0 {
		b.WriteString(dimStyle.Render("  (no matches)\n"))
	}

	b.WriteString("\n")
	if m.InputMode {
		b.WriteString(fmt.Sprintf("  Filter: %s\n", m.InputBuffer.View()))
	} else {
		footer := "  enter: launch  /: filter  q: cancel"
		if m.FilterActive {
			footer += fmt.Sprintf("  [filter: %s]", m.InputBuffer.Value())
		}
		b.WriteString(dimStyle.Render(footer))
	}

	return b.String()
}
