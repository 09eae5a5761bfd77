package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m PickerModel, msg tea.Msg) PickerModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(PickerModel)
	require.True(t, ok)
	return out
}

func TestInitialModelSortsNames(t *testing.T) {
	m := InitialModel([]string{"Zed", "Atom", "vim"})
	assert.Equal(t, []string{"Atom", "Zed", "vim"}, m.Names)
	assert.Len(t, m.FilteredIndices, 3)
	assert.True(t, m.Cancelled)
}

func TestPickerSelectsOnEnter(t *testing.T) {
	m := InitialModel([]string{"Zed", "Atom", "vim"})
	m = step(t, m, key("j"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Cancelled)
	assert.Equal(t, "Zed", m.Choice)
}

func TestPickerCancelsOnEscape(t *testing.T) {
	m := InitialModel([]string{"Atom"})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.Cancelled)
	assert.Empty(t, m.Choice)
}

func TestPickerFilter(t *testing.T) {
	m := InitialModel([]string{"Firefox", "Files", "Terminal"})
	m = step(t, m, key("/"))
	require.True(t, m.InputMode)

	m = step(t, m, key("f"))
	m = step(t, m, key("i"))
	// Sorted names are [Files Firefox Terminal]; "fi" keeps the first two.
	assert.Equal(t, []int{0, 1}, m.FilteredIndices)

	// Enter leaves filter mode with the filter applied, a second enter picks.
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.InputMode)
	assert.True(t, m.FilterActive)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Cancelled)
	assert.Equal(t, "Files", m.Choice)
}

func TestPickerFilterNoMatches(t *testing.T) {
	m := InitialModel([]string{"Atom"})
	m = step(t, m, key("/"))
	m = step(t, m, key("z"))
	assert.Empty(t, m.FilteredIndices)

	// Enter with nothing selectable must not pick anything.
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Cancelled)
}
