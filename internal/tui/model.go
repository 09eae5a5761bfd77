package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PickerModel holds the built-in chooser state.
type PickerModel struct {
	// Data
	Names []string // Sorted application names, never mutated

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Filter State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices into Names currently shown
	FilterActive    bool

	// Result, read by Pick after the program exits
	Choice    string
	Cancelled bool
}

// InitialModel returns the picker state for the given names.
func InitialModel(names []string) PickerModel {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	ti := textinput.New()
	ti.Placeholder = "Application name..."
	ti.CharLimit = 50
	ti.Width = 30

	indices := make([]int, len(sorted))
	for i := range sorted {
		indices[i] = i
	}

	return PickerModel{
		Names:           sorted,
		InputBuffer:     ti,
		FilteredIndices: indices,
		Cancelled:       true, // flipped only by an explicit selection
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Pick runs the picker over the terminal and returns the chosen name.
// ok is false when the user backed out, mirroring an external chooser
// exiting non-zero.
func Pick(names []string) (choice string, ok bool, err error) {
	p := tea.NewProgram(InitialModel(names), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, _ := final.(PickerModel)
	if m.Cancelled {
		return "", false, nil
	}
	return m.Choice, true, nil
}
