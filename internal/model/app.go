package model

import "strings"

// ApplicationBody holds everything needed to launch one application.
type ApplicationBody struct {
	Path     string   `json:"path"`     // Resolved location of the source descriptor (diagnostics only)
	Exec     []string `json:"exec"`     // Command tokens, field codes (%u, %f, ...) already stripped
	Terminal bool     `json:"terminal"` // Run inside a terminal emulator rather than directly
}

// Application pairs a display name with its launch body.
type Application struct {
	Name string          `json:"name"`
	Body ApplicationBody `json:"body"`
}

// CommandLine joins the exec tokens for diagnostic messages.
// Display only, not suitable for shell re-parsing.
func (b ApplicationBody) CommandLine() string {
	return strings.Join(b.Exec, " ")
}

// Registry maps unique display names to launch bodies.
// Built once per run; read-only afterwards.
type Registry map[string]ApplicationBody

// Names returns the registry keys in map iteration order.
// Callers that show the list to a user are expected to sort.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}
