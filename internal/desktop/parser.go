package desktop

import (
	"os"
	"strings"

	"appmenu/internal/model"
)

// ParseFile reads one descriptor file and extracts a launchable Application.
// The boolean result is false whenever the file should be skipped: unreadable,
// hidden (NoDisplay=true), not Type=Application, missing Name or Exec, or a
// Terminal value that is neither "true" nor "false" (any case). Skips are
// silent; the caller collects successes and discards the rest.
//
// Only the [Desktop Entry] section is consulted, and within it only the keys
// NoDisplay, Type, Name, Exec and Terminal. First occurrence of a key wins.
func ParseFile(path string) (model.Application, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Application{}, false
	}

	fields := make(map[string]string)
	inDesktopEntry := false

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}

		if line[0] == '[' {
			if line[len(line)-1] != ']' {
				return model.Application{}, false // malformed section header
			}
			inDesktopEntry = line == "[Desktop Entry]"
			continue
		}

		if !inDesktopEntry {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return model.Application{}, false // not key=value, treat the file as unparseable
		}
		key = strings.TrimSpace(key)
		if _, seen := fields[key]; !seen {
			fields[key] = strings.TrimSpace(value)
		}
	}

	if fields["NoDisplay"] == "true" {
		return model.Application{}, false
	}
	if fields["Type"] != "Application" {
		return model.Application{}, false
	}

	terminal := false
	if raw, ok := fields["Terminal"]; ok {
		switch strings.ToLower(raw) {
		case "true":
			terminal = true
		case "false":
		default:
			return model.Application{}, false // malformed boolean fails the whole record
		}
	}

	name, hasName := fields["Name"]
	execstr, hasExec := fields["Exec"]
	if !hasName || !hasExec {
		return model.Application{}, false
	}

	return model.Application{
		Name: name,
		Body: model.ApplicationBody{
			Path:     path,
			Exec:     splitExec(execstr),
			Terminal: terminal,
		},
	}, true
}

// splitExec tokenizes a raw Exec line on whitespace and removes field-code
// placeholders (%u, %F, ...). No substitution is performed. The result may be
// empty when the line held nothing but placeholders.
func splitExec(execstr string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.TrimSpace(execstr)) {
		if strings.HasPrefix(tok, "%") {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
