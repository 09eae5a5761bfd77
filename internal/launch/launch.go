// Package launch runs the chosen application, directly or wrapped in a
// terminal emulator for descriptors that ask for one.
package launch

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"appmenu/internal/model"
)

// FallbackEmulator is used when neither the command line nor the environment
// names a terminal emulator.
const FallbackEmulator = "xterm"

// ResolveEmulator picks the terminal emulator for terminal-wrapped launches:
// explicit override first, then the TERM environment value, then xterm with a
// warning on warn.
func ResolveEmulator(override, termEnv string, warn io.Writer) string {
	if override != "" {
		return override
	}
	if termEnv != "" {
		return termEnv
	}
	fmt.Fprintln(warn, "could not infer terminal emulator, assuming "+FallbackEmulator)
	return FallbackEmulator
}

// Argv builds the full command line for body. Direct launches use the exec
// tokens as-is; terminal launches wrap them as "<emulator> -e <exec...>".
func Argv(body model.ApplicationBody, emulator string) []string {
	if !body.Terminal {
		return body.Exec
	}
	argv := make([]string, 0, len(body.Exec)+2)
	argv = append(argv, emulator, "-e")
	return append(argv, body.Exec...)
}

// Run spawns the application and waits for it to finish. Only a spawn
// failure is an error; the launched program's own exit status is its own
// business and is ignored. A body whose exec tokens were emptied by
// field-code stripping fails here, not during parsing.
func Run(body model.ApplicationBody, emulator string) error {
	argv := Argv(body, emulator)
	if len(argv) == 0 {
		return fmt.Errorf("application from %s has an empty command line", body.Path)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Run(); err != nil {
		if _, exited := err.(*exec.ExitError); exited {
			return nil // it ran; a non-zero exit is not our failure
		}
		return fmt.Errorf("error when executing '%s': %w", strings.Join(argv, " "), err)
	}
	return nil
}
