// Package menu drives the external chooser program: it feeds the application
// names to the chooser's stdin and interprets what comes back on stdout.
package menu

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"unicode/utf8"
)

// Serialize renders the chooser's stdin payload: names sorted in byte order,
// one per line, trailing newline included. Chooser programs like dmenu take
// exactly this shape.
func Serialize(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	var b strings.Builder
	for _, name := range sorted {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.String()
}

// Choose runs the chooser and returns the user's pick.
//
// chooserArgv[0] is the executable, the rest its arguments. The chooser's
// stdin and stdout are piped; stderr passes through so a curses-style chooser
// can still complain. The call blocks until the chooser exits.
//
// ok is false when the user cancelled: the chooser exited non-zero, or its
// output was blank after trimming. That is a clean outcome, not an error.
// err is non-nil only for real failures, spawn errors and undecodable output,
// which callers treat as fatal.
func Choose(names []string, chooserArgv []string) (selection string, ok bool, err error) {
	cmd := exec.Command(chooserArgv[0], chooserArgv[1:]...)
	cmd.Stdin = strings.NewReader(Serialize(names))
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Start(); err != nil {
		return "", false, fmt.Errorf("failed to spawn menu '%s': %w", strings.Join(chooserArgv, " "), err)
	}

	if err := cmd.Wait(); err != nil {
		if _, exited := err.(*exec.ExitError); exited {
			return "", false, nil // chooser refused: user hit escape or similar
		}
		return "", false, fmt.Errorf("failed to run menu '%s': %w", strings.Join(chooserArgv, " "), err)
	}

	out := stdout.Bytes()
	if !utf8.Valid(out) {
		return "", false, fmt.Errorf("menu '%s' produced invalid UTF-8 output", strings.Join(chooserArgv, " "))
	}

	selection = strings.TrimSpace(string(out))
	if selection == "" {
		return "", false, nil
	}
	return selection, true, nil
}
