package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"appmenu/internal/desktop"
	"appmenu/internal/launch"
	"appmenu/internal/menu"
	"appmenu/internal/model"
	"appmenu/internal/tui"

	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "appmenu",
		Repository: "appmenu",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/appmenu/appmenu/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: appmenu [options] MENU_PROGRAM [SEARCH_DIR...]\n\n")
		fmt.Fprintf(os.Stderr, "appmenu scans desktop files and lets you launch an application\n")
		fmt.Fprintf(os.Stderr, "through a menu program of your choice, such as dmenu.\n\n")
		fmt.Fprintf(os.Stderr, "MENU_PROGRAM may carry embedded arguments (\"dmenu -i -l 20\").\n")
		fmt.Fprintf(os.Stderr, "SEARCH_DIR arguments replace the default directories\n")
		fmt.Fprintf(os.Stderr, "(/usr/share/applications and ~/.local/share/applications).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  appmenu dmenu                 # Pick via dmenu, launch\n")
		fmt.Fprintf(os.Stderr, "  appmenu 'rofi -dmenu'         # Menu program with arguments\n")
		fmt.Fprintf(os.Stderr, "  appmenu -t alacritty dmenu    # Terminal apps open in alacritty\n")
		fmt.Fprintf(os.Stderr, "  appmenu --tui                 # Built-in picker, no menu program\n")
		fmt.Fprintf(os.Stderr, "  appmenu --json                # Dump the registry as JSON\n")
	}

	termFlag := pflag.StringP("term", "t", "", "Terminal emulator for Terminal=true apps (defaults to $TERM)")
	tuiFlag := pflag.Bool("tui", false, "Use the built-in picker instead of an external menu program")
	jsonFlag := pflag.BoolP("json", "j", false, "Print the application registry as JSON and exit")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("appmenu version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	env, err := model.LoadEnvironment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading environment: %v\n", err)
		os.Exit(1)
	}

	args := pflag.Args()

	// The menu program is the first positional, unless a built-in mode
	// replaces it; then every positional is a search directory.
	var chooserArgv []string
	var dirs []string
	if *tuiFlag || *jsonFlag {
		dirs = args
	} else {
		if len(args) < 1 {
			pflag.Usage()
			os.Exit(1)
		}
		chooserArgv = strings.Fields(args[0])
		if len(chooserArgv) == 0 {
			pflag.Usage()
			os.Exit(1)
		}
		dirs = args[1:]
	}

	if len(dirs) == 0 {
		dirs, err = desktop.DefaultSearchDirs(env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	registry := desktop.BuildRegistry(dirs)

	if *jsonFlag {
		runJSONMode(registry)
		return
	}

	var selection string
	var ok bool
	if *tuiFlag {
		selection, ok, err = tui.Pick(registry.Names())
	} else {
		selection, ok, err = menu.Choose(registry.Names(), chooserArgv)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !ok {
		return // user cancelled, nothing to launch
	}

	fmt.Printf("chosen program: %s\n", selection)

	body, found := registry[selection]
	if !found {
		fmt.Fprintf(os.Stderr, "no application named '%s'\n", selection)
		os.Exit(1)
	}

	emulator := ""
	if body.Terminal {
		emulator = launch.ResolveEmulator(*termFlag, env.Term, os.Stderr)
	}

	if err := launch.Run(body, emulator); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runJSONMode(registry model.Registry) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(registry)
}
