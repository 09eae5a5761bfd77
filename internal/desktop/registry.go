package desktop

import (
	"errors"
	"path/filepath"

	"appmenu/internal/model"
)

// SystemApplicationsDir is the distribution-wide descriptor directory.
const SystemApplicationsDir = "/usr/share/applications"

// ErrNoHome is returned when the default search directories are requested but
// the home directory cannot be determined.
var ErrNoHome = errors.New("HOME is not set, cannot locate user applications directory")

// DefaultSearchDirs returns the directories scanned when the user supplies
// none. The user directory comes last so that user descriptors override
// system ones of the same name.
func DefaultSearchDirs(env model.Environment) ([]string, error) {
	if env.Home == "" {
		return nil, ErrNoHome
	}
	return []string{
		SystemApplicationsDir,
		filepath.Join(env.Home, ".local", "share", "applications"),
	}, nil
}

// BuildRegistry folds the descriptors found under dirs, in order, into a
// single name-keyed registry. A later directory's descriptor silently
// replaces an earlier one with the same display name, so directory order is
// load-bearing. A directory that cannot be read contributes nothing and does
// not abort the run; if every directory fails the registry is simply empty.
func BuildRegistry(dirs []string) model.Registry {
	registry := make(model.Registry)
	for _, dir := range dirs {
		candidates, err := Scan(dir)
		if err != nil {
			continue
		}
		for _, path := range candidates {
			if app, ok := ParseFile(path); ok {
				registry[app.Name] = app.Body
			}
		}
	}
	return registry
}
