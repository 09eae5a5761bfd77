package desktop

import (
	"os"
	"path/filepath"
	"strings"
)

// Scan lists the entries of dir and returns the canonical absolute paths of
// those that look like application descriptors. A candidate must have a name
// ending in the literal characters "desktop" and must resolve, symlinks
// followed, to an existing regular file. Everything else is dropped without
// comment.
//
// The suffix check is intentionally looser than the ".desktop" extension:
// a file called "mydesktop" matches too. Historical behavior, kept.
//
// The returned error covers the directory itself (missing, unreadable);
// per-entry failures never surface. Ordering follows the directory listing
// and is not guaranteed.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var candidates []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), "desktop") {
			continue
		}

		location, err := filepath.EvalSymlinks(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue // dangling symlink or vanished entry
		}
		location, err = filepath.Abs(location)
		if err != nil {
			continue
		}

		info, err := os.Stat(location)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		candidates = append(candidates, location)
	}
	return candidates, nil
}
