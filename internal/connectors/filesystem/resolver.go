package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// homeMarker is the home-directory shorthand recognised at the start of a path.
const homeMarker = "~"

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// ExpandHome replaces a single leading "~" with the user's home directory.
// The remainder of the path is kept verbatim. Paths that do not start with
// "~", or a home directory that cannot be determined, leave path unchanged.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, homeMarker) {
		return path
	}
	home, err := userHomeDir()
	if err != nil || home == "" {
		return path
	}
	return home + path[len(homeMarker):]
}

// ResolveRoot expands the home shorthand and makes path absolute.
// When the path cannot be made absolute the expanded form is returned.
func ResolveRoot(path string) string {
	expanded := ExpandHome(strings.TrimSpace(path))
	if expanded == "" {
		return ""
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return expanded
	}
	return abs
}
