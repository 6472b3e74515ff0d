package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// sandboxDir is the namespace under os.TempDir used for dev runs.
const sandboxDir = "plans-dev"

// IsDevRun reports whether the process is a `go run` or `go test` binary.
// Both are built into temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}
	return isWithin(os.TempDir(), exe)
}

// ResolveDataDir applies the dev sandbox to dir. When sandbox is false dir is
// returned as given. Otherwise any dir already under the temp root is trusted
// and everything else is moved to <temp>/plans-dev/<base name of dir>.
func ResolveDataDir(dir string, sandbox bool) string {
	if !sandbox {
		return dir
	}

	clean := filepath.Clean(dir)
	if isWithin(os.TempDir(), clean) {
		return clean
	}

	name := filepath.Base(clean)
	if dir == "" || name == "." || name == string(os.PathSeparator) {
		name = "default"
	}
	return filepath.Join(os.TempDir(), sandboxDir, name)
}

// DefaultDir is <user config dir>/plans, falling back to ./plans.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "plans"
	}
	return filepath.Join(base, "plans")
}

func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)) && !filepath.IsAbs(rel)
}
