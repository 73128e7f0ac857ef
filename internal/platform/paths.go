package platform

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/notas/pkg/adapters/fs"
)

// AppName names the per-user configuration directory.
const AppName = "notas"

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}
	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// DefaultSettingsPath returns the settings file location: the user config
// directory, or a namespaced temp directory for dev runs when sandboxed.
func DefaultSettingsPath(sandbox bool) string {
	if sandbox && IsDevRun() {
		return filepath.Join(os.TempDir(), AppName+"-dev", fs.SettingsFileName)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName, fs.SettingsFileName)
}

// ResolveDirectory expands a leading "~" and returns an absolute, clean path.
func ResolveDirectory(dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~/") || strings.HasPrefix(dir, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, dir[1:])
	}
	return filepath.Abs(dir)
}
