package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves TAAL_RUNTIME_PATH, relative paths are taken from $HOME.
func GetRuntimePath() string {
	path := os.Getenv("TAAL_RUNTIME_PATH")
	if path == "" {
		path = ".taalbot"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
