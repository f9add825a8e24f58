// Package pathutil provides path resolution utilities for icongen.
package pathutil

import (
	"os"
	"path/filepath"
)

// DefaultPublicDir resolves the web app's public/ directory relative to the
// running executable (<bindir>/../public), matching where the repository
// keeps its static assets. Under `go run` the binary lives in a temporary
// build directory where that path never exists, so fall back to ./public
// relative to the working directory.
func DefaultPublicDir() string {
	fallback := filepath.Join(".", "public")

	exe, err := os.Executable()
	if err != nil {
		return fallback
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := filepath.Join(filepath.Dir(exe), "..", "public")
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return fallback
}

// ResolveAbsolutePath converts a relative path to an absolute path.
// Symlinks in the existing portion of the path are resolved, then any
// non-existent components are appended. This handles a --public-dir that
// points through a symlinked parent at a directory that doesn't exist yet.
func ResolveAbsolutePath(path string) (string, error) {
	if path == "" {
		return os.Getwd()
	}

	// Expand ~ to home directory
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = home + path[1:]
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	// Try to resolve the full path first (fast path if it exists)
	resolved, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		return resolved, nil
	}

	// Path doesn't fully exist - find the deepest existing ancestor,
	// resolve symlinks there, then append the rest
	current := absPath
	var remainder []string

	for {
		if _, err := os.Stat(current); err == nil {
			resolved, err := filepath.EvalSymlinks(current)
			if err != nil {
				resolved = current // fallback if resolution fails
			}
			// Append the non-existent remainder (collected bottom-up)
			for i := len(remainder) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, remainder[i])
			}
			return resolved, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached root without finding an existing dir
			return absPath, nil
		}
		remainder = append(remainder, filepath.Base(current))
		current = parent
	}
}
