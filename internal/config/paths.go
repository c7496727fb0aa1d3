// Package config resolves the resource directory and persists the color table.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ResourceDir returns the directory holding config.ini, match.txt and the
// optional assets: the directory of the running executable. Binaries built by
// `go run` or `go test` live in the build cache, so for those the working
// directory is used instead.
func ResourceDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, rerr := filepath.EvalSymlinks(exe); rerr == nil {
			exe = resolved
		}
		dir := filepath.Dir(exe)
		if !isBuildCache(dir) {
			return dir
		}
	}
	wd, err := os.Getwd()
	if err != nil || wd == "" {
		return "."
	}
	return wd
}

// ResourcePath joins name onto dir, or onto ResourceDir when dir is empty.
func ResourcePath(dir, name string) string {
	if dir == "" {
		dir = ResourceDir()
	}
	return filepath.Join(dir, name)
}

func isBuildCache(dir string) bool {
	return strings.Contains(filepath.ToSlash(dir), "/go-build")
}
