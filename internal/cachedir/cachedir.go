// Package cachedir defines the on-disk layout of the kernel cache: where
// sources, unformatted backups, built artifacts and disassembly listings
// live, and how they are named per platform.
package cachedir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// File permission constants.
const (
	dirPerm = 0o755
)

// DefaultDir resolves the cache directory, honoring the
// KERNELJIT_CACHE_DIR environment override.
func DefaultDir() string {
	if dir := os.Getenv("KERNELJIT_CACHE_DIR"); dir != "" {
		return dir
	}

	return "_kernel_cache"
}

// Ensure creates the cache directory if it does not exist. Creation is
// idempotent and safe to race between concurrent units.
func Ensure(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating cache directory %s: %w", dir, err)
	}

	return nil
}

// SourceName returns the canonical source file name for a kernel
// identifier ("tmp%04d.<suffix>").
func SourceName(id int, suffix string) string {
	return fmt.Sprintf("tmp%04d.%s", id, suffix)
}

// ArtifactName returns the shared library name the toolchain produces
// for a kernel identifier on this platform.
func ArtifactName(id int, suffix string) string {
	return artifactName(runtime.GOOS, id, suffix)
}

func artifactName(goos string, id int, suffix string) string {
	switch goos {
	case "darwin":
		// dlopen on macOS misbehaves when the artifact is named .so, so
		// the dylib extension is forced there.
		return fmt.Sprintf("tmp%04d.dylib", id)
	case "windows":
		return fmt.Sprintf("tmp%04d.dll", id)
	default:
		return SourceName(id, suffix) + ".so"
	}
}

// Entry is one regular file inside the cache directory.
type Entry struct {
	Name string
	Size int64
}

// Entries lists the regular files inside the cache directory, sorted by
// name. A missing directory is an empty cache, not an error.
func Entries(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading cache directory %s: %w", dir, err)
	}

	var entries []Entry

	for _, de := range dirents {
		if de.IsDir() {
			continue
		}

		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("inspecting cache entry %s: %w", de.Name(), err)
		}

		entries = append(entries, Entry{Name: de.Name(), Size: info.Size()})
	}

	return entries, nil
}

// Clean removes every regular file from the cache directory, keeping the
// directory itself and any subdirectories.
func Clean(dir string) error {
	entries, err := Entries(dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if err := os.Remove(filepath.Join(dir, e.Name)); err != nil {
			return fmt.Errorf("removing cache entry %s: %w", e.Name, err)
		}
	}

	return nil
}
