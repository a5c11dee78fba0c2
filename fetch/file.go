package fetch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// File reads a configuration source from disk at construction time and
// caches the contents.
type File struct {
	path string
	data []byte
}

// NewFile returns a constructor function that creates a File fetcher for
// the given path. The file is read once when the constructor runs.
// Returns an error if the file cannot be read or the path is a directory.
func NewFile(path string) func() (*File, error) {
	return func() (*File, error) {
		cleanPath := filepath.Clean(path)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &File{
			path: cleanPath,
			data: data,
		}, nil
	}
}

// Fetch returns a copy of the cached file contents. A copy is returned
// to prevent callers from mutating the cache.
func (f *File) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
