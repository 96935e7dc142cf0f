package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotExist is returned when the path given to the Fetcher names no file.
var ErrNotExist = errors.New("env file does not exist")

// ErrIsDirectory is returned when the path points to a directory instead of a file.
var ErrIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements the env.Fetcher interface for file-based sources. It
// reads the file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based
// Fetcher for the given path. The file is read at construction time and
// cached. This pattern is Fx-friendly, allowing a DI container to control
// when instantiation happens.
//
// An absent file yields an error wrapping ErrNotExist; any other read failure
// is wrapped with the cleaned path and its cause. Use errors.Is to
// distinguish the two.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("env file %q: %w", cleanPath, ErrNotExist)
			}

			return nil, fmt.Errorf("stat env file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading env file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Fetch returns a copy of the cached file contents that were read at
// construction time. A copy is returned to prevent callers from mutating the
// cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Path returns the cleaned path the Fetcher was constructed with.
func (f *Fetcher) Path() string {
	return f.filepath
}
