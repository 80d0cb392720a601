package file

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for a file on an afero filesystem.
// The file is read once when the Fetcher is constructed.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns an Fx-friendly constructor that reads fpath from the
// filesystem it is given. Errors carry the cleaned path.
func NewFetcher(fpath string) func(afero.Fs) (*Fetcher, error) {
	return func(fsys afero.Fs) (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		isDir, err := afero.IsDir(fsys, cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if isDir {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := afero.ReadFile(fsys, cleanPath)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			path: cleanPath,
			data: data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the data read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	return slices.Clone(f.data), nil
}
