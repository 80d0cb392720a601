package dynpath

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Entry is one item of a directory listing.
type Entry struct {
	os.FileInfo

	// Path is the entry's full path: the listed directory joined with Name().
	Path string
}

func (p Path) filesystem() afero.Fs {
	if p.fs == nil {
		return afero.NewOsFs()
	}

	return p.fs
}

// Exists reports whether the Path is concrete and present on the filesystem.
func (p Path) Exists() bool {
	if !p.IsConcrete() {
		return false
	}

	exists, err := afero.Exists(p.filesystem(), p.template)

	return err == nil && exists
}

// Stat returns the file info of a concrete, existing Path.
func (p Path) Stat() (os.FileInfo, error) {
	if !p.IsConcrete() {
		return nil, p.unboundError()
	}

	info, err := p.filesystem().Stat(p.template)
	if err != nil {
		return nil, p.wrapFsError(err)
	}

	return info, nil
}

// ListDir returns the names of the entries in the directory.
func (p Path) ListDir() ([]string, error) {
	infos, err := p.readDir()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(infos))

	for i, info := range infos {
		names[i] = info.Name()
	}

	return names, nil
}

// Content returns every entry of the directory.
func (p Path) Content() ([]Entry, error) {
	return p.entries(func(os.FileInfo) bool { return true })
}

// Dirs returns the subdirectories of the directory.
func (p Path) Dirs() ([]Entry, error) {
	return p.entries(os.FileInfo.IsDir)
}

// Files returns the regular files of the directory.
func (p Path) Files() ([]Entry, error) {
	return p.entries(func(info os.FileInfo) bool { return info.Mode().IsRegular() })
}

func (p Path) entries(keep func(os.FileInfo) bool) ([]Entry, error) {
	infos, err := p.readDir()
	if err != nil {
		return nil, err
	}

	result := make([]Entry, 0, len(infos))

	for _, info := range infos {
		if !keep(info) {
			continue
		}

		result = append(result, Entry{
			FileInfo: info,
			Path:     filepath.Join(p.template, info.Name()),
		})
	}

	return result, nil
}

// readDir takes a single snapshot of the directory.
func (p Path) readDir() ([]os.FileInfo, error) {
	if !p.IsConcrete() {
		return nil, p.unboundError()
	}

	infos, err := afero.ReadDir(p.filesystem(), p.template)
	if err != nil {
		return nil, p.wrapFsError(err)
	}

	return infos, nil
}

func (p Path) wrapFsError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q: %w", ErrNotFound, p.template, err)
	}

	return fmt.Errorf("reading %q: %w", p.template, err)
}
