package platform

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Files persists configuration documents and reads back host files.
type Files interface {
	WriteFile(path string, data []byte) error
	AppendFile(path string, data []byte) error
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
	Remove(path string) error
}

// FS implements Files over an afero filesystem.
type FS struct {
	fs afero.Fs
}

// NewOSFiles uses the real filesystem.
func NewOSFiles() *FS { return &FS{fs: afero.NewOsFs()} }

// NewMemFiles is an in-memory filesystem for tests and dry runs.
func NewMemFiles() *FS { return &FS{fs: afero.NewMemMapFs()} }

func (f *FS) WriteFile(path string, data []byte) error {
	if err := f.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(f.fs, path, data, 0o644)
}

func (f *FS) AppendFile(path string, data []byte) error {
	if err := f.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := f.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (f *FS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(f.fs, path)
}

func (f *FS) Exists(path string) bool {
	ok, err := afero.Exists(f.fs, path)
	return err == nil && ok
}

// Remove deletes path. A missing file is not an error.
func (f *FS) Remove(path string) error {
	err := f.fs.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
