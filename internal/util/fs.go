package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrDestinationExists indicates a move would overwrite an existing path.
var ErrDestinationExists = errors.New("destination already exists")

// tempFile encapsulates the subset of *os.File behaviour needed by WriteTempFile.
type tempFile interface {
	Write([]byte) (int, error)
	Close() error
	Name() string
}

// fileSystem abstracts the file-system operations used by this package.
type fileSystem interface {
	CreateTemp(string, string) (tempFile, error)
	Lstat(string) (fs.FileInfo, error)
	Link(string, string) error
	Rename(string, string) error
	Remove(string) error
}

// osFS implements fileSystem using the standard library os package.
type osFS struct{}

func (osFS) CreateTemp(dir, pattern string) (tempFile, error) {
	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return &wrappedFile{File: file}, nil
}
func (osFS) Lstat(name string) (fs.FileInfo, error) { return os.Lstat(name) }
func (osFS) Link(oldpath, newpath string) error     { return os.Link(oldpath, newpath) }
func (osFS) Rename(oldpath, newpath string) error   { return os.Rename(oldpath, newpath) }
func (osFS) Remove(name string) error               { return os.Remove(name) }

// wrappedFile adapts *os.File to the tempFile interface.
type wrappedFile struct{ *os.File }

func (f *wrappedFile) Write(b []byte) (int, error) { return f.File.Write(b) }
func (f *wrappedFile) Close() error                { return f.File.Close() }
func (f *wrappedFile) Name() string                { return f.File.Name() }

var defaultFS fileSystem = osFS{}

// WriteTempFile writes data to a new temporary file and returns its path. An
// empty dir selects the system temp directory.
func WriteTempFile(dir, pattern string, data []byte) (string, error) {
	return writeTempFile(defaultFS, dir, pattern, data)
}

func writeTempFile(fsys fileSystem, dir, pattern string, data []byte) (string, error) {
	tmp, err := fsys.CreateTemp(dir, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		// #nosec G104 -- cleanup best-effort during write failure
		tmp.Close()
		// #nosec G104 -- cleanup best-effort during write failure
		fsys.Remove(tmpName)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		// #nosec G104 -- cleanup best-effort on close failure
		fsys.Remove(tmpName)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return tmpName, nil
}

// MoveNoClobber renames src to dst and fails with ErrDestinationExists instead
// of replacing an existing dst. A hard link claims dst atomically; filesystems
// without link support fall back to check-then-rename.
func MoveNoClobber(src, dst string) error {
	return moveNoClobber(defaultFS, src, dst)
}

func moveNoClobber(fsys fileSystem, src, dst string) error {
	if _, err := fsys.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to inspect destination: %w", err)
	}

	linkErr := fsys.Link(src, dst)
	if linkErr == nil {
		if err := fsys.Remove(src); err != nil {
			// #nosec G104 -- undo the claim so the source stays the only copy
			fsys.Remove(dst)
			return fmt.Errorf("failed to remove source after link: %w", err)
		}
		return nil
	}
	if errors.Is(linkErr, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}

	if err := fsys.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
