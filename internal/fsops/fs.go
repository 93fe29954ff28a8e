// Package fsops provides filesystem operations with safety guarantees.
//
// All filesystem access in skeletor goes through the FS interface. Reads
// never modify the template tree, and writes never replace existing files:
// directories are created only when absent and files only when new.
//
// Key features:
//   - Exclusive file creation (no overwrite, ever)
//   - Create-if-absent directories
//   - Home directory expansion for user supplied paths
//   - Testable via the FS interface
package fsops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS provides an abstraction for filesystem operations.
// All filesystem mutations in skeletor must go through this interface.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// ReadDir lists a directory, sorted by file name.
	ReadDir(path string) ([]os.DirEntry, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// Mkdir creates a single directory. It fails with fs.ErrExist if the
	// path already exists.
	Mkdir(path string, perm os.FileMode) error

	// EnsureDir creates a single directory if it is absent.
	EnsureDir(path string, perm os.FileMode) error

	// CreateFile writes data to a new file. It fails with fs.ErrExist if the
	// path already exists.
	CreateFile(path string, data []byte, perm os.FileMode) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Stat returns file info, following symlinks.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir lists a directory, sorted by file name.
func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists checks if a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Mkdir creates a single directory.
func (fs *RealFS) Mkdir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}

// EnsureDir creates a single directory if it is absent.
// An existing path is not an error; any other failure is returned as is.
func (fs *RealFS) EnsureDir(path string, perm os.FileMode) error {
	err := os.Mkdir(path, perm)
	if err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	return nil
}

// CreateFile writes data to a new file at path.
// The file is opened with O_EXCL, so an existing file is never replaced.
// A file left half-written by a failed write is removed.
func (fs *RealFS) CreateFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	return f.Close()
}

// ExpandPath expands a leading "~" to the user's home directory and returns
// the absolute, cleaned form of path.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~"+string(filepath.Separator)) || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	return abs, nil
}

// IsExist reports whether err means the path already exists.
func IsExist(err error) bool {
	return errors.Is(err, os.ErrExist)
}
