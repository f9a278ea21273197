package types

import (
	"io/fs"
)

// FS is the filesystem interface required for hook operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)

	// ReadFile, WriteFile and MkdirAll are not used by the swap itself.
	// They let tests seed in-memory trees through the same interface, and
	// DryRunFS records them like any other mutation.
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	// EvalSymlinks returns the path name after following every link,
	// the way filepath.EvalSymlinks does.
	EvalSymlinks(path string) (string, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
