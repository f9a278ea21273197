package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/seekwe/smart-npm/pkg/types"
	"github.com/spf13/afero"
)

// maxLinkHops bounds link resolution, matching the usual ELOOP limits.
const maxLinkHops = 255

var errTooManyLinks = errors.New("too many levels of symbolic links")

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	// MemMapFs has no links; callers see a LinkError like the OS would give
	linker, ok := a.fs.(afero.Linker)
	if !ok {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: afero.ErrNoSymlink}
	}
	return linker.SymlinkIfPossible(oldname, newname)
}

func (a *aferoFS) Readlink(name string) (string, error) {
	reader, ok := a.fs.(afero.LinkReader)
	if !ok {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
	}
	return reader.ReadlinkIfPossible(name)
}

func (a *aferoFS) EvalSymlinks(path string) (string, error) {
	if _, ok := a.fs.(*afero.OsFs); ok {
		return filepath.EvalSymlinks(path)
	}
	return evalLinks(a, path)
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	return a.fs.Rename(oldpath, newpath)
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

// evalLinks resolves every link along path one component at a time, using
// only Lstat and Readlink. It is used for backends where the OS cannot do
// the resolution for us.
func evalLinks(fsys types.FS, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	sep := string(filepath.Separator)
	root := filepath.VolumeName(abs) + sep
	pending := splitPath(abs)
	resolved := root
	hops := 0

	for len(pending) > 0 {
		part := pending[0]
		pending = pending[1:]

		switch part {
		case "", ".":
			continue
		case "..":
			resolved = filepath.Dir(resolved)
			continue
		}

		next := filepath.Join(resolved, part)
		info, err := fsys.Lstat(next)
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", &fs.PathError{Op: "evalsymlinks", Path: path, Err: errTooManyLinks}
		}

		dest, err := fsys.Readlink(next)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(resolved, dest)
		}
		// Restart from the root with the link's destination spliced in front
		// of whatever was still left to walk.
		pending = append(splitPath(filepath.Clean(dest)), pending...)
		resolved = filepath.VolumeName(dest) + sep
	}

	return resolved, nil
}

func splitPath(p string) []string {
	p = strings.TrimPrefix(p, filepath.VolumeName(p))
	return strings.Split(strings.Trim(p, string(filepath.Separator)), string(filepath.Separator))
}
