package platform

import (
	"os"
	"path/filepath"

	"github.com/seekwe/smart-npm/pkg/errors"
	"github.com/seekwe/smart-npm/pkg/logging"
	"github.com/seekwe/smart-npm/pkg/types"
)

// Strategy is one entry point convention
type Strategy interface {
	Platform() types.Platform

	// ResolvePaths derives every path role from the two directories.
	// It does not touch the filesystem.
	ResolvePaths(binDir, hookDir string) types.EntryPaths

	// IsOriginal reports whether path is the package manager's own entry point
	IsOriginal(fsys types.FS, path string) Origin

	// Displace moves the original entry point out of the way before the
	// wrapper package is installed. moved is false when nothing was done.
	Displace(fsys types.FS, paths types.EntryPaths) (moved bool, err error)

	// Swap puts the wrapper in front of the original
	Swap(fsys types.FS, paths types.EntryPaths) error

	// Unswap points the entry point back at the original launcher
	Unswap(fsys types.FS, paths types.EntryPaths) error
}

// For returns the strategy for p
func For(p types.Platform, names types.Names) (Strategy, error) {
	switch p {
	case types.PlatformLink:
		return &linkStrategy{names: names}, nil
	case types.PlatformCommand:
		return &commandStrategy{names: names}, nil
	default:
		return nil, errors.Newf(errors.ErrNotSupported, "no entry point strategy for platform %q", p)
	}
}

// wrapperPath is H/../bin/<wrapper launcher>
func wrapperPath(hookDir string, names types.Names) string {
	return filepath.Join(hookDir, "..", "bin", names.WrapperLauncher)
}

// targetPath is B/../<package subpath>/<manager>/bin/<launcher>
func targetPath(binDir string, names types.Names) string {
	return filepath.Join(binDir, "..", filepath.FromSlash(names.PackageSubpath), names.Manager, "bin", names.Launcher)
}

// removeIfPresent deletes path when it exists. Dangling links count as
// present.
func removeIfPresent(fsys types.FS, path string) error {
	logger := logging.GetLogger("platform")

	if _, err := fsys.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", path).WithDetail("path", path)
	}

	if err := fsys.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrRemove, "cannot remove %s", path).WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Msg("Removed entry")
	return nil
}

func symlink(fsys types.FS, target, link string) error {
	if err := fsys.Symlink(target, link); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s -> %s", link, target).
			WithDetail("link", link).
			WithDetail("target", target)
	}
	logger := logging.GetLogger("platform")
	logger.Debug().Str("link", link).Str("target", target).Msg("Created symlink")
	return nil
}
