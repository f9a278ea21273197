package platform

import (
	"path/filepath"
	"strings"

	"github.com/seekwe/smart-npm/pkg/errors"
	"github.com/seekwe/smart-npm/pkg/logging"
	"github.com/seekwe/smart-npm/pkg/types"
)

// linkStrategy handles the layout where bin/npm is a symlink
type linkStrategy struct {
	names types.Names
}

func (s *linkStrategy) Platform() types.Platform {
	return types.PlatformLink
}

func (s *linkStrategy) ResolvePaths(binDir, hookDir string) types.EntryPaths {
	n := s.names
	return types.EntryPaths{
		Original:  filepath.Join(binDir, n.Manager),
		Temporary: filepath.Join(binDir, n.TemporaryPrefix+n.Manager+n.TemporarySuffix),
		Backup:    filepath.Join(binDir, n.Manager+n.BackupSuffix),
		Wrapper:   wrapperPath(hookDir, n),
		Target:    targetPath(binDir, n),
	}
}

// IsOriginal is true for a link, and only a link, whose resolved path has a
// segment named after the manager past the first one.
func (s *linkStrategy) IsOriginal(fsys types.FS, path string) Origin {
	abs, err := filepath.Abs(path)
	if err != nil {
		return indeterminate(err)
	}

	resolved, err := fsys.EvalSymlinks(path)
	if err != nil {
		return indeterminate(err)
	}

	origin := Origin{Verdict: VerdictNotOriginal, Resolved: resolved}
	if abs != resolved && segmentIndex(resolved, s.names.Manager) > 0 {
		origin.Verdict = VerdictOriginal
	}
	return origin
}

func (s *linkStrategy) Displace(fsys types.FS, paths types.EntryPaths) (bool, error) {
	if err := fsys.Rename(paths.Original, paths.Temporary); err != nil {
		return false, errors.Wrapf(err, errors.ErrRename, "cannot rename %s to %s", paths.Original, paths.Temporary).
			WithDetail("from", paths.Original).
			WithDetail("to", paths.Temporary)
	}
	return true, nil
}

// Swap removes whatever sits at the entry point and the backup, then links
// the entry point to the wrapper and the backup to the original launcher.
// It stops at the first failure.
func (s *linkStrategy) Swap(fsys types.FS, paths types.EntryPaths) error {
	logger := logging.GetLogger("platform.link")

	if err := removeIfPresent(fsys, paths.Original); err != nil {
		return err
	}
	if err := removeIfPresent(fsys, paths.Backup); err != nil {
		return err
	}
	if err := symlink(fsys, paths.Wrapper, paths.Original); err != nil {
		return err
	}
	if err := symlink(fsys, paths.Target, paths.Backup); err != nil {
		return err
	}

	logger.Info().Str("entry", paths.Original).Str("wrapper", paths.Wrapper).Msg("Wrapper swapped in")
	return nil
}

func (s *linkStrategy) Unswap(fsys types.FS, paths types.EntryPaths) error {
	logger := logging.GetLogger("platform.link")

	if err := removeIfPresent(fsys, paths.Original); err != nil {
		return err
	}
	if err := removeIfPresent(fsys, paths.Backup); err != nil {
		return err
	}
	if err := symlink(fsys, paths.Target, paths.Original); err != nil {
		return err
	}

	logger.Info().Str("entry", paths.Original).Str("target", paths.Target).Msg("Original entry point restored")
	return nil
}

// segmentIndex returns the index of the first path segment equal to name,
// or -1. An absolute path's leading separator yields an empty first segment.
func segmentIndex(path, name string) int {
	for i, segment := range strings.Split(path, string(filepath.Separator)) {
		if segment == name {
			return i
		}
	}
	return -1
}

var _ Strategy = (*linkStrategy)(nil)
