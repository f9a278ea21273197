package platform

import (
	"path/filepath"

	"github.com/seekwe/smart-npm/pkg/logging"
	"github.com/seekwe/smart-npm/pkg/types"
)

// commandStrategy handles the layout where bin/npm.cmd is a plain file.
// The entry point is never a link, so it is never replaced.
type commandStrategy struct {
	names types.Names
}

func (s *commandStrategy) Platform() types.Platform {
	return types.PlatformCommand
}

func (s *commandStrategy) ResolvePaths(binDir, hookDir string) types.EntryPaths {
	n := s.names
	return types.EntryPaths{
		Original:  filepath.Join(binDir, n.Manager+n.CommandExt),
		Temporary: filepath.Join(binDir, n.TemporaryPrefix+n.Manager+n.BackupSuffix+n.CommandExt),
		Backup:    filepath.Join(binDir, n.Manager+n.BackupSuffix+n.CommandExt),
		Wrapper:   wrapperPath(hookDir, n),
		Target:    targetPath(binDir, n),
	}
}

// IsOriginal makes no distinction on this layout: everything is original.
func (s *commandStrategy) IsOriginal(_ types.FS, _ string) Origin {
	return Origin{Verdict: VerdictOriginal}
}

func (s *commandStrategy) Displace(_ types.FS, paths types.EntryPaths) (bool, error) {
	s.skip("displace", paths)
	return false, nil
}

func (s *commandStrategy) Swap(_ types.FS, paths types.EntryPaths) error {
	s.skip("swap", paths)
	return nil
}

func (s *commandStrategy) Unswap(_ types.FS, paths types.EntryPaths) error {
	s.skip("unswap", paths)
	return nil
}

func (s *commandStrategy) skip(step string, paths types.EntryPaths) {
	logger := logging.GetLogger("platform.command")
	logger.Debug().
		Str("step", step).
		Str("entry", paths.Original).
		Msg("Command-file layout is left untouched")
}

var _ Strategy = (*commandStrategy)(nil)
