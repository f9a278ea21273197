package swapper

import (
	"io/fs"
	"os"

	"github.com/seekwe/smart-npm/pkg/errors"
	"github.com/seekwe/smart-npm/pkg/platform"
	"github.com/seekwe/smart-npm/pkg/types"
)

// Role names, in the order Status reports them
const (
	RoleOriginal  = "original"
	RoleTemporary = "temporary"
	RoleBackup    = "backup"
	RoleWrapper   = "wrapper"
	RoleTarget    = "target"
)

// EntryState is what is found at one path role
type EntryState struct {
	Role    string
	Path    string
	Present bool
	Link    bool
	// Target is the stored link target, for links
	Target string
}

// Report describes the current swap state without changing it
type Report struct {
	Platform types.Platform
	Entries  []EntryState
	Origin   platform.Origin
	// Active is true when the entry point links to the wrapper and the
	// backup exists
	Active bool
	// Stranded is true when a temporary entry point survived an install
	Stranded bool
}

// Entry returns the state for role
func (r Report) Entry(role string) EntryState {
	for _, e := range r.Entries {
		if e.Role == role {
			return e
		}
	}
	return EntryState{Role: role}
}

// Status inspects every path role. It never mutates the filesystem.
func (s *EntryPointSwapper) Status() (Report, error) {
	roles := []struct {
		role string
		path string
	}{
		{RoleOriginal, s.paths.Original},
		{RoleTemporary, s.paths.Temporary},
		{RoleBackup, s.paths.Backup},
		{RoleWrapper, s.paths.Wrapper},
		{RoleTarget, s.paths.Target},
	}

	report := Report{Platform: s.strategy.Platform()}
	for _, r := range roles {
		state, err := s.inspect(r.role, r.path)
		if err != nil {
			return Report{}, err
		}
		report.Entries = append(report.Entries, state)
	}

	original := report.Entry(RoleOriginal)
	report.Origin = s.strategy.IsOriginal(s.fs, s.paths.Original)
	report.Active = original.Link && original.Target == s.paths.Wrapper && report.Entry(RoleBackup).Present
	report.Stranded = report.Entry(RoleTemporary).Present

	return report, nil
}

func (s *EntryPointSwapper) inspect(role, path string) (EntryState, error) {
	state := EntryState{Role: role, Path: path}

	info, err := s.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", path).WithDetail("role", role)
	}
	state.Present = true

	if info.Mode()&fs.ModeSymlink != 0 {
		state.Link = true
		target, err := s.fs.Readlink(path)
		if err != nil {
			return state, errors.Wrapf(err, errors.ErrSymlinkRead, "cannot read link %s", path).WithDetail("role", role)
		}
		state.Target = target
	}
	return state, nil
}
