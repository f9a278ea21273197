package filesystem

import (
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"
	"github.com/seekwe/smart-npm/pkg/types"
)

// Mutation is a filesystem change a DryRunFS was asked to make.
type Mutation struct {
	Op     string
	Path   string
	Target string
}

// String renders the mutation the way it is shown to the operator
func (m Mutation) String() string {
	if m.Target == "" {
		return fmt.Sprintf("%s %s", m.Op, m.Path)
	}
	return fmt.Sprintf("%s %s -> %s", m.Op, m.Path, m.Target)
}

// DryRunFS passes reads through to the wrapped FS and records every
// mutation without performing it.
type DryRunFS struct {
	types.FS
	logger    zerolog.Logger
	mutations []Mutation
}

// NewDryRun wraps fs so that nothing is written
func NewDryRun(fs types.FS, logger zerolog.Logger) *DryRunFS {
	return &DryRunFS{FS: fs, logger: logger}
}

// Mutations returns the recorded mutations in call order
func (d *DryRunFS) Mutations() []Mutation {
	return d.mutations
}

func (d *DryRunFS) record(m Mutation) {
	d.mutations = append(d.mutations, m)
	d.logger.Info().
		Str("op", m.Op).
		Str("path", m.Path).
		Str("target", m.Target).
		Msg("Dry run: skipping filesystem change")
}

func (d *DryRunFS) WriteFile(name string, _ []byte, _ fs.FileMode) error {
	d.record(Mutation{Op: "write", Path: name})
	return nil
}

func (d *DryRunFS) MkdirAll(path string, _ fs.FileMode) error {
	d.record(Mutation{Op: "mkdir", Path: path})
	return nil
}

func (d *DryRunFS) Symlink(oldname, newname string) error {
	d.record(Mutation{Op: "symlink", Path: newname, Target: oldname})
	return nil
}

func (d *DryRunFS) Rename(oldpath, newpath string) error {
	d.record(Mutation{Op: "rename", Path: oldpath, Target: newpath})
	return nil
}

func (d *DryRunFS) Remove(name string) error {
	d.record(Mutation{Op: "remove", Path: name})
	return nil
}

var _ types.FS = (*DryRunFS)(nil)
