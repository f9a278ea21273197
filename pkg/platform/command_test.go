package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seekwe/smart-npm/pkg/filesystem"
	"github.com/seekwe/smart-npm/pkg/testutil"
	"github.com/seekwe/smart-npm/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandStrategy_NeverMutates(t *testing.T) {
	tree := testutil.NewNpmTree(t)
	s, err := For(types.PlatformCommand, tree.Names)
	require.NoError(t, err)
	paths := s.ResolvePaths(tree.BinDir, tree.HookDir)

	cmdFile := filepath.Join(tree.BinDir, "npm.cmd")
	require.NoError(t, os.WriteFile(cmdFile, []byte("@node npm-cli.js %*\r\n"), 0644))
	before := tree.Snapshot(t)

	fsys := filesystem.NewOS()

	origin := s.IsOriginal(fsys, cmdFile)
	assert.True(t, origin.IsOriginal())

	// even a path that does not exist is "original" on this layout
	assert.True(t, s.IsOriginal(fsys, filepath.Join(tree.BinDir, "nope.cmd")).IsOriginal())

	moved, err := s.Displace(fsys, paths)
	require.NoError(t, err)
	assert.False(t, moved)
	require.NoError(t, s.Swap(fsys, paths))
	require.NoError(t, s.Unswap(fsys, paths))

	assert.Equal(t, before, tree.Snapshot(t))
}
