package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	assert.NotNil(t, fsys)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "npm-cli.js")
	testContent := []byte("#!/usr/bin/env node\n")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0755))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "npm-cli.js", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(tmpDir, "bin")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))

	link := filepath.Join(subDir, "npm")
	require.NoError(t, fsys.Symlink(testFile, link))

	linfo, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&fs.ModeSymlink)

	dest, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, testFile, dest)

	resolved, err := fsys.EvalSymlinks(link)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(testFile)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)

	moved := filepath.Join(subDir, "_npm-original-tmp")
	require.NoError(t, fsys.Rename(link, moved))
	_, err = fsys.Lstat(link)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fsys.Remove(moved))
	_, err = fsys.Lstat(moved)
	assert.True(t, os.IsNotExist(err))
}
