package testutil

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertLink checks that link is a symlink whose stored target is target
func AssertLink(t testing.TB, link, target string) {
	t.Helper()

	info, err := os.Lstat(link)
	require.NoError(t, err, "expected link at %s", link)
	require.NotZero(t, info.Mode()&fs.ModeSymlink, "%s is not a symlink", link)

	got, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got, "link %s points to the wrong place", link)
}

// AssertAbsent checks that nothing, not even a dangling link, is at path
func AssertAbsent(t testing.TB, path string) {
	t.Helper()

	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "expected %s to be absent, got err=%v", path, err)
}
