package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/seekwe/smart-npm/internal/version"
	"github.com/seekwe/smart-npm/pkg/errors"
	"github.com/seekwe/smart-npm/pkg/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps config and log files inside the test's temp dirs
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("npm_node_execpath", "")
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func treeArgs(tree *testutil.NpmTree, args ...string) []string {
	return append(args,
		"--bin-dir", tree.BinDir,
		"--hook-dir", tree.HookDir,
		"--platform", "link",
	)
}

func TestHook_Preinstall(t *testing.T) {
	isolate(t)
	tree := testutil.NewNpmTree(t)

	out, err := execute(t, NewRootCmd(), treeArgs(tree, "preinstall")...)
	require.NoError(t, err)

	temporary := filepath.Join(tree.BinDir, "_npm-original-tmp")
	testutil.AssertAbsent(t, tree.EntryPoint())
	testutil.AssertLink(t, temporary, filepath.Join("..", "lib", "node_modules", "npm", "bin", "npm-cli.js"))
	assert.Contains(t, out, "Success rename: "+tree.EntryPoint()+" => "+temporary)
}

func TestHook_PreinstallFailureExitsNonZero(t *testing.T) {
	isolate(t)
	tree := testutil.NewNpmTree(t)
	tree.Obstruct(t, filepath.Join(tree.BinDir, "_npm-original-tmp"))
	before := tree.Snapshot(t)

	out, err := execute(t, NewRootCmd(), treeArgs(tree, "preinstall")...)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRename))
	assert.Contains(t, out, "Error rename:")
	assert.Equal(t, before, tree.Snapshot(t))
}

func TestHook_Postinstall(t *testing.T) {
	isolate(t)
	tree := testutil.NewNpmTree(t)

	_, err := execute(t, NewRootCmd(), treeArgs(tree, "preinstall")...)
	require.NoError(t, err)
	tree.InstallWrapper(t)

	out, err := execute(t, NewRootCmd(), treeArgs(tree, "postinstall")...)
	require.NoError(t, err)
	assert.Empty(t, out)

	testutil.AssertLink(t, tree.EntryPoint(), tree.Wrapper)
	testutil.AssertLink(t, filepath.Join(tree.BinDir, "npm-original"), tree.Launcher)
}

func TestHook_PostinstallFailureStillSucceeds(t *testing.T) {
	isolate(t)
	tree := testutil.NewNpmTree(t)
	tree.InstallWrapper(t)
	tree.Obstruct(t, filepath.Join(tree.BinDir, "npm-original"))

	out, err := execute(t, NewRootCmd(), treeArgs(tree, "postinstall")...)

	require.NoError(t, err)
	assert.Contains(t, out, "Failed to create the new npm entry point")
	assert.Contains(t, out, `alias npm="smart-npm"`)
	assert.Contains(t, out, "npm install --global smart-npm@1 --registry=https://registry.npm.taobao.org/")
}

func TestHook_OtherLifecyclesAreNoOps(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no_argument", args: nil},
		{name: "install", args: []string{"install"}},
		{name: "preuninstall", args: []string{"preuninstall"}},
		{name: "extra_arguments", args: []string{"prepare", "foo", "bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := testutil.NewNpmTree(t)
			tree.InstallWrapper(t)
			before := tree.Snapshot(t)

			out, err := execute(t, NewRootCmd(), treeArgs(tree, tt.args...)...)
			require.NoError(t, err)
			assert.Empty(t, out)
			assert.Equal(t, before, tree.Snapshot(t))
		})
	}
}

func TestHook_DryRun(t *testing.T) {
	isolate(t)
	tree := testutil.NewNpmTree(t)
	before := tree.Snapshot(t)

	out, err := execute(t, NewRootCmd(), treeArgs(tree, "preinstall", "--dry-run")...)
	require.NoError(t, err)

	assert.Equal(t, before, tree.Snapshot(t))
	assert.Contains(t, out, "DRY RUN MODE")
	assert.Contains(t, out, "rename "+tree.EntryPoint()+" -> "+filepath.Join(tree.BinDir, "_npm-original-tmp"))
}

func TestHook_CommandPlatform(t *testing.T) {
	isolate(t)
	tree := testutil.NewNpmTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(tree.BinDir, "npm.cmd"), []byte("@node npm-cli.js %*\r\n"), 0644))
	before := tree.Snapshot(t)

	for _, lifecycle := range []string{"preinstall", "postinstall"} {
		_, err := execute(t, NewRootCmd(),
			lifecycle, "--bin-dir", tree.BinDir, "--hook-dir", tree.HookDir, "--platform", "command")
		require.NoError(t, err)
	}
	assert.Equal(t, before, tree.Snapshot(t))
}

func TestHook_InvalidPlatform(t *testing.T) {
	isolate(t)
	tree := testutil.NewNpmTree(t)

	_, err := execute(t, NewRootCmd(),
		"preinstall", "--bin-dir", tree.BinDir, "--hook-dir", tree.HookDir, "--platform", "vms")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestHook_BinDirFromEnvironment(t *testing.T) {
	isolate(t)
	tree := testutil.NewNpmTree(t)
	t.Setenv("npm_node_execpath", filepath.Join(tree.BinDir, "node"))
	t.Setenv("SMART_NPM_PLATFORM", "link")

	_, err := execute(t, NewRootCmd(), "preinstall", "--hook-dir", tree.HookDir)
	require.NoError(t, err)
	testutil.AssertAbsent(t, tree.EntryPoint())
}

func TestStatusCmd(t *testing.T) {
	isolate(t)
	tree := testutil.NewNpmTree(t)

	_, err := execute(t, NewRootCmd(), treeArgs(tree, "preinstall")...)
	require.NoError(t, err)
	tree.InstallWrapper(t)
	_, err = execute(t, NewRootCmd(), treeArgs(tree, "postinstall")...)
	require.NoError(t, err)
	before := tree.Snapshot(t)

	out, err := execute(t, NewRootCmd(), treeArgs(tree, "status")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Platform: link")
	assert.Contains(t, out, tree.EntryPoint()+" -> "+tree.Wrapper)
	assert.Contains(t, out, "smart-npm is active")
	assert.Contains(t, out, "never restored: "+filepath.Join(tree.BinDir, "_npm-original-tmp"))
	assert.Equal(t, before, tree.Snapshot(t))
}

func TestConfigCmd(t *testing.T) {
	isolate(t)

	out, err := execute(t, NewRootCmd(), "config", "--bin-dir", "/opt/node/bin")
	require.NoError(t, err)

	assert.Contains(t, out, "bin_dir")
	assert.Contains(t, out, "/opt/node/bin")
	assert.Contains(t, out, "npm-cli.js")
}

func TestVersionCmd(t *testing.T) {
	isolate(t)

	out, err := execute(t, NewRootCmd(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "smart-npm-hook version "+version.Version)
}

func TestUninstall(t *testing.T) {
	isolate(t)
	tree := testutil.NewNpmTree(t)
	tree.InstallWrapper(t)

	_, err := execute(t, NewRootCmd(), treeArgs(tree, "postinstall")...)
	require.NoError(t, err)

	_, err = execute(t, NewUninstallCmd(), treeArgs(tree)...)
	require.NoError(t, err)

	testutil.AssertLink(t, tree.EntryPoint(), tree.Launcher)
	testutil.AssertAbsent(t, filepath.Join(tree.BinDir, "npm-original"))
}

func TestUninstall_FailureExitsNonZero(t *testing.T) {
	isolate(t)
	tree := testutil.NewNpmTree(t)
	tree.Obstruct(t, filepath.Join(tree.BinDir, "npm-original"))

	_, err := execute(t, NewUninstallCmd(), treeArgs(tree)...)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRemove))
}

func TestHelpUsesUsageTemplate(t *testing.T) {
	isolate(t)

	out, err := execute(t, NewRootCmd(), "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "preinstall")
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "COMMANDS:")
	assert.Contains(t, out, "status")
	assert.NotContains(t, out, "--platform")
}

func TestFormatBoldUpper(t *testing.T) {
	// test output is never a terminal
	assert.Equal(t, "FLAGS:", formatBoldUpper("flags:"))
}
