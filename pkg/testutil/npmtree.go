package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seekwe/smart-npm/pkg/types"
)

// DefaultNames mirrors the embedded configuration defaults
func DefaultNames() types.Names {
	return types.Names{
		Manager:         "npm",
		Launcher:        "npm-cli.js",
		PackageSubpath:  "lib/node_modules",
		WrapperLauncher: "smart-npm.js",
		TemporaryPrefix: "_",
		TemporarySuffix: "-original-tmp",
		BackupSuffix:    "-original",
		CommandExt:      ".cmd",
	}
}

// NpmTree is a fake node installation prefix:
//
//	<Prefix>/bin/node
//	<Prefix>/bin/npm -> ../lib/node_modules/npm/bin/npm-cli.js
//	<Prefix>/lib/node_modules/npm/bin/npm-cli.js
//	<Prefix>/lib/node_modules/smart-npm/scripts/        (HookDir)
//	<Prefix>/lib/node_modules/smart-npm/bin/smart-npm.js (after InstallWrapper)
type NpmTree struct {
	Prefix   string
	BinDir   string
	HookDir  string
	Launcher string
	Wrapper  string
	Names    types.Names
}

// NewNpmTree builds the tree under a fresh temp dir
func NewNpmTree(t testing.TB) *NpmTree {
	t.Helper()

	// resolve the temp dir itself so paths compare equal to EvalSymlinks output
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}

	prefix := filepath.Join(root, "node")
	names := DefaultNames()
	tree := &NpmTree{
		Prefix:   prefix,
		BinDir:   filepath.Join(prefix, "bin"),
		HookDir:  filepath.Join(prefix, "lib", "node_modules", "smart-npm", "scripts"),
		Launcher: filepath.Join(prefix, "lib", "node_modules", "npm", "bin", "npm-cli.js"),
		Wrapper:  filepath.Join(prefix, "lib", "node_modules", "smart-npm", "bin", "smart-npm.js"),
		Names:    names,
	}

	mustMkdir(t, tree.BinDir)
	mustMkdir(t, tree.HookDir)
	mustMkdir(t, filepath.Dir(tree.Launcher))
	mustWrite(t, filepath.Join(tree.BinDir, "node"), "#!/bin/sh\n")
	mustWrite(t, tree.Launcher, "#!/usr/bin/env node\nrequire('../lib/cli.js')(process)\n")

	rel := filepath.Join("..", "lib", "node_modules", "npm", "bin", "npm-cli.js")
	if err := os.Symlink(rel, tree.EntryPoint()); err != nil {
		t.Fatalf("link npm entry point: %v", err)
	}

	return tree
}

// Layout returns the layout the hook would compute for this tree
func (n *NpmTree) Layout() types.Layout {
	return types.Layout{BinDir: n.BinDir, HookDir: n.HookDir, Names: n.Names}
}

// EntryPoint is <Prefix>/bin/npm
func (n *NpmTree) EntryPoint() string {
	return filepath.Join(n.BinDir, n.Names.Manager)
}

// InstallWrapper places the wrapper launcher, as installing the package would
func (n *NpmTree) InstallWrapper(t testing.TB) {
	t.Helper()
	mustMkdir(t, filepath.Dir(n.Wrapper))
	mustWrite(t, n.Wrapper, "#!/usr/bin/env node\n")
}

// Obstruct puts a non-empty directory at path. Renaming onto it and
// removing it both fail, whatever the caller's privileges.
func (n *NpmTree) Obstruct(t testing.TB, path string) {
	t.Helper()
	mustMkdir(t, path)
	mustWrite(t, filepath.Join(path, "keep"), "")
}

// Snapshot maps every entry in BinDir to its link target, or "" for plain
// files. It is used to assert that an operation changed nothing.
func (n *NpmTree) Snapshot(t testing.TB) map[string]string {
	t.Helper()

	entries, err := os.ReadDir(n.BinDir)
	if err != nil {
		t.Fatalf("read bin dir: %v", err)
	}

	snap := make(map[string]string, len(entries))
	for _, e := range entries {
		p := filepath.Join(n.BinDir, e.Name())
		target, err := os.Readlink(p)
		if err != nil {
			target = ""
		}
		snap[e.Name()] = target
	}
	return snap
}

func mustMkdir(t testing.TB, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func mustWrite(t testing.TB, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
