package types

import "fmt"

// Platform selects the entry point convention of the host.
type Platform string

const (
	// PlatformLink is the Unix-like layout where the package manager's
	// entry point is a symlink into its own install tree.
	PlatformLink Platform = "link"

	// PlatformCommand is the Windows-style layout where the entry point is a
	// plain .cmd file. The hook never touches it.
	PlatformCommand Platform = "command"
)

// ParsePlatform converts a string into a Platform
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformLink, PlatformCommand:
		return Platform(s), nil
	default:
		return "", fmt.Errorf("unknown platform %q (want %q or %q)", s, PlatformLink, PlatformCommand)
	}
}

// Names holds the file names the hook works with. They come from
// configuration, not from the host.
type Names struct {
	Manager         string // package manager name, also its entry point name ("npm")
	Launcher        string // the manager's launcher script ("npm-cli.js")
	PackageSubpath  string // install subpath under the prefix ("lib/node_modules")
	WrapperLauncher string // the wrapper's launcher script ("smart-npm.js")
	TemporaryPrefix string
	TemporarySuffix string
	BackupSuffix    string
	CommandExt      string // extension of the command-file entry point (".cmd")
}

// Layout is everything needed to derive EntryPaths. BinDir is the directory
// holding the package manager's executables, HookDir the directory the hook
// executable itself was installed into.
type Layout struct {
	BinDir  string
	HookDir string
	Names   Names
}

// EntryPaths are the resolved path roles of a swap.
type EntryPaths struct {
	// Original is the package manager's entry point. Once the swap is
	// active it links to Wrapper.
	Original string
	// Temporary only exists between the pre-install rename and the end of
	// the install.
	Temporary string
	// Backup links to Target while the swap is active.
	Backup string
	// Wrapper is this package's own launcher.
	Wrapper string
	// Target is the manager's real launcher script.
	Target string
}
