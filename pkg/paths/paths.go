package paths

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/seekwe/smart-npm/pkg/errors"
	"github.com/seekwe/smart-npm/pkg/types"
)

// Environment variable names
const (
	// EnvNodeExecPath is exported by npm to lifecycle scripts
	EnvNodeExecPath = "npm_node_execpath"

	// EnvXDGConfigHome and EnvXDGStateHome are read at call time so that
	// changes after process start are honored
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
	EnvXDGStateHome  = "XDG_STATE_HOME"
)

const (
	// AppDirName is the directory name used under the XDG roots
	AppDirName = "smart-npm"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "smart-npm.log"

	// NodeBinary is the executable looked up on PATH as a last resort
	NodeBinary = "node"
)

// Replaceable for tests.
var (
	lookPath   = exec.LookPath
	executable = os.Executable
)

// Options carries explicit overrides. Empty fields are discovered.
type Options struct {
	BinDir  string
	HookDir string
	Names   types.Names
}

// Locate builds the Layout the hook operates on
func Locate(opts Options) (types.Layout, error) {
	binDir, err := findBinDir(opts.BinDir)
	if err != nil {
		return types.Layout{}, err
	}

	hookDir, err := findHookDir(opts.HookDir)
	if err != nil {
		return types.Layout{}, err
	}

	return types.Layout{
		BinDir:  binDir,
		HookDir: hookDir,
		Names:   opts.Names,
	}, nil
}

// findBinDir returns the directory holding the package manager's executables
func findBinDir(override string) (string, error) {
	if override != "" {
		return absDir(override, "bin directory override")
	}

	if execPath := os.Getenv(EnvNodeExecPath); execPath != "" {
		return absDir(filepath.Dir(execPath), EnvNodeExecPath)
	}

	node, err := lookPath(NodeBinary)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve,
			"cannot find the package manager's bin directory: %s is not set and %q is not on PATH",
			EnvNodeExecPath, NodeBinary)
	}
	return absDir(filepath.Dir(node), "PATH lookup")
}

// findHookDir returns the directory the running hook binary lives in
func findHookDir(override string) (string, error) {
	if override != "" {
		return absDir(override, "hook directory override")
	}

	exe, err := executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPathResolve, "cannot locate the hook executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func absDir(dir, source string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "failed to get absolute path for %s", dir).
			WithDetail("source", source)
	}
	return abs, nil
}

// ConfigFilePath returns the user configuration file location
func ConfigFilePath() string {
	return filepath.Join(xdgDir(EnvXDGConfigHome, xdg.ConfigHome), AppDirName, ConfigFileName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(xdgDir(EnvXDGStateHome, xdg.StateHome), AppDirName, LogFileName)
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	return fallback
}
