package config

import (
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"github.com/seekwe/smart-npm/pkg/errors"
	"github.com/seekwe/smart-npm/pkg/paths"
	"github.com/seekwe/smart-npm/pkg/types"
)

// Config is the complete hook configuration
type Config struct {
	Platform    string            `koanf:"platform" toml:"platform"`
	Paths       PathsConfig       `koanf:"paths" toml:"paths"`
	Manager     ManagerConfig     `koanf:"manager" toml:"manager"`
	Wrapper     WrapperConfig     `koanf:"wrapper" toml:"wrapper"`
	Entry       EntryConfig       `koanf:"entry" toml:"entry"`
	Remediation RemediationConfig `koanf:"remediation" toml:"remediation"`
}

// PathsConfig holds directory overrides; empty means discover
type PathsConfig struct {
	BinDir  string `koanf:"bin_dir" toml:"bin_dir"`
	HookDir string `koanf:"hook_dir" toml:"hook_dir"`
}

// ManagerConfig describes the package manager being wrapped
type ManagerConfig struct {
	Name           string `koanf:"name" toml:"name"`
	Launcher       string `koanf:"launcher" toml:"launcher"`
	PackageSubpath string `koanf:"package_subpath" toml:"package_subpath"`
}

// WrapperConfig describes the wrapper package
type WrapperConfig struct {
	Name     string `koanf:"name" toml:"name"`
	Launcher string `koanf:"launcher" toml:"launcher"`
}

// EntryConfig holds the affixes that derive the temporary and backup names
type EntryConfig struct {
	TemporaryPrefix string `koanf:"temporary_prefix" toml:"temporary_prefix"`
	TemporarySuffix string `koanf:"temporary_suffix" toml:"temporary_suffix"`
	BackupSuffix    string `koanf:"backup_suffix" toml:"backup_suffix"`
	CommandExt      string `koanf:"command_ext" toml:"command_ext"`
}

// RemediationConfig feeds the guide shown when activation fails
type RemediationConfig struct {
	LegacyVersion  string `koanf:"legacy_version" toml:"legacy_version"`
	LegacyRegistry string `koanf:"legacy_registry" toml:"legacy_registry"`
	ShellRC        string `koanf:"shell_rc" toml:"shell_rc"`
}

// LoadOptions selects the files to layer on top of the defaults
type LoadOptions struct {
	// UserFile defaults to the XDG config file when empty
	UserFile string
	// ExtraFile must exist when set
	ExtraFile string
}

// Load reads and validates the configuration
func Load(opts LoadOptions) (*Config, error) {
	userFile := opts.UserFile
	if userFile == "" {
		userFile = paths.ConfigFilePath()
	}

	k, err := newKoanf(userFile, opts.ExtraFile)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields every operation depends on
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"manager.name", c.Manager.Name},
		{"manager.launcher", c.Manager.Launcher},
		{"manager.package_subpath", c.Manager.PackageSubpath},
		{"wrapper.launcher", c.Wrapper.Launcher},
		{"entry.backup_suffix", c.Entry.BackupSuffix},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", r.key).WithDetail("key", r.key)
		}
	}

	// the temporary name must differ from the entry point itself
	if c.Entry.TemporaryPrefix == "" && c.Entry.TemporarySuffix == "" {
		return errors.New(errors.ErrConfigValid, "entry.temporary_prefix and entry.temporary_suffix cannot both be empty")
	}

	if c.Platform != "" {
		if _, err := types.ParsePlatform(c.Platform); err != nil {
			return errors.Wrap(err, errors.ErrConfigValid, "invalid platform")
		}
	}
	return nil
}

// ResolvePlatform returns the configured platform, or the one matching goos
func (c *Config) ResolvePlatform(goos string) types.Platform {
	if c.Platform != "" {
		return types.Platform(c.Platform)
	}
	if goos == "windows" {
		return types.PlatformCommand
	}
	return types.PlatformLink
}

// HostPlatform is ResolvePlatform for the running OS
func (c *Config) HostPlatform() types.Platform {
	return c.ResolvePlatform(runtime.GOOS)
}

// Names returns the file names used to derive entry paths
func (c *Config) Names() types.Names {
	return types.Names{
		Manager:         c.Manager.Name,
		Launcher:        c.Manager.Launcher,
		PackageSubpath:  c.Manager.PackageSubpath,
		WrapperLauncher: c.Wrapper.Launcher,
		TemporaryPrefix: c.Entry.TemporaryPrefix,
		TemporarySuffix: c.Entry.TemporarySuffix,
		BackupSuffix:    c.Entry.BackupSuffix,
		CommandExt:      c.Entry.CommandExt,
	}
}

// TOML renders the effective configuration
func (c *Config) TOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
