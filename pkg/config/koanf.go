package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/seekwe/smart-npm/pkg/errors"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "SMART_NPM_"

// newKoanf stacks the configuration layers
func newKoanf(userFile, extraFile string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config if it exists
	if userFile != "" {
		if _, err := os.Stat(userFile); err == nil {
			if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", userFile)
			}
		}
	}

	// 3. Load the explicitly requested file, which must exist
	if extraFile != "" {
		if _, err := os.Stat(extraFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", extraFile)
		}
		if err := k.Load(file.Provider(extraFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", extraFile)
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	return k, nil
}

// envKey maps SMART_NPM_PATHS__BIN_DIR to paths.bin_dir
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
