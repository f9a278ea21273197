// Package config loads the hook configuration.
//
// Configuration is layered with koanf, later layers winning:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. $XDG_CONFIG_HOME/smart-npm/config.toml, when it exists
//  3. An extra file passed with --config
//  4. SMART_NPM_* environment variables, where a double underscore separates
//     sections: SMART_NPM_PATHS__BIN_DIR sets paths.bin_dir
//
// Command-line flags are applied on top by the CLI.
package config
