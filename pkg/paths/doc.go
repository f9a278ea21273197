// Package paths locates the directories the hook works in.
//
// It handles:
//
//   - Finding the package manager's binary directory (B)
//   - Finding the hook's own install directory (H)
//   - XDG locations for the user config file and the log file
//
// # Binary directory
//
// The binary directory is found using the following priority:
//
//  1. An explicit override (flag, SMART_NPM_PATHS__BIN_DIR or config file)
//  2. The directory of $npm_node_execpath, which npm exports to every
//     lifecycle script and which names the node binary running npm
//  3. The directory of the first "node" found on PATH
//
// # XDG Base Directory Structure
//
//   - Config: $XDG_CONFIG_HOME/smart-npm/config.toml
//   - State:  $XDG_STATE_HOME/smart-npm/smart-npm.log
package paths
