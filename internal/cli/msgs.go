package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Swap npm's entry point for smart-npm during install"
	MsgUninstallShort = "Restore npm's own entry point before smart-npm is removed"
	MsgStatusShort    = "Show the state of the npm entry point"
	MsgConfigShort    = "Print the effective configuration as TOML"
	MsgVersionShort   = "Print version information"

	// Status output
	MsgStatusPlatform  = "Platform: %s"
	MsgStatusOrigin    = "Entry point: %s (%s)"
	MsgStatusEntry     = "%-10s %s"
	MsgStatusLink      = " -> %s"
	MsgStatusAbsent    = " (absent)"
	MsgStatusActive    = "smart-npm is active"
	MsgStatusInactive  = "smart-npm is not active"
	MsgStatusStranded  = "The original entry point was moved aside and never restored: %s"
	MsgStatusIndeterm  = "could not resolve: %v"
	MsgDryRunNotice    = "\nDRY RUN MODE - No changes were made"
	MsgDryRunMutations = "Planned changes:"
	MsgDryRunItem      = "  %s"

	// Version output
	MsgVersionFormat = "smart-npm-hook version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Preview changes without executing them"
	MsgFlagBinDir   = "Directory holding the npm entry point (default: next to node)"
	MsgFlagHookDir  = "Directory of the hook scripts (default: next to this executable)"
	MsgFlagPlatform = "Entry point convention: link or command"
	MsgFlagConfig   = "Extra TOML configuration file"

)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/uninstall-long.txt
	msgUninstallLongRaw string
	MsgUninstallLong    = strings.TrimSpace(msgUninstallLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
