package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/seekwe/smart-npm/internal/version"
	"github.com/seekwe/smart-npm/pkg/logging"
	"github.com/spf13/cobra"
)

// NewUninstallCmd creates the smart-npm-uninstall command. It takes the same
// flags as the hook and ignores positional arguments.
func NewUninstallCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:     "smart-npm-uninstall",
		Short:   MsgUninstallShort,
		Long:    MsgUninstallLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.newSession(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer s.reportDryRun()
			return s.swapper.Revert()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags.register(cmd)
	cmd.SetUsageTemplate(MsgUsageTemplate + "\n")
	return cmd
}
