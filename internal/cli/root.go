package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/seekwe/smart-npm/internal/version"
	"github.com/seekwe/smart-npm/pkg/logging"
	"github.com/spf13/cobra"
)

// Lifecycle script names npm passes to the hook
const (
	LifecyclePreinstall  = "preinstall"
	LifecyclePostinstall = "postinstall"
)

// NewRootCmd creates the smart-npm-hook command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "smart-npm-hook [lifecycle]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			lifecycle := ""
			if len(args) > 0 {
				lifecycle = args[0]
			}
			return runLifecycle(cmd, flags, lifecycle)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags.register(rootCmd)
	rootCmd.SetUsageTemplate(MsgUsageTemplate + "\n")

	rootCmd.AddCommand(newStatusCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// runLifecycle maps the npm lifecycle name to a swapper operation. Names it
// does not know are ignored.
func runLifecycle(cmd *cobra.Command, flags *globalFlags, lifecycle string) error {
	logger := logging.GetLogger("cli.hook")

	switch lifecycle {
	case LifecyclePreinstall:
		s, err := flags.newSession(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer s.reportDryRun()
		return s.swapper.Prepare()

	case LifecyclePostinstall:
		s, err := flags.newSession(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer s.reportDryRun()
		if !s.swapper.Activate() {
			logger.Info().Msg("Wrapper not activated; the install goes on")
		}
		return nil

	default:
		logger.Debug().Str("lifecycle", lifecycle).Msg("Nothing to do for this lifecycle")
		return nil
	}
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			out, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}
