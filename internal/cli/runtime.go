package cli

import (
	"io"

	"github.com/seekwe/smart-npm/pkg/config"
	"github.com/seekwe/smart-npm/pkg/errors"
	"github.com/seekwe/smart-npm/pkg/filesystem"
	"github.com/seekwe/smart-npm/pkg/logging"
	"github.com/seekwe/smart-npm/pkg/output"
	"github.com/seekwe/smart-npm/pkg/paths"
	"github.com/seekwe/smart-npm/pkg/platform"
	"github.com/seekwe/smart-npm/pkg/swapper"
	"github.com/seekwe/smart-npm/pkg/types"
	"github.com/spf13/cobra"
)

// globalFlags are shared by both commands
type globalFlags struct {
	verbosity  int
	dryRun     bool
	binDir     string
	hookDir    string
	platform   string
	configFile string
}

func (f *globalFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.CountVarP(&f.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&f.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.StringVar(&f.binDir, "bin-dir", "", MsgFlagBinDir)
	pf.StringVar(&f.hookDir, "hook-dir", "", MsgFlagHookDir)
	pf.StringVar(&f.platform, "platform", "", MsgFlagPlatform)
	pf.StringVar(&f.configFile, "config", "", MsgFlagConfig)
	_ = pf.MarkHidden("platform")
}

// loadConfig layers flags over the loaded configuration
func (f *globalFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{ExtraFile: f.configFile})
	if err != nil {
		return nil, err
	}

	if f.binDir != "" {
		cfg.Paths.BinDir = f.binDir
	}
	if f.hookDir != "" {
		cfg.Paths.HookDir = f.hookDir
	}
	if f.platform != "" {
		cfg.Platform = f.platform
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// session is everything one command run needs
type session struct {
	cfg      *config.Config
	notifier *output.Notifier
	swapper  *swapper.EntryPointSwapper
	// dryRun is nil unless --dry-run is set
	dryRun *filesystem.DryRunFS
}

// newSession resolves the layout and builds the swapper
func (f *globalFlags) newSession(out io.Writer) (*session, error) {
	logger := logging.GetLogger("cli")

	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}

	layout, err := paths.Locate(paths.Options{
		BinDir:  cfg.Paths.BinDir,
		HookDir: cfg.Paths.HookDir,
		Names:   cfg.Names(),
	})
	if err != nil {
		return nil, err
	}

	strategy, err := platform.For(cfg.HostPlatform(), layout.Names)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, notifier: output.NewNotifier(out)}

	var fsys types.FS = filesystem.NewOS()
	if f.dryRun {
		s.dryRun = filesystem.NewDryRun(fsys, logging.GetLogger("dryrun"))
		fsys = s.dryRun
	}

	s.swapper, err = swapper.New(swapper.Options{
		FS:       fsys,
		Strategy: strategy,
		Layout:   layout,
		Notifier: s.notifier,
		Remediation: swapper.Remediation{
			Wrapper:        cfg.Wrapper.Name,
			ShellRC:        cfg.Remediation.ShellRC,
			LegacyVersion:  cfg.Remediation.LegacyVersion,
			LegacyRegistry: cfg.Remediation.LegacyRegistry,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to build the entry point swapper")
	}

	logger.Debug().
		Str("binDir", layout.BinDir).
		Str("hookDir", layout.HookDir).
		Str("platform", string(strategy.Platform())).
		Bool("dryRun", f.dryRun).
		Msg("Session ready")
	return s, nil
}

// reportDryRun lists the changes a dry run skipped
func (s *session) reportDryRun() {
	if s.dryRun == nil {
		return
	}
	s.notifier.Line("Warning", MsgDryRunNotice)
	mutations := s.dryRun.Mutations()
	if len(mutations) == 0 {
		return
	}
	s.notifier.Line("Heading", MsgDryRunMutations)
	for _, m := range mutations {
		s.notifier.Line("Muted", MsgDryRunItem, m.String())
	}
}
