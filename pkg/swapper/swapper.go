package swapper

import (
	"github.com/seekwe/smart-npm/pkg/errors"
	"github.com/seekwe/smart-npm/pkg/logging"
	"github.com/seekwe/smart-npm/pkg/output"
	"github.com/seekwe/smart-npm/pkg/platform"
	"github.com/seekwe/smart-npm/pkg/types"
)

// Notifier receives the messages meant for the operator
type Notifier interface {
	RenameSucceeded(from, to string)
	RenameFailed(from, to string)
	Remediation(g output.Guide)
}

// Remediation holds the settings quoted in the remediation guide
type Remediation struct {
	Wrapper        string
	ShellRC        string
	LegacyVersion  string
	LegacyRegistry string
}

// Options configures an EntryPointSwapper
type Options struct {
	FS          types.FS
	Strategy    platform.Strategy
	Layout      types.Layout
	Notifier    Notifier
	Remediation Remediation
}

// EntryPointSwapper runs the swap lifecycle for one layout
type EntryPointSwapper struct {
	fs          types.FS
	strategy    platform.Strategy
	names       types.Names
	paths       types.EntryPaths
	notifier    Notifier
	remediation Remediation
}

// New resolves the entry paths once and returns the swapper
func New(opts Options) (*EntryPointSwapper, error) {
	if opts.FS == nil || opts.Strategy == nil || opts.Notifier == nil {
		return nil, errors.New(errors.ErrInvalidInput, "swapper needs a filesystem, a strategy and a notifier")
	}
	if opts.Layout.BinDir == "" || opts.Layout.HookDir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "swapper needs both the bin and hook directories")
	}

	s := &EntryPointSwapper{
		fs:          opts.FS,
		strategy:    opts.Strategy,
		names:       opts.Layout.Names,
		paths:       opts.Strategy.ResolvePaths(opts.Layout.BinDir, opts.Layout.HookDir),
		notifier:    opts.Notifier,
		remediation: opts.Remediation,
	}

	logger := logging.GetLogger("swapper")
	logger.Debug().
		Str("platform", string(opts.Strategy.Platform())).
		Str("original", s.paths.Original).
		Str("temporary", s.paths.Temporary).
		Str("backup", s.paths.Backup).
		Str("wrapper", s.paths.Wrapper).
		Str("target", s.paths.Target).
		Msg("Entry paths resolved")

	return s, nil
}

// Paths returns the resolved path roles
func (s *EntryPointSwapper) Paths() types.EntryPaths {
	return s.paths
}

// Prepare moves the original entry point to its temporary name so that
// installing the wrapper package does not clobber it. It does nothing when
// the entry point is missing or is not the original.
//
// An error means the rename failed; the install must not go on.
func (s *EntryPointSwapper) Prepare() error {
	logger := logging.GetLogger("swapper")
	defer logging.LogOperationStart(logger, "prepare")()

	if _, err := s.fs.Stat(s.paths.Original); err != nil {
		logger.Debug().Err(err).Str("entry", s.paths.Original).Msg("No entry point to move aside")
		return nil
	}

	origin := s.strategy.IsOriginal(s.fs, s.paths.Original)
	if !origin.IsOriginal() {
		logger.Debug().
			Str("entry", s.paths.Original).
			Stringer("verdict", origin.Verdict).
			AnErr("cause", origin.Err).
			Msg("Entry point is not the original, leaving it alone")
		return nil
	}

	moved, err := s.strategy.Displace(s.fs, s.paths)
	if err != nil {
		s.notifier.RenameFailed(s.paths.Original, s.paths.Temporary)
		logger.Error().Err(err).Msg("Could not move the original entry point aside")
		return err
	}
	if moved {
		s.notifier.RenameSucceeded(s.paths.Original, s.paths.Temporary)
		logger.Info().Str("from", s.paths.Original).Str("to", s.paths.Temporary).Msg("Original entry point moved aside")
	}
	return nil
}

// Activate links the entry point to the wrapper and the backup to the
// original launcher. Failures are reported to the operator together with
// manual steps and never abort the install; the result only says whether
// the wrapper is now in place.
func (s *EntryPointSwapper) Activate() bool {
	logger := logging.GetLogger("swapper")
	defer logging.LogOperationStart(logger, "activate")()

	if err := s.strategy.Swap(s.fs, s.paths); err != nil {
		logger.Warn().Err(err).Msg("Activation failed, showing manual steps")
		s.notifier.Remediation(output.Guide{
			Manager:        s.names.Manager,
			Wrapper:        s.remediation.Wrapper,
			EntryPoint:     s.paths.Original,
			WrapperPath:    s.paths.Wrapper,
			ShellRC:        s.remediation.ShellRC,
			LegacyVersion:  s.remediation.LegacyVersion,
			LegacyRegistry: s.remediation.LegacyRegistry,
			Err:            errors.Cause(err),
		})
		return false
	}
	return true
}

// Revert points the entry point straight at the original launcher again and
// drops the backup. It runs unconditionally and returns the first failure.
func (s *EntryPointSwapper) Revert() error {
	logger := logging.GetLogger("swapper")
	defer logging.LogOperationStart(logger, "revert")()

	return s.strategy.Unswap(s.fs, s.paths)
}
