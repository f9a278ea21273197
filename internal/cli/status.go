package cli

import (
	"fmt"

	"github.com/seekwe/smart-npm/pkg/platform"
	"github.com/seekwe/smart-npm/pkg/swapper"
	"github.com/spf13/cobra"
)

func newStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Long:  MsgStatusLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.newSession(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			report, err := s.swapper.Status()
			if err != nil {
				return err
			}
			printStatus(s, report)
			return nil
		},
	}
}

func printStatus(s *session, report swapper.Report) {
	n := s.notifier
	original := report.Entry(swapper.RoleOriginal)

	n.Line("Heading", MsgStatusPlatform, report.Platform)
	n.Line("", MsgStatusOrigin, n.Style("Path", original.Path), describeOrigin(report.Origin))

	for _, e := range report.Entries {
		line := fmt.Sprintf(MsgStatusEntry, e.Role, n.Style("Path", e.Path))
		switch {
		case !e.Present:
			line += n.Style("Muted", MsgStatusAbsent)
		case e.Link:
			line += fmt.Sprintf(MsgStatusLink, n.Style("Path", e.Target))
		}
		n.Line("Item", "%s", line)
	}

	if report.Active {
		n.Line("Success", MsgStatusActive)
	} else {
		n.Line("Warning", MsgStatusInactive)
	}
	if report.Stranded {
		n.Line("Warning", MsgStatusStranded, report.Entry(swapper.RoleTemporary).Path)
	}
}

func describeOrigin(o platform.Origin) string {
	if o.Verdict == platform.VerdictIndeterminate {
		return fmt.Sprintf(MsgStatusIndeterm, o.Err)
	}
	return o.Verdict.String()
}
