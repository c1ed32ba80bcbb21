package cli

import (
	"github.com/spf13/cobra"

	"github.com/asmutils/agptool/pkg/agp"
)

func newSplitCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "split <breakpoints> [agp]",
		Short: "Split objects into sub-objects at breakpoint positions",
		Long: `Split objects into independently numbered sub-objects.

The breakpoints file lists one object per line: the object name, a tab,
and a comma-separated list of positions in object coordinates. A
breakpoint inside a gap drops the gap and ends the sub-object there; a
breakpoint inside a component divides the component at that position.

The AGP is read from the second argument, or stdin when omitted.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())
			prog := newProgress(logger)

			in, err := openInput(args[0])
			if err != nil {
				return err
			}
			breakpoints, err := agp.ParseBreakpoints(in)
			in.Close()
			if err != nil {
				return err
			}

			entries, err := readAGP(argOrStdin(args, 1))
			if err != nil {
				return err
			}
			logger.Debugf("splitting %d objects", len(breakpoints))

			split, err := agp.Split(entries, breakpoints)
			if err != nil {
				return err
			}
			if err := writeAGP(output, split); err != nil {
				return err
			}
			prog.done("Split complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "outfile", "o", "", "where to write output AGP (stdout if empty)")
	return cmd
}

// argOrStdin returns args[i] if present, otherwise "-" for stdin.
func argOrStdin(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return "-"
}
