package cli

import (
	"github.com/spf13/cobra"

	"github.com/asmutils/agptool/pkg/agp"
)

func newFlipCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "flip <ranges> [agp]",
		Short: "Reverse-complement objects or ranges of them",
		Long: `Reverse-complement objects or ranges of objects in an AGP.

Ranges are given in BED-like format in object coordinates. A line with
only an object name flips the whole object; a line with start and end
flips exactly the rows inside that range. Ranges that cut through the
middle of a component are rejected; split the object first.

The AGP is read from the second argument, or stdin when omitted.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(c.Context()))

			ranges, err := readBed(args[0])
			if err != nil {
				return err
			}
			entries, err := readAGP(argOrStdin(args, 1))
			if err != nil {
				return err
			}

			flipped, err := agp.Flip(entries, ranges)
			if err != nil {
				return err
			}
			if err := writeAGP(output, flipped); err != nil {
				return err
			}
			prog.done("Flip complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "outfile", "o", "", "where to write output AGP (stdout if empty)")
	return cmd
}
