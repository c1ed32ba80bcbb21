package cli

import (
	"github.com/spf13/cobra"

	"github.com/asmutils/agptool/pkg/agp"
	"github.com/asmutils/agptool/pkg/bed"
)

func newTransformCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "transform <bed> [agp]",
		Short: "Lift BED intervals from component to object coordinates",
		Long: `Transform a BED file with coordinates on components (contigs) into
the coordinates of the objects assembling them, using the AGP placement.
Features on reversed components get mirrored coordinates and a flipped
strand.

The AGP is read from the second argument, or stdin when omitted.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(c.Context()))

			beds, err := readBed(args[0])
			if err != nil {
				return err
			}
			entries, err := readAGP(argOrStdin(args, 1))
			if err != nil {
				return err
			}

			lifted, err := agp.Transform(entries, beds)
			if err != nil {
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()
			if err := bed.Write(out, lifted); err != nil {
				return err
			}
			prog.done("Transform complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "outfile", "o", "", "where to write output BED (stdout if empty)")
	return cmd
}
