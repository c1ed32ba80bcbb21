package cli

import (
	"github.com/spf13/cobra"

	"github.com/asmutils/agptool/pkg/agp"
)

func newComposeCmd() *cobra.Command {
	var output string
	var printUnused bool

	cmd := &cobra.Command{
		Use:   "compose <outer-agp> <inner-agp>",
		Short: "Flatten two layered AGPs into one",
		Long: `Compose two AGPs describing different levels of the same assembly
into a single AGP. The outer AGP builds objects from mid-level units
(e.g., scaffolds into chromosomes); the inner AGP builds those units
from low-level components (e.g., contigs into scaffolds). The output
assembles the low-level components directly into the outer objects.

Every outer component row must use its inner object in full; partial use
is an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(c.Context()))

			outer, err := readAGP(args[0])
			if err != nil {
				return err
			}
			inner, err := readAGP(args[1])
			if err != nil {
				return err
			}

			composed, err := agp.Compose(outer, inner, printUnused)
			if err != nil {
				return err
			}
			if err := writeAGP(output, composed); err != nil {
				return err
			}
			prog.done("Compose complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "outfile", "o", "", "where to write output AGP (stdout if empty)")
	cmd.Flags().BoolVarP(&printUnused, "print-unused", "p", false, "append inner objects never used by the outer AGP")
	return cmd
}
