package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asmutils/agptool/pkg/assemble"
	"github.com/asmutils/agptool/pkg/fasta"
)

func newAssembleCmd() *cobra.Command {
	var output string
	var wrap int

	cmd := &cobra.Command{
		Use:   "assemble <contigs-fasta> <agp>",
		Short: "Build object sequences from contigs and an AGP",
		Long: `Output the objects described by an AGP in FASTA format, assembled
from the given contig sequences: gap rows become runs of N, component
rows become (possibly reverse-complemented) contig slices.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())
			cfg := configFromContext(c.Context())
			if !c.Flags().Changed("wrap") {
				wrap = cfg.Fasta.Wrap
			}

			spinner := newSpinner(c.Context(), "assembling objects...")
			spinner.Start()
			defer spinner.Stop()

			contigs, err := fasta.ReadFile(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("loaded %d contigs", len(contigs.Order))

			entries, err := readAGP(args[1])
			if err != nil {
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()
			if err := assemble.Assemble(entries, contigs, out, wrap); err != nil {
				return err
			}
			spinner.StopWithSuccess(fmt.Sprintf("Assembled objects from %d contigs", len(contigs.Order)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "outfile", "o", "", "where to write scaffold FASTA (stdout if empty)")
	cmd.Flags().IntVar(&wrap, "wrap", fasta.DefaultWrap, "bases per FASTA line")
	return cmd
}
