package cli

import (
	"github.com/spf13/cobra"

	"github.com/asmutils/agptool/pkg/agp"
)

func newRemoveCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "remove <objects> [agp]",
		Short: "Remove whole objects from an AGP",
		Long: `Remove every row of the objects named in the given file (one name
per line). Names that match nothing in the AGP are an error.

The AGP is read from the second argument, or stdin when omitted.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			in, err := openInput(args[0])
			if err != nil {
				return err
			}
			names, err := agp.ParseObjectList(in)
			in.Close()
			if err != nil {
				return err
			}

			entries, err := readAGP(argOrStdin(args, 1))
			if err != nil {
				return err
			}
			kept, err := agp.Remove(entries, names)
			if err != nil {
				return err
			}
			return writeAGP(output, kept)
		},
	}

	cmd.Flags().StringVarP(&output, "outfile", "o", "", "where to write output AGP (stdout if empty)")
	return cmd
}
