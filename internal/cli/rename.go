package cli

import (
	"github.com/spf13/cobra"

	"github.com/asmutils/agptool/pkg/agp"
)

func newRenameCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "rename <rename-map> [agp]",
		Short: "Rename and optionally reorient whole objects",
		Long: `Rename objects according to a map file with two or three
tab-separated columns: old name, new name, and an optional orientation.
An orientation of "-" also reverse-complements the renamed object.

The AGP is read from the second argument, or stdin when omitted.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			in, err := openInput(args[0])
			if err != nil {
				return err
			}
			renames, err := agp.ParseRenameMap(in)
			in.Close()
			if err != nil {
				return err
			}

			entries, err := readAGP(argOrStdin(args, 1))
			if err != nil {
				return err
			}
			renamed, err := agp.Rename(entries, renames)
			if err != nil {
				return err
			}
			return writeAGP(output, renamed)
		},
	}

	cmd.Flags().StringVarP(&output, "outfile", "o", "", "where to write output AGP (stdout if empty)")
	return cmd
}
