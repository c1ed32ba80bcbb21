package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [agp]",
		Short: "Summarize the objects of an AGP",
		Long: `Print a per-object summary of an AGP: total length, component
count, gap count, and gap bases.

The AGP is read from the first argument, or stdin when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			entries, err := readAGP(argOrStdin(args, 0))
			if err != nil {
				return err
			}
			summaries := summarize(entries)

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				Headers("OBJECT", "LENGTH", "COMPONENTS", "GAPS", "GAP BASES")

			totalLength := 0
			for _, s := range summaries {
				t.Row(s.name,
					strconv.Itoa(s.length),
					strconv.Itoa(s.components),
					strconv.Itoa(s.gaps),
					strconv.Itoa(s.gapBases))
				totalLength += s.length
			}

			fmt.Println(t)
			printInfo("%d objects, %d bp total", len(summaries), totalLength)
			return nil
		},
	}
	return cmd
}
