package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asmutils/agptool/pkg/render"
)

func newVizCmd() *cobra.Command {
	var output string
	var format string
	var detailed bool

	cmd := &cobra.Command{
		Use:   "viz [agp]",
		Short: "Draw an AGP layout as a diagram",
		Long: `Render the layout described by an AGP as a Graphviz diagram: one
cluster per object with its components and gaps chained in part order.

The AGP is read from the first argument, or stdin when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())

			entries, err := readAGP(argOrStdin(args, 0))
			if err != nil {
				return err
			}

			dot := render.ToDOT(entries, render.Options{Detailed: detailed})

			var data []byte
			switch strings.ToLower(format) {
			case "dot":
				data = []byte(dot)
			case "svg":
				p := newProgress(logger)
				data, err = render.RenderSVG(dot)
				if err != nil {
					return err
				}
				p.done("rendered SVG")
			default:
				return fmt.Errorf("unknown format %q (want dot or svg)", format)
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()
			if _, err := out.Write(data); err != nil {
				return fmt.Errorf("write diagram: %w", err)
			}
			if output != "" && output != "-" {
				printSuccess("Wrote %s diagram to %s", format, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "outfile", "o", "", "where to write the diagram (stdout if empty)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: dot or svg")
	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "include coordinates in node labels")
	return cmd
}
