// Package render draws AGP layouts as diagrams: each object becomes a
// cluster of component and gap nodes chained in layout order, rendered
// through Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/asmutils/agptool/pkg/agp"
)

// Options configures diagram generation.
type Options struct {
	// Detailed includes object and component coordinates in node labels.
	// When false, only names and gap lengths are shown.
	Detailed bool
}

// ToDOT converts AGP entries to Graphviz DOT. Each object is a cluster
// whose rows appear left to right in part order; gap rows are drawn as
// dashed grey boxes. Render the result with RenderSVG.
func ToDOT(entries []agp.Entry, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph agp {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	cluster := 0
	var previousID string
	currentObject := ""
	for _, e := range entries {
		if e.IsComment() {
			continue
		}
		row := e.Row
		if row.Object() != currentObject {
			if currentObject != "" {
				buf.WriteString("  }\n")
			}
			currentObject = row.Object()
			previousID = ""
			fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", cluster)
			fmt.Fprintf(&buf, "    label=%q;\n", currentObject)
			cluster++
		}

		id := fmt.Sprintf("%s_%d", row.Object(), row.Part())
		fmt.Fprintf(&buf, "    %q [%s];\n", id, strings.Join(nodeAttrs(row, opts.Detailed), ", "))
		if previousID != "" {
			fmt.Fprintf(&buf, "    %q -> %q;\n", previousID, id)
		}
		previousID = id
	}
	if currentObject != "" {
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(row agp.Row, detailed bool) []string {
	switch r := row.(type) {
	case *agp.Gap:
		label := fmt.Sprintf("gap %d", r.GapLength)
		if detailed {
			label += fmt.Sprintf("\n%d-%d", r.Begin(), r.End())
		}
		return []string{
			fmt.Sprintf("label=%q", label),
			`style="rounded,filled,dashed"`,
			"fillcolor=lightgrey",
		}
	case *agp.Component:
		label := r.ID
		if r.Orientation == "-" {
			label += " (-)"
		}
		if detailed {
			label += fmt.Sprintf("\n%d-%d @ %d-%d", r.CompBegin, r.CompEnd, r.Begin(), r.End())
		}
		return []string{fmt.Sprintf("label=%q", label)}
	}
	return nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
