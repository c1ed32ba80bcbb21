// Package assemble builds object sequences in FASTA format from an AGP
// layout and the contig sequences it places.
package assemble

import (
	"fmt"
	"io"
	"strings"

	"github.com/asmutils/agptool/pkg/agp"
	"github.com/asmutils/agptool/pkg/fasta"
)

// Assemble walks the AGP entries object by object, concatenating gap
// runs of N and oriented contig slices, and writes one FASTA record per
// object to w. A component row referencing an unknown contig is fatal.
func Assemble(entries []agp.Entry, contigs *fasta.Set, w io.Writer, wrap int) error {
	currentObject := ""
	var seq strings.Builder

	flush := func() error {
		if currentObject == "" {
			return nil
		}
		if err := fasta.Write(w, currentObject, seq.String(), wrap); err != nil {
			return fmt.Errorf("write %s: %w", currentObject, err)
		}
		seq.Reset()
		return nil
	}

	for _, e := range entries {
		if e.IsComment() {
			continue
		}
		if e.Row.Object() != currentObject {
			if err := flush(); err != nil {
				return err
			}
			currentObject = e.Row.Object()
		}

		switch row := e.Row.(type) {
		case *agp.Gap:
			seq.WriteString(strings.Repeat("N", row.GapLength))
		case *agp.Component:
			contig, ok := contigs.Sequences[row.ID]
			if !ok {
				return &agp.NoSuchContigError{Name: row.ID}
			}
			if row.CompBegin < 1 || row.CompEnd > len(contig) {
				return fmt.Errorf("row %q: window %d-%d outside contig %s (length %d)",
					row.String(), row.CompBegin, row.CompEnd, row.ID, len(contig))
			}
			piece := contig[row.CompBegin-1 : row.CompEnd]
			if row.Orientation == "-" {
				piece = fasta.ReverseComplement(piece)
			}
			seq.WriteString(piece)
		}
	}
	return flush()
}
