package agp

import (
	"fmt"
	"io"

	"github.com/asmutils/agptool/pkg/fasta"
)

// Sanitize rewrites an assembly so it conforms to NCBI submission
// rules. Two adjustments are made:
//
//   - single-row objects are forced to "+" orientation, since NCBI
//     rejects single-component scaffolds placed in reverse; the emitted
//     contig is reverse-complemented so the object sequence is
//     unchanged;
//   - every component row gets a fresh contig covering exactly its
//     component window, written to contigsOut as contig_1, contig_2,
//     ..., with the row rewritten to use the new contig from position 1.
//
// The cleaned AGP is written to agpOut. Component rows referencing
// contigs missing from the set, or windows outside a contig's bounds,
// are fatal.
func Sanitize(entries []Entry, contigs *fasta.Set, agpOut, contigsOut io.Writer, wrap int) error {
	var out []Entry
	contigCounter := 1
	err := objectRuns(entries,
		func(comment Entry) { out = append(out, comment) },
		func(rows []Row) error {
			var flipped *Component
			if len(rows) == 1 {
				if comp, ok := rows[0].(*Component); ok && comp.Orientation == "-" {
					comp.Orientation = "+"
					flipped = comp
				}
			}
			for _, row := range rows {
				comp, ok := row.(*Component)
				if !ok {
					out = append(out, Entry{Row: row})
					continue
				}
				seq, ok := contigs.Sequences[comp.ID]
				if !ok {
					return &NoSuchContigError{Name: comp.ID}
				}
				if comp.CompBegin < 1 || comp.CompEnd > len(seq) {
					return fmt.Errorf("row %q: window %d-%d outside contig %s (length %d)",
						comp.String(), comp.CompBegin, comp.CompEnd, comp.ID, len(seq))
				}
				piece := seq[comp.CompBegin-1 : comp.CompEnd]
				if comp == flipped {
					piece = fasta.ReverseComplement(piece)
				}
				name := fmt.Sprintf("contig_%d", contigCounter)
				contigCounter++
				if err := fasta.Write(contigsOut, name, piece, wrap); err != nil {
					return fmt.Errorf("write contig %s: %w", name, err)
				}
				comp.ID = name
				comp.CompBegin = 1
				comp.CompEnd = len(piece)
				out = append(out, Entry{Row: comp})
			}
			return nil
		})
	if err != nil {
		return err
	}
	return Write(agpOut, out)
}
