package agp

import (
	"fmt"

	"github.com/asmutils/agptool/pkg/bed"
)

// NoSuchContigError is returned when a component name does not occur
// anywhere in the AGP.
type NoSuchContigError struct {
	Name string
}

func (e *NoSuchContigError) Error() string {
	return fmt.Sprintf("cannot find component called %q in AGP", e.Name)
}

// CoordinateNotFoundError is returned when a component is known but no
// row's component window covers the requested position.
type CoordinateNotFoundError struct {
	Name     string
	Position int
}

func (e *CoordinateNotFoundError) Error() string {
	return fmt.Sprintf("no row of component %q covers position %d", e.Name, e.Position)
}

// BadOrientationError is returned when a position must be lifted
// through a row whose orientation is neither "+" nor "-".
type BadOrientationError struct {
	Row *Component
}

func (e *BadOrientationError) Error() string {
	return fmt.Sprintf("bad orientation %q on row %q", e.Row.Orientation, e.Row.String())
}

// TransformPosition lifts a position on a component into the object
// coordinates of the row placing that component. The position is first
// rebased against the row's component window, then projected forward
// ("+") or mirrored ("-"). Any other orientation is a
// *BadOrientationError.
func TransformPosition(position int, row *Component) (int, error) {
	position -= row.CompBegin - 1
	switch row.Orientation {
	case "+":
		return position + row.Begin() - 1, nil
	case "-":
		return row.End() - position + 1, nil
	default:
		return 0, &BadOrientationError{Row: row}
	}
}

// Transformer maps feature intervals from component coordinates into
// object coordinates using the component placements of one AGP. A
// component may be placed by several rows (after a split), so lookups
// resolve both the name and the position.
type Transformer struct {
	rows map[string][]*Component
}

// NewTransformer indexes the component rows of an AGP.
func NewTransformer(entries []Entry) *Transformer {
	t := &Transformer{rows: map[string][]*Component{}}
	for _, e := range entries {
		if comp, ok := e.Row.(*Component); ok {
			t.rows[comp.ID] = append(t.rows[comp.ID], comp)
		}
	}
	return t
}

// findRow returns the row whose component window contains the given
// component position.
func (t *Transformer) findRow(name string, position int) (*Component, error) {
	rows, ok := t.rows[name]
	if !ok {
		return nil, &NoSuchContigError{Name: name}
	}
	for _, row := range rows {
		if row.CompBegin <= position && position <= row.CompEnd {
			return row, nil
		}
	}
	return nil, &CoordinateNotFoundError{Name: name, Position: position}
}

// Transform lifts one interval from component to object coordinates.
// Both endpoints are resolved independently and must land on the same
// object; endpoints are re-sorted afterwards since a "-" placement
// inverts their order, and the feature's strand marker is flipped when
// the containing row is reversed. Intervals without coordinates are
// not supported.
func (t *Transformer) Transform(r bed.Range) (bed.Range, error) {
	if !r.HasCoords() {
		return bed.Range{}, fmt.Errorf("cannot transform %q: whole-sequence ranges are not supported", r.Chrom)
	}

	startRow, err := t.findRow(r.Chrom, r.Start)
	if err != nil {
		return bed.Range{}, err
	}
	endRow, err := t.findRow(r.Chrom, r.End)
	if err != nil {
		return bed.Range{}, err
	}
	if startRow.Object() != endRow.Object() {
		return bed.Range{}, fmt.Errorf("range %s spans multiple objects (%s, %s): not supported",
			r.Region(), startRow.Object(), endRow.Object())
	}

	newStart, err := TransformPosition(r.Start, startRow)
	if err != nil {
		return bed.Range{}, err
	}
	newEnd, err := TransformPosition(r.End, endRow)
	if err != nil {
		return bed.Range{}, err
	}
	if newStart > newEnd {
		newStart, newEnd = newEnd, newStart
	}

	out := r
	out.Chrom = startRow.Object()
	out.Start, out.End = newStart, newEnd
	if startRow.Orientation == "-" {
		switch out.Strand {
		case "+":
			out.Strand = "-"
		case "-":
			out.Strand = "+"
		}
	}
	return out, nil
}

// Transform lifts every interval in beds through the component
// placements of the given AGP entries.
func Transform(entries []Entry, beds []bed.Range) ([]bed.Range, error) {
	t := NewTransformer(entries)
	out := make([]bed.Range, 0, len(beds))
	for _, r := range beds {
		lifted, err := t.Transform(r)
		if err != nil {
			return nil, err
		}
		out = append(out, lifted)
	}
	return out, nil
}
