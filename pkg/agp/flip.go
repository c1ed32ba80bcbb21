package agp

import (
	"fmt"

	"github.com/asmutils/agptool/pkg/bed"
)

// EmptyRangeError is returned by Flip when a requested range matches no
// rows at all.
type EmptyRangeError struct {
	Range bed.Range
}

func (e *EmptyRangeError) Error() string {
	return fmt.Sprintf("the range %s does not contain any components", e.Range.Region())
}

// BadRangeError is returned by Flip when a requested range starts or
// ends strictly inside a row. Splitting a component during a flip is
// not supported; split the object first.
type BadRangeError struct {
	Range bed.Range
}

func (e *BadRangeError) Error() string {
	return fmt.Sprintf("the range %s starts and/or ends in the middle of a component", e.Range.Region())
}

// Flip reverse-complements every row falling within each of the given
// ranges, leaving all other entries untouched. A range without
// coordinates flips the named object in its entirety; a range with
// coordinates must cover its matched rows exactly, or a *BadRangeError
// is returned. A range matching nothing yields an *EmptyRangeError.
//
// Rows are mutated and replaced in place within the returned entries.
func Flip(entries []Entry, ranges []bed.Range) ([]Entry, error) {
	for _, rng := range ranges {
		var indices []int
		var rows []Row
		for i, e := range entries {
			if e.IsComment() || e.Row.Object() != rng.Chrom {
				continue
			}
			row := e.Row
			switch {
			case !rng.HasCoords():
				// no coordinates: flip the whole object
				indices = append(indices, i)
				rows = append(rows, row)
			case row.Begin() >= rng.Start && row.End() <= rng.End:
				indices = append(indices, i)
				rows = append(rows, row)
			case row.Contains(rng.Start) || row.Contains(rng.End):
				return nil, &BadRangeError{Range: rng}
			}
		}
		if len(rows) == 0 {
			return nil, &EmptyRangeError{Range: rng}
		}

		for j, row := range ReverseRows(rows) {
			entries[indices[j]] = Entry{Row: row}
		}
	}
	return entries, nil
}
