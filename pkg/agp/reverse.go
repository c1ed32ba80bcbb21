package agp

// ReverseRows rewrites a contiguous run of rows as its reverse
// complement: output order is the reverse of input order, object
// coordinates and part numbers are recomputed by counting back from the
// run's bounds, and component orientations are flipped. Gap rows keep
// their variant fields. The rows must be sorted by ascending object
// position and may cover an entire object or any caller-isolated
// sub-range.
//
// Applying ReverseRows twice restores the original coordinates, order,
// part numbers, and orientations exactly.
//
// The input rows are mutated in place; callers hand over ownership and
// should use only the returned slice.
func ReverseRows(rows []Row) []Row {
	if len(rows) == 0 {
		return nil
	}

	firstPart := rows[0].Part()
	lastPart := rows[len(rows)-1].Part()
	lo := rows[0].Begin()
	hi := rows[len(rows)-1].End()

	reversed := make([]Row, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		c := row.common()
		c.begin, c.end = lo+hi-c.end, lo+hi-c.begin
		c.part = firstPart + lastPart - c.part
		if comp, ok := row.(*Component); ok {
			comp.flipOrientation()
		}
		reversed = append(reversed, row)
	}
	return reversed
}
