package agp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// ErrBreakpointOutOfRange is returned by SplitObject when a breakpoint
// falls outside every row of its object. Treating this as fatal rather
// than skipping the breakpoint surfaces typos in breakpoints files.
var ErrBreakpointOutOfRange = errors.New("breakpoint out of range")

// BreakpointsError describes a malformed breakpoints file.
type BreakpointsError struct {
	LineNum int
	Reason  string
}

func (e *BreakpointsError) Error() string {
	return fmt.Sprintf("breakpoints line %d: %s", e.LineNum, e.Reason)
}

// Breakpoints maps an object name to the positions, in object
// coordinates, where it should be broken.
type Breakpoints map[string][]int

// ParseBreakpoints reads a breakpoints file: one object per line, with
// the object name and a comma-separated position list separated by a
// tab. Listing an object twice is an error.
func ParseBreakpoints(r io.Reader) (Breakpoints, error) {
	breakpoints := Breakpoints{}
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, &BreakpointsError{lineNum, "expected two tab-separated columns"}
		}
		if _, ok := breakpoints[fields[0]]; ok {
			return nil, &BreakpointsError{lineNum, fmt.Sprintf("object %q listed twice", fields[0])}
		}
		var positions []int
		for _, s := range strings.Split(fields[1], ",") {
			pos, err := strconv.Atoi(s)
			if err != nil {
				return nil, &BreakpointsError{lineNum, fmt.Sprintf("bad position %q", s)}
			}
			positions = append(positions, pos)
		}
		breakpoints[fields[0]] = positions
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read breakpoints: %w", err)
	}
	return breakpoints, nil
}

// splitComponent divides a component row into len(points)+1 pieces at
// the given object positions, each breakpoint landing in the left
// piece. Component coordinates follow the object pieces exactly: for
// "+" rows the left piece keeps the original component start, while for
// "-" rows the mapping is mirrored, the piece nearest the component end
// covering the lowest object coordinates.
func splitComponent(row *Component, points []int) []Row {
	pieces := []*Component{row}
	slices.Sort(points)
	for _, point := range points {
		left := pieces[len(pieces)-1]
		pieces = pieces[:len(pieces)-1]
		right := left.Clone().(*Component)

		leftLen := point - left.begin + 1
		right.begin = point + 1
		right.part = left.part + 1
		left.end = point

		switch left.Orientation {
		case "-":
			right.CompEnd = left.CompEnd - leftLen
			left.CompBegin = left.CompEnd - leftLen + 1
		default:
			left.CompEnd = left.CompBegin + leftLen - 1
			right.CompBegin = left.CompEnd + 1
		}
		pieces = append(pieces, left, right)
	}

	rows := make([]Row, len(pieces))
	for i, p := range pieces {
		rows[i] = p
	}
	return rows
}

// standalone rewrites rows so they form their own object: the object
// name is replaced and coordinates and part numbers are shifted so the
// first row starts at position 1, part 1.
func standalone(name string, rows []Row) []Row {
	posOffset := rows[0].Begin() - 1
	partOffset := rows[0].Part() - 1
	for _, row := range rows {
		c := row.common()
		c.object = name
		c.begin -= posOffset
		c.end -= posOffset
		c.part -= partOffset
	}
	return rows
}

// SplitObject breaks one object's full row run at the given positions,
// producing the rows of len(points)+1 independent sub-objects named
// "<object>.1", "<object>.2", and so on. A breakpoint inside a gap
// drops the gap and ends the current sub-object; a breakpoint inside a
// component divides the component, the breakpoint position going to the
// left piece. A breakpoint outside every row fails with
// ErrBreakpointOutOfRange.
func SplitObject(rows []Row, points []int) ([]Row, error) {
	for _, point := range points {
		inRange := false
		for _, row := range rows {
			if row.Contains(point) {
				inRange = true
				break
			}
		}
		if !inRange {
			return nil, fmt.Errorf("%w: position %d in object %s",
				ErrBreakpointOutOfRange, point, rows[0].Object())
		}
	}

	var out []Row
	var current []Row
	subCounter := 1

	flush := func(rows []Row) {
		if len(rows) == 0 {
			return
		}
		name := fmt.Sprintf("%s.%d", rows[0].Object(), subCounter)
		out = append(out, standalone(name, rows)...)
		subCounter++
	}

	for _, row := range rows {
		var contained []int
		for _, point := range points {
			if row.Contains(point) {
				contained = append(contained, point)
			}
		}
		if len(contained) == 0 {
			current = append(current, row)
			continue
		}

		if _, isGap := row.(*Gap); isGap {
			// the gap itself is dropped from the output
			flush(current)
			current = nil
			continue
		}

		pieces := splitComponent(row.(*Component), contained)
		// first piece ends the current sub-object, last piece starts
		// the next one, and any middle pieces stand alone
		flush(append(current, pieces[0]))
		for _, middle := range pieces[1 : len(pieces)-1] {
			flush([]Row{middle})
		}
		current = []Row{pieces[len(pieces)-1]}
	}
	flush(current)

	return out, nil
}

// Split applies SplitObject to every object named in breakpoints,
// passing all other entries through unchanged. Objects named in
// breakpoints but absent from the stream are ignored; positions that
// miss their object's rows are fatal.
func Split(entries []Entry, breakpoints Breakpoints) ([]Entry, error) {
	var out []Entry
	err := objectRuns(entries,
		func(comment Entry) { out = append(out, comment) },
		func(rows []Row) error {
			points, ok := breakpoints[rows[0].Object()]
			if !ok {
				for _, row := range rows {
					out = append(out, Entry{Row: row})
				}
				return nil
			}
			split, err := SplitObject(rows, points)
			if err != nil {
				return err
			}
			for _, row := range split {
				out = append(out, Entry{Row: row})
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}
