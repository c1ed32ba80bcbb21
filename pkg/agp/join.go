package agp

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
)

// NotFoundError is returned when objects referenced by an operation are
// absent from the AGP stream. All missing names are collected before
// the error is returned so a caller sees them at once.
type NotFoundError struct {
	Names []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("objects not found in AGP: %s", strings.Join(e.Names, ", "))
}

// UsedTwiceError is returned when a scaffold name appears more than
// once across all join groups, sign stripped.
type UsedTwiceError struct {
	Names []string
}

func (e *UsedTwiceError) Error() string {
	return fmt.Sprintf("scaffolds used 2+ times: %s", strings.Join(e.Names, ", "))
}

// BadNameError is returned for an output object name containing
// characters outside [a-zA-Z0-9._].
type BadNameError struct {
	Name string
}

func (e *BadNameError) Error() string {
	return fmt.Sprintf("bad object name %q: only [a-zA-Z0-9._] allowed", e.Name)
}

// JoinGroup is an ordered list of signed scaffold references to be
// concatenated into one object. A reference may be prefixed with "+" or
// "-" to set its orientation; bare names mean "+". Name, when set,
// overrides the derived output name.
type JoinGroup struct {
	Scaffolds []string
	Name      string
}

// GapSpec describes the synthetic gap rows inserted between joined
// scaffolds. Linkage is always "yes" for these gaps.
type GapSpec struct {
	Size     int
	Type     string
	Evidence string
}

// DefaultGapSpec matches the defaults of the join operation.
func DefaultGapSpec() GapSpec {
	return GapSpec{Size: DefaultGapLength, Type: DefaultGapType, Evidence: "na"}
}

var (
	objectNameRe   = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)
	scaffoldNameRe = regexp.MustCompile(`([a-zA-Z0-9]+)_([a-zA-Z0-9.]+)`)
)

// stripSign removes a leading orientation sign from a scaffold reference.
func stripSign(name string) string {
	return strings.TrimLeft(name, "+-")
}

// ParseJoinGroups reads a joins file: each line is a comma-separated
// list of signed scaffold names, optionally followed by a tab and an
// explicit output name. Using any scaffold in more than one place is a
// *UsedTwiceError.
func ParseJoinGroups(r io.Reader) ([]JoinGroup, error) {
	var groups []JoinGroup
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		columns := strings.Split(line, "\t")
		group := JoinGroup{Scaffolds: strings.Split(columns[0], ",")}
		if len(columns) > 1 {
			if !objectNameRe.MatchString(columns[1]) {
				return nil, &BadNameError{Name: columns[1]}
			}
			group.Name = columns[1]
		}
		groups = append(groups, group)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read joins: %w", err)
	}

	counts := map[string]int{}
	for _, g := range groups {
		for _, s := range g.Scaffolds {
			counts[stripSign(s)]++
		}
	}
	var reused []string
	for name, n := range counts {
		if n > 1 {
			reused = append(reused, name)
		}
	}
	if len(reused) > 0 {
		slices.Sort(reused)
		return nil, &UsedTwiceError{Names: reused}
	}
	return groups, nil
}

// SuperscaffoldName derives an output name from the joined scaffold
// names. When every name matches "prefix_suffix" with a shared prefix,
// the result is the prefix followed by the suffixes joined with "p"
// (scaffold_3 + scaffold_4 + scaffold_5 -> scaffold_3p4p5); otherwise
// the full names are joined with "p".
func SuperscaffoldName(names []string) string {
	prefix := ""
	suffixes := make([]string, 0, len(names))
	for i, name := range names {
		m := scaffoldNameRe.FindStringSubmatch(name)
		if m == nil || (i > 0 && m[1] != prefix) {
			return strings.Join(names, "p")
		}
		prefix = m[1]
		suffixes = append(suffixes, m[2])
	}
	return prefix + "_" + strings.Join(suffixes, "p")
}

// JoinObjects concatenates several row runs into a single object,
// renumbering parts from 1 and offsetting coordinates so the result is
// contiguous from position 1. One gap row per junction is synthesized
// from the gap spec. Each run must already be oriented; callers reverse
// runs with ReverseRows beforehand when needed. If name is empty, one
// is derived with SuperscaffoldName.
//
// The input rows are mutated in place and owned by the returned slice.
func JoinObjects(runs [][]Row, gap GapSpec, name string) []Row {
	if name == "" {
		names := make([]string, len(runs))
		for i, run := range runs {
			names[i] = run[0].Object()
		}
		name = SuperscaffoldName(names)
	}

	partCounter := 1
	offset := 0
	var out []Row
	for i, run := range runs {
		for _, row := range run {
			c := row.common()
			c.object = name
			c.part = partCounter
			partCounter++
			c.begin += offset
			c.end += offset
			out = append(out, row)
		}
		offset = out[len(out)-1].End()

		if i < len(runs)-1 {
			g := NewGap(name, offset+1, offset+gap.Size, partCounter)
			g.GapLength = gap.Size
			g.GapType = gap.Type
			g.Evidence = gap.Evidence
			out = append(out, g)
			partCounter++
			offset = g.End()
		}
	}
	return out
}

// Join assembles each join group into a superscaffold. Entries not
// referenced by any group pass through unchanged and come first in the
// output, followed by the joined objects in group order. Scaffolds
// referenced but never seen in the stream are reported together in a
// *NotFoundError.
func Join(entries []Entry, groups []JoinGroup, gap GapSpec) ([]Entry, error) {
	wanted := map[string][]Row{}
	for _, g := range groups {
		for _, s := range g.Scaffolds {
			wanted[stripSign(s)] = nil
		}
	}

	var out []Entry
	for _, e := range entries {
		if !e.IsComment() {
			if _, ok := wanted[e.Row.Object()]; ok {
				wanted[e.Row.Object()] = append(wanted[e.Row.Object()], e.Row)
				continue
			}
		}
		out = append(out, e)
	}

	var missing []string
	for name, rows := range wanted {
		if len(rows) == 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, &NotFoundError{Names: missing}
	}

	for _, group := range groups {
		runs := make([][]Row, 0, len(group.Scaffolds))
		for _, s := range group.Scaffolds {
			rows := wanted[stripSign(s)]
			if strings.HasPrefix(s, "-") {
				rows = ReverseRows(rows)
			}
			runs = append(runs, rows)
		}
		for _, row := range JoinObjects(runs, gap, group.Name) {
			out = append(out, Entry{Row: row})
		}
	}
	return out, nil
}
