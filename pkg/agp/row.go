// Package agp models AGP assembly layout files and implements the
// coordinate transformations over them: reversal, splitting, joining,
// two-layer composition, renaming, removal, and component-to-object
// coordinate lifting.
//
// An AGP file is tab-separated with nine columns. The first five are
// shared by every row (object, object_beg, object_end, part_number,
// component_type); the remaining four depend on the component type.
// Gap rows (type N or U) carry gap_length, gap_type, linkage, and
// linkage_evidence; all other rows place a component and carry
// component_id, component_beg, component_end, and orientation. See the
// NCBI AGP specification for field semantics:
//
// https://www.ncbi.nlm.nih.gov/assembly/agp/AGP_Specification/
//
// The two row shapes are modelled as *Gap and *Component, both
// implementing Row. Coordinates are 1-based closed intervals
// throughout.
//
// Engines in this package take ownership of the rows they are given:
// rows are mutated in place and returned in new slices, so callers must
// not retain references to input rows across a call.
package agp

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError is returned when an AGP line cannot be parsed: too few
// fields, or a non-integer where an integer is required.
type FormatError struct {
	LineNum int // 0 when the line did not come from a file
	Line    string
}

func (e *FormatError) Error() string {
	if e.LineNum > 0 {
		return fmt.Sprintf("invalid AGP at line %d: %q", e.LineNum, e.Line)
	}
	return fmt.Sprintf("invalid AGP: %q", e.Line)
}

// Row is one non-comment AGP record. It is implemented by exactly two
// types, *Gap and *Component, so the variant-specific columns can only
// be reached through a type switch.
type Row interface {
	// Object returns the name of the object this row belongs to.
	Object() string
	// Begin and End are the row's 1-based closed span on the object.
	Begin() int
	End() int
	// Part returns the 1-based part number of the row within its object.
	Part() int
	// Type returns the component_type column (N/U for gaps).
	Type() string
	// Len returns the span length on the object.
	Len() int
	// Contains reports whether the object position falls within this row.
	Contains(position int) bool
	// Equal reports structural equality: same variant, all fields equal.
	Equal(other Row) bool
	// Clone returns a deep copy of the row.
	Clone() Row
	// String serializes the row back to a tab-separated AGP line.
	String() string

	// common gives engines in this package mutable access to the shared
	// columns and seals the interface against outside implementations.
	common() *rowCommon
}

// rowCommon holds the first five AGP columns shared by both variants.
type rowCommon struct {
	object  string
	begin   int
	end     int
	part    int
	rowType string
}

func (c *rowCommon) Object() string { return c.object }
func (c *rowCommon) Begin() int     { return c.begin }
func (c *rowCommon) End() int       { return c.end }
func (c *rowCommon) Part() int      { return c.part }
func (c *rowCommon) Type() string   { return c.rowType }
func (c *rowCommon) Len() int       { return c.end - c.begin + 1 }

func (c *rowCommon) Contains(position int) bool {
	return c.begin <= position && position <= c.end
}

func (c *rowCommon) equal(o *rowCommon) bool {
	return c.object == o.object &&
		c.begin == o.begin &&
		c.end == o.end &&
		c.part == o.part &&
		c.rowType == o.rowType
}

// Gap is a placeholder row for a run of unknown sequence between
// components. Its component_type is N (known length) or U (unknown).
type Gap struct {
	rowCommon
	GapLength int
	GapType   string
	Linkage   string
	Evidence  string
}

// Default gap parameters used by NewGap.
const (
	DefaultGapLength   = 500
	DefaultGapType     = "scaffold"
	DefaultGapLinkage  = "yes"
	DefaultGapEvidence = "paired-end"
)

// NewGap builds a gap row of type N with the default length, gap type,
// linkage, and evidence. Callers override the variant fields afterwards
// when a different gap specification is needed.
func NewGap(object string, begin, end, part int) *Gap {
	return &Gap{
		rowCommon: rowCommon{object: object, begin: begin, end: end, part: part, rowType: "N"},
		GapLength: DefaultGapLength,
		GapType:   DefaultGapType,
		Linkage:   DefaultGapLinkage,
		Evidence:  DefaultGapEvidence,
	}
}

func (g *Gap) common() *rowCommon { return &g.rowCommon }

func (g *Gap) Clone() Row {
	c := *g
	return &c
}

func (g *Gap) Equal(other Row) bool {
	o, ok := other.(*Gap)
	if !ok {
		return false
	}
	return g.rowCommon.equal(&o.rowCommon) &&
		g.GapLength == o.GapLength &&
		g.GapType == o.GapType &&
		g.Linkage == o.Linkage &&
		g.Evidence == o.Evidence
}

func (g *Gap) String() string {
	return strings.Join([]string{
		g.object,
		strconv.Itoa(g.begin),
		strconv.Itoa(g.end),
		strconv.Itoa(g.part),
		g.rowType,
		strconv.Itoa(g.GapLength),
		g.GapType,
		g.Linkage,
		g.Evidence,
	}, "\t")
}

// Component is a row placing a span of a lower-level sequence unit
// (usually a contig) within an object. CompBegin and CompEnd are
// 1-based closed coordinates on the component; Orientation is "+", "-",
// or an unknown marker such as "?" which transformations leave alone.
type Component struct {
	rowCommon
	ID          string
	CompBegin   int
	CompEnd     int
	Orientation string
}

func (c *Component) common() *rowCommon { return &c.rowCommon }

func (c *Component) Clone() Row {
	o := *c
	return &o
}

func (c *Component) Equal(other Row) bool {
	o, ok := other.(*Component)
	if !ok {
		return false
	}
	return c.rowCommon.equal(&o.rowCommon) &&
		c.ID == o.ID &&
		c.CompBegin == o.CompBegin &&
		c.CompEnd == o.CompEnd &&
		c.Orientation == o.Orientation
}

func (c *Component) String() string {
	return strings.Join([]string{
		c.object,
		strconv.Itoa(c.begin),
		strconv.Itoa(c.end),
		strconv.Itoa(c.part),
		c.rowType,
		c.ID,
		strconv.Itoa(c.CompBegin),
		strconv.Itoa(c.CompEnd),
		c.Orientation,
	}, "\t")
}

// flipOrientation swaps + and -. Unknown markers ("?", "0", "na") are
// left untouched.
func (c *Component) flipOrientation() {
	switch c.Orientation {
	case "+":
		c.Orientation = "-"
	case "-":
		c.Orientation = "+"
	}
}

// ParseRow parses one tab-separated AGP line into a *Gap or a
// *Component, dispatching on the fifth column. Trailing fields beyond
// the ninth are ignored. A *FormatError is returned for short or
// non-numeric input.
func ParseRow(line string) (Row, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) < 9 {
		return nil, &FormatError{Line: line}
	}

	begin, err1 := strconv.Atoi(fields[1])
	end, err2 := strconv.Atoi(fields[2])
	part, err3 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, &FormatError{Line: line}
	}
	common := rowCommon{
		object:  fields[0],
		begin:   begin,
		end:     end,
		part:    part,
		rowType: fields[4],
	}

	if common.rowType == "N" || common.rowType == "U" {
		length, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, &FormatError{Line: line}
		}
		return &Gap{
			rowCommon: common,
			GapLength: length,
			GapType:   fields[6],
			Linkage:   fields[7],
			Evidence:  fields[8],
		}, nil
	}

	compBegin, err1 := strconv.Atoi(fields[6])
	compEnd, err2 := strconv.Atoi(fields[7])
	if err1 != nil || err2 != nil {
		return nil, &FormatError{Line: line}
	}
	return &Component{
		rowCommon:   common,
		ID:          fields[5],
		CompBegin:   compBegin,
		CompEnd:     compEnd,
		Orientation: fields[8],
	}, nil
}
