// Package bed parses and serializes BED-like interval records.
//
// The format consumed here is a tab-separated subset of BED using
// 1-based closed intervals:
//
//	chrom [start end [strand [extra...]]]
//
// A line with only a sequence name denotes the whole sequence. A line
// with exactly two fields is malformed.
package bed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError describes a malformed BED line.
type ParseError struct {
	LineNum int
	Line    string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.LineNum, e.Reason, e.Line)
}

// Range is one BED record. Start and End are 1-based inclusive; both
// zero means the range names a whole sequence with no coordinates.
// Strand is "+", "-", or empty. Extra holds any trailing fields, which
// are passed through untouched.
type Range struct {
	Chrom  string
	Start  int
	End    int
	Strand string
	Extra  []string
}

// HasCoords reports whether the range carries explicit start/end
// coordinates, as opposed to naming a whole sequence.
func (r Range) HasCoords() bool { return r.Start != 0 || r.End != 0 }

// String serializes the range back to a tab-separated line.
func (r Range) String() string {
	fields := []string{r.Chrom}
	if r.HasCoords() {
		fields = append(fields, strconv.Itoa(r.Start), strconv.Itoa(r.End))
		if r.Strand != "" {
			fields = append(fields, r.Strand)
		}
		fields = append(fields, r.Extra...)
	}
	return strings.Join(fields, "\t")
}

// Region formats the range as "chrom:start-end" for error messages.
func (r Range) Region() string {
	if !r.HasCoords() {
		return r.Chrom
	}
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start, r.End)
}

// Read parses all records from r. Parsing stops at the first malformed
// line, returning a *ParseError that carries the line number.
func Read(r io.Reader) ([]Range, error) {
	var ranges []Range
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		rng, err := parseLine(line, lineNum)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, rng)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read bed: %w", err)
	}
	return ranges, nil
}

func parseLine(line string, lineNum int) (Range, error) {
	fields := strings.Split(line, "\t")
	switch {
	case len(fields) == 1:
		return Range{Chrom: fields[0]}, nil
	case len(fields) == 2:
		return Range{}, &ParseError{lineNum, line, "expected 1 or 3+ fields"}
	}

	start, err := strconv.Atoi(fields[1])
	if err != nil {
		return Range{}, &ParseError{lineNum, line, "start is not an integer"}
	}
	end, err := strconv.Atoi(fields[2])
	if err != nil {
		return Range{}, &ParseError{lineNum, line, "end is not an integer"}
	}

	rng := Range{Chrom: fields[0], Start: start, End: end}
	rest := fields[3:]
	if len(rest) > 0 && (rest[0] == "+" || rest[0] == "-") {
		rng.Strand = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 {
		rng.Extra = rest
	}
	return rng, nil
}

// Write serializes ranges to w, one per line.
func Write(w io.Writer, ranges []Range) error {
	bw := bufio.NewWriter(w)
	for _, r := range ranges {
		if _, err := bw.WriteString(r.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
