package agp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one line of an AGP file: either a verbatim comment (lines
// starting with "#") or a parsed row. Exactly one of the two fields is
// set. Comments flow through every engine untouched and take no part in
// object grouping.
type Entry struct {
	Comment string
	Row     Row
}

// IsComment reports whether the entry is a comment line.
func (e Entry) IsComment() bool { return e.Row == nil }

// String returns the entry's serialized AGP line.
func (e Entry) String() string {
	if e.Row != nil {
		return e.Row.String()
	}
	return e.Comment
}

// RowEntry wraps a row as an Entry.
func RowEntry(r Row) Entry { return Entry{Row: r} }

// Read parses an entire AGP stream. Blank lines are rejected the same
// way as any other malformed row; a *FormatError carries the offending
// line and its number.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			entries = append(entries, Entry{Comment: line})
			continue
		}
		row, err := ParseRow(line)
		if err != nil {
			return nil, &FormatError{LineNum: lineNum, Line: line}
		}
		entries = append(entries, Entry{Row: row})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read agp: %w", err)
	}
	return entries, nil
}

// ReadFile parses the AGP file at path.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write serializes entries to w, one line each.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(e.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Rows extracts the parsed rows from entries, dropping comments.
func Rows(entries []Entry) []Row {
	var rows []Row
	for _, e := range entries {
		if e.Row != nil {
			rows = append(rows, e.Row)
		}
	}
	return rows
}

// objectRuns walks entries and calls fn once per contiguous run of rows
// sharing an object name. Comments are delivered through comment as
// they are encountered, which also terminates the current run. Rows of
// one object are contiguous in a valid AGP, so each object is seen
// exactly once.
func objectRuns(entries []Entry, comment func(Entry), fn func(rows []Row) error) error {
	var run []Row
	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		err := fn(run)
		run = nil
		return err
	}
	for _, e := range entries {
		if e.IsComment() {
			if err := flush(); err != nil {
				return err
			}
			comment(e)
			continue
		}
		if len(run) > 0 && run[0].Object() != e.Row.Object() {
			if err := flush(); err != nil {
				return err
			}
		}
		run = append(run, e.Row)
	}
	return flush()
}
