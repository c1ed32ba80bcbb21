package agp

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// RenameEntry is the new name and orientation for one object.
type RenameEntry struct {
	NewName     string
	Orientation string // "+" keeps the row order, "-" reverses the object
}

// RenameMapError describes a malformed rename-map file.
type RenameMapError struct {
	LineNum int
	Reason  string
}

func (e *RenameMapError) Error() string {
	return fmt.Sprintf("rename map line %d: %s", e.LineNum, e.Reason)
}

// ParseRenameMap reads a rename-map file with two or three tab-separated
// columns: old name, new name, and an optional orientation that defaults
// to "+".
func ParseRenameMap(r io.Reader) (map[string]RenameEntry, error) {
	renames := map[string]RenameEntry{}
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, &RenameMapError{lineNum, "expected at least two tab-separated columns"}
		}
		entry := RenameEntry{NewName: fields[1], Orientation: "+"}
		if len(fields) >= 3 {
			if fields[2] != "+" && fields[2] != "-" {
				return nil, &RenameMapError{lineNum, fmt.Sprintf("orientation column must be + or -, got %q", fields[2])}
			}
			entry.Orientation = fields[2]
		}
		renames[fields[0]] = entry
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read rename map: %w", err)
	}
	return renames, nil
}

// Rename renames whole objects in place, reversing any whose map entry
// carries a "-" orientation. Old names that never appeared in the
// stream are reported together in a *NotFoundError.
func Rename(entries []Entry, renames map[string]RenameEntry) ([]Entry, error) {
	renamed := map[string]bool{}
	var out []Entry
	err := objectRuns(entries,
		func(comment Entry) { out = append(out, comment) },
		func(rows []Row) error {
			if entry, ok := renames[rows[0].Object()]; ok {
				renamed[rows[0].Object()] = true
				for _, row := range rows {
					row.common().object = entry.NewName
				}
				if entry.Orientation == "-" {
					rows = ReverseRows(rows)
				}
			}
			for _, row := range rows {
				out = append(out, Entry{Row: row})
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	var missing []string
	for name := range renames {
		if !renamed[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, &NotFoundError{Names: missing}
	}
	return out, nil
}
