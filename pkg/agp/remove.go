package agp

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ParseObjectList reads a file containing one object name per line.
func ParseObjectList(r io.Reader) (map[string]bool, error) {
	names := map[string]bool{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name != "" {
			names[name] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read object list: %w", err)
	}
	return names, nil
}

// Remove drops every row belonging to the named objects, keeping
// comments and all other rows. Names that never matched a row are
// reported together in a *NotFoundError.
func Remove(entries []Entry, names map[string]bool) ([]Entry, error) {
	removed := map[string]bool{}
	var out []Entry
	for _, e := range entries {
		if !e.IsComment() && names[e.Row.Object()] {
			removed[e.Row.Object()] = true
			continue
		}
		out = append(out, e)
	}

	var missing []string
	for name := range names {
		if !removed[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, &NotFoundError{Names: missing}
	}
	return out, nil
}
