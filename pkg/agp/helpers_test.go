package agp

import (
	"strings"
	"testing"
)

// mustEntries parses an AGP document given as lines, failing the test on
// any format error.
func mustEntries(t *testing.T, lines ...string) []Entry {
	t.Helper()
	entries, err := Read(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return entries
}

// mustRows parses AGP lines into rows, failing the test on error.
func mustRows(t *testing.T, lines ...string) []Row {
	t.Helper()
	return Rows(mustEntries(t, lines...))
}

// linesOf serializes entries back to AGP lines for comparison.
func linesOf(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}

// checkLines compares serialized entries against expected AGP lines.
func checkLines(t *testing.T, entries []Entry, want []string) {
	t.Helper()
	got := linesOf(entries)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\ngot:  %s\nwant: %s",
			len(got), len(want), strings.Join(got, "\n      "), strings.Join(want, "\n      "))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d:\ngot:  %s\nwant: %s", i+1, got[i], want[i])
		}
	}
}
