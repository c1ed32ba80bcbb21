package agp

import (
	"errors"
	"strings"
	"testing"
)

func TestParseBreakpoints(t *testing.T) {
	input := "scaffold_1\t300,600\nscaffold_2\t1200\n"
	got, err := ParseBreakpoints(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseBreakpoints() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("parsed %d objects, want 2", len(got))
	}
	if len(got["scaffold_1"]) != 2 || got["scaffold_1"][0] != 300 || got["scaffold_1"][1] != 600 {
		t.Errorf("scaffold_1 positions = %v, want [300 600]", got["scaffold_1"])
	}
	if len(got["scaffold_2"]) != 1 || got["scaffold_2"][0] != 1200 {
		t.Errorf("scaffold_2 positions = %v, want [1200]", got["scaffold_2"])
	}
}

func TestParseBreakpoints_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing positions", "scaffold_1\n"},
		{"extra column", "scaffold_1\t300\textra\n"},
		{"non-integer position", "scaffold_1\t300,abc\n"},
		{"object listed twice", "scaffold_1\t300\nscaffold_1\t600\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBreakpoints(strings.NewReader(tt.input))
			var bpErr *BreakpointsError
			if !errors.As(err, &bpErr) {
				t.Errorf("ParseBreakpoints() error = %v, want *BreakpointsError", err)
			}
		})
	}
}

func TestSplitObject_BreakpointInGap(t *testing.T) {
	rows := mustRows(t,
		"scfA\t1\t1000\t1\tW\tctg1\t1\t1000\t+",
		"scfA\t1001\t1500\t2\tN\t500\tscaffold\tyes\tpaired-end",
		"scfA\t1501\t2200\t3\tW\tctg2\t1\t700\t+",
	)

	got, err := SplitObject(rows, []int{1200})
	if err != nil {
		t.Fatalf("SplitObject() error = %v", err)
	}

	want := []string{
		"scfA.1\t1\t1000\t1\tW\tctg1\t1\t1000\t+",
		"scfA.2\t1\t700\t1\tW\tctg2\t1\t700\t+",
	}
	if len(got) != len(want) {
		t.Fatalf("SplitObject() returned %d rows, want %d", len(got), len(want))
	}
	for i, row := range got {
		if row.String() != want[i] {
			t.Errorf("row %d:\ngot:  %s\nwant: %s", i+1, row.String(), want[i])
		}
	}
}

func TestSplitObject_BreakpointInForwardComponent(t *testing.T) {
	rows := mustRows(t, "scfd1\t1\t1000\t1\tW\tctg1\t1\t1000\t+")

	got, err := SplitObject(rows, []int{300})
	if err != nil {
		t.Fatalf("SplitObject() error = %v", err)
	}

	want := []string{
		"scfd1.1\t1\t300\t1\tW\tctg1\t1\t300\t+",
		"scfd1.2\t1\t700\t1\tW\tctg1\t301\t1000\t+",
	}
	for i, row := range got {
		if row.String() != want[i] {
			t.Errorf("row %d:\ngot:  %s\nwant: %s", i+1, row.String(), want[i])
		}
	}
}

func TestSplitObject_BreakpointInReverseComponent(t *testing.T) {
	// a breakpoint at object position p on a "-" row takes the HIGH end
	// of the component window, mirroring the coordinate mapping
	rows := mustRows(t, "scfd2\t1\t1000\t1\tW\tctg2\t1\t1000\t-")

	got, err := SplitObject(rows, []int{300})
	if err != nil {
		t.Fatalf("SplitObject() error = %v", err)
	}

	want := []string{
		"scfd2.1\t1\t300\t1\tW\tctg2\t701\t1000\t-",
		"scfd2.2\t1\t700\t1\tW\tctg2\t1\t700\t-",
	}
	for i, row := range got {
		if row.String() != want[i] {
			t.Errorf("row %d:\ngot:  %s\nwant: %s", i+1, row.String(), want[i])
		}
	}
}

func TestSplitObject_MultipleBreakpointsOneComponent(t *testing.T) {
	rows := mustRows(t, "scfA\t1\t1000\t1\tW\tctg1\t1\t1000\t+")

	got, err := SplitObject(rows, []int{600, 300})
	if err != nil {
		t.Fatalf("SplitObject() error = %v", err)
	}

	want := []string{
		"scfA.1\t1\t300\t1\tW\tctg1\t1\t300\t+",
		"scfA.2\t1\t300\t1\tW\tctg1\t301\t600\t+",
		"scfA.3\t1\t400\t1\tW\tctg1\t601\t1000\t+",
	}
	if len(got) != len(want) {
		t.Fatalf("SplitObject() returned %d rows, want %d", len(got), len(want))
	}
	for i, row := range got {
		if row.String() != want[i] {
			t.Errorf("row %d:\ngot:  %s\nwant: %s", i+1, row.String(), want[i])
		}
	}
}

func TestSplitObject_OutOfRange(t *testing.T) {
	rows := mustRows(t, "scfA\t1\t1000\t1\tW\tctg1\t1\t1000\t+")
	_, err := SplitObject(rows, []int{5000})
	if !errors.Is(err, ErrBreakpointOutOfRange) {
		t.Fatalf("SplitObject() error = %v, want ErrBreakpointOutOfRange", err)
	}
}

func TestSplit_PassthroughAndComments(t *testing.T) {
	entries := mustEntries(t,
		"# built by upstream pipeline",
		"scfd3\t1\t1000\t1\tW\tctg3\t1\t1000\t+",
		"scfd3\t1001\t1500\t2\tN\t500\tscaffold\tyes\tpaired-end",
		"scfd3\t1501\t2500\t3\tW\tctg4\t1\t1000\t-",
		"other\t1\t100\t1\tW\tctg5\t1\t100\t+",
	)

	got, err := Split(entries, Breakpoints{"scfd3": {1800}})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	checkLines(t, got, []string{
		"# built by upstream pipeline",
		"scfd3.1\t1\t1000\t1\tW\tctg3\t1\t1000\t+",
		"scfd3.1\t1001\t1500\t2\tN\t500\tscaffold\tyes\tpaired-end",
		"scfd3.1\t1501\t1800\t3\tW\tctg4\t701\t1000\t-",
		"scfd3.2\t1\t700\t1\tW\tctg4\t1\t700\t-",
		"other\t1\t100\t1\tW\tctg5\t1\t100\t+",
	})
}

func TestSplit_MissingObjectIgnored(t *testing.T) {
	entries := mustEntries(t, "scfA\t1\t1000\t1\tW\tctg1\t1\t1000\t+")
	got, err := Split(entries, Breakpoints{"absent": {10}})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	checkLines(t, got, []string{"scfA\t1\t1000\t1\tW\tctg1\t1\t1000\t+"})
}
