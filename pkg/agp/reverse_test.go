package agp

import "testing"

func TestReverseRows(t *testing.T) {
	rows := mustRows(t,
		"scaffold_1\t1\t1000\t1\tW\tctg1\t1\t1000\t+",
		"scaffold_1\t1001\t1500\t2\tN\t500\tscaffold\tyes\tpaired-end",
		"scaffold_1\t1501\t2000\t3\tW\tctg2\t1\t500\t-",
	)

	got := ReverseRows(rows)

	want := []string{
		"scaffold_1\t1\t500\t1\tW\tctg2\t1\t500\t+",
		"scaffold_1\t501\t1000\t2\tN\t500\tscaffold\tyes\tpaired-end",
		"scaffold_1\t1001\t2000\t3\tW\tctg1\t1\t1000\t-",
	}
	for i, row := range got {
		if row.String() != want[i] {
			t.Errorf("row %d:\ngot:  %s\nwant: %s", i+1, row.String(), want[i])
		}
	}
}

func TestReverseRows_Involution(t *testing.T) {
	lines := []string{
		"s\t1\t100\t1\tW\tctgA\t1\t100\t+",
		"s\t101\t150\t2\tN\t50\tcontig\tno\tna",
		"s\t151\t400\t3\tW\tctgB\t11\t260\t-",
		"s\t401\t500\t4\tW\tctgC\t1\t100\t?",
	}
	rows := mustRows(t, lines...)
	original := make([]Row, len(rows))
	for i, r := range rows {
		original[i] = r.Clone()
	}

	twice := ReverseRows(ReverseRows(rows))

	for i, row := range twice {
		if !row.Equal(original[i]) {
			t.Errorf("row %d after double reversal:\ngot:  %s\nwant: %s", i+1, row.String(), original[i].String())
		}
	}
}

func TestReverseRows_KeepsUnknownOrientation(t *testing.T) {
	rows := mustRows(t, "s\t1\t100\t1\tW\tctg\t1\t100\t?")
	got := ReverseRows(rows)[0].(*Component)
	if got.Orientation != "?" {
		t.Errorf("Orientation = %q, want ?", got.Orientation)
	}
}

func TestReverseRows_SubRange(t *testing.T) {
	// reversing rows 2-3 of an object leaves the span 1001-2000 in place
	rows := mustRows(t,
		"s\t1001\t1500\t2\tN\t500\tscaffold\tyes\tna",
		"s\t1501\t2000\t3\tW\tctg2\t1\t500\t-",
	)
	got := ReverseRows(rows)
	want := []string{
		"s\t1001\t1500\t2\tW\tctg2\t1\t500\t+",
		"s\t1501\t2000\t3\tN\t500\tscaffold\tyes\tna",
	}
	for i, row := range got {
		if row.String() != want[i] {
			t.Errorf("row %d:\ngot:  %s\nwant: %s", i+1, row.String(), want[i])
		}
	}
}

func TestReverseRows_Empty(t *testing.T) {
	if got := ReverseRows(nil); got != nil {
		t.Errorf("ReverseRows(nil) = %v, want nil", got)
	}
}
