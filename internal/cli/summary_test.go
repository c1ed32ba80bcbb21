package cli

import (
	"strings"
	"testing"

	"github.com/asmutils/agptool/pkg/agp"
)

func TestSummarize(t *testing.T) {
	entries, err := agp.Read(strings.NewReader(
		"# comment\n" +
			"scaffold_1\t1\t1000\t1\tW\tctg1\t1\t1000\t+\n" +
			"scaffold_1\t1001\t1500\t2\tN\t500\tscaffold\tyes\tna\n" +
			"scaffold_1\t1501\t2000\t3\tW\tctg2\t1\t500\t-\n" +
			"scaffold_2\t1\t700\t1\tW\tctg3\t1\t700\t+\n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	got := summarize(entries)

	if len(got) != 2 {
		t.Fatalf("summarize() returned %d objects, want 2", len(got))
	}
	s1 := got[0]
	if s1.name != "scaffold_1" || s1.length != 2000 || s1.components != 2 || s1.gaps != 1 || s1.gapBases != 500 {
		t.Errorf("scaffold_1 summary = %+v", s1)
	}
	if len(s1.rows) != 3 {
		t.Errorf("scaffold_1 has %d rows, want 3", len(s1.rows))
	}
	s2 := got[1]
	if s2.name != "scaffold_2" || s2.length != 700 || s2.components != 1 || s2.gaps != 0 {
		t.Errorf("scaffold_2 summary = %+v", s2)
	}
}
