package agp

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const sampleAGP = `# DESCRIPTION: test assembly
scaffold_1	1	1000	1	W	ctg1	1	1000	+
scaffold_1	1001	1500	2	N	500	scaffold	yes	paired-end
scaffold_1	1501	2000	3	W	ctg2	1	500	-
scaffold_2	1	700	1	W	ctg3	1	700	+
`

func TestRead(t *testing.T) {
	entries, err := Read(strings.NewReader(sampleAGP))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("Read() returned %d entries, want 5", len(entries))
	}
	if !entries[0].IsComment() || entries[0].Comment != "# DESCRIPTION: test assembly" {
		t.Errorf("first entry = %q, want the comment line", entries[0].String())
	}
	if got := len(Rows(entries)); got != 4 {
		t.Errorf("Rows() returned %d rows, want 4", got)
	}
}

func TestRead_ReportsLineNumber(t *testing.T) {
	_, err := Read(strings.NewReader("scaffold_1\t1\t10\t1\tW\tctg1\t1\t10\t+\nnot an agp line\n"))
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("Read() error = %v, want *FormatError", err)
	}
	if formatErr.LineNum != 2 {
		t.Errorf("LineNum = %d, want 2", formatErr.LineNum)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	entries, err := Read(strings.NewReader(sampleAGP))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, entries); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != sampleAGP {
		t.Errorf("round trip changed the document:\ngot:\n%s\nwant:\n%s", buf.String(), sampleAGP)
	}
}
