package bed

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := "scaffold_1\t100\t200\n" +
		"scaffold_2\n" +
		"scaffold_3\t5\t50\t-\n" +
		"scaffold_4\t1\t10\t+\tgene1\t960\n" +
		"scaffold_5\t1\t10\tgene2\n"

	got, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []Range{
		{Chrom: "scaffold_1", Start: 100, End: 200},
		{Chrom: "scaffold_2"},
		{Chrom: "scaffold_3", Start: 5, End: 50, Strand: "-"},
		{Chrom: "scaffold_4", Start: 1, End: 10, Strand: "+", Extra: []string{"gene1", "960"}},
		{Chrom: "scaffold_5", Start: 1, End: 10, Extra: []string{"gene2"}},
	}
	if len(got) != len(want) {
		t.Fatalf("Read() returned %d ranges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Chrom != want[i].Chrom || got[i].Start != want[i].Start ||
			got[i].End != want[i].End || got[i].Strand != want[i].Strand {
			t.Errorf("range %d = %+v, want %+v", i+1, got[i], want[i])
		}
	}
	if len(got[3].Extra) != 2 || got[3].Extra[0] != "gene1" {
		t.Errorf("range 4 Extra = %v", got[3].Extra)
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"two fields", "scaffold_1\t100\n"},
		{"bad start", "scaffold_1\tx\t200\n"},
		{"bad end", "scaffold_1\t100\ty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Read() error = %v, want *ParseError", err)
			}
			if parseErr.LineNum != 1 {
				t.Errorf("LineNum = %d, want 1", parseErr.LineNum)
			}
		})
	}
}

func TestRange_HasCoords(t *testing.T) {
	if (Range{Chrom: "s"}).HasCoords() {
		t.Error("whole-sequence range reports coordinates")
	}
	if !(Range{Chrom: "s", Start: 1, End: 2}).HasCoords() {
		t.Error("coordinate range reports no coordinates")
	}
}

func TestRange_Region(t *testing.T) {
	if got := (Range{Chrom: "s", Start: 5, End: 10}).Region(); got != "s:5-10" {
		t.Errorf("Region() = %q, want s:5-10", got)
	}
	if got := (Range{Chrom: "s"}).Region(); got != "s" {
		t.Errorf("Region() = %q, want s", got)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	input := "scaffold_1\t100\t200\nscaffold_2\nscaffold_3\t5\t50\t-\tgeneX\n"
	ranges, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, ranges); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != input {
		t.Errorf("round trip changed the document:\ngot:  %q\nwant: %q", buf.String(), input)
	}
}
