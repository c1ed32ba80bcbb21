package fasta

import (
	"bytes"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := ">ctg1 some description\nACGT\nACGT\n>ctg2\nGGGG\n"
	set, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(set.Order) != 2 || set.Order[0] != "ctg1" || set.Order[1] != "ctg2" {
		t.Errorf("Order = %v", set.Order)
	}
	if set.Sequences["ctg1"] != "ACGTACGT" {
		t.Errorf("ctg1 = %q, want ACGTACGT", set.Sequences["ctg1"])
	}
	if set.Sequences["ctg2"] != "GGGG" {
		t.Errorf("ctg2 = %q, want GGGG", set.Sequences["ctg2"])
	}
}

func TestRead_SequenceBeforeHeader(t *testing.T) {
	if _, err := Read(strings.NewReader("ACGT\n")); err == nil {
		t.Fatal("Read() succeeded on sequence before first header")
	}
}

func TestWrite_Wraps(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "ctg1", "ACGTACGTAC", 4); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := ">ctg1\nACGT\nACGT\nAC\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}

func TestWrite_ZeroWrapUsesDefault(t *testing.T) {
	seq := strings.Repeat("A", DefaultWrap+1)
	var buf bytes.Buffer
	if err := Write(&buf, "ctg", seq, 0); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 || len(lines[1]) != DefaultWrap || lines[2] != "A" {
		t.Errorf("unexpected wrapping: %q", buf.String())
	}
}

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ACGT", "ACGT"},
		{"AAAA", "TTTT"},
		{"ACCGT", "ACGGT"},
		{"acgtN", "Nacgt"},
		{"RYKM", "KMRY"},
	}
	for _, tt := range tests {
		if got := ReverseComplement(tt.in); got != tt.want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReverseComplement_Involution(t *testing.T) {
	seq := "ACGTRYKMBVDHacgtn"
	if got := ReverseComplement(ReverseComplement(seq)); got != seq {
		t.Errorf("double reverse complement = %q, want %q", got, seq)
	}
}
