// Package fasta provides the minimal FASTA handling the assembly
// commands need: reading a contig collection into memory, writing
// wrapped records, and reverse-complementing sequences.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultWrap is the number of bases per line written by Write.
const DefaultWrap = 60

// Set holds named sequences plus their input order.
type Set struct {
	Sequences map[string]string
	Order     []string
}

// Read parses FASTA records from r into memory. The record ID is the
// first whitespace-separated token of the header; the description is
// dropped. Sequence lines are concatenated verbatim.
func Read(r io.Reader) (*Set, error) {
	set := &Set{Sequences: map[string]string{}}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var name string
	var seq strings.Builder
	flush := func() {
		if name == "" {
			return
		}
		set.Sequences[name] = seq.String()
		set.Order = append(set.Order, name)
		seq.Reset()
	}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			name = strings.Fields(line[1:])[0]
			continue
		}
		if name == "" {
			return nil, fmt.Errorf("fasta line %d: sequence before first header", lineNum)
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fasta: %w", err)
	}
	flush()
	return set, nil
}

// ReadFile parses the FASTA file at path.
func ReadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write emits one FASTA record with the sequence wrapped to wrap bases
// per line. A wrap of zero or less falls back to DefaultWrap.
func Write(w io.Writer, name, sequence string, wrap int) error {
	if wrap <= 0 {
		wrap = DefaultWrap
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, ">%s\n", name); err != nil {
		return err
	}
	for start := 0; start < len(sequence); start += wrap {
		end := min(start+wrap, len(sequence))
		if _, err := bw.WriteString(sequence[start:end]); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

var complement = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	for _, p := range []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'}, {'a', 't'}, {'c', 'g'},
		{'R', 'Y'}, {'r', 'y'}, {'K', 'M'}, {'k', 'm'},
		{'B', 'V'}, {'b', 'v'}, {'D', 'H'}, {'d', 'h'},
	} {
		t[p.a], t[p.b] = p.b, p.a
	}
	return t
}()

// ReverseComplement returns the reverse complement of a nucleotide
// sequence, preserving case. Ambiguity codes map to their IUPAC
// complements; anything unrecognized is left as-is.
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[len(seq)-1-i] = complement[seq[i]]
	}
	return string(out)
}
