package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/asmutils/agptool/pkg/agp"
	"github.com/asmutils/agptool/pkg/bed"
)

// openInput opens path for reading; "-" or an empty path means stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// openOutput creates path for writing; "-" or an empty path means stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// readAGP parses the AGP file at path, with "-" meaning stdin.
func readAGP(path string) ([]agp.Entry, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return agp.Read(in)
}

// readBed parses the BED file at path, with "-" meaning stdin.
func readBed(path string) ([]bed.Range, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return bed.Read(in)
}

// writeAGP writes entries to path, with "-" or "" meaning stdout.
func writeAGP(path string, entries []agp.Entry) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return agp.Write(out, entries)
}
