package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineLength bounds a single description or input line.
const maxLineLength = 1 << 20

// Scan reads the significant lines of r: line terminators are stripped, and
// empty lines and lines starting with '#' are skipped. Whitespace-only lines
// are kept; they carry meaning for the description format.
func Scan(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Source implements ports.LineSource over a file on disk.
type Source struct {
	Path string
}

// NewSource creates a line source for path.
func NewSource(path string) *Source {
	return &Source{Path: path}
}

// Lines opens the file, scans it and closes it again.
func (s *Source) Lines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", s.Path, err)
	}
	defer f.Close()

	lines, err := Scan(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", s.Path, err)
	}
	return lines, nil
}
