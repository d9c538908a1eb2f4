package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse decodes rows of ASCII decimal digits into a GridGraph, one cell per
// byte. A trailing carriage return on each row is dropped and trailing blank
// rows are ignored; any other blank row is a ragged row.
//
// Every error returned matches ErrFormat.
func Parse(lines []string) (*GridGraph, error) {
	for len(lines) > 0 && strings.TrimRight(lines[len(lines)-1], "\r") == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	values := make([][]int, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidDigit, c, y, x)
			}
			row[x] = int(c - '0')
		}
		values[y] = row
	}

	return NewGridGraph(values)
}

// ReadLines splits r into lines without their terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read lines: %w", err)
	}
	return lines, nil
}
