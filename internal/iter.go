package internal

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Line is a single input line with its 1-based line number.
type Line struct {
	LineNo int
	Text   string
}

// ReadLines reads all lines from the input, stripping trailing carriage returns.
func ReadLines(input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	lineno := 0
	for scanner.Scan() {
		lineno++
		lines = append(lines, Line{
			LineNo: lineno,
			Text:   strings.TrimRight(scanner.Text(), "\r"),
		})
	}

	err = scanner.Err()

	return
}

// Blank reports if the line holds only white space.
func (line Line) Blank() bool {
	return len(strings.TrimSpace(line.Text)) == 0
}

// Paragraphs yields the runs of non-blank lines separated by blank lines.
func Paragraphs(lines []Line) iter.Seq[[]Line] {
	return func(yield func([]Line) bool) {
		start := -1
		for n, line := range lines {
			if line.Blank() {
				if start >= 0 {
					if !yield(lines[start:n]) {
						return // Stop if the consumer stops
					}
					start = -1
				}
				continue
			}
			if start < 0 {
				start = n
			}
		}
		if start >= 0 {
			yield(lines[start:])
		}
	}
}
