package chores

import (
	"io"
	"strings"

	"github.com/ezrec/elfsim/internal"
)

// Sections is an inclusive range of section ids.
type Sections struct {
	First int
	Last  int
}

// Contains reports if other lies entirely within the sections.
func (s Sections) Contains(other Sections) bool {
	return other.First >= s.First && other.Last <= s.Last
}

// Overlaps reports if the two ranges share any section.
func (s Sections) Overlaps(other Sections) bool {
	return s.First <= other.Last && other.First <= s.Last
}

func parseSections(text string) (s Sections, err error) {
	first, last, ok := strings.Cut(text, "-")
	if !ok {
		err = ErrRangeInvalid
		return
	}
	if s.First, err = parseNumber(first); err != nil {
		return
	}
	if s.Last, err = parseNumber(last); err != nil {
		return
	}
	if s.First > s.Last {
		err = ErrRangeInvalid
	}
	return
}

// Cleanup counts the assignment pairs where one range contains the other,
// and where the ranges overlap at all.
func Cleanup(input io.Reader) (contained int, overlapping int, err error) {
	lines, err := internal.ReadLines(input)
	if err != nil {
		return
	}

	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if len(text) == 0 {
			continue
		}

		var a, b Sections
		left, right, ok := strings.Cut(text, ",")
		if !ok {
			err = ErrFieldsInvalid
		}
		if err == nil {
			a, err = parseSections(left)
		}
		if err == nil {
			b, err = parseSections(right)
		}
		if err != nil {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}

		if a.Contains(b) || b.Contains(a) {
			contained++
		}
		if a.Overlaps(b) {
			overlapping++
		}
	}

	return
}
