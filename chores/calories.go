package chores

import (
	"io"
	"slices"
	"strings"

	"github.com/ezrec/elfsim/internal"
)

// Calories sums each elf's blank line separated inventory, and returns the
// largest total and the sum of the three largest totals.
func Calories(input io.Reader) (most int, topThree int, err error) {
	lines, err := internal.ReadLines(input)
	if err != nil {
		return
	}

	var totals []int
	for para := range internal.Paragraphs(lines) {
		total := 0
		for _, line := range para {
			var calories int
			calories, err = parseNumber(strings.TrimSpace(line.Text))
			if err != nil {
				err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
				return
			}
			total += calories
		}
		totals = append(totals, total)
	}

	if len(totals) < 3 {
		err = ErrExhausted
		return
	}

	slices.Sort(totals)
	slices.Reverse(totals)

	most = totals[0]
	topThree = totals[0] + totals[1] + totals[2]

	return
}
