package chores

import (
	"io"
	"strings"

	"github.com/ezrec/elfsim/internal"
)

// Point is a grid position.
type Point struct {
	X, Y int
}

var directionMap = map[string]Point{
	"U": {0, 1},
	"D": {0, -1},
	"L": {-1, 0},
	"R": {1, 0},
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Follow returns the new position of a knot following the knot at head.
// A knot only moves when no longer touching, one step along each axis.
func Follow(head, tail Point) Point {
	dx, dy := head.X-tail.X, head.Y-tail.Y
	if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
		return tail
	}
	return Point{tail.X + sign(dx), tail.Y + sign(dy)}
}

// Rope moves the head of a rope of knots by the motions, and returns the
// number of positions the last knot visits.
func Rope(input io.Reader, knots int) (visited int, err error) {
	if knots < 1 {
		err = ErrExhausted
		return
	}

	lines, err := internal.ReadLines(input)
	if err != nil {
		return
	}

	rope := make([]Point, knots)
	seen := map[Point]bool{{}: true}

	for _, line := range lines {
		words := strings.Fields(line.Text)
		if len(words) == 0 {
			continue
		}
		if len(words) != 2 {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: ErrFieldsInvalid}
			return
		}

		step, ok := directionMap[words[0]]
		if !ok {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: ErrDirection}
			return
		}
		var count int
		count, err = parseNumber(words[1])
		if err != nil {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}

		for range count {
			rope[0].X += step.X
			rope[0].Y += step.Y
			for n := 1; n < knots; n++ {
				rope[n] = Follow(rope[n-1], rope[n])
			}
			seen[rope[knots-1]] = true
		}
	}

	visited = len(seen)

	return
}
