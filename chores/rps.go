package chores

import (
	"io"
	"strings"

	"github.com/ezrec/elfsim/internal"
)

// Shape is a rock paper scissors hand, valued by its score.
type Shape int

const (
	SHAPE_ROCK     = Shape(1)
	SHAPE_PAPER    = Shape(2)
	SHAPE_SCISSORS = Shape(3)
)

// Outcome is a round result, valued by its score.
type Outcome int

const (
	OUTCOME_LOSS = Outcome(0)
	OUTCOME_DRAW = Outcome(3)
	OUTCOME_WIN  = Outcome(6)
)

var shapeMap = map[string]Shape{
	"A": SHAPE_ROCK, "B": SHAPE_PAPER, "C": SHAPE_SCISSORS,
	"X": SHAPE_ROCK, "Y": SHAPE_PAPER, "Z": SHAPE_SCISSORS,
}

var outcomeMap = map[string]Outcome{
	"X": OUTCOME_LOSS, "Y": OUTCOME_DRAW, "Z": OUTCOME_WIN,
}

// Beats returns the shape this shape defeats.
func (s Shape) Beats() Shape {
	return (s+1)%3 + 1
}

// BeatenBy returns the shape that defeats this shape.
func (s Shape) BeatenBy() Shape {
	return s%3 + 1
}

// Play returns the outcome of playing yours against theirs.
func Play(yours, theirs Shape) Outcome {
	switch {
	case yours == theirs:
		return OUTCOME_DRAW
	case yours.Beats() == theirs:
		return OUTCOME_WIN
	}
	return OUTCOME_LOSS
}

// Choose returns the shape that gives the wanted outcome against theirs.
func Choose(want Outcome, theirs Shape) Shape {
	switch want {
	case OUTCOME_WIN:
		return theirs.BeatenBy()
	case OUTCOME_LOSS:
		return theirs.Beats()
	}
	return theirs
}

// RockPaperScissors scores the strategy guide, reading the second column
// as a shape (guess) and as the required outcome (planned).
func RockPaperScissors(input io.Reader) (guess int, planned int, err error) {
	lines, err := internal.ReadLines(input)
	if err != nil {
		return
	}

	for _, line := range lines {
		words := strings.Fields(line.Text)
		if len(words) == 0 {
			continue
		}
		if len(words) != 2 {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: ErrFieldsInvalid}
			return
		}

		theirs, ok := shapeMap[words[0]]
		if !ok || words[0] > "C" {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: ErrShapeInvalid}
			return
		}
		yours, ok := shapeMap[words[1]]
		if !ok || words[1] < "X" {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: ErrShapeInvalid}
			return
		}
		want := outcomeMap[words[1]]

		guess += int(yours) + int(Play(yours, theirs))
		planned += int(Choose(want, theirs)) + int(want)
	}

	return
}
