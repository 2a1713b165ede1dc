// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package solver runs the registered daily puzzles over their input.
package solver

import (
	"io"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/elfsim/config"
	"github.com/ezrec/elfsim/crt"
)

// Answer holds both parts of a puzzle's answer.
type Answer struct {
	Part1 string
	Part2 string

	Display *crt.Display // CRT frame, when the puzzle draws one.
}

// Func solves a puzzle from its input.
type Func func(run *Runner, input io.Reader) (Answer, error)

// Puzzle is a registered daily puzzle.
type Puzzle struct {
	Day   int
	Title string
	Solve Func
}

var puzzles = map[int]Puzzle{}

// Register a puzzle. Registering a day twice panics.
func Register(puzzle Puzzle) {
	if _, ok := puzzles[puzzle.Day]; ok {
		panic(&ErrPuzzle{Day: puzzle.Day, Err: ErrDayDuplicate})
	}
	puzzles[puzzle.Day] = puzzle
}

// Days returns the registered days, in order.
func Days() []int {
	return slices.Sorted(maps.Keys(puzzles))
}

// Latest returns the last registered day.
func Latest() (day int) {
	days := Days()
	if len(days) > 0 {
		day = days[len(days)-1]
	}
	return
}

// Lookup the puzzle of a day.
func Lookup(day int) (puzzle Puzzle, ok bool) {
	puzzle, ok = puzzles[day]
	return
}

// Runner solves puzzles with a configuration.
type Runner struct {
	Verbose bool           // If set, enables verbose logging.
	Config  *config.Config // Run settings.
}

// NewRunner creates a runner with the default settings.
func NewRunner() *Runner {
	return &Runner{
		Config: config.Default(),
	}
}

// Run solves the puzzle of a day.
func (run *Runner) Run(day int, input io.Reader) (answer Answer, err error) {
	defer func() {
		if err != nil {
			err = &ErrPuzzle{Day: day, Err: err}
		}
	}()

	puzzle, ok := Lookup(day)
	if !ok {
		err = ErrDayUnknown
		return
	}

	if run.Config == nil {
		run.Config = config.Default()
	}

	if run.Verbose {
		log.Printf("solver: day %d: %v", day, puzzle.Title)
	}

	answer, err = puzzle.Solve(run, input)

	return
}
