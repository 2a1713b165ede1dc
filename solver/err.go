package solver

import (
	"errors"

	"github.com/ezrec/elfsim/translate"
)

var f = translate.From

var (
	ErrDayUnknown   = errors.New(f("no puzzle for this day"))
	ErrDayDuplicate = errors.New(f("day registered twice"))
)

// ErrPuzzle indicates which puzzle failed.
type ErrPuzzle struct {
	Day int
	Err error
}

func (err *ErrPuzzle) Error() string {
	return f("day %v %v", err.Day, err.Err)
}

func (err *ErrPuzzle) Unwrap() error {
	return err.Err
}
