package chores

import (
	"errors"

	"github.com/ezrec/elfsim/translate"
)

var f = translate.From

var (
	ErrExhausted     = errors.New(f("exhausted"))
	ErrNoCommon      = errors.New(f("no common item"))
	ErrNoMarker      = errors.New(f("no marker"))
	ErrStackRange    = errors.New(f("stack out of range"))
	ErrFieldsInvalid = errors.New(f("fields invalid"))
	ErrShapeInvalid  = errors.New(f("shape invalid"))
	ErrDirection     = errors.New(f("direction invalid"))
	ErrRangeInvalid  = errors.New(f("range invalid"))
	ErrGroupPartial  = errors.New(f("partial group"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %v '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
