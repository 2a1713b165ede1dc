package monkey

import (
	"errors"

	"github.com/ezrec/elfsim/translate"
)

var f = translate.From

var (
	// Troop errors
	ErrDivisorZero      = errors.New(f("divisor zero"))
	ErrTargetRange      = errors.New(f("target out of range"))
	ErrTargetSelf       = errors.New(f("target is itself"))
	ErrModulusOverflow  = errors.New(f("modulus overflow"))
	ErrExhausted        = errors.New(f("exhausted"))
	ErrBusinessOverflow = errors.New(f("monkey business overflow"))

	// Parse errors
	ErrAttributeMissing = errors.New(f("attribute missing"))
	ErrAttributeExtra   = errors.New(f("excessive attributes"))
	ErrOperationInvalid = errors.New(f("operation invalid"))
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

// ErrMonkey indicates which monkey is misconfigured.
type ErrMonkey struct {
	Id  int
	Err error
}

func (err *ErrMonkey) Error() string {
	return f("monkey %v %v", err.Id, err.Err)
}

func (err *ErrMonkey) Unwrap() error {
	return err.Err
}
