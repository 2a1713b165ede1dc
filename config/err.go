package config

import (
	"errors"

	"github.com/ezrec/elfsim/translate"
)

var f = translate.From

var (
	ErrKeyUnknown = errors.New(f("unknown setting"))
	ErrValueType  = errors.New(f("wrong type"))
	ErrValueRange = errors.New(f("out of range"))
)

// ErrConfig indicates which setting is invalid.
type ErrConfig struct {
	Key string
	Err error
}

func (err *ErrConfig) Error() string {
	return f("setting %v %v", err.Key, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
