package internal

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// ParseInt parses a base 10 integer into any integer type, rejecting values
// that do not fit.
func ParseInt[T constraints.Integer](word string) (value T, err error) {
	var zero T
	if zero-1 < zero {
		var v64 int64
		v64, err = strconv.ParseInt(word, 10, 64)
		if err != nil {
			return
		}
		value = T(v64)
		if int64(value) != v64 {
			err = &strconv.NumError{Func: "ParseInt", Num: word, Err: strconv.ErrRange}
			value = 0
		}
		return
	}

	var u64 uint64
	u64, err = strconv.ParseUint(word, 10, 64)
	if err != nil {
		return
	}
	value = T(u64)
	if uint64(value) != u64 {
		err = &strconv.NumError{Func: "ParseUint", Num: word, Err: strconv.ErrRange}
		value = 0
	}

	return
}
