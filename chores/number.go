package chores

import (
	"github.com/ezrec/elfsim/internal"
)

func parseNumber(word string) (value int, err error) {
	value, err = internal.ParseInt[int](word)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}
