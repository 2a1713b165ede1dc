package internal

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert := assert.New(t)

	i8, err := ParseInt[int8]("-128")
	assert.NoError(err)
	assert.Equal(int8(-128), i8)

	_, err = ParseInt[int8]("128")
	assert.ErrorIs(err, strconv.ErrRange)

	u, err := ParseInt[uint64]("18446744073709551615")
	assert.NoError(err)
	assert.Equal(^uint64(0), u)

	_, err = ParseInt[uint]("-1")
	assert.Error(err)

	_, err = ParseInt[int]("x1")
	assert.Error(err)

	u16, err := ParseInt[uint16]("65536")
	assert.ErrorIs(err, strconv.ErrRange)
	assert.Zero(u16)
}
