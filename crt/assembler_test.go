package crt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("  noop\naddx 3\n\n\taddx -5  \r\n"))
	assert.NoError(err)

	assert.Equal([]Opcode{
		{LineNo: 1, Words: []string{"noop"}, Instruction: Noop()},
		{LineNo: 2, Words: []string{"addx", "3"}, Instruction: Addx(3)},
		{LineNo: 4, Words: []string{"addx", "-5"}, Instruction: Addx(-5)},
	}, prog.Opcodes)
	assert.Equal(5, prog.Cycles())
}

func TestAssembler_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		lineno int
		err    error
	}){
		{"unknown", "noop\nmul 3", 2, ErrOpcodeInvalid},
		{"missing", "addx", 1, ErrOpcodeValueMissing},
		{"extra_addx", "addx 1 2", 1, ErrOpcodeExtraArgs},
		{"extra_noop", "noop 1", 1, ErrOpcodeExtraArgs},
		{"number", "noop\nnoop\naddx one", 3, ErrParseNumber("one")},
		{"hex", "addx 0x10", 1, ErrParseNumber("0x10")},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.source))
		assert.Nil(prog, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestAssembler_Empty(t *testing.T) {
	assert := assert.New(t)

	for _, source := range []string{"", "\n\n", "   \n"} {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(source))
		assert.Nil(prog)
		assert.ErrorIs(err, ErrProgramEmpty)
	}
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("noop", Noop().String())
	assert.Equal("addx -7", Addx(-7).String())
	assert.Equal("Op(9)", Op(9).String())
	assert.Equal(1, Noop().Cycles())
	assert.Equal(2, Addx(0).Cycles())
}
