package crt

import (
	"fmt"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOOP = Op(0) // noop
	OP_ADDX = Op(1) // addx
)

// opMap is a map of mnemonics to operations.
var opMap = map[string]Op{
	OP_NOOP.String(): OP_NOOP,
	OP_ADDX.String(): OP_ADDX,
}

// Instruction is a decoded CPU instruction.
type Instruction struct {
	Op    Op  // Operation.
	Delta int // Value added to X by OP_ADDX.
}

// Noop makes a noop instruction.
func Noop() Instruction {
	return Instruction{Op: OP_NOOP}
}

// Addx makes an addx instruction.
func Addx(delta int) Instruction {
	return Instruction{Op: OP_ADDX, Delta: delta}
}

// Cycles returns the number of cycles the instruction takes to complete.
func (ins Instruction) Cycles() int {
	if ins.Op == OP_ADDX {
		return 2
	}
	return 1
}

func (ins Instruction) String() string {
	if ins.Op == OP_ADDX {
		return fmt.Sprintf("%v %d", ins.Op, ins.Delta)
	}
	return ins.Op.String()
}
