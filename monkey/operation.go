package monkey

import (
	"fmt"
	"math/bits"
)

// OpKind is the kind of worry level operation.
type OpKind int

//go:generate go tool stringer -linecomment -type=OpKind
const (
	OP_SQUARE = OpKind(0) // old * old
	OP_ADD    = OpKind(1) // old +
	OP_MUL    = OpKind(2) // old *
)

// Operation changes an item's worry level when inspected.
type Operation struct {
	Kind  OpKind
	Value uint64 // Constant operand of OP_ADD and OP_MUL.
}

// Square makes the 'new = old * old' operation.
func Square() Operation {
	return Operation{Kind: OP_SQUARE}
}

// Add makes the 'new = old + value' operation.
func Add(value uint64) Operation {
	return Operation{Kind: OP_ADD, Value: value}
}

// Mul makes the 'new = old * value' operation.
func Mul(value uint64) Operation {
	return Operation{Kind: OP_MUL, Value: value}
}

// Apply returns the exact 128-bit result of the operation.
func (op Operation) Apply(old uint64) (hi, lo uint64) {
	switch op.Kind {
	case OP_SQUARE:
		hi, lo = bits.Mul64(old, old)
	case OP_ADD:
		lo, hi = bits.Add64(old, op.Value, 0)
	case OP_MUL:
		hi, lo = bits.Mul64(old, op.Value)
	}

	return
}

func (op Operation) String() string {
	if op.Kind == OP_SQUARE {
		return "new = " + op.Kind.String()
	}
	return fmt.Sprintf("new = %v %d", op.Kind, op.Value)
}
