// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package monkey

import (
	"fmt"
	"log"
	"math/bits"
	"slices"
)

const (
	RELIEF_DIVISOR = 3 // Worry level division after a harmless inspection.
)

// Troop is the ordered set of monkeys playing keep away.
type Troop struct {
	Verbose bool // If set, enables verbose logging.

	Monkeys []*Monkey
	Modulus uint64 // Worry levels are kept modulo this value.
}

// NewTroop creates a troop from monkeys, in id order.
func NewTroop(monkeys ...*Monkey) *Troop {
	return &Troop{Monkeys: monkeys}
}

// Validate checks every monkey's divisor and throw targets.
func (troop *Troop) Validate() (err error) {
	for id, m := range troop.Monkeys {
		switch {
		case m.Divisor == 0:
			err = ErrDivisorZero
		case m.IfTrue < 0 || m.IfTrue >= len(troop.Monkeys):
			err = ErrTargetRange
		case m.IfFalse < 0 || m.IfFalse >= len(troop.Monkeys):
			err = ErrTargetRange
		case m.IfTrue == id || m.IfFalse == id:
			err = ErrTargetSelf
		}
		if err != nil {
			err = &ErrMonkey{Id: id, Err: err}
			return
		}
	}

	return
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Reduce computes the modulus, the least common multiple of all divisors.
// For pairwise coprime divisors this is their product.
func (troop *Troop) Reduce() (err error) {
	modulus := uint64(1)
	for id, m := range troop.Monkeys {
		if m.Divisor == 0 {
			err = &ErrMonkey{Id: id, Err: ErrDivisorZero}
			return
		}
		hi, lo := bits.Mul64(modulus/gcd(modulus, m.Divisor), m.Divisor)
		if hi != 0 {
			err = &ErrMonkey{Id: id, Err: ErrModulusOverflow}
			return
		}
		modulus = lo
	}

	troop.Modulus = modulus

	if troop.Verbose {
		log.Printf("troop: modulus %d", modulus)
	}

	return
}

// inspect the next item held by monkey id, and throw it.
func (troop *Troop) inspect(id int, relief bool) (err error) {
	m := troop.Monkeys[id]
	if m.Divisor == 0 {
		err = &ErrMonkey{Id: id, Err: ErrDivisorZero}
		return
	}

	item, ok := m.Items.Pop()
	if !ok {
		err = &ErrMonkey{Id: id, Err: ErrExhausted}
		return
	}

	hi, lo := m.Operation.Apply(item)
	if relief {
		var rem uint64
		hi, rem = hi/RELIEF_DIVISOR, hi%RELIEF_DIVISOR
		lo, _ = bits.Div64(rem, lo, RELIEF_DIVISOR)
	}
	worry := bits.Rem64(hi, lo, troop.Modulus)

	target := m.Target(worry)
	switch {
	case target < 0 || target >= len(troop.Monkeys):
		err = &ErrMonkey{Id: id, Err: ErrTargetRange}
		return
	case target == id:
		err = &ErrMonkey{Id: id, Err: ErrTargetSelf}
		return
	}
	troop.Monkeys[target].Catch(worry)
	m.Inspected++

	if troop.Verbose {
		log.Printf("monkey %d: %d -> %d thrown to %d", id, item, worry, target)
	}

	return
}

// Round lets every monkey, in id order, inspect and throw all of its items.
// Items thrown to a later monkey are inspected again this round; items
// thrown to an earlier monkey wait for the next round.
func (troop *Troop) Round(relief bool) (err error) {
	if troop.Modulus == 0 {
		err = troop.Validate()
		if err != nil {
			return
		}
		err = troop.Reduce()
		if err != nil {
			return
		}
	}

	for id, m := range troop.Monkeys {
		for !m.Items.Empty() {
			err = troop.inspect(id, relief)
			if err != nil {
				return
			}
		}
	}

	return
}

// Run validates the troop, plays the rounds, and returns the monkey business.
func (troop *Troop) Run(rounds int, relief bool) (business uint64, err error) {
	err = troop.Validate()
	if err != nil {
		return
	}

	err = troop.Reduce()
	if err != nil {
		return
	}

	for round := range rounds {
		err = troop.Round(relief)
		if err != nil {
			return
		}
		if troop.Verbose {
			log.Printf("troop: round %d inspected %v", round+1, troop.Inspected())
		}
	}

	business, err = troop.Business()

	return
}

// Inspected returns the inspection counts, in monkey id order.
func (troop *Troop) Inspected() (counts []uint64) {
	counts = make([]uint64, len(troop.Monkeys))
	for id, m := range troop.Monkeys {
		counts[id] = m.Inspected
	}

	return
}

// Business is the product of the two highest inspection counts.
func (troop *Troop) Business() (business uint64, err error) {
	counts := troop.Inspected()
	if len(counts) < 2 {
		err = ErrExhausted
		return
	}

	slices.SortStableFunc(counts, func(a, b uint64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})

	hi, lo := bits.Mul64(counts[0], counts[1])
	if hi != 0 {
		err = ErrBusinessOverflow
		return
	}
	business = lo

	return
}

// Clone returns an independent copy of the troop.
func (troop *Troop) Clone() (clone *Troop) {
	clone = &Troop{
		Verbose: troop.Verbose,
		Modulus: troop.Modulus,
		Monkeys: make([]*Monkey, len(troop.Monkeys)),
	}
	for id, m := range troop.Monkeys {
		clone.Monkeys[id] = m.Clone()
	}

	return
}

// String lists the items held by each monkey.
func (troop *Troop) String() (text string) {
	for id, m := range troop.Monkeys {
		text += fmt.Sprintf("Monkey %d: %v\n", id, m)
	}

	return
}
