package monkey

import (
	"fmt"
	"strings"
)

// Monkey is a single player of keep away. Its id is its index in the Troop.
type Monkey struct {
	Items     Queue     // Held items, in the order caught.
	Operation Operation // Worry level change on inspection.
	Divisor   uint64    // Test divisor.
	IfTrue    int       // Target when divisible.
	IfFalse   int       // Target when not divisible.

	Inspected uint64 // Items inspected.
	Caught    uint64 // Items caught from other monkeys.
}

// NewMonkey creates a monkey holding the starting items.
func NewMonkey(op Operation, divisor uint64, ifTrue, ifFalse int, items ...uint64) (m *Monkey) {
	m = &Monkey{
		Operation: op,
		Divisor:   divisor,
		IfTrue:    ifTrue,
		IfFalse:   ifFalse,
	}
	for _, item := range items {
		m.Items.Push(item)
	}

	return
}

// Target returns the monkey an item with this worry level is thrown to.
func (m *Monkey) Target(worry uint64) int {
	if worry%m.Divisor == 0 {
		return m.IfTrue
	}
	return m.IfFalse
}

// Catch an item thrown by another monkey.
func (m *Monkey) Catch(worry uint64) {
	m.Items.Push(worry)
	m.Caught++
}

// Clone returns an independent copy of the monkey.
func (m *Monkey) Clone() (clone *Monkey) {
	clone = &Monkey{}
	*clone = *m
	clone.Items = Queue{Data: append([]uint64(nil), m.Items.Items()...)}

	return
}

func (m *Monkey) String() string {
	items := make([]string, 0, m.Items.Len())
	for _, item := range m.Items.Items() {
		items = append(items, fmt.Sprintf("%d", item))
	}
	return strings.Join(items, ", ")
}
