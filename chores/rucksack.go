package chores

import (
	"io"
	"strings"

	"github.com/ezrec/elfsim/internal"
)

const GROUP_SIZE = 3 // Elves per badge group.

// Priority of an item: a-z are 1-26, A-Z are 27-52, anything else is 0.
func Priority(item byte) int {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27
	}
	return 0
}

// itemSet is the set of item types, indexed by priority.
type itemSet uint64

func makeItemSet(items string) (set itemSet) {
	for n := range len(items) {
		set |= 1 << Priority(items[n])
	}
	return set &^ 1
}

// common returns the priority of an item in every set.
func common(sets ...itemSet) (priority int, err error) {
	all := ^itemSet(0)
	for _, set := range sets {
		all &= set
	}
	for priority = 1; priority <= 52; priority++ {
		if all&(1<<priority) != 0 {
			return
		}
	}

	priority = 0
	err = ErrNoCommon

	return
}

// Rucksacks sums the priorities of the item shared by both compartments of
// each rucksack, and of the badge shared by each group of three elves.
func Rucksacks(input io.Reader) (items int, badges int, err error) {
	lines, err := internal.ReadLines(input)
	if err != nil {
		return
	}

	var group []itemSet
	var last internal.Line
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if len(text) == 0 {
			continue
		}
		last = line

		half := len(text) / 2
		var priority int
		priority, err = common(makeItemSet(text[:half]), makeItemSet(text[half:]))
		if err != nil {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}
		items += priority

		group = append(group, makeItemSet(text))
		if len(group) == GROUP_SIZE {
			priority, err = common(group...)
			if err != nil {
				err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
				return
			}
			badges += priority
			group = group[:0]
		}
	}

	if len(group) != 0 {
		err = ErrSyntax{LineNo: last.LineNo, Line: last.Text, Err: ErrGroupPartial}
	}

	return
}
