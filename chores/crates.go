package chores

import (
	"io"
	"slices"
	"strings"

	"github.com/ezrec/elfsim/internal"
)

// Stacks of crates, bottom first.
type Stacks [][]byte

// parseDrawing reads the crate drawing; crate letters sit at every fourth
// column starting at column 1.
func parseDrawing(drawing []internal.Line) (stacks Stacks) {
	for n := len(drawing) - 1; n >= 0; n-- {
		text := drawing[n].Text
		for col := 1; col < len(text); col += 4 {
			id := col / 4
			for len(stacks) <= id {
				stacks = append(stacks, nil)
			}
			crate := text[col]
			if (crate >= 'A' && crate <= 'Z') || (crate >= 'a' && crate <= 'z') {
				stacks[id] = append(stacks[id], crate)
			}
		}
	}

	return
}

// Clone returns an independent copy of the stacks.
func (stacks Stacks) Clone() (clone Stacks) {
	clone = make(Stacks, len(stacks))
	for n, stack := range stacks {
		clone[n] = slices.Clone(stack)
	}
	return
}

// Move count crates from stack 'from' to stack 'to' (1-based). When
// keepOrder is set, the crates move together; otherwise one at a time.
func (stacks Stacks) Move(count, from, to int, keepOrder bool) (err error) {
	if from < 1 || from > len(stacks) || to < 1 || to > len(stacks) {
		err = ErrStackRange
		return
	}
	if count < 0 || count > len(stacks[from-1]) {
		err = ErrExhausted
		return
	}

	src := stacks[from-1]
	moved := slices.Clone(src[len(src)-count:])
	stacks[from-1] = src[:len(src)-count]
	if !keepOrder {
		slices.Reverse(moved)
	}
	stacks[to-1] = append(stacks[to-1], moved...)

	return
}

// Top returns the crate on top of each non-empty stack.
func (stacks Stacks) Top() string {
	var top strings.Builder
	for _, stack := range stacks {
		if len(stack) > 0 {
			top.WriteByte(stack[len(stack)-1])
		}
	}
	return top.String()
}

// parseMove parses 'move <count> from <from> to <to>'.
func parseMove(text string) (count, from, to int, err error) {
	words := strings.Fields(text)
	if len(words) != 6 || words[0] != "move" || words[2] != "from" || words[4] != "to" {
		err = ErrFieldsInvalid
		return
	}
	if count, err = parseNumber(words[1]); err != nil {
		return
	}
	if from, err = parseNumber(words[3]); err != nil {
		return
	}
	to, err = parseNumber(words[5])
	return
}

// Crates rearranges the drawn stacks with the CrateMover 9000 (single) and
// the CrateMover 9001 (multiple), returning the crates left on top.
func Crates(input io.Reader) (single string, multiple string, err error) {
	lines, err := internal.ReadLines(input)
	if err != nil {
		return
	}

	split := slices.IndexFunc(lines, internal.Line.Blank)
	if split < 0 {
		split = len(lines)
	}

	stacks9000 := parseDrawing(lines[:split])
	stacks9001 := stacks9000.Clone()

	for _, line := range lines[split:] {
		if line.Blank() {
			continue
		}

		var count, from, to int
		count, from, to, err = parseMove(line.Text)
		if err == nil {
			err = stacks9000.Move(count, from, to, false)
		}
		if err == nil {
			err = stacks9001.Move(count, from, to, true)
		}
		if err != nil {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}
	}

	single = stacks9000.Top()
	multiple = stacks9001.Top()

	return
}
