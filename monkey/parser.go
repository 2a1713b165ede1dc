package monkey

import (
	"io"
	"strings"

	"github.com/ezrec/elfsim/internal"
)

// Attribute line prefixes, in block order. The block header is not checked.
const (
	ATTR_ITEMS     = "Starting items:"
	ATTR_OPERATION = "Operation:"
	ATTR_TEST      = "Test: divisible by"
	ATTR_IF_TRUE   = "If true: throw to monkey"
	ATTR_IF_FALSE  = "If false: throw to monkey"
)

var attributes = []string{ATTR_ITEMS, ATTR_OPERATION, ATTR_TEST, ATTR_IF_TRUE, ATTR_IF_FALSE}

func parseNumber[T uint64 | int](word string) (value T, err error) {
	value, err = internal.ParseInt[T](word)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

// parseItems parses a comma separated list of worry levels.
func parseItems(text string) (items []uint64, err error) {
	if len(strings.TrimSpace(text)) == 0 {
		return
	}

	for word := range strings.SplitSeq(text, ",") {
		var item uint64
		item, err = parseNumber[uint64](strings.TrimSpace(word))
		if err != nil {
			return
		}
		items = append(items, item)
	}

	return
}

// parseOperation parses 'new = old <+|*> <old|value>'.
func parseOperation(text string) (op Operation, err error) {
	words := strings.Fields(text)
	if len(words) != 5 || words[0] != "new" || words[1] != "=" || words[2] != "old" {
		err = ErrOperationInvalid
		return
	}

	operator, operand := words[3], words[4]
	if operand == "old" {
		if operator != "*" {
			err = ErrOperationInvalid
			return
		}
		op = Square()
		return
	}

	var value uint64
	value, err = parseNumber[uint64](operand)
	if err != nil {
		return
	}

	switch operator {
	case "+":
		op = Add(value)
	case "*":
		op = Mul(value)
	default:
		err = ErrOperationInvalid
	}

	return
}

// parseBlock parses a header line followed by the attribute lines.
func parseBlock(block []internal.Line) (m *Monkey, err error) {
	texts := make([]string, len(attributes))
	for n, attr := range attributes {
		if n+1 >= len(block) {
			last := block[len(block)-1]
			err = ErrSyntax{LineNo: last.LineNo, Line: last.Text, Err: ErrAttributeMissing}
			return
		}
		line := block[n+1]
		text, ok := strings.CutPrefix(strings.TrimSpace(line.Text), attr)
		if !ok {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: ErrAttributeMissing}
			return
		}
		texts[n] = strings.TrimSpace(text)
	}

	if len(block) > len(attributes)+1 {
		line := block[len(attributes)+1]
		err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: ErrAttributeExtra}
		return
	}

	m = &Monkey{}

	for n, text := range texts {
		switch attributes[n] {
		case ATTR_ITEMS:
			var items []uint64
			items, err = parseItems(text)
			for _, item := range items {
				m.Items.Push(item)
			}
		case ATTR_OPERATION:
			m.Operation, err = parseOperation(text)
		case ATTR_TEST:
			m.Divisor, err = parseNumber[uint64](text)
		case ATTR_IF_TRUE:
			m.IfTrue, err = parseNumber[int](text)
		case ATTR_IF_FALSE:
			m.IfFalse, err = parseNumber[int](text)
		}
		if err != nil {
			line := block[n+1]
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			m = nil
			return
		}
	}

	return
}

// Parse reads the monkey notes, one blank line separated block per monkey,
// and validates the resulting troop.
func Parse(input io.Reader) (troop *Troop, err error) {
	lines, err := internal.ReadLines(input)
	if err != nil {
		return
	}

	troop = &Troop{}
	for block := range internal.Paragraphs(lines) {
		var m *Monkey
		m, err = parseBlock(block)
		if err != nil {
			troop = nil
			return
		}
		troop.Monkeys = append(troop.Monkeys, m)
	}

	err = troop.Validate()
	if err != nil {
		troop = nil
	}

	return
}
