package monkey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	troop := referenceTroop(t)

	m := troop.Monkeys[2]
	assert.Equal([]uint64{79, 60, 97}, m.Items.Items())
	assert.Equal(Square(), m.Operation)
	assert.Equal(uint64(13), m.Divisor)
	assert.Equal(1, m.IfTrue)
	assert.Equal(3, m.IfFalse)
	assert.Zero(m.Inspected)

	assert.Equal(Mul(19), troop.Monkeys[0].Operation)
	assert.Equal(Add(6), troop.Monkeys[1].Operation)
	assert.Equal(Add(3), troop.Monkeys[3].Operation)
}

func TestParse_EmptyItems(t *testing.T) {
	assert := assert.New(t)

	notes := `Monkey 0:
  Starting items:
  Operation: new = old + 1
  Test: divisible by 2
    If true: throw to monkey 1
    If false: throw to monkey 1


Monkey 1:
  Starting items: 3
  Operation: new = old * 2
  Test: divisible by 3
    If true: throw to monkey 0
    If false: throw to monkey 0`

	troop, err := Parse(strings.NewReader(notes))
	assert.NoError(err)
	assert.Len(troop.Monkeys, 2)
	assert.True(troop.Monkeys[0].Items.Empty())
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	block := func(lines ...string) string {
		return "Monkey 0:\n" + strings.Join(lines, "\n")
	}
	good := []string{
		"  Starting items: 1, 2",
		"  Operation: new = old * 2",
		"  Test: divisible by 2",
		"    If true: throw to monkey 1",
		"    If false: throw to monkey 1",
	}
	other := "\n\nMonkey 1:\n  Starting items: 1\n  Operation: new = old + 1\n  Test: divisible by 3\n    If true: throw to monkey 0\n    If false: throw to monkey 0\n"

	with := func(n int, line string) string {
		lines := append([]string(nil), good...)
		lines[n] = line
		return block(lines...) + other
	}

	table := [](struct {
		name   string
		notes  string
		lineno int
		err    error
	}){
		{"items", with(0, "  Starting items: 1, x"), 2, ErrParseNumber("x")},
		{"items_negative", with(0, "  Starting items: -1"), 2, ErrParseNumber("-1")},
		{"items_missing", with(0, "  Items: 1"), 2, ErrAttributeMissing},
		{"op_old_plus_old", with(1, "  Operation: new = old + old"), 3, ErrOperationInvalid},
		{"op_minus", with(1, "  Operation: new = old - 3"), 3, ErrOperationInvalid},
		{"op_short", with(1, "  Operation: new = old *"), 3, ErrOperationInvalid},
		{"op_value", with(1, "  Operation: new = old * y"), 3, ErrParseNumber("y")},
		{"op_lhs", with(1, "  Operation: old = old * 2"), 3, ErrOperationInvalid},
		{"test", with(2, "  Test: divisible by two"), 4, ErrParseNumber("two")},
		{"test_missing", with(2, "  Test: odd"), 4, ErrAttributeMissing},
		{"if_true", with(3, "    If true: throw to monkey one"), 5, ErrParseNumber("one")},
		{"if_false", with(4, "    If false: throw to elephant 1"), 6, ErrAttributeMissing},
		{"short", block(good[:3]...) + other, 4, ErrAttributeMissing},
		{"long", block(append(good, "  Extra: 1")...) + other, 7, ErrAttributeExtra},
	}

	for _, entry := range table {
		troop, err := Parse(strings.NewReader(entry.notes))
		assert.Nil(troop, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax ErrSyntax
		if assert.ErrorAs(err, &syntax, entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestParse_Configuration(t *testing.T) {
	assert := assert.New(t)

	notes := strings.Replace(referenceNotes, "If false: throw to monkey 3", "If false: throw to monkey 4", 1)
	troop, err := Parse(strings.NewReader(notes))
	assert.Nil(troop)
	assert.ErrorIs(err, ErrTargetRange)

	notes = strings.Replace(referenceNotes, "divisible by 13", "divisible by 0", 1)
	_, err = Parse(strings.NewReader(notes))
	assert.ErrorIs(err, ErrDivisorZero)
}

func TestOperation(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op     Operation
		old    uint64
		hi, lo uint64
		text   string
	}){
		{Square(), 9, 0, 81, "new = old * old"},
		{Add(6), 4, 0, 10, "new = old + 6"},
		{Mul(19), 2, 0, 38, "new = old * 19"},
		{Square(), 1 << 32, 1, 0, "new = old * old"},
		{Add(1), ^uint64(0), 1, 0, "new = old + 1"},
		{Mul(4), 1 << 63, 2, 0, "new = old * 4"},
	}

	for _, entry := range table {
		hi, lo := entry.op.Apply(entry.old)
		assert.Equal(entry.hi, hi, entry.text)
		assert.Equal(entry.lo, lo, entry.text)
		assert.Equal(entry.text, entry.op.String())
	}
}

func TestRelief_Wide(t *testing.T) {
	assert := assert.New(t)

	// (2^32)^2 / 3 mod 1000003, computed without 64-bit overflow.
	troop := NewTroop(
		NewMonkey(Square(), 1000003, 1, 1, 1<<32),
		NewMonkey(Add(0), 1, 0, 0),
	)
	troop.Modulus = 1000003
	assert.NoError(troop.inspect(0, true))

	want := ((1 << 64) / 3) % 1000003
	got, ok := troop.Monkeys[1].Items.Peek()
	assert.True(ok)
	assert.Equal(uint64(want), got)
}
