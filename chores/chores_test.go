package chores

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalories(t *testing.T) {
	assert := assert.New(t)

	input := "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000"
	most, top, err := Calories(strings.NewReader(input))
	assert.NoError(err)
	assert.Equal(24000, most)
	assert.Equal(45000, top)

	// The last elf counts with or without a trailing blank line.
	most, _, err = Calories(strings.NewReader("1\n\n2\n\n3\n4\n"))
	assert.NoError(err)
	assert.Equal(7, most)

	_, _, err = Calories(strings.NewReader("1\n\n2\n"))
	assert.ErrorIs(err, ErrExhausted)

	_, _, err = Calories(strings.NewReader("1\n\n2x\n\n3"))
	assert.ErrorIs(err, ErrParseNumber("2x"))
	assert.Equal(f("line %v '%v' %v", 3, "2x", ErrParseNumber("2x")), err.Error())
}

func TestRockPaperScissors(t *testing.T) {
	assert := assert.New(t)

	guess, planned, err := RockPaperScissors(strings.NewReader("A Y\nB X\nC Z\n"))
	assert.NoError(err)
	assert.Equal(15, guess)
	assert.Equal(12, planned)

	for _, bad := range []string{"A", "A Y Z", "D X", "X A", "A B"} {
		_, _, err = RockPaperScissors(strings.NewReader(bad))
		assert.Error(err, bad)
	}
}

func TestShape(t *testing.T) {
	assert := assert.New(t)

	shapes := []Shape{SHAPE_ROCK, SHAPE_PAPER, SHAPE_SCISSORS}
	for _, yours := range shapes {
		assert.Equal(OUTCOME_DRAW, Play(yours, yours))
		assert.Equal(OUTCOME_WIN, Play(yours, yours.Beats()))
		assert.Equal(OUTCOME_LOSS, Play(yours, yours.BeatenBy()))
		for _, want := range []Outcome{OUTCOME_LOSS, OUTCOME_DRAW, OUTCOME_WIN} {
			assert.Equal(want, Play(Choose(want, yours), yours))
		}
	}
	assert.Equal(SHAPE_SCISSORS, SHAPE_ROCK.Beats())
}

const rucksackSample = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`

func TestRucksacks(t *testing.T) {
	assert := assert.New(t)

	items, badges, err := Rucksacks(strings.NewReader(rucksackSample))
	assert.NoError(err)
	assert.Equal(157, items)
	assert.Equal(70, badges)

	_, _, err = Rucksacks(strings.NewReader("abcd\n"))
	assert.ErrorIs(err, ErrNoCommon)

	_, _, err = Rucksacks(strings.NewReader("abca\n"))
	assert.ErrorIs(err, ErrGroupPartial)

	assert.Equal(16, Priority('p'))
	assert.Equal(38, Priority('L'))
	assert.Equal(0, Priority('1'))
}

func TestCleanup(t *testing.T) {
	assert := assert.New(t)

	input := "2-4,6-8\n2-3,4-5\n5-7,7-9\n2-8,3-7\n6-6,4-6\n2-6,4-8\n"
	contained, overlapping, err := Cleanup(strings.NewReader(input))
	assert.NoError(err)
	assert.Equal(2, contained)
	assert.Equal(4, overlapping)

	for _, bad := range []string{"2-4", "2-4,6", "4-2,1-1", "a-b,1-2"} {
		_, _, err = Cleanup(strings.NewReader(bad))
		assert.Error(err, bad)
	}
}

const cratesSample = `    [D]    
[N] [C]    
[Z] [M] [P]
 1   2   3 

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

func TestCrates(t *testing.T) {
	assert := assert.New(t)

	single, multiple, err := Crates(strings.NewReader(cratesSample))
	assert.NoError(err)
	assert.Equal("CMZ", single)
	assert.Equal("MCD", multiple)

	_, _, err = Crates(strings.NewReader(cratesSample + "move 9 from 1 to 2\n"))
	assert.ErrorIs(err, ErrExhausted)

	_, _, err = Crates(strings.NewReader(cratesSample + "move 1 from 4 to 2\n"))
	assert.ErrorIs(err, ErrStackRange)

	_, _, err = Crates(strings.NewReader(cratesSample + "shift 1 from 1 to 2\n"))
	assert.ErrorIs(err, ErrFieldsInvalid)
}

func TestStacks(t *testing.T) {
	assert := assert.New(t)

	stacks := Stacks{[]byte("AB"), []byte("CDE"), nil}
	clone := stacks.Clone()

	assert.NoError(stacks.Move(2, 2, 3, false))
	assert.Equal("BCD", stacks.Top())
	assert.NoError(clone.Move(2, 2, 3, true))
	assert.Equal("BCE", clone.Top())
}

func TestMarker(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		stream  string
		packet  int
		message int
	}){
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}

	for _, entry := range table {
		packet, err := Marker(entry.stream, PACKET_MARKER_SIZE)
		assert.NoError(err, entry.stream)
		assert.Equal(entry.packet, packet, entry.stream)

		message, err := Marker(entry.stream, MESSAGE_MARKER_SIZE)
		assert.NoError(err, entry.stream)
		assert.Equal(entry.message, message, entry.stream)
	}

	_, err := Marker("", PACKET_MARKER_SIZE)
	assert.ErrorIs(err, ErrNoMarker)
	_, err = Marker("aaaaaaa", PACKET_MARKER_SIZE)
	assert.ErrorIs(err, ErrNoMarker)
}

func TestRope(t *testing.T) {
	assert := assert.New(t)

	small := "R 4\nU 4\nL 3\nD 1\nR 4\nD 1\nL 5\nR 2\n"
	large := "R 5\nU 8\nL 8\nD 3\nR 17\nD 10\nL 25\nU 20\n"

	visited, err := Rope(strings.NewReader(small), 2)
	assert.NoError(err)
	assert.Equal(13, visited)

	visited, err = Rope(strings.NewReader(small), 10)
	assert.NoError(err)
	assert.Equal(1, visited)

	visited, err = Rope(strings.NewReader(large), 10)
	assert.NoError(err)
	assert.Equal(36, visited)

	_, err = Rope(strings.NewReader("Q 1"), 2)
	assert.ErrorIs(err, ErrDirection)

	_, err = Rope(strings.NewReader(small), 0)
	assert.ErrorIs(err, ErrExhausted)
}

func TestFollow(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Point{0, 0}, Follow(Point{1, 1}, Point{0, 0}))
	assert.Equal(Point{1, 0}, Follow(Point{2, 0}, Point{0, 0}))
	assert.Equal(Point{1, 1}, Follow(Point{2, 1}, Point{0, 0}))
	assert.Equal(Point{-1, -1}, Follow(Point{-2, -2}, Point{0, 0}))
}
