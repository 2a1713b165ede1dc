package solver

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/elfsim/chores"
	"github.com/ezrec/elfsim/crt"
	"github.com/ezrec/elfsim/monkey"
)

func answerOf(part1, part2 any) Answer {
	return Answer{Part1: fmt.Sprint(part1), Part2: fmt.Sprint(part2)}
}

func solveCalories(run *Runner, input io.Reader) (answer Answer, err error) {
	most, top, err := chores.Calories(input)
	if err == nil {
		answer = answerOf(most, top)
	}
	return
}

func solveRockPaperScissors(run *Runner, input io.Reader) (answer Answer, err error) {
	guess, planned, err := chores.RockPaperScissors(input)
	if err == nil {
		answer = answerOf(guess, planned)
	}
	return
}

func solveRucksacks(run *Runner, input io.Reader) (answer Answer, err error) {
	items, badges, err := chores.Rucksacks(input)
	if err == nil {
		answer = answerOf(items, badges)
	}
	return
}

func solveCleanup(run *Runner, input io.Reader) (answer Answer, err error) {
	contained, overlapping, err := chores.Cleanup(input)
	if err == nil {
		answer = answerOf(contained, overlapping)
	}
	return
}

func solveCrates(run *Runner, input io.Reader) (answer Answer, err error) {
	single, multiple, err := chores.Crates(input)
	if err == nil {
		answer = answerOf(single, multiple)
	}
	return
}

func solveMarkers(run *Runner, input io.Reader) (answer Answer, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}
	stream := strings.TrimSpace(string(data))

	packet, err := chores.Marker(stream, run.Config.PacketMarker)
	if err != nil {
		return
	}
	message, err := chores.Marker(stream, run.Config.MessageMarker)
	if err != nil {
		return
	}

	answer = answerOf(packet, message)

	return
}

func solveRope(run *Runner, input io.Reader) (answer Answer, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	short, err := chores.Rope(strings.NewReader(string(data)), 2)
	if err != nil {
		return
	}
	long, err := chores.Rope(strings.NewReader(string(data)), run.Config.Knots)
	if err != nil {
		return
	}

	answer = answerOf(short, long)

	return
}

func solveCrt(run *Runner, input io.Reader) (answer Answer, err error) {
	asm := &crt.Assembler{Verbose: run.Verbose}
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	cpu := crt.NewCpu(run.Config.Width, run.Config.Height)
	cpu.Verbose = run.Verbose

	result, err := cpu.Run(prog)
	if err != nil {
		return
	}

	answer = Answer{
		Part1:   fmt.Sprint(result.Signal),
		Part2:   result.Display.Render(run.Config.Lit, run.Config.Blank),
		Display: result.Display,
	}

	return
}

func solveMonkeys(run *Runner, input io.Reader) (answer Answer, err error) {
	troop, err := monkey.Parse(input)
	if err != nil {
		return
	}
	troop.Verbose = run.Verbose

	relieved, err := troop.Clone().Run(run.Config.ReliefRounds, true)
	if err != nil {
		return
	}
	worried, err := troop.Clone().Run(run.Config.Rounds, false)
	if err != nil {
		return
	}

	answer = answerOf(relieved, worried)

	return
}

func init() {
	Register(Puzzle{Day: 1, Title: "Calorie Counting", Solve: solveCalories})
	Register(Puzzle{Day: 2, Title: "Rock Paper Scissors", Solve: solveRockPaperScissors})
	Register(Puzzle{Day: 3, Title: "Rucksack Reorganization", Solve: solveRucksacks})
	Register(Puzzle{Day: 4, Title: "Camp Cleanup", Solve: solveCleanup})
	Register(Puzzle{Day: 5, Title: "Supply Stacks", Solve: solveCrates})
	Register(Puzzle{Day: 6, Title: "Tuning Trouble", Solve: solveMarkers})
	Register(Puzzle{Day: 9, Title: "Rope Bridge", Solve: solveRope})
	Register(Puzzle{Day: 10, Title: "Cathode-Ray Tube", Solve: solveCrt})
	Register(Puzzle{Day: 11, Title: "Monkey in the Middle", Solve: solveMonkeys})
}
