// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package crt

import (
	"fmt"
	"log"
	"strings"
)

const (
	SAMPLE_FIRST  = 20 // First cycle sampled for signal strength.
	SAMPLE_PERIOD = 40 // Cycles between signal strength samples.
)

// Result is the outcome of running a program.
type Result struct {
	Signal  int      // Sum of the sampled signal strengths.
	Display *Display // Frame drawn while running.
}

// Cpu is the simulation context for the CPU and its CRT.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	X       int      // Register X.
	Cycle   int      // Completed cycles.
	Signal  int      // Accumulated signal strength.
	Samples int      // Number of signal strength samples taken.
	Display *Display // CRT frame.
}

// NewCpu creates a new CPU driving a width x height display.
func NewCpu(width, height int) (cpu *Cpu) {
	cpu = &Cpu{
		Display: NewDisplay(width, height),
	}
	cpu.Reset()

	return
}

// Reset the CPU state.
// - Sets X to 1.
// - Zeros the cycle, signal, and sample counters.
// - Blanks the display.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.X = 1
	cpu.Cycle = 0
	cpu.Signal = 0
	cpu.Samples = 0
	cpu.Display.Clear()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 7s: %d\n", "x", cpu.X)
	text += fmt.Sprintf("% 7s: %d\n", "cycle", cpu.Cycle)
	text += fmt.Sprintf("% 7s: %d\n", "signal", cpu.Signal)
	text += fmt.Sprintf("% 7s: %d\n", "samples", cpu.Samples)

	return
}

// NextSample returns the cycle number of the next signal strength sample.
func (cpu *Cpu) NextSample() int {
	return SAMPLE_FIRST + SAMPLE_PERIOD*cpu.Samples
}

// draw the pixel for the current cycle.
func (cpu *Cpu) draw() (err error) {
	if cpu.Cycle >= cpu.Display.Len() {
		err = ErrFrameOverflow
		return
	}

	column := cpu.Cycle % cpu.Display.Width
	if column >= cpu.X-1 && column <= cpu.X+1 {
		err = cpu.Display.Set(cpu.Cycle)
	}

	return
}

// sample the signal strength during the cycle in progress.
func (cpu *Cpu) sample() {
	during := cpu.Cycle + 1
	if during != cpu.NextSample() {
		return
	}

	strength := cpu.X * during
	cpu.Signal += strength
	cpu.Samples++

	if cpu.Verbose {
		log.Printf("cpu: cycle %d x %d strength %d", during, cpu.X, strength)
	}
}

// Tick executes a single instruction.
//
// Each cycle draws a pixel, then completes. The sample following the last
// cycle of an addx observes the updated X, as X changes at the end of that
// cycle.
func (cpu *Cpu) Tick(ins Instruction) (err error) {
	if cpu.Verbose {
		log.Printf("%04d: %v", cpu.Cycle, ins)
	}

	cycles := ins.Cycles()
	for n := range cycles {
		err = cpu.draw()
		if err != nil {
			return
		}
		cpu.Cycle++
		if n == cycles-1 && ins.Op == OP_ADDX {
			cpu.X += ins.Delta
		}
		cpu.sample()
	}

	return
}

// Run resets the CPU and executes every instruction of the program.
func (cpu *Cpu) Run(prog *Program) (result Result, err error) {
	cpu.Reset()

	if cpu.Verbose {
		log.Printf("cpu: %d instructions, %d cycles", len(prog.Opcodes), prog.Cycles())
	}

	for _, op := range prog.Opcodes {
		if cpu.Verbose {
			log.Printf("%v: %v", op.LineNo, strings.Join(op.Words, " "))
		}
		err = cpu.Tick(op.Instruction)
		if err != nil {
			err = &ErrRuntime{LineNo: op.LineNo, Err: err}
			return
		}
	}

	result = Result{
		Signal:  cpu.Signal,
		Display: cpu.Display,
	}

	return
}
