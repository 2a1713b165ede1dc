// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package crt

import (
	"io"
	"log"
	"strings"

	"github.com/ezrec/elfsim/internal"
)

// Assembler translates an instruction listing into a Program.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// parseWords decodes the words of a single line.
func (asm *Assembler) parseWords(words []string) (ins Instruction, err error) {
	op, ok := opMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	switch op {
	case OP_NOOP:
		if len(words) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		ins = Noop()
	case OP_ADDX:
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var delta int
		delta, err = internal.ParseInt[int](words[1])
		if err != nil {
			err = ErrParseNumber(words[1])
			return
		}
		ins = Addx(delta)
	}

	return
}

// Parse an input stream, and generate a Program.
// Blank lines are skipped; any other malformed line stops the parse.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := internal.ReadLines(input)
	if err != nil {
		return
	}

	prog = &Program{}
	for _, line := range lines {
		words := strings.Fields(line.Text)
		if len(words) == 0 {
			continue
		}

		var ins Instruction
		ins, err = asm.parseWords(words)
		if err != nil {
			err = ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			prog = nil
			return
		}

		if asm.Verbose {
			log.Printf("asm: %d: %v", line.LineNo, ins)
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo:      line.LineNo,
			Words:       words,
			Instruction: ins,
		})
	}

	if len(prog.Opcodes) == 0 {
		err = ErrProgramEmpty
		prog = nil
	}

	return
}
