package crt

// Opcode is an assembled instruction and its source location.
type Opcode struct {
	LineNo int      // Source line number.
	Words  []string // Source words.
	Instruction
}

// Program is an assembled instruction listing.
type Program struct {
	Opcodes []Opcode
}

// Cycles returns the total cycles needed to run the program.
func (prog *Program) Cycles() (cycles int) {
	for _, op := range prog.Opcodes {
		cycles += op.Cycles()
	}

	return
}
