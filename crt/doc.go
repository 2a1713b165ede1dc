// Package crt implements the cycle accurate CPU and cathode-ray tube of the
// handheld communication device.
//
// The CPU has a single register X (initially 1) and two instructions:
// noop, which takes one cycle, and addx V, which takes two cycles and then
// adds V to X. During every cycle the CRT draws one pixel of a 40x6 frame,
// lit when the three pixel wide sprite centered on X covers the column being
// drawn. The signal strength (cycle number times X) is sampled during the
// 20th cycle and every 40 cycles after that.
//
// The assembler reads the instruction listing, one instruction per line.
package crt
