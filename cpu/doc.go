// Package cpu implements the BELLE processor.
//
// The CPU has eight registers: r0-r3 are signed 16-bit integers, r4-r5
// unsigned 16-bit integers and r6-r7 32-bit floats. Memory is an array of
// optional 16-bit cells; reading a cell that was never written is a
// segmentation fault. Zero, overflow, remainder and sign flags are set by
// the arithmetic instructions and by software interrupts.
//
// The stack lives in memory between the stack pointer and the base pointer.
// Jumps push the program counter, and RET pops it.
package cpu
