package asm

import (
	"iter"
	"slices"

	"github.com/ezrec/belle/internal"
)

// Opcode is a line of assembled code with its source location.
type Opcode struct {
	File      string
	LineNo    int
	Ip        int    // Address of the word; directives hold the address of the next instruction.
	Text      string // Source text.
	Word      uint16
	Directive bool // Set for loader directive words.
}

// Program is the listing of an assembly.
type Program struct {
	Opcodes []Opcode
	Symbols *Symbols
}

// Start returns the load address of the program.
func (prog *Program) Start() int {
	if prog.Symbols == nil {
		return 0
	}
	return prog.Symbols.Start
}

// Debug returns the opcode placed at an address, or nil.
func (prog *Program) Debug(ip uint16) *Opcode {
	for n, op := range prog.Opcodes {
		if !op.Directive && uint16(op.Ip) == ip {
			return &prog.Opcodes[n]
		}
	}

	return nil
}

// LineNo returns the source line of the opcode at an address, or 0.
func (prog *Program) LineNo(ip uint16) int {
	op := prog.Debug(ip)
	if op == nil {
		return 0
	}
	return op.LineNo
}

// Directives iterates over the directive words.
func (prog *Program) Directives() iter.Seq[uint16] {
	return func(yield func(word uint16) bool) {
		for _, op := range prog.Opcodes {
			if op.Directive && !yield(op.Word) {
				return
			}
		}
	}
}

// Codes iterates over the addresses and words of the instructions.
func (prog *Program) Codes() iter.Seq2[uint16, uint16] {
	return func(yield func(ip uint16, word uint16) bool) {
		for _, op := range prog.Opcodes {
			if !op.Directive && !yield(uint16(op.Ip), op.Word) {
				return
			}
		}
	}
}

// words iterates over the instruction words.
func (prog *Program) words() iter.Seq[uint16] {
	return func(yield func(word uint16) bool) {
		for _, word := range prog.Codes() {
			if !yield(word) {
				return
			}
		}
	}
}

// Binary returns the binary instruction stream: the directive words
// first, then the instruction words in address order.
func (prog *Program) Binary() (words []uint16) {
	return slices.Collect(internal.IterSeqConcat(prog.Directives(), prog.words()))
}
