// Package isa defines the BELLE instruction set: the opcodes, the operand
// kinds, the register classes, and the matched encoder and decoder for the
// 16-bit instruction word.
//
// An instruction word carries its opcode in bits [15:12]. The remaining
// twelve bits are laid out according to the opcode's Layout. Directive words
// share the stream; they have a zero opcode and a directive code in bits
// [11:9], with a 9-bit payload in bits [8:0].
package isa
