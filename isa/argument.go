package isa

import (
	"fmt"
)

// ArgKind is the addressing mode of an operand.
type ArgKind int

//go:generate go tool stringer -linecomment -type=ArgKind
const (
	ARG_NONE     = ArgKind(0) // none
	ARG_REGISTER = ArgKind(1) // register
	ARG_LITERAL  = ArgKind(2) // literal
	ARG_MEM_ADDR = ArgKind(3) // memaddr
	ARG_REG_PTR  = ArgKind(4) // regptr
	ARG_MEM_PTR  = ArgKind(5) // memptr
)

// Argument is one decoded operand.
type Argument struct {
	Kind  ArgKind
	Value int
}

// None is the absent operand.
var None = Argument{}

// Register returns a register-direct operand.
func Register(n int) Argument {
	return Argument{Kind: ARG_REGISTER, Value: n}
}

// Literal returns a literal operand.
func Literal(n int) Argument {
	return Argument{Kind: ARG_LITERAL, Value: n}
}

// MemAddr returns a direct memory address operand.
func MemAddr(n int) Argument {
	return Argument{Kind: ARG_MEM_ADDR, Value: n}
}

// RegPtr returns a register-pointer operand.
func RegPtr(n int) Argument {
	return Argument{Kind: ARG_REG_PTR, Value: n}
}

// MemPtr returns a memory-pointer operand.
func MemPtr(n int) Argument {
	return Argument{Kind: ARG_MEM_PTR, Value: n}
}

// String returns the assembly text of the operand.
func (arg Argument) String() string {
	switch arg.Kind {
	case ARG_REGISTER:
		return fmt.Sprintf("%%r%d", arg.Value)
	case ARG_LITERAL:
		return fmt.Sprintf("#%d", arg.Value)
	case ARG_MEM_ADDR:
		return fmt.Sprintf("$%d", arg.Value)
	case ARG_REG_PTR:
		return fmt.Sprintf("&r%d", arg.Value)
	case ARG_MEM_PTR:
		return fmt.Sprintf("&$%d", arg.Value)
	}
	return ""
}

// SignMagnitude encodes a literal as a sign-magnitude byte. -128 takes the
// negative-zero pattern 0x80.
func SignMagnitude(value int) (b uint8, err error) {
	switch {
	case value < -128 || value > 127:
		err = ErrArgRange
	case value == -128:
		b = 0x80
	case value < 0:
		b = 0x80 | uint8(-value)
	default:
		b = uint8(value)
	}
	return
}

// FromSignMagnitude decodes a sign-magnitude byte.
func FromSignMagnitude(b uint8) (value int) {
	value = int(b & 0x7f)
	if b&0x80 != 0 {
		if value == 0 {
			value = -128
		} else {
			value = -value
		}
	}
	return
}
