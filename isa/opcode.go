package isa

import (
	"strings"
)

// Op is the 4-bit opcode of an instruction word.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_HLT  = Op(0)  // HLT
	OP_ADD  = Op(1)  // ADD
	OP_JO   = Op(2)  // JO
	OP_POP  = Op(3)  // POP
	OP_DIV  = Op(4)  // DIV
	OP_RET  = Op(5)  // RET
	OP_LD   = Op(6)  // LD
	OP_ST   = Op(7)  // ST
	OP_JMP  = Op(8)  // JMP
	OP_JZ   = Op(9)  // JZ
	OP_CMP  = Op(10) // CMP
	OP_MUL  = Op(11) // MUL
	OP_PUSH = Op(12) // PUSH
	OP_INT  = Op(13) // INT
	OP_MOV  = Op(14) // MOV
	OP_NOP  = Op(15) // NOP
)

// OP_COUNT is the number of opcodes.
const OP_COUNT = 16

// Layout is the field layout an opcode is encoded with.
type Layout int

const (
	LAYOUT_NONE = Layout(0) // No operands.
	LAYOUT_ALU  = Layout(1) // dst<<9 | source field.
	LAYOUT_ONE  = Layout(2) // Jump target, or a stack operand.
	LAYOUT_LD   = Layout(3) // dst<<9 | 9-bit address.
	LAYOUT_ST   = Layout(4) // Direct or register-pointer destination, source register.
	LAYOUT_INT  = Layout(5) // 7-bit interrupt number.
)

// Shape is the operand contract of an opcode.
type Shape struct {
	Layout  Layout
	MinArgs int
	MaxArgs int
	Arg1    []ArgKind // Kinds permitted for the first operand.
	Arg2    []ArgKind // Kinds permitted for the second operand.
}

var sourceKinds = []ArgKind{ARG_REGISTER, ARG_LITERAL, ARG_REG_PTR, ARG_MEM_PTR}

var aluShape = Shape{
	Layout:  LAYOUT_ALU,
	MinArgs: 2,
	MaxArgs: 2,
	Arg1:    []ArgKind{ARG_REGISTER},
	Arg2:    sourceKinds,
}

var jumpShape = Shape{
	Layout:  LAYOUT_ONE,
	MinArgs: 1,
	MaxArgs: 1,
	Arg1:    []ArgKind{ARG_MEM_ADDR, ARG_REG_PTR},
}

var noneShape = Shape{Layout: LAYOUT_NONE}

var shapes = [OP_COUNT]Shape{
	OP_HLT: noneShape,
	OP_ADD: aluShape,
	OP_JO:  jumpShape,
	OP_POP: {
		Layout:  LAYOUT_ONE,
		MinArgs: 1,
		MaxArgs: 1,
		Arg1:    []ArgKind{ARG_REGISTER},
	},
	OP_DIV: aluShape,
	OP_RET: noneShape,
	OP_LD: {
		Layout:  LAYOUT_LD,
		MinArgs: 2,
		MaxArgs: 2,
		Arg1:    []ArgKind{ARG_REGISTER},
		Arg2:    []ArgKind{ARG_MEM_ADDR},
	},
	OP_ST: {
		Layout:  LAYOUT_ST,
		MinArgs: 2,
		MaxArgs: 2,
		Arg1:    []ArgKind{ARG_MEM_ADDR, ARG_REG_PTR},
		Arg2:    []ArgKind{ARG_REGISTER},
	},
	OP_JMP: jumpShape,
	OP_JZ:  jumpShape,
	OP_CMP: aluShape,
	OP_MUL: aluShape,
	OP_PUSH: {
		Layout:  LAYOUT_ONE,
		MinArgs: 1,
		MaxArgs: 1,
		Arg1:    sourceKinds,
	},
	OP_INT: {
		Layout:  LAYOUT_INT,
		MinArgs: 0,
		MaxArgs: 1,
		Arg1:    []ArgKind{ARG_LITERAL},
	},
	OP_MOV: aluShape,
	OP_NOP: noneShape,
}

// LookupOp returns the opcode for a mnemonic, ignoring case.
func LookupOp(mnemonic string) (op Op, ok bool) {
	upper := strings.ToUpper(mnemonic)
	for n := range OP_COUNT {
		if Op(n).String() == upper {
			return Op(n), true
		}
	}
	return
}

// Valid returns true if the opcode fits the 4-bit field.
func (op Op) Valid() bool {
	return op >= 0 && op < OP_COUNT
}

// Shape returns the operand contract of the opcode.
func (op Op) Shape() Shape {
	if !op.Valid() {
		return noneShape
	}
	return shapes[op]
}

// IsJump returns true for the opcodes that repurpose bit 11 as an indirect flag.
func (op Op) IsJump() bool {
	return op == OP_JO || op == OP_JZ || op == OP_JMP
}

// Allows returns true if the kind is permitted at operand position n (0 or 1).
func (shape Shape) Allows(n int, kind ArgKind) bool {
	var kinds []ArgKind
	switch n {
	case 0:
		kinds = shape.Arg1
	case 1:
		kinds = shape.Arg2
	}
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Expects describes the operand count of the shape for diagnostics.
func (shape Shape) Expects() string {
	switch {
	case shape.MaxArgs == 0:
		return f("no operands")
	case shape.MinArgs == 0:
		return f("zero or one operand")
	case shape.MaxArgs == 1:
		return f("one operand")
	default:
		return f("two operands")
	}
}

// Limit returns the inclusive range an operand of the kind may take at
// operand position n (0 or 1) in this layout.
func (shape Shape) Limit(n int, kind ArgKind) (low, high int) {
	switch kind {
	case ARG_REGISTER:
		return 0, REGISTER_COUNT - 1
	case ARG_REG_PTR:
		return 0, REGISTER_COUNT - 1
	case ARG_MEM_PTR:
		return 0, 0x7f
	case ARG_LITERAL:
		if shape.Layout == LAYOUT_INT {
			return 0, 0x7f
		}
		return -128, 127
	case ARG_MEM_ADDR:
		switch shape.Layout {
		case LAYOUT_LD:
			return 0, 0x1ff
		case LAYOUT_ST:
			return 0, 0xff
		case LAYOUT_ONE:
			return 0, 0x7ff
		}
	}
	return 0, -1
}
