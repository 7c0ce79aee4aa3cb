package isa

import (
	"errors"
	"strings"
)

// Instruction is a structured instruction: an opcode and up to two operands.
// One-operand instructions use Arg1.
type Instruction struct {
	Op   Op
	Arg1 Argument
	Arg2 Argument
}

// Count returns the number of operands present.
func (instr Instruction) Count() int {
	switch {
	case instr.Arg1.Kind == ARG_NONE && instr.Arg2.Kind == ARG_NONE:
		return 0
	case instr.Arg2.Kind == ARG_NONE:
		return 1
	default:
		return 2
	}
}

// Check verifies the operand count, the operand kinds and the operand ranges
// against the opcode's shape.
func (instr Instruction) Check() (err error) {
	if !instr.Op.Valid() {
		err = ErrOpcodeInvalid
		return
	}

	if instr.Arg1.Kind == ARG_NONE && instr.Arg2.Kind != ARG_NONE {
		err = ErrArity
		return
	}

	shape := instr.Op.Shape()
	count := instr.Count()
	if count < shape.MinArgs || count > shape.MaxArgs {
		err = ErrArity
		return
	}

	for n, arg := range []Argument{instr.Arg1, instr.Arg2}[:count] {
		tag := ErrOpcodeArg1
		if n == 1 {
			tag = ErrOpcodeArg2
		}
		if !shape.Allows(n, arg.Kind) {
			err = errors.Join(tag, ErrArgKind)
			return
		}
		low, high := shape.Limit(n, arg.Kind)
		if arg.Value < low || arg.Value > high {
			err = errors.Join(tag, ErrArgRange)
			return
		}
	}

	return
}

// encodeSource encodes the generic source field: a register in bits [5:0],
// or a literal, memory-pointer or register-pointer selected by bit 8, 7 or 6.
func encodeSource(arg Argument) (field uint16, err error) {
	switch arg.Kind {
	case ARG_REGISTER:
		field = uint16(arg.Value) & 0x3f
	case ARG_LITERAL:
		var b uint8
		b, err = SignMagnitude(arg.Value)
		field = (1 << 8) | uint16(b)
	case ARG_MEM_PTR:
		field = (1 << 7) | (uint16(arg.Value) & 0x7f)
	case ARG_REG_PTR:
		field = (1 << 6) | (uint16(arg.Value) & 0x3f)
	default:
		err = ErrArgKind
	}
	return
}

// decodeSource decodes the generic source field. The mode bits are
// examined in priority order: literal, memory-pointer, register-pointer.
func decodeSource(word uint16) Argument {
	switch {
	case word&(1<<8) != 0:
		return Literal(FromSignMagnitude(uint8(word & 0xff)))
	case word&(1<<7) != 0:
		return MemPtr(int(word & 0x7f))
	case word&(1<<6) != 0:
		return RegPtr(int(word & 0x3f))
	default:
		return Register(int(word & 0x3f))
	}
}

// Encode an instruction into an instruction word.
//
// An INT without an operand encodes as INT #0.
func (instr Instruction) Encode() (word uint16, err error) {
	err = instr.Check()
	if err != nil {
		return
	}

	op := uint16(instr.Op) << 12
	arg1 := uint16(instr.Arg1.Value)
	arg2 := uint16(instr.Arg2.Value)

	switch instr.Op.Shape().Layout {
	case LAYOUT_NONE:
		word = op
	case LAYOUT_ALU:
		var src uint16
		src, err = encodeSource(instr.Arg2)
		if err != nil {
			err = errors.Join(ErrOpcodeArg2, err)
			return
		}
		word = op | (arg1 << 9) | src
	case LAYOUT_LD:
		word = op | (arg1 << 9) | arg2
	case LAYOUT_ST:
		switch instr.Arg1.Kind {
		case ARG_MEM_ADDR:
			word = op | (arg1 << 3) | arg2
		case ARG_REG_PTR:
			word = op | (1 << 11) | (arg1 << 8) | arg2
		}
	case LAYOUT_ONE:
		switch {
		case instr.Op == OP_POP:
			word = op | arg1
		case instr.Op == OP_PUSH:
			var src uint16
			src, err = encodeSource(instr.Arg1)
			if err != nil {
				err = errors.Join(ErrOpcodeArg1, err)
				return
			}
			word = op | src
		case instr.Arg1.Kind == ARG_REG_PTR:
			word = op | (1 << 11) | arg1
		default:
			word = op | arg1
		}
	case LAYOUT_INT:
		word = op
		if instr.Arg1.Kind == ARG_LITERAL {
			word |= arg1
		}
	}

	return
}

// Decode an instruction word. Decode is total: every word yields an
// instruction. A directive word decodes to NOP with an ErrDirectiveWord
// diagnostic.
func Decode(word uint16) (instr Instruction, err error) {
	if _, _, ok := DirectiveDecode(word); ok {
		instr = Instruction{Op: OP_NOP}
		err = errors.Join(ErrDirectiveWord, ErrWord(word))
		return
	}

	op := Op(word >> 12)
	instr.Op = op

	switch op.Shape().Layout {
	case LAYOUT_NONE:
	case LAYOUT_ALU:
		instr.Arg1 = Register(int((word >> 9) & 0x7))
		instr.Arg2 = decodeSource(word)
	case LAYOUT_LD:
		instr.Arg1 = Register(int((word >> 9) & 0x7))
		instr.Arg2 = MemAddr(int(word & 0x1ff))
	case LAYOUT_ST:
		if word&(1<<11) != 0 {
			instr.Arg1 = RegPtr(int((word >> 8) & 0x7))
		} else {
			instr.Arg1 = MemAddr(int((word >> 3) & 0x1ff))
		}
		instr.Arg2 = Register(int(word & 0x7))
	case LAYOUT_ONE:
		switch {
		case op == OP_POP:
			instr.Arg1 = Register(int(word & 0x3f))
		case op == OP_PUSH:
			instr.Arg1 = decodeSource(word)
		case word&(1<<11) != 0:
			instr.Arg1 = RegPtr(int(word & 0xf))
		default:
			instr.Arg1 = MemAddr(int(word & 0xfff))
		}
	case LAYOUT_INT:
		instr.Arg1 = Literal(int(word & 0x7f))
	}

	return
}

// String returns the assembly text of the instruction.
func (instr Instruction) String() string {
	var args []string
	for _, arg := range []Argument{instr.Arg1, instr.Arg2} {
		if arg.Kind != ARG_NONE {
			args = append(args, arg.String())
		}
	}
	if len(args) == 0 {
		return instr.Op.String()
	}
	return instr.Op.String() + " " + strings.Join(args, ", ")
}

// Disassemble returns the assembly text of any word in a binary stream,
// including directive words.
func Disassemble(word uint16) string {
	if dir, payload, ok := DirectiveDecode(word); ok {
		return DirectiveString(dir, payload)
	}
	instr, _ := Decode(word)
	return instr.String()
}
