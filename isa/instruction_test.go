package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// operands returns every valid argument of a kind at position n of a shape.
func operands(shape Shape, n int, kind ArgKind) (args []Argument) {
	low, high := shape.Limit(n, kind)
	for v := low; v <= high; v++ {
		args = append(args, Argument{Kind: kind, Value: v})
	}
	return
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for n := range OP_COUNT {
		op := Op(n)
		shape := op.Shape()

		var instrs []Instruction
		switch shape.MaxArgs {
		case 0:
			instrs = append(instrs, Instruction{Op: op})
		case 1:
			for _, kind := range shape.Arg1 {
				for _, arg := range operands(shape, 0, kind) {
					instrs = append(instrs, Instruction{Op: op, Arg1: arg})
				}
			}
		case 2:
			for _, kind1 := range shape.Arg1 {
				for _, arg1 := range operands(shape, 0, kind1) {
					for _, kind2 := range shape.Arg2 {
						for _, arg2 := range operands(shape, 1, kind2) {
							instrs = append(instrs, Instruction{Op: op, Arg1: arg1, Arg2: arg2})
						}
					}
				}
			}
		}

		assert.NotEmpty(instrs, op.String())

		for _, instr := range instrs {
			word, err := instr.Encode()
			if !assert.NoError(err, instr.String()) {
				continue
			}
			assert.Equal(op, Op(word>>12), instr.String())
			decoded, err := Decode(word)
			assert.NoError(err, instr.String())
			assert.Equal(instr, decoded, "%v => 0x%04x", instr, word)
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		instr Instruction
		word  uint16
	}){
		{Instruction{Op: OP_HLT}, 0x0000},
		{Instruction{Op: OP_ADD, Arg1: Register(0), Arg2: Literal(4)}, 0x1104},
		{Instruction{Op: OP_ADD, Arg1: Register(1), Arg2: Literal(-4)}, 0x1384},
		{Instruction{Op: OP_MOV, Arg1: Register(7), Arg2: Register(6)}, 0xee06},
		{Instruction{Op: OP_MUL, Arg1: Register(2), Arg2: MemPtr(3)}, 0xb483},
		{Instruction{Op: OP_DIV, Arg1: Register(3), Arg2: RegPtr(5)}, 0x4645},
		{Instruction{Op: OP_LD, Arg1: Register(1), Arg2: MemAddr(300)}, 0x632c},
		{Instruction{Op: OP_ST, Arg1: MemAddr(20), Arg2: Register(2)}, 0x70a2},
		{Instruction{Op: OP_ST, Arg1: RegPtr(3), Arg2: Register(1)}, 0x7b01},
		{Instruction{Op: OP_JMP, Arg1: MemAddr(12)}, 0x800c},
		{Instruction{Op: OP_JZ, Arg1: RegPtr(2)}, 0x9802},
		{Instruction{Op: OP_JO, Arg1: MemAddr(2047)}, 0x27ff},
		{Instruction{Op: OP_PUSH, Arg1: Literal(-128)}, 0xc180},
		{Instruction{Op: OP_POP, Arg1: Register(5)}, 0x3005},
		{Instruction{Op: OP_INT, Arg1: Literal(60)}, 0xd03c},
		{Instruction{Op: OP_INT}, 0xd000},
		{Instruction{Op: OP_RET}, 0x5000},
		{Instruction{Op: OP_NOP}, 0xf000},
	}

	for _, entry := range table {
		word, err := entry.instr.Encode()
		assert.NoError(err, entry.instr.String())
		assert.Equal(entry.word, word, "%v: 0x%04x != 0x%04x", entry.instr, entry.word, word)
	}
}

func TestArity(t *testing.T) {
	assert := assert.New(t)

	good := map[Op][]Argument{}
	for n := range OP_COUNT {
		op := Op(n)
		shape := op.Shape()
		var args []Argument
		for i := range shape.MaxArgs {
			kinds := shape.Arg1
			if i == 1 {
				kinds = shape.Arg2
			}
			low, _ := shape.Limit(i, kinds[0])
			args = append(args, Argument{Kind: kinds[0], Value: low})
		}
		good[op] = args
	}

	filler := Register(0)
	for op, args := range good {
		shape := op.Shape()
		for count := 0; count <= 2; count++ {
			instr := Instruction{Op: op}
			picked := make([]Argument, count)
			for i := range count {
				if i < len(args) {
					picked[i] = args[i]
				} else {
					picked[i] = filler
				}
			}
			if count > 0 {
				instr.Arg1 = picked[0]
			}
			if count > 1 {
				instr.Arg2 = picked[1]
			}
			err := instr.Check()
			if count >= shape.MinArgs && count <= shape.MaxArgs {
				assert.NoError(err, "%v with %d operands", op, count)
			} else {
				assert.True(errors.Is(err, ErrArity), "%v with %d operands: %v", op, count, err)
			}
		}
	}
}

func TestArgKind(t *testing.T) {
	assert := assert.New(t)

	table := []Instruction{
		{Op: OP_ADD, Arg1: Literal(1), Arg2: Register(0)},
		{Op: OP_ADD, Arg1: Register(1), Arg2: MemAddr(3)},
		{Op: OP_LD, Arg1: Register(1), Arg2: Register(3)},
		{Op: OP_ST, Arg1: Register(1), Arg2: Register(3)},
		{Op: OP_ST, Arg1: MemAddr(1), Arg2: Literal(3)},
		{Op: OP_JMP, Arg1: Register(1)},
		{Op: OP_POP, Arg1: Literal(1)},
		{Op: OP_INT, Arg1: Register(1)},
	}

	for _, instr := range table {
		err := instr.Check()
		assert.True(errors.Is(err, ErrArgKind), "%v: %v", instr, err)
	}
}

func TestLiteralRange(t *testing.T) {
	assert := assert.New(t)

	for v := -1000; v <= 1000; v++ {
		instr := Instruction{Op: OP_ADD, Arg1: Register(0), Arg2: Literal(v)}
		word, err := instr.Encode()
		if v < -128 || v > 127 {
			assert.True(errors.Is(err, ErrArgRange), "%v", v)
			continue
		}
		assert.NoError(err, "%v", v)
		decoded, err := Decode(word)
		assert.NoError(err)
		assert.Equal(v, decoded.Arg2.Value)
	}

	_, err := Instruction{Op: OP_INT, Arg1: Literal(-1)}.Encode()
	assert.True(errors.Is(err, ErrArgRange))
	_, err = Instruction{Op: OP_INT, Arg1: Literal(128)}.Encode()
	assert.True(errors.Is(err, ErrArgRange))
}

func TestAddressRange(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		instr Instruction
		ok    bool
	}){
		{Instruction{Op: OP_LD, Arg1: Register(0), Arg2: MemAddr(511)}, true},
		{Instruction{Op: OP_LD, Arg1: Register(0), Arg2: MemAddr(512)}, false},
		{Instruction{Op: OP_ST, Arg1: MemAddr(255), Arg2: Register(0)}, true},
		{Instruction{Op: OP_ST, Arg1: MemAddr(256), Arg2: Register(0)}, false},
		{Instruction{Op: OP_JMP, Arg1: MemAddr(2047)}, true},
		{Instruction{Op: OP_JMP, Arg1: MemAddr(2048)}, false},
		{Instruction{Op: OP_ADD, Arg1: Register(8), Arg2: Register(0)}, false},
		{Instruction{Op: OP_ADD, Arg1: Register(0), Arg2: MemPtr(128)}, false},
		{Instruction{Op: OP_JZ, Arg1: RegPtr(8)}, false},
	}

	for _, entry := range table {
		_, err := entry.instr.Encode()
		if entry.ok {
			assert.NoError(err, entry.instr.String())
		} else {
			assert.True(errors.Is(err, ErrArgRange), "%v: %v", entry.instr, err)
		}
	}
}

func TestDecodeDirective(t *testing.T) {
	assert := assert.New(t)

	for _, dir := range []Directive{DIR_START, DIR_SSP, DIR_SBP} {
		word, err := MakeDirective(dir, 100)
		assert.NoError(err)

		got, payload, ok := DirectiveDecode(word)
		assert.True(ok)
		assert.Equal(dir, got)
		assert.Equal(100, payload)

		instr, err := Decode(word)
		assert.Equal(OP_NOP, instr.Op)
		assert.True(errors.Is(err, ErrDirectiveWord))
		assert.Equal(dir.String()+" $100", Disassemble(word))
	}

	_, err := MakeDirective(DIR_START, 512)
	assert.True(errors.Is(err, ErrArgRange))
	_, err = MakeDirective(Directive(4), 1)
	assert.True(errors.Is(err, ErrDirectiveInvalid))

	_, _, ok := DirectiveDecode(0x0000)
	assert.False(ok)
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ADD %r0, #4", Instruction{Op: OP_ADD, Arg1: Register(0), Arg2: Literal(4)}.String())
	assert.Equal("ST &r1, %r2", Instruction{Op: OP_ST, Arg1: RegPtr(1), Arg2: Register(2)}.String())
	assert.Equal("MOV %r3, &$9", Instruction{Op: OP_MOV, Arg1: Register(3), Arg2: MemPtr(9)}.String())
	assert.Equal("HLT", Instruction{Op: OP_HLT}.String())
	assert.Equal("JMP $12", Disassemble(0x800c))
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	op, ok := LookupOp("push")
	assert.True(ok)
	assert.Equal(OP_PUSH, op)

	_, ok = LookupOp("SWP")
	assert.False(ok)

	dir, ok := LookupDirective(".SSP")
	assert.True(ok)
	assert.Equal(DIR_SSP, dir)

	_, ok = LookupDirective(".equ")
	assert.False(ok)
}

func TestClassOf(t *testing.T) {
	assert := assert.New(t)

	expected := []struct {
		class RegClass
		index int
	}{
		{CLASS_SIGNED, 0}, {CLASS_SIGNED, 1}, {CLASS_SIGNED, 2}, {CLASS_SIGNED, 3},
		{CLASS_UNSIGNED, 0}, {CLASS_UNSIGNED, 1},
		{CLASS_FLOAT, 0}, {CLASS_FLOAT, 1},
	}

	for reg, entry := range expected {
		class, index, err := ClassOf(reg)
		assert.NoError(err)
		assert.Equal(entry.class, class, "r%d", reg)
		assert.Equal(entry.index, index, "r%d", reg)
	}

	_, _, err := ClassOf(8)
	assert.Equal(ErrRegisterInvalid, err)
	_, _, err = ClassOf(-1)
	assert.Equal(ErrRegisterInvalid, err)
}

func FuzzDecode(f *testing.F) {
	for _, word := range []uint16{0x0000, 0x0200, 0x1104, 0x7b01, 0x9802, 0xd03c, 0xffff} {
		f.Add(word)
	}

	f.Fuzz(func(t *testing.T, word uint16) {
		assert := assert.New(t)

		instr, err := Decode(word)
		assert.True(instr.Op.Valid())
		if err != nil {
			assert.True(errors.Is(err, ErrDirectiveWord))
			assert.Equal(OP_NOP, instr.Op)
			return
		}

		// A decoded instruction that passes Check re-encodes to a word
		// that decodes to the same instruction.
		if instr.Check() == nil {
			again, err := instr.Encode()
			assert.NoError(err)
			redo, err := Decode(again)
			assert.NoError(err)
			assert.Equal(instr, redo)
		}

		assert.NotEmpty(Disassemble(word))
	})
}
