package asm

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/belle/isa"
)

func assemble(t *testing.T, program []string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(strings.Join(program, "\n")))
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Equal(0, prog.Start())
	assert.Empty(prog.Binary())
}

func TestAssemblerEncode(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"ADD %r0, #4",
		"HLT",
	}

	prog, err := assemble(t, program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Opcode{
		{"-", 1, 0, "ADD %r0, #4", 0x1104, false},
		{"-", 2, 1, "HLT", 0x0000, false},
	}
	assert.Equal(expected, prog.Opcodes)
	assert.Equal([]uint16{0x1104, 0x0000}, prog.Binary())
}

func TestAssemblerSubroutine(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".start $20",
		".ssp $300",
		".sbp $300",
		"main:",
		"  MOV %r0, #3",     // 20
		"loop:",             //
		"  ADD %r0, #-1",    // 21
		"  CMP %r0, #0",     // 22
		"  JZ @done",        // 23
		"  JMP @loop",       // 24
		"done:",             //
		"  INT",             // 25
		"  HLT",             // 26
		"helper: ST &r1, %r0", // 27
		"  RET",             // 28
	}

	prog, err := assemble(t, program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(20, prog.Start())
	assert.Equal(map[string]int{"main": 20, "loop": 21, "done": 25, "helper": 27}, prog.Symbols.Table)

	start, _ := isa.MakeDirective(isa.DIR_START, 20)
	ssp, _ := isa.MakeDirective(isa.DIR_SSP, 300)
	sbp, _ := isa.MakeDirective(isa.DIR_SBP, 300)

	expected := []uint16{
		start, ssp, sbp,
		0xe103, // MOV %r0, #3
		0x1181, // ADD %r0, #-1
		0xa100, // CMP %r0, #0
		0x9019, // JZ $25
		0x8015, // JMP $21
		0xd000, // INT
		0x0000, // HLT
		0x7900, // ST &r1, %r0
		0x5000, // RET
	}
	assert.Equal(expected, prog.Binary())

	op := prog.Debug(23)
	if assert.NotNil(op) {
		assert.Equal(9, op.LineNo)
		assert.Equal("  JZ @done", op.Text)
	}
	assert.Equal(14, prog.LineNo(27))
	assert.Equal(0, prog.LineNo(100))

	for ip, word := range prog.Codes() {
		instr, err := isa.Decode(word)
		assert.NoError(err)
		assert.True(instr.Op.Valid(), "%v", ip)
	}
}

func TestAssemblerDeclarationLines(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".start $10",
		"top: .ssp $100",
		"bar:",
		"  HLT",      // 10
		"  JMP @bar", // 11
		"first:second:",
		"  JMP @top", // 12
	}

	prog, err := assemble(t, program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(map[string]int{"top": 10, "bar": 10, "first": 12, "second": 12}, prog.Symbols.Table)

	codes := map[uint16]uint16{}
	for ip, word := range prog.Codes() {
		codes[ip] = word
	}
	assert.Equal(map[uint16]uint16{
		10: 0x0000, // HLT
		11: 0x800a, // JMP $10
		12: 0x800a, // JMP $10
	}, codes)
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"FOO %r0", ErrInstructionInvalid},
		{"ADD %r0", isa.ErrArity},
		{"HLT %r0", isa.ErrArity},
		{"JMP", isa.ErrArity},
		{"INT #1, #2", isa.ErrArity},
		{"ADD #1, %r0", isa.ErrArgKind},
		{"LD %r0, %r1", isa.ErrArgKind},
		{"ST %r0, %r1", isa.ErrArgKind},
		{"ST $3, #1", isa.ErrArgKind},
		{"ADD %r0, @main", isa.ErrArgKind},
		{"ADD %r8, #1", isa.ErrArgRange},
		{"ST $256, %r1", isa.ErrArgRange},
		{"INT #-1", isa.ErrArgRange},
		{"ADD %r0, &$200", isa.ErrArgRange},
		{"ADD %r0 #1", ErrCommaMissing},
		{"ADD %r0,", ErrOperandMissing},
		{"ADD , %r0", ErrOperandMissing},
		{"%r0", ErrInstructionSyntax},
		{".bogus $1", ErrDirectiveInvalid},
		{".ssp %r1", ErrDirectiveInvalid},
		{"JMP @nowhere", ErrSymbolMissing("nowhere")},
	}

	for _, entry := range table {
		prog, err := assemble(t, []string{"main:", "NOP", entry.line})
		assert.Nil(prog, entry.line)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.line, err)

		var serr *ErrSyntax
		if assert.True(errors.As(err, &serr), entry.line) {
			assert.Equal(3, serr.LineNo, entry.line)
		}
	}
}

func TestAssemblerVerifyMessage(t *testing.T) {
	assert := assert.New(t)

	_, err := assemble(t, []string{"MOV %r1"})
	var verr *ErrVerify
	if assert.True(errors.As(err, &verr)) {
		assert.Equal("MOV", verr.Mnemonic)
		assert.Equal(1, verr.LineNo)
		assert.Contains(verr.Expects, "two operands")
	}
}

func TestAssemblerJumpRange(t *testing.T) {
	assert := assert.New(t)

	_, err := assemble(t, []string{".start $500", "JMP @far", "far: HLT"})
	assert.NoError(err)

	program := []string{"JMP @far"}
	for range 2100 {
		program = append(program, "NOP")
	}
	program = append(program, "far: HLT")
	_, err = assemble(t, program)
	assert.True(errors.Is(err, isa.ErrArgRange), "%v", err)
}

func TestAssemblerInclude(t *testing.T) {
	assert := assert.New(t)

	fsys := fstest.MapFS{
		"src/main.asm": {Data: []byte(strings.Join([]string{
			`#include "lib.asm"`,
			`MOV %r0, #COUNT`,
			`JMP @print`,
		}, "\n"))},
		"src/lib.asm": {Data: []byte(strings.Join([]string{
			`.equ COUNT 5`,
			`print: INT #0`,
			`RET`,
		}, "\n"))},
	}

	asm := &Assembler{FS: fsys}
	prog, err := asm.ParseFile("src/main.asm")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(0, prog.Symbols.Table["print"])
	assert.Equal("src/lib.asm", prog.Opcodes[0].File)
	assert.Equal(2, prog.Opcodes[0].LineNo)
	assert.Equal("src/main.asm", prog.Opcodes[2].File)
	assert.Equal(2, prog.Opcodes[2].LineNo)
	assert.Equal(uint16(0xe105), prog.Opcodes[2].Word)
	assert.Equal(uint16(0x8000), prog.Opcodes[3].Word)
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("INT_READ_CHAR", "9")

	prog, err := asm.Parse(strings.NewReader("INT #INT_READ_CHAR\nMOV %r1, #$(INT_READ_CHAR * 2 + LINENO)"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal([]uint16{0xd009, 0xe314}, prog.Binary())
}
