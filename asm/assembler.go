// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"io"
	"io/fs"
	"maps"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"

	"github.com/ezrec/belle/isa"
)

// Assembler is a two pass assembler for the BELLE instruction set.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	FS      fs.FS    // File system for ParseFile and #include.
	Include []string // Directories searched for #include paths.

	Opcodes []Opcode // List of generated opcodes.
	Symbols *Symbols // Symbol table of the last assembly.

	predefine map[string]string // Predefines
}

// Predefine defines an equate visible to every assembly.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

func (asm *Assembler) log() *logrus.Entry {
	return logrus.WithField("component", "asm")
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	return asm.ParseNamed("-", input)
}

// ParseFile parses a file from the assembler's file system.
func (asm *Assembler) ParseFile(name string) (prog *Program, err error) {
	if asm.FS == nil {
		err = fs.ErrNotExist
		return
	}
	file, err := asm.FS.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	return asm.ParseNamed(name, file)
}

// ParseNamed parses an input stream, naming it in diagnostics.
// No Program is returned if any line fails.
func (asm *Assembler) ParseNamed(name string, input io.Reader) (prog *Program, err error) {
	asm.Opcodes = asm.Opcodes[:0]
	asm.Symbols = nil

	pre := &Preprocessor{
		Verbose: asm.Verbose,
		FS:      asm.FS,
		Include: asm.Include,
		Equate:  maps.Clone(asm.predefine),
	}

	lines, err := pre.Process(name, input)
	if err != nil {
		return
	}

	symbols, err := Resolve(lines)
	if err != nil {
		return
	}
	asm.Symbols = symbols

	if asm.Verbose {
		asm.log().Infof("start %v", symbols.Start)
		asm.log().Info(pp.Sprint(symbols.Table))
	}

	ip := symbols.Start
	for _, line := range lines {
		var opcode *Opcode
		opcode, err = asm.parseLine(line, ip, symbols)
		if err != nil {
			var serr *ErrSyntax
			if errors.As(err, &serr) {
				serr.File = line.File
			} else {
				err = &ErrSyntax{File: line.File, LineNo: line.LineNo, Line: line.Text, Err: err}
			}
			return
		}
		if opcode == nil {
			continue
		}
		if asm.Verbose {
			asm.log().Debugf("%04x: %04x %v", opcode.Ip, opcode.Word, opcode.Text)
		}
		if !opcode.Directive {
			ip++
		}
		asm.Opcodes = append(asm.Opcodes, *opcode)
	}

	prog = &Program{
		Opcodes: append([]Opcode(nil), asm.Opcodes...),
		Symbols: symbols,
	}

	return
}

// splitOperands checks the comma separation of the operand tokens.
func splitOperands(tokens []Token) (args []Token, err error) {
	expectOperand := true
	for _, tok := range tokens {
		switch {
		case tok.Kind == TOKEN_EOL:
			if !expectOperand || len(args) == 0 {
				return
			}
			err = ErrOperandMissing
			return
		case tok.Kind == TOKEN_COMMA:
			if expectOperand {
				err = ErrOperandMissing
				return
			}
			expectOperand = true
		case tok.IsOperand():
			if !expectOperand {
				err = ErrCommaMissing
				return
			}
			args = append(args, tok)
			expectOperand = false
		default:
			err = ErrInstructionSyntax
			return
		}
	}
	return
}

// parseLine lexes, verifies and encodes a single line. Blank lines and
// bare declarations produce no opcode.
func (asm *Assembler) parseLine(line Line, ip int, symbols *Symbols) (opcode *Opcode, err error) {
	tokens, err := Lex(line.Text, line.LineNo)
	if err != nil {
		return
	}

	if len(tokens) == 1 {
		return
	}

	head := tokens[0]
	args, err := splitOperands(tokens[1:])
	if err != nil {
		return
	}

	var word uint16
	directive := false

	switch head.Kind {
	case TOKEN_LABEL:
		dir, ok := isa.LookupDirective(head.Text)
		if !ok {
			err = ErrDirectiveInvalid
			return
		}
		if len(args) != 1 || args[0].Kind != TOKEN_MEM_ADDR {
			err = ErrDirectiveInvalid
			return
		}
		word, err = isa.MakeDirective(dir, args[0].Value)
		if err != nil {
			return
		}
		directive = true
	case TOKEN_IDENT:
		op, ok := isa.LookupOp(head.Text)
		if !ok {
			err = ErrInstructionInvalid
			return
		}

		err = Verify(op, args, line.LineNo)
		if err != nil {
			return
		}

		instr := isa.Instruction{Op: op}
		for n, tok := range args {
			var arg isa.Argument
			arg, err = tok.Argument(symbols)
			if err != nil {
				return
			}
			if n == 0 {
				instr.Arg1 = arg
			} else {
				instr.Arg2 = arg
			}
		}

		word, err = instr.Encode()
		if err != nil {
			return
		}
	default:
		err = ErrInstructionSyntax
		return
	}

	opcode = &Opcode{
		File:      line.File,
		LineNo:    line.LineNo,
		Ip:        ip,
		Text:      line.Text,
		Word:      word,
		Directive: directive,
	}

	return
}
