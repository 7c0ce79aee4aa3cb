package asm

import (
	"errors"

	"github.com/ezrec/belle/translate"
)

var f = translate.From

var (
	// Lexer errors
	ErrCharUnknown       = errors.New(f("unknown character"))
	ErrCharUnterminated  = errors.New(f("unterminated character literal"))
	ErrCharEmpty         = errors.New(f("empty character literal"))
	ErrCharLong          = errors.New(f("character literal holds more than one character"))
	ErrRegisterSyntax    = errors.New(f("register must be written %%rN"))
	ErrPointerSyntax     = errors.New(f("pointer must be written &rN or &$N"))
	ErrLiteralSyntax     = errors.New(f("value after # must be a numeric literal"))
	ErrLiteralRange      = errors.New(f("literal must be between -128 and 127"))
	ErrAddressSyntax     = errors.New(f("value after $ must be numeric"))
	ErrAddressRange      = errors.New(f("memory address must be between 1 and 511"))
	ErrSubroutineSyntax  = errors.New(f("subroutine name missing after @"))
	ErrLabelSyntax       = errors.New(f("label name missing after ."))
	ErrCommaMissing      = errors.New(f("operands must be separated by a comma"))
	ErrOperandMissing    = errors.New(f("operand missing"))
	ErrOperandExtra      = errors.New(f("excessive operands"))
	ErrInstructionSyntax = errors.New(f("instruction must start with a mnemonic"))

	// Resolver errors
	ErrStartDuplicate  = errors.New(f(".start duplicated"))
	ErrStartSyntax     = errors.New(f(".start must be followed by a memory address"))
	ErrSymbolDuplicate = errors.New(f("subroutine declared twice"))

	// Preprocessor errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrIncludeSyntax   = errors.New(f("#include must name a quoted path"))
	ErrIncludeCycle    = errors.New(f("#include cycle"))
	ErrIncludeMissing  = errors.New(f("#include file not found"))

	// Assembler errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrDirectiveInvalid   = errors.New(f("directive invalid"))
)

// ErrSymbolMissing is returned when a subroutine reference has no declaration.
type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("subroutine %v does not exist", string(err))
}

// ErrSyntax locates an error in the source text.
type ErrSyntax struct {
	File   string
	LineNo int
	Col    int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	if err.Col > 0 {
		return f("%v:%d:%d '%v' %v", err.File, err.LineNo, err.Col, err.Line, err.Err)
	}
	return f("%v:%d '%v' %v", err.File, err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrVerify reports an instruction whose operands do not match its shape.
type ErrVerify struct {
	Mnemonic string
	Expects  string
	LineNo   int
	Err      error
}

func (err ErrVerify) Error() string {
	return f("line %d: %v expects %v: %v", err.LineNo, err.Mnemonic, err.Expects, err.Err)
}

func (err ErrVerify) Unwrap() error {
	return err.Err
}

// ErrParseExpression is returned when a $(...) expression does not
// evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
