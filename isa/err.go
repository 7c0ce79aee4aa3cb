package isa

import (
	"errors"

	"github.com/ezrec/belle/translate"
)

var f = translate.From

var (
	ErrOpcodeInvalid    = errors.New(f("opcode invalid"))
	ErrRegisterInvalid  = errors.New(f("register invalid"))
	ErrArity            = errors.New(f("wrong number of operands"))
	ErrArgKind          = errors.New(f("operand kind not allowed"))
	ErrArgRange         = errors.New(f("operand out of range"))
	ErrDirectiveWord    = errors.New(f("directive word in instruction stream"))
	ErrDirectiveInvalid = errors.New(f("directive invalid"))

	ErrOpcodeArg1 = errors.New(f("arg1"))
	ErrOpcodeArg2 = errors.New(f("arg2"))
)

// ErrWord reports the instruction word a diagnostic refers to.
type ErrWord uint16

func (ew ErrWord) Error() string {
	return f("word 0x%04x", uint16(ew))
}

func (ew ErrWord) Is(err error) (ok bool) {
	_, ok = err.(ErrWord)
	return
}
