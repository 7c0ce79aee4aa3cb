package cpu

import (
	"errors"

	"github.com/ezrec/belle/translate"
)

var f = translate.From

var (
	// Unrecoverable faults
	ErrSegmentationFault  = errors.New(f("segmentation fault"))
	ErrIllegalInstruction = errors.New(f("illegal instruction"))
	ErrDivideByZero       = errors.New(f("divide by zero"))
	ErrInvalidRegister    = errors.New(f("invalid register"))
	ErrStackOverflow      = errors.New(f("stack overflow"))
	ErrStackUnderflow     = errors.New(f("stack underflow"))

	// Recoverable conditions
	ErrOverflow      = errors.New(f("overflow"))
	ErrUnknownFlag   = errors.New(f("unknown flag"))
	ErrBackwardStack = errors.New(f("backward stack"))

	// Loader errors
	ErrStartDuplicate = errors.New(f(".start directives duplicated"))
	ErrImageTooLarge  = errors.New(f("image does not fit in memory"))
)

// Fault is an unrecoverable runtime fault. The run loop stops on a Fault.
type Fault struct {
	Pc    uint16 // Program counter of the faulting instruction.
	Err   error  // One of the unrecoverable fault sentinels.
	Cause string // Optional description.
}

func (err *Fault) Error() string {
	if len(err.Cause) == 0 {
		return f("%v at memory address %d", err.Err, err.Pc)
	}
	return f("%v: %v at memory address %d", err.Err, err.Cause, err.Pc)
}

func (err *Fault) Unwrap() error {
	return err.Err
}

// Condition is a recoverable runtime condition. Execution continues after a
// Condition is reported.
type Condition struct {
	Pc  uint16 // Program counter of the instruction that raised it.
	Err error  // One of the recoverable condition sentinels.
}

func (err *Condition) Error() string {
	return f("%v at memory address %d", err.Err, err.Pc)
}

func (err *Condition) Unwrap() error {
	return err.Err
}
