package debugger

import (
	"errors"

	"github.com/ezrec/belle/translate"
)

var f = translate.From

var (
	ErrNotLoaded      = errors.New(f("CPU memory is empty, load the program first"))
	ErrNotRun         = errors.New(f("CPU has not run"))
	ErrArgument       = errors.New(f("requires a numeric argument"))
	ErrCommandUnknown = errors.New(f("unknown command, type 'h' or 'help' for a list of commands"))
	ErrNoInstruction  = errors.New(f("nothing at the program counter"))
	ErrNoState        = errors.New(f("no CPU state recorded for the clock"))
)

// ErrCommand is an error in a debugger command.
type ErrCommand struct {
	Command string
	Err     error
}

func (err *ErrCommand) Error() string {
	return f("%v: %v", err.Command, err.Err)
}

func (err *ErrCommand) Unwrap() error {
	return err.Err
}
