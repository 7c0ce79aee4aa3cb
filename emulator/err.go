package emulator

import (
	"github.com/ezrec/belle/translate"
)

var f = translate.From

// ErrRuntime places a CPU fault at the source line of the faulting
// instruction. LineNo is 0 when the address has no listing entry.
type ErrRuntime struct {
	File   string // Source file, "-" or empty for standard input.
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if len(err.File) == 0 || err.File == "-" {
		return f("line %d %v", err.LineNo, err.Err)
	}
	return f("%v:%d %v", err.File, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
