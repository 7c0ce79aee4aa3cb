package io

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Console is the character device of the print and read interrupts.
// It wraps an io.Reader for input and an io.Writer for output.
type Console struct {
	Input  io.Reader
	Output io.Writer
}

// Write writes to the output. Output is discarded if there is no writer.
func (con *Console) Write(p []byte) (n int, err error) {
	if con.Output == nil {
		n = len(p)
		return
	}
	return con.Output.Write(p)
}

// ReadChar reads a single byte from the input. A terminal is switched to
// raw mode for the read, so the byte is neither echoed nor line buffered.
func (con *Console) ReadChar() (c byte, err error) {
	if con.Input == nil {
		err = io.EOF
		return
	}

	if file, ok := con.Input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		var state *term.State
		state, err = term.MakeRaw(int(file.Fd()))
		if err != nil {
			return
		}
		defer term.Restore(int(file.Fd()), state)
	}

	var one [1]byte
	_, err = io.ReadFull(con.Input, one[:])
	if err != nil {
		return
	}
	c = one[0]

	return
}

// IsTerminal returns true if the input is an interactive terminal.
func (con *Console) IsTerminal() bool {
	file, ok := con.Input.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
