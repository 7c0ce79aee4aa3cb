// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/belle/asm"
	"github.com/ezrec/belle/cpu"
	"github.com/ezrec/belle/internal"
	"github.com/ezrec/belle/io"
	"github.com/ezrec/belle/isa"
)

const (
	STACK_TOP     = cpu.MEMORY_SIZE // Default stack and base pointer.
	REGISTER_LAST = isa.REGISTER_COUNT - 1
)

var _emulator_defines = map[string]string{
	"STACK_TOP":     fmt.Sprintf("%v", STACK_TOP),
	"REGISTER_LAST": fmt.Sprintf("%v", REGISTER_LAST),
}

// Emulator state. CPU + console + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Reference to the currently running program listing.

	Console io.Console // Console for the print and read interrupts.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &asm.Program{},
	}

	emu.Cpu.Console = &emu.Console

	return
}

func (emu *Emulator) log() *logrus.Entry {
	return logrus.WithField("component", "emulator")
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the emulator, loading the binary of the current program listing.
func (emu *Emulator) Reset() (err error) {
	var words []uint16
	if emu.Program != nil {
		words = emu.Program.Binary()
	}

	return emu.Load(words)
}

// Load a binary image, keeping the current program listing for line
// numbers. The CPU is left ready to run at the load address.
func (emu *Emulator) Load(words []uint16) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.LoadBinary(words)
	if err != nil {
		return
	}

	emu.Cpu.Running = true

	if emu.Verbose {
		emu.log().Infof("loaded %d words, %d cells used", len(words), emu.Cpu.Memory.Used())
	}

	return
}

// Ticks returns the total clock cycles since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Clock
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return int(emu.Cpu.Pc)
}

// Code returns the instruction at the program counter.
func (emu *Emulator) Code() (instr isa.Instruction, ok bool) {
	word, ok := emu.Cpu.Memory.Read(int(emu.Cpu.Pc))
	if !ok {
		return
	}

	instr, err := isa.Decode(word)
	ok = (err == nil)

	return
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	return emu.lineNo(emu.Cpu.Pc)
}

func (emu *Emulator) lineNo(pc uint16) int {
	if emu.Program == nil {
		return 0
	}

	return emu.Program.LineNo(pc)
}

// runtimeError places an error at the source line of its faulting address.
func (emu *Emulator) runtimeError(err error) error {
	pc := emu.Cpu.Pc

	var fault *cpu.Fault
	if errors.As(err, &fault) {
		pc = fault.Pc
	}

	rerr := &ErrRuntime{Err: err}
	if emu.Program != nil {
		if op := emu.Program.Debug(pc); op != nil {
			rerr.File = op.File
			rerr.LineNo = op.LineNo
		}
	}

	return rerr
}

// Tick performs a single clock cycle of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if !emu.Cpu.Running {
		done = true
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		err = emu.runtimeError(err)
		return
	}

	done = !emu.Cpu.Running

	return
}

// Run the emulator until it halts, faults, or the context is done.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Run(ctx)
	if err != nil && ctx.Err() == nil {
		err = emu.runtimeError(err)
	}

	return
}
