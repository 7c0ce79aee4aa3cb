// Package debugger is the BELLE debugger core: it steps an emulator,
// records a snapshot of the CPU at every clock, and keeps breakpoints.
package debugger

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/belle/cpu"
	"github.com/ezrec/belle/emulator"
	"github.com/ezrec/belle/isa"
	"github.com/ezrec/belle/translate"
)

// MAX_STATES is the number of recorded snapshots kept before the oldest
// are dropped.
const MAX_STATES = 1 << 20

// Debugger drives an emulator one instruction at a time.
type Debugger struct {
	Verbose  bool
	Emulator *emulator.Emulator
	Image    []uint16  // Binary image loaded by Load.
	Output   io.Writer // Destination of the command output.

	Clock       int // Clock shown by Info.
	states      map[int]cpu.State
	clocks      []int
	breakpoints map[uint16]bool
}

// NewDebugger creates a debugger for a binary image.
func NewDebugger(emu *emulator.Emulator, image []uint16, output io.Writer) (dbg *Debugger) {
	dbg = &Debugger{
		Emulator:    emu,
		Image:       image,
		Output:      output,
		states:      map[int]cpu.State{},
		breakpoints: map[uint16]bool{},
	}

	return
}

func (dbg *Debugger) log() *logrus.Entry {
	return logrus.WithField("component", "debugger")
}

func (dbg *Debugger) printf(format string, args ...any) {
	if dbg.Output == nil {
		return
	}
	translate.Fprint(dbg.Output, format, args...)
}

// Loaded returns true if the CPU memory holds any cell.
func (dbg *Debugger) Loaded() bool {
	return dbg.Emulator.Cpu.Memory.Used() > 0
}

// Load places the image in the CPU memory and clears the recording.
func (dbg *Debugger) Load() (err error) {
	dbg.Emulator.Verbose = dbg.Verbose

	err = dbg.Emulator.Load(dbg.Image)
	if err != nil {
		return
	}

	clear(dbg.states)
	dbg.clocks = dbg.clocks[:0]
	dbg.Clock = 0
	dbg.record()

	if dbg.Verbose {
		dbg.log().Infof("loaded %d words", len(dbg.Image))
	}

	return
}

// record saves the current CPU snapshot under its clock.
func (dbg *Debugger) record() {
	state := dbg.Emulator.Cpu.State()

	if _, ok := dbg.states[state.Clock]; !ok {
		dbg.clocks = append(dbg.clocks, state.Clock)
	}
	dbg.states[state.Clock] = state

	for len(dbg.clocks) > MAX_STATES {
		delete(dbg.states, dbg.clocks[0])
		dbg.clocks = dbg.clocks[1:]
	}

	dbg.Clock = state.Clock
}

// State returns the snapshot recorded at a clock.
func (dbg *Debugger) State(clock int) (state cpu.State, ok bool) {
	state, ok = dbg.states[clock]
	return
}

// Step executes the instruction at the program counter.
func (dbg *Debugger) Step() (err error) {
	emu := dbg.Emulator

	if !dbg.Loaded() {
		err = ErrNotLoaded
		return
	}

	if _, ok := emu.Cpu.Memory.Read(int(emu.Cpu.Pc)); !ok {
		err = ErrNoInstruction
		return
	}

	emu.Verbose = dbg.Verbose
	emu.Cpu.Running = true

	_, err = emu.Tick()
	dbg.record()

	return
}

// Run executes until the CPU stops or reaches a breakpoint. The
// instruction at the starting address always executes, even if it holds
// a breakpoint.
func (dbg *Debugger) Run(ctx context.Context) (stopped bool, err error) {
	emu := dbg.Emulator

	if !dbg.Loaded() {
		err = ErrNotLoaded
		return
	}

	emu.Verbose = dbg.Verbose
	emu.Cpu.Running = true

	for emu.Cpu.Running {
		err = ctx.Err()
		if err != nil {
			return
		}

		_, err = emu.Tick()
		dbg.record()
		if err != nil {
			return
		}

		if emu.Cpu.Running && dbg.breakpoints[emu.Cpu.Pc] {
			stopped = true
			if dbg.Verbose {
				dbg.log().Infof("breakpoint at %d", emu.Cpu.Pc)
			}
			return
		}
	}

	return
}

// SetPc sets the program counter.
func (dbg *Debugger) SetPc(pc uint16) (err error) {
	if !dbg.Loaded() {
		err = ErrNotLoaded
		return
	}

	dbg.Emulator.Cpu.Pc = pc

	return
}

// SetClock selects the recorded clock shown by Info.
func (dbg *Debugger) SetClock(clock int) (err error) {
	if !dbg.Emulator.Cpu.HasRun {
		err = ErrNotRun
		return
	}

	dbg.Clock = clock

	return
}

// Memory returns the cell at an address, and whether it is present.
func (dbg *Debugger) Memory(addr uint16) (value uint16, ok bool) {
	return dbg.Emulator.Cpu.Memory.Read(int(addr))
}

// Start returns the load address of the image.
func (dbg *Debugger) Start() (start uint16, err error) {
	if !dbg.Loaded() {
		err = ErrNotLoaded
		return
	}

	start = dbg.Emulator.Cpu.Start

	return
}

// SetBreakpoint adds a breakpoint at an address.
func (dbg *Debugger) SetBreakpoint(addr uint16) {
	dbg.breakpoints[addr] = true
}

// RemoveBreakpoint removes the breakpoint at an address, returning false
// if there was none.
func (dbg *Debugger) RemoveBreakpoint(addr uint16) (ok bool) {
	ok = dbg.breakpoints[addr]
	delete(dbg.breakpoints, addr)
	return
}

// ClearBreakpoints removes all breakpoints.
func (dbg *Debugger) ClearBreakpoints() {
	clear(dbg.breakpoints)
}

// Breakpoints returns the breakpoint addresses in ascending order.
func (dbg *Debugger) Breakpoints() []uint16 {
	return slices.Sorted(maps.Keys(dbg.breakpoints))
}

// printState writes a snapshot, with the instruction at its program
// counter in the current memory.
func (dbg *Debugger) printState(state cpu.State) {
	dbg.printf("CPU state at clock %d:\n", state.Clock)
	dbg.printf("  Signed registers   : %s\n", fmt.Sprint(state.Int))
	dbg.printf("  Unsigned registers : %s\n", fmt.Sprint(state.Uint))
	dbg.printf("  Float registers    : %s\n", fmt.Sprint(state.Float))
	dbg.printf("  Program counter    : %s\n", fmt.Sprint(state.Pc))
	dbg.printf("  Instruction        : %s %s\n", fmt.Sprintf("%016b", state.Ir), isa.Disassemble(state.Ir))
	dbg.printf("  Running            : %t\n", state.Running)
	dbg.printf("  Flags              : %s\n", state.Flags.String())
	dbg.printf("  Stack pointer      : %s\n", fmt.Sprint(state.Sp))
	dbg.printf("  Base pointer       : %s\n", fmt.Sprint(state.Bp))

	if word, ok := dbg.Memory(state.Pc); ok {
		dbg.printf("  Next instruction   : %s\n", isa.Disassemble(word))
	}
	dbg.printf("\n")
}
