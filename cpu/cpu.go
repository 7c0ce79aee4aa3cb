// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"maps"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
}

// Flags is the flag register.
type Flags struct {
	Zero      bool
	Overflow  bool
	Remainder bool
	Sign      bool
}

// Config holds the run-control settings applied on every Reset.
type Config struct {
	Delay          time.Duration // Delay before each cycle.
	MaxClock       int           // Clock cycle limit, 0 for unlimited.
	HaltOnOverflow bool          // Stop the run once the overflow flag is set.
}

// Console is the device used by the print and read interrupts.
type Console interface {
	Write(p []byte) (n int, err error)
	ReadChar() (c byte, err error)
}

// Cpu is the simulation context of the BELLE processor.
type Cpu struct {
	Verbose bool   // Set to enable verbose logging.
	Config  Config // Run-control configuration.

	Int    [4]int16   // Signed registers r0-r3.
	Uint   [2]uint16  // Unsigned registers r4-r5.
	Float  [2]float32 // Float registers r6-r7.
	Flags  Flags      // Flag register.
	Pc     uint16     // Program counter.
	Ir     uint16     // Instruction register.
	Sp     uint16     // Stack pointer, the address of the top item.
	Bp     uint16     // Base pointer.
	Start  uint16     // Load address of the image.
	Memory Memory     // Memory cells.

	Running        bool // Cleared by HLT and by faults.
	HasRun         bool // Set once an instruction has executed.
	HaltOnOverflow bool // Stop the run once the overflow flag is set.
	MaxClock       int  // Clock cycle limit, 0 for unlimited.
	Clock          int  // Executed clock cycles.
	BackwardStack  bool // Set once the stack shrank back to the base pointer after growing upward.

	Console Console               // Console for the print and read interrupts.
	Recover func(cond *Condition) // Reports recoverable conditions; nil logs them when verbose.
	Sleep   func(d time.Duration) // Blocks for the sleep interrupt; nil uses time.Sleep.
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

func (cpu *Cpu) log() *logrus.Entry {
	return logrus.WithField("component", "cpu")
}

// Reset the CPU state.
//   - Clears the registers, flags and memory.
//   - Sets the stack and base pointers one past the end of memory.
//   - Zeros the clock.
//   - Applies the run-control configuration.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		cpu.log().Info("reset")
	}

	clear(cpu.Int[:])
	clear(cpu.Uint[:])
	clear(cpu.Float[:])
	cpu.Flags = Flags{}
	cpu.Memory.Reset()

	cpu.Pc = 0
	cpu.Ir = 0
	cpu.Start = 0
	cpu.Sp = MEMORY_SIZE
	cpu.Bp = MEMORY_SIZE

	cpu.Running = false
	cpu.HasRun = false
	cpu.BackwardStack = false
	cpu.Clock = 0
	cpu.MaxClock = cpu.Config.MaxClock
	cpu.HaltOnOverflow = cpu.Config.HaltOnOverflow
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "ir", "sp", "bp",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
		"flags",
		"clock",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%d", cpu.Pc)
		case "ir":
			strval = fmt.Sprintf("%016b", cpu.Ir)
		case "sp":
			strval = fmt.Sprintf("%d", cpu.Sp)
		case "bp":
			strval = fmt.Sprintf("%d", cpu.Bp)
		case "r0", "r1", "r2", "r3":
			val := cpu.Int[reg[1]-'0']
			strval = fmt.Sprintf("%d (%04x)", val, uint16(val))
		case "r4", "r5":
			val := cpu.Uint[reg[1]-'4']
			strval = fmt.Sprintf("%d (%04x)", val, val)
		case "r6", "r7":
			val := cpu.Float[reg[1]-'6']
			strval = strconv.FormatFloat(float64(val), 'g', -1, 32)
		case "flags":
			strval = cpu.Flags.String()
		case "clock":
			strval = fmt.Sprintf("%d", cpu.Clock)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// String returns the set flags as letters, or dashes when clear.
func (flags Flags) String() string {
	out := []byte("----")
	for n, set := range []bool{flags.Zero, flags.Overflow, flags.Remainder, flags.Sign} {
		if set {
			out[n] = "zors"[n]
		}
	}
	return string(out)
}
