package cpu

import (
	"context"
	"time"

	"github.com/ezrec/belle/isa"
)

// Step fetches, decodes and executes the instruction at the program
// counter, advancing the clock by one cycle.
func (cpu *Cpu) Step() (err error) {
	defer func() {
		if err != nil {
			cpu.Running = false
		}
	}()

	word, ok := cpu.Memory.Read(int(cpu.Pc))
	if !ok {
		err = cpu.fault(ErrSegmentationFault, f("no instruction at the program counter"))
		return
	}

	cpu.Clock++
	cpu.Ir = word

	instr, derr := isa.Decode(word)
	if cpu.Verbose {
		cpu.log().Debugf("%04d: %016b %v", cpu.Pc, word, instr)
		if derr != nil {
			cpu.log().Debug(derr)
		}
	}

	err = cpu.Execute(instr)

	return
}

// Tick executes one cycle, then applies the overflow-halt policy and the
// clock limit.
func (cpu *Cpu) Tick() (err error) {
	err = cpu.Step()
	if err != nil {
		return
	}

	if cpu.Flags.Overflow && cpu.HaltOnOverflow {
		cpu.Running = false
		if cpu.Verbose {
			cpu.log().Info("halted on overflow")
		}
	}

	if cpu.MaxClock > 0 && cpu.Clock >= cpu.MaxClock {
		cpu.Running = false
		if cpu.Verbose {
			cpu.log().Info("clock limit reached")
		}
	}

	return
}

// Run executes instructions until HLT, an unrecoverable fault, the clock
// limit, an overflow with halt-on-overflow set, or the context is done.
// Only unrecoverable faults and the context error are returned.
func (cpu *Cpu) Run(ctx context.Context) (err error) {
	cpu.Running = true

	if cpu.Verbose {
		cpu.log().Infof("starts at memory address %d", cpu.Pc)
	}

	for cpu.Running {
		err = ctx.Err()
		if err != nil {
			cpu.Running = false
			return
		}

		if cpu.Config.Delay > 0 {
			timer := time.NewTimer(cpu.Config.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				cpu.Running = false
				err = ctx.Err()
				return
			case <-timer.C:
			}
		}

		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	if cpu.Verbose {
		cpu.log().Info("halting")
	}

	return
}
