package cpu

import (
	"github.com/ezrec/belle/isa"
)

// LoadBinary resets the CPU and places a binary instruction stream in
// memory.
//
// Directive words set the load address, the stack pointer and the base
// pointer. All other words are placed in stream order starting at the load
// address. The program counter is set to the load address. Nothing is
// executed.
func (cpu *Cpu) LoadBinary(words []uint16) (err error) {
	cpu.Reset()

	var code []uint16
	hasStart := false

	for _, word := range words {
		dir, payload, ok := isa.DirectiveDecode(word)
		if !ok {
			code = append(code, word)
			continue
		}

		switch dir {
		case isa.DIR_START:
			if hasStart {
				err = ErrStartDuplicate
				return
			}
			hasStart = true
			cpu.Start = uint16(payload)
		case isa.DIR_SSP:
			cpu.Sp = uint16(payload)
		case isa.DIR_SBP:
			cpu.Bp = uint16(payload)
		}

		if cpu.Verbose {
			cpu.log().Infof("%v", isa.DirectiveString(dir, payload))
		}
	}

	if int(cpu.Start)+len(code) > MEMORY_SIZE {
		err = ErrImageTooLarge
		return
	}

	for n, word := range code {
		cpu.Memory.Write(int(cpu.Start)+n, word)
		if cpu.Verbose {
			cpu.log().Debugf("%016b loaded at %d", word, int(cpu.Start)+n)
		}
	}

	cpu.Pc = cpu.Start

	if cpu.Verbose {
		cpu.log().Infof("program starts at %d", cpu.Start)
	}

	return
}
