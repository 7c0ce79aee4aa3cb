package cpu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ezrec/belle/isa"
)

// Software interrupt codes.
const (
	INT_PRINT_MEMORY    = 8  // Print memory r0 through r1 as characters.
	INT_READ_CHAR       = 9  // Read one raw character into r0.
	INT_SLEEP           = 10 // Sleep for a second.
	INT_ZERO_SET        = 11
	INT_ZERO_CLEAR      = 12
	INT_ZERO_TOGGLE     = 13
	INT_CLOCK_LIMIT     = 20 // Set the clock limit to r0.
	INT_OVERFLOW_SET    = 21
	INT_OVERFLOW_CLEAR  = 22
	INT_OVERFLOW_TOGGLE = 23
	INT_REMAIN_SET      = 31
	INT_REMAIN_CLEAR    = 32
	INT_REMAIN_TOGGLE   = 33
	INT_SIGN_SET        = 41
	INT_SIGN_CLEAR      = 42
	INT_SIGN_TOGGLE     = 43
	INT_HALT_OF_SET     = 51 // Halt the run on overflow.
	INT_HALT_OF_CLEAR   = 52
	INT_HALT_OF_TOGGLE  = 53
	INT_SET_SP          = 60 // Set the stack pointer to r4.
	INT_SET_BP          = 61 // Set the base pointer to r4.
)

// SLEEP_TIME is the duration of the sleep interrupt.
const SLEEP_TIME = time.Second

var _interrupt_defines = map[string]int{
	"INT_PRINT_MEMORY":    INT_PRINT_MEMORY,
	"INT_READ_CHAR":       INT_READ_CHAR,
	"INT_SLEEP":           INT_SLEEP,
	"INT_ZERO_SET":        INT_ZERO_SET,
	"INT_ZERO_CLEAR":      INT_ZERO_CLEAR,
	"INT_ZERO_TOGGLE":     INT_ZERO_TOGGLE,
	"INT_CLOCK_LIMIT":     INT_CLOCK_LIMIT,
	"INT_OVERFLOW_SET":    INT_OVERFLOW_SET,
	"INT_OVERFLOW_CLEAR":  INT_OVERFLOW_CLEAR,
	"INT_OVERFLOW_TOGGLE": INT_OVERFLOW_TOGGLE,
	"INT_REMAIN_SET":      INT_REMAIN_SET,
	"INT_REMAIN_CLEAR":    INT_REMAIN_CLEAR,
	"INT_REMAIN_TOGGLE":   INT_REMAIN_TOGGLE,
	"INT_SIGN_SET":        INT_SIGN_SET,
	"INT_SIGN_CLEAR":      INT_SIGN_CLEAR,
	"INT_SIGN_TOGGLE":     INT_SIGN_TOGGLE,
	"INT_HALT_OF_SET":     INT_HALT_OF_SET,
	"INT_HALT_OF_CLEAR":   INT_HALT_OF_CLEAR,
	"INT_HALT_OF_TOGGLE":  INT_HALT_OF_TOGGLE,
	"INT_SET_SP":          INT_SET_SP,
	"INT_SET_BP":          INT_SET_BP,
}

func init() {
	for name, code := range _interrupt_defines {
		_cpu_defines[name] = strconv.Itoa(code)
	}
	for reg := range isa.REGISTER_COUNT {
		_cpu_defines[fmt.Sprintf("INT_PRINT_R%d", reg)] = strconv.Itoa(reg)
	}
}

// flag applies a set/clear/toggle interrupt to a flag.
func flag(value *bool, code int) {
	switch code % 10 {
	case 1:
		*value = true
	case 2:
		*value = false
	case 3:
		*value = !*value
	}
}

// interrupt performs a software interrupt.
func (cpu *Cpu) interrupt(code int) (err error) {
	if cpu.Verbose {
		cpu.log().Debugf("INT #%d", code)
	}

	switch code {
	case 0, 1, 2, 3, 4, 5, 6, 7:
		var text string
		switch class, index, _ := isa.ClassOf(code); class {
		case isa.CLASS_SIGNED:
			text = strconv.Itoa(int(cpu.Int[index]))
		case isa.CLASS_UNSIGNED:
			text = strconv.Itoa(int(cpu.Uint[index]))
		case isa.CLASS_FLOAT:
			text = strconv.FormatFloat(float64(cpu.Float[index]), 'g', -1, 32)
		}
		err = cpu.print(text + "\n")
	case INT_PRINT_MEMORY:
		var text []byte
		for addr := int(cpu.Int[0]); addr <= int(cpu.Int[1]); addr++ {
			cell, ok := cpu.Memory.Read(addr)
			if !ok {
				err = cpu.fault(ErrSegmentationFault, f("memory address %d is empty on interrupt call %d", addr, code))
				return
			}
			text = append(text, byte(cell))
		}
		err = cpu.print(string(text))
	case INT_READ_CHAR:
		var c byte
		c, err = cpu.readChar()
		switch {
		case errors.Is(err, io.EOF):
			err = nil
			cpu.Int[0] = -1
		case err == nil:
			cpu.Int[0] = int16(c)
		}
	case INT_SLEEP:
		if cpu.Sleep != nil {
			cpu.Sleep(SLEEP_TIME)
		} else {
			time.Sleep(SLEEP_TIME)
		}
	case INT_ZERO_SET, INT_ZERO_CLEAR, INT_ZERO_TOGGLE:
		flag(&cpu.Flags.Zero, code)
	case INT_CLOCK_LIMIT:
		cpu.MaxClock = int(cpu.Int[0])
	case INT_OVERFLOW_SET, INT_OVERFLOW_CLEAR, INT_OVERFLOW_TOGGLE:
		flag(&cpu.Flags.Overflow, code)
	case INT_REMAIN_SET, INT_REMAIN_CLEAR, INT_REMAIN_TOGGLE:
		flag(&cpu.Flags.Remainder, code)
	case INT_SIGN_SET, INT_SIGN_CLEAR, INT_SIGN_TOGGLE:
		flag(&cpu.Flags.Sign, code)
	case INT_HALT_OF_SET, INT_HALT_OF_CLEAR, INT_HALT_OF_TOGGLE:
		flag(&cpu.HaltOnOverflow, code)
	case INT_SET_SP:
		cpu.Sp = cpu.Uint[0]
	case INT_SET_BP:
		cpu.Bp = cpu.Uint[0]
	default:
		cpu.condition(ErrUnknownFlag)
	}

	return
}

func (cpu *Cpu) print(text string) (err error) {
	if cpu.Console == nil {
		return
	}
	_, err = io.WriteString(cpu.Console, text)
	return
}

func (cpu *Cpu) readChar() (c byte, err error) {
	if cpu.Console == nil {
		err = io.EOF
		return
	}
	return cpu.Console.ReadChar()
}
