package cpu

import (
	"math"

	"github.com/ezrec/belle/isa"
)

// Register returns the value of a register as a float64.
func (cpu *Cpu) Register(reg int) (value float64, err error) {
	class, index, err := isa.ClassOf(reg)
	if err != nil {
		err = ErrInvalidRegister
		return
	}

	switch class {
	case isa.CLASS_SIGNED:
		value = float64(cpu.Int[index])
	case isa.CLASS_UNSIGNED:
		value = float64(cpu.Uint[index])
	case isa.CLASS_FLOAT:
		value = float64(cpu.Float[index])
	}

	return
}

// inRange returns true if the value is representable in the class.
func inRange(class isa.RegClass, value float64) bool {
	switch class {
	case isa.CLASS_SIGNED:
		return value >= math.MinInt16 && value <= math.MaxInt16
	case isa.CLASS_UNSIGNED:
		return value >= 0 && value <= math.MaxUint16
	case isa.CLASS_FLOAT:
		return !math.IsNaN(value) && math.Abs(value) <= math.MaxFloat32
	}
	return false
}

// wrap truncates a value toward zero, and wraps it into 16 bits.
func wrap(value float64) uint16 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return uint16(int64(math.Trunc(value)))
}

// SetRegister writes a register. The value is range checked against the
// register's class before it is truncated; overflow is true if it did not
// fit.
func (cpu *Cpu) SetRegister(reg int, value float64) (overflow bool, err error) {
	class, index, err := isa.ClassOf(reg)
	if err != nil {
		err = ErrInvalidRegister
		return
	}

	overflow = !inRange(class, value)

	switch class {
	case isa.CLASS_SIGNED:
		cpu.Int[index] = int16(wrap(value))
	case isa.CLASS_UNSIGNED:
		cpu.Uint[index] = wrap(value)
	case isa.CLASS_FLOAT:
		cpu.Float[index] = float32(value)
	}

	return
}

// address converts a value to a memory address.
func address(value float64) (addr int, ok bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}
	addr = int(math.Trunc(value))
	ok = InBounds(addr)
	return
}

// word returns the signed value of a memory cell.
func word(value uint16) float64 {
	return float64(int16(value))
}
