package isa

// REGISTER_COUNT is the number of addressable registers.
const REGISTER_COUNT = 8

// RegClass is the numeric class of a register.
type RegClass int

//go:generate go tool stringer -linecomment -type=RegClass
const (
	CLASS_SIGNED   = RegClass(0) // signed
	CLASS_UNSIGNED = RegClass(1) // unsigned
	CLASS_FLOAT    = RegClass(2) // float
)

// ClassOf maps a register number to its class and its index within the
// bank of that class. Registers 0-3 are signed, 4-5 unsigned, 6-7 float.
func ClassOf(reg int) (class RegClass, index int, err error) {
	switch {
	case reg >= 0 && reg <= 3:
		class, index = CLASS_SIGNED, reg
	case reg == 4 || reg == 5:
		class, index = CLASS_UNSIGNED, reg-4
	case reg == 6 || reg == 7:
		class, index = CLASS_FLOAT, reg-6
	default:
		err = ErrRegisterInvalid
	}
	return
}
