package cpu

// Push a value onto the stack.
//
// At or below the base pointer the stack grows downward: the stack pointer
// is decremented, then the value is written. Above the base pointer it grows
// upward: the stack pointer is incremented, then the value is written.
func (cpu *Cpu) Push(value uint16) (err error) {
	sp := int(cpu.Sp)
	if sp <= int(cpu.Bp) {
		sp--
	} else {
		sp++
	}

	if !InBounds(sp) {
		err = cpu.fault(ErrStackOverflow, f("pushed past the end of memory"))
		return
	}

	cpu.Sp = uint16(sp)
	cpu.Memory.Write(sp, value)

	return
}

// Pop a value off the stack.
func (cpu *Cpu) Pop() (value uint16, err error) {
	if cpu.Empty() {
		err = cpu.fault(ErrStackUnderflow, f("stack is empty"))
		return
	}

	sp := int(cpu.Sp)
	value, ok := cpu.Memory.Read(sp)
	if !ok {
		err = cpu.fault(ErrStackUnderflow, f("stack cell is empty"))
		return
	}
	cpu.Memory.Clear(sp)

	if sp < int(cpu.Bp) {
		cpu.Sp++
		return
	}

	cpu.Sp--
	if cpu.Sp == cpu.Bp && !cpu.BackwardStack {
		cpu.BackwardStack = true
		cpu.condition(ErrBackwardStack)
	}

	return
}

// Peek returns the top of the stack.
func (cpu *Cpu) Peek() (value uint16, ok bool) {
	if cpu.Empty() {
		return
	}

	return cpu.Memory.Read(int(cpu.Sp))
}

// Empty returns true if the stack pointer is at the base pointer.
func (cpu *Cpu) Empty() bool {
	return cpu.Sp == cpu.Bp
}

// Depth returns the number of items on the stack.
func (cpu *Cpu) Depth() int {
	depth := int(cpu.Bp) - int(cpu.Sp)
	if depth < 0 {
		depth = -depth
	}
	return depth
}
