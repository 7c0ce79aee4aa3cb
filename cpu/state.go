package cpu

// State is a snapshot of the CPU registers and run-control state. It does
// not include memory.
type State struct {
	Clock int
	Pc    uint16
	Ir    uint16
	Sp    uint16
	Bp    uint16
	Int   [4]int16
	Uint  [2]uint16
	Float [2]float32
	Flags Flags

	Running        bool
	HaltOnOverflow bool
	MaxClock       int
	BackwardStack  bool
}

// State returns a snapshot of the CPU.
func (cpu *Cpu) State() State {
	return State{
		Clock:          cpu.Clock,
		Pc:             cpu.Pc,
		Ir:             cpu.Ir,
		Sp:             cpu.Sp,
		Bp:             cpu.Bp,
		Int:            cpu.Int,
		Uint:           cpu.Uint,
		Float:          cpu.Float,
		Flags:          cpu.Flags,
		Running:        cpu.Running,
		HaltOnOverflow: cpu.HaltOnOverflow,
		MaxClock:       cpu.MaxClock,
		BackwardStack:  cpu.BackwardStack,
	}
}

// Restore sets the CPU registers and run-control state from a snapshot.
func (cpu *Cpu) Restore(state State) {
	cpu.Clock = state.Clock
	cpu.Pc = state.Pc
	cpu.Ir = state.Ir
	cpu.Sp = state.Sp
	cpu.Bp = state.Bp
	cpu.Int = state.Int
	cpu.Uint = state.Uint
	cpu.Float = state.Float
	cpu.Flags = state.Flags
	cpu.Running = state.Running
	cpu.HaltOnOverflow = state.HaltOnOverflow
	cpu.MaxClock = state.MaxClock
	cpu.BackwardStack = state.BackwardStack
}
