package cpu

import (
	"errors"
	"math"

	"github.com/ezrec/belle/isa"
)

// EPSILON is the magnitude below which a comparison sets the zero flag.
const EPSILON = 0x1p-23

func (cpu *Cpu) fault(err error, cause string) error {
	return &Fault{Pc: cpu.Pc, Err: err, Cause: cause}
}

// condition reports a recoverable condition.
func (cpu *Cpu) condition(err error) {
	cond := &Condition{Pc: cpu.Pc, Err: err}
	if cpu.Recover != nil {
		cpu.Recover(cond)
		return
	}
	if cpu.Verbose {
		cpu.log().Warn(cond.Error())
	}
}

// GetValue resolves an operand to its numeric value.
func (cpu *Cpu) GetValue(arg isa.Argument) (value float64, err error) {
	switch arg.Kind {
	case isa.ARG_REGISTER:
		value, err = cpu.Register(arg.Value)
		if err != nil {
			err = cpu.fault(err, f("register %%r%d", arg.Value))
		}
	case isa.ARG_LITERAL:
		value = float64(arg.Value)
	case isa.ARG_MEM_ADDR:
		cell, ok := cpu.Memory.Read(arg.Value)
		if !ok {
			err = cpu.fault(ErrSegmentationFault, f("memory address %d is empty", arg.Value))
			return
		}
		value = word(cell)
	case isa.ARG_REG_PTR:
		var ptr float64
		ptr, err = cpu.Register(arg.Value)
		if err != nil {
			err = cpu.fault(err, f("register pointer &r%d", arg.Value))
			return
		}
		addr, ok := address(ptr)
		if !ok {
			err = cpu.fault(ErrSegmentationFault, f("register pointer &r%d is out of memory", arg.Value))
			return
		}
		cell, ok := cpu.Memory.Read(addr)
		if !ok {
			err = cpu.fault(ErrSegmentationFault, f("the address the pointer references is empty"))
			return
		}
		value = word(cell)
	case isa.ARG_MEM_PTR:
		ptr, ok := cpu.Memory.Read(arg.Value)
		if !ok {
			err = cpu.fault(ErrSegmentationFault, f("the pointer's location is empty"))
			return
		}
		cell, ok := cpu.Memory.Read(int(ptr))
		if !ok {
			err = cpu.fault(ErrSegmentationFault, f("the address the pointer references is empty"))
			return
		}
		value = word(cell)
	default:
		err = cpu.fault(ErrIllegalInstruction, f("operand missing"))
	}

	return
}

// setRegister writes a register and raises the overflow condition.
func (cpu *Cpu) setRegister(reg int, value float64) (err error) {
	overflow, err := cpu.SetRegister(reg, value)
	if err != nil {
		err = cpu.fault(err, f("register %%r%d", reg))
		return
	}
	if overflow {
		cpu.Flags.Overflow = true
		cpu.condition(ErrOverflow)
	}
	return
}

// load writes a memory word to a register. Unsigned registers take the
// word as unsigned, the others as signed.
func (cpu *Cpu) load(reg int, cell uint16) (err error) {
	value := word(cell)
	if class, _, _ := isa.ClassOf(reg); class == isa.CLASS_UNSIGNED {
		value = float64(cell)
	}
	return cpu.setRegister(reg, value)
}

// arith performs the two-operand arithmetic instructions.
func (cpu *Cpu) arith(op isa.Op, dst isa.Argument, src isa.Argument) (err error) {
	value, err := cpu.GetValue(src)
	if err != nil {
		return
	}

	switch op {
	case isa.OP_MOV:
		err = cpu.setRegister(dst.Value, value)
		return
	case isa.OP_LD:
		err = cpu.load(dst.Value, wrap(value))
		return
	}

	current, err := cpu.Register(dst.Value)
	if err != nil {
		err = cpu.fault(err, f("register %%r%d", dst.Value))
		return
	}

	var result float64
	switch op {
	case isa.OP_ADD:
		result = current + value
	case isa.OP_MUL:
		result = current * value
	case isa.OP_DIV:
		if value == 0 {
			err = cpu.fault(ErrDivideByZero, "")
			return
		}
		class, _, _ := isa.ClassOf(dst.Value)
		if math.Mod(current, value) != 0 {
			cpu.Flags.Remainder = true
		}
		result = current / value
		if class != isa.CLASS_FLOAT {
			result = math.Trunc(result)
		}
	case isa.OP_CMP:
		diff := current - value
		cpu.Flags.Zero = math.Abs(diff) < EPSILON
		cpu.Flags.Sign = diff < 0
		return
	}

	err = cpu.setRegister(dst.Value, result)

	return
}

// store performs ST.
func (cpu *Cpu) store(dst isa.Argument, src isa.Argument) (err error) {
	value, err := cpu.GetValue(src)
	if err != nil {
		return
	}

	addr := dst.Value
	if dst.Kind == isa.ARG_REG_PTR {
		var ptr float64
		ptr, err = cpu.Register(dst.Value)
		if err != nil {
			err = cpu.fault(err, f("register pointer &r%d", dst.Value))
			return
		}
		var ok bool
		addr, ok = address(ptr)
		if !ok {
			err = cpu.fault(ErrSegmentationFault, f("register pointer &r%d is out of memory", dst.Value))
			return
		}
	}

	if !cpu.Memory.Write(addr, wrap(value)) {
		err = cpu.fault(ErrSegmentationFault, f("memory address %d is out of memory", addr))
	}

	return
}

// jump performs the jump family. A taken jump pushes the program counter
// and sets the target.
func (cpu *Cpu) jump(taken bool, target isa.Argument) (jumped bool, err error) {
	if !taken {
		return
	}

	addr := target.Value
	if target.Kind == isa.ARG_REG_PTR {
		var value float64
		value, err = cpu.Register(target.Value)
		if err != nil {
			err = cpu.fault(err, f("register pointer &r%d", target.Value))
			return
		}
		var ok bool
		addr, ok = address(value)
		if !ok {
			err = cpu.fault(ErrSegmentationFault, f("jump target is out of memory"))
			return
		}
	}

	err = cpu.Push(cpu.Pc)
	if err != nil {
		return
	}

	cpu.Pc = uint16(addr)
	jumped = true

	return
}

// Execute a single decoded instruction.
func (cpu *Cpu) Execute(instr isa.Instruction) (err error) {
	cpu.HasRun = true

	jumped := false

	switch instr.Op {
	case isa.OP_HLT:
		cpu.Running = false
	case isa.OP_ADD, isa.OP_DIV, isa.OP_LD, isa.OP_CMP, isa.OP_MUL, isa.OP_MOV:
		err = cpu.arith(instr.Op, instr.Arg1, instr.Arg2)
	case isa.OP_ST:
		err = cpu.store(instr.Arg1, instr.Arg2)
	case isa.OP_JO:
		jumped, err = cpu.jump(cpu.Flags.Overflow, instr.Arg1)
	case isa.OP_JZ:
		jumped, err = cpu.jump(cpu.Flags.Zero, instr.Arg1)
	case isa.OP_JMP:
		jumped, err = cpu.jump(true, instr.Arg1)
	case isa.OP_PUSH:
		var value float64
		value, err = cpu.GetValue(instr.Arg1)
		if err == nil {
			err = cpu.Push(wrap(value))
		}
	case isa.OP_POP:
		var value uint16
		value, err = cpu.Pop()
		if err == nil {
			err = cpu.load(instr.Arg1.Value, value)
		}
	case isa.OP_RET:
		var value uint16
		value, err = cpu.Pop()
		if err == nil {
			cpu.Pc = value
		}
	case isa.OP_INT:
		err = cpu.interrupt(instr.Arg1.Value)
	case isa.OP_NOP:
	default:
		err = cpu.fault(ErrIllegalInstruction, f("opcode %v", instr.Op))
	}

	if err != nil {
		var fault *Fault
		if !errors.As(err, &fault) {
			err = cpu.fault(ErrIllegalInstruction, err.Error())
		}
		return
	}

	if jumped {
		return
	}

	if int(cpu.Pc)+1 > math.MaxUint16 {
		err = cpu.fault(ErrIllegalInstruction, f("program counter is too large"))
		return
	}
	cpu.Pc++

	return
}
