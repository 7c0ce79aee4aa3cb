package debugger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CLEAR_SCREEN clears a terminal and homes the cursor.
const CLEAR_SCREEN = "\x1B[2J\x1B[1;1H"

type command struct {
	Names   []string
	Summary string
	Detail  string
}

var commands = []command{
	{[]string{"q", "quit", ":q"}, "Exit the debugger",
		"'quit' takes no arguments, and exits the debugger."},
	{[]string{"h", "help"}, "Print help on the debugger or a specific command",
		"'help' takes zero or one argument, and prints how to use commands."},
	{[]string{"l", "load"}, "Load program",
		"'load' takes no arguments. It loads the CPU's memory with the program, and does nothing afterwards."},
	{[]string{"r", "run"}, "Run program",
		"'run' takes no arguments. It executes the CPU until it halts or reaches a breakpoint."},
	{[]string{"e", "exc", "s", "step"}, "Execute instruction",
		"'execute' takes no arguments. It executes the instruction at the program counter."},
	{[]string{"spc"}, "Set program counter",
		"'set program counter' takes one argument, the new program counter."},
	{[]string{"c", "clkset"}, "Set clock",
		"'clock set' sets the clock viewed by 'info'. If no value is given, the clock is set to 1."},
	{[]string{"p", "pmem"}, "Print value in memory",
		"'print memory' takes one argument, and prints the value at the memory address. If nothing is there, it will say so."},
	{[]string{"i", "info"}, "Print CPU state at debugger's clock",
		"'info' takes no arguments, and prints the state of the CPU at the debugger's clock."},
	{[]string{"wb"}, "Print CPU's starting memory address",
		"'where begins' takes no arguments, and prints the starting memory address of the program."},
	{[]string{"b", "break"}, "Set breakpoint",
		"'break' takes one argument, the address where 'run' stops."},
	{[]string{"bp"}, "Print breakpoints",
		"'bp' takes no arguments, and lists the breakpoint addresses."},
	{[]string{"br"}, "Remove breakpoint",
		"'br' takes one argument, the address of the breakpoint to remove."},
	{[]string{"ba"}, "Remove all breakpoints",
		"'ba' takes no arguments, and removes every breakpoint."},
	{[]string{"cls", "clear"}, "Clear screen",
		"'clear' takes no arguments, and resets the cursor to the top left of the terminal."},
}

func lookup(name string) (cmd *command, ok bool) {
	for n := range commands {
		for _, alias := range commands[n].Names {
			if alias == name {
				return &commands[n], true
			}
		}
	}

	return
}

func parseAddress(arg string) (addr uint16, err error) {
	value, err := strconv.ParseUint(arg, 0, 16)
	if err != nil {
		err = ErrArgument
		return
	}

	addr = uint16(value)

	return
}

func (dbg *Debugger) help(arg string) {
	if len(arg) == 0 {
		dbg.printf("Available commands:\n")
		for _, cmd := range commands {
			dbg.printf("%-16s - %s\n", strings.Join(cmd.Names, " | "), cmd.Summary)
		}
		return
	}

	cmd, ok := lookup(strings.ToLower(arg))
	if !ok {
		dbg.printf("Unknown command: '%s'\n", arg)
		dbg.printf("Type 'h' or 'help' for a list of available commands.\n")
		return
	}

	dbg.printf("%s\n", cmd.Detail)
}

// Execute runs one command line. It returns quit set when the command
// asks the debugger to exit.
func (dbg *Debugger) Execute(ctx context.Context, line string) (quit bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	name := strings.ToLower(words[0])
	arg := strings.Join(words[1:], " ")

	defer func() {
		if err != nil {
			err = &ErrCommand{Command: name, Err: err}
		}
	}()

	cmd, ok := lookup(name)
	if !ok {
		err = ErrCommandUnknown
		return
	}

	switch cmd.Names[0] {
	case "q":
		dbg.printf("Exiting...\n")
		quit = true
	case "h":
		dbg.help(arg)
	case "l":
		err = dbg.Load()
	case "r":
		var stopped bool
		stopped, err = dbg.Run(ctx)
		if stopped {
			dbg.printf("Breakpoint at %s\n", fmt.Sprint(dbg.Emulator.Cpu.Pc))
		}
	case "e":
		pc := dbg.Emulator.Cpu.Pc
		err = dbg.Step()
		if errors.Is(err, ErrNoInstruction) {
			dbg.printf("Nothing at PC %s\n", fmt.Sprint(pc))
			err = nil
			return
		}
		dbg.printState(dbg.Emulator.Cpu.State())
	case "spc":
		var pc uint16
		pc, err = parseAddress(arg)
		if err != nil {
			return
		}
		err = dbg.SetPc(pc)
		if err == nil {
			dbg.printf("Program counter set to %s\n", fmt.Sprint(pc))
		}
	case "c":
		clock := 1
		if len(arg) > 0 {
			clock, err = strconv.Atoi(arg)
			if err != nil {
				err = ErrArgument
				return
			}
		}
		err = dbg.SetClock(clock)
	case "p":
		var addr uint16
		addr, err = parseAddress(arg)
		if err != nil {
			return
		}
		if value, ok := dbg.Memory(addr); ok {
			dbg.printf("Value in memory is:\n%s\n%s\n", fmt.Sprintf("%016b", value), fmt.Sprint(int16(value)))
		} else {
			dbg.printf("Nothing in memory here.\n")
		}
	case "i":
		state, ok := dbg.State(dbg.Clock)
		if !ok {
			err = fmt.Errorf("%w: %d", ErrNoState, dbg.Clock)
			return
		}
		dbg.printState(state)
	case "wb":
		var start uint16
		start, err = dbg.Start()
		if err == nil {
			dbg.printf("Execution begins at memory address %s\n", fmt.Sprint(start))
		}
	case "b":
		var addr uint16
		addr, err = parseAddress(arg)
		if err == nil {
			dbg.SetBreakpoint(addr)
		}
	case "bp":
		for _, addr := range dbg.Breakpoints() {
			dbg.printf("%s\n", fmt.Sprint(addr))
		}
	case "br":
		var addr uint16
		addr, err = parseAddress(arg)
		if err == nil && !dbg.RemoveBreakpoint(addr) {
			dbg.printf("No breakpoint at %s\n", fmt.Sprint(addr))
		}
	case "ba":
		dbg.ClearBreakpoints()
	case "cls":
		dbg.printf("%s", CLEAR_SCREEN)
	}

	return
}
