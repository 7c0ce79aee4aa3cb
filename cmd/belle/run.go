package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/belle/cpu"
	"github.com/ezrec/belle/emulator"
	"github.com/ezrec/belle/io"
)

var runFlags struct {
	timeDelay      int
	maxClock       int
	haltOnOverflow bool
	pretty         bool
	verbose        bool
	debug          bool
	quiet          bool
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run binaryFile",
	Short: "Run a BELLE binary",
	Long: `Run loads a binary image and executes it until HLT, a fault, or the
clock limit. A file ending in .asm is assembled first, and faults are then
reported with their source line.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	flags := runCmd.Flags()
	flags.IntVarP(&runFlags.timeDelay, "time-delay", "t", 0, "clock cycle delay (milliseconds)")
	flags.IntVarP(&runFlags.maxClock, "max-clock", "c", 0, "clock cycle limit, 0 for unlimited")
	flags.BoolVarP(&runFlags.haltOnOverflow, "halt-on-overflow", "o", false, "halt when the overflow flag is set")
	flags.BoolVarP(&runFlags.pretty, "pretty", "p", false, "print the state of the CPU when it halts")
	flags.BoolVarP(&runFlags.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&runFlags.debug, "debug", "d", false, "display debug messages")
	flags.BoolVarP(&runFlags.quiet, "quiet", "q", false, "quiet, do not print errors")
	runCmd.MarkFlagsMutuallyExclusive("verbose", "debug")
	runCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) (err error) {
	setLogLevel(runFlags.verbose, runFlags.debug, runFlags.quiet)
	cmd.SilenceErrors = runFlags.quiet

	emu := emulator.NewEmulator()
	emu.Verbose = runFlags.verbose || runFlags.debug
	emu.Cpu.Config = cpu.Config{
		Delay:          time.Duration(runFlags.timeDelay) * time.Millisecond,
		MaxClock:       runFlags.maxClock,
		HaltOnOverflow: runFlags.haltOnOverflow,
	}
	emu.Console = io.Console{Input: os.Stdin, Output: os.Stdout}

	if filepath.Ext(args[0]) == ".asm" {
		emu.Program, err = assemble(args[0], nil, nil, emu.Verbose)
		if err != nil {
			return
		}
		err = emu.Reset()
	} else {
		var words []uint16
		words, err = loadImage(args[0])
		if err != nil {
			return
		}
		emu.Program = nil
		err = emu.Load(words)
	}
	if err != nil {
		return
	}

	err = emu.Run(cmd.Context())

	if runFlags.pretty {
		pp.Println(emu.Cpu.State())
	}

	return
}

// loadImage reads a binary image named on the command line.
func loadImage(path string) (words []uint16, err error) {
	fsys, name, err := fsPath(path)
	if err != nil {
		return
	}

	return io.LoadImage(fsys, name)
}
