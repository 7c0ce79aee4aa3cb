package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/belle/debugger"
	"github.com/ezrec/belle/emulator"
	"github.com/ezrec/belle/io"
	"github.com/ezrec/belle/translate"
)

var debugFlags struct {
	verbose bool
}

// debugCmd represents the debug command
var debugCmd = &cobra.Command{
	Use:   "debug binaryFile",
	Short: "Debug a BELLE binary",
	Long: `Debug starts the BELLE debugger on a binary image. Type 'h' at the
prompt for the list of commands.`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func init() {
	debugCmd.Flags().BoolVarP(&debugFlags.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(debugCmd)
}

func runDebug(cmd *cobra.Command, args []string) (err error) {
	setLogLevel(debugFlags.verbose, false, false)

	words, err := loadImage(args[0])
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Console = io.Console{Input: os.Stdin, Output: os.Stdout}

	dbg := debugger.NewDebugger(emu, words, os.Stdout)
	dbg.Verbose = debugFlags.verbose

	translate.Print("BELLE debugger, %d words in %s. Type 'h' for help.\n", len(words), args[0])

	err = dbg.Repl(cmd.Context(), os.Stdin)

	return
}
