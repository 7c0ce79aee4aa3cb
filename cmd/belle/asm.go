package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/belle/asm"
	"github.com/ezrec/belle/emulator"
	"github.com/ezrec/belle/io"
)

var asmFlags struct {
	output  string
	include []string
	define  []string
	verbose bool
	debug   bool
}

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "The assembler for BELLE",
	Long: `Asm assembles a BELLE source file into a binary image of big-endian
16-bit words. Loader directives come first in the image, followed by the
instructions in address order.

Source files may #include other files, found next to the including file or
in the -I directories. Every emulator constant (MEMORY_SIZE, INT_READ_CHAR,
...) is predefined as an equate.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsm,
}

func init() {
	flags := asmCmd.Flags()
	flags.StringVarP(&asmFlags.output, "output", "o", "a.out", "output file for the binary")
	flags.StringArrayVarP(&asmFlags.include, "include", "I", nil, "include directory")
	flags.StringArrayVarP(&asmFlags.define, "define", "D", nil, "predefine an equate, as NAME=VALUE")
	flags.BoolVarP(&asmFlags.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&asmFlags.debug, "debug", "d", false, "display debug messages")

	rootCmd.AddCommand(asmCmd)
}

// assemble parses a source file with the emulator constants, and any
// command line defines, predefined.
func assemble(source string, include []string, define []string, verbose bool) (prog *asm.Program, err error) {
	fsys, name, err := fsPath(source)
	if err != nil {
		return
	}

	assembler := &asm.Assembler{
		Verbose: verbose,
		FS:      fsys,
	}

	for _, dir := range include {
		var dirname string
		_, dirname, err = fsPath(dir)
		if err != nil {
			return
		}
		assembler.Include = append(assembler.Include, dirname)
	}

	for equ, value := range emulator.NewEmulator().Defines() {
		assembler.Predefine(equ, value)
	}

	for _, def := range define {
		equ, value, ok := strings.Cut(def, "=")
		if !ok {
			value = "1"
		}
		assembler.Predefine(equ, value)
	}

	prog, err = assembler.ParseFile(name)

	return
}

func runAsm(cmd *cobra.Command, args []string) (err error) {
	setLogLevel(asmFlags.verbose, asmFlags.debug, false)

	prog, err := assemble(args[0], asmFlags.include, asmFlags.define, asmFlags.verbose || asmFlags.debug)
	if err != nil {
		return
	}

	out, err := os.Create(asmFlags.output)
	if err != nil {
		return
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = io.WriteImage(out, prog.Binary())

	return
}
