package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/belle/isa"
)

var disFlags struct {
	lineNum bool
	binary  bool
}

// disCmd represents the dis command
var disCmd = &cobra.Command{
	Use:   "dis binaryFile",
	Short: "Disassemble a BELLE binary",
	Args:  cobra.ExactArgs(1),
	RunE:  runDis,
}

func init() {
	flags := disCmd.Flags()
	flags.BoolVarP(&disFlags.lineNum, "line-num", "l", false, "show the word number of each line")
	flags.BoolVarP(&disFlags.binary, "binary", "b", false, "show the bit pattern of each word")

	rootCmd.AddCommand(disCmd)
}

func runDis(cmd *cobra.Command, args []string) (err error) {
	words, err := loadImage(args[0])
	if err != nil {
		return
	}

	out := cmd.OutOrStdout()
	for n, word := range words {
		if disFlags.lineNum {
			fmt.Fprintf(out, "%4d: ", n+1)
		}
		if disFlags.binary {
			fmt.Fprintf(out, "%016b ", word)
		}
		fmt.Fprintln(out, isa.Disassemble(word))
	}

	return
}
