package debugger

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PROMPT is shown before each command when the input is a terminal.
const PROMPT = "(bdb)> "

// Repl reads and executes commands until quit, the end of input, or the
// context is done. An empty line repeats the last command. Command errors
// are printed and do not stop the loop.
func (dbg *Debugger) Repl(ctx context.Context, input io.Reader) (err error) {
	prompt := false
	if file, ok := input.(*os.File); ok {
		prompt = term.IsTerminal(int(file.Fd()))
	}

	scanner := bufio.NewScanner(input)
	last := ""

	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		if prompt {
			dbg.printf("%s", PROMPT)
		}
		if !scanner.Scan() {
			err = scanner.Err()
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			line = last
		} else {
			last = line
		}

		quit, cerr := dbg.Execute(ctx, line)
		if cerr != nil {
			dbg.printf("%v\n", cerr)
			if dbg.Verbose {
				dbg.log().Debug(cerr)
			}
		}
		if quit {
			return
		}
	}
}
