// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "belle",
	Short: "BELLE - The Big Endian, Low Level Emulator",
	Long: `Belle assembles, runs, disassembles and debugs programs for the BELLE
16-bit instruction set.`,
	SilenceUsage: true,
}

// setLogLevel maps the verbosity flags to a logging level.
func setLogLevel(verbose, debug, quiet bool) {
	switch {
	case quiet:
		logrus.SetLevel(logrus.FatalLevel)
	case debug:
		logrus.SetLevel(logrus.DebugLevel)
	case verbose:
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// fsPath returns the root file system, and the name of a command line path
// within it.
func fsPath(path string) (fsys fs.FS, name string, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}

	fsys = os.DirFS("/")
	name = strings.TrimPrefix(filepath.ToSlash(abs), "/")
	if len(name) == 0 {
		name = "."
	}

	return
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
