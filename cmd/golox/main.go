// Package main is the golox entry point: run a script file, or start a REPL
// when invoked without arguments.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	lox "github.com/zkck/golox"
)

const (
	appName     = "golox"
	historyFile = ".golox_history"
	prompt      = "> "
)

var exitCode int

var rootCmd = &cobra.Command{
	Use:           appName + " [file]",
	Short:         "Tree-walking interpreter for the Lox scripting language",
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = lox.Version + " (built " + lox.BuildDate + ")"
	rootCmd.SetVersionTemplate(appName + " version {{.Version}}\n")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func run(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runFile(args[0])
	}
	return runPrompt()
}

func runFile(path string) error {
	runner := lox.NewRunner(os.Stdout, os.Stderr)
	code, err := runner.RunFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	exitCode = code
	return nil
}

func runPrompt() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	// One runner for the whole session: bindings persist across lines,
	// the error flag does not.
	runner := lox.NewRunner(os.Stdout, os.Stderr)
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		runner.Run(line)
		runner.Reporter().Reset()

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
}
