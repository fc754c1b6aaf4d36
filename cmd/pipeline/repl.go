package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/giovannicarlino04/Pipeline/pkg/driver"
	"github.com/giovannicarlino04/Pipeline/pkg/interpreter"
	"github.com/giovannicarlino04/Pipeline/pkg/runtime"
)

const historyFileName = ".pipeline_history"

// runRepl reads statements from stdin. A terminal gets a line editor with
// history; anything else is read to EOF and run as one source.
func runRepl(opts cliOptions) int {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	cfg, err := resolveConfig(opts, cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}
	if err := configureLogging(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		lines, err := driver.ReadLines(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read stdin: %v\n", err)
			return 1
		}
		return executeLines(lines, cfg)
	}
	return interactive(cfg)
}

func interactive(cfg *driver.Config) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	history := historyPath(cfg)
	if history != "" {
		if f, err := os.Open(history); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.Warnf("reading history %s: %v", history, err)
			}
			f.Close()
		}
		defer func() {
			f, err := os.Create(history)
			if err != nil {
				log.Warnf("saving history %s: %v", history, err)
				return
			}
			defer f.Close()
			if _, err := ln.WriteHistory(f); err != nil {
				log.Warnf("saving history %s: %v", history, err)
			}
		}()
	}

	fmt.Fprintf(os.Stdout, "%s, type :help for commands\n", cliToolVersion)
	interp := interpreter.New()
	interp.SetOutput(os.Stdout)
	interp.SetMaxCallDepth(cfg.MaxCallDepth)

	lineNo := 0
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(os.Stdout)
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading input: %v\n", err)
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(line)
		if strings.HasPrefix(trimmed, ":") {
			if replCommand(os.Stdout, interp, trimmed) {
				return 0
			}
			continue
		}
		lineNo++
		if err := interp.ExecuteLine(line, lineNo); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		}
	}
}

// replCommand handles a ":" command and reports whether the session should end.
func replCommand(w io.Writer, interp *interpreter.Interpreter, cmd string) bool {
	state := interp.State()
	switch cmd {
	case ":quit", ":q", ":exit":
		return true
	case ":vars":
		for _, name := range state.Variables.Names() {
			value, _ := state.Variables.Get(name)
			fmt.Fprintf(w, "%s = %s (%s)\n", name, runtime.Format(value), value.Kind())
		}
	case ":funcs":
		for _, name := range state.Functions.Names() {
			fn, _ := state.Functions.Lookup(name)
			fmt.Fprintf(w, "%s(%s)\n", fn.Name, strings.Join(fn.Parameters, ","))
		}
	case ":help":
		fmt.Fprintln(w, ":vars   list variables")
		fmt.Fprintln(w, ":funcs  list functions")
		fmt.Fprintln(w, ":quit   leave the session")
	default:
		fmt.Fprintf(w, "unknown command %s (try :help)\n", cmd)
	}
	return false
}

func historyPath(cfg *driver.Config) string {
	if cfg.HistoryFile != "" {
		return cfg.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFileName)
}
