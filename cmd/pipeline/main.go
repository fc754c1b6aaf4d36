package main

import (
	"fmt"
	"os"
	"strings"

	"fortio.org/log"
)

const cliToolVersion = "pipeline 0.1.0"

func main() {
	log.SetDefaultsForClientTools()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, positional, err := parseOptions(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		return 1
	}

	switch {
	case opts.help:
		printUsage()
		return 0
	case opts.version:
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case opts.repl:
		if len(positional) > 0 {
			fmt.Fprintf(os.Stderr, "pipeline --repl does not take a source file (received %s)\n", strings.Join(positional, " "))
			return 1
		}
		return runRepl(opts)
	}

	if len(positional) != 1 {
		printUsage()
		return 1
	}
	return runEntry(positional[0], opts)
}
