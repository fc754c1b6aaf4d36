package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pipeline [flags] <file.pipe>")
	fmt.Fprintln(os.Stderr, "  pipeline [flags] --repl")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  --config <path>          use this pipeline.yml instead of searching for one")
	fmt.Fprintln(os.Stderr, "  --trace, -v              log every statement and expression")
	fmt.Fprintln(os.Stderr, "  --log-level <level>      debug, verbose, info, warning, error")
	fmt.Fprintln(os.Stderr, "  --max-call-depth <n>     limit nested function invocations")
	fmt.Fprintln(os.Stderr, "  --strict                 exit with status 1 if any line reported an error")
	fmt.Fprintln(os.Stderr, "  --repl                   read statements interactively (or from piped stdin)")
	fmt.Fprintln(os.Stderr, "  --version, -V            print the version")
}
