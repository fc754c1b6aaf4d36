package main

import (
	"fmt"
	"strconv"
	"strings"
)

type cliOptions struct {
	configPath   string
	trace        bool
	logLevel     string
	maxCallDepth int
	strict       bool
	repl         bool
	help         bool
	version      bool
}

// parseOptions separates flags from positional arguments. Value flags accept
// both "--flag value" and "--flag=value"; "--" ends flag parsing.
func parseOptions(args []string) (cliOptions, []string, error) {
	var opts cliOptions
	positional := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg, "=")
		takeValue := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s expects a value", name)
			}
			i++
			return args[i], nil
		}

		switch name {
		case "--help", "-h":
			opts.help = true
		case "--version", "-V":
			opts.version = true
		case "--trace", "-v":
			opts.trace = true
		case "--strict":
			opts.strict = true
		case "--repl":
			opts.repl = true
		case "--config":
			v, err := takeValue()
			if err != nil {
				return opts, nil, err
			}
			if strings.TrimSpace(v) == "" {
				return opts, nil, fmt.Errorf("--config expects a value")
			}
			opts.configPath = v
		case "--log-level":
			v, err := takeValue()
			if err != nil {
				return opts, nil, err
			}
			opts.logLevel = strings.ToLower(strings.TrimSpace(v))
		case "--max-call-depth":
			v, err := takeValue()
			if err != nil {
				return opts, nil, err
			}
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n <= 0 {
				return opts, nil, fmt.Errorf("invalid --max-call-depth value '%s' (expected a positive integer)", v)
			}
			opts.maxCallDepth = n
		default:
			return opts, nil, fmt.Errorf("unknown flag '%s'", arg)
		}
	}
	return opts, positional, nil
}
