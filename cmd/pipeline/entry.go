package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/log"

	"github.com/giovannicarlino04/Pipeline/pkg/driver"
	"github.com/giovannicarlino04/Pipeline/pkg/interpreter"
)

func runEntry(path string, opts cliOptions) int {
	cfg, err := resolveConfig(opts, filepath.Dir(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}
	if err := configureLogging(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if filepath.Ext(path) != driver.SourceExtension {
		log.Warnf("%s does not have the %s extension", path, driver.SourceExtension)
	}
	lines, err := driver.ReadSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}
	log.LogVf("running %s (%d lines, config %q)", path, len(lines), cfg.Path)
	return executeLines(lines, cfg)
}

func executeLines(lines []string, cfg *driver.Config) int {
	interp := interpreter.New()
	interp.SetOutput(os.Stdout)
	interp.SetMaxCallDepth(cfg.MaxCallDepth)
	if err := interp.Run(lines); err != nil {
		log.Errf("run aborted: %v", err)
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 1
	}
	if diags := interp.Diagnostics(); cfg.Strict && len(diags) > 0 {
		fmt.Fprintf(os.Stderr, "%d line(s) reported errors\n", len(diags))
		return 1
	}
	return 0
}

// resolveConfig loads the explicit --config file, or the nearest pipeline.yml
// above searchFrom, then applies flag overrides.
func resolveConfig(opts cliOptions, searchFrom string) (*driver.Config, error) {
	cfg := driver.DefaultConfig()
	path := opts.configPath
	if path == "" && searchFrom != "" {
		found, err := driver.FindConfig(searchFrom)
		switch {
		case err == nil:
			path = found
		case errors.Is(err, driver.ErrConfigNotFound):
		default:
			return nil, err
		}
	}
	if path != "" {
		loaded, err := driver.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.trace {
		cfg.Trace = true
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.maxCallDepth > 0 {
		cfg.MaxCallDepth = opts.maxCallDepth
	}
	if opts.strict {
		cfg.Strict = true
	}
	return cfg, nil
}

func configureLogging(cfg *driver.Config) error {
	if cfg.Trace {
		log.SetLogLevel(log.Verbose)
		return nil
	}
	if err := log.SetLogLevelStr(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return nil
}
