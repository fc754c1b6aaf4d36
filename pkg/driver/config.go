package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up next to the script and in its parent directories.
const ConfigFileName = "pipeline.yml"

// ErrConfigNotFound is returned by FindConfig when no config file exists.
var ErrConfigNotFound = errors.New("pipeline.yml not found")

// Config models the pipeline.yml contents.
type Config struct {
	Path         string
	Trace        bool
	LogLevel     string
	MaxCallDepth int
	Strict       bool
	HistoryFile  string
	Prompt       string
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Prompt:   "pipe> ",
	}
}

// LoadConfig parses a config file from disk. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw configDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}

	cfg := raw.toConfig()
	cfg.Path = abs
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", abs, err)
	}
	return cfg, nil
}

// FindConfig walks up from start looking for pipeline.yml.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", ConfigFileName, origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.HistoryFile = strings.TrimSpace(c.HistoryFile)
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Prompt == "" {
		c.Prompt = "pipe> "
	}
}

func (c *Config) validate() error {
	if c.MaxCallDepth < 0 {
		return fmt.Errorf("max_call_depth must not be negative (got %d)", c.MaxCallDepth)
	}
	return nil
}

type configDisk struct {
	Trace        bool   `yaml:"trace"`
	LogLevel     string `yaml:"log_level"`
	MaxCallDepth int    `yaml:"max_call_depth"`
	Strict       bool   `yaml:"strict"`
	HistoryFile  string `yaml:"history_file"`
	Prompt       string `yaml:"prompt"`
}

func (d configDisk) toConfig() *Config {
	cfg := &Config{
		Trace:        d.Trace,
		LogLevel:     d.LogLevel,
		MaxCallDepth: d.MaxCallDepth,
		Strict:       d.Strict,
		HistoryFile:  d.HistoryFile,
		Prompt:       d.Prompt,
	}
	cfg.normalize()
	return cfg
}
