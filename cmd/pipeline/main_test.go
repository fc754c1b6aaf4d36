package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/giovannicarlino04/Pipeline/pkg/interpreter"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.TrimSpace(contents)+"\n"), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}

func captureCLI(t *testing.T, args []string) (int, string, string) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("stdout pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("stderr pipe: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code := run(args)

	if err := wOut.Close(); err != nil {
		t.Fatalf("stdout close: %v", err)
	}
	if err := wErr.Close(); err != nil {
		t.Fatalf("stderr close: %v", err)
	}

	os.Stdout = stdout
	os.Stderr = stderr

	outBytes, err := io.ReadAll(rOut)
	if err != nil {
		t.Fatalf("stdout read: %v", err)
	}
	errBytes, err := io.ReadAll(rErr)
	if err != nil {
		t.Fatalf("stderr read: %v", err)
	}
	rOut.Close()
	rErr.Close()

	return code, string(outBytes), string(errBytes)
}

// withStdin points os.Stdin at a regular file holding contents.
func withStdin(t *testing.T, contents string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdin.pipe")
	writeFile(t, path, contents)
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open stdin file: %v", err)
	}
	original := os.Stdin
	os.Stdin = file
	t.Cleanup(func() {
		os.Stdin = original
		file.Close()
	})
}

func TestRunWithoutArgumentsPrintsUsage(t *testing.T) {
	code, stdout, stderr := captureCLI(t, nil)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if stdout != "" {
		t.Fatalf("expected no stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Fatalf("expected usage on stderr, got %q", stderr)
	}
}

func TestRunRejectsExtraArguments(t *testing.T) {
	code, _, stderr := captureCLI(t, []string{"a.pipe", "b.pipe"})
	if code != 1 || !strings.Contains(stderr, "Usage:") {
		t.Fatalf("expected usage failure, got code %d stderr %q", code, stderr)
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	code, _, stderr := captureCLI(t, []string{"--help"})
	if code != 0 || !strings.Contains(stderr, "--max-call-depth") {
		t.Fatalf("unexpected help result: code %d stderr %q", code, stderr)
	}
	code, stdout, _ := captureCLI(t, []string{"-V"})
	if code != 0 || strings.TrimSpace(stdout) != cliToolVersion {
		t.Fatalf("unexpected version result: code %d stdout %q", code, stdout)
	}
}

func TestRunUnknownFlag(t *testing.T) {
	code, _, stderr := captureCLI(t, []string{"--bogus", "x.pipe"})
	if code != 1 || !strings.Contains(stderr, "unknown flag '--bogus'") {
		t.Fatalf("expected unknown flag error, got code %d stderr %q", code, stderr)
	}
}

func TestRunExecutesSourceFile(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "main.pipe")
	writeFile(t, script, `
var a = 5;
var name = "world";
console("hello");
b = a * 2 + 1;
console(b);
console(name);
console(a)
greet(1);
`)

	code, stdout, stderr := captureCLI(t, []string{script})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", code, stderr)
	}
	want := strings.Join([]string{
		"hello",
		"11",
		"world",
		"Error: Missing semicolon at the end of line: console(a)",
		"Function greet not defined.",
	}, "\n") + "\n"
	if stdout != want {
		t.Fatalf("unexpected stdout:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.pipe")
	code, stdout, stderr := captureCLI(t, []string{missing})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if stdout != "" {
		t.Fatalf("expected no stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "failed to read") {
		t.Fatalf("expected read failure, got %q", stderr)
	}
}

func TestRunStrictFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pipeline.yml"), "strict: true")
	script := filepath.Join(dir, "main.pipe")
	writeFile(t, script, `
console("before");
oops;
console("after");
`)

	code, stdout, stderr := captureCLI(t, []string{script})
	if code != 1 {
		t.Fatalf("expected strict run to fail, got %d", code)
	}
	if stdout != "before\nInvalid statement: oops;\nafter\n" {
		t.Fatalf("expected every line to run, got %q", stdout)
	}
	if !strings.Contains(stderr, "1 line(s) reported errors") {
		t.Fatalf("expected strict summary, got %q", stderr)
	}
}

func TestRunStrictFlag(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "main.pipe")
	writeFile(t, script, "var x = 1")

	if code, _, _ := captureCLI(t, []string{script}); code != 0 {
		t.Fatalf("expected lenient run to succeed, got %d", code)
	}
	if code, _, _ := captureCLI(t, []string{"--strict", script}); code != 1 {
		t.Fatalf("expected --strict run to fail, got %d", code)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pipeline.yml"), "tracing: true")
	script := filepath.Join(dir, "main.pipe")
	writeFile(t, script, `console("x");`)

	code, stdout, stderr := captureCLI(t, []string{script})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if stdout != "" {
		t.Fatalf("expected nothing to run, got %q", stdout)
	}
	if !strings.Contains(stderr, "failed to load config") {
		t.Fatalf("expected config error, got %q", stderr)
	}
}

func TestRunMaxCallDepthFlag(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "loop.pipe")
	writeFile(t, script, `
def f(x)(y) ;
def de(q) ;
f(1);
console("unreachable");
`)

	code, stdout, stderr := captureCLI(t, []string{"--max-call-depth=5", script})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if strings.Contains(stdout, "unreachable") {
		t.Fatalf("expected the run to stop, got %q", stdout)
	}
	if !strings.Contains(stderr, "maximum call depth exceeded") {
		t.Fatalf("expected depth error, got %q", stderr)
	}
}

func TestRunExplicitConfigPath(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yml")
	writeFile(t, cfgPath, "max_call_depth: 3\nstrict: true")
	script := filepath.Join(t.TempDir(), "main.pipe")
	writeFile(t, script, "nope;")

	code, _, _ := captureCLI(t, []string{"--config", cfgPath, script})
	if code != 1 {
		t.Fatalf("expected strict config to apply, got %d", code)
	}
}

func TestRunReplReadsPipedStdin(t *testing.T) {
	withStdin(t, `
var a = 2;
console(a * 21);
`)
	code, stdout, stderr := captureCLI(t, []string{"--repl"})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", code, stderr)
	}
	if stdout != "42\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestRunReplRejectsSourceFile(t *testing.T) {
	code, _, stderr := captureCLI(t, []string{"--repl", "main.pipe"})
	if code != 1 || !strings.Contains(stderr, "does not take a source file") {
		t.Fatalf("expected rejection, got code %d stderr %q", code, stderr)
	}
}

func TestReplCommands(t *testing.T) {
	interp := interpreter.New()
	interp.SetOutput(nil)
	if err := interp.Run([]string{
		"n = 3;",
		`s = "text";`,
		"def add(a,b):;",
	}); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	var out bytes.Buffer
	if replCommand(&out, interp, ":vars") {
		t.Fatalf(":vars should not end the session")
	}
	if out.String() != "n = 3 (integer)\ns = text (string)\n" {
		t.Fatalf("unexpected :vars output %q", out.String())
	}

	out.Reset()
	replCommand(&out, interp, ":funcs")
	if out.String() != "add(a,b)\n" {
		t.Fatalf("unexpected :funcs output %q", out.String())
	}

	out.Reset()
	replCommand(&out, interp, ":nope")
	if !strings.Contains(out.String(), "unknown command :nope") {
		t.Fatalf("unexpected output %q", out.String())
	}

	if !replCommand(&out, interp, ":quit") {
		t.Fatalf(":quit should end the session")
	}
}

func TestParseOptions(t *testing.T) {
	opts, positional, err := parseOptions([]string{
		"--config=cfg.yml", "-v", "--log-level", "Debug", "--max-call-depth", "12", "--strict", "--", "--odd.pipe",
	})
	if err != nil {
		t.Fatalf("parseOptions error: %v", err)
	}
	if opts.configPath != "cfg.yml" || !opts.trace || opts.logLevel != "debug" || opts.maxCallDepth != 12 || !opts.strict {
		t.Fatalf("unexpected options %+v", opts)
	}
	if len(positional) != 1 || positional[0] != "--odd.pipe" {
		t.Fatalf("unexpected positional %v", positional)
	}

	for _, args := range [][]string{
		{"--max-call-depth", "0"},
		{"--max-call-depth=abc"},
		{"--config"},
		{"--log-level"},
	} {
		if _, _, err := parseOptions(args); err == nil {
			t.Fatalf("expected parseOptions(%v) to fail", args)
		}
	}
}
