package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// SourceExtension is the conventional suffix of script files.
const SourceExtension = ".pipe"

// ReadSource reads every line of a script. The file is closed before
// returning, so nothing executes while it is open.
func ReadSource(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// ReadLines splits r into lines with their terminators removed. Lines have
// no length limit.
func ReadLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
