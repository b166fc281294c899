package utils

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadNonEmptyLines reads a text file, or stdin when path is "-", and returns its
// non-empty trimmed lines. Lines starting with # are comments.
func ReadNonEmptyLines(path string) ([]string, error) {
	if path == "-" {
		return ScanNonEmptyLines(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ScanNonEmptyLines(f)
}

func ScanNonEmptyLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
