// Package jsonl loads newline-delimited JSON fixtures used to drive
// formatter regression tests: each line is a {file0, file1, config,
// expected output} case checked against patchfmt's emitters.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// maxLineSize bounds how large a single JSONL line may grow to before
// Load gives up, well beyond the largest fixture in the test corpus.
const maxLineSize = 64 * 1024 * 1024

// Case is one formatter regression fixture.
type Case struct {
	Name     string `json:"name"`
	File0    string `json:"file0"`
	File1    string `json:"file1"`
	Context  int    `json:"context"`
	Style    string `json:"style"`
	Expected string `json:"expected"`
}

// Loader reads Case fixtures from a JSONL file.
type Loader struct{}

// NewLoader creates a new JSONL fixture loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every non-blank line of path as a JSON-encoded Case.
func (l *Loader) Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("jsonl: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var cases []Case
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var c Case
		if err := json.Unmarshal(line, &c); err != nil {
			return nil, fmt.Errorf("jsonl: %s: line %d: %w", path, lineNum, err)
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("jsonl: %s: %w", path, err)
	}

	return cases, nil
}
