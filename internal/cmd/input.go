package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinPath is the file argument that selects standard input.
const StdinPath = "-"

// ReadInput returns the contents of the file at path, or everything from stdin when path is StdinPath.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("input file cannot be empty")
	}

	if path == StdinPath {
		if stdin == nil {
			return nil, fmt.Errorf("standard input is not available")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file '%s': %w", path, err)
	}

	return data, nil
}
