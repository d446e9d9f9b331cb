// Package input loads puzzle text from disk.
package input

import (
	"fmt"
	"os"
)

// Read returns the content of path as a single string. An empty file is
// valid input and yields "".
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	return string(data), nil
}
