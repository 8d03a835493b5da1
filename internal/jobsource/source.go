// Package jobsource loads job descriptions from files, stdin and web pages.
package jobsource

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdin is the file name that selects standard input.
const Stdin = "-"

var ErrEmpty = errors.New("job description is empty")

// FromFile reads a job description from path. Stdin reads from stdin instead.
func FromFile(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == Stdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading job description from %q: %w", path, err)
	}

	description := strings.TrimSpace(string(data))
	if description == "" {
		return "", fmt.Errorf("%q: %w", path, ErrEmpty)
	}

	return description, nil
}
