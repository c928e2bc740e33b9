package filter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// StreamReadError reports that the input stream could not be read. It is the
// only failure of the filter itself; malformed or unusual lines never fail.
type StreamReadError struct {
	Err error
}

func (e *StreamReadError) Error() string {
	return fmt.Sprintf("reading input: %v", e.Err)
}

func (e *StreamReadError) Unwrap() error { return e.Err }

// ReadLines reads r to end-of-stream and splits it after every '\n'. Line
// terminators are kept byte-for-byte, so "\r\n" input stays "\r\n". A final
// line without a terminator is returned as is. Empty input yields no lines.
//
// On failure no lines are returned and the error is a *StreamReadError.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}

		if errors.Is(err, io.EOF) {
			return lines, nil
		}

		if err != nil {
			return nil, &StreamReadError{Err: err}
		}
	}
}

// WriteLines writes the concatenation of lines to w, inserting no separators.
// When trailingNewline is set a single "\n" follows the joined lines, even
// when there are none.
func WriteLines(w io.Writer, lines []string, trailingNewline bool) error {
	bw := bufio.NewWriter(w)

	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if trailingNewline {
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// Join concatenates lines exactly as WriteLines does without the trailing
// newline.
func Join(lines []string) string {
	return strings.Join(lines, "")
}
