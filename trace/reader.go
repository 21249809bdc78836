// Package trace reads, writes and generates streams of last-level cache
// accesses.
//
// A text trace has one access per line:
//
//	<type> <address> [pc] [thread]
//
// where type is one of L, S, I, P and W (load, store, instruction fetch,
// prefetch and writeback). Numbers are decimal or 0x-prefixed hexadecimal.
// Blank lines and lines starting with # are skipped.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/llcrepl/mem"
)

// ErrMalformedLine is wrapped by every parse error of a Reader.
var ErrMalformedLine = errors.New("malformed trace line")

// A Reader decodes accesses from a text trace.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next access. It returns io.EOF at the end of the trace.
func (r *Reader) Next() (mem.Access, error) {
	for r.scanner.Scan() {
		r.line++

		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		access, err := parseLine(text)
		if err != nil {
			return mem.Access{}, fmt.Errorf("line %d: %w", r.line, err)
		}

		return access, nil
	}

	if err := r.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return mem.Access{}, fmt.Errorf("line %d: %w: %w",
				r.line+1, ErrMalformedLine, err)
		}

		return mem.Access{}, fmt.Errorf("line %d: %w", r.line+1, err)
	}

	return mem.Access{}, io.EOF
}

// ReadAll reads the remaining accesses.
func (r *Reader) ReadAll() ([]mem.Access, error) {
	var accesses []mem.Access

	for {
		access, err := r.Next()
		if errors.Is(err, io.EOF) {
			return accesses, nil
		}

		if err != nil {
			return accesses, err
		}

		accesses = append(accesses, access)
	}
}

func parseLine(text string) (mem.Access, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 || len(fields) > 4 {
		return mem.Access{}, fmt.Errorf("%w: want 2 to 4 fields, got %d",
			ErrMalformedLine, len(fields))
	}

	if len(fields[0]) != 1 {
		return mem.Access{}, fmt.Errorf("%w: bad access type %q",
			ErrMalformedLine, fields[0])
	}

	accessType, ok := mem.AccessTypeFromMnemonic(fields[0][0])
	if !ok {
		return mem.Access{}, fmt.Errorf("%w: bad access type %q",
			ErrMalformedLine, fields[0])
	}

	access := mem.Access{Type: accessType}

	var err error

	access.Address, err = parseNumber(fields[1])
	if err != nil {
		return mem.Access{}, err
	}

	if len(fields) > 2 {
		access.PC, err = parseNumber(fields[2])
		if err != nil {
			return mem.Access{}, err
		}
	}

	if len(fields) > 3 {
		thread, err := strconv.Atoi(fields[3])
		if err != nil || thread < 0 {
			return mem.Access{}, fmt.Errorf("%w: bad thread %q",
				ErrMalformedLine, fields[3])
		}

		access.ThreadID = thread
	}

	return access, nil
}

func parseNumber(s string) (uint64, error) {
	base := 10
	digits := s

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}

	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrMalformedLine, s)
	}

	return v, nil
}
