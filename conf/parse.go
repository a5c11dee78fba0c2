package conf

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingSeparator is returned when a non-comment line contains no '='.
var ErrMissingSeparator = errors.New("missing '=' separator")

// ErrEmptyKey is returned when the text before '=' is empty after trimming.
var ErrEmptyKey = errors.New("empty key")

// ParseError reports a malformed input line. Line is 1-based. It wraps
// the reason (ErrMissingSeparator or ErrEmptyKey) for errors.Is checks.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads r to the end and returns a Store holding every assignment.
// Parsing is atomic: on the first malformed line it returns a ParseError
// and no store, so callers never observe a half-filled result.
func Parse(r io.Reader) (*Store, error) {
	store := New()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++

		err := parseLine(store, scanner.Text(), line)
		if err != nil {
			return nil, err
		}
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return store, nil
}

// ParseBytes parses a complete in-memory document. See Parse.
func ParseBytes(data []byte) (*Store, error) {
	return Parse(bytes.NewReader(data))
}

func parseLine(store *Store, raw string, number int) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed[0] == '#' || trimmed[0] == ';' {
		return nil
	}

	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return &ParseError{Line: number, Err: ErrMissingSeparator}
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return &ParseError{Line: number, Err: ErrEmptyKey}
	}

	store.Set(key, strings.TrimSpace(value))

	return nil
}
