package fetch

import (
	"fmt"
	"io"
)

// Reader drains an input stream at construction time and caches the
// contents, making an unseekable source such as standard input
// fetchable more than once.
type Reader struct {
	data []byte
}

// NewReader returns a constructor function that creates a Reader
// fetcher draining r. The stream is consumed once when the constructor
// runs; an error from the underlying read fails construction.
func NewReader(r io.Reader) func() (*Reader, error) {
	return func() (*Reader, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading stream: %w", err)
		}

		return &Reader{data: data}, nil
	}
}

// Fetch returns a copy of the cached stream contents.
func (r *Reader) Fetch() ([]byte, error) {
	result := make([]byte, len(r.data))
	copy(result, r.data)

	return result, nil
}
