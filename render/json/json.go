package json

import (
	"bytes"
	"fmt"
	"io"

	"github.com/0xalexb/sysconf/conf"

	gojson "github.com/goccy/go-json"
)

// Encoder writes conf.Node trees to an output stream as JSON with
// insertion-ordered object keys.
type Encoder struct {
	w      io.Writer
	indent string
}

// NewEncoder creates an Encoder writing compact JSON to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// SetIndent switches the encoder to indented output using the given
// indent string per nesting level. An empty indent restores compact output.
func (e *Encoder) SetIndent(indent string) {
	e.indent = indent
}

// Encode writes the JSON rendering of node followed by a newline.
func (e *Encoder) Encode(node *conf.Node) error {
	var buf bytes.Buffer

	err := appendNode(&buf, node)
	if err != nil {
		return err
	}

	out := buf.Bytes()

	if e.indent != "" {
		var indented bytes.Buffer

		err = gojson.Indent(&indented, out, "", e.indent)
		if err != nil {
			return fmt.Errorf("indenting output: %w", err)
		}

		out = indented.Bytes()
	}

	_, err = e.w.Write(append(out, '\n'))
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func appendNode(buf *bytes.Buffer, node *conf.Node) error {
	if node.IsLeaf() {
		return appendString(buf, node.Value())
	}

	buf.WriteByte('{')

	first := true

	for segment, child := range node.Children() {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		err := appendString(buf, segment)
		if err != nil {
			return err
		}

		buf.WriteByte(':')

		err = appendNode(buf, child)
		if err != nil {
			return err
		}
	}

	buf.WriteByte('}')

	return nil
}

func appendString(buf *bytes.Buffer, s string) error {
	encoded, err := gojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", s, err)
	}

	buf.Write(encoded)

	return nil
}
