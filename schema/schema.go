package schema

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrMalformed is returned when a schema document is not valid YAML or
// lacks the expected structure.
var ErrMalformed = errors.New("malformed schema document")

// ErrUnknownType is returned when a field declares a type token outside
// the four supported kinds.
var ErrUnknownType = errors.New("unknown type")

// Kind is the declared type of a schema field.
type Kind uint8

// The four primitive kinds a field can declare.
const (
	String Kind = iota
	Bool
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps a type token to its Kind, case-insensitively.
func ParseKind(token string) (Kind, error) {
	switch strings.ToLower(token) {
	case "string":
		return String, nil
	case "bool":
		return Bool, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	default:
		return String, fmt.Errorf("%w: %q", ErrUnknownType, token)
	}
}

// UnknownTypeError reports the field whose type token was not recognized.
// It wraps ErrUnknownType for errors.Is checks.
type UnknownTypeError struct {
	Field string
	Token string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("field %q: unknown type %q", e.Field, e.Token)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// Field is one declared schema entry.
type Field struct {
	Name        string
	Kind        Kind
	Required    bool
	Description string
}

// Schema is an immutable, declaration-ordered set of fields keyed by
// field name. Create instances with Load.
type Schema struct {
	order  []string
	fields map[string]Field
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return len(s.order)
}

// Lookup returns the field declared under name.
func (s *Schema) Lookup(name string) (Field, bool) {
	field, ok := s.fields[name]

	return field, ok
}

// Fields returns an iterator over the fields in declaration order.
func (s *Schema) Fields() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, name := range s.order {
			if !yield(s.fields[name]) {
				return
			}
		}
	}
}

type fieldSpec struct {
	Type        string `yaml:"type"`
	Required    bool   `yaml:"required"`
	Description string `yaml:"description"`
}

// Load parses a schema document. The document is decoded twice: once
// into typed field specs and once into a yaml.MapSlice to recover the
// declaration order, which Go maps discard.
func Load(data []byte) (*Schema, error) {
	var doc struct {
		Schema map[string]fieldSpec `yaml:"schema"`
	}

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if doc.Schema == nil {
		return nil, fmt.Errorf("%w: missing top-level \"schema\" mapping", ErrMalformed)
	}

	var ordered struct {
		Schema yaml.MapSlice `yaml:"schema"`
	}

	err = yaml.Unmarshal(data, &ordered)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	schema := &Schema{
		fields: make(map[string]Field, len(doc.Schema)),
	}

	for _, item := range ordered.Schema {
		name, ok := item.Key.(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: field name %v must be a non-empty string", ErrMalformed, item.Key)
		}

		spec := doc.Schema[name]

		kind, err := ParseKind(spec.Type)
		if err != nil {
			return nil, &UnknownTypeError{Field: name, Token: spec.Type}
		}

		schema.order = append(schema.order, name)
		schema.fields[name] = Field{
			Name:        name,
			Kind:        kind,
			Required:    spec.Required,
			Description: spec.Description,
		}
	}

	return schema, nil
}
