package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/0xalexb/sysconf/conf"
)

// Issue codes.
const (
	CodeRequired    = "required"
	CodeInvalidType = "invalid_type"
)

// Issue is a single validation violation.
type Issue struct {
	Key  string
	Code string
	Kind Kind
	Got  string
}

// Message renders the issue for humans.
func (i Issue) Message() string {
	switch i.Code {
	case CodeRequired:
		return fmt.Sprintf("required key %q is missing", i.Key)
	case CodeInvalidType:
		return fmt.Sprintf("key %q: expected %s value, got %q", i.Key, i.Kind, i.Got)
	default:
		return fmt.Sprintf("key %q: %s", i.Key, i.Code)
	}
}

// Issues is the aggregate validation failure: every violation found in
// one pass, in discovery order. It implements error; a nil or empty
// Issues is never returned by Validate.
type Issues []Issue

func (iss Issues) Error() string {
	parts := make([]string, len(iss))
	for i, issue := range iss {
		parts[i] = issue.Message()
	}

	return strings.Join(parts, "; ")
}

// Validate checks every declared field against the store and returns
// all violations at once, or nil when the store conforms.
//
// Missing required fields are reported first, then type mismatches,
// each group in schema declaration order. Store keys the schema does
// not declare are ignored: the schema is a set of checks, not an
// allow-list.
func Validate(store *conf.Store, schema *Schema) error {
	var issues Issues

	for field := range schema.Fields() {
		if !field.Required {
			continue
		}

		_, ok := store.Get(field.Name)
		if !ok {
			issues = append(issues, Issue{Key: field.Name, Code: CodeRequired, Kind: field.Kind})
		}
	}

	for field := range schema.Fields() {
		value, ok := store.Get(field.Name)
		if !ok {
			continue
		}

		if !conforms(field.Kind, value) {
			issues = append(issues, Issue{Key: field.Name, Code: CodeInvalidType, Kind: field.Kind, Got: value})
		}
	}

	if len(issues) > 0 {
		return issues
	}

	return nil
}

func conforms(kind Kind, value string) bool {
	switch kind {
	case String:
		return true
	case Bool:
		_, err := ParseBool(value)

		return err == nil
	case Int:
		_, err := strconv.ParseInt(value, 10, 64)

		return err == nil
	case Float:
		_, err := strconv.ParseFloat(value, 64)

		return err == nil
	default:
		return false
	}
}

// ParseBool interprets the sysctl-style boolean spellings: true/1/on/yes
// and false/0/off/no, case-insensitively.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "1", "on", "yes":
		return true, nil
	case "false", "0", "off", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", value)
	}
}
