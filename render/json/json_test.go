package json_test

import (
	"bytes"
	"testing"

	"github.com/0xalexb/sysconf/conf"
	renderjson "github.com/0xalexb/sysconf/render/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hierarchy(t *testing.T, pairs ...string) *conf.Node {
	t.Helper()
	require.Zero(t, len(pairs)%2, "pairs must come in twos")

	store := conf.New()
	for i := 0; i < len(pairs); i += 2 {
		store.Set(pairs[i], pairs[i+1])
	}

	node, err := store.Hierarchy()
	require.NoError(t, err)

	return node
}

func TestEncoder_Encode_Nested(t *testing.T) {
	t.Parallel()

	node := hierarchy(t,
		"net.ipv4.ip_forward", "1",
		"net.core.somaxconn", "1024",
		"debug", "true",
	)

	var buf bytes.Buffer

	err := renderjson.NewEncoder(&buf).Encode(node)
	require.NoError(t, err)

	want := `{"net":{"ipv4":{"ip_forward":"1"},"core":{"somaxconn":"1024"}},"debug":"true"}` + "\n"
	assert.Equal(t, want, buf.String())
}

// Keys must render in store insertion order, not sorted.
func TestEncoder_Encode_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	node := hierarchy(t,
		"zeta", "1",
		"alpha", "2",
		"mike", "3",
	)

	var buf bytes.Buffer

	err := renderjson.NewEncoder(&buf).Encode(node)
	require.NoError(t, err)

	assert.Equal(t, `{"zeta":"1","alpha":"2","mike":"3"}`+"\n", buf.String())
}

func TestEncoder_Encode_EscapesStrings(t *testing.T) {
	t.Parallel()

	node := hierarchy(t, "motd", `say "hello"`+"\tworld")

	var buf bytes.Buffer

	err := renderjson.NewEncoder(&buf).Encode(node)
	require.NoError(t, err)

	assert.Equal(t, `{"motd":"say \"hello\"\tworld"}`+"\n", buf.String())
}

func TestEncoder_Encode_EmptyHierarchy(t *testing.T) {
	t.Parallel()

	node := hierarchy(t)

	var buf bytes.Buffer

	err := renderjson.NewEncoder(&buf).Encode(node)
	require.NoError(t, err)

	assert.Equal(t, "{}\n", buf.String())
}

func TestEncoder_Encode_Indented(t *testing.T) {
	t.Parallel()

	node := hierarchy(t, "a.b", "1", "c", "2")

	var buf bytes.Buffer

	encoder := renderjson.NewEncoder(&buf)
	encoder.SetIndent("  ")

	err := encoder.Encode(node)
	require.NoError(t, err)

	want := `{
  "a": {
    "b": "1"
  },
  "c": "2"
}
`
	assert.Equal(t, want, buf.String())
}
