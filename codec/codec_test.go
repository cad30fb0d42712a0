package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	type doc struct {
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}
	in := doc{Title: "The Hobbit", Tags: []string{"fantasy"}}

	std, err := JSON{}.Marshal(in)
	require.NoError(t, err)

	var out doc
	require.NoError(t, GoJSON{}.Unmarshal(std, &out))
	assert.Equal(t, in, out)
}
