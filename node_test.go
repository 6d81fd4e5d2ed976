package activitystreams_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	as "github.com/aluitink/ActivityStreams"
	"github.com/aluitink/ActivityStreams/internal/json"
)

func TestChildren(t *testing.T) {
	n := MustUnmarshal(t, json.RawMessage(`{
		"type": "Collection",
		"preview": "http://example.org/preview",
		"attributedTo": ["http://example.org/a", {"type": "Person"}],
		"first": "http://example.org/c?page=1",
		"items": [{"type": "Note", "attributedTo": "http://example.org/nested"}]
	}`))

	type edge struct {
		prop string
		node string
	}

	var got []edge
	for prop, child := range as.Children(n) {
		got = append(got, edge{prop, child.Common().ID + typeOf(child)})
	}

	assert.Equal(t, []edge{
		{"preview", "Link"},
		{"attributedTo", "Link"},
		{"attributedTo", "Person"},
		{"first", "Link"},
		{"items", "Note"},
	}, got)
}

func typeOf(n as.Node) string {
	if t := n.Common().Type; len(t) > 0 {
		return t[0]
	}
	if _, ok := n.AsLink(); ok {
		return "Link"
	}
	return "Object"
}

func TestChildrenStops(t *testing.T) {
	n := MustUnmarshal(t, json.RawMessage(`{"type":"Note","to":["http://example.org/a","http://example.org/b"]}`))

	count := 0
	for range as.Children(n) {
		count++
		break
	}
	assert.Equal(t, 1, count)

	for range as.Children(nil) {
		t.Fatal("nil node has no children")
	}
}

func TestHasType(t *testing.T) {
	n := as.NewNote()
	assert.True(t, n.HasType("Note"))
	assert.True(t, n.HasType("as:Note"))
	assert.True(t, n.HasType(as.Namespace+"Note"))
	assert.False(t, n.HasType("Article"))
}

func TestExtensionsSet(t *testing.T) {
	var ext as.Extensions
	require.NoError(t, ext.Set("ext:rank", 3))

	var rank int
	ok, err := ext.Unmarshal("ext:rank", &rank)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, rank)

	ok, err = ext.Unmarshal("missing", &rank)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, ext.Set("bad", func() {}))
}

func TestOptional(t *testing.T) {
	var o as.Optional[float64]
	_, ok := o.Get()
	assert.False(t, ok)

	o = as.Some(1.5)
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	require.NoError(t, o.UnmarshalJSON([]byte(`null`)))
	assert.False(t, o.Set)
	assert.Equal(t, as.Optional[float64]{}, o)
}

func TestMintID(t *testing.T) {
	a, err := as.MintID("https://example.org/notes/")
	require.NoError(t, err)
	b, err := as.MintID("https://example.org/notes")
	require.NoError(t, err)

	assert.Regexp(t, `^https://example\.org/notes/[0-9a-f-]{36}$`, a)
	assert.Regexp(t, `^https://example\.org/notes/[0-9a-f-]{36}$`, b)
	assert.NotEqual(t, a, b)

	_, err = as.MintID("/relative")
	assert.Error(t, err)
}
