package activitystreams_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	as "github.com/aluitink/ActivityStreams"
	"github.com/aluitink/ActivityStreams/internal/json"
)

func TestVocabulary(t *testing.T) {
	tests := map[string]struct {
		want  as.Node
		check func(t *testing.T, n as.Node)
	}{
		"object.json": {want: &as.Object{}},
		"link.json": {
			want: &as.Link{},
			check: func(t *testing.T, n as.Node) {
				l, _ := n.AsLink()
				assert.Equal(t, "http://example.org/abc", l.Href)
				assert.Equal(t, "text/html", l.MediaType)
			},
		},
		"activity.json": {
			want: &as.Activity{},
			check: func(t *testing.T, n as.Node) {
				a := n.(*as.Activity)
				require.Len(t, a.Actor, 1)
				assert.IsType(t, &as.Person{}, a.Actor[0])
				require.Len(t, a.Object, 1)
				assert.IsType(t, &as.Note{}, a.Object[0])
			},
		},
		"travel.json": {
			want: &as.Travel{},
			check: func(t *testing.T, n as.Node) {
				tr := n.(*as.Travel)
				require.Len(t, tr.Target, 1)
				assert.IsType(t, &as.Place{}, tr.Target[0])
			},
		},
		"collection.json": {
			want: &as.Collection{},
			check: func(t *testing.T, n as.Node) {
				c := n.(*as.Collection)
				assert.Equal(t, as.Some[uint64](2), c.TotalItems)
				assert.Len(t, c.Items, 2)
			},
		},
		"collectionpaging.json": {
			want: &as.Collection{},
			check: func(t *testing.T, n as.Node) {
				c := n.(*as.Collection)
				assert.IsType(t, &as.Link{}, c.Current)
				assert.IsType(t, &as.CollectionPage{}, c.First)
				assert.IsType(t, &as.Link{}, c.Last)
				assert.Len(t, c.Items, 3)
			},
		},
		"orderedcollectionpage.json": {
			want: &as.OrderedCollectionPage{},
			check: func(t *testing.T, n as.Node) {
				p := n.(*as.OrderedCollectionPage)
				assert.Equal(t, as.Some[uint64](0), p.StartIndex)
				assert.IsType(t, &as.Link{}, p.PartOf)
				assert.IsType(t, &as.Link{}, p.Next)
				assert.Len(t, p.OrderedItems, 2)
			},
		},
		"question.json": {
			want: &as.Question{},
			check: func(t *testing.T, n as.Node) {
				q := n.(*as.Question)
				assert.Len(t, q.OneOf, 2)
				assert.Nil(t, q.AnyOf)
				assert.Contains(t, q.Extensions, "closed")
			},
		},
		"place.json": {
			want: &as.Place{},
			check: func(t *testing.T, n as.Node) {
				p := n.(*as.Place)
				assert.Equal(t, as.Some(0.0), p.Altitude)
				assert.Equal(t, as.Some(15.0), p.Radius)
				assert.Equal(t, "miles", p.Units)
			},
		},
		"relationship.json": {
			want: &as.Relationship{},
			check: func(t *testing.T, n as.Node) {
				r := n.(*as.Relationship)
				assert.IsType(t, &as.Person{}, r.Subject)
				require.Len(t, r.Relationship, 1)
				assert.IsType(t, &as.Link{}, r.Relationship[0])
			},
		},
		"profile.json": {
			want: &as.Profile{},
			check: func(t *testing.T, n as.Node) {
				assert.IsType(t, &as.Person{}, n.(*as.Profile).Describes)
			},
		},
		"tombstone.json": {
			want: &as.OrderedCollection{},
			check: func(t *testing.T, n as.Node) {
				c := n.(*as.OrderedCollection)
				require.Len(t, c.OrderedItems, 3)
				ts, ok := c.OrderedItems[1].(*as.Tombstone)
				require.True(t, ok, "expected a Tombstone, got %T", c.OrderedItems[1])
				assert.Equal(t, as.Seq[string]{"Image"}, ts.FormerType)
				assert.Equal(t, 2016, ts.Deleted.Year())
			},
		},
		"mention.json": {
			want: &as.Note{},
			check: func(t *testing.T, n as.Node) {
				note := n.(*as.Note)
				require.Len(t, note.Tag, 2)
				assert.IsType(t, &as.Object{}, note.Tag[0])
				assert.IsType(t, &as.Mention{}, note.Tag[1])
			},
		},
		"contentmap.json": {
			want: &as.Note{},
			check: func(t *testing.T, n as.Node) {
				note := n.(*as.Note)
				require.Len(t, note.ContentMap, 1)
				assert.Equal(t, "Una nota <em>sencilla</em>", note.ContentMap[0]["es"])
			},
		},
		"video.json": {
			want: &as.Video{},
			check: func(t *testing.T, n as.Node) {
				v := n.(*as.Video)
				require.NotNil(t, v.Duration)
				assert.Equal(t, "PT2H", v.Duration.String())
			},
		},
		"event.json":  {want: &as.Event{}},
		"image.json":  {want: &as.Image{}},
		"invite.json": {want: &as.Invite{}},
		"extension.json": {
			want: &as.Person{},
			check: func(t *testing.T, n as.Node) {
				p := n.(*as.Person)
				assert.Equal(t, []string{"Person", "ext:Admin"}, p.Type)
				assert.Len(t, p.LDContext, 2)
				assert.Equal(t, json.RawMessage(`false`), p.Extensions["sensitive"])
				require.Len(t, p.Icon, 1)
				assert.Contains(t, p.Icon[0].Common().Extensions, "width")
			},
		},
	}

	for file, tt := range tests {
		t.Run(file, func(t *testing.T) {
			in := LoadData(t, filepath.Join("testdata", "vocabulary", file))

			n := MustUnmarshal(t, in)
			Dump(t, n)

			assert.IsType(t, tt.want, n)
			assert.True(t, as.HasContext(n, as.ContextIRI))
			if tt.check != nil {
				tt.check(t, n)
			}

			once := as.Marshal(n)
			twice := as.Marshal(MustUnmarshal(t, once))
			if diff := cmp.Diff(string(once), string(twice)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVocabularyTypesRoundTrip(t *testing.T) {
	for tag := range as.Types() {
		t.Run(tag, func(t *testing.T) {
			c, ok := as.Lookup(tag)
			require.True(t, ok)

			n := c()
			n.Common().ID = "http://example.org/" + tag
			if l, ok := n.AsLink(); ok {
				l.Href = "http://example.org/target"
			}

			data := as.Marshal(n)
			got := MustUnmarshal(t, data)

			assert.IsType(t, n, got)
			assert.Equal(t, []string{tag}, got.Common().Type)
			assert.Equal(t, string(data), string(as.Marshal(got)))
		})
	}
}
