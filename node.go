package activitystreams

import (
	"iter"
	"maps"
	"slices"

	"github.com/aluitink/ActivityStreams/internal/json"
)

// Node is any decoded ActivityStreams entity.
//
// Every Node is either Object-rooted or Link-rooted, never both. Use
// [Node.AsObject] and [Node.AsLink] to find out which, or a type switch on the
// concrete variant like [*Note] or [*Link].
//
// The interface is sealed, the only implementations are the variants in this
// package.
type Node interface {
	// Common returns the properties shared by Objects and Links.
	Common() *Base

	// AsObject returns the Object properties if this is an Object-rooted
	// variant.
	AsObject() (*ObjectFields, bool)

	// AsLink returns the Link properties if this is a Link-rooted variant.
	AsLink() (*LinkFields, bool)

	// properties returns the declared properties of the variant, in the
	// order they're emitted.
	properties() []property
}

// LangMap holds a natural language value keyed by BCP47 language tag, as
// used by the nameMap, summaryMap and contentMap properties.
type LangMap map[string]string

// Extensions holds properties present on the wire that the resolved variant
// has no declared slot for. Values are kept as compacted JSON.
type Extensions map[string]json.RawMessage

// Unmarshal decodes the extension property name into v. It returns false if
// the property isn't present.
func (e Extensions) Unmarshal(name string, v any) (bool, error) {
	raw, ok := e[name]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

// Set encodes v and stores it as the extension property name.
func (e *Extensions) Set(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if *e == nil {
		*e = make(Extensions, 1)
	}
	(*e)[name] = data
	return nil
}

// Base holds the properties shared by every Object and Link.
type Base struct {
	LDContext  Seq[TermDefinition] // @context
	ID         string              // id
	Type       []string            // type
	Name       Seq[string]         // name
	NameMap    Seq[LangMap]        // nameMap
	MediaType  string              // mediaType
	Preview    Seq[Node]           // preview
	Extensions Extensions          // everything else
}

// Common returns b.
func (b *Base) Common() *Base {
	return b
}

// HasType returns if tag is one of the node's types. Types in the
// ActivityStreams namespace match their short form and vice versa.
func (b *Base) HasType(tag string) bool {
	want := shortTerm(tag)
	for _, t := range b.Type {
		if shortTerm(t) == want {
			return true
		}
	}
	return false
}

func (b *Base) init(tag string) {
	b.Type = []string{tag}
}

func (b *Base) baseProperties() []property {
	return []property{
		stringsProp(PropName, &b.Name),
		langMapsProp(PropNameMap, &b.NameMap),
		stringProp(PropMediaType, &b.MediaType),
		nodesProp(PropPreview, &b.Preview),
	}
}

// PropertySet returns a set with an entry for each property that is set on
// the node, including extensions.
func PropertySet(n Node) map[string]struct{} {
	if isNil(n) {
		return nil
	}

	b := n.Common()
	res := make(map[string]struct{}, len(b.Extensions)+8)

	if b.LDContext != nil {
		res[KeywordContext] = struct{}{}
	}
	if b.ID != "" {
		res[PropID] = struct{}{}
	}
	if b.Type != nil {
		res[PropType] = struct{}{}
	}

	e := &encoder{keepEmpty: true}
	for _, p := range n.properties() {
		if _, ok := p.encode(e); ok {
			res[p.name] = struct{}{}
		}
	}

	for k := range b.Extensions {
		res[k] = struct{}{}
	}

	return res
}

// Has returns if a node has the requested property set. Empty sequences
// count as set.
func Has(n Node, prop string) bool {
	_, ok := PropertySet(n)[prop]
	return ok
}

// Children returns the Objects and Links n holds, together with the name of
// the property holding them. Nested nodes aren't visited.
func Children(n Node) iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		if isNil(n) {
			return
		}

		for _, p := range n.properties() {
			if p.nodes == nil {
				continue
			}
			for _, c := range p.nodes() {
				if !yield(p.name, c) {
					return
				}
			}
		}
	}
}

// Properties returns the names of the properties set on the node, in the
// order they're encoded.
func Properties(n Node) []string {
	if isNil(n) {
		return nil
	}

	set := PropertySet(n)
	res := make([]string, 0, len(set))

	for _, name := range []string{KeywordContext, PropID, PropType} {
		if _, ok := set[name]; ok {
			res = append(res, name)
			delete(set, name)
		}
	}

	for _, p := range n.properties() {
		if _, ok := set[p.name]; ok {
			res = append(res, p.name)
			delete(set, p.name)
		}
	}

	return append(res, slices.Sorted(maps.Keys(set))...)
}
