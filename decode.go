package activitystreams

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/aluitink/ActivityStreams/internal/json"
	"github.com/aluitink/ActivityStreams/internal/url"
)

type decoder struct {
	maxDepth int
	preserve bool
	logger   *slog.Logger
}

// document decodes the root of a document, which must be an object.
func (d *decoder) document(raw json.RawMessage) (Node, error) {
	if !json.IsMap(raw) {
		return nil, path(nil).wrap(malformed("an object", raw))
	}
	return d.objectOrLink(raw, nil)
}

func (d *decoder) enter(p path) error {
	if len(p) > d.maxDepth {
		return p.wrap(fmt.Errorf("%w: limit is %d", ErrMaxDepth, d.maxDepth))
	}
	return nil
}

// reference decodes a bare string into a plain reference.
func (d *decoder) reference(raw json.RawMessage, p path) (*Link, error) {
	s, err := decodeString(raw)
	if err != nil {
		return nil, p.wrap(err)
	}
	if !url.IsReference(s) {
		return nil, p.wrap(unparsable(fmt.Errorf("invalid IRI %q", s)))
	}
	return IRI(s), nil
}

// objectOrLink decodes a value that can be any Object or Link.
//
//   - A string is a reference and becomes a [*Link] without a type.
//   - An object tagged Link becomes a [*Link].
//   - Any other object is resolved through the registry. Objects without a
//     type, or without a known type, become an [*Object]. Having an href
//     doesn't make an untyped object a Link.
//
// Anything else is malformed.
func (d *decoder) objectOrLink(raw json.RawMessage, p path) (Node, error) {
	if err := d.enter(p); err != nil {
		return nil, err
	}

	if json.IsString(raw) {
		l, err := d.reference(raw, p)
		if err != nil {
			return nil, err
		}
		return l, nil
	}

	if !json.IsMap(raw) {
		return nil, p.wrap(malformed("an Object or Link", raw))
	}

	obj, types, err := d.header(raw, p)
	if err != nil {
		return nil, err
	}

	var n Node
	switch {
	case slices.ContainsFunc(types, func(t string) bool { return shortTerm(t) == TypeLink }):
		n = NewLink("")
	case types == nil:
		n = NewObject()
	default:
		if c, _, ok := Resolve(types); ok {
			n = c()
		} else {
			d.logger.Debug("no known type, decoding as Object",
				slog.String("path", p.String()),
				slog.Any("type", types),
			)
			n = NewObject()
		}
	}

	if err := d.fill(n, obj, types, p); err != nil {
		return nil, err
	}
	return n, nil
}

// pageOrLink decodes the value of the collection paging properties. Unlike
// [decoder.objectOrLink] the set of types is closed: a Link, a CollectionPage
// or an OrderedCollectionPage.
func (d *decoder) pageOrLink(raw json.RawMessage, p path) (PageOrLink, error) {
	if err := d.enter(p); err != nil {
		return nil, err
	}

	if json.IsString(raw) {
		l, err := d.reference(raw, p)
		if err != nil {
			return nil, err
		}
		return l, nil
	}

	if !json.IsMap(raw) {
		return nil, p.wrap(malformed("a CollectionPage or Link", raw))
	}

	obj, types, err := d.header(raw, p)
	if err != nil {
		return nil, err
	}

	if len(types) == 0 {
		return nil, p.wrap(fmt.Errorf("%w: a CollectionPage or Link needs a type", ErrMalformedShape))
	}

	var n PageOrLink
	for _, t := range types {
		if n = newPageOrLink(t); n != nil {
			break
		}
	}

	if n == nil {
		return nil, p.wrap(fmt.Errorf("%w: expected Link, CollectionPage or OrderedCollectionPage, got %s",
			ErrUnknownRequiredType, strings.Join(types, ", ")))
	}

	if err := d.fill(n, obj, types, p); err != nil {
		return nil, err
	}
	return n, nil
}

func newPageOrLink(tag string) PageOrLink {
	switch shortTerm(tag) {
	case TypeLink:
		return NewLink("")
	case TypeCollectionPage:
		return NewCollectionPage()
	case TypeOrderedCollectionPage:
		return NewOrderedCollectionPage()
	}
	return nil
}

// termDefinition decodes one entry of @context.
func (d *decoder) termDefinition(raw json.RawMessage, p path) (TermDefinition, error) {
	switch {
	case json.IsString(raw):
		s, err := decodeString(raw)
		if err != nil {
			return nil, p.wrap(err)
		}
		return ReferenceTermDefinition{IRI: s}, nil
	case json.IsMap(raw):
		return InlineTermDefinition{Raw: json.CompactCopy(raw)}, nil
	default:
		return nil, p.wrap(malformed("an IRI or a context object", raw))
	}
}

// header reads an object and its type tags. The type is read from type, or
// from @type when type is absent. A missing type results in nil.
func (d *decoder) header(raw json.RawMessage, p path) (json.Object, []string, error) {
	var obj json.Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, nil, p.wrap(fmt.Errorf("%w: %w", ErrMalformedShape, err))
	}

	key := aliased(obj, PropType, KeywordType)
	if key == "" {
		return obj, nil, nil
	}

	tp := p.key(key)
	types, err := Normalize(obj[key], func(elem json.RawMessage, i int) (string, error) {
		s, err := decodeString(elem)
		if err != nil {
			return "", tp.elem(i).wrap(err)
		}
		return s, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return obj, types, nil
}

// aliased returns which of name or its keyword alias is present on obj, or
// the empty string if neither is. JSON null counts as absent.
func aliased(obj json.Object, name, keyword string) string {
	for _, k := range []string{name, keyword} {
		if raw, ok := obj[k]; ok && !json.IsNull(raw) {
			return k
		}
	}
	return ""
}

// fill decodes the properties of obj into n. Declared properties are decoded
// in declaration order, everything else ends up in the extensions.
func (d *decoder) fill(n Node, obj json.Object, types []string, p path) error {
	b := n.Common()
	consumed := make(map[string]struct{}, len(obj))

	b.LDContext = nil
	if raw, ok := obj[KeywordContext]; ok {
		consumed[KeywordContext] = struct{}{}
		cp := p.key(KeywordContext)
		ctx, err := Normalize(raw, func(elem json.RawMessage, i int) (TermDefinition, error) {
			return d.termDefinition(elem, cp.elem(i))
		})
		if err != nil {
			return err
		}
		b.LDContext = ctx
	}

	if key := aliased(obj, PropID, KeywordID); key != "" {
		consumed[key] = struct{}{}
		id, err := decodeString(obj[key])
		if err != nil {
			return p.key(key).wrap(err)
		}
		b.ID = id
	}
	consumed[PropID] = struct{}{}

	if key := aliased(obj, PropType, KeywordType); key != "" {
		consumed[key] = struct{}{}
	}
	consumed[PropType] = struct{}{}
	b.Type = types

	for _, prop := range n.properties() {
		consumed[prop.name] = struct{}{}
		raw, ok := obj[prop.name]
		if !ok || json.IsNull(raw) {
			continue
		}
		if err := prop.decode(d, raw, p.key(prop.name)); err != nil {
			return err
		}
	}

	for _, k := range slices.Sorted(maps.Keys(obj)) {
		if _, ok := consumed[k]; ok {
			continue
		}

		if !d.preserve {
			d.logger.Debug("dropping undeclared property",
				slog.String("path", p.key(k).String()),
			)
			continue
		}

		if looksLikeKeyword(k) {
			d.logger.Warn("keyword lookalike kept as extension",
				slog.String("path", p.key(k).String()),
			)
		}

		if b.Extensions == nil {
			b.Extensions = make(Extensions)
		}
		b.Extensions[k] = json.CompactCopy(obj[k])
	}

	return nil
}
