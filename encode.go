package activitystreams

import (
	"bytes"
	"maps"
	"reflect"
	"slices"

	"github.com/aluitink/ActivityStreams/internal/json"
)

type encoder struct {
	keepEmpty bool
}

// seq encodes a one-or-many property of length n. Empty sequences are
// omitted unless the encoder keeps them.
func (e *encoder) seq(n int, enc func() (json.RawMessage, bool)) (json.RawMessage, bool) {
	if n == 0 && !e.keepEmpty {
		return nil, false
	}
	return enc()
}

// object builds a JSON object, keeping the insertion order of the keys.
type object struct {
	buf  bytes.Buffer
	seen map[string]struct{}
}

func (o *object) add(key string, value json.RawMessage) {
	if _, ok := o.seen[key]; ok {
		return
	}
	if o.seen == nil {
		o.seen = make(map[string]struct{}, 16)
		o.buf.WriteByte('{')
	} else {
		o.buf.WriteByte(',')
	}
	o.seen[key] = struct{}{}
	o.buf.Write(json.String(key))
	o.buf.WriteByte(':')
	o.buf.Write(value)
}

func (o *object) bytes() json.RawMessage {
	if o.seen == nil {
		return json.RawMessage(`{}`)
	}
	o.buf.WriteByte('}')
	return o.buf.Bytes()
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// node encodes n. It can't fail: values that have no JSON form are omitted.
func (e *encoder) node(n Node) json.RawMessage {
	if isNil(n) {
		return json.RawMessage(`null`)
	}

	if l, ok := n.(*Link); ok && l.IsReference() {
		return json.String(l.Href)
	}

	b := n.Common()
	var obj object

	if v, ok := Denormalize(b.LDContext, e.termDefinition); ok {
		obj.add(KeywordContext, v)
	}

	if b.ID != "" {
		obj.add(PropID, json.String(b.ID))
	}

	if v, ok := e.seq(len(b.Type), func() (json.RawMessage, bool) {
		return Denormalize(Seq[string](b.Type), json.String)
	}); ok {
		obj.add(PropType, v)
	}

	for _, p := range n.properties() {
		if v, ok := p.encode(e); ok {
			obj.add(p.name, v)
		}
	}

	for _, k := range slices.Sorted(maps.Keys(b.Extensions)) {
		v := b.Extensions[k]
		if !json.Valid(v) {
			continue
		}
		obj.add(k, json.CompactCopy(v))
	}

	return obj.bytes()
}

func (e *encoder) termDefinition(t TermDefinition) json.RawMessage {
	switch t := t.(type) {
	case ReferenceTermDefinition:
		return json.String(t.IRI)
	case InlineTermDefinition:
		if json.IsMap(t.Raw) && json.Valid(t.Raw) {
			return json.CompactCopy(t.Raw)
		}
	}
	return json.RawMessage(`{}`)
}
