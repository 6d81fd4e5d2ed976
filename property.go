package activitystreams

import (
	"fmt"
	"time"

	"github.com/aluitink/ActivityStreams/internal/json"
	"github.com/aluitink/ActivityStreams/internal/url"
	"github.com/aluitink/ActivityStreams/internal/xsd"
)

// Duration is an xsd:duration, as used by the duration property.
type Duration = xsd.Duration

// ParseDuration parses an ISO 8601 duration like PT2H30M.
func ParseDuration(s string) (Duration, error) {
	return xsd.ParseDuration(s)
}

// property describes one declared property of a variant, bound to the field
// that holds its value.
type property struct {
	name   string
	decode func(d *decoder, raw json.RawMessage, p path) error
	encode func(e *encoder) (json.RawMessage, bool)

	// nodes is only set for properties holding Objects or Links.
	nodes func() []Node
}

func malformed(want string, raw json.RawMessage) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrMalformedShape, want, json.Kind(raw))
}

func unparsable(err error) error {
	return fmt.Errorf("%w: %w", ErrUnparsableScalar, err)
}

func decodeString(raw json.RawMessage) (string, error) {
	if !json.IsString(raw) {
		return "", malformed("a string", raw)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", unparsable(err)
	}
	return s, nil
}

func stringProp(name string, dst *string) property {
	return property{
		name: name,
		decode: func(_ *decoder, raw json.RawMessage, p path) error {
			s, err := decodeString(raw)
			if err != nil {
				return p.wrap(err)
			}
			*dst = s
			return nil
		},
		encode: func(*encoder) (json.RawMessage, bool) {
			if *dst == "" {
				return nil, false
			}
			return json.String(*dst), true
		},
	}
}

func hrefProp(name string, dst *string) property {
	return property{
		name: name,
		decode: func(_ *decoder, raw json.RawMessage, p path) error {
			s, err := decodeString(raw)
			if err != nil {
				return p.wrap(err)
			}
			if !url.IsReference(s) {
				return p.wrap(unparsable(fmt.Errorf("invalid IRI %q", s)))
			}
			*dst = s
			return nil
		},
		encode: func(*encoder) (json.RawMessage, bool) {
			if *dst == "" {
				return nil, false
			}
			return json.String(*dst), true
		},
	}
}

func stringsProp(name string, dst *Seq[string]) property {
	return property{
		name: name,
		decode: func(_ *decoder, raw json.RawMessage, p path) error {
			res, err := Normalize(raw, func(elem json.RawMessage, i int) (string, error) {
				s, err := decodeString(elem)
				if err != nil {
					return "", p.elem(i).wrap(err)
				}
				return s, nil
			})
			if err != nil {
				return err
			}
			*dst = res
			return nil
		},
		encode: func(e *encoder) (json.RawMessage, bool) {
			return e.seq(len(*dst), func() (json.RawMessage, bool) {
				return Denormalize(*dst, json.String)
			})
		},
	}
}

func decodeLangMap(raw json.RawMessage, p path) (LangMap, error) {
	if !json.IsMap(raw) {
		return nil, p.wrap(malformed("a language map", raw))
	}

	var obj json.Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, p.wrap(unparsable(err))
	}

	res := make(LangMap, len(obj))
	for lang, v := range obj {
		s, err := decodeString(v)
		if err != nil {
			return nil, p.key(lang).wrap(err)
		}
		res[lang] = s
	}
	return res, nil
}

func langMapsProp(name string, dst *Seq[LangMap]) property {
	return property{
		name: name,
		decode: func(_ *decoder, raw json.RawMessage, p path) error {
			res, err := Normalize(raw, func(elem json.RawMessage, i int) (LangMap, error) {
				return decodeLangMap(elem, p.elem(i))
			})
			if err != nil {
				return err
			}
			*dst = res
			return nil
		},
		encode: func(e *encoder) (json.RawMessage, bool) {
			return e.seq(len(*dst), func() (json.RawMessage, bool) {
				return Denormalize(*dst, func(m LangMap) json.RawMessage {
					return json.StringMap(m)
				})
			})
		},
	}
}

func nodesProp(name string, dst *Seq[Node]) property {
	return property{
		name: name,
		decode: func(d *decoder, raw json.RawMessage, p path) error {
			res, err := Normalize(raw, func(elem json.RawMessage, i int) (Node, error) {
				return d.objectOrLink(elem, p.elem(i))
			})
			if err != nil {
				return err
			}
			*dst = res
			return nil
		},
		encode: func(e *encoder) (json.RawMessage, bool) {
			return e.seq(len(*dst), func() (json.RawMessage, bool) {
				return Denormalize(*dst, e.node)
			})
		},
		nodes: func() []Node {
			return *dst
		},
	}
}

// nodeProp is a functional Object or Link property. It can't hold an array.
func nodeProp(name string, dst *Node) property {
	return property{
		name: name,
		decode: func(d *decoder, raw json.RawMessage, p path) error {
			n, err := d.objectOrLink(raw, p)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		},
		encode: func(e *encoder) (json.RawMessage, bool) {
			if *dst == nil {
				return nil, false
			}
			return e.node(*dst), true
		},
		nodes: func() []Node {
			if *dst == nil {
				return nil
			}
			return []Node{*dst}
		},
	}
}

// pageProp is a functional CollectionPage or Link property.
func pageProp(name string, dst *PageOrLink) property {
	return property{
		name: name,
		decode: func(d *decoder, raw json.RawMessage, p path) error {
			n, err := d.pageOrLink(raw, p)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		},
		encode: func(e *encoder) (json.RawMessage, bool) {
			if *dst == nil {
				return nil, false
			}
			return e.node(*dst), true
		},
		nodes: func() []Node {
			if *dst == nil {
				return nil
			}
			return []Node{*dst}
		},
	}
}

func timeProp(name string, dst *time.Time) property {
	return property{
		name: name,
		decode: func(_ *decoder, raw json.RawMessage, p path) error {
			s, err := decodeString(raw)
			if err != nil {
				return p.wrap(err)
			}
			t, err := xsd.ParseDateTime(s)
			if err != nil {
				return p.wrap(unparsable(err))
			}
			*dst = t
			return nil
		},
		encode: func(*encoder) (json.RawMessage, bool) {
			if dst.IsZero() {
				return nil, false
			}
			return json.String(xsd.FormatDateTime(*dst)), true
		},
	}
}

func durationProp(name string, dst **Duration) property {
	return property{
		name: name,
		decode: func(_ *decoder, raw json.RawMessage, p path) error {
			s, err := decodeString(raw)
			if err != nil {
				return p.wrap(err)
			}
			v, err := xsd.ParseDuration(s)
			if err != nil {
				return p.wrap(unparsable(err))
			}
			*dst = &v
			return nil
		},
		encode: func(*encoder) (json.RawMessage, bool) {
			if *dst == nil {
				return nil, false
			}
			return json.String((*dst).String()), true
		},
	}
}

func optionalProp[T Scalar](name string, dst *Optional[T]) property {
	return property{
		name: name,
		decode: func(_ *decoder, raw json.RawMessage, p path) error {
			if !json.IsScalar(raw) {
				return p.wrap(malformed("a scalar", raw))
			}
			if err := dst.UnmarshalJSON(raw); err != nil {
				return p.wrap(unparsable(err))
			}
			return nil
		},
		encode: func(*encoder) (json.RawMessage, bool) {
			if !dst.Set {
				return nil, false
			}
			data, err := dst.MarshalJSON()
			if err != nil {
				// NaN and infinities have no JSON form
				return nil, false
			}
			return data, true
		},
	}
}
