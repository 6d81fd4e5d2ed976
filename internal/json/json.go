package json

import (
	"bytes"
	"encoding/json"
	"io"
	"maps"
	"slices"
)

type RawMessage = json.RawMessage
type Object map[string]RawMessage
type Array []RawMessage
type Decoder = json.Decoder

func NewDecoder(r io.Reader) *Decoder {
	return json.NewDecoder(r)
}

func Compact(dst *bytes.Buffer, src []byte) error {
	return json.Compact(dst, src)
}

func Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error {
	return json.Indent(dst, src, prefix, indent)
}

func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func Valid(data []byte) bool {
	return json.Valid(data)
}

func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// String encodes s as a JSON string. It can't fail.
//
// Unlike Marshal it doesn't escape <, > and &, content is frequently HTML.
func String(s string) RawMessage {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}

// StringMap encodes m as a JSON object with sorted keys, escaping like
// [String].
func StringMap(m map[string]string) RawMessage {
	var buf bytes.Buffer
	buf.WriteByte(beginObject)
	for i, k := range slices.Sorted(maps.Keys(m)) {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(String(k))
		buf.WriteByte(':')
		buf.Write(String(m[k]))
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

var (
	beginArray  = byte('[')
	beginObject = byte('{')
	beginString = byte('"')
	null        = RawMessage(`null`)
	emptyArray  = RawMessage(`[]`)
)

func IsNull(in RawMessage) bool {
	return bytes.Equal(in, null)
}

func IsArray(in RawMessage) bool {
	if len(in) == 0 {
		return false
	}
	return in[0] == beginArray
}

func IsMap(in RawMessage) bool {
	if len(in) == 0 {
		return false
	}
	return in[0] == beginObject
}

func IsString(in RawMessage) bool {
	if len(in) == 0 {
		return false
	}
	return in[0] == beginString
}

func IsBool(in RawMessage) bool {
	return bytes.Equal(in, RawMessage(`true`)) || bytes.Equal(in, RawMessage(`false`))
}

func IsNumber(in RawMessage) bool {
	if len(in) == 0 {
		return false
	}
	return in[0] == '-' || (in[0] >= '0' && in[0] <= '9')
}

func IsScalar(in RawMessage) bool {
	return !IsArray(in) && !IsMap(in) && !IsNull(in)
}

// Kind names the shape of a value for use in error messages.
func Kind(in RawMessage) string {
	switch {
	case len(in) == 0:
		return "nothing"
	case IsNull(in):
		return "null"
	case IsArray(in):
		return "array"
	case IsMap(in):
		return "object"
	case IsString(in):
		return "string"
	case IsBool(in):
		return "boolean"
	case IsNumber(in):
		return "number"
	default:
		return "invalid JSON"
	}
}

// CompactCopy returns a whitespace-free copy of in. If in isn't valid JSON
// it's returned as-is.
func CompactCopy(in RawMessage) RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, in); err != nil {
		return bytes.Clone(in)
	}
	return buf.Bytes()
}

// MakeArray joins already encoded elements into a JSON array.
func MakeArray(elems ...RawMessage) RawMessage {
	if len(elems) == 0 {
		return bytes.Clone(emptyArray)
	}

	var buf bytes.Buffer
	buf.WriteByte(beginArray)
	for i, e := range elems {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(e)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}
