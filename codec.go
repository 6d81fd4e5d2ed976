package activitystreams

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aluitink/ActivityStreams/internal/json"
)

// CodecOption can be used to customise the behaviour of a [Codec].
type CodecOption func(*Codec)

// Codec decodes ActivityStreams documents into typed nodes, and encodes
// nodes back into documents.
//
// A Codec is safe for concurrent use. Create one with [NewCodec] and pass any
// [CodecOption] to configure it.
type Codec struct {
	maxDepth        int
	preserveUnknown bool
	keepEmpty       bool
	logger          *slog.Logger
}

// NewCodec creates a new codec.
//
// By default:
//   - Documents can nest up to [DefaultMaxDepth] levels. Change it with
//     [WithMaxDepth].
//   - Properties a variant doesn't declare are kept in [Base.Extensions].
//     Change it with [WithPreserveUnknown].
//   - Empty arrays are omitted when encoding. Change it with [WithKeepEmpty].
//   - Logger is [slog.DiscardHandler]. Set it with [WithLogger].
func NewCodec(options ...CodecOption) *Codec {
	c := &Codec{
		maxDepth:        DefaultMaxDepth,
		preserveUnknown: true,
		logger:          slog.New(slog.DiscardHandler),
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// WithLogger sets the logger that'll be used during decoding.
//
// Warnings are emitted for keyword lookalikes. Type fallbacks and dropped
// properties are logged at debug level.
func WithLogger(l *slog.Logger) CodecOption {
	return func(c *Codec) {
		c.logger = l
	}
}

// WithMaxDepth sets how deeply documents can nest. Values below 1 reset it to
// [DefaultMaxDepth].
func WithMaxDepth(n int) CodecOption {
	return func(c *Codec) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		c.maxDepth = n
	}
}

// WithPreserveUnknown sets whether properties a variant doesn't declare are
// kept in [Base.Extensions]. When false they're dropped.
func WithPreserveUnknown(b bool) CodecOption {
	return func(c *Codec) {
		c.preserveUnknown = b
	}
}

// WithKeepEmpty sets whether empty, but present, one-or-many properties are
// encoded as an empty array.
func WithKeepEmpty(b bool) CodecOption {
	return func(c *Codec) {
		c.keepEmpty = b
	}
}

func (c *Codec) decoder() *decoder {
	return &decoder{
		maxDepth: c.maxDepth,
		preserve: c.preserveUnknown,
		logger:   c.logger,
	}
}

// Decode reads a single document from r.
//
// The document must be a JSON object. Anything after it, other than
// whitespace, is an error. Decoding is all or nothing: on error the returned
// node is nil.
func (c *Codec) Decode(r io.Reader) (Node, error) {
	dec := json.NewDecoder(r)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &PathError{Err: fmt.Errorf("%w: %w", ErrMalformedShape, err)}
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, &PathError{Err: fmt.Errorf("%w: unexpected data after the document", ErrMalformedShape)}
	}

	return c.decoder().document(raw)
}

// Unmarshal decodes a single document. See [Codec.Decode].
func (c *Codec) Unmarshal(data []byte) (Node, error) {
	return c.Decode(bytes.NewReader(data))
}

// Marshal encodes n as a compact JSON document. It never fails.
func (c *Codec) Marshal(n Node) []byte {
	e := &encoder{keepEmpty: c.keepEmpty}
	return e.node(n)
}

// Encode writes n to w as a compact JSON document.
func (c *Codec) Encode(w io.Writer, n Node) error {
	_, err := w.Write(c.Marshal(n))
	return err
}

var defaultCodec = NewCodec()

// Unmarshal decodes a document with the default settings of [NewCodec].
func Unmarshal(data []byte) (Node, error) {
	return defaultCodec.Unmarshal(data)
}

// Marshal encodes a node with the default settings of [NewCodec].
func Marshal(n Node) []byte {
	return defaultCodec.Marshal(n)
}

// UnmarshalAs decodes a document and asserts it decoded to T.
func UnmarshalAs[T Node](data []byte) (T, error) {
	var zero T

	n, err := Unmarshal(data)
	if err != nil {
		return zero, err
	}

	res, ok := n.(T)
	if !ok {
		return zero, &PathError{Err: fmt.Errorf("%w: decoded to %T, not %T", ErrUnknownRequiredType, n, zero)}
	}
	return res, nil
}

// Any holds a node so it can be used as a field in types handled by
// encoding/json. It uses the default settings of [NewCodec].
type Any struct {
	Node Node
}

// MarshalJSON encodes the node.
func (a Any) MarshalJSON() ([]byte, error) {
	return Marshal(a.Node), nil
}

// UnmarshalJSON decodes a document. JSON null results in a nil node.
func (a *Any) UnmarshalJSON(data []byte) error {
	if json.IsNull(bytes.TrimSpace(data)) {
		a.Node = nil
		return nil
	}

	n, err := Unmarshal(data)
	if err != nil {
		return err
	}
	a.Node = n
	return nil
}
