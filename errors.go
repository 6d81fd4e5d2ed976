package activitystreams

import (
	"errors"
	"strconv"
	"strings"
)

// Decoding errors. Every error returned by the decoder wraps one of these
// and can be checked with [errors.Is].
var (
	// ErrMalformedShape is returned when a value can't satisfy any of the
	// shapes its property allows, like a number where an Object or Link was
	// expected.
	ErrMalformedShape = errors.New("malformed shape")

	// ErrUnknownRequiredType is returned when a property only accepts a closed
	// set of types and the value's type is outside of it.
	ErrUnknownRequiredType = errors.New("unknown required type")

	// ErrUnparsableScalar is returned when a scalar value can't be parsed into
	// its datatype, like an invalid duration.
	ErrUnparsableScalar = errors.New("unparsable scalar")

	// ErrMaxDepth is returned when a document nests deeper than the codec's
	// depth limit.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")
)

// PathError records where in a document decoding failed.
type PathError struct {
	// Path is the location of the offending value, like attributedTo[1].name.
	// It's empty for the document root.
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *PathError) Unwrap() error { return e.Err }

// path tracks the location of the value being decoded. It's only rendered
// when an error occurs.
type path []string

func (p path) key(k string) path {
	return append(p[:len(p):len(p)], "."+k)
}

func (p path) index(i int) path {
	return append(p[:len(p):len(p)], "["+strconv.Itoa(i)+"]")
}

// elem returns the path of element i of a one-or-many value. A negative i
// means the value wasn't an array.
func (p path) elem(i int) path {
	if i < 0 {
		return p
	}
	return p.index(i)
}

func (p path) String() string {
	return strings.TrimPrefix(strings.Join(p, ""), ".")
}

func (p path) wrap(err error) error {
	var pe *PathError
	if errors.As(err, &pe) {
		return err
	}
	return &PathError{Path: p.String(), Err: err}
}
