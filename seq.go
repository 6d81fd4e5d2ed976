package activitystreams

import (
	"github.com/aluitink/ActivityStreams/internal/json"
)

// Seq holds the values of a property that can have one or more values.
//
// On the wire such a property can be a bare value or an array. Decoding
// always results in a Seq, in wire order. A nil Seq means the property was
// absent. An empty, non-nil Seq means it was present as an empty array.
type Seq[T any] []T

// Of creates a Seq holding values. Calling it without values returns an
// empty, non-nil Seq.
func Of[T any](values ...T) Seq[T] {
	if values == nil {
		return Seq[T]{}
	}
	return Seq[T](values)
}

// IsAbsent returns if the property isn't set at all.
func (s Seq[T]) IsAbsent() bool {
	return s == nil
}

// First returns the first value, if there is one.
func (s Seq[T]) First() (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0], true
}

// Normalize turns a one-or-many wire value into a [Seq].
//
//   - An absent value or JSON null results in a nil Seq.
//   - An array has each element decoded with elem, keeping the order. An
//     empty array results in an empty, non-nil Seq.
//   - Anything else is decoded with elem and wrapped in a one-element Seq.
//
// The second argument to elem is the index of the element in the array, or
// -1 when the wire value wasn't an array.
func Normalize[T any](raw json.RawMessage, elem func(json.RawMessage, int) (T, error)) (Seq[T], error) {
	if len(raw) == 0 || json.IsNull(raw) {
		return nil, nil
	}

	if !json.IsArray(raw) {
		v, err := elem(raw, -1)
		if err != nil {
			return nil, err
		}
		return Seq[T]{v}, nil
	}

	var elems json.Array
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, err
	}

	res := make(Seq[T], 0, len(elems))
	for i, e := range elems {
		v, err := elem(e, i)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}

	return res, nil
}

// Denormalize is the inverse of [Normalize].
//
//   - A nil Seq returns false, the property should be omitted.
//   - An empty Seq results in an empty array.
//   - A Seq with one value results in that value, without an array.
//   - Anything else results in an array, in order.
func Denormalize[T any](s Seq[T], elem func(T) json.RawMessage) (json.RawMessage, bool) {
	if s == nil {
		return nil, false
	}

	if len(s) == 1 {
		return elem(s[0]), true
	}

	elems := make([]json.RawMessage, 0, len(s))
	for _, v := range s {
		elems = append(elems, elem(v))
	}

	return json.MakeArray(elems...), true
}
