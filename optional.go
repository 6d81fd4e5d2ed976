package activitystreams

import (
	"github.com/aluitink/ActivityStreams/internal/json"
)

// Scalar is the interface of Go types that match JSON scalars.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool |
		~string
}

// Optional holds a scalar property that may be absent. The zero value is
// absent.
//
// It's used for numeric properties where zero is a meaningful value, like
// the altitude of a [Place].
type Optional[T Scalar] struct {
	Set   bool
	Value T
}

// Some returns a present Optional holding v.
func Some[T Scalar](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Get returns the value and whether it's present.
func (n Optional[T]) Get() (T, bool) {
	return n.Value, n.Set
}

// UnmarshalJSON decodes a JSON scalar. JSON null leaves the value absent.
func (n *Optional[T]) UnmarshalJSON(data []byte) error {
	if json.IsNull(data) {
		*n = Optional[T]{}
		return nil
	}

	var s T
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Set = true
	n.Value = s
	return nil
}

// MarshalJSON encodes the value, or JSON null when it's absent.
func (n Optional[T]) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte(`null`), nil
	}
	return json.Marshal(n.Value)
}
