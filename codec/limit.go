package codec

import "fmt"

// Limit wraps another codec with a maximum permitted payload size at
// Decode time; Encode passes through unchanged. MaxDecode <= 0 disables
// the guard. Protects against oversized entries coming out of a shared
// or otherwise untrusted store.
type Limit[V any] struct {
	Inner interface {
		Encode(V) ([]byte, error)
		Decode([]byte) (V, error)
	}
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
