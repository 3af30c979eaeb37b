package codec

import "encoding"

// Text serializes any value whose pointer type implements the standard
// text marshaling interfaces. This is how modpath.GamePath itself rides
// structured interchange: its textual form round-trips through the
// platform-text constructor.
//
//	codec.Text[modpath.GamePath, *modpath.GamePath]{}
type Text[T any, PT interface {
	*T
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}] struct{}

func (Text[T, PT]) Encode(v T) ([]byte, error) {
	return PT(&v).MarshalText()
}

func (Text[T, PT]) Decode(b []byte) (T, error) {
	var v T
	err := PT(&v).UnmarshalText(b)
	return v, err
}
