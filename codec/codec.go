// Package codec holds the pluggable (de)serialization adapters for index
// records. The core string type never serializes itself; these adapters
// are the structured-data boundary around it.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
