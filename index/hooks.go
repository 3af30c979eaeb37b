package index

// Hooks are lightweight callbacks for high-signal index events.
// Implementations MUST be cheap and non-blocking; the index calls them on
// hot paths.
type Hooks interface {
	// An entry was deleted by the index on read.
	// reason ∈ {"corrupt", "value_decode"}
	SelfHeal(storageKey, reason string)

	// A read found an entry whose embedded path does not match the query:
	// a 64-bit hash collision or a foreign write. Treated as a miss.
	CollisionMiss(storageKey string)

	// The provider returned ok=false on Set (backpressure/eviction).
	SetRejected(storageKey string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string) {}
func (NopHooks) CollisionMiss(string)    {}
func (NopHooks) SetRejected(string)      {}
