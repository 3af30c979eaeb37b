// Package provider defines the byte-store abstraction under the asset
// index.
//
// Implementations MUST be byte-for-byte transparent: Get must return
// exactly the []byte previously passed to Set for a key. No prepended
// metadata, no re-encoding, no mutation; any internal transform (e.g.
// compression) must be fully reversed. The index's strict entry framing
// treats foreign or transformed bytes as corruption and deletes them.
//
// The "<namespace>:" keyspace of an index instance is owned by that
// index; external code must not write under it.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs, safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// IO/remote failures come back as (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. Cost may be ignored by stores
	// that do not track it. Returns ok=false when the write was rejected
	// under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
