// Package index implements a provider-agnostic asset index keyed by the
// 64-bit path hash. Records are framed with the canonical case-folded
// path they were stored under, so every read verifies the full path
// case-insensitively: hash collisions and foreign writes surface as
// misses, never as wrong records. Corrupt entries self-heal (best-effort
// delete) on read.
//
// Keys:
//
//	<ns>:%016x  - hex of modpath.GamePath.Hash64()
package index

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unkn0wn-root/modpath"
	c "github.com/unkn0wn-root/modpath/codec"
	"github.com/unkn0wn-root/modpath/internal/wire"
	pr "github.com/unkn0wn-root/modpath/provider"
)

// ErrEmptyPath is returned when an operation is attempted with the
// canonical empty path as its key.
var ErrEmptyPath = errors.New("modpath/index: empty path")

// CostFunc computes the provider cost of a stored entry.
type CostFunc func(storageKey string, raw []byte) int64

// Index is the high-level asset index API. V is the caller's record
// type; serialization is handled by a pluggable Codec[V].
type Index[V any] interface {
	Enabled() bool
	Close(context.Context) error

	// Put stores the record for path, overwriting any previous one.
	Put(ctx context.Context, path modpath.GamePath, value V) error

	// Lookup returns the record stored for path. A hash collision with a
	// different path, a corrupt entry, or a plain absence are all a miss.
	Lookup(ctx context.Context, path modpath.GamePath) (v V, ok bool, err error)

	// Remove deletes the record for path (best-effort).
	Remove(ctx context.Context, path modpath.GamePath) error
}

// Options tune an index. Namespace, Provider and Codec are required.
type Options[V any] struct {
	Namespace string // isolates keyspaces, e.g. "meshes", "textures"
	Provider  pr.Provider
	Codec     c.Codec[V]

	Logger      modpath.Logger // nil => NopLogger
	Hooks       Hooks          // nil => NopHooks
	TTL         time.Duration  // 0 => entries never expire
	ComputeCost CostFunc       // nil => len(raw)
	Disabled    bool           // default false (enabled)
}

func New[V any](opts Options[V]) (Index[V], error) {
	return newIndex[V](opts)
}

type index[V any] struct {
	ns       string
	provider pr.Provider
	codec    c.Codec[V]
	log      modpath.Logger
	hooks    Hooks

	enabled bool
	ttl     time.Duration
	cost    CostFunc
}

func newIndex[V any](opts Options[V]) (*index[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("modpath/index: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("modpath/index: codec is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("modpath/index: namespace is required")
	}

	ix := &index[V]{
		ns:       opts.Namespace,
		provider: opts.Provider,
		codec:    opts.Codec,
		ttl:      opts.TTL,
		enabled:  !opts.Disabled,
	}
	ix.log = opts.Logger
	if ix.log == nil {
		ix.log = modpath.NopLogger{}
	}
	ix.hooks = opts.Hooks
	if ix.hooks == nil {
		ix.hooks = NopHooks{}
	}
	if opts.ComputeCost != nil {
		ix.cost = opts.ComputeCost
	} else {
		ix.cost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return ix, nil
}

func (ix *index[V]) Enabled() bool { return ix.enabled }

func (ix *index[V]) Close(ctx context.Context) error {
	if ix.provider != nil {
		return ix.provider.Close(ctx)
	}
	return nil
}

func (ix *index[V]) Put(ctx context.Context, path modpath.GamePath, value V) error {
	if !ix.enabled {
		return nil
	}
	if path.IsEmpty() {
		return ErrEmptyPath
	}
	payload, err := ix.codec.Encode(value)
	if err != nil {
		return err
	}
	entry, err := wire.Encode(path.Lower().Bytes(), payload)
	if err != nil {
		return err
	}
	k := ix.storageKey(path)
	ok, err := ix.provider.Set(ctx, k, entry, ix.cost(k, entry), ix.ttl)
	if err != nil {
		return err
	}
	if !ok {
		ix.hooks.SetRejected(k)
		ix.log.Debug("Put rejected by provider (pressure)", modpath.Fields{"key": k})
	}
	return nil
}

func (ix *index[V]) Lookup(ctx context.Context, path modpath.GamePath) (V, bool, error) {
	var zero V
	if !ix.enabled || path.IsEmpty() {
		return zero, false, nil
	}
	k := ix.storageKey(path)
	raw, ok, err := ix.provider.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	stored, payload, err := wire.Decode(raw)
	if err != nil {
		ix.selfHeal(ctx, k, "corrupt")
		return zero, false, nil
	}
	// full-path check: the storage key is only a hash
	if !modpath.FromTrusted(stored, false, modpath.TrustedHints{Lower: true}).Equals(path.Str()) {
		ix.hooks.CollisionMiss(k)
		ix.log.Warn("path hash collision, treating as miss", modpath.Fields{
			"key": k, "stored": string(stored), "queried": path.String(),
		})
		return zero, false, nil
	}
	v, err := ix.codec.Decode(payload)
	if err != nil {
		ix.selfHeal(ctx, k, "value_decode")
		return zero, false, nil
	}
	return v, true, nil
}

func (ix *index[V]) Remove(ctx context.Context, path modpath.GamePath) error {
	if !ix.enabled {
		return nil
	}
	if path.IsEmpty() {
		return ErrEmptyPath
	}
	return ix.provider.Del(ctx, ix.storageKey(path))
}

func (ix *index[V]) storageKey(path modpath.GamePath) string {
	return fmt.Sprintf("%s:%016x", ix.ns, path.Hash64())
}

func (ix *index[V]) selfHeal(ctx context.Context, storageKey, reason string) {
	_ = ix.provider.Del(ctx, storageKey)
	ix.hooks.SelfHeal(storageKey, reason)
	ix.log.Debug("self-healed bad entry", modpath.Fields{"key": storageKey, "reason": reason})
}
