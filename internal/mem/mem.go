// Package mem holds the raw memory primitives behind modpath strings:
// instrumented allocation bookkeeping and zero-copy string/[]byte
// conversions. Copy, compare and fill are the Go builtins; only the
// alloc/free side needs a home because owned buffers must be accounted
// exactly once.
package mem

import (
	"sync/atomic"
	"unsafe"
)

// Stats is an advisory snapshot of owned-buffer accounting. Counters are
// updated with atomic increments and never gate correctness.
type Stats struct {
	Allocs     uint64 // owned buffers handed out
	Frees      uint64 // owned buffers released
	LiveBytes  int64  // bytes currently owned (Allocs minus Frees, in bytes)
	TotalBytes uint64 // bytes handed out since process start
}

var (
	allocs     atomic.Uint64
	frees      atomic.Uint64
	liveBytes  atomic.Int64
	totalBytes atomic.Uint64
)

// Alloc returns a zeroed buffer of n bytes and records it as live.
func Alloc(n int) []byte {
	allocs.Add(1)
	liveBytes.Add(int64(n))
	totalBytes.Add(uint64(n))
	return make([]byte, n)
}

// Free records the release of a buffer previously returned by Alloc.
// The bytes themselves are reclaimed by the GC; Free only keeps the
// telemetry honest. Callers must not Free the same buffer twice.
func Free(buf []byte) {
	if buf == nil {
		return
	}
	frees.Add(1)
	liveBytes.Add(-int64(cap(buf)))
}

// Snapshot returns the current counters.
func Snapshot() Stats {
	return Stats{
		Allocs:     allocs.Load(),
		Frees:      frees.Load(),
		LiveBytes:  liveBytes.Load(),
		TotalBytes: totalBytes.Load(),
	}
}

// B2S reinterprets b as a string without copying. The caller must
// guarantee b is never mutated afterwards.
func B2S(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// S2B reinterprets s as a byte slice without copying. The result must be
// treated as read-only.
func S2B(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
