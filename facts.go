package modpath

import "sync/atomic"

// A fact is a lazily computed property with three states: not yet
// evaluated, known false, known true. Two states are not enough: "we
// checked and it is false" must stay distinguishable from "nobody asked
// yet". Writes are atomic and idempotent. Recomputation is deterministic,
// so a racing second computation stores the same value it read.
const (
	factUnknown uint32 = iota
	factFalse
	factTrue
)

type fact struct{ v atomic.Uint32 }

func (f *fact) state() uint32 { return f.v.Load() }

func (f *fact) set(b bool) {
	if b {
		f.v.Store(factTrue)
	} else {
		f.v.Store(factFalse)
	}
}

func (f *fact) clear() { f.v.Store(factUnknown) }

// copyFrom transfers whatever o knows, including known-false.
func (f *fact) copyFrom(o *fact) {
	if st := o.v.Load(); st != factUnknown {
		f.v.Store(st)
	}
}

// copyTrue transfers only a known-true state. Derived views use this when
// the source being true implies the view is true, but the source being
// false implies nothing.
func (f *fact) copyTrue(o *fact) {
	if o.v.Load() == factTrue {
		f.v.Store(factTrue)
	}
}

// combineFact is the concatenation rule. It is deliberately asymmetric:
// known-false dominates unconditionally (one uppercase piece taints the
// whole join even when other pieces are unscanned), while known-true
// requires unanimity. Do not replace with a symmetric tri-state AND.
func combineFact(a, b uint32) uint32 {
	if a == b && a != factUnknown {
		return a
	}
	if a == factFalse || b == factFalse {
		return factFalse
	}
	return factUnknown
}

// hcache memoizes a 32-bit hash. Zero means "not computed"; a computed
// sum is stored with a known bit in the high half so a legitimate sum of
// zero stays distinguishable.
type hcache struct{ v atomic.Uint64 }

func (h *hcache) peek() (uint32, bool) {
	x := h.v.Load()
	if x == 0 {
		return 0, false
	}
	return uint32(x), true
}

func (h *hcache) set(sum uint32) { h.v.Store(1<<32 | uint64(sum)) }

func (h *hcache) clear() { h.v.Store(0) }

func (h *hcache) copyFrom(o *hcache) {
	if x := o.v.Load(); x != 0 {
		h.v.Store(x)
	}
}
