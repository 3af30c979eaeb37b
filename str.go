package modpath

import (
	"unsafe"

	"github.com/unkn0wn-root/modpath/internal/mem"
	"github.com/unkn0wn-root/modpath/internal/scan"
)

// Str is a case-insensitive, slash-separated, ASCII-centric byte string.
// It either borrows externally owned memory or owns its buffer, and it
// memoizes derived facts (pure-ASCII, ASCII-lowercase, case-insensitive
// and case-sensitive CRC32) the first time they are asked for.
//
// A Str is logically immutable after construction: every operation that
// "changes" it returns a new instance. Dispose is the only true in-place
// mutation. Instances must not be copied by value.
type Str struct {
	data       []byte // logical content; len(data) is the logical length
	owned      bool   // buffer was allocated by this package, freed on Dispose
	terminated bool   // a NUL byte immediately follows the logical content

	ascii fact
	lower fact
	ihash hcache // case-insensitive CRC32
	shash hcache // case-sensitive CRC32
}

// emptyStr is the canonical empty string: zero length, terminated, every
// fact known. It is returned for empty inputs and on validation failure.
var emptyStr = func() *Str {
	s := &Str{terminated: true}
	s.ascii.set(true)
	s.lower.set(true)
	s.ihash.set(0)
	s.shash.set(0)
	return s
}()

// Empty returns the canonical empty string.
func Empty() *Str { return emptyStr }

// TrustedHints declares facts the caller already knows about a trusted
// buffer. A true field means known-true; false means unknown, not
// known-false. Wrong hints are undefined behavior, never validated.
type TrustedHints struct {
	ASCII bool
	Lower bool
}

// FromPointer constructs a borrowed string over externally owned memory.
// Scanning stops at the first NUL byte or after max bytes, whichever
// comes first; the facts named by req are computed in that same pass.
// A nil pointer yields the canonical empty string.
func FromPointer(ptr unsafe.Pointer, max int, req scan.Req) *Str {
	if ptr == nil || max <= 0 {
		return emptyStr
	}
	p := unsafe.Slice((*byte)(ptr), max)
	return fromScan(p, scan.Scan(p, req), req)
}

// FromBytes constructs a borrowed string over b, bounded by len(b) and
// stopping early at a NUL byte.
func FromBytes(b []byte, req scan.Req) *Str {
	if len(b) == 0 {
		return emptyStr
	}
	return fromScan(b, scan.Scan(b, req), req)
}

// FromString copies text into an owned, NUL-terminated buffer. When lower
// is set the copy is ASCII-folded in place before any fact is cached, so
// the result is known-lowercase for free. The logical length is always
// the full byte length of text, NUL bytes included.
func FromString(text string, lower bool, req scan.Req) *Str {
	n := len(text)
	if n == 0 {
		return emptyStr
	}
	buf := mem.Alloc(n + 1)
	copy(buf, text)
	if lower {
		for i, c := range buf[:n] {
			buf[i] = scan.Fold(c)
		}
	}
	buf[n] = 0

	s := &Str{data: buf[:n], owned: true, terminated: true}
	s.applyScan(scan.All(s.data, req), req)
	if lower {
		s.lower.set(true)
	}
	return s
}

// FromTrusted wraps b without scanning anything. The caller vouches for
// terminated and for the hints; this is the zero-cost path for strings
// coming out of a source that already knows their shape.
func FromTrusted(b []byte, terminated bool, hints TrustedHints) *Str {
	if len(b) == 0 {
		return emptyStr
	}
	s := &Str{data: b, terminated: terminated}
	if hints.ASCII {
		s.ascii.set(true)
	}
	if hints.Lower {
		s.lower.set(true)
	}
	return s
}

func fromScan(p []byte, r scan.Result, req scan.Req) *Str {
	if r.N == 0 {
		return emptyStr
	}
	s := &Str{data: p[:r.N:r.N], terminated: r.Terminated}
	s.applyScan(r, req)
	return s
}

// applyScan caches exactly the facts that were requested; the scanner may
// have produced more, but unrequested fields are not trustworthy.
func (s *Str) applyScan(r scan.Result, req scan.Req) {
	if req&scan.Hash != 0 {
		s.ihash.set(r.Hash)
	}
	if req&scan.CaseHash != 0 {
		s.shash.set(r.CaseHash)
	}
	if req&scan.ASCII != 0 {
		s.ascii.set(r.ASCII)
	}
	if req&scan.Lower != 0 {
		s.lower.set(r.Lower)
	}
}

// Len returns the logical length in bytes.
func (s *Str) Len() int { return len(s.data) }

// IsEmpty reports whether the string has zero length.
func (s *Str) IsEmpty() bool { return len(s.data) == 0 }

// Terminated reports whether a NUL byte immediately follows the content.
func (s *Str) Terminated() bool { return s.terminated }

// Bytes returns the logical content as a borrowed view. Callers must not
// mutate it.
func (s *Str) Bytes() []byte { return s.data }

// At returns the byte at index i. Out-of-range access is a programming
// fault and panics.
func (s *Str) At(i int) byte { return s.data[i] }

// IsASCII reports whether every byte is below 0x80. Computed at most once.
func (s *Str) IsASCII() bool {
	if st := s.ascii.state(); st != factUnknown {
		return st == factTrue
	}
	r := scan.All(s.data, scan.ASCII)
	s.ascii.set(r.ASCII)
	return r.ASCII
}

// IsLowerASCII reports whether every byte equals its ASCII lowercase
// fold. Computed at most once.
func (s *Str) IsLowerASCII() bool {
	if st := s.lower.state(); st != factUnknown {
		return st == factTrue
	}
	r := scan.All(s.data, scan.Lower)
	s.lower.set(r.Lower)
	return r.Lower
}

// HashCI returns the case-insensitive CRC32, memoized permanently.
func (s *Str) HashCI() uint32 {
	if sum, ok := s.ihash.peek(); ok {
		return sum
	}
	r := scan.All(s.data, scan.Hash)
	s.ihash.set(r.Hash)
	return r.Hash
}

// HashCS returns the case-sensitive CRC32, memoized permanently.
func (s *Str) HashCS() uint32 {
	if sum, ok := s.shash.peek(); ok {
		return sum
	}
	r := scan.All(s.data, scan.CaseHash)
	s.shash.set(r.CaseHash)
	return r.CaseHash
}

// String renders the content as a platform string. Known-ASCII content is
// reinterpreted without copying (the buffer is immutable and never
// recycled); anything else takes the general copying decode.
func (s *Str) String() string {
	if s.ascii.state() == factTrue {
		return mem.B2S(s.data)
	}
	return string(s.data)
}

// MarshalText implements encoding.TextMarshaler.
func (s *Str) MarshalText() ([]byte, error) {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It round-trips
// through the platform-text constructor. This is a documented mutating
// operation: any previously cached facts are discarded.
func (s *Str) UnmarshalText(text []byte) error {
	s.Dispose()
	if len(text) == 0 {
		return nil
	}
	t := FromString(string(text), false, 0)
	s.data = t.data
	s.owned = t.owned
	s.terminated = t.terminated
	s.ascii.clear()
	s.lower.clear()
	s.ihash.clear()
	s.shash.clear()
	return nil
}

// Dispose releases an owned buffer and resets the instance to the
// canonical empty state. It is idempotent: the first call frees, later
// calls are no-ops. Borrowed strings only drop their reference.
func (s *Str) Dispose() {
	if s.owned {
		s.owned = false
		mem.Free(s.data[:cap(s.data)])
	}
	if s == emptyStr {
		return
	}
	s.reset()
}

// reset puts the instance into the canonical empty state.
func (s *Str) reset() {
	s.data = nil
	s.owned = false
	s.terminated = true
	s.ascii.set(true)
	s.lower.set(true)
	s.ihash.set(0)
	s.shash.set(0)
}
