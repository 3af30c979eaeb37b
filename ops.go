package modpath

import (
	"github.com/unkn0wn-root/modpath/internal/mem"
	"github.com/unkn0wn-root/modpath/internal/scan"
)

// Clone returns an independently owned copy. Everything the source knows
// about itself is carried over, hashes included.
func (s *Str) Clone() *Str {
	n := len(s.data)
	if n == 0 {
		return emptyStr
	}
	buf := mem.Alloc(n + 1)
	copy(buf, s.data)
	buf[n] = 0

	c := &Str{data: buf[:n], owned: true, terminated: true}
	c.ascii.copyFrom(&s.ascii)
	c.lower.copyFrom(&s.lower)
	c.ihash.copyFrom(&s.ihash)
	c.shash.copyFrom(&s.shash)
	return c
}

// Slice returns a borrowed view from byte offset from to the end. A zero
// offset returns the receiver itself. The view shares the source buffer;
// hashes are never carried over, and the ASCII/lowercase facts survive
// only when the source already knows them true (a subset of an
// all-lowercase string is all-lowercase; a subset of a mixed string could
// be anything).
func (s *Str) Slice(from int) *Str {
	sub := s.data[from:]
	if from == 0 {
		return s
	}
	if len(sub) == 0 {
		return emptyStr
	}
	v := &Str{data: sub[:len(sub):len(sub)], terminated: s.terminated}
	v.ascii.copyTrue(&s.ascii)
	v.lower.copyTrue(&s.lower)
	return v
}

// SliceN returns a borrowed view of n bytes starting at from. When the
// requested range runs to the end of the string it falls back to Slice so
// the termination fact survives.
func (s *Str) SliceN(from, n int) *Str {
	sub := s.data[from : from+n]
	if from+n == len(s.data) {
		return s.Slice(from)
	}
	if n == 0 {
		return emptyStr
	}
	v := &Str{data: sub[:n:n]}
	v.ascii.copyTrue(&s.ascii)
	v.lower.copyTrue(&s.lower)
	return v
}

// TrimFront returns a borrowed view with leading runs of c removed, or
// the receiver when nothing was trimmed. Trimming keeps the remaining
// bytes a contiguous view into the source, so the ASCII/lowercase facts
// of the source carry over as-is.
func (s *Str) TrimFront(c byte) *Str {
	i := 0
	for i < len(s.data) && s.data[i] == c {
		i++
	}
	if i == 0 {
		return s
	}
	if i == len(s.data) {
		return emptyStr
	}
	v := &Str{data: s.data[i:len(s.data):len(s.data)], terminated: s.terminated}
	v.ascii.copyFrom(&s.ascii)
	v.lower.copyFrom(&s.lower)
	return v
}

// TrimEnd returns a borrowed view with trailing runs of c removed, or the
// receiver when nothing was trimmed.
func (s *Str) TrimEnd(c byte) *Str {
	n := len(s.data)
	for n > 0 && s.data[n-1] == c {
		n--
	}
	if n == len(s.data) {
		return s
	}
	if n == 0 {
		return emptyStr
	}
	v := &Str{data: s.data[:n:n]}
	v.ascii.copyFrom(&s.ascii)
	v.lower.copyFrom(&s.lower)
	return v
}

// ToLower returns the receiver itself when it is already known to be
// ASCII-lowercase, otherwise an owned folded copy. The second call on a
// chain therefore returns the same instance.
func (s *Str) ToLower() *Str {
	if s.lower.state() == factTrue {
		return s
	}
	return s.LowerClone()
}

// LowerClone always returns an owned ASCII-folded copy, even when the
// source is already lowercase.
func (s *Str) LowerClone() *Str {
	n := len(s.data)
	if n == 0 {
		return emptyStr
	}
	buf := mem.Alloc(n + 1)
	for i, c := range s.data {
		buf[i] = scan.Fold(c)
	}
	buf[n] = 0

	v := &Str{data: buf[:n], owned: true, terminated: true}
	v.lower.set(true)
	// folding touches only 'A'..'Z', so whatever is known about ASCII
	// purity stays valid either way
	v.ascii.copyFrom(&s.ascii)
	return v
}

// Replace returns an owned copy with every occurrence of old replaced by
// c. Cached facts survive conservatively: only known-true carries over,
// and only when the replacement byte cannot break it. A known-false fact
// is dropped to unknown because the replaced byte may have been the one
// offender.
func (s *Str) Replace(old, c byte) *Str {
	n := len(s.data)
	if n == 0 {
		return emptyStr
	}
	buf := mem.Alloc(n + 1)
	for i, b := range s.data {
		if b == old {
			b = c
		}
		buf[i] = b
	}
	buf[n] = 0

	v := &Str{data: buf[:n], owned: true, terminated: true}
	if s.ascii.state() == factTrue && c < 0x80 {
		v.ascii.set(true)
	}
	if s.lower.state() == factTrue && scan.Fold(c) == c {
		v.lower.set(true)
	}
	return v
}

// Join concatenates parts with sep between each pair into an owned
// string. The ASCII and lowercase facts of the result follow the
// asymmetric combine rule across every piece, separator included.
func Join(sep *Str, parts ...*Str) *Str {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	if len(parts) > 1 {
		total += sep.Len() * (len(parts) - 1)
	}
	if total == 0 {
		return emptyStr
	}

	buf := mem.Alloc(total + 1)
	off := 0
	ascii, lower := factUnknown, factUnknown
	for i, p := range parts {
		if i > 0 {
			off += copy(buf[off:], sep.data)
			ascii = combineFact(ascii, sep.ascii.state())
			lower = combineFact(lower, sep.lower.state())
		}
		off += copy(buf[off:], p.data)
		if i == 0 {
			ascii = p.ascii.state()
			lower = p.lower.state()
		} else {
			ascii = combineFact(ascii, p.ascii.state())
			lower = combineFact(lower, p.lower.state())
		}
	}
	buf[total] = 0

	v := &Str{data: buf[:total], owned: true, terminated: true}
	if ascii != factUnknown {
		v.ascii.set(ascii == factTrue)
	}
	if lower != factUnknown {
		v.lower.set(lower == factTrue)
	}
	return v
}

// Split cuts the string at every occurrence of c into borrowed views.
// Empty segments come back as the canonical empty string. The separator
// match is exact, not case-folded.
func (s *Str) Split(c byte) []*Str {
	if len(s.data) == 0 {
		return []*Str{emptyStr}
	}
	var out []*Str
	start := 0
	for i, b := range s.data {
		if b == c {
			out = append(out, s.SliceN(start, i-start))
			start = i + 1
		}
	}
	out = append(out, s.Slice(start))
	return out
}
