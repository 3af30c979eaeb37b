package modpath

import (
	"bytes"

	"github.com/unkn0wn-root/modpath/internal/scan"
)

// Wildcard is the single wildcard byte understood by Equals: it matches
// any run of bytes, including none.
const Wildcard = '*'

// Equals reports case-insensitive equality. The memoized hash, when both
// sides happen to have one, is only a reject filter: a match still falls
// through to byte comparison. When either side contains the wildcard byte
// it is matched as a glob against the other side's full text.
func (s *Str) Equals(o *Str) bool {
	if s == o {
		return true
	}
	if hs, ok := s.ihash.peek(); ok {
		if ho, ok := o.ihash.peek(); ok && hs != ho {
			return false
		}
	}
	if s.lower.state() == factTrue && o.lower.state() == factTrue {
		return bytes.Equal(s.data, o.data)
	}
	if bytes.IndexByte(s.data, Wildcard) >= 0 {
		return matchWild(s.data, o.data)
	}
	if bytes.IndexByte(o.data, Wildcard) >= 0 {
		return matchWild(o.data, s.data)
	}
	return equalFold(s.data, o.data)
}

// Compare orders two strings case-insensitively. There are no wildcard
// semantics here: '*' compares as a literal byte, keeping the order total
// for sorting.
func (s *Str) Compare(o *Str) int {
	if s == o {
		return 0
	}
	if s.lower.state() == factTrue && o.lower.state() == factTrue {
		return bytes.Compare(s.data, o.data)
	}
	n := min(len(s.data), len(o.data))
	for i := 0; i < n; i++ {
		a, b := scan.Fold(s.data[i]), scan.Fold(o.data[i])
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(s.data) < len(o.data):
		return -1
	case len(s.data) > len(o.data):
		return 1
	}
	return 0
}

// HasPrefix reports whether s starts with p, ignoring case.
func (s *Str) HasPrefix(p *Str) bool {
	if len(p.data) > len(s.data) {
		return false
	}
	return equalFold(s.data[:len(p.data)], p.data)
}

// HasSuffix reports whether s ends with p, ignoring case.
func (s *Str) HasSuffix(p *Str) bool {
	if len(p.data) > len(s.data) {
		return false
	}
	return equalFold(s.data[len(s.data)-len(p.data):], p.data)
}

// IndexByte returns the offset of the first byte whose fold equals the
// fold of c, or -1.
func (s *Str) IndexByte(c byte) int {
	f := scan.Fold(c)
	for i, b := range s.data {
		if scan.Fold(b) == f {
			return i
		}
	}
	return -1
}

// LastIndexByte returns the offset of the last byte whose fold equals the
// fold of c, or -1.
func (s *Str) LastIndexByte(c byte) int {
	f := scan.Fold(c)
	for i := len(s.data) - 1; i >= 0; i-- {
		if scan.Fold(s.data[i]) == f {
			return i
		}
	}
	return -1
}

// Contains reports whether needle occurs in s, ignoring case. An empty
// needle is always contained.
func (s *Str) Contains(needle *Str) bool {
	ln := len(needle.data)
	switch {
	case ln == 0:
		return true
	case ln > len(s.data):
		return false
	case ln == 1:
		return s.IndexByte(needle.data[0]) >= 0
	}
	if s.lower.state() == factTrue && needle.lower.state() == factTrue {
		return bytes.Contains(s.data, needle.data)
	}
	// sliding compare anchored on the folded first needle byte
	f0 := scan.Fold(needle.data[0])
	for i := 0; i+ln <= len(s.data); i++ {
		if scan.Fold(s.data[i]) != f0 {
			continue
		}
		if equalFold(s.data[i:i+ln], needle.data) {
			return true
		}
	}
	return false
}

func equalFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i, c := range a {
		if scan.Fold(c) != scan.Fold(b[i]) {
			return false
		}
	}
	return true
}

// matchWild is a greedy-backtracking glob over case-folded bytes with a
// single wildcard class. On mismatch it rewinds to just past the last
// star and advances the text resume point by one byte.
func matchWild(pat, txt []byte) bool {
	pi, ti := 0, 0
	star, resume := -1, 0
	for ti < len(txt) {
		switch {
		case pi < len(pat) && pat[pi] == Wildcard:
			star = pi
			resume = ti
			pi++
		case pi < len(pat) && scan.Fold(pat[pi]) == scan.Fold(txt[ti]):
			pi++
			ti++
		case star >= 0:
			resume++
			ti = resume
			pi = star + 1
		default:
			return false
		}
	}
	for pi < len(pat) && pat[pi] == Wildcard {
		pi++
	}
	return pi == len(pat)
}
