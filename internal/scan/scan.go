// Package scan implements the single-pass metadata scanner for modpath
// strings. One forward traversal gathers any requested subset of facts;
// the same bytes are never walked twice to learn things that could have
// been learned together.
package scan

import "hash/crc32"

// Req selects which facts a scan should compute.
type Req uint8

const (
	// Hash requests the case-insensitive CRC32 (ASCII-folded bytes).
	Hash Req = 1 << iota
	// CaseHash requests the case-sensitive CRC32.
	CaseHash
	// ASCII requests the "every byte below 0x80" fact.
	ASCII
	// Lower requests the "every byte equals its ASCII lowercase fold" fact.
	Lower
)

// Result carries whatever a scan was asked to compute. Fields outside the
// requested set are zero values and must not be trusted.
type Result struct {
	N          int  // bytes covered, up to the bound or a NUL
	Terminated bool // a NUL byte sat immediately after the covered bytes
	Hash       uint32
	CaseHash   uint32
	ASCII      bool
	Lower      bool
}

// foldTable maps every byte to its ASCII lowercase fold. Bytes outside
// 'A'..'Z' map to themselves, including bytes above 0x7F.
var foldTable = func() (t [256]byte) {
	for i := range t {
		c := byte(i)
		if c >= 'A' && c <= 'Z' {
			c |= 0x20
		}
		t[i] = c
	}
	return
}()

// Fold returns the ASCII lowercase fold of c.
func Fold(c byte) byte { return foldTable[c] }

// CRC state helpers shared with the domain hash. Reflected IEEE polynomial,
// 256-entry table, one byte at a time.
const CRCInit = ^uint32(0)

func CRCUpdate(state uint32, c byte) uint32 {
	return crc32.IEEETable[byte(state)^c] ^ (state >> 8)
}

func CRCFinish(state uint32) uint32 { return ^state }

// Scan walks p from the front, stopping at the first NUL byte or the end
// of p, and computes the facts named by req over the covered bytes.
func Scan(p []byte, req Req) Result { return run(p, req, true) }

// All is Scan without the NUL early exit: the whole of p is the logical
// content. Used for buffers whose length is already authoritative.
func All(p []byte, req Req) Result {
	r := run(p, req, false)
	r.Terminated = false
	return r
}

// run dispatches to the narrowest specialized scanner that covers exactly
// the requested fact set.
func run(p []byte, req Req, nulStop bool) Result {
	switch {
	case req == 0:
		return scanLen(p, nulStop)
	case req == Hash:
		return scanHash(p, nulStop)
	case req == CaseHash:
		return scanCaseHash(p, nulStop)
	case req&(Hash|CaseHash) == 0:
		return scanFlags(p, nulStop)
	default:
		return scanFull(p, nulStop)
	}
}

func scanLen(p []byte, nulStop bool) Result {
	for i, c := range p {
		if nulStop && c == 0 {
			return Result{N: i, Terminated: true}
		}
	}
	return Result{N: len(p)}
}

func scanHash(p []byte, nulStop bool) Result {
	state := CRCInit
	for i, c := range p {
		if nulStop && c == 0 {
			return Result{N: i, Terminated: true, Hash: CRCFinish(state)}
		}
		state = CRCUpdate(state, foldTable[c])
	}
	return Result{N: len(p), Hash: CRCFinish(state)}
}

func scanCaseHash(p []byte, nulStop bool) Result {
	state := CRCInit
	for i, c := range p {
		if nulStop && c == 0 {
			return Result{N: i, Terminated: true, CaseHash: CRCFinish(state)}
		}
		state = CRCUpdate(state, c)
	}
	return Result{N: len(p), CaseHash: CRCFinish(state)}
}

func scanFlags(p []byte, nulStop bool) Result {
	ascii, lower := true, true
	for i, c := range p {
		if nulStop && c == 0 {
			return Result{N: i, Terminated: true, ASCII: ascii, Lower: lower}
		}
		if c >= 0x80 {
			ascii = false
		}
		if foldTable[c] != c {
			lower = false
		}
	}
	return Result{N: len(p), ASCII: ascii, Lower: lower}
}

func scanFull(p []byte, nulStop bool) Result {
	hs, cs := CRCInit, CRCInit
	ascii, lower := true, true
	for i, c := range p {
		if nulStop && c == 0 {
			return Result{
				N: i, Terminated: true,
				Hash: CRCFinish(hs), CaseHash: CRCFinish(cs),
				ASCII: ascii, Lower: lower,
			}
		}
		f := foldTable[c]
		hs = CRCUpdate(hs, f)
		cs = CRCUpdate(cs, c)
		if c >= 0x80 {
			ascii = false
		}
		if f != c {
			lower = false
		}
	}
	return Result{
		N:    len(p),
		Hash: CRCFinish(hs), CaseHash: CRCFinish(cs),
		ASCII: ascii, Lower: lower,
	}
}
