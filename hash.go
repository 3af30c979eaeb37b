package modpath

import (
	"hash/crc32"

	"github.com/unkn0wn-root/modpath/internal/scan"
)

// The asset-index hash convention: a path is split at its LAST separator,
// the folder half is hashed into the high 32 bits and the file half into
// the low 32 bits. A path without a separator hashes entirely into the
// low half. Both slash directions count as separators; direction is never
// validated anywhere in this package.

// Hash32 is the 32-bit half hash (reflected IEEE CRC32).
func Hash32(b []byte) uint32 { return crc32.ChecksumIEEE(b) }

// PathHash computes the 64-bit index hash of b as-is, materializing the
// split. Empty input hashes to 0.
func PathHash(b []byte) uint64 {
	if len(b) == 0 {
		return 0
	}
	i := lastSep(b)
	if i < 0 {
		return uint64(Hash32(b))
	}
	return uint64(Hash32(b[:i]))<<32 | uint64(Hash32(b[i+1:]))
}

// PathHashFold is the case-folding variant, computed in one pass without
// materializing the split halves. The running state just before each
// separator is snapshotted as the folder half and the file accumulator is
// re-seeded, so whichever separator turns out to be last wins.
func PathHashFold(b []byte) uint64 {
	if len(b) == 0 {
		return 0
	}
	run := scan.CRCInit
	file := scan.CRCInit
	folder := uint32(0)
	sawSep := false
	for _, c := range b {
		if isSep(c) {
			folder = run
			sawSep = true
			run = scan.CRCUpdate(run, c)
			file = scan.CRCInit
			continue
		}
		f := scan.Fold(c)
		run = scan.CRCUpdate(run, f)
		file = scan.CRCUpdate(file, f)
	}
	if !sawSep {
		return uint64(scan.CRCFinish(file))
	}
	return uint64(scan.CRCFinish(folder))<<32 | uint64(scan.CRCFinish(file))
}

// Hash64 returns the case-folded 64-bit index hash of the string. This is
// the bit-compatible interop value for external asset indexes.
func (s *Str) Hash64() uint64 { return PathHashFold(s.data) }

func isSep(c byte) bool { return c == '\\' || c == '/' }

func lastSep(b []byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if isSep(b[i]) {
			return i
		}
	}
	return -1
}
