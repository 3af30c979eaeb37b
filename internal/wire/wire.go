// Package wire frames asset-index entries. Each entry embeds the
// canonical (case-folded) path it was stored under so that a read can
// verify the full path against the query: the 64-bit storage key is a
// hash, and hash collisions or foreign writes must surface as misses,
// never as wrong records.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("modpath/index: corrupt entry")
	ErrBadPath = errors.New("modpath/index: invalid path length in entry")

	magic4 = [...]byte{'M', 'P', 'I', 'X'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | plen(u16 be) | path(plen) | vlen(u32 be) | payload(vlen)
func Encode(path, payload []byte) ([]byte, error) {
	if l := len(path); l == 0 || l > 0xFFFF {
		return nil, ErrBadPath
	}

	var buf bytes.Buffer
	buf.Grow(4 + 1 + 2 + len(path) + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	var u2 [2]byte

	binary.BigEndian.PutUint16(u2[:], uint16(len(path)))
	buf.Write(u2[:])
	buf.Write(path)

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])
	buf.Write(payload)

	return buf.Bytes(), nil
}

// Decode splits an entry back into its path and payload. Framing is
// strict: short buffers, bad magic, and trailing bytes are all corrupt.
func Decode(b []byte) (path, payload []byte, err error) {
	const hdr = 4 + 1 + 2
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return nil, nil, ErrCorrupt
	}

	off := 5

	plen := int(binary.BigEndian.Uint16(b[off : off+2]))
	off += 2
	if plen == 0 || plen > len(b)-off {
		return nil, nil, ErrCorrupt
	}
	path = b[off : off+plen]
	off += plen

	if off+4 > len(b) {
		return nil, nil, ErrCorrupt
	}
	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen > len(b)-off {
		return nil, nil, ErrCorrupt
	}
	payload = b[off : off+vlen]
	off += vlen

	if off != len(b) {
		return nil, nil, ErrCorrupt
	}
	return path, payload, nil
}
