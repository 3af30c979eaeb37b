package modpath

import (
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/unkn0wn-root/modpath/internal/scan"
)

// MaxGamePathLength is the longest path, in bytes, the game's loader
// accepts. Compile-time constant; not runtime-configurable.
const MaxGamePathLength = 260

// GamePath wraps a Str that has been length-validated at construction.
// Separator direction is deliberately NOT validated: asset indexes mix
// both directions freely and equality folds over case, not slashes.
// The zero value is the empty path.
type GamePath struct {
	s *Str
}

// Str returns the wrapped byte string (the canonical empty string for the
// zero value).
func (p GamePath) Str() *Str {
	if p.s == nil {
		return emptyStr
	}
	return p.s
}

// PathFromStr validates an existing string as a game path.
func PathFromStr(s *Str) (GamePath, error) {
	if s == nil || s.IsEmpty() {
		return GamePath{}, nil
	}
	if s.Len() > MaxGamePathLength {
		return GamePath{}, &PathError{Op: "wrap", Path: s.String(), Err: ErrPathTooLong}
	}
	return GamePath{s: s}, nil
}

// PathFromString constructs an owned game path from platform text.
// Over-length input yields the canonical empty path and an error, never a
// panic.
func PathFromString(text string) (GamePath, error) {
	if len(text) > MaxGamePathLength {
		return GamePath{}, &PathError{Op: "parse", Path: text, Err: ErrPathTooLong}
	}
	if text == "" {
		return GamePath{}, nil
	}
	return GamePath{s: FromString(text, false, 0)}, nil
}

// PathFromBytes constructs a borrowed game path over a byte range.
func PathFromBytes(b []byte, req scan.Req) (GamePath, error) {
	return PathFromStr(FromBytes(b, req))
}

// PathFromPointer constructs a borrowed game path over external memory,
// scanning at most max bytes.
func PathFromPointer(ptr unsafe.Pointer, max int, req scan.Req) (GamePath, error) {
	return PathFromStr(FromPointer(ptr, max, req))
}

// PathFromFile derives a game path from a filesystem name relative to a
// base directory. Names outside the base directory's subtree are a
// signaled failure, not a fault.
func PathFromFile(base, name string) (GamePath, error) {
	rel, err := filepath.Rel(base, name)
	if err != nil {
		return GamePath{}, &PathError{Op: "relativize", Path: name, Err: err}
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return GamePath{}, &PathError{Op: "relativize", Path: name, Err: ErrOutsideBase}
	}
	return PathFromString(rel)
}

// Len returns the path length in bytes.
func (p GamePath) Len() int { return p.Str().Len() }

// IsEmpty reports whether the path is the canonical empty path.
func (p GamePath) IsEmpty() bool { return p.Str().IsEmpty() }

// Bytes returns the path content as a borrowed view.
func (p GamePath) Bytes() []byte { return p.Str().Bytes() }

// String renders the path as platform text.
func (p GamePath) String() string { return p.Str().String() }

// Name returns the filename part as a borrowed view: everything after the
// last separator in either direction, or the whole path when there is no
// separator.
func (p GamePath) Name() *Str {
	s := p.Str()
	i := lastSep(s.data)
	if i < 0 {
		return s
	}
	return s.Slice(i + 1)
}

// Ext returns the extension as a borrowed view, dot included, searching
// only within the filename part. No dot means the canonical empty string.
func (p GamePath) Ext() *Str {
	name := p.Name()
	for i := len(name.data) - 1; i >= 0; i-- {
		if name.data[i] == '.' {
			return name.Slice(i)
		}
	}
	return emptyStr
}

// Equals delegates to the wrapped string's case-insensitive equality.
func (p GamePath) Equals(o GamePath) bool { return p.Str().Equals(o.Str()) }

// Compare delegates to the wrapped string's case-insensitive ordering.
func (p GamePath) Compare(o GamePath) int { return p.Str().Compare(o.Str()) }

// Hash64 returns the 64-bit asset-index hash of the path.
func (p GamePath) Hash64() uint64 { return p.Str().Hash64() }

// Lower returns the path's canonical lowered form.
func (p GamePath) Lower() *Str { return p.Str().ToLower() }

// MarshalText implements encoding.TextMarshaler.
func (p GamePath) MarshalText() ([]byte, error) { return p.Str().MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler, validating length
// the same way the constructors do.
func (p *GamePath) UnmarshalText(text []byte) error {
	gp, err := PathFromString(string(text))
	if err != nil {
		p.s = nil
		return err
	}
	p.s = gp.s
	return nil
}
