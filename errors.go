package modpath

import (
	"errors"
	"fmt"
)

var (
	// ErrPathTooLong signals input longer than MaxGamePathLength.
	ErrPathTooLong = errors.New("modpath: path exceeds maximum game path length")

	// ErrOutsideBase signals a filesystem name that escapes the base
	// directory's subtree.
	ErrOutsideBase = errors.New("modpath: path escapes base directory")
)

// PathError reports a failed game-path construction. Failures of this
// kind return the canonical empty path alongside the error; they are
// never faults.
type PathError struct {
	Op   string // "parse", "wrap", "relativize"
	Path string // offending input, as given
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("modpath: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }
