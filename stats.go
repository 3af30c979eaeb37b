package modpath

import "github.com/unkn0wn-root/modpath/internal/mem"

// MemStats is an advisory snapshot of owned-buffer telemetry. It is a
// side channel for leak hunting and sizing, updated with atomic
// increments; nothing in the package gates correctness on it.
type MemStats struct {
	Allocs     uint64
	Frees      uint64
	LiveBytes  int64
	TotalBytes uint64
}

// ReadMemStats returns the current allocation counters.
func ReadMemStats() MemStats {
	st := mem.Snapshot()
	return MemStats{
		Allocs:     st.Allocs,
		Frees:      st.Frees,
		LiveBytes:  st.LiveBytes,
		TotalBytes: st.TotalBytes,
	}
}
