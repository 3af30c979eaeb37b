package modpath

import (
	"testing"

	"github.com/unkn0wn-root/modpath/internal/scan"
)

// ==============================
// Index hash convention
// ==============================

func TestPathHashEmpty(t *testing.T) {
	if PathHash(nil) != 0 || PathHash([]byte{}) != 0 {
		t.Fatalf("empty input must hash to 0")
	}
	if PathHashFold(nil) != 0 {
		t.Fatalf("empty input must fold-hash to 0")
	}
}

func TestPathHashSplitsAtLastSeparator(t *testing.T) {
	h := PathHash([]byte("foo/bar"))
	if uint32(h>>32) != Hash32([]byte("foo")) {
		t.Fatalf("high half must hash the folder part")
	}
	if uint32(h) != Hash32([]byte("bar")) {
		t.Fatalf("low half must hash the file part")
	}

	// the LAST separator wins
	h2 := PathHash([]byte("a/b/c"))
	if uint32(h2>>32) != Hash32([]byte("a/b")) || uint32(h2) != Hash32([]byte("c")) {
		t.Fatalf("multi-segment split is wrong")
	}
}

func TestPathHashNoSeparator(t *testing.T) {
	h := PathHash([]byte("bar"))
	if uint32(h>>32) != 0 {
		t.Fatalf("no separator: high half must be zero")
	}
	if uint32(h) != Hash32([]byte("bar")) {
		t.Fatalf("no separator: low half must hash the whole input")
	}
}

func TestPathHashBothSlashDirections(t *testing.T) {
	fwd := PathHash([]byte("foo/bar"))
	back := PathHash([]byte("foo\\bar"))
	if fwd != back {
		t.Fatalf("separator direction must not matter: %#x vs %#x", fwd, back)
	}
}

func TestPathHashTrailingSeparator(t *testing.T) {
	h := PathHash([]byte("foo/"))
	if uint32(h>>32) != Hash32([]byte("foo")) || uint32(h) != Hash32(nil) {
		t.Fatalf("trailing separator: empty file half")
	}
}

// ==============================
// Single-pass folding variant
// ==============================

func lowered(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = scan.Fold(c)
	}
	return out
}

func TestPathHashFoldMatchesSplitOfLowered(t *testing.T) {
	inputs := []string{
		"Meshes\\Armor\\Iron.NIF",
		"meshes/armor/iron.nif",
		"NOSEPARATOR.DDS",
		"a/b\\c/D",
		"trailing/",
		"/leading",
		"UPPER\\lower\\MiXeD",
	}
	for _, in := range inputs {
		got := PathHashFold([]byte(in))
		want := PathHash(lowered([]byte(in)))
		if got != want {
			t.Fatalf("%q: single-pass %#x, split-of-lowered %#x", in, got, want)
		}
	}
}

func TestHash64CaseInsensitive(t *testing.T) {
	a := FromString("Meshes\\Armor\\Iron.NIF", false, 0)
	b := FromString("meshes\\armor\\iron.nif", false, 0)
	if a.Hash64() != b.Hash64() {
		t.Fatalf("index hash must fold case")
	}
	if a.Hash64() != PathHashFold(a.Bytes()) {
		t.Fatalf("Hash64 must be the folding variant")
	}
}
