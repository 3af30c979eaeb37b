package modpath

import (
	"testing"
	"unsafe"

	"github.com/unkn0wn-root/modpath/internal/scan"
)

// ==============================
// Clone
// ==============================

func TestCloneCopiesBytesAndFacts(t *testing.T) {
	src := FromString("Meshes/Armor.nif", false, scan.Hash|scan.ASCII|scan.Lower)
	c := src.Clone()

	if !c.owned {
		t.Fatalf("clone must be owned")
	}
	if unsafe.SliceData(c.Bytes()) == unsafe.SliceData(src.Bytes()) {
		t.Fatalf("clone must not alias the source buffer")
	}
	if !c.Equals(src) {
		t.Fatalf("clone content differs")
	}
	if c.ascii.state() != src.ascii.state() || c.lower.state() != src.lower.state() {
		t.Fatalf("clone must carry known facts")
	}
	if ch, ok := c.ihash.peek(); !ok || ch != src.HashCI() {
		t.Fatalf("clone must carry the cached hash")
	}
}

// ==============================
// Substring / trim views
// ==============================

func TestSliceNoOpReturnsReceiver(t *testing.T) {
	s := FromString("abc", false, 0)
	if s.Slice(0) != s {
		t.Fatalf("Slice(0) must return the receiver")
	}
}

func TestSliceFactPropagation(t *testing.T) {
	lowerKnown := FromString("meshes/iron.nif", false, scan.Lower|scan.ASCII)
	v := lowerKnown.Slice(7)
	if v.lower.state() != factTrue || v.ascii.state() != factTrue {
		t.Fatalf("known-true facts must survive slicing")
	}
	if _, ok := v.ihash.peek(); ok {
		t.Fatalf("hashes must never survive slicing")
	}

	mixed := FromString("Meshes/iron.nif", false, scan.Lower)
	if mixed.lower.state() != factFalse {
		t.Fatalf("precondition: mixed-case source is known-false")
	}
	w := mixed.Slice(7) // "iron.nif" actually is lowercase
	if w.lower.state() != factUnknown {
		t.Fatalf("known-false must degrade to unknown on slicing, got %d", w.lower.state())
	}
}

func TestSliceNFallsBackAtEnd(t *testing.T) {
	s := FromString("abcdef", false, 0)
	v := s.SliceN(2, 4) // runs to the end
	if !v.Terminated() {
		t.Fatalf("tail SliceN must keep the termination fact")
	}
	m := s.SliceN(1, 3)
	if m.Terminated() {
		t.Fatalf("mid SliceN cannot be terminated")
	}
	if m.String() != "bcd" {
		t.Fatalf("mid SliceN = %q", m.String())
	}
}

func TestTrimViews(t *testing.T) {
	s := FromString("///meshes///", false, scan.Lower|scan.ASCII)
	f := s.TrimFront('/')
	if f.String() != "meshes///" {
		t.Fatalf("TrimFront = %q", f.String())
	}
	e := f.TrimEnd('/')
	if e.String() != "meshes" {
		t.Fatalf("TrimEnd = %q", e.String())
	}
	// trims keep the source facts, both polarities
	if e.lower.state() != factTrue || e.ascii.state() != factTrue {
		t.Fatalf("trim must preserve source facts")
	}
	if s.TrimFront('x') != s {
		t.Fatalf("no-op trim must return the receiver")
	}
	// views stay inside the source buffer
	if unsafe.SliceData(f.Bytes()) != unsafe.SliceData(s.Bytes()[3:]) {
		t.Fatalf("TrimFront must be a borrowed view")
	}
}

// ==============================
// Lowering
// ==============================

func TestToLowerIdempotentAndSameInstance(t *testing.T) {
	x := FromString("MeShEs/ArMoR", false, 0)
	l1 := x.ToLower()
	if l1 == x {
		t.Fatalf("lowering a not-known-lower string must produce a new instance")
	}
	if l1.String() != "meshes/armor" {
		t.Fatalf("lowered = %q", l1.String())
	}
	l2 := l1.ToLower()
	if l2 != l1 {
		t.Fatalf("second ToLower must return the same instance")
	}
	if !l2.Equals(l1) {
		t.Fatalf("idempotence by content")
	}
}

func TestLowerCloneAlwaysCopies(t *testing.T) {
	x := FromString("already lower", true, 0)
	c := x.LowerClone()
	if c == x {
		t.Fatalf("LowerClone must always produce a fresh owned copy")
	}
	if !c.owned || c.lower.state() != factTrue {
		t.Fatalf("LowerClone result must be owned and known-lowercase")
	}
}

// ==============================
// Replace
// ==============================

func TestReplaceSeparators(t *testing.T) {
	s := FromString("meshes\\armor\\iron.nif", false, scan.Lower|scan.ASCII)
	r := s.Replace('\\', '/')
	if r.String() != "meshes/armor/iron.nif" {
		t.Fatalf("Replace = %q", r.String())
	}
	if !r.owned {
		t.Fatalf("Replace must always own its result")
	}
	// '/' is fold-stable and ASCII, so known-true survives
	if r.lower.state() != factTrue || r.ascii.state() != factTrue {
		t.Fatalf("fold-stable replacement must keep known-true facts")
	}

	u := s.Replace('/', 'A')
	if u.lower.state() != factUnknown {
		t.Fatalf("uppercase replacement byte must drop the lowercase fact")
	}
	n := s.Replace('/', 0xFF)
	if n.ascii.state() != factUnknown {
		t.Fatalf("non-ASCII replacement byte must drop the ASCII fact")
	}
}

// ==============================
// Join
// ==============================

func TestJoinContent(t *testing.T) {
	sep := FromString("/", true, 0)
	j := Join(sep,
		FromString("meshes", false, 0),
		FromString("armor", false, 0),
		FromString("iron.nif", false, 0))
	if j.String() != "meshes/armor/iron.nif" {
		t.Fatalf("Join = %q", j.String())
	}
	if !j.owned || !j.terminated {
		t.Fatalf("Join result must be owned and terminated")
	}
}

func TestJoinLowercaseCombine(t *testing.T) {
	sep := FromString("/", true, 0) // known lower
	knownLower := func() *Str { return FromString("abc", true, 0) }
	unknown := func() *Str { return FromString("abc", false, 0) }
	knownNot := func() *Str { return FromString("Abc", false, scan.Lower) }

	cases := []struct {
		name string
		b    *Str
		want uint32
	}{
		{"lower+lower", knownLower(), factTrue},
		{"lower+unknown", unknown(), factUnknown},
		{"lower+notlower", knownNot(), factFalse},
	}
	for _, tc := range cases {
		j := Join(sep, knownLower(), tc.b)
		if got := j.lower.state(); got != tc.want {
			t.Fatalf("%s: combine state = %d, want %d", tc.name, got, tc.want)
		}
	}

	// false dominates even against unknown — the rule is asymmetric
	j := Join(sep, knownNot(), unknown())
	if j.lower.state() != factFalse {
		t.Fatalf("known-false must dominate unknown")
	}
}

// ==============================
// Split
// ==============================

func TestSplit(t *testing.T) {
	s := FromString("a/b//c", false, 0)
	parts := s.Split('/')
	want := []string{"a", "b", "", "c"}
	if len(parts) != len(want) {
		t.Fatalf("got %d parts", len(parts))
	}
	for i, w := range want {
		if parts[i].String() != w {
			t.Fatalf("part %d = %q, want %q", i, parts[i].String(), w)
		}
	}
	if parts[2] != Empty() {
		t.Fatalf("empty segment must be the canonical empty string")
	}
	// segments borrow from the source
	if unsafe.SliceData(parts[3].Bytes()) != unsafe.SliceData(s.Bytes()[5:]) {
		t.Fatalf("segments must be borrowed views")
	}
}
