// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package hashlife

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestLeafStateAt(t *testing.T) {
	f := NewNodeFactory()
	dead := f.Leaf(Dead)
	alive := f.Leaf(Alive)

	if got := dead.StateAt(0, 0); got != Dead {
		t.Fatalf("dead leaf StateAt(0,0) = %s, want Dead: %s", got, spew.Sdump(dead))
	}
	if got := alive.StateAt(0, 0); got != Alive {
		t.Fatalf("alive leaf StateAt(0,0) = %s, want Alive: %s", got, spew.Sdump(alive))
	}
}

func TestLeafIdentityIsCanonical(t *testing.T) {
	f := NewNodeFactory()
	// F1: at most two leaf instances ever exist, and every call returns
	// one of those two.
	if f.Leaf(Dead) != f.Leaf(Dead) {
		t.Fatal("Leaf(Dead) is not stable across calls")
	}
	if f.Leaf(Alive) != f.Leaf(Alive) {
		t.Fatal("Leaf(Alive) is not stable across calls")
	}
	if f.Leaf(Dead) == f.Leaf(Alive) {
		t.Fatal("Leaf(Dead) and Leaf(Alive) must be distinct")
	}
}

func TestEmptyIsCanonicalPerLevel(t *testing.T) {
	f := NewNodeFactory()
	// F2: Empty(k) is the same instance every time, and distinct levels
	// are distinct instances.
	if f.Empty(3) != f.Empty(3) {
		t.Fatal("Empty(3) is not stable across calls")
	}
	if f.Empty(3) == f.Empty(4) {
		t.Fatal("Empty(3) and Empty(4) must be distinct")
	}
	if f.Empty(0) != f.Leaf(Dead) {
		t.Fatal("Empty(0) must alias Leaf(Dead)")
	}
}

func TestEmptyQuadRecurses(t *testing.T) {
	f := NewNodeFactory()
	e3 := f.Empty(3)
	for _, q := range []Quadrant{UL, UR, LL, LR} {
		if got := f.Quad(e3, q); got != f.Empty(2) {
			t.Fatalf("Quad(Empty(3), %d) = %s, want Empty(2)", q, spew.Sdump(got))
		}
	}
}

func TestComposeCanonicalizesAllDeadToEmpty(t *testing.T) {
	f := NewNodeFactory()
	d := f.Leaf(Dead)
	n, err := f.Compose(d, d, d, d)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// I3/P4: composing four dead leaves must yield Empty(1), not a
	// MacroCell.
	if n != f.Empty(1) {
		t.Fatalf("Compose(dead,dead,dead,dead) = %s, want Empty(1)", spew.Sdump(n))
	}
}

func TestComposeIsHashConsed(t *testing.T) {
	f := NewNodeFactory()
	d, a := f.Leaf(Dead), f.Leaf(Alive)

	n1, err := f.Compose(a, d, d, d)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	n2, err := f.Compose(a, d, d, d)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// I5/F3: identical structure interns to the identical pointer.
	if n1 != n2 {
		t.Fatalf("two Composes of the same four children produced different nodes: %s vs %s", spew.Sdump(n1), spew.Sdump(n2))
	}

	n3, err := f.Compose(d, a, d, d)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if n1 == n3 {
		t.Fatal("differently-ordered children must not intern to the same node")
	}
}

func TestComposeRejectsMismatchedSizes(t *testing.T) {
	f := NewNodeFactory()
	d0 := f.Leaf(Dead)
	d1 := f.Empty(1)

	defer func() {
		r := recover()
		cv, ok := r.(*ContractViolation)
		if !ok {
			t.Fatalf("expected a *ContractViolation panic, got %v", r)
		}
		if cv.Op != "Compose" {
			t.Fatalf("ContractViolation.Op = %q, want Compose", cv.Op)
		}
	}()
	_, _ = f.Compose(d0, d1, d1, d1)
	t.Fatal("Compose did not panic on mismatched child sizes")
}

func TestMacroCellStateAtCoordinateConvention(t *testing.T) {
	f := NewNodeFactory()
	d := f.Leaf(Dead)
	a := f.Leaf(Alive)

	// ul=dead, ur=alive, ll=dead, lr=dead: only (0,1) should read Alive,
	// matching the spec's qx=row/qy=col convention (0,1) -> ur.
	n, err := f.Compose(d, a, d, d)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	cases := []struct {
		x, y uint64
		want State
	}{
		{0, 0, Dead},
		{0, 1, Alive},
		{1, 0, Dead},
		{1, 1, Dead},
	}
	for _, c := range cases {
		if got := n.StateAt(c.x, c.y); got != c.want {
			t.Errorf("StateAt(%d,%d) = %s, want %s", c.x, c.y, got, c.want)
		}
	}
}

func TestStateAtOutOfRangeIsContractViolation(t *testing.T) {
	f := NewNodeFactory()
	n := f.Empty(2)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("StateAt out of range did not panic")
		}
	}()
	n.StateAt(100, 100)
}
