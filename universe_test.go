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

	"github.com/conwaylife/hashlife/patterns"
)

func TestNewUniverseStartsEmpty(t *testing.T) {
	u := NewUniverse(4)
	if !u.Root().IsDead() {
		t.Fatal("a freshly constructed universe must start all-dead")
	}
	if u.Levels() != 4 {
		t.Fatalf("Levels() = %d, want 4", u.Levels())
	}
}

func TestToggleFlipsAndRestoresACell(t *testing.T) {
	u := NewUniverse(4)

	if err := u.Toggle(2, 9); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if st, err := u.StateAt(2, 9); err != nil || st != Alive {
		t.Fatalf("StateAt(2,9) = (%s, %v), want (Alive, nil)", st, err)
	}
	if u.Root().IsDead() {
		t.Fatal("root must not be dead after toggling a cell alive")
	}

	if err := u.Toggle(2, 9); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if st, err := u.StateAt(2, 9); err != nil || st != Dead {
		t.Fatalf("StateAt(2,9) after toggling back = (%s, %v), want (Dead, nil)", st, err)
	}
	// I3: toggling a lone live cell back off must canonicalize the whole
	// universe back to Empty, not merely an all-dead MacroCell.
	if !u.Root().IsDead() {
		t.Fatal("root must be all-dead after restoring the only live cell")
	}
}

func TestToggleOutOfRangeIsRecoveredAsError(t *testing.T) {
	u := NewUniverse(3)
	side := uint64(1) << 3
	err := u.Toggle(side, 0)
	if err == nil {
		t.Fatal("Toggle at an out-of-range coordinate should return an error")
	}
	if _, ok := err.(*ContractViolation); !ok {
		t.Fatalf("Toggle error = %T, want *ContractViolation", err)
	}
}

func TestSnapshotMatchesToggledCells(t *testing.T) {
	u := NewUniverse(4)
	live := map[[2]uint64]bool{{3, 3}: true, {3, 4}: true, {4, 3}: true, {4, 4}: true}
	for c := range live {
		if err := u.Toggle(c[0], c[1]); err != nil {
			t.Fatalf("Toggle: %v", err)
		}
	}

	snap, err := u.Snapshot(Rect{X0: 0, Y0: 0, W: 8, H: 8})
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	for x := uint64(0); x < 8; x++ {
		for y := uint64(0); y < 8; y++ {
			want := byte(0)
			if live[[2]uint64{x, y}] {
				want = 1
			}
			if got := snap[x*8+y]; got != want {
				t.Errorf("Snapshot cell (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestResetClearsUniverse(t *testing.T) {
	u := NewUniverse(4)
	if err := u.Toggle(1, 1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	u.Reset()
	if !u.Root().IsDead() {
		t.Fatal("Reset must leave the universe all-dead")
	}
	if st, err := u.StateAt(1, 1); err != nil || st != Dead {
		t.Fatalf("StateAt(1,1) after Reset = (%s, %v), want (Dead, nil)", st, err)
	}
}

func TestTwoUniversesSharingAFactoryReuseMemo(t *testing.T) {
	// Scenario S6: two independent Universes sharing one factory reuse
	// cached compose/result entries for identical sub-patterns.
	f := NewNodeFactory()
	u1 := NewUniverseWithFactory(4, f)
	u2 := NewUniverseWithFactory(4, f)

	for _, y := range []uint64{3, 4, 5} {
		if err := u1.Toggle(4, y); err != nil {
			t.Fatalf("Toggle u1: %v", err)
		}
		if err := u2.Toggle(4, y); err != nil {
			t.Fatalf("Toggle u2: %v", err)
		}
	}

	if u1.Root() != u2.Root() {
		t.Fatal("identical edits on universes sharing a factory must hash-cons to the identical root")
	}

	if err := u1.Step(); err != nil {
		t.Fatalf("u1.Step: %v", err)
	}
	before := f.Stats().MemoMisses
	if err := u2.Step(); err != nil {
		t.Fatalf("u2.Step: %v", err)
	}
	after := f.Stats().MemoMisses

	if after != before {
		t.Fatalf("u2.Step recomputed results u1.Step already memoized: MemoMisses grew by %d", after-before)
	}
}

// aliveCells scans the whole universe and returns every coordinate whose
// state is Alive, for comparison against an exact expected set.
func aliveCells(t *testing.T, u *Universe) [][2]uint64 {
	t.Helper()
	side := uint64(1) << u.Levels()
	var got [][2]uint64
	for x := uint64(0); x < side; x++ {
		for y := uint64(0); y < side; y++ {
			state, err := u.StateAt(x, y)
			if err != nil {
				t.Fatalf("StateAt(%d,%d): %v", x, y, err)
			}
			if state == Alive {
				got = append(got, [2]uint64{x, y})
			}
		}
	}
	return got
}

func assertAliveCellsExactly(t *testing.T, u *Universe, want [][2]uint64) {
	t.Helper()
	wantSet := make(map[[2]uint64]bool, len(want))
	for _, c := range want {
		wantSet[c] = true
	}

	got := aliveCells(t, u)
	gotSet := make(map[[2]uint64]bool, len(got))
	for _, c := range got {
		gotSet[c] = true
	}

	for _, c := range got {
		if !wantSet[c] {
			t.Errorf("unexpected alive cell %v", c)
		}
	}
	for _, c := range want {
		if !gotSet[c] {
			t.Errorf("missing expected alive cell %v", c)
		}
	}
}

// TestUniverseGliderTranslatesAfterFourSteps exercises spec.md §8 scenario
// S3: a glider seeded at levels=5 translates by (+1,+1) after four steps.
// Unlike the blinker (spec S1), the glider is asymmetric and actually moves,
// so it stresses the k>=3 recursive nine-window reassembly in
// Evolver.Step/resultRecursive in a way a symmetric oscillator cannot: a
// quadrant mislabeled in the reassembly would shift or mirror the glider
// instead of translating it cleanly.
func TestUniverseGliderTranslatesAfterFourSteps(t *testing.T) {
	u := NewUniverse(5)
	if err := patterns.Seed(u, patterns.Glider, 0, 0); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	for i := 0; i < 4; i++ {
		if err := u.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}

	assertAliveCellsExactly(t, u, [][2]uint64{
		{11, 11}, {12, 12}, {13, 10}, {13, 11}, {13, 12},
	})
}

// TestUniverseBlockStaysStableOverMultipleSteps exercises spec.md §8
// scenario S2 at the Universe level: a block is a still life, so its alive
// cells must remain exactly the seeded four after any number of steps, not
// just across the single size-2 Evolver.Result base case already covered by
// TestResultBaseCaseBlockIsStable.
func TestUniverseBlockStaysStableOverMultipleSteps(t *testing.T) {
	u := NewUniverse(5)
	if err := patterns.Seed(u, patterns.Block, 0, 0); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	want := [][2]uint64{{3, 3}, {3, 4}, {4, 3}, {4, 4}}
	for i := 0; i < 5; i++ {
		if err := u.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
		assertAliveCellsExactly(t, u, want)
	}
}
