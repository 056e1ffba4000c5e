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

// Rect describes a visible rectangle in internal universe coordinates, as
// consumed by Universe.Snapshot. The host-side viewport collaborator
// (hashlife/viewport) is responsible for choosing it; the core never
// picks one on its own (spec §6).
type Rect struct {
	X0, Y0 uint64
	W, H   uint64
}

// Universe is the public façade over a single root Node and the factory
// that owns it: toggle, step, state_at, reset (spec §4.4). Every edit or
// tick is delegated to the Evolver and NodeFactory; the Universe itself
// holds no cell state of its own beyond the current root.
type Universe struct {
	factory Factory
	evolver *Evolver
	root    Node
	levels  uint8
}

// NewUniverse returns a Universe of levels internal levels (internal side
// 2^levels), backed by a fresh, unbounded NodeFactory, starting fully
// dead. Use NewUniverseWithFactory to share a factory between universes
// (spec §8 scenario S6).
func NewUniverse(levels uint8) *Universe {
	return NewUniverseWithFactory(levels, NewNodeFactory())
}

// NewUniverseWithFactory returns a Universe of the given levels backed by
// an existing factory. Sharing one factory between multiple Universes is
// the documented way to get HashLife's memo reuse across independent
// simulations (spec §8 S6); the factory is safe for this as long as all
// sharing goroutines serialize through it, which NodeFactory's internal
// mutex guarantees, or use ConcurrentNodeFactory explicitly.
func NewUniverseWithFactory(levels uint8, f Factory) *Universe {
	if levels < 1 {
		panicContract("NewUniverse", "levels must be >= 1, got %d", levels)
	}
	u := &Universe{
		factory: f,
		evolver: NewEvolver(f),
		levels:  levels,
	}
	u.root = f.Empty(levels)
	f.RegisterRoot(u.root)
	return u
}

// Levels returns the universe's configured size exponent.
func (u *Universe) Levels() uint8 { return u.levels }

// Root returns the current root node. Exposed for tests and for hosts
// that want to inspect the DAG directly (e.g. to assert identity
// equality per spec P1-P3); ordinary callers should use StateAt/Snapshot.
func (u *Universe) Root() Node { return u.root }

// Factory returns the Factory backing this universe.
func (u *Universe) Factory() Factory { return u.factory }

func (u *Universe) side() uint64 { return uint64(1) << u.levels }

// Toggle flips the cell at internal coordinates (x, y). It rebuilds every
// node on the path from root to the target leaf via Compose, replacing
// exactly one child at each level; any subtree that becomes all-dead
// canonicalizes to Empty through Compose itself (I3). An out-of-range
// coordinate is a contract violation and leaves the universe unchanged.
func (u *Universe) Toggle(x, y uint64) (err error) {
	defer recoverContract(&err)
	u.factory.BeginOp()
	defer u.factory.EndOp()

	side := u.side()
	if x >= side || y >= side {
		panicContract("Toggle", "coordinate (%d,%d) out of range for side %d", x, y, side)
	}

	newRoot, cerr := u.toggleNode(u.root, u.levels, x, y)
	if cerr != nil {
		return cerr
	}
	u.factory.UnregisterRoot(u.root)
	u.root = newRoot
	u.factory.RegisterRoot(u.root)
	return nil
}

func (u *Universe) toggleNode(n Node, size uint8, x, y uint64) (Node, error) {
	if size == 0 {
		leaf, ok := n.(*leafNode)
		if !ok {
			panicContract("Toggle", "expected a Leaf at size 0, got %T", n)
		}
		next := Dead
		if leaf.state == Dead {
			next = Alive
		}
		return u.factory.Leaf(next), nil
	}

	h := uint64(1) << (size - 1)
	qx, qy := x/h, y/h
	rx, ry := x%h, y%h
	target := quadrantOf(qx, qy)

	a := u.factory.Quad(n, UL)
	b := u.factory.Quad(n, UR)
	c := u.factory.Quad(n, LL)
	d := u.factory.Quad(n, LR)

	var child Node
	switch target {
	case UL:
		child = a
	case UR:
		child = b
	case LL:
		child = c
	case LR:
		child = d
	}

	newChild, err := u.toggleNode(child, size-1, rx, ry)
	if err != nil {
		return nil, err
	}

	switch target {
	case UL:
		a = newChild
	case UR:
		b = newChild
	case LL:
		c = newChild
	case LR:
		d = newChild
	}

	return u.factory.Compose(a, b, c, d)
}

// quadrantOf maps a (qx, qy) pair under the spec's coordinate convention
// (qx selects row, qy selects column) to the corresponding Quadrant.
func quadrantOf(qx, qy uint64) Quadrant {
	switch {
	case qx == 0 && qy == 0:
		return UL
	case qx == 0 && qy == 1:
		return UR
	case qx == 1 && qy == 0:
		return LL
	case qx == 1 && qy == 1:
		return LR
	default:
		panicContract("Toggle", "unreachable quadrant selector (%d,%d)", qx, qy)
		return UL
	}
}

// Step advances the universe by exactly one generation.
func (u *Universe) Step() (err error) {
	defer recoverContract(&err)
	u.factory.BeginOp()
	defer u.factory.EndOp()

	newRoot := u.evolver.Step(u.root)
	u.factory.UnregisterRoot(u.root)
	u.root = newRoot
	u.factory.RegisterRoot(u.root)
	return nil
}

// StateAt returns the cell state at internal coordinates (x, y).
func (u *Universe) StateAt(x, y uint64) (state State, err error) {
	defer recoverContract(&err)
	return u.root.StateAt(x, y), nil
}

// Reset replaces the root with Empty(levels), discarding all live cells.
func (u *Universe) Reset() {
	u.factory.UnregisterRoot(u.root)
	u.root = u.factory.Empty(u.levels)
	u.factory.RegisterRoot(u.root)
}

// Snapshot copies the cell states of the given visible rectangle into a
// row-major byte array of 0/1 values, w*h bytes. This is the one
// interface the host-side viewport collaborator needs; the core never
// interprets the rectangle beyond bounds-checking it.
func (u *Universe) Snapshot(r Rect) (out []byte, err error) {
	defer recoverContract(&err)

	side := u.side()
	if r.X0+r.W > side || r.Y0+r.H > side {
		panicContract("Snapshot", "rect %+v exceeds universe side %d", r, side)
	}

	out = make([]byte, r.W*r.H)
	for i := uint64(0); i < r.W; i++ {
		for j := uint64(0); j < r.H; j++ {
			if u.root.StateAt(r.X0+i, r.Y0+j) == Alive {
				out[i*r.H+j] = 1
			}
		}
	}
	return out, nil
}
