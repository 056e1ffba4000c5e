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

// Evolver computes the HashLife one-generation advance of a node, memoizing
// on NodeFactory. It holds no state of its own beyond the factory it was
// built over, so a single Evolver can be shared by any number of
// Universes that share that factory.
type Evolver struct {
	f Factory
}

// NewEvolver returns an Evolver backed by f.
func NewEvolver(f Factory) *Evolver {
	return &Evolver{f: f}
}

// neighborOffsets are the eight Moore-neighborhood deltas used by the
// size-2 base case, in no particular order — Conway's rule only cares
// about the count.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Result returns the node of size Size(n)-1 representing the center
// sub-region of n advanced by exactly one Conway generation (§4.3). It is
// defined for n of size >= 1 when n is Empty, and size >= 2 otherwise.
func (e *Evolver) Result(n Node) Node {
	if en, ok := n.(*emptyNode); ok {
		// E1.
		return e.f.Empty(en.size - 1)
	}

	// E2.
	if r, ok := e.f.ResultOf(n); ok {
		return r
	}

	if n.Size() < 2 {
		panicContract("Result", "Result requires size >= 2, got size %d", n.Size())
	}

	var result Node
	if n.Size() == 2 {
		result = e.applyRule(n)
	} else {
		result = e.resultRecursive(n)
	}

	e.f.StoreResult(n, result)
	return result
}

// applyRule is the base case E3: brute-force Conway's rule over the inner
// 2x2 of a 4x4 region.
func (e *Evolver) applyRule(n Node) Node {
	var centerLeaves [2][2]Node // indexed [qx][qy], qx=i-1, qy=j-1

	for i := 1; i <= 2; i++ {
		for j := 1; j <= 2; j++ {
			aliveNeighbors := 0
			for _, d := range neighborOffsets {
				ni, nj := i+d[0], j+d[1]
				if n.StateAt(uint64(ni), uint64(nj)) == Alive {
					aliveNeighbors++
				}
			}

			cur := n.StateAt(uint64(i), uint64(j))
			var next State
			switch {
			case cur == Alive && (aliveNeighbors == 2 || aliveNeighbors == 3):
				next = Alive
			case cur == Dead && aliveNeighbors == 3:
				next = Alive
			default:
				next = Dead
			}
			centerLeaves[i-1][j-1] = e.f.Leaf(next)
		}
	}

	result, err := e.f.Compose(centerLeaves[0][0], centerLeaves[0][1], centerLeaves[1][0], centerLeaves[1][1])
	if err != nil {
		// applyRule composes four pre-existing leaves; the only failure
		// mode of Compose below the size threshold used by bounded
		// factories in practice is capacity exhaustion, which this
		// package surfaces by panicking here rather than threading an
		// error through every recursive call of Result — a bounded
		// factory that cannot hold a 4x4 base case has no usable
		// eviction target left, so this is effectively the same
		// unrecoverable condition as a contract violation from the
		// caller's point of view.
		panicContract("Result", "compose failed while applying base rule: %v", err)
	}
	return result
}

// resultRecursive is the k>=3 recursive case: nine overlapping
// size-(k-1) windows, each evaluated one generation ahead, reassembled
// into a size-(k-1) result centered on n.
func (e *Evolver) resultRecursive(n Node) Node {
	f := e.f

	a := f.Quad(n, UL)
	b := f.Quad(n, UR)
	c := f.Quad(n, LL)
	d := f.Quad(n, LR)

	must := func(node Node, err error) Node {
		if err != nil {
			panicContract("Result", "compose failed while building evaluation window: %v", err)
		}
		return node
	}

	um := must(f.Compose(f.Quad(a, UR), f.Quad(b, UL), f.Quad(a, LR), f.Quad(b, LL)))
	lm := must(f.Compose(f.Quad(c, UR), f.Quad(d, UL), f.Quad(c, LR), f.Quad(d, LL)))
	ml := must(f.Compose(f.Quad(a, LL), f.Quad(a, LR), f.Quad(c, UL), f.Quad(c, UR)))
	mr := must(f.Compose(f.Quad(b, LL), f.Quad(b, LR), f.Quad(d, UL), f.Quad(d, UR)))
	mm := must(f.Compose(f.Quad(a, LR), f.Quad(b, LL), f.Quad(c, UR), f.Quad(d, UL)))

	rUL := e.Result(a)
	rUR := e.Result(b)
	rLL := e.Result(c)
	rLR := e.Result(d)
	rUM := e.Result(um)
	rLM := e.Result(lm)
	rML := e.Result(ml)
	rMR := e.Result(mr)
	rMM := e.Result(mm)

	newUL := must(f.Compose(f.Quad(rUL, LR), f.Quad(rUM, LL), f.Quad(rML, UR), f.Quad(rMM, UL)))
	newUR := must(f.Compose(f.Quad(rUM, LR), f.Quad(rUR, LL), f.Quad(rMM, UR), f.Quad(rMR, UL)))
	newLL := must(f.Compose(f.Quad(rML, LR), f.Quad(rMM, LL), f.Quad(rLL, UR), f.Quad(rLM, UL)))
	newLR := must(f.Compose(f.Quad(rMM, LR), f.Quad(rMR, LL), f.Quad(rLM, UR), f.Quad(rLR, UL)))

	return must(f.Compose(newUL, newUR, newLL, newLR))
}

// Step advances root, a node of size k, by exactly one generation and
// returns the new root, also of size k. Per spec §4.3, the root is padded
// one level larger (each existing quadrant becomes the innermost
// sub-quadrant of a new, otherwise-empty quadrant) before Result is
// called on the padded frame, so that activity at the border of root is
// not silently cropped.
func (e *Evolver) Step(root Node) Node {
	k := root.Size()
	if k < 1 {
		panicContract("Step", "Step requires a root of size >= 1, got size %d", k)
	}
	f := e.f

	a := f.Quad(root, UL)
	b := f.Quad(root, UR)
	c := f.Quad(root, LL)
	d := f.Quad(root, LR)
	empty := f.Empty(k - 1)

	must := func(node Node, err error) Node {
		if err != nil {
			panicContract("Step", "compose failed while padding root: %v", err)
		}
		return node
	}

	frameUL := must(f.Compose(empty, empty, empty, a))
	frameUR := must(f.Compose(empty, empty, b, empty))
	frameLL := must(f.Compose(empty, c, empty, empty))
	frameLR := must(f.Compose(d, empty, empty, empty))

	frame := must(f.Compose(frameUL, frameUR, frameLL, frameLR))

	return e.Result(frame)
}
