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

// Package hashlife implements a hash-consed quadtree representation of a
// Conway's Game of Life universe, and the HashLife algorithm for advancing
// it one generation at a time with memoized, structure-sharing recursion.
package hashlife

import "fmt"

// State is the value of a single cell.
type State uint8

const (
	Dead State = iota
	Alive
)

func (s State) String() string {
	if s == Alive {
		return "Alive"
	}
	return "Dead"
}

// Quadrant names a child position within a MacroCell.
type Quadrant int

const (
	UL Quadrant = iota
	UR
	LL
	LR
)

// Node is the tagged union of the three region representations: Leaf,
// Empty and MacroCell. Every Node in circulation outside the factory is
// interned: structural equality coincides with identity (I5). Because each
// concrete type below is always handed out as a pointer by the factory,
// two Node values compare `==` exactly when they are the same hash-consed
// instance — that property is what lets NodeFactory use Node (and 4-tuples
// of Node) directly as map keys.
//
// Node is implemented as an interface over small concrete types rather
// than a single struct with a discriminant field, mirroring the
// VerkleNode/InternalNode/LeafNode/Empty split this package is modeled on
// — dispatch is by type switch at each recursive step, and the structural
// invariants (I1-I5 in the governing spec) stay local to this file.
type Node interface {
	// Size returns k for a node representing a 2^k x 2^k region (0 for a
	// Leaf).
	Size() uint8

	// IsDead reports whether every cell in the region is Dead.
	IsDead() bool

	// StateAt returns the cell state at (x, y), coordinates local to this
	// node's region ([0, 2^Size()) on both axes). Out-of-range coordinates
	// are a contract violation.
	StateAt(x, y uint64) State

	// Quad returns the child of this node at the given quadrant. Defined
	// for MacroCell and Empty (via the factory, see NodeFactory.Quad);
	// calling it directly on a Leaf, or on an Empty without going through
	// the factory, is a contract violation.
	Quad(q Quadrant) Node
}

// leafNode is a single cell. Only two instances of leafNode ever exist
// (see factory.go), so leafNode identity is pointer identity.
type leafNode struct {
	state State
}

func (n *leafNode) Size() uint8 { return 0 }
func (n *leafNode) IsDead() bool { return n.state == Dead }

func (n *leafNode) StateAt(x, y uint64) State {
	if x != 0 || y != 0 {
		panicContract("StateAt", "(%d,%d) on a leaf: coordinates must be (0,0)", x, y)
	}
	return n.state
}

func (n *leafNode) Quad(Quadrant) Node {
	panicContract("Quad", "Quad called on a Leaf node")
	return nil
}

// emptyNode is the canonical all-dead region of side 2^k, k >= 1. Every
// emptyNode for a given k is the same shared instance (F2).
type emptyNode struct {
	size uint8
}

func (n *emptyNode) Size() uint8  { return n.size }
func (n *emptyNode) IsDead() bool { return true }

func (n *emptyNode) StateAt(x, y uint64) State {
	side := uint64(1) << n.size
	if x >= side || y >= side {
		panicContract("StateAt", "(%d,%d) out of range for size %d node", x, y, n.size)
	}
	return Dead
}

func (n *emptyNode) Quad(Quadrant) Node {
	// quad(Empty(k)) = Empty(k-1), or Leaf(Dead) when k == 1 (§4.1). That
	// requires materializing a (possibly not-yet-interned) node, which is
	// a factory responsibility — callers must use NodeFactory.Quad, which
	// special-cases Empty, rather than this method.
	panicContract("Quad", "Quad on Empty must go through NodeFactory.Quad")
	return nil
}

// macroCell is a non-empty 2^k x 2^k region composed of four size-(k-1)
// quadrants. At least one child is not all-dead (I3); the factory
// guarantees this by canonicalizing an all-dead composition to emptyNode.
type macroCell struct {
	ul, ur, ll, lr Node
	size           uint8
}

func (n *macroCell) Size() uint8  { return n.size }
func (n *macroCell) IsDead() bool { return false }

func (n *macroCell) StateAt(x, y uint64) State {
	side := uint64(1) << n.size
	if x >= side || y >= side {
		panicContract("StateAt", "(%d,%d) out of range for size %d node", x, y, n.size)
	}
	h := side >> 1
	qx, qy := x/h, y/h
	rx, ry := x%h, y%h
	return n.quadByCoord(qx, qy).StateAt(rx, ry)
}

// quadByCoord applies the fixed coordinate convention of the governing
// spec: qx = x div h selects row, qy = y div h selects column, with
// (0,0)->ul, (0,1)->ur, (1,0)->ll, (1,1)->lr.
func (n *macroCell) quadByCoord(qx, qy uint64) Node {
	switch {
	case qx == 0 && qy == 0:
		return n.ul
	case qx == 0 && qy == 1:
		return n.ur
	case qx == 1 && qy == 0:
		return n.ll
	case qx == 1 && qy == 1:
		return n.lr
	default:
		panic(fmt.Sprintf("hashlife: unreachable quadrant (%d,%d)", qx, qy))
	}
}

func (n *macroCell) Quad(q Quadrant) Node {
	switch q {
	case UL:
		return n.ul
	case UR:
		return n.ur
	case LL:
		return n.ll
	case LR:
		return n.lr
	default:
		panic(fmt.Sprintf("hashlife: invalid quadrant %d", q))
	}
}
