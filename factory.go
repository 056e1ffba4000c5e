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

import "sync"

// KMAX bounds the direct-indexed Empty(k) table. Levels beyond this still
// work, they just fall back to the general map lookup instead of the
// fast-path slice.
const KMAX = 30

// composeKey is the 4-tuple of child identities used to look up a
// previously-interned MacroCell. Node values are always factory-issued
// pointers wrapped in the Node interface, so composeKey is comparable and
// two equal keys mean four structurally-identical children (F3, I5).
type composeKey struct {
	ul, ur, ll, lr Node
}

// NodeFactory is the hash-consing interning store (§4.2): it is the only
// place MacroCell and Empty values are constructed, which is what makes
// identity equality sound as a proxy for structural equality everywhere
// else in this package. It also owns the HashLife evolution memo
// (result_of/store_result).
//
// Spec §5 keeps the core single-threaded, but every public method that
// touches the factory's mutable state is guarded by a mutex, so a
// NodeFactory MAY be shared across goroutines by an external concurrency
// layer (e.g. several Universes built over one shared factory). For a
// lock-free-read alternative, the one cmd/hashlifebench uses, see
// ConcurrentNodeFactory in factory_concurrent.go.
type NodeFactory struct {
	mu sync.Mutex

	leafDead, leafAlive *leafNode
	emptyFast           [KMAX + 1]*emptyNode
	emptyOverflow       map[uint8]*emptyNode

	compCache map[composeKey]*macroCell
	memo      map[Node]Node

	maxNodes int
	roots    map[Node]struct{}

	// opDepth is nonzero while a Universe public method (Toggle, Step) is
	// in flight. Compose must not evict while opDepth > 0: every node
	// Compose mints inside a single Toggle/Step call is reachable only
	// from local variables on that call's stack until the call returns and
	// registers its new root (spec §5: "never mid-recursion"). evictLocked
	// only ever treats registered roots as reachable, so evicting here
	// would drop an in-flight intermediate node out from under its caller.
	opDepth int

	stats Stats
}

// Stats reports factory cache occupancy and hit/miss counters, surfaced by
// the CLI's structured logging (cmd/hashlifectl).
type Stats struct {
	ComposeHits, ComposeMisses int64
	MemoHits, MemoMisses       int64
	Evictions                  int64
}

// NewNodeFactory returns an unbounded factory (spec §4.2: "the factory is
// unbounded by default").
func NewNodeFactory() *NodeFactory {
	f := &NodeFactory{
		leafDead:  &leafNode{state: Dead},
		leafAlive: &leafNode{state: Alive},
		compCache: make(map[composeKey]*macroCell),
		memo:      make(map[Node]Node),
		roots:     make(map[Node]struct{}),
	}
	return f
}

// NewBoundedNodeFactory returns a factory that attempts eviction of
// unreachable entries once its combined compose+memo cache exceeds
// maxNodes, and returns ErrCapacityExceeded if eviction doesn't free
// enough room. maxNodes <= 0 means unbounded.
func NewBoundedNodeFactory(maxNodes int) *NodeFactory {
	f := NewNodeFactory()
	f.maxNodes = maxNodes
	return f
}

// Leaf returns one of the two process-wide canonical leaf nodes (F1).
func (f *NodeFactory) Leaf(s State) Node {
	if s == Alive {
		return f.leafAlive
	}
	return f.leafDead
}

// Empty returns the canonical Empty(k) (F2). empty(0) aliases Leaf(Dead).
func (f *NodeFactory) Empty(k uint8) Node {
	if k == 0 {
		return f.leafDead
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.emptyLocked(k)
}

func (f *NodeFactory) emptyLocked(k uint8) Node {
	if k == 0 {
		return f.leafDead
	}
	if int(k) <= KMAX {
		if e := f.emptyFast[k]; e != nil {
			return e
		}
		e := &emptyNode{size: k}
		f.emptyFast[k] = e
		return e
	}
	if f.emptyOverflow == nil {
		f.emptyOverflow = make(map[uint8]*emptyNode)
	}
	if e, ok := f.emptyOverflow[k]; ok {
		return e
	}
	e := &emptyNode{size: k}
	f.emptyOverflow[k] = e
	return e
}

// Compose returns the unique node representing the composition of the
// four given quadrants (F3). It panics with a *ContractViolation if the
// four children are not all the same size. A composition of four dead
// children canonicalizes to Empty(k+1) and is never cached as a
// MacroCell (I3, P4).
func (f *NodeFactory) Compose(ul, ur, ll, lr Node) (Node, error) {
	k := ul.Size()
	if ur.Size() != k || ll.Size() != k || lr.Size() != k {
		panicContract("Compose", "mismatched child sizes: ul=%d ur=%d ll=%d lr=%d", k, ur.Size(), ll.Size(), lr.Size())
	}

	if ul.IsDead() && ur.IsDead() && ll.IsDead() && lr.IsDead() {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.emptyLocked(k + 1), nil
	}

	key := composeKey{ul, ur, ll, lr}

	f.mu.Lock()
	defer f.mu.Unlock()

	if mc, ok := f.compCache[key]; ok {
		f.stats.ComposeHits++
		return mc, nil
	}
	f.stats.ComposeMisses++

	if f.overCapacityLocked() {
		if f.opDepth == 0 {
			f.evictLocked()
		}
		if f.overCapacityLocked() {
			return nil, ErrCapacityExceeded
		}
	}

	mc := &macroCell{ul: ul, ur: ur, ll: ll, lr: lr, size: k + 1}
	f.compCache[key] = mc
	return mc, nil
}

// Quad returns the quadrant q of n, materializing it through the factory
// when n is Empty (quad(Empty(k)) = Empty(k-1), or Leaf(Dead) when k=1).
// Calling Quad on a Leaf is a contract violation.
func (f *NodeFactory) Quad(n Node, q Quadrant) Node {
	switch v := n.(type) {
	case *macroCell:
		return v.Quad(q)
	case *emptyNode:
		if v.size == 0 {
			panicContract("Quad", "Quad called on a size-0 Empty node")
		}
		return f.Empty(v.size - 1)
	case *leafNode:
		panicContract("Quad", "Quad called on a Leaf node")
	}
	panicContract("Quad", "unknown node type")
	return nil
}

// ResultOf returns the memoized HashLife result for n, if one has been
// stored (F4).
func (f *NodeFactory) ResultOf(n Node) (Node, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.memo[n]
	if ok {
		f.stats.MemoHits++
	} else {
		f.stats.MemoMisses++
	}
	return r, ok
}

// StoreResult records the HashLife result of n for future ResultOf calls
// (F4), keyed on the identity of n.
func (f *NodeFactory) StoreResult(n, result Node) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memo[n] = result
}

// RegisterRoot marks n as a live DAG root for eviction purposes. Universe
// calls this whenever its root changes; an evicting factory never drops
// an entry reachable from a registered root.
func (f *NodeFactory) RegisterRoot(n Node) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roots[n] = struct{}{}
}

// UnregisterRoot removes n from the set of live DAG roots.
func (f *NodeFactory) UnregisterRoot(n Node) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.roots, n)
}

// BeginOp marks the start of a Universe public method (Toggle, Step) that
// will call Compose repeatedly before registering a new root, so Compose
// must not evict until the matching EndOp (spec §5's quiescent-point
// requirement). Calls may nest; eviction is only permitted once every
// open operation has ended.
func (f *NodeFactory) BeginOp() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opDepth++
}

// EndOp closes a BeginOp. Compose may evict again once opDepth returns to
// zero.
func (f *NodeFactory) EndOp() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opDepth--
}

// Stats returns a snapshot of the factory's cache counters.
func (f *NodeFactory) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

func (f *NodeFactory) overCapacityLocked() bool {
	if f.maxNodes <= 0 {
		return false
	}
	return len(f.compCache)+len(f.memo) >= f.maxNodes
}

// evictLocked drops memo and compose-cache entries unreachable from any
// registered root. Compose is the only caller, and only calls it while
// opDepth == 0 — i.e. outside any BeginOp/EndOp span — since the nodes a
// single Toggle/Step call composes along the way (every intermediate
// window and partial result in Evolver.resultRecursive/Step) are reachable
// only from that call's own local variables until it registers a new root,
// not from anything evictLocked's mark phase can see.
func (f *NodeFactory) evictLocked() {
	reachable := make(map[Node]struct{})
	var mark func(Node)
	mark = func(n Node) {
		if _, ok := reachable[n]; ok {
			return
		}
		reachable[n] = struct{}{}
		if mc, ok := n.(*macroCell); ok {
			mark(mc.ul)
			mark(mc.ur)
			mark(mc.ll)
			mark(mc.lr)
		}
	}
	for root := range f.roots {
		mark(root)
	}

	for key, mc := range f.compCache {
		if _, ok := reachable[mc]; !ok {
			delete(f.compCache, key)
			f.stats.Evictions++
		}
	}
	for n := range f.memo {
		if _, ok := reachable[n]; !ok {
			delete(f.memo, n)
			f.stats.Evictions++
		}
	}
}
