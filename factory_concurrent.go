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
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// ConcurrentNodeFactory is a NodeFactory variant for the case spec §5
// names explicitly: "Node values are immutable and therefore safely
// readable from multiple threads if a concurrency layer is added later."
// It backs the compose cache and the evolution memo with
// github.com/puzpuzpuz/xsync's sharded, lock-free-read maps instead of a
// single mutex, so many goroutines advancing independent Universes that
// share one factory (spec §8 scenario S6) don't serialize on every
// Compose/ResultOf call. It does not support bounded eviction — a shared,
// concurrently-growing factory is meant to be long-lived and unbounded,
// matching how cmd/hashlifebench uses it.
type ConcurrentNodeFactory struct {
	leafDead, leafAlive *leafNode

	emptyMu    sync.Mutex
	emptyCache map[uint8]*emptyNode

	compCache *xsync.MapOf[composeKey, *macroCell]
	memo      *xsync.MapOf[Node, Node]
}

// NewConcurrentNodeFactory returns an unbounded, concurrency-safe
// NodeFactory.
func NewConcurrentNodeFactory() *ConcurrentNodeFactory {
	return &ConcurrentNodeFactory{
		leafDead:   &leafNode{state: Dead},
		leafAlive:  &leafNode{state: Alive},
		emptyCache: make(map[uint8]*emptyNode),
		compCache:  xsync.NewMapOf[composeKey, *macroCell](),
		memo:       xsync.NewMapOf[Node, Node](),
	}
}

func (f *ConcurrentNodeFactory) Leaf(s State) Node {
	if s == Alive {
		return f.leafAlive
	}
	return f.leafDead
}

func (f *ConcurrentNodeFactory) Empty(k uint8) Node {
	if k == 0 {
		return f.leafDead
	}
	f.emptyMu.Lock()
	defer f.emptyMu.Unlock()
	if e, ok := f.emptyCache[k]; ok {
		return e
	}
	e := &emptyNode{size: k}
	f.emptyCache[k] = e
	return e
}

func (f *ConcurrentNodeFactory) Compose(ul, ur, ll, lr Node) (Node, error) {
	k := ul.Size()
	if ur.Size() != k || ll.Size() != k || lr.Size() != k {
		panicContract("Compose", "mismatched child sizes: ul=%d ur=%d ll=%d lr=%d", k, ur.Size(), ll.Size(), lr.Size())
	}

	if ul.IsDead() && ur.IsDead() && ll.IsDead() && lr.IsDead() {
		return f.Empty(k + 1), nil
	}

	key := composeKey{ul, ur, ll, lr}
	mc, _ := f.compCache.LoadOrCompute(key, func() *macroCell {
		return &macroCell{ul: ul, ur: ur, ll: ll, lr: lr, size: k + 1}
	})
	return mc, nil
}

func (f *ConcurrentNodeFactory) Quad(n Node, q Quadrant) Node {
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

func (f *ConcurrentNodeFactory) ResultOf(n Node) (Node, bool) {
	return f.memo.Load(n)
}

func (f *ConcurrentNodeFactory) StoreResult(n, result Node) {
	f.memo.Store(n, result)
}

func (f *ConcurrentNodeFactory) RegisterRoot(Node)   {}
func (f *ConcurrentNodeFactory) UnregisterRoot(Node) {}

// BeginOp and EndOp are no-ops: ConcurrentNodeFactory never evicts, so it
// has no quiescent-point requirement to enforce.
func (f *ConcurrentNodeFactory) BeginOp() {}
func (f *ConcurrentNodeFactory) EndOp()   {}

// Size returns the compose-cache and memo entry counts, for logging.
func (f *ConcurrentNodeFactory) Size() (compose, memo int) {
	return f.compCache.Size(), f.memo.Size()
}
