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

// Factory is the interface Evolver and Universe depend on, satisfied by
// both NodeFactory (the default, mutex-guarded, optionally bounded
// implementation) and ConcurrentNodeFactory (the xsync-backed
// implementation used when several Universes deliberately share one
// factory across goroutines). Keeping this as an interface rather than a
// concrete type is what lets a single Evolver/Universe implementation
// serve both (spec §5's single-threaded-by-default, guardable-if-shared
// resource model).
type Factory interface {
	Leaf(s State) Node
	Empty(k uint8) Node
	Compose(ul, ur, ll, lr Node) (Node, error)
	Quad(n Node, q Quadrant) Node
	ResultOf(n Node) (Node, bool)
	StoreResult(n, result Node)
	RegisterRoot(n Node)
	UnregisterRoot(n Node)

	// BeginOp/EndOp bracket a Universe public method, so an implementation
	// that evicts (NodeFactory) knows never to do so while one is open
	// (spec §5's quiescent-point rule). ConcurrentNodeFactory never evicts
	// and implements both as no-ops.
	BeginOp()
	EndOp()
}

var (
	_ Factory = (*NodeFactory)(nil)
	_ Factory = (*ConcurrentNodeFactory)(nil)
)
