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

// TreeStats summarizes the shape of the DAG rooted at a Node: leaf and
// macro-cell counts, live leaf count, and min/max depth to a leaf. Because
// the same subtree instance can be reachable through many parents (I5), a
// plain recursive walk would revisit shared nodes exponentially often; this
// walk memoizes on node identity instead, visiting each distinct node
// exactly once.
type TreeStats struct {
	DepthMin, DepthMax int
	LeafCount          int
	AliveLeafCount     int
	MacroCellCount     int
	DistinctNodes      int
}

// TreeStatsOf walks the DAG rooted at n and returns aggregate shape
// statistics, counting each distinct hash-consed node once regardless of
// how many parents reference it.
func TreeStatsOf(n Node) TreeStats {
	memo := make(map[Node]TreeStats)
	seen := make(map[Node]struct{})
	_ = walkStats(n, memo, seen)

	total := TreeStats{DepthMin: -1}
	for node := range seen {
		s := memo[node]
		total.LeafCount += s.leafCountOwn()
		total.AliveLeafCount += s.aliveLeafCountOwn()
		if _, ok := node.(*macroCell); ok {
			total.MacroCellCount++
		}
	}
	total.DistinctNodes = len(seen)
	total.DepthMin, total.DepthMax = depthBounds(n, memo)
	return total
}

// walkStats populates memo with the per-node own-leaf-count accounting used
// by TreeStatsOf, visiting each node once via seen.
func walkStats(n Node, memo map[Node]TreeStats, seen map[Node]struct{}) TreeStats {
	if s, ok := memo[n]; ok {
		return s
	}
	if _, ok := seen[n]; ok {
		return memo[n]
	}
	seen[n] = struct{}{}

	var s TreeStats
	switch v := n.(type) {
	case *leafNode:
		s.LeafCount = 1
		if v.state == Alive {
			s.AliveLeafCount = 1
		}
	case *emptyNode:
		s.LeafCount = 1
	case *macroCell:
		for _, child := range []Node{v.ul, v.ur, v.ll, v.lr} {
			walkStats(child, memo, seen)
		}
	}
	memo[n] = s
	return s
}

func (s TreeStats) leafCountOwn() int      { return s.LeafCount }
func (s TreeStats) aliveLeafCountOwn() int { return s.AliveLeafCount }

// depthBounds returns the shortest and longest path length, in edges, from n
// down to any leaf-or-empty node it can reach.
func depthBounds(n Node, memo map[Node]TreeStats) (min, max int) {
	cache := make(map[Node][2]int)
	var walk func(Node) (int, int)
	walk = func(n Node) (int, int) {
		if d, ok := cache[n]; ok {
			return d[0], d[1]
		}
		mc, ok := n.(*macroCell)
		if !ok {
			cache[n] = [2]int{0, 0}
			return 0, 0
		}
		childMin, childMax := -1, -1
		for _, child := range []Node{mc.ul, mc.ur, mc.ll, mc.lr} {
			cmin, cmax := walk(child)
			if childMin == -1 || cmin < childMin {
				childMin = cmin
			}
			if cmax > childMax {
				childMax = cmax
			}
		}
		result := [2]int{childMin + 1, childMax + 1}
		cache[n] = result
		return result[0], result[1]
	}
	return walk(n)
}
