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

// Package viewport is the host-side collaborator named but explicitly
// excluded from the hashlife core (governing spec §1, §6): it owns a
// w x h byte buffer, picks a visible rectangle inside a much larger
// hashlife.Universe, and translates between viewport-local and
// universe-internal coordinates. It reaches hashlife only through
// Universe's public façade (StateAt, Snapshot) — never through node
// internals — so it can live, be tested, and evolve independently of the
// core's hash-consing and memoization machinery.
//
// This package is grounded on original_source/src/lib.rs's Universe type
// (to_viewport/to_universe/to_linear_viewport/sync_to_buf), which the
// governing spec's distillation intentionally dropped from the core and
// which this repository supplements here instead.
package viewport

import "github.com/conwaylife/hashlife"

// Viewport owns a w x h buffer of 0/1 cell bytes and a chosen offset into
// a larger Universe. Unlike the original's fixed visible_width = side/2,
// the width, height and offset here are independent so a host can size
// its window however it likes.
type Viewport struct {
	universe *hashlife.Universe

	offsetX, offsetY uint64
	width, height    uint64

	buf   []byte
	dirty map[uint64]struct{}
}

// New returns a Viewport of width x height cells over universe, anchored
// at universe-internal coordinates (offsetX, offsetY).
func New(universe *hashlife.Universe, offsetX, offsetY, width, height uint64) *Viewport {
	return &Viewport{
		universe: universe,
		offsetX:  offsetX,
		offsetY:  offsetY,
		width:    width,
		height:   height,
		buf:      make([]byte, width*height),
		dirty:    make(map[uint64]struct{}),
	}
}

// ToUniverse translates viewport-local coordinates to universe-internal
// coordinates, mirroring lib.rs's Universe::to_universe.
func (v *Viewport) ToUniverse(x, y uint64) (ux, uy uint64) {
	return x + v.offsetX, y + v.offsetY
}

// ToViewport translates universe-internal coordinates back to
// viewport-local coordinates, mirroring lib.rs's Universe::to_viewport. It
// does not bounds-check; callers should confirm the point falls within
// the viewport first (see Contains).
func (v *Viewport) ToViewport(ux, uy uint64) (x, y uint64) {
	return ux - v.offsetX, uy - v.offsetY
}

// Contains reports whether universe-internal coordinates (ux, uy) fall
// within this viewport's visible rectangle.
func (v *Viewport) Contains(ux, uy uint64) bool {
	if ux < v.offsetX || uy < v.offsetY {
		return false
	}
	x, y := v.ToViewport(ux, uy)
	return x < v.width && y < v.height
}

func (v *Viewport) linear(x, y uint64) uint64 {
	return x*v.height + y
}

// MarkDirty records that universe-internal coordinates (ux, uy) may have
// changed and should be re-copied into the buffer on the next Sync,
// mirroring lib.rs's update_indices dirty-rectangle tracking. A host that
// knows exactly which cells a toggle or step touched can call this
// instead of paying for a full-viewport Sync every tick.
func (v *Viewport) MarkDirty(ux, uy uint64) {
	if !v.Contains(ux, uy) {
		return
	}
	x, y := v.ToViewport(ux, uy)
	v.dirty[v.linear(x, y)] = struct{}{}
}

// MarkAllDirty forces the next Sync to re-copy every cell in the
// viewport; used after Reset or when a caller doesn't track per-cell
// dirtiness.
func (v *Viewport) MarkAllDirty() {
	for x := uint64(0); x < v.width; x++ {
		for y := uint64(0); y < v.height; y++ {
			v.dirty[v.linear(x, y)] = struct{}{}
		}
	}
}

// Sync re-copies every dirty cell from the universe into the buffer and
// clears the dirty set, the viewport analog of lib.rs's sync_to_buf.
func (v *Viewport) Sync() error {
	for idx := range v.dirty {
		x := idx / v.height
		y := idx % v.height
		ux, uy := v.ToUniverse(x, y)
		state, err := v.universe.StateAt(ux, uy)
		if err != nil {
			return err
		}
		if state == hashlife.Alive {
			v.buf[idx] = 1
		} else {
			v.buf[idx] = 0
		}
	}
	v.dirty = make(map[uint64]struct{})
	return nil
}

// FullSync re-copies the entire viewport via Universe.Snapshot in one
// call, bypassing dirty tracking entirely — simpler, and typically
// cheaper right after a Reset or a large structural change.
func (v *Viewport) FullSync() error {
	buf, err := v.universe.Snapshot(hashlife.Rect{
		X0: v.offsetX, Y0: v.offsetY, W: v.width, H: v.height,
	})
	if err != nil {
		return err
	}
	v.buf = buf
	v.dirty = make(map[uint64]struct{})
	return nil
}

// Cells returns the current buffer, row-major, 0/1 per cell.
func (v *Viewport) Cells() []byte { return v.buf }

// Width and Height report the viewport's dimensions.
func (v *Viewport) Width() uint64  { return v.width }
func (v *Viewport) Height() uint64 { return v.height }
