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

package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conwaylife/hashlife"
)

func TestToUniverseAndToViewportRoundTrip(t *testing.T) {
	u := hashlife.NewUniverse(5)
	v := New(u, 4, 8, 16, 16)

	ux, uy := v.ToUniverse(1, 2)
	assert.Equal(t, uint64(5), ux)
	assert.Equal(t, uint64(10), uy)

	x, y := v.ToViewport(ux, uy)
	assert.Equal(t, uint64(1), x)
	assert.Equal(t, uint64(2), y)
}

func TestContainsRespectsViewportBounds(t *testing.T) {
	u := hashlife.NewUniverse(5)
	v := New(u, 4, 4, 8, 8)

	assert.True(t, v.Contains(4, 4))
	assert.True(t, v.Contains(11, 11))
	assert.False(t, v.Contains(3, 4), "x below offset")
	assert.False(t, v.Contains(12, 4), "x past width")
}

func TestFullSyncReflectsUniverseState(t *testing.T) {
	u := hashlife.NewUniverse(5)
	require.NoError(t, u.Toggle(5, 5))
	require.NoError(t, u.Toggle(6, 6))

	v := New(u, 0, 0, 8, 8)
	require.NoError(t, v.FullSync())

	cells := v.Cells()
	assert.Equal(t, byte(1), cells[5*v.Height()+5])
	assert.Equal(t, byte(1), cells[6*v.Height()+6])
	assert.Equal(t, byte(0), cells[0*v.Height()+0])
}

func TestSyncOnlyUpdatesDirtyCells(t *testing.T) {
	u := hashlife.NewUniverse(5)
	v := New(u, 0, 0, 8, 8)
	require.NoError(t, v.FullSync())

	require.NoError(t, u.Toggle(2, 2))
	v.MarkDirty(2, 2)
	require.NoError(t, v.Sync())

	assert.Equal(t, byte(1), v.Cells()[2*v.Height()+2])
}

func TestMarkDirtyIgnoresCoordinatesOutsideViewport(t *testing.T) {
	u := hashlife.NewUniverse(5)
	v := New(u, 0, 0, 4, 4)
	v.MarkDirty(20, 20)
	// Sync must not panic or touch anything out of range; it should be a
	// no-op on an empty dirty set.
	require.NoError(t, v.Sync())
}
