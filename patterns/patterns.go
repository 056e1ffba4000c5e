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

// Package patterns holds a handful of named still-life/oscillator/
// spaceship seeds used by the CLI and by the core's end-to-end tests —
// the coordinate lists spec.md §8 scenarios S1-S3 are stated in terms of.
package patterns

import "fmt"

// Pattern is a named set of live-cell coordinates, relative to an
// arbitrary origin the caller chooses.
type Pattern struct {
	Name  string
	Cells [][2]uint64
}

var (
	// Blinker is the period-2 oscillator of spec.md scenario S1.
	Blinker = Pattern{Name: "blinker", Cells: [][2]uint64{{3, 4}, {4, 4}, {5, 4}}}

	// Block is the still life of spec.md scenario S2.
	Block = Pattern{Name: "block", Cells: [][2]uint64{{3, 3}, {3, 4}, {4, 3}, {4, 4}}}

	// Glider is the spaceship of spec.md scenario S3.
	Glider = Pattern{Name: "glider", Cells: [][2]uint64{{10, 10}, {11, 11}, {12, 9}, {12, 10}, {12, 11}}}
)

// ByName returns a named built-in pattern.
func ByName(name string) (Pattern, error) {
	switch name {
	case Blinker.Name:
		return Blinker, nil
	case Block.Name:
		return Block, nil
	case Glider.Name:
		return Glider, nil
	default:
		return Pattern{}, fmt.Errorf("patterns: unknown pattern %q", name)
	}
}

// universe is the minimal surface Seed needs from hashlife.Universe,
// avoiding an import cycle between patterns and any package that wants to
// seed a pattern during construction.
type universe interface {
	Toggle(x, y uint64) error
}

// Seed toggles every cell of p alive at (originX+dx, originY+dy) on u.
func Seed(u universe, p Pattern, originX, originY uint64) error {
	for _, c := range p.Cells {
		if err := u.Toggle(originX+c[0], originY+c[1]); err != nil {
			return err
		}
	}
	return nil
}
