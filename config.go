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

import "fmt"

// MinLevels and MaxLevels bound the "levels" configuration option
// recognized by the core (spec §6): log2 of the internal side, typical
// range 3..=30.
const (
	MinLevels = 3
	MaxLevels = 30
)

// Config is the configuration surface the core recognizes, the way
// KZGConfig/TreeConfig is the configuration surface the teacher's tree
// recognizes. Unlike TreeConfig, there is no process-wide singleton here
// (spec §9: "Global state: none. The factory is owned by the Universe,
// not a process-wide singleton.") — a Config is a plain value a caller
// builds and validates before constructing a Universe.
type Config struct {
	// Levels is log2 of the universe's internal side.
	Levels uint8

	// MaxNodes bounds the factory's combined compose+memo cache; 0 means
	// unbounded. See NewBoundedNodeFactory.
	MaxNodes int
}

// Validate reports whether c.Levels falls within the recognized range.
func (c Config) Validate() error {
	if c.Levels < MinLevels || c.Levels > MaxLevels {
		return fmt.Errorf("hashlife: levels %d out of recognized range [%d, %d]", c.Levels, MinLevels, MaxLevels)
	}
	return nil
}

// NewUniverseFromConfig validates c and constructs the Universe it
// describes.
func NewUniverseFromConfig(c Config) (*Universe, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	f := NewNodeFactory()
	if c.MaxNodes > 0 {
		f = NewBoundedNodeFactory(c.MaxNodes)
	}
	return NewUniverseWithFactory(c.Levels, f), nil
}
