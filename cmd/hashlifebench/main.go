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

// Command hashlifebench is the profiling counterpart of the teacher's
// benchs/main.go: it builds a cpu/mem profile of advancing several
// independent Universes in parallel, all sharing one
// hashlife.ConcurrentNodeFactory, which is the concrete, benchmarkable
// form of spec.md §8 scenario S6 ("construct two independent Universes
// ... sharing a factory").
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/conwaylife/hashlife"
	"github.com/conwaylife/hashlife/patterns"
)

const (
	levels      = 9
	universes   = 8
	generations = 200
)

func main() {
	cpu, err := os.Create("cpu.prof")
	if err != nil {
		fatal(err)
	}
	defer cpu.Close()
	if err := pprof.StartCPUProfile(cpu); err != nil {
		fatal(err)
	}
	defer pprof.StopCPUProfile()

	mem, err := os.Create("mem.prof")
	if err != nil {
		fatal(err)
	}
	defer mem.Close()
	defer func() { _ = pprof.WriteHeapProfile(mem) }()

	start := time.Now()
	if err := runParallel(); err != nil {
		fatal(err)
	}
	fmt.Printf("advanced %d universes x %d generations in %s\n", universes, generations, time.Since(start))
}

// runParallel advances `universes` independent glider simulations
// concurrently, all sharing a single ConcurrentNodeFactory so that
// identical sub-patterns across universes (here, every universe seeds the
// same glider) hit the same memoized HashLife results instead of
// recomputing them per goroutine.
func runParallel() error {
	factory := hashlife.NewConcurrentNodeFactory()

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < universes; i++ {
		i := i
		g.Go(func() error {
			u := hashlife.NewUniverseWithFactory(levels, factory)
			if err := patterns.Seed(u, patterns.Glider, uint64(i), uint64(i)); err != nil {
				return fmt.Errorf("universe %d: seed: %w", i, err)
			}
			for gen := 0; gen < generations; gen++ {
				if err := u.Step(); err != nil {
					return fmt.Errorf("universe %d: step %d: %w", i, gen, err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
