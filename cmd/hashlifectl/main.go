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

// Command hashlifectl drives a hashlife.Universe from the command line:
// seed a named pattern, step it forward some number of generations, and
// print a snapshot. It plays the role the teacher's ad-hoc
// cmd/fuzzinsertstemordered and benchs/main.go binaries play — a small,
// separate main package per concern — but structures its flags with
// cobra/viper since this tool's surface (pattern, origin, generations,
// log level, optional config file) is wider than either of those.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conwaylife/hashlife"
	"github.com/conwaylife/hashlife/patterns"
	"github.com/conwaylife/hashlife/viewport"
)

var cfgFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hashlifectl",
		Short: "Drive a HashLife Game of Life universe from the command line",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (none is read unless this flag is set)")
	root.PersistentFlags().Uint8("levels", 5, "log2 of the universe's internal side")
	root.PersistentFlags().String("log-level", "info", "zerolog level: debug, info, warn, error")
	_ = viper.BindPFlag("levels", root.PersistentFlags().Lookup("levels"))
	_ = viper.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newRunCmd())
	return root
}

func initConfig() error {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("hashlifectl: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Str("file", cfgFile).Msg("could not read config file")
		}
	}
	return nil
}

func newRunCmd() *cobra.Command {
	var (
		patternName           string
		generations           int
		originX, originY      uint64
		printSnapshot         bool
		snapWidth, snapHeight uint64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Seed a named pattern and step it forward",
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := uint8(viper.GetInt("levels"))
			cfg := hashlife.Config{Levels: levels}
			u, err := hashlife.NewUniverseFromConfig(cfg)
			if err != nil {
				return err
			}

			p, err := patterns.ByName(patternName)
			if err != nil {
				return err
			}
			if err := patterns.Seed(u, p, originX, originY); err != nil {
				return fmt.Errorf("hashlifectl: seeding %s: %w", patternName, err)
			}

			log.Info().Str("pattern", p.Name).Uint8("levels", levels).Msg("seeded universe")

			start := time.Now()
			for i := 0; i < generations; i++ {
				if err := u.Step(); err != nil {
					return fmt.Errorf("hashlifectl: step %d: %w", i, err)
				}
			}
			stats := u.Factory().(*hashlife.NodeFactory).Stats()
			log.Info().
				Int("generations", generations).
				Dur("elapsed", time.Since(start)).
				Int64("compose_hits", stats.ComposeHits).
				Int64("compose_misses", stats.ComposeMisses).
				Int64("memo_hits", stats.MemoHits).
				Int64("memo_misses", stats.MemoMisses).
				Msg("stepped universe")

			if printSnapshot {
				vp := viewport.New(u, 0, 0, snapWidth, snapHeight)
				if err := vp.FullSync(); err != nil {
					return err
				}
				printASCII(vp)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&patternName, "pattern", "glider", "built-in pattern: blinker, block, glider")
	cmd.Flags().IntVar(&generations, "generations", 4, "number of generations to step")
	cmd.Flags().Uint64Var(&originX, "origin-x", 0, "pattern origin x")
	cmd.Flags().Uint64Var(&originY, "origin-y", 0, "pattern origin y")
	cmd.Flags().BoolVar(&printSnapshot, "print", true, "print a snapshot after stepping")
	cmd.Flags().Uint64Var(&snapWidth, "snapshot-width", 32, "snapshot width in cells")
	cmd.Flags().Uint64Var(&snapHeight, "snapshot-height", 32, "snapshot height in cells")

	return cmd
}

func printASCII(vp *viewport.Viewport) {
	cells := vp.Cells()
	var b strings.Builder
	for y := uint64(0); y < vp.Height(); y++ {
		for x := uint64(0); x < vp.Width(); x++ {
			if cells[x*vp.Height()+y] == 1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}
