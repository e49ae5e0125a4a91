// seehuhn.de/go/shapefit - approximate images with geometric shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"golang.org/x/image/colornames"

	"seehuhn.de/go/shapefit"
)

// runConfig holds the settings of the run command. Values are read from
// an optional TOML file and then overridden by command line flags.
type runConfig struct {
	Shapes      int    `toml:"shapes"`
	Kind        string `toml:"kind"`
	Restarts    int    `toml:"restarts"`
	MaxAge      int    `toml:"max-age"`
	Random      int    `toml:"random"`
	Alpha       int    `toml:"alpha"`
	Seed        int64  `toml:"seed"`
	Incremental bool   `toml:"incremental"`
	Resize      int    `toml:"resize"`
	Background  string `toml:"background"`

	Every      int    `toml:"every"`
	Out        string `toml:"out"`
	Final      string `toml:"final"`
	PDF        string `toml:"pdf"`
	Checkpoint string `toml:"checkpoint"`
	Resume     bool   `toml:"resume"`
}

func defaultConfig() runConfig {
	return runConfig{
		Shapes:     50,
		Kind:       shapefit.EllipseKind.Name,
		Restarts:   4,
		MaxAge:     100,
		Random:     1000,
		Alpha:      shapefit.DefaultAlpha,
		Seed:       -1,
		Resize:     256,
		Background: "mean",
		Every:      5,
		Out:        "out_%d.png",
		Final:      "final.png",
	}
}

// addFlags registers one flag per config key, with cfg providing the
// defaults.
func addFlags(flags *pflag.FlagSet, cfg *runConfig) {
	flags.String("config", "", "read settings from this TOML file")
	flags.IntVarP(&cfg.Shapes, "shapes", "n", cfg.Shapes, "number of shapes to add")
	flags.StringVarP(&cfg.Kind, "kind", "k", cfg.Kind, "shape kind (see \"shapefit kinds\")")
	flags.IntVar(&cfg.Restarts, "restarts", cfg.Restarts, "hill climbs per shape")
	flags.IntVar(&cfg.MaxAge, "max-age", cfg.MaxAge, "failed mutations before a climb stops")
	flags.IntVar(&cfg.Random, "random", cfg.Random, "random candidates per climb")
	flags.IntVar(&cfg.Alpha, "alpha", cfg.Alpha, "shape opacity (1-255)")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (negative: choose one)")
	flags.BoolVar(&cfg.Incremental, "incremental", cfg.Incremental, "score candidates incrementally")
	flags.IntVar(&cfg.Resize, "resize", cfg.Resize, "scale the input so that no side exceeds this (0: keep)")
	flags.StringVar(&cfg.Background, "background", cfg.Background, "initial canvas colour: mean, a colour name or #rrggbb")
	flags.IntVar(&cfg.Every, "every", cfg.Every, "write a snapshot every this many shapes (0: never)")
	flags.StringVarP(&cfg.Out, "out", "o", cfg.Out, "snapshot file name, %d is replaced by the step")
	flags.StringVar(&cfg.Final, "final", cfg.Final, "file name for the final image")
	flags.StringVar(&cfg.PDF, "pdf", cfg.PDF, "also write snapshots as PDF to this file name")
	flags.StringVar(&cfg.Checkpoint, "checkpoint", cfg.Checkpoint, "write the shapes to this checkpoint file")
	flags.BoolVar(&cfg.Resume, "resume", cfg.Resume, "continue from the checkpoint file")
}

// loadConfig reads a TOML config file into cfg. Keys which are not set in
// the file keep their current values.
func loadConfig(fname string, cfg *runConfig) error {
	meta, err := toml.DecodeFile(fname, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", fname, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys %s", fname, strings.Join(keys, ", "))
	}
	return nil
}

// resolveConfig combines defaults, the config file named by --config and
// the flags which were set explicitly.
func resolveConfig(flags *pflag.FlagSet, fromFlags runConfig) (runConfig, error) {
	fname, err := flags.GetString("config")
	if err != nil {
		return runConfig{}, err
	}

	cfg := defaultConfig()
	if fname != "" {
		if err := loadConfig(fname, &cfg); err != nil {
			return runConfig{}, err
		}
	}

	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "shapes":
			cfg.Shapes = fromFlags.Shapes
		case "kind":
			cfg.Kind = fromFlags.Kind
		case "restarts":
			cfg.Restarts = fromFlags.Restarts
		case "max-age":
			cfg.MaxAge = fromFlags.MaxAge
		case "random":
			cfg.Random = fromFlags.Random
		case "alpha":
			cfg.Alpha = fromFlags.Alpha
		case "seed":
			cfg.Seed = fromFlags.Seed
		case "incremental":
			cfg.Incremental = fromFlags.Incremental
		case "resize":
			cfg.Resize = fromFlags.Resize
		case "background":
			cfg.Background = fromFlags.Background
		case "every":
			cfg.Every = fromFlags.Every
		case "out":
			cfg.Out = fromFlags.Out
		case "final":
			cfg.Final = fromFlags.Final
		case "pdf":
			cfg.PDF = fromFlags.PDF
		case "checkpoint":
			cfg.Checkpoint = fromFlags.Checkpoint
		case "resume":
			cfg.Resume = fromFlags.Resume
		}
	})
	return cfg, nil
}

// runParams are the validated settings of a run.
type runParams struct {
	shapes   int
	kind     *shapefit.Kind
	restarts int
	maxAge   int
	random   int
	alpha    uint8

	// seed is nil if a random seed should be chosen.
	seed *uint64

	// background is nil for the mean colour of the target.
	background *shapefit.RGB
}

var errInvalidConfig = errors.New("invalid configuration")

// validate checks the numeric ranges of cfg and resolves names.
func (cfg *runConfig) validate() (*runParams, error) {
	p := &runParams{}

	kind, ok := shapefit.LookupKind(cfg.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: unknown shape kind %q (available: %s)",
			errInvalidConfig, cfg.Kind, strings.Join(shapefit.Kinds(), ", "))
	}
	p.kind = kind

	counts := []struct {
		name string
		val  int
		dst  *int
	}{
		{"shapes", cfg.Shapes, &p.shapes},
		{"restarts", cfg.Restarts, &p.restarts},
		{"max-age", cfg.MaxAge, &p.maxAge},
		{"random", cfg.Random, &p.random},
		{"every", cfg.Every, nil},
		{"resize", cfg.Resize, nil},
	}
	for _, c := range counts {
		if _, err := safecast.Conv[uint32](c.val); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", errInvalidConfig, c.name, err)
		}
		if c.dst != nil {
			*c.dst = c.val
		}
	}

	alpha, err := safecast.Conv[uint8](cfg.Alpha)
	if err != nil || alpha == 0 {
		return nil, fmt.Errorf("%w: alpha must be between 1 and 255, got %d",
			errInvalidConfig, cfg.Alpha)
	}
	p.alpha = alpha

	if cfg.Seed >= 0 {
		seed, err := safecast.Conv[uint64](cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("%w: seed: %w", errInvalidConfig, err)
		}
		p.seed = &seed
	}

	if cfg.Background != "mean" {
		bg, err := parseColor(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("%w: background: %w", errInvalidConfig, err)
		}
		p.background = &bg
	}

	if cfg.Resume && cfg.Checkpoint == "" {
		return nil, fmt.Errorf("%w: --resume requires --checkpoint", errInvalidConfig)
	}
	if cfg.PDF != "" && !strings.EqualFold(filepath.Ext(cfg.PDF), ".pdf") {
		return nil, fmt.Errorf("%w: PDF file name %q must end in .pdf", errInvalidConfig, cfg.PDF)
	}
	if cfg.Every > 0 && cfg.Out == "" && cfg.PDF == "" && cfg.Checkpoint == "" {
		return nil, fmt.Errorf("%w: snapshots requested, but no output file given", errInvalidConfig)
	}

	return p, nil
}

// parseColor accepts SVG colour names, like "steelblue", and hex
// colours of the form "#rrggbb".
func parseColor(s string) (shapefit.RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return shapefit.RGB{R: c.R, G: c.G, B: c.B}, nil
	}
	var c shapefit.RGB
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err == nil {
			return c, nil
		}
	}
	return c, fmt.Errorf("unknown colour %q", s)
}

// snapshotName substitutes the step number into a file name pattern.
func snapshotName(pattern string, step int) string {
	if strings.Contains(pattern, "%d") {
		return strings.ReplaceAll(pattern, "%d", fmt.Sprint(step))
	}
	return pattern
}
