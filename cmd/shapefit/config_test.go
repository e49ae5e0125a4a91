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
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"seehuhn.de/go/shapefit"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fname, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func newFlags() (*pflag.FlagSet, *runConfig) {
	cfg := defaultConfig()
	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	addFlags(flags, &cfg)
	return flags, &cfg
}

func TestResolveDefaults(t *testing.T) {
	flags, fromFlags := newFlags()
	if err := flags.Parse(nil); err != nil {
		t.Fatal(err)
	}
	cfg, err := resolveConfig(flags, *fromFlags)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != defaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestResolveFileAndFlags(t *testing.T) {
	fname := writeFile(t, "shapefit.toml", `
shapes = 200
kind = "triangle"
max-age = 30
background = "white"
out = "file_%d.png"
`)
	flags, fromFlags := newFlags()
	err := flags.Parse([]string{"--config", fname, "--shapes", "7", "--alpha", "200"})
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := resolveConfig(flags, *fromFlags)
	if err != nil {
		t.Fatal(err)
	}

	want := defaultConfig()
	want.Shapes = 7 // flag beats file
	want.Kind = "triangle"
	want.MaxAge = 30
	want.Background = "white"
	want.Out = "file_%d.png"
	want.Alpha = 200
	if cfg != want {
		t.Errorf("got %+v\nwant %+v", cfg, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":      "shapes = ",
		"unknown key": "colour = \"red\"\n",
		"wrong type":  "shapes = \"many\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			if err := loadConfig(writeFile(t, "c.toml", content), &cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Seed = 17
	cfg.Background = "#ff8000"
	p, err := cfg.validate()
	if err != nil {
		t.Fatal(err)
	}
	if p.kind != shapefit.EllipseKind {
		t.Errorf("kind %v", p.kind)
	}
	if p.alpha != shapefit.DefaultAlpha {
		t.Errorf("alpha %d", p.alpha)
	}
	if p.seed == nil || *p.seed != 17 {
		t.Errorf("seed %v", p.seed)
	}
	if p.background == nil || *p.background != (shapefit.RGB{R: 255, G: 128}) {
		t.Errorf("background %v", p.background)
	}

	cfg = defaultConfig()
	p, err = cfg.validate()
	if err != nil {
		t.Fatal(err)
	}
	if p.seed != nil || p.background != nil {
		t.Error("expected random seed and mean background")
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*runConfig)
	}{
		{"kind", func(c *runConfig) { c.Kind = "hexagon" }},
		{"negative shapes", func(c *runConfig) { c.Shapes = -1 }},
		{"negative max-age", func(c *runConfig) { c.MaxAge = -5 }},
		{"zero alpha", func(c *runConfig) { c.Alpha = 0 }},
		{"large alpha", func(c *runConfig) { c.Alpha = 256 }},
		{"background", func(c *runConfig) { c.Background = "no such colour" }},
		{"resume", func(c *runConfig) { c.Resume = true }},
		{"pdf", func(c *runConfig) { c.PDF = "out.png" }},
		{"no outputs", func(c *runConfig) { c.Out = "" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := defaultConfig()
			c.modify(&cfg)
			_, err := cfg.validate()
			if !errors.Is(err, errInvalidConfig) {
				t.Errorf("expected errInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want shapefit.RGB
		ok   bool
	}{
		{"black", shapefit.RGB{}, true},
		{"White", shapefit.RGB{R: 255, G: 255, B: 255}, true},
		{"steelblue", shapefit.RGB{R: 70, G: 130, B: 180}, true},
		{"#102030", shapefit.RGB{R: 0x10, G: 0x20, B: 0x30}, true},
		{"#10203", shapefit.RGB{}, false},
		{"#gg0000", shapefit.RGB{}, false},
		{"", shapefit.RGB{}, false},
	}
	for _, c := range cases {
		got, err := parseColor(c.in)
		if (err == nil) != c.ok {
			t.Errorf("parseColor(%q): unexpected error state %v", c.in, err)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("parseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSnapshotName(t *testing.T) {
	if got := snapshotName("out_%d.png", 15); got != "out_15.png" {
		t.Errorf("got %q", got)
	}
	if got := snapshotName("out.png", 15); got != "out.png" {
		t.Errorf("got %q", got)
	}
}
