// SPDX-License-Identifier: MIT
//
// Package config holds the YAML configuration of the mcr command: which
// oracle to run and how, the attribute defaults, the scenario graph to
// build, logging and metrics output.
//
// Load starts from Default, decodes the file strictly (unknown keys are an
// error) and validates the result. Command-line flags are applied on top by
// the caller, which then calls Validate again.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Graph kinds understood by the scenario builder.
const (
	KindCycle    = "cycle"
	KindPath     = "path"
	KindComplete = "complete"
	KindRandom   = "random"
)

// Distribution kinds for generated attributes.
const (
	DistConstant = "constant"
	DistUniform  = "uniform"
	DistInt      = "int"
)

// Config is the root of the YAML document.
type Config struct {
	Solver   Solver   `yaml:"solver"`
	Defaults Defaults `yaml:"defaults"`
	Graph    Graph    `yaml:"graph"`
	Log      Log      `yaml:"log"`
	Metrics  Metrics  `yaml:"metrics"`
}

// Solver selects and tunes the oracle.
type Solver struct {
	Oracle    string        `yaml:"oracle"`
	MaxIter   int           `yaml:"max_iter"`
	Eps       float64       `yaml:"eps"`
	Slack     float64       `yaml:"slack"`
	MaxCycles int           `yaml:"max_cycles"`
	ReadOnly  bool          `yaml:"read_only"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Defaults names the attributes and the values used where they are missing.
type Defaults struct {
	CostKey string  `yaml:"cost_key"`
	TimeKey string  `yaml:"time_key"`
	Cost    float64 `yaml:"cost"`
	Time    float64 `yaml:"time"`
}

// Graph describes the scenario graph.
type Graph struct {
	Kind      string         `yaml:"kind"`
	N         int            `yaml:"n"`
	P         float64        `yaml:"p"`
	Seed      int64          `yaml:"seed"`
	Loops     bool           `yaml:"loops"`
	Cost      *Dist          `yaml:"cost"`
	Time      *Dist          `yaml:"time"`
	Overrides []EdgeOverride `yaml:"overrides"`
}

// Dist describes how an attribute is drawn for every generated edge.
// constant uses Value; uniform draws from [Min, Max); int draws integers in
// [Min, Max].
type Dist struct {
	Kind  string  `yaml:"kind"`
	Value float64 `yaml:"value"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// EdgeOverride sets attributes on one edge after generation, adding the edge
// when it does not exist. Nil fields are left alone.
type EdgeOverride struct {
	From string   `yaml:"from"`
	To   string   `yaml:"to"`
	Cost *float64 `yaml:"cost"`
	Time *float64 `yaml:"time"`
}

// Log configures the zap logger. Level is one of error, warn, info, debug
// (orchestration detail) or trace (per-probe detail). Format is console or json.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Metrics configures the Prometheus text-file export; empty File disables it.
type Metrics struct {
	File string `yaml:"file"`
}

// Default returns a configuration that solves the 5-vertex ring with unit
// attributes using the default oracle.
func Default() Config {
	return Config{
		Solver: Solver{
			Oracle:    "max-parametric",
			MaxIter:   1000,
			Eps:       1e-9,
			Slack:     1e-9,
			MaxCycles: 1 << 16,
		},
		Defaults: Defaults{
			CostKey: "cost",
			TimeKey: "time",
			Cost:    1,
			Time:    1,
		},
		Graph: Graph{
			Kind: KindCycle,
			N:    5,
			P:    0.1,
			Seed: 1,
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate reports every problem at once, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Solver.MaxIter <= 0 {
		add("solver.max_iter must be > 0, got %d", c.Solver.MaxIter)
	}
	if !(c.Solver.Eps > 0) || math.IsInf(c.Solver.Eps, 0) {
		add("solver.eps must be > 0, got %g", c.Solver.Eps)
	}
	if c.Solver.Slack < 0 || math.IsNaN(c.Solver.Slack) {
		add("solver.slack must be ≥ 0, got %g", c.Solver.Slack)
	}
	if c.Solver.MaxCycles < 0 {
		add("solver.max_cycles must be ≥ 0, got %d", c.Solver.MaxCycles)
	}
	if c.Solver.Timeout < 0 {
		add("solver.timeout must be ≥ 0, got %s", c.Solver.Timeout)
	}

	if c.Defaults.CostKey == "" || c.Defaults.TimeKey == "" || c.Defaults.CostKey == c.Defaults.TimeKey {
		add("defaults.cost_key and defaults.time_key must be distinct and non-empty")
	}
	if !finite(c.Defaults.Cost) || !finite(c.Defaults.Time) {
		add("defaults.cost and defaults.time must be finite")
	}

	switch c.Graph.Kind {
	case KindCycle, KindComplete, KindRandom:
		if c.Graph.N < 1 {
			add("graph.n must be ≥ 1 for %s, got %d", c.Graph.Kind, c.Graph.N)
		}
	case KindPath:
		if c.Graph.N < 2 {
			add("graph.n must be ≥ 2 for path, got %d", c.Graph.N)
		}
	default:
		add("graph.kind %q unknown", c.Graph.Kind)
	}
	if c.Graph.P < 0 || c.Graph.P > 1 || math.IsNaN(c.Graph.P) {
		add("graph.p must be in [0,1], got %g", c.Graph.P)
	}
	for _, d := range []struct {
		name string
		dist *Dist
	}{{"graph.cost", c.Graph.Cost}, {"graph.time", c.Graph.Time}} {
		if d.dist != nil {
			if err := d.dist.validate(); err != nil {
				add("%s: %v", d.name, err)
			}
		}
	}
	for i, o := range c.Graph.Overrides {
		if o.From == "" || o.To == "" {
			add("graph.overrides[%d]: from and to are required", i)
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "error", "warn", "info", "debug", "trace":
	default:
		add("log.level %q unknown", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		add("log.format %q unknown", c.Log.Format)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func (d Dist) validate() error {
	switch d.Kind {
	case DistConstant:
		if !finite(d.Value) {
			return fmt.Errorf("value must be finite")
		}
	case DistUniform, DistInt:
		if !finite(d.Min) || !finite(d.Max) || d.Min > d.Max {
			return fmt.Errorf("need finite min ≤ max, got [%g,%g]", d.Min, d.Max)
		}
		if d.Kind == DistUniform && d.Min == d.Max {
			return fmt.Errorf("uniform needs min < max")
		}
	default:
		return fmt.Errorf("kind %q unknown", d.Kind)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
