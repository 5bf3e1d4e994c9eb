// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cycleratio/core"
	"github.com/katalvlaran/cycleratio/internal/config"
	"github.com/katalvlaran/cycleratio/mcr"
	"github.com/katalvlaran/cycleratio/metrics"
	"github.com/katalvlaran/cycleratio/parametric"
)

type solveFlags struct {
	oracle      string
	kind        string
	n           int
	p           float64
	seed        int64
	loops       bool
	readOnly    bool
	maxIter     int
	eps         float64
	timeout     time.Duration
	metricsFile string
	output      string
}

func newSolveCmd(opts *rootOptions) *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build the scenario graph and report its minimum cycle ratio",
		Long: `Build the configured graph, fill missing cost/time attributes with the
defaults, and run the selected oracle from the initial upper bound.

Flags override the matching config keys. When the graph has no cycle the
report carries has_cycle: false and the ratio equals the initial bound.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			f.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSolve(cmd, cfg, opts.verbose, opts.outputJSON, f.output)
		},
	}

	cmd.Flags().StringVar(&f.oracle, "oracle", "", fmt.Sprintf("oracle name %v", mcr.OracleNames()))
	cmd.Flags().StringVar(&f.kind, "kind", "", "graph kind: cycle, path, complete or random")
	cmd.Flags().IntVar(&f.n, "n", 0, "number of vertices")
	cmd.Flags().Float64Var(&f.p, "p", 0, "edge probability for random graphs")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed for graph and attribute draws")
	cmd.Flags().BoolVar(&f.loops, "loops", false, "allow self-loops")
	cmd.Flags().BoolVar(&f.readOnly, "read-only", false, "do not write defaulted attributes back to the graph")
	cmd.Flags().IntVar(&f.maxIter, "max-iter", 0, "cap on oracle probes")
	cmd.Flags().Float64Var(&f.eps, "eps", 0, "bisection stopping tolerance")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "cancel the search after this long (0 disables)")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// apply copies explicitly set flags over cfg.
func (f *solveFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("oracle") {
		cfg.Solver.Oracle = f.oracle
	}
	if set("kind") {
		cfg.Graph.Kind = f.kind
	}
	if set("n") {
		cfg.Graph.N = f.n
	}
	if set("p") {
		cfg.Graph.P = f.p
	}
	if set("seed") {
		cfg.Graph.Seed = f.seed
	}
	if set("loops") {
		cfg.Graph.Loops = f.loops
	}
	if set("read-only") {
		cfg.Solver.ReadOnly = f.readOnly
	}
	if set("max-iter") {
		cfg.Solver.MaxIter = f.maxIter
	}
	if set("eps") {
		cfg.Solver.Eps = f.eps
	}
	if set("timeout") {
		cfg.Solver.Timeout = f.timeout
	}
	if set("metrics-file") {
		cfg.Metrics.File = f.metricsFile
	}
}

func runSolve(cmd *cobra.Command, cfg config.Config, verbose, asJSON bool, output string) error {
	log, flush, err := newLogger(cfg.Log, verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer flush()

	g, err := buildScenario(cfg.Graph, cfg.Defaults)
	if err != nil {
		return err
	}
	log.Info("scenario built", "kind", cfg.Graph.Kind, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	ctx := cmd.Context()
	if cfg.Solver.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Solver.Timeout)
		defer cancel()
	}

	oracle, err := mcr.OracleByName(cfg.Solver.Oracle,
		parametric.WithContext(ctx),
		parametric.WithLogger(log.WithName("oracle")),
		parametric.WithMaxIter(cfg.Solver.MaxIter),
		parametric.WithEps(cfg.Solver.Eps),
		parametric.WithSlack(cfg.Solver.Slack),
		parametric.WithMaxCycles(cfg.Solver.MaxCycles),
	)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	attrOpts := []mcr.Option{
		mcr.WithKeys(cfg.Defaults.CostKey, cfg.Defaults.TimeKey),
		mcr.WithDefaults(cfg.Defaults.Cost, cfg.Defaults.Time),
	}
	bound, err := mcr.InitialBound(g, attrOpts...)
	if err != nil {
		return err
	}

	solveOpts := append([]mcr.Option{
		mcr.WithOracle(oracle),
		mcr.WithLogger(log.WithName("mcr")),
		mcr.WithRecorder(rec),
	}, attrOpts...)
	if cfg.Solver.ReadOnly {
		solveOpts = append(solveOpts, mcr.WithReadOnly())
	}

	start := time.Now()
	res, solveErr := mcr.MinCycleRatio(g, solveOpts...)
	elapsed := time.Since(start)

	if cfg.Metrics.File != "" {
		if err = prometheus.WriteToTextfile(cfg.Metrics.File, reg); err != nil {
			log.Error(err, "metrics export failed", "file", cfg.Metrics.File)
		}
	}
	if solveErr != nil {
		return solveErr
	}

	rep, err := newSolveReport(cfg, g, bound, res, elapsed)
	if err != nil {
		return err
	}
	return outputResult(cmd.OutOrStdout(), rep, output, asJSON)
}

type reportEdge struct {
	From string  `json:"from" yaml:"from"`
	To   string  `json:"to" yaml:"to"`
	Cost float64 `json:"cost" yaml:"cost"`
	Time float64 `json:"time" yaml:"time"`
}

type solveReport struct {
	Oracle     string       `json:"oracle" yaml:"oracle"`
	Vertices   int          `json:"vertices" yaml:"vertices"`
	Edges      int          `json:"edges" yaml:"edges"`
	Bound      float64      `json:"bound" yaml:"bound"`
	HasCycle   bool         `json:"has_cycle" yaml:"has_cycle"`
	Ratio      float64      `json:"ratio" yaml:"ratio"`
	Cycle      []reportEdge `json:"cycle,omitempty" yaml:"cycle,omitempty"`
	Iterations int          `json:"iterations" yaml:"iterations"`
	ElapsedMS  float64      `json:"elapsed_ms" yaml:"elapsed_ms"`
}

func newSolveReport(cfg config.Config, g *core.Graph, bound float64, res parametric.Result, elapsed time.Duration) (solveReport, error) {
	name := cfg.Solver.Oracle
	if name == "" {
		name = mcr.OracleMaxParametric
	}
	rep := solveReport{
		Oracle:     name,
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		Bound:      bound,
		HasCycle:   res.HasCycle(),
		Ratio:      res.Ratio,
		Iterations: res.Iterations,
		ElapsedMS:  float64(elapsed.Microseconds()) / 1000,
	}

	ev := mcr.NewEvaluator(
		mcr.WithKeys(cfg.Defaults.CostKey, cfg.Defaults.TimeKey),
		mcr.WithDefaults(cfg.Defaults.Cost, cfg.Defaults.Time),
	)
	for _, e := range res.Cycle {
		c, t, err := ev.Values(e)
		if err != nil {
			return rep, err
		}
		rep.Cycle = append(rep.Cycle, reportEdge{From: e.From, To: e.To, Cost: c, Time: t})
	}

	return rep, nil
}
