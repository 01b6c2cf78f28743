package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"karnaugh/internal/cover/exact"
	"karnaugh/internal/verify"
	"karnaugh/pkg/core"
	"karnaugh/pkg/kmap"
)

type sweepOptions struct {
	vars    int
	trials  int
	workers int
	seed    int64
	density float64
	dc      float64
	top     int
	output  string
}

type trialResult struct {
	Trial       int    `json:"trial"`
	Minterms    []int  `json:"minterms"`
	DontCares   []int  `json:"dontCares"`
	Greedy      string `json:"greedy"`
	Exact       string `json:"exact"`
	GreedyTerms int    `json:"greedyTerms"`
	ExactTerms  int    `json:"exactTerms"`
}

func (r trialResult) gap() int { return r.GreedyTerms - r.ExactTerms }

type sweepReport struct {
	Vars            int           `json:"vars"`
	Trials          int           `json:"trials"`
	Seed            int64         `json:"seed"`
	MeanGreedyTerms float64       `json:"meanGreedyTerms"`
	MeanExactTerms  float64       `json:"meanExactTerms"`
	Suboptimal      int           `json:"suboptimal"`
	Worst           []trialResult `json:"worst"`
}

func newSweepCmd() *cobra.Command {
	o := sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare the greedy cover against the exact one on random functions",
		Long: `The sweep command draws random truth tables, minimizes each with the
        greedy and the exact coverer, verifies both results and reports how
        often greedy selection uses more terms than necessary.

        $ kmap-cli sweep -n 5 --trials 500 --density 0.5 --dc 0.1
        `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := o.run(cmd)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), o.output, report, report.writeText)
		},
	}
	cmd.Flags().IntVarP(&o.vars, "vars", "n", kmap.DefaultConfig().Vars, "number of variables (2-6)")
	cmd.Flags().IntVar(&o.trials, "trials", 200, "number of random functions")
	cmd.Flags().IntVar(&o.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "seed of the first trial; trial i uses seed+i")
	cmd.Flags().Float64Var(&o.density, "density", 0.5, "probability that a cared-for minterm is true")
	cmd.Flags().Float64Var(&o.dc, "dc", 0.1, "probability that a minterm is a don't-care")
	cmd.Flags().IntVar(&o.top, "top", 5, "number of worst trials to list")
	cmd.Flags().StringVarP(&o.output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}

func (o sweepOptions) run(cmd *cobra.Command) (sweepReport, error) {
	l, err := kmap.NewLayout(o.vars)
	if err != nil {
		return sweepReport{}, err
	}
	if o.trials < 0 {
		return sweepReport{}, errors.Errorf("trials must not be negative, got %d", o.trials)
	}
	workers := o.workers
	if workers < 1 {
		workers = 1
	}
	log.WithFields(log.Fields{
		"vars":    o.vars,
		"trials":  o.trials,
		"workers": workers,
	}).Info("sweeping random functions")

	start := time.Now()
	results := make([]trialResult, o.trials)
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(workers)
	for i := 0; i < o.trials; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runTrial(l, i, o.seed+int64(i), o.density, o.dc)
			if err != nil {
				return errors.Wrapf(err, "trial %d", i)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sweepReport{}, err
	}
	log.WithField("elapsed", time.Since(start)).Debug("sweep finished")
	return summarize(o, results), nil
}

func runTrial(l kmap.Layout, trial int, seed int64, density, dc float64) (trialResult, error) {
	ones, dcs := core.NewRNG(seed).Table(l.Vars, density, dc)
	greedy, err := kmap.Simplify(l, ones, dcs, kmap.Greedy())
	if err != nil {
		return trialResult{}, err
	}
	if err := verify.Check(l, greedy, ones, dcs); err != nil {
		return trialResult{}, errors.Wrap(err, "greedy")
	}
	best, err := kmap.Simplify(l, ones, dcs, exact.New())
	if err != nil {
		return trialResult{}, err
	}
	if err := verify.Check(l, best, ones, dcs); err != nil {
		return trialResult{}, errors.Wrap(err, "exact")
	}
	return trialResult{
		Trial:       trial,
		Minterms:    ones,
		DontCares:   dcs,
		Greedy:      greedy.Expression,
		Exact:       best.Expression,
		GreedyTerms: len(greedy.Cover),
		ExactTerms:  len(best.Cover),
	}, nil
}

func summarize(o sweepOptions, results []trialResult) sweepReport {
	report := sweepReport{Vars: o.vars, Trials: len(results), Seed: o.seed, Worst: []trialResult{}}
	if len(results) == 0 {
		return report
	}
	var greedyTerms, exactTerms int
	var worse []trialResult
	for _, r := range results {
		greedyTerms += r.GreedyTerms
		exactTerms += r.ExactTerms
		if r.gap() > 0 {
			report.Suboptimal++
			worse = append(worse, r)
		}
	}
	report.MeanGreedyTerms = float64(greedyTerms) / float64(len(results))
	report.MeanExactTerms = float64(exactTerms) / float64(len(results))

	sort.SliceStable(worse, func(i, j int) bool { return worse[i].gap() > worse[j].gap() })
	if o.top >= 0 && len(worse) > o.top {
		worse = worse[:o.top]
	}
	report.Worst = append(report.Worst, worse...)
	return report
}

func (r sweepReport) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d trials over %d variables (seed %d)\n", r.Trials, r.Vars, r.Seed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "mean terms: greedy %.3f, exact %.3f\n", r.MeanGreedyTerms, r.MeanExactTerms); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "greedy used extra terms in %d trials\n", r.Suboptimal); err != nil {
		return err
	}
	for _, t := range r.Worst {
		if _, err := fmt.Fprintf(w, "trial %d (+%d): greedy %s | exact %s\n", t.Trial, t.gap(), t.Greedy, t.Exact); err != nil {
			return err
		}
	}
	return nil
}
