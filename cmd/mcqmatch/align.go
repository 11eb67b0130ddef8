package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BurntSushi/torsmatch/cmd/util"
	"github.com/BurntSushi/torsmatch/io/tors"
	"github.com/BurntSushi/torsmatch/matching"
	"github.com/BurntSushi/torsmatch/report"
	"github.com/BurntSushi/torsmatch/selection"
	"github.com/BurntSushi/torsmatch/torsion"
)

type alignFlags struct {
	residues bool
	metrics  string
	export   string
}

func newAlignCommand(a *app) *cobra.Command {
	var af alignFlags
	cmd := &cobra.Command{
		Use:   "align left-file right-file [right-file ...]",
		Short: "Align one structure with one or more others.",
		Long: "Every right structure is matched with the left one. A file " +
			"name of '-' reads from stdin. Results are written in the order " +
			"the right structures are given.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.align(cmd.Context(), cmd.OutOrStdout(),
				args[0], args[1:], af)
		},
	}

	flags := cmd.Flags()
	util.MatcherFlags(flags)
	flags.Int("jobs", 1, "The number of structure pairs matched at once.")
	flags.Duration("timeout", 0,
		"Give up after this long. Zero means never.")
	flags.BoolVar(&af.residues, "residues", false,
		"Also write the matched residues of both structures.")
	flags.StringVar(&af.metrics, "metrics", "",
		"Write matcher metrics in the Prometheus text format to this file.")
	flags.StringVar(&af.export, "export", "",
		"Write every matched fragment of both structures as a torsion "+
			"table into this directory.")
	return cmd
}

func (a *app) align(ctx context.Context, out io.Writer,
	leftPath string, rightPaths []string, af alignFlags) error {

	types, err := a.opts.AngleTypes(torsion.DefaultCatalog())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := matching.NewMetrics(reg)
	if err != nil {
		return err
	}
	m, err := matching.New(types, a.opts.Matcher,
		matching.WithLogger(util.Log), matching.WithMetrics(metrics))
	if err != nil {
		return err
	}

	left, err := readSelection(leftPath, types)
	if err != nil {
		return err
	}
	rights := make([]*selection.Selection, len(rightPaths))
	for i, path := range rightPaths {
		if rights[i], err = readSelection(path, types); err != nil {
			return err
		}
	}

	if a.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.Timeout)
		defer cancel()
	}

	util.Log.Info("aligning",
		zap.String("left", left.Label()), zap.Int("right", len(rights)),
		zap.Strings("angles", angleNames(types)),
		zap.Float64("threshold", a.opts.Matcher.Threshold))

	matches := make([]*matching.SelectionMatch, len(rights))
	progress := util.NewProgress(len(rights))
	workers := newMatchWorkers(ctx, m, left, a.opts.Jobs)
	go func() {
		for i, right := range rights {
			workers.enqueue(i, right)
		}
		workers.done()
	}()
	failed := 0
	for res := range workers.results {
		progress.JobDone(res.err)
		if util.Warning(res.err, "Could not match %s with %s",
			left.Label(), rights[res.index].Label()) {
			failed++
			continue
		}
		if res.match.Empty() {
			util.Warnf("The selected structures %s and %s have no matching "+
				"fragments in common.", left.Label(), rights[res.index].Label())
		}
		matches[res.index] = res.match
	}
	progress.Close()
	if failed > 0 {
		return fmt.Errorf("Could not finish alignment: %d of %d matches failed.",
			failed, len(rights))
	}

	for i, match := range matches {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := writeMatch(out, match, af.residues); err != nil {
			return err
		}
		if len(af.export) > 0 {
			if err := exportFragments(af.export, match, types); err != nil {
				return err
			}
		}
	}

	if len(af.metrics) > 0 {
		if err := writeMetrics(af.metrics, reg); err != nil {
			return fmt.Errorf("Could not write metrics to '%s': %s",
				af.metrics, err)
		}
	}
	return nil
}

// readSelection reads a torsion table and warns about residues that cannot
// take part in any comparison.
func readSelection(path string, types []torsion.AngleType) (*selection.Selection, error) {
	sel, err := util.ReadSelection(path)
	if err != nil {
		return nil, fmt.Errorf("Could not read '%s': %s", path, err)
	}
	if n := sel.Undefined(types); n > 0 {
		util.Warnf("%d of %d residues of %s have none of the compared "+
			"angles defined.", n, sel.Len(), sel.Label())
	}
	return sel, nil
}

func writeMatch(w io.Writer, match *matching.SelectionMatch,
	residues bool) error {

	res := report.NewResult(match)
	fmt.Fprintln(w, report.Header(match))
	if res.Status == report.Aligned {
		if err := report.WriteFragments(w, match); err != nil {
			return err
		}
		if residues {
			for _, side := range []matching.Side{matching.Left, matching.Right} {
				if err := report.WriteResidues(w, match, side); err != nil {
					return err
				}
			}
		}
	}
	_, err := fmt.Fprintln(w, report.Summary(res))
	return err
}

// exportFragments writes each side of every fragment of match to its own
// file in dir, named like "1EHZ-1EVV.2.right.tors".
func exportFragments(dir string, match *matching.SelectionMatch,
	types []torsion.AngleType) error {

	for i, frag := range match.Fragments() {
		for _, side := range []matching.Side{matching.Left, matching.Right} {
			start := frag.LeftStart
			if side == matching.Right {
				start = frag.RightStart
			}
			sub := match.Selection(side).Slice(start, start+frag.Len())

			name := fmt.Sprintf("%s-%s.%d.%s.tors",
				match.Left().Name, match.Right().Name, i+1, side)
			f := util.CreateFile(filepath.Join(dir, name))
			if err := tors.Write(f, sub, types); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeMetrics(path string, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	f := util.CreateFile(path)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(f, mf); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

func angleNames(types []torsion.AngleType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name()
	}
	return names
}
