package matching

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BurntSushi/torsmatch/selection"
	"github.com/BurntSushi/torsmatch/torsion"
)

// Matcher finds corresponding fragments between pairs of selections. A
// Matcher has no mutable state; it may be used by many goroutines at once.
type Matcher struct {
	types   []torsion.AngleType
	conf    Config
	workers int
	log     *zap.Logger
	metrics *Metrics
}

// Option customizes a Matcher.
type Option func(*Matcher)

// WithLogger sets the logger used for debugging output.
func WithLogger(log *zap.Logger) Option {
	return func(m *Matcher) {
		if log != nil {
			m.log = log
		}
	}
}

// WithMetrics records every match in the metrics given.
func WithMetrics(metrics *Metrics) Option {
	return func(m *Matcher) {
		m.metrics = metrics
	}
}

// New creates a matcher comparing residues over the given angle types.
// An error wrapping ErrInvalidConfig is returned if the configuration is
// invalid or no (valid) angle types are given.
func New(types []torsion.AngleType, conf Config, opts ...Option) (*Matcher, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: no torsion angles to compare", ErrInvalidConfig)
	}
	for _, t := range types {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown torsion angle %s",
				ErrInvalidConfig, t)
		}
	}

	m := &Matcher{
		types:   append([]torsion.AngleType(nil), types...),
		conf:    conf,
		workers: conf.workers(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Config returns the configuration of the matcher.
func (m *Matcher) Config() Config {
	return m.conf
}

// Angles returns the angle types the matcher compares.
func (m *Matcher) Angles() []torsion.AngleType {
	return append([]torsion.AngleType(nil), m.types...)
}

// Match finds the fragments of left and right with corresponding geometry.
//
// If either selection is empty, or nothing corresponds, the match returned
// has no fragments. The only error is the context's, if it is canceled
// before the distance matrix is complete; no partial match is returned.
func (m *Matcher) Match(ctx context.Context,
	left, right *selection.Selection) (*SelectionMatch, error) {

	start := time.Now()
	log := m.log.With(
		zap.String("left", left.Label()), zap.String("right", right.Label()))

	if left.Len() == 0 || right.Len() == 0 {
		log.Debug("empty selection, nothing to match",
			zap.Int("left_len", left.Len()), zap.Int("right_len", right.Len()))
		m.metrics.observe(OutcomeEmpty, 0, 0, time.Since(start).Seconds())
		return newSelectionMatch(left, right, nil), nil
	}

	cells := left.Len() * right.Len()
	D, err := distances(ctx, m.workers, left, right, m.types)
	if err != nil {
		log.Debug("distance matrix canceled", zap.Error(err))
		m.metrics.observe(OutcomeCanceled, 0, 0, time.Since(start).Seconds())
		return nil, err
	}
	log.Debug("distance matrix computed",
		zap.Int("rows", D.Rows()), zap.Int("cols", D.Cols()),
		zap.Duration("elapsed", time.Since(start)))

	ext := extender{
		D:         D,
		left:      left,
		right:     right,
		threshold: m.conf.Threshold,
		gaps:      m.conf.GapTolerance,
	}

	// Every anchor on a diagonal inside an already extended fragment would
	// extend to that same fragment, so it is skipped.
	cols := right.Len()
	covered := make([]bool, cells)
	var candidates []Fragment
	anchors := 0
	for i := 0; i < left.Len(); i++ {
		for j := 0; j < cols; j++ {
			if D.Get(i, j) > m.conf.Threshold {
				continue
			}
			anchors++
			if covered[i*cols+j] {
				continue
			}
			f := ext.extend(i, j)
			for k := 0; k < f.Len(); k++ {
				covered[(f.LeftStart+k)*cols+f.RightStart+k] = true
			}
			if f.Len() >= m.conf.MinLength {
				candidates = append(candidates, f)
			}
		}
	}

	frags := resolveOverlaps(candidates, m.conf.MinLength)
	match := newSelectionMatch(left, right, frags)

	outcome := OutcomeFound
	if match.Empty() {
		outcome = OutcomeEmpty
	}
	m.metrics.observe(outcome, cells, len(frags), time.Since(start).Seconds())
	log.Debug("selections matched",
		zap.Int("anchors", anchors),
		zap.Int("candidates", len(candidates)),
		zap.Int("fragments", len(frags)),
		zap.Duration("elapsed", time.Since(start)))
	return match, nil
}
