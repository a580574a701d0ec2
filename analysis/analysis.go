// Package analysis runs the event selection: every event is reconstructed,
// passed through each stage of the cut cascade and binned per population,
// then the stage histograms are combined into ratios, tail integrals and the
// cut table.
package analysis

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/decibelcooper/pionsel/config"
	"github.com/decibelcooper/pionsel/event"
	"github.com/decibelcooper/pionsel/hist"
	"github.com/decibelcooper/pionsel/kinematics"
	"github.com/decibelcooper/pionsel/selection"
)

type binnedVar struct {
	Variable
	binning hist.Binning
}

// Analysis holds the immutable run configuration.
type Analysis struct {
	reco      *kinematics.Reconstructor
	selectors []*selection.Selector
	vars      []binnedVar
	scale     float64
	shift     func(*event.Event) float64
	log       *zap.Logger
}

// Option configures an Analysis.
type Option func(*Analysis)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analysis) { a.log = l }
}

// WithWeightShift multiplies every simulated event weight by f(event).
func WithWeightShift(f func(*event.Event) float64) Option {
	return func(a *Analysis) { a.shift = f }
}

// New builds an analysis from a validated configuration.
func New(cfg config.Config, opts ...Option) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	beam, err := cfg.BeamDir()
	if err != nil {
		return nil, err
	}

	policy := selection.ShortCircuit
	if cfg.Exhaustive {
		policy = selection.Exhaustive
	}

	a := &Analysis{
		reco:  kinematics.NewReconstructor(beam, cfg.Kalman),
		scale: cfg.Scale,
		log:   zap.NewNop(),
	}
	for _, s := range cfg.Stages {
		if s.Name == TruthStage {
			return nil, fmt.Errorf("analysis: stage name %q is reserved", TruthStage)
		}
		mask, err := selection.ParseMask(s.Criteria)
		if err != nil {
			return nil, fmt.Errorf("analysis: stage %q: %w", s.Name, err)
		}
		a.selectors = append(a.selectors, selection.New(s.Name, mask, cfg.Thresholds, selection.WithPolicy(policy)))
	}

	names := make([]string, 0, len(cfg.Binning))
	for name := range cfg.Binning {
		names = append(names, name)
	}
	sort.Strings(names)
	seen := make(map[string]bool)
	for _, name := range names {
		v, ok := LookupVariable(name)
		if !ok {
			return nil, fmt.Errorf("analysis: unknown variable %q", name)
		}
		if seen[v.Name] {
			return nil, fmt.Errorf("analysis: variable %q binned twice", v.Name)
		}
		seen[v.Name] = true
		a.vars = append(a.vars, binnedVar{Variable: v, binning: cfg.Binning[name]})
	}

	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Stages returns the stage names in table order, truth first.
func (a *Analysis) Stages() []string {
	out := []string{TruthStage}
	for _, s := range a.selectors {
		out = append(out, s.Name())
	}
	return out
}

// Selectors returns the configured cascade.
func (a *Analysis) Selectors() []*selection.Selector {
	return append([]*selection.Selector(nil), a.selectors...)
}

// Run consumes every stream in order on the calling goroutine.
func (a *Analysis) Run(ctx context.Context, streams ...event.Stream) (*Result, error) {
	if err := validate(streams); err != nil {
		return nil, err
	}
	acc, err := a.newAccumulator()
	if err != nil {
		return nil, err
	}
	for _, s := range streams {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := acc.consume(s); err != nil {
			return nil, err
		}
	}
	p, err := acc.finish()
	if err != nil {
		return nil, err
	}
	return a.derive(p)
}

// Candidate returns the selector input for ev.
func Candidate(ev *event.Event, reco kinematics.Reco) selection.Candidate {
	return selection.Candidate{
		MuonID:     ev.MuonID,
		PionID:     ev.PionID,
		KinScore:   ev.KinScore,
		HitScore:   ev.HitScore,
		RecoT:      reco.RecoT,
		PionCalE:   ev.PionCalE,
		MuonLength: ev.MuonLength,
	}
}

func validate(streams []event.Stream) error {
	for _, s := range streams {
		if err := event.Validate(s); err != nil {
			return fmt.Errorf("analysis: %w", err)
		}
	}
	return nil
}
