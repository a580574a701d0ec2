package analysis

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decibelcooper/pionsel/cuttable"
	"github.com/decibelcooper/pionsel/event"
	"github.com/decibelcooper/pionsel/hist"
)

// accumulator fills the raw histograms and counts of one partition.
type accumulator struct {
	a      *Analysis
	raws   map[string]*hist.Raw
	rows   []cuttable.Row
	events int64
}

// partial is a finished accumulator: normalized, with Poisson errors.
type partial struct {
	hists  map[string]*hist.Hist
	rows   []cuttable.Row
	events int64
}

func (a *Analysis) newAccumulator() (*accumulator, error) {
	acc := &accumulator{a: a, raws: make(map[string]*hist.Raw)}
	for _, stage := range a.Stages() {
		acc.rows = append(acc.rows, cuttable.Row{Stage: stage})
		for _, p := range event.Populations() {
			for _, v := range a.vars {
				name := popName(stage, p, v.Name)
				r, err := hist.NewRaw(name, v.binning)
				if err != nil {
					return nil, fmt.Errorf("analysis: histogram %q: %w", name, err)
				}
				acc.raws[name] = r
			}
		}
	}
	return acc, nil
}

func (acc *accumulator) consume(s event.Stream) error {
	n := int64(0)
	kind := s.Kind()
	for ev := range s.Events() {
		acc.process(ev, kind)
		n++
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("analysis: stream %q: %w", s.Name(), err)
	}
	acc.events += n
	acc.a.log.Debug("stream consumed",
		zap.String("stream", s.Name()),
		zap.Stringer("kind", kind),
		zap.Int64("events", n))
	return nil
}

func (acc *accumulator) process(ev *event.Event, kind event.Kind) {
	a := acc.a
	pop := ev.Population(kind)
	w := ev.Weight
	if kind == event.KindSimulation && a.shift != nil {
		w *= a.shift(ev)
	}

	reco := a.reco.Reconstruct(ev.Muon(), ev.Pion())
	values := make([]float64, len(a.vars))
	valid := make([]bool, len(a.vars))
	for i, v := range a.vars {
		values[i], valid[i] = v.Value(reco).Value()
	}
	fill := func(stage string) {
		for i, v := range a.vars {
			if valid[i] {
				acc.raws[popName(stage, pop, v.Name)].Fill(values[i], w)
			}
		}
	}

	acc.rows[0].Add(pop, w)
	fill(TruthStage)

	c := Candidate(ev, reco)
	for i, s := range a.selectors {
		if !s.Pass(c) {
			continue
		}
		acc.rows[i+1].Add(pop, w)
		fill(s.Name())
	}
}

func (acc *accumulator) finish() (*partial, error) {
	p := &partial{
		hists:  make(map[string]*hist.Hist, len(acc.raws)),
		rows:   acc.rows,
		events: acc.events,
	}
	for _, stage := range acc.a.Stages() {
		for _, pop := range event.Populations() {
			for _, v := range acc.a.vars {
				name := popName(stage, pop, v.Name)
				r := acc.raws[name]
				// Data is never normalized to exposure.
				if pop != event.Data {
					if err := r.Scale(acc.a.scale); err != nil {
						return nil, fmt.Errorf("analysis: histogram %q: %w", name, err)
					}
				}
				p.hists[name] = r.Poisson()
			}
		}
	}
	for i := range p.rows {
		p.rows[i].ScaleMC(acc.a.scale)
	}
	return p, nil
}

// merge adds o into p. Histograms combine with the quadrature sum.
func (p *partial) merge(o *partial) error {
	for name, h := range o.hists {
		mine, ok := p.hists[name]
		if !ok {
			p.hists[name] = h
			continue
		}
		sum, err := hist.Sum(name, mine, h)
		if err != nil {
			return fmt.Errorf("analysis: merging histogram %q: %w", name, err)
		}
		p.hists[name] = sum
	}
	for i := range p.rows {
		p.rows[i] = p.rows[i].Merge(o.rows[i])
	}
	p.events += o.events
	return nil
}
