package analysis

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/decibelcooper/pionsel/cuttable"
	"github.com/decibelcooper/pionsel/event"
	"github.com/decibelcooper/pionsel/hist"
)

// Result is the output of one run.
type Result struct {
	// Hists holds every filled and derived histogram by name.
	Hists  map[string]*hist.Hist
	Rows   []cuttable.Row
	Events int64
}

// Summaries returns the cut table rows after the truth row.
func (r *Result) Summaries() ([]cuttable.Summary, error) {
	return cuttable.Summarize(r.Rows)
}

// Names returns the histogram names in lexical order.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Hists))
	for n := range r.Hists {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Hist returns the named histogram.
func (r *Result) Hist(parts ...string) (*hist.Hist, bool) {
	h, ok := r.Hists[HistName(parts...)]
	return h, ok
}

func (a *Analysis) derive(p *partial) (*Result, error) {
	res := &Result{Hists: p.hists, Rows: p.rows, Events: p.events}
	put := func(name string, h *hist.Hist, err error) error {
		if err != nil {
			a.log.Error("deriving histogram failed", zap.String("histogram", name), zap.Error(err))
			return fmt.Errorf("analysis: histogram %q: %w", name, err)
		}
		res.Hists[name] = h
		return nil
	}
	get := func(stage string, pop event.Population, v string) *hist.Hist {
		return p.hists[popName(stage, pop, v)]
	}

	for _, stage := range a.Stages() {
		for _, v := range a.vars {
			signal := get(stage, event.Signal, v.Name)
			data := get(stage, event.Data, v.Name)
			var bkgParts []*hist.Hist
			for _, pop := range event.Backgrounds() {
				bkgParts = append(bkgParts, get(stage, pop, v.Name))
			}

			name := HistName(stage, GroupBackground, v.Name)
			bkg, err := hist.SumAll(name, bkgParts...)
			if err := put(name, bkg, err); err != nil {
				return nil, err
			}
			name = HistName(stage, GroupMC, v.Name)
			mc, err := hist.Sum(name, signal, bkg)
			if err := put(name, mc, err); err != nil {
				return nil, err
			}

			name = HistName(stage, GroupDataMC, v.Name)
			h, err := hist.Ratio(name, data, mc)
			if err := put(name, h, err); err != nil {
				return nil, err
			}
			name = HistName(stage, GroupBkgSub, v.Name)
			h, err = hist.Sub(name, data, bkg)
			if err := put(name, h, err); err != nil {
				return nil, err
			}

			if stage != TruthStage {
				name = HistName(stage, GroupEfficiency, v.Name)
				h, err = hist.CorrelatedRatio(name, signal, get(TruthStage, event.Signal, v.Name))
				if err := put(name, h, err); err != nil {
					return nil, err
				}
			}

			if v.Name != VarRecoT {
				continue
			}
			for label, src := range map[string]*hist.Hist{
				event.Signal.String(): signal,
				GroupMC:               mc,
				event.Data.String():   data,
			} {
				name = HistName(stage, GroupCumulative, label, v.Name)
				res.Hists[name] = hist.Cumulative(name, src, true)
			}
			name = HistName(stage, GroupPurity, v.Name)
			h, err = hist.Purity(name, signal, bkg)
			if err := put(name, h, err); err != nil {
				return nil, err
			}
			name = HistName(stage, GroupSensitivity, v.Name)
			h, err = hist.Sensitivity(name, signal, bkg)
			if err := put(name, h, err); err != nil {
				return nil, err
			}
		}
	}

	a.log.Info("analysis finished",
		zap.Int64("events", res.Events),
		zap.Int("histograms", len(res.Hists)),
		zap.Int("stages", len(res.Rows)))
	return res, nil
}
