package cuttable

import (
	"errors"
	"fmt"
)

// ErrNoBaseline is returned when summarizing an empty table.
var ErrNoBaseline = errors.New("cuttable: no baseline row")

// Summary is a row with its derived quantities. Percentages are in [0, 100]
// for physical inputs.
type Summary struct {
	Row

	Other  float64
	Purity float64 // signal/(signal+background) %
	DataMC float64
	RelEff float64 // % of the previous row's signal
	AbsEff float64 // % of the baseline signal
}

// Summarize derives a Summary for every row after the first. Row 0 is the
// pre-selection baseline and seeds both efficiency denominators of row 1.
// Zero denominators give zero.
func Summarize(rows []Row) ([]Summary, error) {
	if len(rows) == 0 {
		return nil, ErrNoBaseline
	}
	base := rows[0].Signal
	out := make([]Summary, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		r := rows[i]
		out = append(out, Summary{
			Row:    r,
			Other:  r.Other(),
			Purity: percent(r.Signal, r.Signal+r.TotalBkgd),
			DataMC: ratio(r.Data, r.TotalMC),
			RelEff: percent(r.Signal, rows[i-1].Signal),
			AbsEff: percent(r.Signal, base),
		})
	}
	return out, nil
}

func ratio(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}

func percent(n, d float64) float64 {
	return 100 * ratio(n, d)
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: signal=%.1f bkgd=%.1f purity=%.1f%% eff=%.1f%% rel=%.1f%% data/mc=%.3f",
		s.Stage, s.Signal, s.TotalBkgd, s.Purity, s.AbsEff, s.RelEff, s.DataMC)
}
