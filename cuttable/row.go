// Package cuttable builds the selection-cascade table: per-stage counts by
// population and the efficiency, purity and Data/MC rows derived from them.
package cuttable

import "github.com/decibelcooper/pionsel/event"

// Row holds the weighted counts of one cascade stage.
type Row struct {
	Stage  string
	Signal float64

	QE  float64
	RES float64
	DIS float64
	MEC float64
	NC  float64

	TotalBkgd float64
	TotalMC   float64
	Data      float64
}

// Add counts weight w for population p.
func (r *Row) Add(p event.Population, w float64) {
	switch p {
	case event.Data:
		r.Data += w
		return
	case event.Signal:
		r.Signal += w
	case event.QE:
		r.QE += w
	case event.RES:
		r.RES += w
	case event.DIS:
		r.DIS += w
	case event.MEC:
		r.MEC += w
	case event.NC:
		r.NC += w
	}
	if p.IsBackground() {
		r.TotalBkgd += w
	}
	r.TotalMC += w
}

// Other is the background not attributed to a named interaction type.
func (r Row) Other() float64 {
	return r.TotalBkgd - (r.QE + r.RES + r.DIS + r.MEC + r.NC)
}

// ScaleMC multiplies every simulated count by f. Data is untouched.
func (r *Row) ScaleMC(f float64) {
	r.Signal *= f
	r.QE *= f
	r.RES *= f
	r.DIS *= f
	r.MEC *= f
	r.NC *= f
	r.TotalBkgd *= f
	r.TotalMC *= f
}

// Merge returns the sum of two rows of the same stage.
func (r Row) Merge(o Row) Row {
	return Row{
		Stage:     r.Stage,
		Signal:    r.Signal + o.Signal,
		QE:        r.QE + o.QE,
		RES:       r.RES + o.RES,
		DIS:       r.DIS + o.DIS,
		MEC:       r.MEC + o.MEC,
		NC:        r.NC + o.NC,
		TotalBkgd: r.TotalBkgd + o.TotalBkgd,
		TotalMC:   r.TotalMC + o.TotalMC,
		Data:      r.Data + o.Data,
	}
}
