package hist

import (
	"math"

	"go-hep.org/x/hep/hbook"
)

// Raw is a filled histogram without an error model.
// It is not safe for concurrent use.
type Raw struct {
	Name string

	h       *hbook.H1D
	binning Binning
	scale   float64
	scaled  bool
}

// NewRaw returns an empty histogram.
func NewRaw(name string, b Binning) (*Raw, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	h := hbook.NewH1D(b.N, b.Low, b.High)
	h.Ann["name"] = name
	return &Raw{Name: name, h: h, binning: b, scale: 1}, nil
}

// Fill adds weight w at x. Values outside the range go to the flow bins.
func (r *Raw) Fill(x, w float64) {
	r.h.Fill(x, w)
}

// Scale applies the global exposure normalization. It may be called once.
func (r *Raw) Scale(f float64) error {
	if r.scaled {
		return ErrAlreadyScaled
	}
	r.h.Scale(f)
	r.scale = f
	r.scaled = true
	return nil
}

// Binning returns the histogram binning.
func (r *Raw) Binning() Binning { return r.binning }

// Entries returns the number of Fill calls.
func (r *Raw) Entries() int64 {
	return r.h.Entries()
}

// Content returns the content of bin i.
func (r *Raw) Content(i int) float64 {
	return r.h.Binning.Bins[i].SumW()
}

// Underflow returns the content below the range.
func (r *Raw) Underflow() float64 { return r.h.Binning.Outflows[0].SumW() }

// Overflow returns the content at or above the upper edge.
func (r *Raw) Overflow() float64 { return r.h.Binning.Outflows[1].SumW() }

// Total returns the content of all bins including the flow bins.
func (r *Raw) Total() float64 {
	sum := r.Underflow() + r.Overflow()
	for i := range r.h.Binning.Bins {
		sum += r.Content(i)
	}
	return sum
}

// Poisson returns the histogram with error √N per bin, N being the content
// before normalization. Normalization therefore keeps relative errors.
func (r *Raw) Poisson() *Hist {
	return r.withErrors(func(sumw, _ float64) float64 {
		if r.scale == 0 {
			return 0
		}
		return math.Sqrt(math.Abs(sumw/r.scale)) * math.Abs(r.scale)
	})
}

// SumW2Errors returns the histogram with the weighted-fill error √Σw².
func (r *Raw) SumW2Errors() *Hist {
	return r.withErrors(func(_, sumw2 float64) float64 {
		return math.Sqrt(sumw2)
	})
}

func (r *Raw) withErrors(errf func(sumw, sumw2 float64) float64) *Hist {
	h := newHist(r.Name, r.binning)
	bin := func(d hbook.Dist1D) Bin {
		return Bin{Content: d.SumW(), Err: errf(d.SumW(), d.SumW2())}
	}
	for i, b := range r.h.Binning.Bins {
		h.bins[i] = bin(b.Dist)
	}
	h.under = bin(r.h.Binning.Outflows[0])
	h.over = bin(r.h.Binning.Outflows[1])
	return h
}
