package hist

import (
	"math"

	"go-hep.org/x/hep/hbook"
)

// Bin is the content of one bin and its statistical error.
type Bin struct {
	Content float64
	Err     float64
}

// Hist is a histogram carrying a per-bin error.
// Content may be negative; Err never is.
type Hist struct {
	Name string

	binning Binning
	bins    []Bin
	under   Bin
	over    Bin
}

func newHist(name string, b Binning) *Hist {
	return &Hist{Name: name, binning: b, bins: make([]Bin, b.N)}
}

// Binning returns the histogram binning.
func (h *Hist) Binning() Binning { return h.binning }

// Len returns the number of in-range bins.
func (h *Hist) Len() int { return len(h.bins) }

// Bin returns bin i.
func (h *Hist) Bin(i int) Bin { return h.bins[i] }

// Underflow returns the underflow bin.
func (h *Hist) Underflow() Bin { return h.under }

// Overflow returns the overflow bin.
func (h *Hist) Overflow() Bin { return h.over }

// Total returns the content of all bins including the flow bins.
func (h *Hist) Total() float64 {
	sum := h.under.Content + h.over.Content
	for _, b := range h.bins {
		sum += b.Content
	}
	return sum
}

// Contents returns the in-range bin contents.
func (h *Hist) Contents() []float64 {
	out := make([]float64, len(h.bins))
	for i, b := range h.bins {
		out[i] = b.Content
	}
	return out
}

// Errors returns the in-range bin errors.
func (h *Hist) Errors() []float64 {
	out := make([]float64, len(h.bins))
	for i, b := range h.bins {
		out[i] = b.Err
	}
	return out
}

// Clone returns a deep copy of h under a new name.
func (h *Hist) Clone(name string) *Hist {
	c := newHist(name, h.binning)
	copy(c.bins, h.bins)
	c.under, c.over = h.under, h.over
	return c
}

// Poisson overwrites every error, flow bins included, with √|content|.
// Errors stored by an earlier model are discarded.
func (h *Hist) Poisson() {
	h.apply(func(b Bin) Bin {
		b.Err = math.Sqrt(math.Abs(b.Content))
		return b
	})
}

// Scale multiplies contents and errors by f.
func (h *Hist) Scale(f float64) {
	h.apply(func(b Bin) Bin {
		return Bin{Content: b.Content * f, Err: b.Err * math.Abs(f)}
	})
}

func (h *Hist) apply(f func(Bin) Bin) {
	for i := range h.bins {
		h.bins[i] = f(h.bins[i])
	}
	h.under = f(h.under)
	h.over = f(h.over)
}

// binary applies f bin by bin, flow bins included, into a new histogram.
func binary(name string, a, b *Hist, f func(x, y Bin) Bin) *Hist {
	out := newHist(name, a.binning)
	for i := range a.bins {
		out.bins[i] = f(a.bins[i], b.bins[i])
	}
	out.under = f(a.under, b.under)
	out.over = f(a.over, b.over)
	return out
}

// H1D converts h to an hbook histogram. Errors are stored as Σw² = err².
func (h *Hist) H1D() *hbook.H1D {
	hh := hbook.NewH1D(h.binning.N, h.binning.Low, h.binning.High)
	hh.Ann["name"] = h.Name

	set := func(d *hbook.Dist1D, b Bin) {
		d.Dist.SumW = b.Content
		d.Dist.SumW2 = b.Err * b.Err
		d.Dist.N = effEntries(b)
	}
	var all Bin
	for i, b := range h.bins {
		set(&hh.Binning.Bins[i].Dist, b)
		all.Content += b.Content
		all.Err = math.Hypot(all.Err, b.Err)
	}
	set(&hh.Binning.Outflows[0], h.under)
	set(&hh.Binning.Outflows[1], h.over)
	set(&hh.Binning.Dist, all)
	return hh
}

// FromH1D builds a histogram from an hbook histogram, taking errors from Σw².
func FromH1D(name string, hh *hbook.H1D) *Hist {
	h := newHist(name, Binning{N: hh.Len(), Low: hh.XMin(), High: hh.XMax()})
	bin := func(d hbook.Dist1D) Bin {
		return Bin{Content: d.SumW(), Err: math.Sqrt(d.SumW2())}
	}
	for i, b := range hh.Binning.Bins {
		h.bins[i] = bin(b.Dist)
	}
	h.under = bin(hh.Binning.Outflows[0])
	h.over = bin(hh.Binning.Outflows[1])
	return h
}

func effEntries(b Bin) int64 {
	if b.Err == 0 {
		if b.Content != 0 {
			return 1
		}
		return 0
	}
	return int64(math.Round(b.Content * b.Content / (b.Err * b.Err)))
}
