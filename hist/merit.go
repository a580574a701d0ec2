package hist

import "math"

// Figures of merit for a lower cut placed at each bin edge. Bin i describes
// the selection x ≥ LowEdge(i), so every input is tail integrated first.
// The results carry no errors.

// Purity returns S/(S+B) of the tail integrals, zero where S+B is zero.
func Purity(name string, sig, bkg *Hist) (*Hist, error) {
	return merit("purity", name, sig, bkg, func(s, b float64) float64 {
		return s / (s + b)
	})
}

// Sensitivity returns S/√(S+B) of the tail integrals, zero where S+B is
// zero.
func Sensitivity(name string, sig, bkg *Hist) (*Hist, error) {
	return merit("sensitivity", name, sig, bkg, func(s, b float64) float64 {
		return s / math.Sqrt(s+b)
	})
}

// TailEfficiency returns the fraction of h kept by each lower cut. The
// denominator includes the flow bins.
func TailEfficiency(name string, h *Hist) *Hist {
	out := Cumulative(name, h, false)
	total := h.Total()
	for i := range out.bins {
		out.bins[i].Content = divide(out.bins[i].Content, total)
	}
	return out
}

func merit(op, name string, sig, bkg *Hist, f func(s, b float64) float64) (*Hist, error) {
	if err := checkShape(op, sig, bkg); err != nil {
		return nil, err
	}
	cs := Cumulative("", sig, false)
	cb := Cumulative("", bkg, false)
	out := newHist(name, sig.binning)
	for i := range out.bins {
		s, b := cs.bins[i].Content, cb.bins[i].Content
		if s+b == 0 {
			continue
		}
		out.bins[i].Content = f(s, b)
	}
	return out, nil
}
