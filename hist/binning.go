// Package hist accumulates weighted events into fixed-width histograms and
// propagates statistical errors through ratios, tail integrals and sums.
//
// A Raw histogram only carries filled contents. Error-aware operations take
// a *Hist, which is obtained from a Raw by choosing an error model
// (Poisson or SumW2Errors).
package hist

import "fmt"

// Binning is N equal-width bins over [Low, High).
type Binning struct {
	N    int     `mapstructure:"bins" yaml:"bins"`
	Low  float64 `mapstructure:"low" yaml:"low"`
	High float64 `mapstructure:"high" yaml:"high"`
}

// Validate checks that the binning describes at least one non-empty bin.
func (b Binning) Validate() error {
	if b.N <= 0 {
		return fmt.Errorf("hist: invalid bin count %d", b.N)
	}
	if !(b.High > b.Low) {
		return fmt.Errorf("hist: invalid range [%v, %v)", b.Low, b.High)
	}
	return nil
}

// Width returns the width of one bin.
func (b Binning) Width() float64 {
	return (b.High - b.Low) / float64(b.N)
}

// LowEdge returns the lower edge of bin i.
func (b Binning) LowEdge(i int) float64 {
	return b.Low + float64(i)*b.Width()
}

// Center returns the center of bin i.
func (b Binning) Center(i int) float64 {
	return b.LowEdge(i) + 0.5*b.Width()
}
