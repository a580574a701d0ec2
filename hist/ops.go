package hist

import "math"

// divide is the plain bin division: zero when the denominator is zero.
func divide(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}

// Ratio divides num by den treating them as uncorrelated counts:
// err = ratio·√(1/num + 1/den). When exactly one operand is zero the
// content is the plain division and the error is zero; when both are zero
// content and error are zero.
func Ratio(name string, num, den *Hist) (*Hist, error) {
	if err := checkShape("ratio", num, den); err != nil {
		return nil, err
	}
	return binary(name, num, den, func(n, d Bin) Bin {
		c := divide(n.Content, d.Content)
		switch {
		case n.Content != 0 && d.Content != 0:
			return Bin{
				Content: c,
				Err:     math.Abs(c) * math.Sqrt(1/math.Abs(n.Content)+1/math.Abs(d.Content)),
			}
		case n.Content == 0 && d.Content == 0:
			return Bin{}
		default:
			return Bin{Content: c}
		}
	}), nil
}

// CorrelatedRatio divides num by den treating num as a fixed prediction, so
// only the relative error of den propagates: err = ratio·(errDen/den).
// Zero operands follow the same branches as Ratio. Only in-range bins are
// divided; the flow bins are those of num.
func CorrelatedRatio(name string, num, den *Hist) (*Hist, error) {
	if err := checkShape("correlated ratio", num, den); err != nil {
		return nil, err
	}
	out := binary(name, num, den, func(n, d Bin) Bin {
		c := divide(n.Content, d.Content)
		switch {
		case n.Content != 0 && d.Content != 0:
			return Bin{Content: c, Err: math.Abs(c) * d.Err / math.Abs(d.Content)}
		case n.Content == 0 && d.Content == 0:
			return Bin{}
		default:
			return Bin{Content: c}
		}
	})
	out.under, out.over = num.under, num.over
	return out, nil
}

// Cumulative returns the tail integral of h: bin i holds the sum of the
// contents of bins i through the last in-range bin. With errors set, the
// error of bin i is √(cumulative content); otherwise errors are zero.
// The flow bins of the result are empty.
func Cumulative(name string, h *Hist, errors bool) *Hist {
	out := newHist(name, h.binning)
	acc := 0.0
	for i := len(h.bins) - 1; i >= 0; i-- {
		acc += h.bins[i].Content
		out.bins[i].Content = acc
		if errors {
			out.bins[i].Err = math.Sqrt(math.Abs(acc))
		}
	}
	return out
}

// Sum adds a and b bin by bin with errors in quadrature.
func Sum(name string, a, b *Hist) (*Hist, error) {
	if err := checkShape("sum", a, b); err != nil {
		return nil, err
	}
	return binary(name, a, b, func(x, y Bin) Bin {
		return Bin{Content: x.Content + y.Content, Err: math.Hypot(x.Err, y.Err)}
	}), nil
}

// Sub subtracts b from a with errors in quadrature.
func Sub(name string, a, b *Hist) (*Hist, error) {
	if err := checkShape("subtraction", a, b); err != nil {
		return nil, err
	}
	return binary(name, a, b, func(x, y Bin) Bin {
		return Bin{Content: x.Content - y.Content, Err: math.Hypot(x.Err, y.Err)}
	}), nil
}

// SumAll folds Sum over hs. It needs at least one histogram.
func SumAll(name string, hs ...*Hist) (*Hist, error) {
	if len(hs) == 0 {
		return nil, ErrEmpty
	}
	acc := hs[0].Clone(name)
	for _, h := range hs[1:] {
		var err error
		acc, err = Sum(name, acc, h)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
