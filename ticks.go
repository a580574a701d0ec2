package pionsel

import (
	"math"
	"slices"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks labels round values spaced by 1, 2, 3, 4, 5, 6 or 8 times a
// power of ten, with unlabelled minor ticks in between. The labels carry
// only the digits the spacing needs.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	if !(max > min) || math.IsInf(max-min, 0) {
		return nil
	}
	n := t.NSuggestedTicks
	if n < 2 {
		n = 4
	}

	tens := math.Pow10(int(math.Floor(math.Log10(max - min))))
	span := (max - min) / tens
	for span < float64(n-1) {
		tens /= 10
		span = (max - min) / tens
	}

	mult := int(span / float64(n-1))
	switch mult {
	case 7:
		mult = 6
	case 9:
		mult = 8
	}
	major := float64(mult) * tens
	minor := major / float64(minorDivisions(mult))
	top := math.Max(math.Abs(min), math.Abs(max))
	prec := int(math.Ceil(math.Log10(top)) - math.Floor(math.Log10(major)))

	var ticks []plot.Tick
	for _, v := range steps(min, max, major) {
		r := round(v, prec)
		ticks = append(ticks, plot.Tick{Value: r, Label: strconv.FormatFloat(r, 'g', -1, 64)})
	}
	for _, v := range steps(min, max, minor) {
		onMajor := slices.ContainsFunc(ticks, func(tk plot.Tick) bool {
			return math.Abs(tk.Value-v) < minor*1e-6
		})
		if !onMajor {
			ticks = append(ticks, plot.Tick{Value: round(v, prec+1)})
		}
	}
	return ticks
}

func minorDivisions(mult int) int {
	switch mult {
	case 3, 6:
		return 3
	case 5:
		return 5
	}
	return 2
}

// steps returns the multiples of delta within [min, max].
func steps(min, max, delta float64) []float64 {
	const eps = 1e-9
	var out []float64
	for k := math.Ceil(min/delta - eps); k <= math.Floor(max/delta+eps); k++ {
		out = append(out, k*delta)
	}
	return out
}

// round keeps prec significant decimals and never returns negative zero.
func round(x float64, prec int) float64 {
	if x == 0 {
		return 0
	}
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	scaled := x * pow
	if math.IsInf(scaled, 0) {
		return x
	}
	if x < 0 {
		x = math.Ceil(scaled - 0.5)
	} else {
		x = math.Floor(scaled + 0.5)
	}
	if x == 0 {
		return 0
	}
	return x / pow
}
