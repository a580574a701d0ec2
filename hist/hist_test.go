package hist

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unit = Binning{N: 4, Low: 0, High: 4}

// fill returns a histogram with counts[i] unit entries in bin i.
func fill(t *testing.T, name string, counts ...int) *Raw {
	t.Helper()
	r, err := NewRaw(name, Binning{N: len(counts), Low: 0, High: float64(len(counts))})
	require.NoError(t, err)
	for i, n := range counts {
		for j := 0; j < n; j++ {
			r.Fill(float64(i)+0.5, 1)
		}
	}
	return r
}

func TestBinningValidate(t *testing.T) {
	assert.NoError(t, unit.Validate())
	assert.Error(t, Binning{N: 0, Low: 0, High: 1}.Validate())
	assert.Error(t, Binning{N: 2, Low: 1, High: 1}.Validate())
	assert.InDelta(t, 1.5, unit.Center(1), 1e-12)
	assert.InDelta(t, 3, unit.LowEdge(3), 1e-12)

	_, err := NewRaw("bad", Binning{N: -1})
	assert.Error(t, err)
}

func TestRawFlowsAndTotal(t *testing.T) {
	r, err := NewRaw("x", unit)
	require.NoError(t, err)

	r.Fill(-1, 2)
	r.Fill(0.5, 1)
	r.Fill(3.5, 1.5)
	r.Fill(4, 3) // upper edge is overflow
	r.Fill(10, 1)

	assert.Equal(t, 2.0, r.Underflow())
	assert.Equal(t, 4.0, r.Overflow())
	assert.Equal(t, 1.0, r.Content(0))
	assert.Equal(t, 1.5, r.Content(3))
	assert.Equal(t, 8.5, r.Total())
	assert.Equal(t, int64(5), r.Entries())
}

func TestRawScaleOnce(t *testing.T) {
	r := fill(t, "x", 4, 9, 0, 1)
	require.NoError(t, r.Scale(0.5))
	assert.ErrorIs(t, r.Scale(2), ErrAlreadyScaled)
	assert.Equal(t, 7.0, r.Total())

	h := r.Poisson()
	for i, n := range []float64{4, 9, 0, 1} {
		b := h.Bin(i)
		assert.InDelta(t, 0.5*n, b.Content, 1e-12)
		assert.InDelta(t, 0.5*math.Sqrt(n), b.Err, 1e-12, "bin %d", i)
	}
}

func TestPoissonOverwrites(t *testing.T) {
	r, err := NewRaw("w", unit)
	require.NoError(t, err)
	r.Fill(0.5, 2)
	r.Fill(0.5, 2)
	r.Fill(-3, 9)

	h := r.SumW2Errors()
	assert.InDelta(t, 4, h.Bin(0).Content, 1e-12)
	assert.InDelta(t, math.Sqrt(8), h.Bin(0).Err, 1e-12)

	h.Poisson()
	assert.InDelta(t, 2, h.Bin(0).Err, 1e-12)
	assert.InDelta(t, 3, h.Underflow().Err, 1e-12)
	for i := 0; i < h.Len(); i++ {
		assert.InDelta(t, math.Sqrt(h.Bin(i).Content), h.Bin(i).Err, 1e-12)
	}
}

func TestRatio(t *testing.T) {
	num := fill(t, "num", 4, 0, 3, 0).Poisson()
	den := fill(t, "den", 16, 5, 0, 0).Poisson()

	r, err := Ratio("ratio", num, den)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, r.Bin(0).Content, 1e-12)
	assert.InDelta(t, 0.25*math.Sqrt(1.0/4+1.0/16), r.Bin(0).Err, 1e-12)

	// one operand zero
	assert.Equal(t, Bin{}, r.Bin(1))
	assert.Equal(t, Bin{}, r.Bin(2))
	// both zero
	assert.Equal(t, Bin{}, r.Bin(3))
}

func TestCorrelatedRatio(t *testing.T) {
	num := fill(t, "num", 4, 2, 0).Poisson()
	den := fill(t, "den", 16, 0, 3).Poisson()

	r, err := CorrelatedRatio("eff", num, den)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, r.Bin(0).Content, 1e-12)
	assert.InDelta(t, 0.25*4.0/16, r.Bin(0).Err, 1e-12)
	assert.Equal(t, Bin{}, r.Bin(1))
	assert.Equal(t, Bin{}, r.Bin(2))
}

func TestCumulative(t *testing.T) {
	counts := []int{5, 0, 3, 2}
	h := fill(t, "x", counts...).Poisson()
	c := Cumulative("cum", h, true)

	assert.Equal(t, []float64{10, 5, 5, 2}, c.Contents())
	assert.InDelta(t, math.Sqrt(10), c.Bin(0).Err, 1e-12)
	assert.Equal(t, h.Bin(3).Content, c.Bin(3).Content)
	for i := 1; i < c.Len(); i++ {
		assert.LessOrEqual(t, c.Bin(i).Content, c.Bin(i-1).Content)
	}

	plain := Cumulative("cum", h, false)
	assert.Equal(t, []float64{0, 0, 0, 0}, plain.Errors())
}

func TestSum(t *testing.T) {
	a := fill(t, "a", 1, 4, 9).Poisson()
	b := fill(t, "b", 0, 1, 16).Poisson()
	c := fill(t, "c", 2, 2, 2).Poisson()

	ab, err := Sum("ab", a, b)
	require.NoError(t, err)
	ba, err := Sum("ba", b, a)
	require.NoError(t, err)
	assert.Equal(t, ab.Contents(), ba.Contents())

	left, err := Sum("l", ab, c)
	require.NoError(t, err)
	bc, err := Sum("bc", b, c)
	require.NoError(t, err)
	right, err := Sum("r", a, bc)
	require.NoError(t, err)
	assert.Equal(t, left.Contents(), right.Contents())

	for i := 0; i < ab.Len(); i++ {
		assert.GreaterOrEqual(t, ab.Bin(i).Err, a.Bin(i).Err)
		assert.GreaterOrEqual(t, ab.Bin(i).Err, b.Bin(i).Err)
	}
	assert.InDelta(t, 5, ab.Bin(2).Err, 1e-12)

	all, err := SumAll("all", a, b, c)
	require.NoError(t, err)
	assert.Equal(t, left.Contents(), all.Contents())

	_, err = SumAll("none")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestShapeMismatch(t *testing.T) {
	a := fill(t, "a", 1, 2, 3).Poisson()
	b := fill(t, "b", 1, 2).Poisson()

	_, err := Sum("s", a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	var sm *ShapeMismatchError
	require.True(t, errors.As(err, &sm))
	assert.Equal(t, "a", sm.Left)
	assert.Equal(t, 2, sm.NRight)

	_, err = Ratio("r", a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = CorrelatedRatio("r", a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Sub("r", a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSubAllowsNegative(t *testing.T) {
	a := fill(t, "a", 1, 4).Poisson()
	b := fill(t, "b", 4, 1).Poisson()

	d, err := Sub("d", a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, 3}, d.Contents())
	assert.InDelta(t, math.Sqrt(5), d.Bin(0).Err, 1e-12)
}

func TestH1DConversion(t *testing.T) {
	r, err := NewRaw("x", unit)
	require.NoError(t, err)
	r.Fill(-1, 1)
	r.Fill(1.5, 4)
	r.Fill(2.5, 9)
	h := r.Poisson()
	h.Scale(2)

	back := FromH1D("x", h.H1D())
	assert.Equal(t, h.Binning(), back.Binning())
	for i := 0; i < h.Len(); i++ {
		assert.InDelta(t, h.Bin(i).Content, back.Bin(i).Content, 1e-12)
		assert.InDelta(t, h.Bin(i).Err, back.Bin(i).Err, 1e-12)
	}
	assert.InDelta(t, h.Underflow().Content, back.Underflow().Content, 1e-12)
	assert.InDelta(t, h.Total(), back.Total(), 1e-12)
}

// flows fills counts in range plus under and over entries below and above it.
func flows(t *testing.T, name string, under, over int, counts ...int) *Raw {
	t.Helper()
	r := fill(t, name, counts...)
	for i := 0; i < under; i++ {
		r.Fill(-1, 1)
	}
	for i := 0; i < over; i++ {
		r.Fill(float64(len(counts))+1, 1)
	}
	return r
}

func TestCumulativeEmptiesFlows(t *testing.T) {
	h := flows(t, "x", 4, 9, 1, 2, 3).Poisson()
	require.Equal(t, 4.0, h.Underflow().Content)
	require.Equal(t, 9.0, h.Overflow().Content)

	for _, errs := range []bool{true, false} {
		c := Cumulative("cum", h, errs)
		assert.Equal(t, []float64{6, 5, 3}, c.Contents())
		assert.Equal(t, Bin{}, c.Underflow())
		assert.Equal(t, Bin{}, c.Overflow())
	}
}

func TestCorrelatedRatioKeepsNumeratorFlows(t *testing.T) {
	num := flows(t, "num", 4, 0, 2, 3).Poisson()
	den := flows(t, "den", 16, 25, 4, 6).Poisson()

	r, err := CorrelatedRatio("eff", num, den)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, r.Contents())
	assert.Equal(t, num.Underflow(), r.Underflow())
	assert.Equal(t, num.Overflow(), r.Overflow())

	// the uncorrelated ratio divides the flow bins too
	u, err := Ratio("ratio", num, den)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, u.Underflow().Content, 1e-12)
	assert.Equal(t, Bin{}, u.Overflow())
}
