package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestUnit(t *testing.T) {
	d, err := Unit(3, 0, 4)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, d.X(), 1e-12)
	assert.InDelta(t, 0, d.Y(), 1e-12)
	assert.InDelta(t, 0.8, d.Z(), 1e-12)
	assert.InDelta(t, 1, r3.Norm(d.Vec()), 1e-12)
}

func TestUnitZero(t *testing.T) {
	_, err := Unit(0, 0, 0)
	assert.ErrorIs(t, err, ErrZeroVector)
	assert.Panics(t, func() { MustUnit(0, 0, 0) })
}

func TestAngle(t *testing.T) {
	x := MustUnit(1, 0, 0)
	z := MustUnit(0, 0, 1)
	assert.InDelta(t, math.Pi/2, Angle(x, z), 1e-12)
	assert.InDelta(t, 0, Angle(z, z), 1e-12)
	assert.InDelta(t, math.Pi, Angle(z, MustUnit(0, 0, -2)), 1e-12)
}

func TestProjectTransverse(t *testing.T) {
	z := MustUnit(0, 0, 1)
	v := r3.Vec{X: 1, Y: 2, Z: 3}

	assert.Equal(t, r3.Vec{Z: 3}, Project(v, z))
	assert.Equal(t, r3.Vec{X: 1, Y: 2}, Transverse(v, z))
	assert.InDelta(t, 3, Along(v, z), 1e-12)

	sum := r3.Add(Project(v, z), Transverse(v, z))
	assert.Equal(t, v, sum)
}
