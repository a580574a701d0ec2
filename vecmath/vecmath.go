// Package vecmath provides the direction and momentum arithmetic shared by
// the kinematic reconstruction.
package vecmath

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrZeroVector is returned when normalizing a vector of zero magnitude.
var ErrZeroVector = errors.New("vecmath: cannot normalize zero vector")

// Dir is a unit direction. The zero value is not a valid direction; build
// one with Unit.
type Dir struct {
	v r3.Vec
}

// Unit returns the direction of (x, y, z).
func Unit(x, y, z float64) (Dir, error) {
	v := r3.Vec{X: x, Y: y, Z: z}
	n := r3.Norm(v)
	if n == 0 || math.IsNaN(n) {
		return Dir{}, ErrZeroVector
	}
	return Dir{v: r3.Scale(1/n, v)}, nil
}

// MustUnit is like Unit but panics on the zero vector.
func MustUnit(x, y, z float64) Dir {
	d, err := Unit(x, y, z)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Dir) X() float64 { return d.v.X }
func (d Dir) Y() float64 { return d.v.Y }
func (d Dir) Z() float64 { return d.v.Z }

// Vec returns the direction as a plain vector.
func (d Dir) Vec() r3.Vec { return d.v }

// IsZero reports whether d was never normalized.
func (d Dir) IsZero() bool { return d.v == r3.Vec{} }

// Dot returns the cosine of the angle between a and b.
func Dot(a, b Dir) float64 {
	return r3.Dot(a.v, b.v)
}

// Angle returns the angle between a and b in radians.
func Angle(a, b Dir) float64 {
	// rounding can push |cos| just past 1 for (anti)parallel inputs
	c := math.Max(-1, math.Min(1, Dot(a, b)))
	return math.Acos(c)
}

// Scale returns the vector of magnitude p along d.
func Scale(p float64, d Dir) r3.Vec {
	return r3.Scale(p, d.v)
}

// Along returns the signed length of v along d.
func Along(v r3.Vec, d Dir) float64 {
	return r3.Dot(v, d.v)
}

// Project returns (v·d)d.
func Project(v r3.Vec, d Dir) r3.Vec {
	return r3.Scale(Along(v, d), d.v)
}

// Transverse returns the component of v perpendicular to d.
func Transverse(v r3.Vec, d Dir) r3.Vec {
	return r3.Sub(v, Project(v, d))
}

// DirOf returns the direction of v.
func DirOf(v r3.Vec) (Dir, error) {
	return Unit(v.X, v.Y, v.Z)
}
