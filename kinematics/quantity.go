package kinematics

import (
	"math"
	"strconv"
)

// Quantity is a reconstructed value that is either physical or Invalid.
// An Invalid quantity fails every cut that depends on it.
type Quantity struct {
	v  float64
	ok bool
}

// Invalid marks a quantity whose reconstruction preconditions failed.
var Invalid = Quantity{}

// Valid wraps v. NaN and infinities are never valid.
func Valid(v float64) Quantity {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid
	}
	return Quantity{v: v, ok: true}
}

// Value returns the wrapped value and whether it is valid.
func (q Quantity) Value() (float64, bool) { return q.v, q.ok }

// OK reports whether q is valid.
func (q Quantity) OK() bool { return q.ok }

// Or returns the value of q, or def when q is Invalid.
func (q Quantity) Or(def float64) float64 {
	if !q.ok {
		return def
	}
	return q.v
}

func (q Quantity) String() string {
	if !q.ok {
		return "invalid"
	}
	return strconv.FormatFloat(q.v, 'g', -1, 64)
}

// then applies f to a valid quantity.
func (q Quantity) then(f func(float64) Quantity) Quantity {
	if !q.ok {
		return Invalid
	}
	return f(q.v)
}
