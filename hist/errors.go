package hist

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when two histograms do not have the
	// same number of bins.
	ErrShapeMismatch = errors.New("hist: shape mismatch")

	// ErrAlreadyScaled is returned when a Raw histogram is normalized twice.
	ErrAlreadyScaled = errors.New("hist: already scaled")

	// ErrEmpty is returned when folding zero histograms.
	ErrEmpty = errors.New("hist: no histograms")
)

// ShapeMismatchError describes the operands of a failed binary operation.
type ShapeMismatchError struct {
	Op          string
	Left, Right string
	NLeft       int
	NRight      int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("hist: %s of %q (%d bins) and %q (%d bins): shape mismatch",
		e.Op, e.Left, e.NLeft, e.Right, e.NRight)
}

func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func checkShape(op string, a, b *Hist) error {
	if len(a.bins) != len(b.bins) {
		return &ShapeMismatchError{
			Op:     op,
			Left:   a.Name,
			Right:  b.Name,
			NLeft:  len(a.bins),
			NRight: len(b.bins),
		}
	}
	return nil
}
