package render

import (
	"math/cmplx"
)

const (
	// DefaultMaxIter is the reference iteration cap.
	DefaultMaxIter = 1000
	// DefaultRadius is the reference divergence radius.
	DefaultRadius = 2.0
)

// Result is the outcome of an escape-time evaluation: either the point
// escaped at some iteration, or it stayed bound up to the cap.
type Result struct {
	iter    uint32
	escaped bool
}

// Bound is the result for points that did not diverge within the cap.
var Bound = Result{}

// Escaped returns the result for a point that diverged at iteration n.
func Escaped(n uint32) Result {
	return Result{iter: n, escaped: true}
}

// IsBound reports whether the point stayed within the radius.
func (r Result) IsBound() bool { return !r.escaped }

// Iterations returns the escape iteration. ok is false for Bound.
func (r Result) Iterations() (n uint32, ok bool) {
	return r.iter, r.escaped
}

// Evaluate iterates z = z*z + c from z = 0. It returns Escaped(n) as soon as
// |z| exceeds radius after the n-th update (0-based), or Bound once maxIter
// updates stayed inside.
func Evaluate(c complex128, maxIter uint32, radius float64) Result {
	var z complex128
	for i := uint32(0); i < maxIter; i++ {
		z = z*z + c
		if cmplx.Abs(z) > radius {
			return Escaped(i)
		}
	}
	return Bound
}
