package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		c    complex128
		want Result
	}{
		{"far outside escapes immediately", 3 + 0i, Escaped(0)},
		{"diagonal escapes on the second update", 1 + 1i, Escaped(1)},
		{"origin is a fixed point", 0, Bound},
		{"period two bulb", -1 + 0i, Bound},
		{"cusp", 0.25, Bound},
		{"just outside the cusp", 0.3, Escaped(11)},
		{"tip of the needle", -2, Bound},
		{"left of the needle", -2.1, Escaped(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.c, DefaultMaxIter, DefaultRadius))
		})
	}
}

func TestEvaluateOriginAnyCap(t *testing.T) {
	for _, maxIter := range []uint32{0, 1, 2, 10, 1000, 100000} {
		assert.True(t, Evaluate(0, maxIter, DefaultRadius).IsBound(), "cap %d", maxIter)
	}
}

func TestEvaluateZeroCapIsBound(t *testing.T) {
	assert.Equal(t, Bound, Evaluate(3, 0, DefaultRadius))
}

func TestEvaluateEscapeBelowCap(t *testing.T) {
	// c = 1: z runs 1, 2, 5 so |z| first exceeds 2 on the third update.
	n, ok := Evaluate(1, DefaultMaxIter, DefaultRadius).Iterations()
	assert.True(t, ok)
	assert.Equal(t, uint32(2), n)

	// with only two updates allowed the same point is still bound
	assert.True(t, Evaluate(1, 2, DefaultRadius).IsBound())
}

func TestEvaluateRadiusIsStrict(t *testing.T) {
	// |z1| == radius exactly does not count as escaping
	r := Evaluate(2, 1, 2)
	assert.True(t, r.IsBound())
}

func TestResultAccessors(t *testing.T) {
	n, ok := Bound.Iterations()
	assert.False(t, ok)
	assert.Zero(t, n)

	n, ok = Escaped(7).Iterations()
	assert.True(t, ok)
	assert.Equal(t, uint32(7), n)
	assert.False(t, Escaped(7).IsBound())
}
