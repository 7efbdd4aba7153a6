package fem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrapezoidHatRules(t *testing.T) {
	f := func(x float64) float64 { return 1 + x }

	// the rules sample f at the node where the hat peaks
	assert.InDelta(t, 0.5*f(0.2)*0.3, TrapezoidHatDown(f, 0.2, 0.5), tol)
	assert.InDelta(t, 0.5*f(0.5)*0.3, TrapezoidHatUp(f, 0.2, 0.5), tol)

	// for constant f both reduce to f*h/2
	one := ConstSource(1)
	assert.InDelta(t, 0.15, TrapezoidHatDown(one, 0.2, 0.5), tol)
	assert.InDelta(t, 0.15, TrapezoidHatUp(one, 0.2, 0.5), tol)
}

func TestGaussLegendre(t *testing.T) {
	tests := []struct {
		name   string
		f      func(float64) float64
		x0, x1 float64
		n      int
		want   float64
	}{
		{
			name: "cubic is exact with 2 points",
			f:    func(x float64) float64 { return x * x * x },
			x0:   0, x1: 2, n: 2,
			want: 4,
		}, {
			name: "quintic is exact with 3 points",
			f:    func(x float64) float64 { return math.Pow(x, 5) },
			x0:   -1, x1: 1, n: 3,
			want: 0,
		}, {
			name: "shifted interval",
			f:    func(x float64) float64 { return 2*x + 1 },
			x0:   1, x1: 3, n: 2,
			want: 10,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := GaussLegendre(test.f, test.x0, test.x1, test.n)
			assert.InDelta(t, test.want, got, 1e-10)
		})
	}
}

func TestHats(t *testing.T) {
	assert.InDelta(t, 0, hatUp(0.2, 0.2, 0.5), tol)
	assert.InDelta(t, 1, hatUp(0.5, 0.2, 0.5), tol)
	assert.InDelta(t, 1, hatDown(0.2, 0.2, 0.5), tol)
	assert.InDelta(t, 0, hatDown(0.5, 0.2, 0.5), tol)
	// partition of unity
	assert.InDelta(t, 1, hatUp(0.3, 0.2, 0.5)+hatDown(0.3, 0.2, 0.5), tol)
}
