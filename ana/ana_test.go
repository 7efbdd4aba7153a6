package ana

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-12

func TestPoissonUnit(t *testing.T) {
	assert.Zero(t, PoissonUnit(0))
	assert.Zero(t, PoissonUnit(1))
	assert.InDelta(t, 0.125, PoissonUnit(0.5), tol)
	// symmetric about the midpoint
	assert.InDelta(t, PoissonUnit(0.3), PoissonUnit(0.7), tol)

	// -u'' = 1 via central differences
	h := 1e-5
	ddu := (PoissonUnit(0.4-h) - 2*PoissonUnit(0.4) + PoissonUnit(0.4+h)) / (h * h)
	assert.InDelta(t, 1, -ddu, 1e-4)
}

func TestSine(t *testing.T) {
	assert.InDelta(t, 0, Sine(0), tol)
	assert.InDelta(t, 0, Sine(1), tol)
	assert.InDelta(t, 1, Sine(0.5), tol)

	// SineSource = -Sine''
	assert.InDelta(t, math.Pi*math.Pi*Sine(0.3), SineSource(0.3), tol)
}

func TestHat(t *testing.T) {
	assert.Zero(t, Hat(0))
	assert.Zero(t, Hat(1))
	assert.InDelta(t, 0.5, Hat(0.5), tol)
	assert.InDelta(t, 0.2, Hat(0.2), tol)
	assert.InDelta(t, 0.2, Hat(0.8), tol)
}
