package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tactusdsp/warpalign/cost"
)

// TestCosineDistance_SelfIsZero verifies distance(v, v) == 0 for a non-zero
// vector, up to the epsilon floor in the denominator.
func TestCosineDistance_SelfIsZero(t *testing.T) {
	v := []float64{0.3, 1.2, 0, 4.5}
	assert.InDelta(t, 0, cost.CosineDistance(v, v), 1e-8, "self distance must be ~0")
}

// TestCosineDistance_Symmetric checks d(a,b) == d(b,a).
func TestCosineDistance_Symmetric(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{3, 1, 0.5}
	assert.Equal(t, cost.CosineDistance(a, b), cost.CosineDistance(b, a))
}

// TestCosineDistance_Orthogonal checks that perpendicular vectors are at
// distance 1 and anti-parallel vectors at distance 2.
func TestCosineDistance_Orthogonal(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0, 1}
	assert.InDelta(t, 1, cost.CosineDistance(a, b), 1e-9)

	c := []float64{-1, 0}
	assert.InDelta(t, 2, cost.CosineDistance(a, c), 1e-8)
}

// TestCosineDistance_ZeroVector verifies the epsilon floor: a zero vector
// yields distance 1 instead of dividing by zero.
func TestCosineDistance_ZeroVector(t *testing.T) {
	zero := []float64{0, 0, 0}
	v := []float64{1, 2, 3}
	got := cost.CosineDistance(zero, v)
	require.False(t, math.IsNaN(got), "zero vector must not produce NaN")
	assert.Equal(t, 1.0, got)
	assert.Equal(t, 1.0, cost.CosineDistance(zero, zero))
}

// TestCosineDistance_ScaleInvariant checks that scaling either argument
// leaves the distance unchanged (within float tolerance).
func TestCosineDistance_ScaleInvariant(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{0.5, 0.1, 2}
	scaled := []float64{5, 10, 15}
	assert.InDelta(t, cost.CosineDistance(a, b), cost.CosineDistance(scaled, b), 1e-9)
}

// TestResolve_Kinds verifies pairwise/mixture resolution and rejection.
func TestResolve_Kinds(t *testing.T) {
	f, err := cost.Resolve(cost.Cosine)
	require.NoError(t, err)
	require.NotNil(t, f)

	_, err = cost.Resolve(cost.MixtureSum)
	assert.ErrorIs(t, err, cost.ErrUnknownKind, "MixtureSum is not pairwise")

	mf, err := cost.ResolveMixture(cost.ExplainDiff)
	require.NoError(t, err)
	require.NotNil(t, mf)

	_, err = cost.ResolveMixture(cost.Cosine)
	assert.ErrorIs(t, err, cost.ErrUnknownKind, "Cosine is not a mixture kind")

	_, err = cost.Resolve(cost.Kind(42))
	assert.ErrorIs(t, err, cost.ErrUnknownKind)
}

// TestKind_String covers the Stringer used in wrapped error messages.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "Cosine", cost.Cosine.String())
	assert.Equal(t, "MixtureSum", cost.MixtureSum.String())
	assert.Equal(t, "ExplainDiff", cost.ExplainDiff.String())
	assert.Equal(t, "Unknown(42)", cost.Kind(42).String())
}

// TestGains_MeanMagnitudeRatio checks gx == 1 and gy == mx/my for sequences
// with known per-frame magnitudes.
func TestGains_MeanMagnitudeRatio(t *testing.T) {
	// x frames have magnitude 4, y frames magnitude 2 → gy = 2.
	x := [][]float64{{4, 0}, {0, 4}}
	y := [][]float64{{2, 0}, {0, 2}}
	gx, gy := cost.Gains(x, y)
	assert.Equal(t, 1.0, gx)
	assert.InDelta(t, 2.0, gy, 1e-8)
}

// TestGains_SilentSecondSequence verifies the epsilon floor against a silent
// second part.
func TestGains_SilentSecondSequence(t *testing.T) {
	x := [][]float64{{1, 0}}
	y := [][]float64{{0, 0}}
	_, gy := cost.Gains(x, y)
	require.False(t, math.IsInf(gy, 1), "silent part must not yield +Inf gain")
	require.False(t, math.IsNaN(gy))
}

// TestMixSum_MatchesHandComputedMixture verifies the mixture formula
// Cosine(z, gx·x + gy·y) on an exact case: when z equals the weighted sum,
// the distance is ~0.
func TestMixSum_MatchesHandComputedMixture(t *testing.T) {
	x := []float64{1, 0}
	y := []float64{0, 1}
	z := []float64{1, 2} // 1·x + 2·y
	assert.InDelta(t, 0, cost.MixSum(x, y, z, 1, 2), 1e-8)
}

// TestExplainResidual_FlooredAtZero checks the per-dimension floor: when the
// scaled part exceeds the mix, the residual component is zero, not negative.
func TestExplainResidual_FlooredAtZero(t *testing.T) {
	x := []float64{5, 0} // gx·x overshoots the mix in dim 0
	y := []float64{0, 1}
	z := []float64{1, 1}
	// Residual is max(z − x, 0) = (0, 1), identical in direction to y.
	assert.InDelta(t, 0, cost.ExplainResidual(x, y, z, 1, 1), 1e-8)
}
