package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tactusdsp/warpalign/cost"
)

// seq builds a deterministic feature sequence of n frames × dim values.
func seq(n, dim int, scale float64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		frame := make([]float64, dim)
		for d := range frame {
			frame[d] = scale * float64((i+1)*(d+2)%7+1)
		}
		out[i] = frame
	}

	return out
}

// TestMatrix_MatchesSequentialFill verifies that the parallel fill produces
// exactly the same cells as a plain double loop, regardless of worker count.
func TestMatrix_MatchesSequentialFill(t *testing.T) {
	a := seq(17, 12, 1.0)
	b := seq(23, 12, 0.7)

	m, err := cost.Matrix(a, b, cost.Cosine)
	require.NoError(t, err)
	require.Equal(t, 17, m.Rows())
	require.Equal(t, 23, m.Cols())

	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			want := cost.CosineDistance(a[i], b[j])
			got, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want, got, "cell (%d,%d)", i, j)
		}
	}
}

// TestMatrix_NonNegative checks that every entry is a non-negative real.
func TestMatrix_NonNegative(t *testing.T) {
	a := seq(5, 4, -1.0) // negative features still yield non-negative costs
	b := seq(6, 4, 1.0)
	m, err := cost.Matrix(a, b, cost.Cosine)
	require.NoError(t, err)
	for _, v := range m.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

// TestMatrix_ShapeMismatch verifies rejection of ragged frame dimensions.
func TestMatrix_ShapeMismatch(t *testing.T) {
	a := [][]float64{{1, 2}, {3, 4, 5}}
	b := [][]float64{{1, 2}}
	_, err := cost.Matrix(a, b, cost.Cosine)
	assert.ErrorIs(t, err, cost.ErrShapeMismatch)

	// Mismatch across sequences, not just within one.
	a = [][]float64{{1, 2}}
	b = [][]float64{{1, 2, 3}}
	_, err = cost.Matrix(a, b, cost.Cosine)
	assert.ErrorIs(t, err, cost.ErrShapeMismatch)
}

// TestMatrix_EmptyInputs verifies rejection of empty sequences and frames.
func TestMatrix_EmptyInputs(t *testing.T) {
	_, err := cost.Matrix(nil, [][]float64{{1}}, cost.Cosine)
	assert.ErrorIs(t, err, cost.ErrEmptySequence)

	_, err = cost.Matrix([][]float64{{1}}, [][]float64{}, cost.Cosine)
	assert.ErrorIs(t, err, cost.ErrEmptySequence)

	_, err = cost.Matrix([][]float64{{}}, [][]float64{{1}}, cost.Cosine)
	assert.ErrorIs(t, err, cost.ErrShapeMismatch)
}

// TestMatrix_RejectsMixtureKind checks kind validation at the 2D surface.
func TestMatrix_RejectsMixtureKind(t *testing.T) {
	a := seq(2, 3, 1)
	_, err := cost.Matrix(a, a, cost.ExplainDiff)
	assert.ErrorIs(t, err, cost.ErrUnknownKind)
}

// TestTensor_MatchesScalarMixture verifies every tensor cell against the
// scalar mixture functions under the same gains.
func TestTensor_MatchesScalarMixture(t *testing.T) {
	x := seq(4, 6, 1.0)
	y := seq(5, 6, 0.5)
	z := seq(3, 6, 0.9)
	gx, gy := cost.Gains(x, y)

	for _, kind := range []cost.Kind{cost.MixtureSum, cost.ExplainDiff} {
		mf, err := cost.ResolveMixture(kind)
		require.NoError(t, err)

		ts, err := cost.Tensor(x, y, z, kind)
		require.NoError(t, err)
		nx, ny, nz := ts.Dims()
		require.Equal(t, [3]int{4, 5, 3}, [3]int{nx, ny, nz})

		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				for k := 0; k < nz; k++ {
					want := mf(x[i], y[j], z[k], gx, gy)
					got, err := ts.At(i, j, k)
					require.NoError(t, err)
					assert.InDelta(t, want, got, 1e-12, "%v cell (%d,%d,%d)", kind, i, j, k)
				}
			}
		}
	}
}

// TestTensor_RejectsPairwiseKind checks kind validation at the 3D surface.
func TestTensor_RejectsPairwiseKind(t *testing.T) {
	x := seq(2, 3, 1)
	_, err := cost.Tensor(x, x, x, cost.Cosine)
	assert.ErrorIs(t, err, cost.ErrUnknownKind)
}

// TestTensor_ShapeMismatchAcrossThree verifies that the third sequence's
// frame dimension is validated against the parts.
func TestTensor_ShapeMismatchAcrossThree(t *testing.T) {
	x := seq(2, 3, 1)
	y := seq(2, 3, 1)
	z := seq(2, 4, 1)
	_, err := cost.Tensor(x, y, z, cost.MixtureSum)
	assert.ErrorIs(t, err, cost.ErrShapeMismatch)
}

// TestTensor_PerfectMixIsNearZeroDiagonal builds z as the exact gain-weighted
// sum of matching x and y frames and checks those cells are ~0.
func TestTensor_PerfectMixIsNearZeroDiagonal(t *testing.T) {
	x := [][]float64{{1, 0, 0}, {0, 1, 0}}
	y := [][]float64{{0, 0, 2}, {0, 2, 0}}
	gx, gy := cost.Gains(x, y)
	z := make([][]float64, 2)
	for i := range z {
		z[i] = make([]float64, 3)
		for d := 0; d < 3; d++ {
			z[i][d] = gx*x[i][d] + gy*y[i][d]
		}
	}

	ts, err := cost.Tensor(x, y, z, cost.MixtureSum)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		v, err := ts.At(i, i, i)
		require.NoError(t, err)
		assert.InDelta(t, 0, v, 1e-8, "perfect mix cell (%d,%d,%d)", i, i, i)
	}
}
