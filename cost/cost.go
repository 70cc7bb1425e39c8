package cost

import (
	"fmt"
	"math"
)

// CosineDistance returns 1 − dot(a,b)/(‖a‖·‖b‖+ε), clamped to be
// non-negative. Symmetric; zero for a non-zero vector against itself (up to
// the epsilon floor); exactly 1 when either vector is all zeros.
// Assumes len(a) == len(b) (Matrix validates; scalar callers must).
// Complexity: O(D).
func CosineDistance(a, b []float64) float64 {
	var dot, na, nb float64
	for d := range a {
		dot += a[d] * b[d]
		na += a[d] * a[d]
		nb += b[d] * b[d]
	}
	c := 1 - dot/(math.Sqrt(na*nb)+Epsilon)
	if c < 0 {
		// Rounding can push a perfect match a hair below zero.
		c = 0
	}

	return c
}

// MixSum computes Cosine(z, gx·x + gy·y): the dissimilarity between a
// full-mix frame and the gain-weighted sum of two part frames.
// Complexity: O(D), allocates one scratch vector; hot loops in Tensor reuse
// a per-worker buffer instead.
func MixSum(x, y, z []float64, gx, gy float64) float64 {
	mix := make([]float64, len(x))
	for d := range mix {
		mix[d] = gx*x[d] + gy*y[d]
	}

	return CosineDistance(z, mix)
}

// ExplainResidual computes the explanation-based difference: the scaled
// first part is subtracted from the mix, negative components are floored at
// zero, and the residual is compared against the second part. The gy gain is
// accepted for signature symmetry; cosine distance is scale-invariant, so it
// does not affect the result.
// Complexity: O(D), allocates one scratch vector.
func ExplainResidual(x, y, z []float64, gx, gy float64) float64 {
	_ = gy
	res := make([]float64, len(x))
	for d := range res {
		r := z[d] - gx*x[d]
		if r < 0 {
			r = 0
		}
		res[d] = r
	}

	return CosineDistance(res, y)
}

// Gains returns the loudness-renormalization gains for two part sequences:
// gx is 1 and gy is the ratio of mean per-frame L2 magnitudes mx/my, so that
// y contributes to the mixture at x's loudness. Computed once per call,
// epsilon-floored against silent sequences.
// Complexity: O((N+M)·D).
func Gains(x, y [][]float64) (gx, gy float64) {
	mx := meanMagnitude(x)
	my := meanMagnitude(y)

	return 1, mx / (my + Epsilon)
}

// meanMagnitude returns the mean per-frame L2 norm of a feature sequence.
func meanMagnitude(seq [][]float64) float64 {
	if len(seq) == 0 {
		return 0
	}
	var sum float64
	for _, frame := range seq {
		var n float64
		for _, v := range frame {
			n += v * v
		}
		sum += math.Sqrt(n)
	}

	return sum / float64(len(seq))
}

// frameDim validates that every sequence is non-empty and that every frame
// across all sequences shares one dimension D > 0. Returns D.
// Errors wrap ErrEmptySequence or ErrShapeMismatch with coordinates.
func frameDim(seqs ...[][]float64) (int, error) {
	dim := 0
	for s, seq := range seqs {
		if len(seq) == 0 {
			return 0, fmt.Errorf("cost: sequence %d: %w", s, ErrEmptySequence)
		}
		for f, frame := range seq {
			if len(frame) == 0 {
				return 0, fmt.Errorf("cost: sequence %d frame %d is empty: %w", s, f, ErrShapeMismatch)
			}
			if dim == 0 {
				dim = len(frame)
			}
			if len(frame) != dim {
				return 0, fmt.Errorf("cost: sequence %d frame %d has dimension %d, want %d: %w",
					s, f, len(frame), dim, ErrShapeMismatch)
			}
		}
	}

	return dim, nil
}
